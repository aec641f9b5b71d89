package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shifa-dev/clinic-desk/backend/internal/availability"
	"github.com/shifa-dev/clinic-desk/backend/internal/domain"
)

func TestValidateWorkingShifts(t *testing.T) {
	tests := []struct {
		name    string
		shifts  []domain.WorkingShift
		wantErr string
	}{
		{
			name: "valid two-shift day",
			shifts: []domain.WorkingShift{
				{Weekday: "monday", StartTime: "09:00", EndTime: "12:00"},
				{Weekday: "monday", StartTime: "13:00", EndTime: "17:00"},
			},
		},
		{
			name:   "empty schedule is allowed",
			shifts: nil,
		},
		{
			name: "touching shifts do not overlap",
			shifts: []domain.WorkingShift{
				{Weekday: "sunday", StartTime: "08:00", EndTime: "12:00"},
				{Weekday: "sunday", StartTime: "12:00", EndTime: "16:00"},
			},
		},
		{
			name: "same times on different days do not overlap",
			shifts: []domain.WorkingShift{
				{Weekday: "sunday", StartTime: "09:00", EndTime: "17:00"},
				{Weekday: "monday", StartTime: "09:00", EndTime: "17:00"},
			},
		},
		{
			name: "unknown weekday",
			shifts: []domain.WorkingShift{
				{Weekday: "noday", StartTime: "09:00", EndTime: "12:00"},
			},
			wantErr: "unknown weekday",
		},
		{
			name: "malformed start time",
			shifts: []domain.WorkingShift{
				{Weekday: "monday", StartTime: "9am", EndTime: "12:00"},
			},
			wantErr: "malformed start time",
		},
		{
			name: "start not before end",
			shifts: []domain.WorkingShift{
				{Weekday: "monday", StartTime: "17:00", EndTime: "09:00"},
			},
			wantErr: "must start before it ends",
		},
		{
			name: "overlap on the same day",
			shifts: []domain.WorkingShift{
				{Weekday: "tuesday", StartTime: "09:00", EndTime: "13:00"},
				{Weekday: "tuesday", StartTime: "12:00", EndTime: "16:00"},
			},
			wantErr: "overlap",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWorkingShifts(tt.shifts)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestBuildWeeklySchedule(t *testing.T) {
	ws := BuildWeeklySchedule([]domain.WorkingShift{
		{Weekday: "monday", StartTime: "09:00", EndTime: "12:00"},
		{Weekday: "monday", StartTime: "13:00", EndTime: "17:00"},
		{Weekday: "saturday", StartTime: "10:00", EndTime: "14:00"},
	})

	require.Len(t, ws.ShiftsForDay(availability.Monday), 2)
	assert.Equal(t, availability.TimeOfDay(9*60), ws.ShiftsForDay(availability.Monday)[0].Start)
	assert.True(t, ws.IsDayOpen(availability.Saturday))
	assert.False(t, ws.IsDayOpen(availability.Friday))
	assert.True(t, ws.HasAnyOpenDay())
}

func TestBuildWeeklyScheduleSkipsMalformedRows(t *testing.T) {
	ws := BuildWeeklySchedule([]domain.WorkingShift{
		{Weekday: "noday", StartTime: "09:00", EndTime: "12:00"},
		{Weekday: "monday", StartTime: "bad", EndTime: "12:00"},
		{Weekday: "monday", StartTime: "17:00", EndTime: "09:00"},
	})

	assert.False(t, ws.HasAnyOpenDay())
}

func TestDefaultWorkingShiftsAreValid(t *testing.T) {
	shifts := DefaultWorkingShifts()
	require.NoError(t, ValidateWorkingShifts(shifts))

	ws := BuildWeeklySchedule(shifts)
	assert.False(t, ws.IsDayOpen(availability.Friday))
	assert.True(t, ws.IsDayOpen(availability.Sunday))
}
