package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mondaySchedule() WeeklySchedule {
	return WeeklySchedule{
		Monday: {
			{Start: 9 * 60, End: 12 * 60},
			{Start: 13 * 60, End: 17 * 60},
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		schedule WeeklySchedule
		cand     Candidate
		valid    bool
		reason   Reason
	}{
		{
			name:     "inside first shift",
			schedule: mondaySchedule(),
			cand:     Candidate{Date: monday, Time: ClockTime{Hour: 11, Minute: 30}},
			valid:    true,
		},
		{
			name:     "gap between shifts",
			schedule: mondaySchedule(),
			cand:     Candidate{Date: monday, Time: ClockTime{Hour: 12, Minute: 30}},
			reason:   ReasonOutsideShiftHours,
		},
		{
			name:     "closed day",
			schedule: mondaySchedule(),
			cand:     Candidate{Date: tuesday, Time: ClockTime{Hour: 10, Minute: 0}},
			reason:   ReasonClinicClosedThatDay,
		},
		{
			name:     "empty schedule",
			schedule: WeeklySchedule{},
			cand:     Candidate{Date: monday, Time: ClockTime{Hour: 11, Minute: 0}},
			reason:   ReasonNoScheduleConfigured,
		},
		{
			name:     "2 PM lands on the exclusive end boundary",
			schedule: WeeklySchedule{Sunday: {{Start: 8 * 60, End: 14 * 60}}},
			cand:     Candidate{Date: sunday, Time: ClockTime{Hour: 2, Minute: 0, Period: PeriodPM}},
			reason:   ReasonOutsideShiftHours,
		},
		{
			name:     "malformed time on an open day",
			schedule: mondaySchedule(),
			cand:     Candidate{Date: monday, Time: ClockTime{Hour: 13, Minute: 0, Period: PeriodPM}},
			reason:   ReasonMalformedTime,
		},
		{
			name:     "malformed time beats closed day",
			schedule: mondaySchedule(),
			cand:     Candidate{Date: tuesday, Time: ClockTime{Hour: 99, Minute: 0}},
			reason:   ReasonMalformedTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(tt.schedule, tt.cand)
			assert.Equal(t, tt.valid, result.IsValid)
			assert.Equal(t, tt.reason, result.Reason)
		})
	}
}

// With no schedule configured at all, every candidate is rejected with
// the same reason, even times that would pass against some schedule.
func TestValidateNoSchedulePriority(t *testing.T) {
	empty := WeeklySchedule{Monday: {}, Friday: {}}

	for hour := 0; hour < 24; hour++ {
		result := Validate(empty, Candidate{Date: monday, Time: ClockTime{Hour: hour, Minute: 0}})
		assert.False(t, result.IsValid)
		assert.Equal(t, ReasonNoScheduleConfigured, result.Reason)
	}

	// even a malformed time
	result := Validate(empty, Candidate{Date: monday, Time: ClockTime{Hour: 99, Minute: 0}})
	assert.Equal(t, ReasonNoScheduleConfigured, result.Reason)
}

func TestValidateIsIdempotent(t *testing.T) {
	ws := mondaySchedule()
	cand := Candidate{Date: monday, Time: ClockTime{Hour: 11, Minute: 30, Period: PeriodAM}}

	first := Validate(ws, cand)
	second := Validate(ws, cand)
	assert.Equal(t, first, second)
}

// Every weekday with zero shifts yields clinic-closed-that-day as long
// as at least one other day is open.
func TestValidateClosedDayInvariant(t *testing.T) {
	ws := WeeklySchedule{Wednesday: {{Start: 8 * 60, End: 16 * 60}}}

	for offset := 0; offset < 7; offset++ {
		date := monday.AddDate(0, 0, offset)
		if WeekdayOf(date) == Wednesday {
			continue
		}
		result := Validate(ws, Candidate{Date: date, Time: ClockTime{Hour: 10, Minute: 0}})
		assert.Equal(t, ReasonClinicClosedThatDay, result.Reason, "date %s", date.Format(time.DateOnly))
	}
}
