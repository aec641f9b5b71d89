package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024-01-01 was a Monday.
var (
	monday  = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tuesday = time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	sunday  = time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)
)

func TestWeekdayOf(t *testing.T) {
	assert.Equal(t, Monday, WeekdayOf(monday))
	assert.Equal(t, Tuesday, WeekdayOf(tuesday))
	assert.Equal(t, Sunday, WeekdayOf(sunday))
}

func TestParseWeekday(t *testing.T) {
	for day := Sunday; day <= Saturday; day++ {
		parsed, err := ParseWeekday(day.String())
		require.NoError(t, err)
		assert.Equal(t, day, parsed)
	}

	_, err := ParseWeekday("someday")
	assert.Error(t, err)
}

func TestShiftContainsIsEndExclusive(t *testing.T) {
	shift := Shift{Start: 9 * 60, End: 17 * 60}

	assert.False(t, shift.Contains(9*60-1), "08:59 is outside")
	assert.True(t, shift.Contains(9*60), "09:00 is inside")
	assert.True(t, shift.Contains(17*60-1), "16:59 is inside")
	assert.False(t, shift.Contains(17*60), "17:00 is outside")
}

func TestShiftValid(t *testing.T) {
	assert.True(t, Shift{Start: 0, End: MinutesPerDay}.Valid())
	assert.False(t, Shift{Start: 9 * 60, End: 9 * 60}.Valid(), "zero-length shift")
	assert.False(t, Shift{Start: 17 * 60, End: 9 * 60}.Valid(), "start after end")
	assert.False(t, Shift{Start: -1, End: 60}.Valid())
	assert.False(t, Shift{Start: 23 * 60, End: MinutesPerDay + 1}.Valid())
}

func TestWeeklyScheduleOpenDaysAreDerived(t *testing.T) {
	ws := WeeklySchedule{
		Monday:  {{Start: 9 * 60, End: 12 * 60}},
		Tuesday: {},
	}

	assert.True(t, ws.IsDayOpen(Monday))
	assert.False(t, ws.IsDayOpen(Tuesday), "a day with zero shifts is closed")
	assert.False(t, ws.IsDayOpen(Friday), "an unconfigured day is closed")
	assert.Empty(t, ws.ShiftsForDay(Friday))
	assert.True(t, ws.HasAnyOpenDay())

	assert.False(t, WeeklySchedule{}.HasAnyOpenDay())
	assert.False(t, WeeklySchedule{Sunday: {}}.HasAnyOpenDay())
}

func TestWeeklyScheduleContainsTime(t *testing.T) {
	ws := WeeklySchedule{
		Monday: {
			{Start: 9 * 60, End: 12 * 60},
			{Start: 13 * 60, End: 17 * 60},
		},
	}

	assert.True(t, ws.ContainsTime(monday, 11*60+30))
	assert.False(t, ws.ContainsTime(monday, 12*60+30), "gap between shifts")
	assert.False(t, ws.ContainsTime(tuesday, 10*60), "closed day has no shifts")
	assert.True(t, ws.IsDateOpen(monday))
	assert.False(t, ws.IsDateOpen(tuesday))
}
