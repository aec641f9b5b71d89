package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectSlots(ws WeeklySchedule, dateIdx int, granularity int) []string {
	var out []string
	for slot := range ws.Slots(monday.AddDate(0, 0, dateIdx), granularity) {
		out = append(out, slot.String())
	}
	return out
}

func TestSlotsThirtyMinuteGranularity(t *testing.T) {
	ws := mondaySchedule()

	got := collectSlots(ws, 0, 30)
	want := []string{
		"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
		"13:00", "13:30", "14:00", "14:30", "15:00", "15:30", "16:00", "16:30",
	}
	assert.Equal(t, want, got)
	assert.Len(t, got, 14)
	assert.NotContains(t, got, "12:00")
	assert.NotContains(t, got, "17:00")
}

func TestSlotsClosedDayIsEmpty(t *testing.T) {
	assert.Empty(t, collectSlots(mondaySchedule(), 1, 30))
}

func TestSlotsNeverReachShiftEnd(t *testing.T) {
	ws := WeeklySchedule{Monday: {{Start: 9 * 60, End: 10 * 60}}}

	// 25 does not divide the shift length; the last slot is 09:50.
	for slot := range ws.Slots(monday, 25) {
		assert.Less(t, slot, TimeOfDay(10*60))
	}

	got := collectSlots(ws, 0, 25)
	assert.Equal(t, []string{"09:00", "09:25", "09:50"}, got)
}

func TestSlotsAlwaysYieldShiftStart(t *testing.T) {
	ws := mondaySchedule()

	var first TimeOfDay = -1
	for slot := range ws.Slots(monday, 15) {
		first = slot
		break
	}
	require.NotEqual(t, TimeOfDay(-1), first)
	assert.Equal(t, TimeOfDay(9*60), first)
}

func TestSlotsAreRestartable(t *testing.T) {
	ws := mondaySchedule()
	seq := ws.Slots(monday, 30)

	var a, b []TimeOfDay
	for slot := range seq {
		a = append(a, slot)
	}
	for slot := range seq {
		b = append(b, slot)
	}
	assert.Equal(t, a, b)
}

func TestSlotsInvalidGranularity(t *testing.T) {
	assert.Empty(t, collectSlots(mondaySchedule(), 0, 0))
	assert.Empty(t, collectSlots(mondaySchedule(), 0, -15))
}
