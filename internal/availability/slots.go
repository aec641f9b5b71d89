package availability

import (
	"iter"
	"time"
)

// Slots enumerates the bookable minute-of-day values on the given date
// at the given granularity. Slots are aligned to each shift's start and
// never include the shift's end (consistent with Shift.Contains). The
// sequence is lazy and restartable; ranging over it twice yields the
// same values. A closed day, or a granularity below one minute, yields
// nothing.
func (ws WeeklySchedule) Slots(date time.Time, granularityMinutes int) iter.Seq[TimeOfDay] {
	shifts := ws.ShiftsForDay(WeekdayOf(date))

	return func(yield func(TimeOfDay) bool) {
		if granularityMinutes < 1 {
			return
		}
		for _, shift := range shifts {
			for t := shift.Start; t < shift.End; t += TimeOfDay(granularityMinutes) {
				if !yield(t) {
					return
				}
			}
		}
	}
}
