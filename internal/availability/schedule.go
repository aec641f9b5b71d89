package availability

import "time"

// Shift is one working period within a day, half-open: a booking at the
// exact end time is outside the shift. A shift may not cross midnight.
type Shift struct {
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
}

func (s Shift) Valid() bool {
	return s.Start >= 0 && s.Start < s.End && s.End <= MinutesPerDay
}

func (s Shift) Contains(t TimeOfDay) bool {
	return t >= s.Start && t < s.End
}

// WeeklySchedule maps each weekday to its ordered shifts. A day is open
// iff it has at least one shift; there is no separate enabled flag to
// fall out of sync with the shift list.
type WeeklySchedule map[Weekday][]Shift

// ShiftsForDay returns the day's shifts, empty when the day is closed or
// unconfigured. It never fails.
func (ws WeeklySchedule) ShiftsForDay(day Weekday) []Shift {
	return ws[day]
}

func (ws WeeklySchedule) IsDayOpen(day Weekday) bool {
	return len(ws[day]) > 0
}

// HasAnyOpenDay distinguishes "no schedule configured at all" from
// "closed on this particular day".
func (ws WeeklySchedule) HasAnyOpenDay() bool {
	for day := Sunday; day <= Saturday; day++ {
		if ws.IsDayOpen(day) {
			return true
		}
	}
	return false
}

func (ws WeeklySchedule) IsDateOpen(date time.Time) bool {
	return ws.IsDayOpen(WeekdayOf(date))
}

// ContainsTime reports whether the given time of day falls inside any
// shift open on the date's weekday. Overlapping shifts behave as the
// union of their intervals.
func (ws WeeklySchedule) ContainsTime(date time.Time, t TimeOfDay) bool {
	for _, shift := range ws.ShiftsForDay(WeekdayOf(date)) {
		if shift.Contains(t) {
			return true
		}
	}
	return false
}
