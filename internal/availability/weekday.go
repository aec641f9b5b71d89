package availability

import (
	"fmt"
	"time"
)

// Weekday indexes the seven calendar weekdays starting from Sunday,
// matching time.Weekday so schedule keys and date resolution can never
// disagree.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = [7]string{
	"sunday",
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
}

func (d Weekday) String() string {
	if d < Sunday || d > Saturday {
		return fmt.Sprintf("weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

func ParseWeekday(s string) (Weekday, error) {
	for i, name := range weekdayNames {
		if s == name {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}

// WeekdayOf resolves a calendar date to its weekday using the proleptic
// Gregorian calendar, independent of locale.
func WeekdayOf(date time.Time) Weekday {
	return Weekday(date.Weekday())
}
