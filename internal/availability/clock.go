package availability

import (
	"errors"
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time expressed as minutes since midnight,
// in [0, 1439]. It carries no time zone.
type TimeOfDay int

const MinutesPerDay = 24 * 60

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// ErrMalformedTime is returned whenever a clock component falls outside
// its valid numeric range. Callers are expected to convert it into a
// validation verdict rather than propagate it.
var ErrMalformedTime = errors.New("malformed time")

// Period is the morning/evening marker of a 12-hour clock reading.
// PeriodNone marks a 24-hour reading.
type Period int

const (
	PeriodNone Period = iota
	PeriodAM
	PeriodPM
)

// ClockTime is a time-of-day as entered by a user: either a 24-hour
// reading (Period == PeriodNone, hour 0-23) or a 12-hour reading with a
// period marker (hour 1-12).
type ClockTime struct {
	Hour   int
	Minute int
	Period Period
}

// Normalize converts a clock reading into minutes since midnight.
//
// 12-hour rules: 12 AM maps to hour 0, 12 PM stays hour 12, 1-11 PM adds
// twelve hours, 1-11 AM is used as-is.
func (c ClockTime) Normalize() (TimeOfDay, error) {
	if c.Minute < 0 || c.Minute > 59 {
		return 0, ErrMalformedTime
	}

	hour := c.Hour
	switch c.Period {
	case PeriodNone:
		if hour < 0 || hour > 23 {
			return 0, ErrMalformedTime
		}
	case PeriodAM:
		if hour < 1 || hour > 12 {
			return 0, ErrMalformedTime
		}
		if hour == 12 {
			hour = 0
		}
	case PeriodPM:
		if hour < 1 || hour > 12 {
			return 0, ErrMalformedTime
		}
		if hour != 12 {
			hour += 12
		}
	default:
		return 0, ErrMalformedTime
	}

	return TimeOfDay(hour*60 + c.Minute), nil
}

// ParseClock parses a 24-hour "15:04" or "15:04:05" string.
func ParseClock(s string) (TimeOfDay, error) {
	parsed, err := time.Parse("15:04", s)
	if err != nil {
		parsed, err = time.Parse("15:04:05", s)
		if err != nil {
			return 0, ErrMalformedTime
		}
	}
	return TimeOfDay(parsed.Hour()*60 + parsed.Minute()), nil
}
