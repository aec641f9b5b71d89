package utils

import (
	"fmt"

	"github.com/shifa-dev/clinic-desk/backend/internal/availability"
	"github.com/shifa-dev/clinic-desk/backend/internal/domain"
)

// ValidateWorkingShifts checks a replacement weekly schedule before it
// is saved: every row must name a known weekday, parse as "15:04" times
// with start before end, and rows on the same weekday must not overlap.
// The runtime validator treats overlapping shifts as a union, so overlap
// is rejected here, at configuration time.
func ValidateWorkingShifts(shifts []domain.WorkingShift) error {
	parsed := make([]availability.Shift, len(shifts))
	days := make([]availability.Weekday, len(shifts))

	for i, shift := range shifts {
		day, err := availability.ParseWeekday(shift.Weekday)
		if err != nil {
			return fmt.Errorf("shift %d: %w", i+1, err)
		}
		days[i] = day

		start, err := availability.ParseClock(shift.StartTime)
		if err != nil {
			return fmt.Errorf("shift %d has a malformed start time", i+1)
		}
		end, err := availability.ParseClock(shift.EndTime)
		if err != nil {
			return fmt.Errorf("shift %d has a malformed end time", i+1)
		}

		parsed[i] = availability.Shift{Start: start, End: end}
		if !parsed[i].Valid() {
			return fmt.Errorf("shift %d must start before it ends", i+1)
		}
	}

	// pairwise overlap check per weekday
	for i := 0; i < len(parsed); i++ {
		for j := i + 1; j < len(parsed); j++ {
			if days[i] != days[j] {
				continue
			}
			if parsed[i].Start < parsed[j].End && parsed[j].Start < parsed[i].End {
				return fmt.Errorf("shifts %d and %d overlap on %s", i+1, j+1, days[i])
			}
		}
	}

	return nil
}

// BuildWeeklySchedule converts saved working-shift rows into the
// availability model. Rows must already have passed
// ValidateWorkingShifts; malformed rows are skipped rather than trusted.
func BuildWeeklySchedule(shifts []domain.WorkingShift) availability.WeeklySchedule {
	ws := availability.WeeklySchedule{}

	for _, shift := range shifts {
		day, err := availability.ParseWeekday(shift.Weekday)
		if err != nil {
			continue
		}
		start, err := availability.ParseClock(shift.StartTime)
		if err != nil {
			continue
		}
		end, err := availability.ParseClock(shift.EndTime)
		if err != nil {
			continue
		}
		s := availability.Shift{Start: start, End: end}
		if !s.Valid() {
			continue
		}
		ws[day] = append(ws[day], s)
	}

	return ws
}
