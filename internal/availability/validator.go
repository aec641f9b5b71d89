package availability

import "time"

type Reason string

const (
	ReasonNoScheduleConfigured Reason = "no-schedule-configured"
	ReasonClinicClosedThatDay  Reason = "clinic-closed-that-day"
	ReasonOutsideShiftHours    Reason = "outside-shift-hours"
	ReasonMalformedTime        Reason = "malformed-time"
)

// Candidate is a proposed booking: a calendar date plus a clock reading
// as entered by the receptionist.
type Candidate struct {
	Date time.Time
	Time ClockTime
}

type ValidationResult struct {
	IsValid bool   `json:"isValid"`
	Reason  Reason `json:"reason,omitempty"`
}

func invalid(reason Reason) ValidationResult {
	return ValidationResult{IsValid: false, Reason: reason}
}

// Validate checks a candidate booking against the clinic's weekly
// schedule. It is a pure function of its arguments and represents every
// failure in the result instead of an error.
//
// The checks run from the most global failure to the narrowest so the
// caller can show one precise message: a clinic without any schedule is
// reported before anything date-specific.
func Validate(ws WeeklySchedule, c Candidate) ValidationResult {
	if !ws.HasAnyOpenDay() {
		return invalid(ReasonNoScheduleConfigured)
	}

	t, err := c.Time.Normalize()
	if err != nil {
		return invalid(ReasonMalformedTime)
	}

	if !ws.IsDateOpen(c.Date) {
		return invalid(ReasonClinicClosedThatDay)
	}

	if !ws.ContainsTime(c.Date, t) {
		return invalid(ReasonOutsideShiftHours)
	}

	return ValidationResult{IsValid: true}
}
