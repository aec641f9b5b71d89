package availability

// Locale binds the culture-specific parts of schedule handling (weekday
// display labels and period markers) to the locale-agnostic core. Only
// the tables differ between locales; none of the validation logic does.
type Locale struct {
	DayLabels     map[Weekday]string
	PeriodMarkers map[string]Period
}

var Arabic = Locale{
	DayLabels: map[Weekday]string{
		Sunday:    "الأحد",
		Monday:    "الاثنين",
		Tuesday:   "الثلاثاء",
		Wednesday: "الأربعاء",
		Thursday:  "الخميس",
		Friday:    "الجمعة",
		Saturday:  "السبت",
	},
	PeriodMarkers: map[string]Period{
		"ص": PeriodAM,
		"م": PeriodPM,
	},
}

var English = Locale{
	DayLabels: map[Weekday]string{
		Sunday:    "Sunday",
		Monday:    "Monday",
		Tuesday:   "Tuesday",
		Wednesday: "Wednesday",
		Thursday:  "Thursday",
		Friday:    "Friday",
		Saturday:  "Saturday",
	},
	PeriodMarkers: map[string]Period{
		"AM": PeriodAM,
		"PM": PeriodPM,
		"am": PeriodAM,
		"pm": PeriodPM,
	},
}

// PeriodOf resolves a period marker. An empty marker means a 24-hour
// reading; an unknown marker is malformed.
func (l Locale) PeriodOf(marker string) (Period, bool) {
	if marker == "" {
		return PeriodNone, true
	}
	p, ok := l.PeriodMarkers[marker]
	return p, ok
}
