package domain

// WorkingShift is one row of the clinic's weekly working-hours
// configuration. Times are 24-hour "15:04" strings; a weekday with no
// rows is a closed day.
type WorkingShift struct {
	ID        int64  `json:"id"`
	Weekday   string `json:"weekday"` // "sunday" .. "saturday"
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}
