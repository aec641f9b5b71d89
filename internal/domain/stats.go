package domain

// OverviewStats feeds the dashboard statistics panels with live counts.
type OverviewStats struct {
	TotalPatients        int64            `json:"totalPatients"`
	AppointmentsToday    int64            `json:"appointmentsToday"`
	AppointmentsThisWeek int64            `json:"appointmentsThisWeek"`
	TodayByStatus        map[string]int64 `json:"todayByStatus"`
	NewPatientsThisMonth int64            `json:"newPatientsThisMonth"`
}
