package domain

import "time"

type AppointmentStatus string

const (
	AppointmentStatusWaiting    AppointmentStatus = "waiting"
	AppointmentStatusInProgress AppointmentStatus = "in_progress"
	AppointmentStatusCompleted  AppointmentStatus = "completed"
	AppointmentStatusCancelled  AppointmentStatus = "cancelled"
)

type Appointment struct {
	ID          int64             `json:"id"`
	PatientID   int64             `json:"patientID"`
	PatientName string            `json:"patientName,omitempty"`
	VisitDate   time.Time         `json:"visitDate"`
	StartTime   string            `json:"startTime"` // "15:04"
	Reason      string            `json:"reason"`
	Status      AppointmentStatus `json:"status"`
	CreatedAt   time.Time         `json:"createdAt"`
	Version     int32             `json:"-"`
}
