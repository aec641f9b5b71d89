package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shifa-dev/clinic-desk/backend/internal/availability"
	"github.com/shifa-dev/clinic-desk/backend/internal/domain"
	"github.com/shifa-dev/clinic-desk/backend/internal/utils"
)

// reasonMessages maps the booking validator's reason codes to the
// inline messages shown next to the booking form fields.
var reasonMessages = map[availability.Reason]string{
	availability.ReasonNoScheduleConfigured: "the clinic has no working hours configured yet",
	availability.ReasonClinicClosedThatDay:  "the clinic is closed on the chosen day",
	availability.ReasonOutsideShiftHours:    "the chosen time is outside the clinic's working hours",
	availability.ReasonMalformedTime:        "the chosen time is not a valid clock time",
}

func (h *Handler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PatientID int64  `json:"patientID" validate:"required"`
		Date      string `json:"date" validate:"required,datetime=2006-01-02"`
		Hour      int    `json:"hour"`
		Minute    int    `json:"minute"`
		Period    string `json:"period"` // "", "ص", "م", "AM" or "PM"
		Reason    string `json:"reason"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	period, ok := availability.Arabic.PeriodOf(req.Period)
	if !ok {
		period, ok = availability.English.PeriodOf(req.Period)
	}
	if !ok {
		h.errorResponse(w, r, "unknown period marker")
		return
	}

	shifts, err := h.repository.GetWorkingShifts()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	schedule := utils.BuildWeeklySchedule(shifts)

	candidate := availability.Candidate{
		Date: date,
		Time: availability.ClockTime{Hour: req.Hour, Minute: req.Minute, Period: period},
	}

	result := availability.Validate(schedule, candidate)
	if !result.IsValid {
		h.writeJSON(w, r, http.StatusOK, Response{
			Success: false,
			Message: reasonMessages[result.Reason],
			Data:    result,
		})
		return
	}

	// the candidate passed validation, so Normalize cannot fail here
	startTime, _ := candidate.Time.Normalize()

	patient, err := h.repository.GetPatientByID(req.PatientID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "patient not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	taken, err := h.repository.SlotTaken(date, startTime.String())
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if taken {
		h.errorResponse(w, r, "this time is already booked")
		return
	}

	appointment := &domain.Appointment{
		PatientID:   patient.ID,
		PatientName: patient.FullName,
		VisitDate:   date,
		StartTime:   startTime.String(),
		Reason:      req.Reason,
		Status:      domain.AppointmentStatusWaiting,
	}

	if err := h.repository.CreateAppointment(appointment); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// confirmation mail is best effort: the booking itself already
	// succeeded, so a full queue must not fail the request
	if patient.Email != "" {
		mailMessage := domain.MailMessage{
			Type: "appointment_confirmation",
			To:   patient.Email,
			Data: domain.AppointmentConfirmationMailData{
				PatientName: patient.FullName,
				ClinicName:  h.config.Clinic.Name,
				VisitDate:   appointment.VisitDate.Format(time.DateOnly),
				StartTime:   appointment.StartTime,
			},
		}

		if mailData, err := json.Marshal(mailMessage); err == nil {
			ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
			defer cancel()

			if err := h.mailChannel.PublishWithContext(
				ctx,
				"",
				"email_queue",
				true,
				false,
				amqp.Publishing{
					ContentType: "application/json",
					Body:        mailData,
				},
			); err != nil {
				h.logInternalServerError(r, err)
			}
		}
	}

	h.successResponse(w, r, "appointment booked", appointment)
}

func (h *Handler) GetAppointmentsByDate(w http.ResponseWriter, r *http.Request) {
	date := time.Now()
	if dateParam := r.URL.Query().Get("date"); dateParam != "" {
		var err error
		date, err = time.Parse(time.DateOnly, dateParam)
		if err != nil {
			h.errorResponse(w, r, "invalid date, expected YYYY-MM-DD")
			return
		}
	}

	appointments, err := h.repository.GetAppointmentsByDate(truncateToDate(date))
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "appointments retrieved", appointments)
}

// GetVisitQueue buckets today's appointments the way the queue screen
// shows them: the patient in the consultation room first, then the
// waiting room in arrival order, then finished visits.
func (h *Handler) GetVisitQueue(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.repository.GetAppointmentsByDate(truncateToDate(time.Now()))
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	queue := struct {
		InProgress []*domain.Appointment `json:"inProgress"`
		Waiting    []*domain.Appointment `json:"waiting"`
		Completed  []*domain.Appointment `json:"completed"`
	}{
		InProgress: make([]*domain.Appointment, 0),
		Waiting:    make([]*domain.Appointment, 0),
		Completed:  make([]*domain.Appointment, 0),
	}

	for _, appointment := range appointments {
		switch appointment.Status {
		case domain.AppointmentStatusInProgress:
			queue.InProgress = append(queue.InProgress, appointment)
		case domain.AppointmentStatusWaiting:
			queue.Waiting = append(queue.Waiting, appointment)
		case domain.AppointmentStatusCompleted:
			queue.Completed = append(queue.Completed, appointment)
		}
		// cancelled visits stay off the queue
	}

	h.successResponse(w, r, "visit queue retrieved", queue)
}

func (h *Handler) GetWeeklyCalendar(w http.ResponseWriter, r *http.Request) {
	weekStart := startOfWeek(time.Now())
	if startParam := r.URL.Query().Get("start"); startParam != "" {
		parsed, err := time.Parse(time.DateOnly, startParam)
		if err != nil {
			h.errorResponse(w, r, "invalid start date, expected YYYY-MM-DD")
			return
		}
		weekStart = startOfWeek(parsed)
	}

	appointments, err := h.repository.GetAppointmentsBetween(weekStart, weekStart.AddDate(0, 0, 7))
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	days := make([]map[string]any, 0, 7)
	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)
		dayAppointments := make([]*domain.Appointment, 0)
		for _, appointment := range appointments {
			if appointment.VisitDate.Format(time.DateOnly) == day.Format(time.DateOnly) {
				dayAppointments = append(dayAppointments, appointment)
			}
		}
		days = append(days, map[string]any{
			"date":         day.Format(time.DateOnly),
			"weekday":      availability.WeekdayOf(day).String(),
			"appointments": dayAppointments,
		})
	}

	h.successResponse(w, r, "weekly calendar retrieved", days)
}

func (h *Handler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	appointment := r.Context().Value(AppointmentCtx).(*domain.Appointment)
	h.successResponse(w, r, "appointment retrieved", appointment)
}

func (h *Handler) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	appointment := r.Context().Value(AppointmentCtx).(*domain.Appointment)

	var req struct {
		Status string `json:"status" validate:"required,oneof=waiting in_progress completed cancelled"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if appointment.Status == domain.AppointmentStatusCompleted || appointment.Status == domain.AppointmentStatusCancelled {
		h.errorResponse(w, r, "this appointment is already closed")
		return
	}

	appointment.Status = domain.AppointmentStatus(req.Status)

	if err := h.repository.UpdateAppointmentStatus(appointment); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "could not update the appointment, please try again")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "appointment status updated", appointment)
}

func (h *Handler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	appointment := r.Context().Value(AppointmentCtx).(*domain.Appointment)

	if appointment.Status == domain.AppointmentStatusCancelled {
		h.errorResponse(w, r, "this appointment is already cancelled")
		return
	}

	appointment.Status = domain.AppointmentStatusCancelled

	if err := h.repository.UpdateAppointmentStatus(appointment); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "could not cancel the appointment, please try again")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "appointment cancelled", appointment)
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// startOfWeek returns the Sunday opening the week containing t. The
// calendar view starts its week on Sunday, like the schedule.
func startOfWeek(t time.Time) time.Time {
	return truncateToDate(t).AddDate(0, 0, -int(t.Weekday()))
}
