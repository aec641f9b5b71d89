package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/shifa-dev/clinic-desk/backend/internal/availability"
	"github.com/shifa-dev/clinic-desk/backend/internal/domain"
	"github.com/shifa-dev/clinic-desk/backend/internal/utils"
)

type weeklyScheduleDay struct {
	Weekday string                `json:"weekday"`
	Label   string                `json:"label"`
	Open    bool                  `json:"open"`
	Shifts  []domain.WorkingShift `json:"shifts"`
}

// GetWeeklySchedule returns all seven days Sunday first, so the
// settings screen can render closed days without deriving them.
func (h *Handler) GetWeeklySchedule(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.repository.GetWorkingShifts()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	byDay := make(map[string][]domain.WorkingShift)
	for _, shift := range shifts {
		byDay[shift.Weekday] = append(byDay[shift.Weekday], shift)
	}

	days := make([]weeklyScheduleDay, 0, 7)
	for day := availability.Sunday; day <= availability.Saturday; day++ {
		dayShifts := byDay[day.String()]
		if dayShifts == nil {
			dayShifts = make([]domain.WorkingShift, 0)
		}
		days = append(days, weeklyScheduleDay{
			Weekday: day.String(),
			Label:   availability.Arabic.DayLabels[day],
			Open:    len(dayShifts) > 0,
			Shifts:  dayShifts,
		})
	}

	h.successResponse(w, r, "weekly schedule retrieved", days)
}

func (h *Handler) ReplaceWeeklySchedule(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Shifts []struct {
			Weekday   string `json:"weekday" validate:"required"`
			StartTime string `json:"startTime" validate:"required"`
			EndTime   string `json:"endTime" validate:"required"`
		} `json:"shifts" validate:"dive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	shifts := make([]domain.WorkingShift, 0, len(req.Shifts))
	for _, shift := range req.Shifts {
		shifts = append(shifts, domain.WorkingShift{
			Weekday:   shift.Weekday,
			StartTime: shift.StartTime,
			EndTime:   shift.EndTime,
		})
	}

	// overlapping or inverted shifts are a configuration error and are
	// rejected here, before they can reach the booking validator
	if err := utils.ValidateWorkingShifts(shifts); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.ReplaceWorkingShifts(shifts); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "weekly schedule saved", shifts)
}

func (h *Handler) GetAvailableSlots(w http.ResponseWriter, r *http.Request) {
	dateParam := r.URL.Query().Get("date")
	date, err := time.Parse(time.DateOnly, dateParam)
	if err != nil {
		h.errorResponse(w, r, "invalid date, expected YYYY-MM-DD")
		return
	}

	granularity := h.config.Booking.SlotGranularity
	if granularityParam := r.URL.Query().Get("granularity"); granularityParam != "" {
		granularity, err = strconv.Atoi(granularityParam)
		if err != nil || granularity < 1 {
			h.errorResponse(w, r, "invalid granularity")
			return
		}
	}

	shifts, err := h.repository.GetWorkingShifts()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	schedule := utils.BuildWeeklySchedule(shifts)

	slots := make([]string, 0)
	for slot := range schedule.Slots(date, granularity) {
		slots = append(slots, slot.String())
	}

	h.successResponse(w, r, "available slots retrieved", map[string]any{
		"date":    date.Format(time.DateOnly),
		"weekday": availability.WeekdayOf(date).String(),
		"open":    schedule.IsDateOpen(date),
		"slots":   slots,
	})
}
