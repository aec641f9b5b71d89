package handler

import (
	"net/http"
	"time"
)

func (h *Handler) GetOverviewStats(w http.ResponseWriter, r *http.Request) {
	today := truncateToDate(time.Now())

	stats, err := h.repository.GetOverviewStats(today, startOfWeek(today))
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "overview statistics retrieved", stats)
}
