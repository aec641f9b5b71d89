package handler

import (
	"database/sql"
	"errors"
	"net/http"
)

func (h *Handler) GetClinicProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.repository.GetClinicProfile()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "clinic profile retrieved", profile)
}

func (h *Handler) UpdateClinicProfile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    *string `json:"name"`
		Address *string `json:"address"`
		Phone   *string `json:"phone"`
		Email   *string `json:"email" validate:"omitempty,email"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	profile, err := h.repository.GetClinicProfile()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.Address != nil {
		profile.Address = *req.Address
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.Email != nil {
		profile.Email = *req.Email
	}

	if err := h.repository.UpdateClinicProfile(profile); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "could not update the clinic profile, please try again")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "clinic profile updated", profile)
}
