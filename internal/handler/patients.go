package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shifa-dev/clinic-desk/backend/internal/domain"
)

func (h *Handler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName  string `json:"fullName" validate:"required"`
		Phone     string `json:"phone" validate:"required"`
		Email     string `json:"email" validate:"omitempty,email"`
		Gender    string `json:"gender" validate:"required,oneof=male female"`
		BirthDate string `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
		Address   string `json:"address"`
		Notes     string `json:"notes"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	patient := &domain.Patient{
		FullName: req.FullName,
		Phone:    req.Phone,
		Email:    req.Email,
		Gender:   domain.Gender(req.Gender),
		Address:  req.Address,
		Notes:    req.Notes,
	}

	if req.BirthDate != "" {
		birthDate, err := time.Parse(time.DateOnly, req.BirthDate)
		if err != nil {
			h.badRequest(w, r, err)
			return
		}
		patient.BirthDate = &birthDate
	}

	if err := h.repository.CreatePatient(patient); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "patients_phone_key":
				h.errorResponse(w, r, "a patient with this phone number is already registered")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "patient registered", patient)
}

func (h *Handler) GetAllPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.repository.GetAllPatients()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "patient list retrieved", patients)
}

func (h *Handler) SearchPatients(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	if term == "" {
		h.errorResponse(w, r, "missing search term")
		return
	}

	patients, err := h.repository.SearchPatients(term)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "search completed", patients)
}

func (h *Handler) GetPatient(w http.ResponseWriter, r *http.Request) {
	patient := r.Context().Value(PatientInfoCtx).(*domain.Patient)
	h.successResponse(w, r, "patient retrieved", patient)
}

func (h *Handler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	patient := r.Context().Value(PatientInfoCtx).(*domain.Patient)

	var req struct {
		FullName  *string `json:"fullName"`
		Phone     *string `json:"phone"`
		Email     *string `json:"email" validate:"omitempty,email"`
		Gender    *string `json:"gender" validate:"omitempty,oneof=male female"`
		BirthDate *string `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
		Address   *string `json:"address"`
		Notes     *string `json:"notes"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.FullName != nil {
		patient.FullName = *req.FullName
	}
	if req.Phone != nil {
		patient.Phone = *req.Phone
	}
	if req.Email != nil {
		patient.Email = *req.Email
	}
	if req.Gender != nil {
		patient.Gender = domain.Gender(*req.Gender)
	}
	if req.BirthDate != nil {
		birthDate, err := time.Parse(time.DateOnly, *req.BirthDate)
		if err != nil {
			h.badRequest(w, r, err)
			return
		}
		patient.BirthDate = &birthDate
	}
	if req.Address != nil {
		patient.Address = *req.Address
	}
	if req.Notes != nil {
		patient.Notes = *req.Notes
	}

	if err := h.repository.UpdatePatient(patient); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "patients_phone_key":
				h.errorResponse(w, r, "a patient with this phone number is already registered")
			default:
				h.internalServerError(w, r, err)
			}
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "could not update the patient, please try again")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "patient updated", patient)
}

func (h *Handler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	patient := r.Context().Value(PatientInfoCtx).(*domain.Patient)

	if err := h.repository.DeletePatient(patient.ID); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "appointments_patient_id_fkey":
				h.errorResponse(w, r, "this patient has appointments and cannot be deleted")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "patient deleted", nil)
}
