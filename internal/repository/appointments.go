package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/shifa-dev/clinic-desk/backend/internal/domain"
)

func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appointment := &domain.Appointment{}
		dst := []any{&appointment.ID, &appointment.PatientID, &appointment.PatientName, &appointment.VisitDate, &appointment.StartTime, &appointment.Reason, &appointment.Status, &appointment.CreatedAt, &appointment.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		appointments = append(appointments, appointment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return appointments, nil
}

func (r *Repository) CreateAppointment(appointment *domain.Appointment) error {
	query := `
		INSERT INTO appointments (patient_id, visit_date, start_time, reason, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	params := []any{appointment.PatientID, appointment.VisitDate, appointment.StartTime, appointment.Reason, appointment.Status}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&appointment.ID, &appointment.CreatedAt, &appointment.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAppointmentByID(id int64) (*domain.Appointment, error) {
	query := `
		SELECT a.patient_id, p.full_name, a.visit_date, a.start_time, a.reason, a.status, a.created_at, a.version
		FROM appointments a
		JOIN patients p ON p.id = a.patient_id
		WHERE a.id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	appointment := &domain.Appointment{
		ID: id,
	}

	dst := []any{&appointment.PatientID, &appointment.PatientName, &appointment.VisitDate, &appointment.StartTime, &appointment.Reason, &appointment.Status, &appointment.CreatedAt, &appointment.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return appointment, nil
}

// GetAppointmentsByDate drives the daily visit queue, ordered by start
// time so the receptionist sees visits in arrival order.
func (r *Repository) GetAppointmentsByDate(date time.Time) ([]*domain.Appointment, error) {
	query := `
		SELECT a.id, a.patient_id, p.full_name, a.visit_date, a.start_time, a.reason, a.status, a.created_at, a.version
		FROM appointments a
		JOIN patients p ON p.id = a.patient_id
		WHERE a.visit_date = $1
		ORDER BY a.start_time, a.id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// GetAppointmentsBetween returns appointments with from <= visit_date <
// to, feeding the weekly calendar.
func (r *Repository) GetAppointmentsBetween(from, to time.Time) ([]*domain.Appointment, error) {
	query := `
		SELECT a.id, a.patient_id, p.full_name, a.visit_date, a.start_time, a.reason, a.status, a.created_at, a.version
		FROM appointments a
		JOIN patients p ON p.id = a.patient_id
		WHERE a.visit_date >= $1 AND a.visit_date < $2
		ORDER BY a.visit_date, a.start_time, a.id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAppointments(rows)
}

func (r *Repository) UpdateAppointmentStatus(appointment *domain.Appointment) error {
	query := `
		UPDATE appointments
		SET
			status = $1,
			version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	params := []any{appointment.Status, appointment.ID, appointment.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&appointment.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteAppointment(id int64) error {
	query := `DELETE FROM appointments WHERE id = $1`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}

// SlotTaken reports whether a non-cancelled appointment already occupies
// the exact date and start time.
func (r *Repository) SlotTaken(date time.Time, startTime string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM appointments
			WHERE visit_date = $1 AND start_time = $2 AND status <> 'cancelled'
		)
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var taken bool
	if err := r.dbpool.QueryRowContext(ctx, query, date, startTime).Scan(&taken); err != nil {
		return false, err
	}

	return taken, nil
}
