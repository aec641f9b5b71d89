package repository

import (
	"context"
	"time"

	"github.com/shifa-dev/clinic-desk/backend/internal/domain"
)

func (r *Repository) CreatePatient(patient *domain.Patient) error {
	query := `
		INSERT INTO patients (full_name, phone, email, gender, birth_date, address, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	params := []any{patient.FullName, patient.Phone, patient.Email, patient.Gender, patient.BirthDate, patient.Address, patient.Notes}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&patient.ID, &patient.CreatedAt, &patient.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetPatientByID(id int64) (*domain.Patient, error) {
	query := `
		SELECT full_name, phone, email, gender, birth_date, address, notes, created_at, version
		FROM patients WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	patient := &domain.Patient{
		ID: id,
	}

	dst := []any{&patient.FullName, &patient.Phone, &patient.Email, &patient.Gender, &patient.BirthDate, &patient.Address, &patient.Notes, &patient.CreatedAt, &patient.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return patient, nil
}

func (r *Repository) GetAllPatients() ([]*domain.Patient, error) {
	query := `
		SELECT id, full_name, phone, email, gender, birth_date, address, notes, created_at, version
		FROM patients ORDER BY id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	patients := make([]*domain.Patient, 0)
	for rows.Next() {
		patient := &domain.Patient{}
		dst := []any{&patient.ID, &patient.FullName, &patient.Phone, &patient.Email, &patient.Gender, &patient.BirthDate, &patient.Address, &patient.Notes, &patient.CreatedAt, &patient.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		patients = append(patients, patient)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return patients, nil
}

// SearchPatients matches the receptionist's quick-search box: a partial
// name (case-insensitive) or a phone prefix.
func (r *Repository) SearchPatients(term string) ([]*domain.Patient, error) {
	query := `
		SELECT id, full_name, phone, email, gender, birth_date, address, notes, created_at, version
		FROM patients
		WHERE full_name ILIKE '%' || $1 || '%' OR phone LIKE $1 || '%'
		ORDER BY full_name
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, term)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	patients := make([]*domain.Patient, 0)
	for rows.Next() {
		patient := &domain.Patient{}
		dst := []any{&patient.ID, &patient.FullName, &patient.Phone, &patient.Email, &patient.Gender, &patient.BirthDate, &patient.Address, &patient.Notes, &patient.CreatedAt, &patient.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		patients = append(patients, patient)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return patients, nil
}

func (r *Repository) UpdatePatient(patient *domain.Patient) error {
	query := `
		UPDATE patients
		SET
			full_name = $1,
			phone = $2,
			email = $3,
			gender = $4,
			birth_date = $5,
			address = $6,
			notes = $7,
			version = version + 1
		WHERE id = $8 AND version = $9
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	params := []any{patient.FullName, patient.Phone, patient.Email, patient.Gender, patient.BirthDate, patient.Address, patient.Notes, patient.ID, patient.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&patient.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeletePatient(id int64) error {
	query := `DELETE FROM patients WHERE id = $1`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}
