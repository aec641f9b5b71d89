package repository

import (
	"context"
	"time"

	"github.com/shifa-dev/clinic-desk/backend/internal/availability"
	"github.com/shifa-dev/clinic-desk/backend/internal/domain"
)

// GetWorkingShifts returns the clinic's weekly working-hours rows,
// ordered Sunday first and by start time within a day.
func (r *Repository) GetWorkingShifts() ([]domain.WorkingShift, error) {
	query := `
		SELECT id, day_of_week, start_time, end_time
		FROM working_shifts
		ORDER BY day_of_week, start_time
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shifts := make([]domain.WorkingShift, 0)
	for rows.Next() {
		var shift domain.WorkingShift
		var dayOfWeek int

		if err := rows.Scan(&shift.ID, &dayOfWeek, &shift.StartTime, &shift.EndTime); err != nil {
			return nil, err
		}
		shift.Weekday = availability.Weekday(dayOfWeek).String()
		shifts = append(shifts, shift)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shifts, nil
}

// ReplaceWorkingShifts swaps the whole weekly schedule in one
// transaction. The settings screen always submits the full
// configuration, so partial updates are never needed.
func (r *Repository) ReplaceWorkingShifts(shifts []domain.WorkingShift) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM working_shifts`); err != nil {
		return err
	}

	for i := range shifts {
		day, err := availability.ParseWeekday(shifts[i].Weekday)
		if err != nil {
			return err
		}

		query := `
			INSERT INTO working_shifts (day_of_week, start_time, end_time)
			VALUES ($1, $2, $3)
			RETURNING id
		`
		if err := tx.QueryRowContext(ctx, query, int(day), shifts[i].StartTime, shifts[i].EndTime).Scan(&shifts[i].ID); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}
