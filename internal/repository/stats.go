package repository

import (
	"context"
	"time"

	"github.com/shifa-dev/clinic-desk/backend/internal/domain"
)

// GetOverviewStats computes the dashboard counters in one round trip
// per panel. today is the clinic's current date; weekStart the Sunday
// opening the current week.
func (r *Repository) GetOverviewStats(today, weekStart time.Time) (*domain.OverviewStats, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	stats := &domain.OverviewStats{
		TodayByStatus: make(map[string]int64),
	}

	query := `SELECT count(*) FROM patients`
	if err := r.dbpool.QueryRowContext(ctx, query).Scan(&stats.TotalPatients); err != nil {
		return nil, err
	}

	query = `SELECT count(*) FROM appointments WHERE visit_date = $1`
	if err := r.dbpool.QueryRowContext(ctx, query, today).Scan(&stats.AppointmentsToday); err != nil {
		return nil, err
	}

	query = `SELECT count(*) FROM appointments WHERE visit_date >= $1 AND visit_date < $2`
	if err := r.dbpool.QueryRowContext(ctx, query, weekStart, weekStart.AddDate(0, 0, 7)).Scan(&stats.AppointmentsThisWeek); err != nil {
		return nil, err
	}

	query = `SELECT count(*) FROM patients WHERE created_at >= date_trunc('month', $1::date)`
	if err := r.dbpool.QueryRowContext(ctx, query, today).Scan(&stats.NewPatientsThisMonth); err != nil {
		return nil, err
	}

	query = `SELECT status, count(*) FROM appointments WHERE visit_date = $1 GROUP BY status`
	rows, err := r.dbpool.QueryContext(ctx, query, today)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats.TodayByStatus[status] = count
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}
