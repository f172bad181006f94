package schedulerepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/piggybank/internal/domain"
	"github.com/GlebRadaev/piggybank/internal/pg"
)

const scheduleCols = `id, group_id, child_id, amount, interval_days, next_run_at, created_by, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanSchedule(row pgx.Row) (*domain.AllowanceSchedule, error) {
	var s domain.AllowanceSchedule
	err := row.Scan(&s.ID, &s.GroupID, &s.ChildID, &s.Amount, &s.IntervalDays, &s.NextRunAt, &s.CreatedBy, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) collect(rows pgx.Rows) ([]domain.AllowanceSchedule, error) {
	defer rows.Close()

	schedules := make([]domain.AllowanceSchedule, 0)
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			zap.L().Error("failed to scan allowance schedule row", zap.Error(err))
			return nil, err
		}
		schedules = append(schedules, *s)
	}
	return schedules, rows.Err()
}

// UpsertSchedule keeps one schedule per child and replaces it wholesale.
func (r *Repository) UpsertSchedule(ctx context.Context, s *domain.AllowanceSchedule) (*domain.AllowanceSchedule, error) {
	query := `
		INSERT INTO piggy_allowance_schedules (group_id, child_id, amount, interval_days, next_run_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (group_id, child_id) DO UPDATE
		SET amount = EXCLUDED.amount,
			interval_days = EXCLUDED.interval_days,
			next_run_at = EXCLUDED.next_run_at,
			created_by = EXCLUDED.created_by
		RETURNING ` + scheduleCols
	saved, err := scanSchedule(r.db.QueryRow(ctx, query, s.GroupID, s.ChildID, s.Amount, s.IntervalDays, s.NextRunAt, s.CreatedBy))
	if err != nil {
		zap.L().Error("can't save allowance schedule", zap.Error(err))
		return nil, err
	}
	return saved, nil
}

func (r *Repository) ListSchedules(ctx context.Context, groupID string) ([]domain.AllowanceSchedule, error) {
	query := `
		SELECT ` + scheduleCols + `
		FROM piggy_allowance_schedules
		WHERE group_id = $1
		ORDER BY created_at
	`
	rows, err := r.db.Query(ctx, query, groupID)
	if err != nil {
		zap.L().Error("failed to fetch allowance schedules", zap.Error(err))
		return nil, err
	}
	return r.collect(rows)
}

func (r *Repository) DeleteSchedule(ctx context.Context, groupID, scheduleID string) (bool, error) {
	query := `
		DELETE FROM piggy_allowance_schedules
		WHERE id = $1 AND group_id = $2
	`
	tag, err := r.db.Exec(ctx, query, scheduleID, groupID)
	if err != nil {
		zap.L().Error("failed to delete allowance schedule", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) FindDue(ctx context.Context, now time.Time, limit uint32) ([]domain.AllowanceSchedule, error) {
	query := `
		SELECT ` + scheduleCols + `
		FROM piggy_allowance_schedules
		WHERE next_run_at <= $1
		ORDER BY next_run_at
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, now, limit)
	if err != nil {
		zap.L().Error("failed to fetch due allowance schedules", zap.Error(err))
		return nil, err
	}
	return r.collect(rows)
}

// AdvanceSchedule moves next_run_at from prev to next. It reports false when
// next_run_at no longer equals prev, meaning another worker already paid
// this run.
func (r *Repository) AdvanceSchedule(ctx context.Context, scheduleID string, prev, next time.Time) (bool, error) {
	query := `
		UPDATE piggy_allowance_schedules
		SET next_run_at = $3
		WHERE id = $1 AND next_run_at = $2
	`
	tag, err := r.db.Exec(ctx, query, scheduleID, prev, next)
	if err != nil {
		zap.L().Error("failed to advance allowance schedule", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
