package requestrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/piggybank/internal/domain"
	"github.com/GlebRadaev/piggybank/internal/pg"
)

const requestCols = `id, group_id, child_id, amount, reason, destination, status, created_at, updated_at, resolved_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanRequest(row pgx.Row) (*domain.OpenRequest, error) {
	var req domain.OpenRequest
	err := row.Scan(&req.ID, &req.GroupID, &req.ChildID, &req.Amount, &req.Reason, &req.Destination,
		&req.Status, &req.CreatedAt, &req.UpdatedAt, &req.ResolvedAt)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *Repository) CreateOpenRequest(ctx context.Context, req *domain.OpenRequest) (*domain.OpenRequest, error) {
	query := `
		INSERT INTO piggy_open_requests (group_id, child_id, amount, reason, destination, status)
		VALUES ($1, $2, $3, $4, $5, 'pending')
		RETURNING ` + requestCols
	created, err := scanRequest(r.db.QueryRow(ctx, query, req.GroupID, req.ChildID, req.Amount, req.Reason, req.Destination))
	if err != nil {
		zap.L().Error("can't save open request", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// GetOpenRequestForUpdate locks the request row until the surrounding
// transaction ends. Concurrent approvals of one request are serialized here.
func (r *Repository) GetOpenRequestForUpdate(ctx context.Context, requestID string) (*domain.OpenRequest, error) {
	query := `
		SELECT ` + requestCols + `
		FROM piggy_open_requests
		WHERE id = $1
		FOR UPDATE`
	req, err := scanRequest(r.db.QueryRow(ctx, query, requestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get open request", zap.Error(err))
		return nil, err
	}
	return req, nil
}

// InsertApproval records a guardian's approval. A second approval by the same
// guardian violates the (request_id, approver_id) constraint and yields
// domain.ErrAlreadyApproved.
func (r *Repository) InsertApproval(ctx context.Context, requestID, approverID string) (*domain.OpenApproval, error) {
	query := `
		INSERT INTO piggy_open_approvals (request_id, approver_id, role)
		VALUES ($1, $2, 'parent')
		RETURNING id, request_id, approver_id, role, created_at
	`
	var approval domain.OpenApproval
	err := r.db.QueryRow(ctx, query, requestID, approverID).
		Scan(&approval.ID, &approval.RequestID, &approval.ApproverID, &approval.Role, &approval.CreatedAt)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, domain.ErrAlreadyApproved
		}
		zap.L().Error("can't save open request approval", zap.Error(err))
		return nil, err
	}
	return &approval, nil
}

// ResolveOpenRequest moves a pending request to a terminal status. It
// reports false when the request was no longer pending.
func (r *Repository) ResolveOpenRequest(ctx context.Context, requestID string, status domain.RequestStatus) (bool, error) {
	query := `
		UPDATE piggy_open_requests
		SET status = $2, updated_at = now(), resolved_at = now()
		WHERE id = $1 AND status = 'pending'
	`
	tag, err := r.db.Exec(ctx, query, requestID, status)
	if err != nil {
		zap.L().Error("failed to resolve open request", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ListOpenRequests returns the newest requests of a group. Empty childID or
// status disables that filter.
func (r *Repository) ListOpenRequests(ctx context.Context, groupID, childID string, status domain.RequestStatus, limit int) ([]domain.OpenRequest, error) {
	query := `
		SELECT ` + requestCols + `
		FROM piggy_open_requests
		WHERE group_id = $1
			AND ($2 = '' OR child_id::text = $2)
			AND ($3 = '' OR status = $3)
		ORDER BY created_at DESC
		LIMIT $4
	`
	rows, err := r.db.Query(ctx, query, groupID, childID, string(status), limit)
	if err != nil {
		zap.L().Error("failed to fetch open requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	requests := make([]domain.OpenRequest, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			zap.L().Error("failed to scan open request row", zap.Error(err))
			return nil, err
		}
		requests = append(requests, *req)
	}
	return requests, rows.Err()
}
