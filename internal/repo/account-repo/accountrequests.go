package accountrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/piggybank/internal/domain"
)

// UpsertAccountRequest files a pending request. A pending request is left
// untouched and a rejected one is reopened.
func (r *Repository) UpsertAccountRequest(ctx context.Context, groupID, userID string) (*domain.AccountRequest, error) {
	query := `
		INSERT INTO piggy_account_requests (group_id, user_id, status)
		VALUES ($1, $2, 'pending')
		ON CONFLICT (group_id, user_id) DO UPDATE
		SET status = 'pending',
			updated_at = CASE WHEN piggy_account_requests.status = 'pending'
				THEN piggy_account_requests.updated_at ELSE now() END
		RETURNING id, group_id, user_id, status, created_at, updated_at
	`
	var req domain.AccountRequest
	err := r.db.QueryRow(ctx, query, groupID, userID).
		Scan(&req.ID, &req.GroupID, &req.UserID, &req.Status, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		zap.L().Error("failed to upsert account request", zap.Error(err))
		return nil, err
	}
	return &req, nil
}

func (r *Repository) GetAccountRequest(ctx context.Context, requestID string) (*domain.AccountRequest, error) {
	query := `
		SELECT id, group_id, user_id, status, created_at, updated_at
		FROM piggy_account_requests
		WHERE id = $1
	`
	var req domain.AccountRequest
	err := r.db.QueryRow(ctx, query, requestID).
		Scan(&req.ID, &req.GroupID, &req.UserID, &req.Status, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get account request", zap.Error(err))
		return nil, err
	}
	return &req, nil
}

// RejectAccountRequest reports false when the request was not pending.
func (r *Repository) RejectAccountRequest(ctx context.Context, requestID string) (bool, error) {
	query := `
		UPDATE piggy_account_requests
		SET status = 'rejected', updated_at = now()
		WHERE id = $1 AND status = 'pending'
	`
	tag, err := r.db.Exec(ctx, query, requestID)
	if err != nil {
		zap.L().Error("failed to reject account request", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) DeleteAccountRequest(ctx context.Context, groupID, userID string) error {
	query := `
		DELETE FROM piggy_account_requests
		WHERE group_id = $1 AND user_id = $2
	`
	if _, err := r.db.Exec(ctx, query, groupID, userID); err != nil {
		zap.L().Error("failed to delete account request", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListPendingAccountRequests(ctx context.Context, groupID string) ([]domain.AccountRequest, error) {
	query := `
		SELECT ar.id, ar.group_id, ar.user_id, COALESCE(p.display_name, ''), ar.status, ar.created_at, ar.updated_at
		FROM piggy_account_requests ar
		LEFT JOIN profiles p ON p.id = ar.user_id
		WHERE ar.group_id = $1 AND ar.status = 'pending'
		ORDER BY ar.created_at
	`
	rows, err := r.db.Query(ctx, query, groupID)
	if err != nil {
		zap.L().Error("failed to list account requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var requests []domain.AccountRequest
	for rows.Next() {
		var req domain.AccountRequest
		err := rows.Scan(&req.ID, &req.GroupID, &req.UserID, &req.DisplayName, &req.Status, &req.CreatedAt, &req.UpdatedAt)
		if err != nil {
			zap.L().Error("failed to scan account request row", zap.Error(err))
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}
