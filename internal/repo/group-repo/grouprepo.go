package grouprepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/piggybank/internal/domain"
	"github.com/GlebRadaev/piggybank/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// GetMembership returns nil when the group does not exist. A missing
// membership row yields domain.RoleNone.
func (r *Repository) GetMembership(ctx context.Context, groupID, userID string) (*domain.Membership, error) {
	query := `
		SELECT g.id, g.owner_id, COALESCE(m.role, '')
		FROM groups g
		LEFT JOIN group_members m ON m.group_id = g.id AND m.user_id = $2
		WHERE g.id = $1
	`
	membership := domain.Membership{UserID: userID}
	err := r.db.QueryRow(ctx, query, groupID, userID).Scan(&membership.GroupID, &membership.OwnerID, &membership.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get membership", zap.Error(err))
		return nil, err
	}
	return &membership, nil
}

func (r *Repository) ListMembers(ctx context.Context, groupID string) ([]domain.Member, error) {
	query := `
		SELECT m.user_id, COALESCE(p.display_name, ''), m.role, m.user_id = g.owner_id,
			EXISTS (SELECT 1 FROM piggy_bank_accounts a WHERE a.group_id = m.group_id AND a.user_id = m.user_id)
		FROM group_members m
		JOIN groups g ON g.id = m.group_id
		LEFT JOIN profiles p ON p.id = m.user_id
		WHERE m.group_id = $1
		ORDER BY m.joined_at
	`
	rows, err := r.db.Query(ctx, query, groupID)
	if err != nil {
		zap.L().Error("failed to list members", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		var m domain.Member
		if err := rows.Scan(&m.UserID, &m.DisplayName, &m.Role, &m.IsOwner, &m.HasAccount); err != nil {
			zap.L().Error("failed to scan member row", zap.Error(err))
			return nil, err
		}
		if m.IsOwner {
			m.Role = domain.RoleAdmin
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *Repository) GetDisplayNames(ctx context.Context, userIDs []string) (map[string]string, error) {
	names := make(map[string]string, len(userIDs))
	if len(userIDs) == 0 {
		return names, nil
	}
	query := `
		SELECT id, display_name
		FROM profiles
		WHERE id = ANY($1::uuid[])
	`
	rows, err := r.db.Query(ctx, query, userIDs)
	if err != nil {
		zap.L().Error("failed to get display names", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			zap.L().Error("failed to scan profile row", zap.Error(err))
			return nil, err
		}
		names[id] = name
	}
	return names, rows.Err()
}
