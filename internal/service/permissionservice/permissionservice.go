package permissionservice

//go:generate mockgen -source=permissionservice.go -destination=mock_permissionservice.go -package=permissionservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/GlebRadaev/piggybank/internal/domain"
)

type GroupRepo interface {
	GetMembership(ctx context.Context, groupID, userID string) (*domain.Membership, error)
}

// Gate is consumed by every service that mutates or reads ledger state.
type Gate interface {
	Check(ctx context.Context, userID, groupID string, minRole domain.Role) (*domain.Permission, error)
}

type Service struct {
	repo GroupRepo
}

func New(repo GroupRepo) *Service {
	return &Service{
		repo: repo,
	}
}

// Check resolves the caller's role in the group and fails with
// domain.ErrForbidden when it is below minRole. domain.RoleNone as minRole
// accepts any membership or ownership.
func (s *Service) Check(ctx context.Context, userID, groupID string, minRole domain.Role) (*domain.Permission, error) {
	if userID == "" || groupID == "" {
		return nil, domain.ErrForbidden
	}

	membership, err := s.repo.GetMembership(ctx, groupID, userID)
	if err != nil {
		zap.L().Error("failed to resolve membership", zap.String("group_id", groupID), zap.Error(err))
		return nil, err
	}
	if membership == nil {
		return nil, domain.ErrForbidden
	}

	isOwner := membership.OwnerID == userID
	role := domain.ResolveRole(isOwner, membership.Role)
	if !role.Satisfies(minRole) {
		zap.L().Info("permission denied",
			zap.String("user_id", userID),
			zap.String("group_id", groupID),
			zap.String("role", string(role)),
			zap.String("required", string(minRole)),
		)
		return nil, domain.ErrForbidden
	}

	return &domain.Permission{Role: role, IsOwner: isOwner}, nil
}

// CheckMember reports whether userID belongs to the group, mapping a denial
// to domain.ErrNotFound. It is used to validate the target of a guardian
// action rather than the caller.
func CheckMember(ctx context.Context, gate Gate, userID, groupID string) error {
	if _, err := gate.Check(ctx, userID, groupID, domain.RoleNone); err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}
