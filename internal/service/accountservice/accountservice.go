package accountservice

//go:generate mockgen -source=accountservice.go -destination=mock_accountservice.go -package=accountservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/piggybank/internal/domain"
	"github.com/GlebRadaev/piggybank/internal/pg"
	"github.com/GlebRadaev/piggybank/internal/service/permissionservice"
	"github.com/GlebRadaev/piggybank/pkg/validate"
)

type AccountRepo interface {
	EnsureAccount(ctx context.Context, groupID, userID, name string) (*domain.Account, error)
	EnsureWallet(ctx context.Context, groupID, userID string) (*domain.Wallet, error)
	DeleteAccount(ctx context.Context, groupID, userID string) (bool, error)
	RenameAccount(ctx context.Context, groupID, userID, name string) (*domain.Account, error)
}

type RequestRepo interface {
	UpsertAccountRequest(ctx context.Context, groupID, userID string) (*domain.AccountRequest, error)
	GetAccountRequest(ctx context.Context, requestID string) (*domain.AccountRequest, error)
	RejectAccountRequest(ctx context.Context, requestID string) (bool, error)
	DeleteAccountRequest(ctx context.Context, groupID, userID string) error
	ListPendingAccountRequests(ctx context.Context, groupID string) ([]domain.AccountRequest, error)
}

type Service struct {
	gate      permissionservice.Gate
	accounts  AccountRepo
	requests  RequestRepo
	txManager pg.TXManager
}

func New(gate permissionservice.Gate, accounts AccountRepo, requests RequestRepo, txManager pg.TXManager) *Service {
	return &Service{
		gate:      gate,
		accounts:  accounts,
		requests:  requests,
		txManager: txManager,
	}
}

// EnsureAccount provisions the child's bank account and wallet and clears
// any pending account request. Calling it again returns the same account.
func (s *Service) EnsureAccount(ctx context.Context, callerID, groupID, childID string) (*domain.Account, error) {
	if _, err := s.gate.Check(ctx, callerID, groupID, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if err := permissionservice.CheckMember(ctx, s.gate, childID, groupID); err != nil {
		return nil, err
	}

	var account *domain.Account
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		account, err = s.accounts.EnsureAccount(ctx, groupID, childID, domain.DefaultAccountName)
		if err != nil {
			return err
		}
		if _, err = s.accounts.EnsureWallet(ctx, groupID, childID); err != nil {
			return err
		}
		return s.requests.DeleteAccountRequest(ctx, groupID, childID)
	})
	if err != nil {
		zap.L().Error("failed to provision piggy bank account", zap.String("group_id", groupID), zap.Error(err))
		return nil, err
	}

	zap.L().Info("piggy bank account provisioned",
		zap.String("group_id", groupID),
		zap.String("child_id", childID),
		zap.String("account_id", account.ID),
	)
	return account, nil
}

// DeleteAccount removes the bank account row. Wallet and history stay.
func (s *Service) DeleteAccount(ctx context.Context, callerID, groupID, childID string) error {
	if _, err := s.gate.Check(ctx, callerID, groupID, domain.RoleAdmin); err != nil {
		return err
	}

	deleted, err := s.accounts.DeleteAccount(ctx, groupID, childID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	zap.L().Info("piggy bank account deleted", zap.String("group_id", groupID), zap.String("child_id", childID))
	return nil
}

// RenameAccount renames the caller's own account, or a child's account when
// the caller is a guardian.
func (s *Service) RenameAccount(ctx context.Context, callerID, groupID, childID, name string) (*domain.Account, error) {
	name, err := validate.Name(name)
	if err != nil {
		return nil, err
	}

	target := callerID
	minRole := domain.RoleNone
	if childID != "" && childID != callerID {
		target = childID
		minRole = domain.RoleAdmin
	}
	if _, err := s.gate.Check(ctx, callerID, groupID, minRole); err != nil {
		return nil, err
	}

	account, err := s.accounts.RenameAccount(ctx, groupID, target, name)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	return account, nil
}

// RequestAccount asks the group's guardians to provision the caller's
// account. Repeating it while pending is a no-op.
func (s *Service) RequestAccount(ctx context.Context, callerID, groupID string) (*domain.AccountRequest, error) {
	perm, err := s.gate.Check(ctx, callerID, groupID, domain.RoleNone)
	if err != nil {
		return nil, err
	}
	if perm.IsAdmin() {
		return nil, domain.ErrAdminSelfRequest
	}
	return s.requests.UpsertAccountRequest(ctx, groupID, callerID)
}

func (s *Service) RejectAccountRequest(ctx context.Context, callerID, requestID string) error {
	req, err := s.requests.GetAccountRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if req == nil {
		return domain.ErrNotFound
	}
	if _, err := s.gate.Check(ctx, callerID, req.GroupID, domain.RoleAdmin); err != nil {
		return err
	}

	rejected, err := s.requests.RejectAccountRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if !rejected {
		return domain.ErrNotPending
	}
	return nil
}

func (s *Service) ListAccountRequests(ctx context.Context, callerID, groupID string) ([]domain.AccountRequest, error) {
	if _, err := s.gate.Check(ctx, callerID, groupID, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.requests.ListPendingAccountRequests(ctx, groupID)
}
