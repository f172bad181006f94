package requestservice

//go:generate mockgen -source=requestservice.go -destination=mock_requestservice.go -package=requestservice

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/piggybank/internal/domain"
	"github.com/GlebRadaev/piggybank/internal/pg"
	"github.com/GlebRadaev/piggybank/internal/service/ledgerservice"
	"github.com/GlebRadaev/piggybank/internal/service/permissionservice"
)

const (
	MaxReasonLength = 200
	ListLimit       = 50
)

type RequestRepo interface {
	CreateOpenRequest(ctx context.Context, req *domain.OpenRequest) (*domain.OpenRequest, error)
	GetOpenRequestForUpdate(ctx context.Context, requestID string) (*domain.OpenRequest, error)
	InsertApproval(ctx context.Context, requestID, approverID string) (*domain.OpenApproval, error)
	ResolveOpenRequest(ctx context.Context, requestID string, status domain.RequestStatus) (bool, error)
	ListOpenRequests(ctx context.Context, groupID, childID string, status domain.RequestStatus, limit int) ([]domain.OpenRequest, error)
}

type AccountRepo interface {
	GetAccount(ctx context.Context, groupID, userID string) (*domain.Account, error)
	EnsureAccount(ctx context.Context, groupID, userID, name string) (*domain.Account, error)
	EnsureWallet(ctx context.Context, groupID, userID string) (*domain.Wallet, error)
	DebitAccount(ctx context.Context, groupID, userID string, amount int64) (int64, error)
	CreditWallet(ctx context.Context, groupID, userID string, amount int64) (int64, error)
}

type Service struct {
	gate      permissionservice.Gate
	requests  RequestRepo
	accounts  AccountRepo
	ledger    ledgerservice.LedgerRepo
	txManager pg.TXManager
}

func New(gate permissionservice.Gate, requests RequestRepo, accounts AccountRepo, ledger ledgerservice.LedgerRepo, txManager pg.TXManager) *Service {
	return &Service{
		gate:      gate,
		requests:  requests,
		accounts:  accounts,
		ledger:    ledger,
		txManager: txManager,
	}
}

// Create files a pending withdrawal request from the caller's bank account.
// The balance check here is advisory: the receipt flags a shortfall but the
// request is still created, and approval checks again.
func (s *Service) Create(ctx context.Context, callerID, groupID string, amount int64, reason string, destination domain.Destination) (*domain.OpenRequestReceipt, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if !destination.Valid() {
		return nil, domain.ErrInvalidDestination
	}
	if _, err := s.gate.Check(ctx, callerID, groupID, domain.RoleNone); err != nil {
		return nil, err
	}

	account, err := s.accounts.GetAccount(ctx, groupID, callerID)
	if err != nil {
		return nil, err
	}
	insufficient := account == nil || account.Balance < amount
	if insufficient {
		zap.L().Info("open request exceeds bank balance",
			zap.String("group_id", groupID),
			zap.String("child_id", callerID),
			zap.Int64("amount", amount),
		)
	}

	req, err := s.requests.CreateOpenRequest(ctx, &domain.OpenRequest{
		GroupID:     groupID,
		ChildID:     callerID,
		Amount:      amount,
		Reason:      ledgerservice.Truncate(strings.TrimSpace(reason), MaxReasonLength),
		Destination: destination,
		Status:      domain.StatusPending,
	})
	if err != nil {
		return nil, err
	}
	return &domain.OpenRequestReceipt{Request: req, InsufficientBalance: insufficient}, nil
}

// Approve records the guardian's approval and pays the request out of the
// child's bank account, into their wallet or as cash. Everything happens in
// one transaction, so a failure leaves the request pending and the balances
// untouched.
func (s *Service) Approve(ctx context.Context, callerID, groupID, requestID string) (*domain.OpenRequest, error) {
	var approved *domain.OpenRequest
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		req, err := s.lockPending(ctx, callerID, groupID, requestID)
		if err != nil {
			return err
		}

		if _, err := s.requests.InsertApproval(ctx, req.ID, callerID); err != nil {
			return err
		}
		if _, err := s.accounts.EnsureAccount(ctx, req.GroupID, req.ChildID, domain.DefaultAccountName); err != nil {
			return err
		}
		if _, err := s.accounts.DebitAccount(ctx, req.GroupID, req.ChildID, req.Amount); err != nil {
			return err
		}

		txType := domain.TxWithdrawCash
		if req.Destination == domain.DestinationWallet {
			txType = domain.TxWithdrawToWallet
		}
		if err := s.record(ctx, domain.LedgerBank, req, callerID, txType); err != nil {
			return err
		}

		if req.Destination == domain.DestinationWallet {
			if _, err := s.accounts.EnsureWallet(ctx, req.GroupID, req.ChildID); err != nil {
				return err
			}
			if _, err := s.accounts.CreditWallet(ctx, req.GroupID, req.ChildID, req.Amount); err != nil {
				return err
			}
			if err := s.record(ctx, domain.LedgerWallet, req, callerID, domain.TxWithdrawToWallet); err != nil {
				return err
			}
		}

		resolved, err := s.requests.ResolveOpenRequest(ctx, req.ID, domain.StatusApproved)
		if err != nil {
			return err
		}
		if !resolved {
			return domain.ErrNotPending
		}
		req.Status = domain.StatusApproved
		approved = req
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("open request approved",
		zap.String("request_id", approved.ID),
		zap.String("approver_id", callerID),
		zap.Int64("amount", approved.Amount),
		zap.String("destination", string(approved.Destination)),
	)
	return approved, nil
}

// Reject closes a pending request without moving money.
func (s *Service) Reject(ctx context.Context, callerID, groupID, requestID string) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		req, err := s.lockPending(ctx, callerID, groupID, requestID)
		if err != nil {
			return err
		}
		resolved, err := s.requests.ResolveOpenRequest(ctx, req.ID, domain.StatusRejected)
		if err != nil {
			return err
		}
		if !resolved {
			return domain.ErrNotPending
		}
		return nil
	})
}

// List returns the caller's own requests, or every request in the group for
// a guardian, newest first.
func (s *Service) List(ctx context.Context, callerID, groupID string) ([]domain.OpenRequest, error) {
	perm, err := s.gate.Check(ctx, callerID, groupID, domain.RoleNone)
	if err != nil {
		return nil, err
	}
	childID := callerID
	if perm.IsAdmin() {
		childID = ""
	}
	return s.requests.ListOpenRequests(ctx, groupID, childID, "", ListLimit)
}

// lockPending loads and locks the request, then checks that the caller is a
// guardian of its group other than the requester and that it is still
// pending.
func (s *Service) lockPending(ctx context.Context, callerID, groupID, requestID string) (*domain.OpenRequest, error) {
	req, err := s.requests.GetOpenRequestForUpdate(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req == nil || (groupID != "" && req.GroupID != groupID) {
		return nil, domain.ErrNotFound
	}
	if _, err := s.gate.Check(ctx, callerID, req.GroupID, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if req.ChildID == callerID {
		return nil, domain.ErrSelfApproval
	}
	if req.Status != domain.StatusPending {
		return nil, domain.ErrNotPending
	}
	return req, nil
}

func (s *Service) record(ctx context.Context, ledger domain.Ledger, req *domain.OpenRequest, actorID string, txType domain.TransactionType) error {
	requestID := req.ID
	_, err := s.ledger.InsertTransaction(ctx, ledger, &domain.Transaction{
		GroupID:   req.GroupID,
		UserID:    req.ChildID,
		ActorID:   actorID,
		Amount:    req.Amount,
		Type:      txType,
		RequestID: &requestID,
	})
	return err
}
