package reportservice

//go:generate mockgen -source=reportservice.go -destination=mock_reportservice.go -package=reportservice

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/piggybank/internal/domain"
	"github.com/GlebRadaev/piggybank/internal/service/permissionservice"
)

const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 100
	SummaryPendingLimit = 20
	GroupPendingLimit   = 50
)

type GroupRepo interface {
	ListMembers(ctx context.Context, groupID string) ([]domain.Member, error)
	GetDisplayNames(ctx context.Context, userIDs []string) (map[string]string, error)
}

type AccountRepo interface {
	GetAccount(ctx context.Context, groupID, userID string) (*domain.Account, error)
	GetWallet(ctx context.Context, groupID, userID string) (*domain.Wallet, error)
	ListMemberAccounts(ctx context.Context, groupID string) ([]domain.AccountOverview, error)
}

type RequestRepo interface {
	ListOpenRequests(ctx context.Context, groupID, childID string, status domain.RequestStatus, limit int) ([]domain.OpenRequest, error)
}

type LedgerRepo interface {
	ListTransactions(ctx context.Context, ledger domain.Ledger, groupID, userID string, limit, offset int) ([]domain.Transaction, error)
}

type Service struct {
	gate     permissionservice.Gate
	groups   GroupRepo
	accounts AccountRepo
	requests RequestRepo
	ledger   LedgerRepo
}

func New(gate permissionservice.Gate, groups GroupRepo, accounts AccountRepo, requests RequestRepo, ledger LedgerRepo) *Service {
	return &Service{
		gate:     gate,
		groups:   groups,
		accounts: accounts,
		requests: requests,
		ledger:   ledger,
	}
}

// resolveSubject returns whose data the caller may read. Reading another
// member's data requires ADMIN.
func resolveSubject(perm *domain.Permission, callerID, childID string) (string, error) {
	if childID == "" || childID == callerID {
		return callerID, nil
	}
	if !perm.IsAdmin() {
		return "", domain.ErrForbidden
	}
	return childID, nil
}

// Summary returns the caller's balances and pending requests. A guardian
// passing childID gets that child's view; a guardian without childID gets
// every member account and the group's pending requests.
func (s *Service) Summary(ctx context.Context, callerID, groupID, childID string) (*domain.Summary, error) {
	perm, err := s.gate.Check(ctx, callerID, groupID, domain.RoleNone)
	if err != nil {
		return nil, err
	}

	summary := &domain.Summary{Role: perm.Role, IsOwner: perm.IsOwner}
	g, gctx := errgroup.WithContext(ctx)

	if childID == "" && perm.IsAdmin() {
		g.Go(func() error {
			accounts, err := s.accounts.ListMemberAccounts(gctx, groupID)
			summary.Accounts = accounts
			return err
		})
		g.Go(func() error {
			pending, err := s.requests.ListOpenRequests(gctx, groupID, "", domain.StatusPending, GroupPendingLimit)
			summary.PendingRequests = pending
			return err
		})
	} else {
		subject, err := resolveSubject(perm, callerID, childID)
		if err != nil {
			return nil, err
		}
		summary.SubjectID = subject

		g.Go(func() error {
			account, err := s.accounts.GetAccount(gctx, groupID, subject)
			summary.Account = account
			return err
		})
		g.Go(func() error {
			wallet, err := s.accounts.GetWallet(gctx, groupID, subject)
			summary.Wallet = wallet
			return err
		})
		g.Go(func() error {
			pending, err := s.requests.ListOpenRequests(gctx, groupID, subject, domain.StatusPending, SummaryPendingLimit)
			summary.PendingRequests = pending
			return err
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("failed to build summary", zap.String("group_id", groupID), zap.Error(err))
		return nil, err
	}
	return summary, nil
}

// ClampPage applies the history paging bounds.
func ClampPage(limit, offset int) (int, int) {
	switch {
	case limit <= 0:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// History pages both ledgers of one subject and labels every entry. Actor
// names that cannot be resolved are left empty.
func (s *Service) History(ctx context.Context, callerID, groupID, childID string, limit, offset int) (*domain.History, error) {
	perm, err := s.gate.Check(ctx, callerID, groupID, domain.RoleNone)
	if err != nil {
		return nil, err
	}
	subject, err := resolveSubject(perm, callerID, childID)
	if err != nil {
		return nil, err
	}
	limit, offset = ClampPage(limit, offset)

	var wallet, bank []domain.Transaction
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		wallet, err = s.ledger.ListTransactions(gctx, domain.LedgerWallet, groupID, subject, limit, offset)
		return err
	})
	g.Go(func() error {
		var err error
		bank, err = s.ledger.ListTransactions(gctx, domain.LedgerBank, groupID, subject, limit, offset)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to load history", zap.String("group_id", groupID), zap.Error(err))
		return nil, err
	}

	names := s.actorNames(ctx, wallet, bank)
	return &domain.History{
		Wallet: label(wallet, names),
		Bank:   label(bank, names),
	}, nil
}

func (s *Service) actorNames(ctx context.Context, lists ...[]domain.Transaction) map[string]string {
	seen := make(map[string]struct{})
	ids := make([]string, 0)
	for _, list := range lists {
		for _, tx := range list {
			if _, ok := seen[tx.ActorID]; !ok {
				seen[tx.ActorID] = struct{}{}
				ids = append(ids, tx.ActorID)
			}
		}
	}
	if len(ids) == 0 {
		return map[string]string{}
	}

	names, err := s.groups.GetDisplayNames(ctx, ids)
	if err != nil {
		zap.L().Warn("display names unavailable", zap.Error(err))
		return map[string]string{}
	}
	return names
}

func label(transactions []domain.Transaction, names map[string]string) []domain.HistoryEntry {
	entries := make([]domain.HistoryEntry, len(transactions))
	for i, tx := range transactions {
		entries[i] = domain.HistoryEntry{
			Transaction: tx,
			TypeLabel:   tx.Type.Label(),
			DateLabel:   domain.DateLabel(tx.CreatedAt),
			ActorName:   names[tx.ActorID],
		}
	}
	return entries
}

func (s *Service) ListMembers(ctx context.Context, callerID, groupID string) ([]domain.Member, error) {
	if _, err := s.gate.Check(ctx, callerID, groupID, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.groups.ListMembers(ctx, groupID)
}
