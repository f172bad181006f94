package ledgerservice

//go:generate mockgen -source=ledgerservice.go -destination=mock_ledgerservice.go -package=ledgerservice

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/piggybank/internal/domain"
	"github.com/GlebRadaev/piggybank/internal/pg"
	"github.com/GlebRadaev/piggybank/internal/service/permissionservice"
)

const (
	MaxMemoLength = 200
	memoSeparator = " - "
)

type AccountRepo interface {
	EnsureAccount(ctx context.Context, groupID, userID, name string) (*domain.Account, error)
	EnsureWallet(ctx context.Context, groupID, userID string) (*domain.Wallet, error)
	CreditAccount(ctx context.Context, groupID, userID string, amount int64) (int64, error)
	DebitAccount(ctx context.Context, groupID, userID string, amount int64) (int64, error)
	CreditWallet(ctx context.Context, groupID, userID string, amount int64) (int64, error)
	DebitWallet(ctx context.Context, groupID, userID string, amount int64) (int64, error)
}

type LedgerRepo interface {
	InsertTransaction(ctx context.Context, ledger domain.Ledger, tx *domain.Transaction) (*domain.Transaction, error)
}

type Service struct {
	gate      permissionservice.Gate
	accounts  AccountRepo
	ledger    LedgerRepo
	txManager pg.TXManager
}

func New(gate permissionservice.Gate, accounts AccountRepo, ledger LedgerRepo, txManager pg.TXManager) *Service {
	return &Service{
		gate:      gate,
		accounts:  accounts,
		ledger:    ledger,
		txManager: txManager,
	}
}

// Deposit credits a bank account on behalf of a guardian. An empty childID
// targets the caller's own account.
func (s *Service) Deposit(ctx context.Context, callerID, groupID, childID string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, domain.ErrInvalidAmount
	}
	if _, err := s.gate.Check(ctx, callerID, groupID, domain.RoleAdmin); err != nil {
		return 0, err
	}
	target := callerID
	if childID != "" && childID != callerID {
		if err := permissionservice.CheckMember(ctx, s.gate, childID, groupID); err != nil {
			return 0, err
		}
		target = childID
	}

	var balance int64
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.accounts.EnsureAccount(ctx, groupID, target, domain.DefaultAccountName); err != nil {
			return err
		}
		var err error
		if balance, err = s.accounts.CreditAccount(ctx, groupID, target, amount); err != nil {
			return err
		}
		_, err = s.ledger.InsertTransaction(ctx, domain.LedgerBank, &domain.Transaction{
			GroupID: groupID,
			UserID:  target,
			ActorID: callerID,
			Amount:  amount,
			Type:    domain.TxParentDeposit,
		})
		return err
	})
	if err != nil {
		return 0, err
	}

	zap.L().Info("parent deposit",
		zap.String("group_id", groupID),
		zap.String("child_id", target),
		zap.Int64("amount", amount),
	)
	return balance, nil
}

// Save moves amount from the caller's wallet into their bank account and
// records one entry on each ledger.
func (s *Service) Save(ctx context.Context, callerID, groupID string, amount int64) (*domain.Balances, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if _, err := s.gate.Check(ctx, callerID, groupID, domain.RoleNone); err != nil {
		return nil, err
	}

	var balances domain.Balances
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.accounts.EnsureWallet(ctx, groupID, callerID); err != nil {
			return err
		}
		if _, err := s.accounts.EnsureAccount(ctx, groupID, callerID, domain.DefaultAccountName); err != nil {
			return err
		}

		var err error
		if balances.WalletBalance, err = s.accounts.DebitWallet(ctx, groupID, callerID, amount); err != nil {
			return err
		}
		if balances.BankBalance, err = s.accounts.CreditAccount(ctx, groupID, callerID, amount); err != nil {
			return err
		}

		for _, ledger := range []domain.Ledger{domain.LedgerWallet, domain.LedgerBank} {
			_, err = s.ledger.InsertTransaction(ctx, ledger, &domain.Transaction{
				GroupID: groupID,
				UserID:  callerID,
				ActorID: callerID,
				Amount:  amount,
				Type:    domain.TxChildSave,
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &balances, nil
}

// Spend debits the caller's wallet. category and note form the memo.
func (s *Service) Spend(ctx context.Context, callerID, groupID string, amount int64, category, note string) (int64, error) {
	if amount <= 0 {
		return 0, domain.ErrInvalidAmount
	}
	if _, err := s.gate.Check(ctx, callerID, groupID, domain.RoleNone); err != nil {
		return 0, err
	}

	var balance int64
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.accounts.EnsureWallet(ctx, groupID, callerID); err != nil {
			return err
		}
		var err error
		if balance, err = s.accounts.DebitWallet(ctx, groupID, callerID, amount); err != nil {
			return err
		}
		_, err = s.ledger.InsertTransaction(ctx, domain.LedgerWallet, &domain.Transaction{
			GroupID: groupID,
			UserID:  callerID,
			ActorID: callerID,
			Amount:  amount,
			Type:    domain.TxSpend,
			Memo:    ComposeMemo(category, note),
		})
		return err
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

// GrantAllowance credits a child's wallet on behalf of a guardian.
func (s *Service) GrantAllowance(ctx context.Context, callerID, groupID, childID string, amount int64, memo string) (int64, error) {
	if amount <= 0 {
		return 0, domain.ErrInvalidAmount
	}
	if _, err := s.gate.Check(ctx, callerID, groupID, domain.RoleAdmin); err != nil {
		return 0, err
	}
	if err := permissionservice.CheckMember(ctx, s.gate, childID, groupID); err != nil {
		return 0, err
	}

	var balance int64
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		balance, err = CreditAllowance(ctx, s.accounts, s.ledger, &domain.Transaction{
			GroupID: groupID,
			UserID:  childID,
			ActorID: callerID,
			Amount:  amount,
			Memo:    ComposeMemo("", memo),
		})
		return err
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

// CreditAllowance credits tx.Amount to the subject's wallet and records it
// as an allowance. It must run inside a transaction.
func CreditAllowance(ctx context.Context, accounts AccountRepo, ledger LedgerRepo, tx *domain.Transaction) (int64, error) {
	if _, err := accounts.EnsureWallet(ctx, tx.GroupID, tx.UserID); err != nil {
		return 0, err
	}
	balance, err := accounts.CreditWallet(ctx, tx.GroupID, tx.UserID, tx.Amount)
	if err != nil {
		return 0, err
	}
	tx.Type = domain.TxAllowance
	if _, err := ledger.InsertTransaction(ctx, domain.LedgerWallet, tx); err != nil {
		return 0, err
	}
	return balance, nil
}

// ComposeMemo joins the non-empty parts with a separator and truncates the
// result to MaxMemoLength characters. It returns nil when both are empty.
func ComposeMemo(category, text string) *string {
	parts := make([]string, 0, 2)
	for _, p := range []string{category, text} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return nil
	}
	memo := Truncate(strings.Join(parts, memoSeparator), MaxMemoLength)
	return &memo
}

func Truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
