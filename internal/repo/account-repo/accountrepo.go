package accountrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/piggybank/internal/domain"
	"github.com/GlebRadaev/piggybank/internal/pg"
)

const (
	accountCols = `id, group_id, user_id, name, balance, created_at, updated_at`
	walletCols  = `id, group_id, user_id, balance, created_at, updated_at`
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	if err := row.Scan(&a.ID, &a.GroupID, &a.UserID, &a.Name, &a.Balance, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	var w domain.Wallet
	if err := row.Scan(&w.ID, &w.GroupID, &w.UserID, &w.Balance, &w.CreatedAt, &w.UpdatedAt); err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *Repository) GetAccount(ctx context.Context, groupID, userID string) (*domain.Account, error) {
	query := `
		SELECT ` + accountCols + `
		FROM piggy_bank_accounts
		WHERE group_id = $1 AND user_id = $2
	`
	account, err := scanAccount(r.db.QueryRow(ctx, query, groupID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get piggy bank account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

// EnsureAccount is a conflict-safe get-or-create. The insert and the read
// are separate statements so a row committed by a concurrent caller is
// visible to the read.
func (r *Repository) EnsureAccount(ctx context.Context, groupID, userID, name string) (*domain.Account, error) {
	insert := `
		INSERT INTO piggy_bank_accounts (group_id, user_id, name, balance)
		VALUES ($1, $2, $3, 0)
		ON CONFLICT (group_id, user_id) DO NOTHING
	`
	if _, err := r.db.Exec(ctx, insert, groupID, userID, name); err != nil {
		zap.L().Error("failed to create piggy bank account", zap.Error(err))
		return nil, err
	}
	account, err := r.GetAccount(ctx, groupID, userID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	return account, nil
}

func (r *Repository) DeleteAccount(ctx context.Context, groupID, userID string) (bool, error) {
	query := `
		DELETE FROM piggy_bank_accounts
		WHERE group_id = $1 AND user_id = $2
	`
	tag, err := r.db.Exec(ctx, query, groupID, userID)
	if err != nil {
		zap.L().Error("failed to delete piggy bank account", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) RenameAccount(ctx context.Context, groupID, userID, name string) (*domain.Account, error) {
	query := `
		UPDATE piggy_bank_accounts
		SET name = $3, updated_at = now()
		WHERE group_id = $1 AND user_id = $2
		RETURNING ` + accountCols
	account, err := scanAccount(r.db.QueryRow(ctx, query, groupID, userID, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to rename piggy bank account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) CreditAccount(ctx context.Context, groupID, userID string, amount int64) (int64, error) {
	query := `
		UPDATE piggy_bank_accounts
		SET balance = balance + $3, updated_at = now()
		WHERE group_id = $1 AND user_id = $2
		RETURNING balance
	`
	return r.adjust(ctx, query, "credit piggy bank account", groupID, userID, amount)
}

// DebitAccount subtracts amount only when the balance covers it.
func (r *Repository) DebitAccount(ctx context.Context, groupID, userID string, amount int64) (int64, error) {
	query := `
		UPDATE piggy_bank_accounts
		SET balance = balance - $3, updated_at = now()
		WHERE group_id = $1 AND user_id = $2 AND balance >= $3
		RETURNING balance
	`
	return r.adjust(ctx, query, "debit piggy bank account", groupID, userID, amount)
}

func (r *Repository) GetWallet(ctx context.Context, groupID, userID string) (*domain.Wallet, error) {
	query := `
		SELECT ` + walletCols + `
		FROM piggy_wallets
		WHERE group_id = $1 AND user_id = $2
	`
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, groupID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get piggy wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (r *Repository) EnsureWallet(ctx context.Context, groupID, userID string) (*domain.Wallet, error) {
	insert := `
		INSERT INTO piggy_wallets (group_id, user_id, balance)
		VALUES ($1, $2, 0)
		ON CONFLICT (group_id, user_id) DO NOTHING
	`
	if _, err := r.db.Exec(ctx, insert, groupID, userID); err != nil {
		zap.L().Error("failed to create piggy wallet", zap.Error(err))
		return nil, err
	}
	wallet, err := r.GetWallet(ctx, groupID, userID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, domain.ErrNotFound
	}
	return wallet, nil
}

func (r *Repository) CreditWallet(ctx context.Context, groupID, userID string, amount int64) (int64, error) {
	query := `
		UPDATE piggy_wallets
		SET balance = balance + $3, updated_at = now()
		WHERE group_id = $1 AND user_id = $2
		RETURNING balance
	`
	return r.adjust(ctx, query, "credit piggy wallet", groupID, userID, amount)
}

// DebitWallet subtracts amount only when the balance covers it.
func (r *Repository) DebitWallet(ctx context.Context, groupID, userID string, amount int64) (int64, error) {
	query := `
		UPDATE piggy_wallets
		SET balance = balance - $3, updated_at = now()
		WHERE group_id = $1 AND user_id = $2 AND balance >= $3
		RETURNING balance
	`
	return r.adjust(ctx, query, "debit piggy wallet", groupID, userID, amount)
}

// adjust runs a single-row balance update. No row means the row is missing
// or, for debits, the balance is too low; both surface as
// domain.ErrInsufficientBalance.
func (r *Repository) adjust(ctx context.Context, query, op, groupID, userID string, amount int64) (int64, error) {
	var balance int64
	err := r.db.QueryRow(ctx, query, groupID, userID, amount).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrInsufficientBalance
		}
		zap.L().Error("failed to "+op, zap.Error(err))
		return 0, err
	}
	return balance, nil
}

// ListMemberAccounts returns the bank accounts of every MEMBER-role user in
// the group with their display name and wallet balance.
func (r *Repository) ListMemberAccounts(ctx context.Context, groupID string) ([]domain.AccountOverview, error) {
	query := `
		SELECT a.id, a.group_id, a.user_id, a.name, a.balance, a.created_at, a.updated_at,
			COALESCE(p.display_name, ''), COALESCE(w.balance, 0)
		FROM piggy_bank_accounts a
		JOIN group_members m ON m.group_id = a.group_id AND m.user_id = a.user_id AND m.role = 'MEMBER'
		JOIN groups g ON g.id = a.group_id AND g.owner_id <> a.user_id
		LEFT JOIN profiles p ON p.id = a.user_id
		LEFT JOIN piggy_wallets w ON w.group_id = a.group_id AND w.user_id = a.user_id
		WHERE a.group_id = $1
		ORDER BY a.created_at
	`
	rows, err := r.db.Query(ctx, query, groupID)
	if err != nil {
		zap.L().Error("failed to list member accounts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var overviews []domain.AccountOverview
	for rows.Next() {
		var o domain.AccountOverview
		err := rows.Scan(&o.ID, &o.GroupID, &o.UserID, &o.Name, &o.Balance, &o.CreatedAt, &o.UpdatedAt,
			&o.DisplayName, &o.WalletBalance)
		if err != nil {
			zap.L().Error("failed to scan member account row", zap.Error(err))
			return nil, err
		}
		overviews = append(overviews, o)
	}
	return overviews, rows.Err()
}
