package ledgerrepo

import (
	"context"
	"fmt"

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

// table returns the backing table and the column holding the subject user
// of a ledger.
func table(ledger domain.Ledger) (string, string, error) {
	switch ledger {
	case domain.LedgerWallet:
		return "piggy_wallet_transactions", "user_id", nil
	case domain.LedgerBank:
		return "piggy_bank_transactions", "related_user_id", nil
	default:
		return "", "", fmt.Errorf("unknown ledger %q", ledger)
	}
}

func (r *Repository) InsertTransaction(ctx context.Context, ledger domain.Ledger, tx *domain.Transaction) (*domain.Transaction, error) {
	tableName, subject, err := table(ledger)
	if err != nil {
		return nil, err
	}
	query := `
		INSERT INTO ` + tableName + ` (group_id, ` + subject + `, actor_id, amount, type, memo, request_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	err = r.db.QueryRow(ctx, query, tx.GroupID, tx.UserID, tx.ActorID, tx.Amount, tx.Type, tx.Memo, tx.RequestID).
		Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		zap.L().Error("can't save ledger transaction", zap.String("ledger", string(ledger)), zap.Error(err))
		return nil, err
	}
	return tx, nil
}

// ListTransactions pages one subject's entries newest first.
func (r *Repository) ListTransactions(ctx context.Context, ledger domain.Ledger, groupID, userID string, limit, offset int) ([]domain.Transaction, error) {
	tableName, subject, err := table(ledger)
	if err != nil {
		return nil, err
	}
	query := `
		SELECT id, group_id, ` + subject + `, actor_id, amount, type, memo, request_id, created_at
		FROM ` + tableName + `
		WHERE group_id = $1 AND ` + subject + ` = $2
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`
	rows, err := r.db.Query(ctx, query, groupID, userID, limit, offset)
	if err != nil {
		zap.L().Error("failed to fetch ledger transactions", zap.String("ledger", string(ledger)), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	transactions := make([]domain.Transaction, 0, limit)
	for rows.Next() {
		var t domain.Transaction
		err := rows.Scan(&t.ID, &t.GroupID, &t.UserID, &t.ActorID, &t.Amount, &t.Type, &t.Memo, &t.RequestID, &t.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan ledger transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}
