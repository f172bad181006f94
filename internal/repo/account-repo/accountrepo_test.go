package accountrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/piggybank/internal/domain"
)

const (
	groupID   = "11111111-1111-1111-1111-111111111111"
	childID   = "33333333-3333-3333-3333-333333333333"
	accountID = "44444444-4444-4444-4444-444444444444"
	walletID  = "55555555-5555-5555-5555-555555555555"
)

var (
	accountColumns = []string{"id", "group_id", "user_id", "name", "balance", "created_at", "updated_at"}
	walletColumns  = []string{"id", "group_id", "user_id", "balance", "created_at", "updated_at"}
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_GetAccount(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := `SELECT id, group_id, user_id, name, balance, created_at, updated_at FROM piggy_bank_accounts WHERE group_id = $1 AND user_id = $2`

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Account
	}{
		{
			name: "Account exists",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(groupID, childID).
					WillReturnRows(pgxmock.NewRows(accountColumns).
						AddRow(accountID, groupID, childID, "Piggy Bank", int64(2000), now, now))
			},
			result: &domain.Account{
				ID: accountID, GroupID: groupID, UserID: childID, Name: "Piggy Bank",
				Balance: 2000, CreatedAt: now, UpdatedAt: now,
			},
		},
		{
			name: "Account missing",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(groupID, childID).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(groupID, childID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetAccount(context.Background(), groupID, childID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_EnsureAccount(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	insert := `INSERT INTO piggy_bank_accounts (group_id, user_id, name, balance) VALUES ($1, $2, $3, 0) ON CONFLICT (group_id, user_id) DO NOTHING`
	selectQuery := `SELECT id, group_id, user_id, name, balance, created_at, updated_at FROM piggy_bank_accounts`

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
		anyErr    bool
		result    *domain.Account
	}{
		{
			name: "Creates a fresh account",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(insert)).
					WithArgs(groupID, childID, "Piggy Bank").
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectQuery(regexp.QuoteMeta(selectQuery)).
					WithArgs(groupID, childID).
					WillReturnRows(pgxmock.NewRows(accountColumns).
						AddRow(accountID, groupID, childID, "Piggy Bank", int64(0), now, now))
			},
			result: &domain.Account{ID: accountID, GroupID: groupID, UserID: childID, Name: "Piggy Bank", CreatedAt: now, UpdatedAt: now},
		},
		{
			name: "Returns the existing account on conflict",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(insert)).
					WithArgs(groupID, childID, "Piggy Bank").
					WillReturnResult(pgxmock.NewResult("INSERT", 0))
				mock.ExpectQuery(regexp.QuoteMeta(selectQuery)).
					WithArgs(groupID, childID).
					WillReturnRows(pgxmock.NewRows(accountColumns).
						AddRow(accountID, groupID, childID, "Savings", int64(700), now, now))
			},
			result: &domain.Account{ID: accountID, GroupID: groupID, UserID: childID, Name: "Savings", Balance: 700, CreatedAt: now, UpdatedAt: now},
		},
		{
			name: "Insert error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(insert)).
					WithArgs(groupID, childID, "Piggy Bank").
					WillReturnError(errors.New("database error"))
			},
			anyErr: true,
		},
		{
			name: "Row vanished after insert",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(insert)).
					WithArgs(groupID, childID, "Piggy Bank").
					WillReturnResult(pgxmock.NewResult("INSERT", 0))
				mock.ExpectQuery(regexp.QuoteMeta(selectQuery)).
					WithArgs(groupID, childID).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.EnsureAccount(context.Background(), groupID, childID, "Piggy Bank")

			switch {
			case tt.expectErr != nil:
				assert.ErrorIs(t, err, tt.expectErr)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_EnsureWallet(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO piggy_wallets (group_id, user_id, balance) VALUES ($1, $2, 0) ON CONFLICT (group_id, user_id) DO NOTHING`)).
		WithArgs(groupID, childID).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, group_id, user_id, balance, created_at, updated_at FROM piggy_wallets WHERE group_id = $1 AND user_id = $2`)).
		WithArgs(groupID, childID).
		WillReturnRows(pgxmock.NewRows(walletColumns).AddRow(walletID, groupID, childID, int64(0), now, now))

	wallet, err := repo.EnsureWallet(context.Background(), groupID, childID)

	require.NoError(t, err)
	assert.Equal(t, &domain.Wallet{ID: walletID, GroupID: groupID, UserID: childID, CreatedAt: now, UpdatedAt: now}, wallet)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_BalanceAdjustments(t *testing.T) {
	repo, mock := NewMock(t)

	debitWallet := `UPDATE piggy_wallets SET balance = balance - $3, updated_at = now() WHERE group_id = $1 AND user_id = $2 AND balance >= $3 RETURNING balance`
	creditWallet := `UPDATE piggy_wallets SET balance = balance + $3, updated_at = now() WHERE group_id = $1 AND user_id = $2 RETURNING balance`
	debitAccount := `UPDATE piggy_bank_accounts SET balance = balance - $3, updated_at = now() WHERE group_id = $1 AND user_id = $2 AND balance >= $3 RETURNING balance`
	creditAccount := `UPDATE piggy_bank_accounts SET balance = balance + $3, updated_at = now() WHERE group_id = $1 AND user_id = $2 RETURNING balance`

	tests := []struct {
		name      string
		call      func() (int64, error)
		mockSetup func()
		expected  int64
		expectErr error
		anyErr    bool
	}{
		{
			name: "Debit wallet within balance",
			call: func() (int64, error) { return repo.DebitWallet(context.Background(), groupID, childID, 300) },
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(debitWallet)).
					WithArgs(groupID, childID, int64(300)).
					WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(int64(200)))
			},
			expected: 200,
		},
		{
			name: "Debit wallet beyond balance",
			call: func() (int64, error) { return repo.DebitWallet(context.Background(), groupID, childID, 900) },
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(debitWallet)).
					WithArgs(groupID, childID, int64(900)).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: domain.ErrInsufficientBalance,
		},
		{
			name: "Credit wallet",
			call: func() (int64, error) { return repo.CreditWallet(context.Background(), groupID, childID, 1000) },
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(creditWallet)).
					WithArgs(groupID, childID, int64(1000)).
					WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(int64(1500)))
			},
			expected: 1500,
		},
		{
			name: "Debit account beyond balance",
			call: func() (int64, error) { return repo.DebitAccount(context.Background(), groupID, childID, 5000) },
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(debitAccount)).
					WithArgs(groupID, childID, int64(5000)).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: domain.ErrInsufficientBalance,
		},
		{
			name: "Credit account",
			call: func() (int64, error) { return repo.CreditAccount(context.Background(), groupID, childID, 10000) },
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(creditAccount)).
					WithArgs(groupID, childID, int64(10000)).
					WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(int64(10000)))
			},
			expected: 10000,
		},
		{
			name: "Database error",
			call: func() (int64, error) { return repo.CreditAccount(context.Background(), groupID, childID, 1) },
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(creditAccount)).
					WithArgs(groupID, childID, int64(1)).
					WillReturnError(errors.New("database error"))
			},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			balance, err := tt.call()

			switch {
			case tt.expectErr != nil:
				assert.ErrorIs(t, err, tt.expectErr)
			case tt.anyErr:
				assert.Error(t, err)
				assert.NotErrorIs(t, err, domain.ErrInsufficientBalance)
			default:
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, balance)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_RenameAndDeleteAccount(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	rename := `UPDATE piggy_bank_accounts SET name = $3, updated_at = now() WHERE group_id = $1 AND user_id = $2 RETURNING`
	deleteQuery := `DELETE FROM piggy_bank_accounts WHERE group_id = $1 AND user_id = $2`

	mock.ExpectQuery(regexp.QuoteMeta(rename)).
		WithArgs(groupID, childID, "Bike fund").
		WillReturnRows(pgxmock.NewRows(accountColumns).
			AddRow(accountID, groupID, childID, "Bike fund", int64(10), now, now))
	account, err := repo.RenameAccount(context.Background(), groupID, childID, "Bike fund")
	require.NoError(t, err)
	assert.Equal(t, "Bike fund", account.Name)

	mock.ExpectQuery(regexp.QuoteMeta(rename)).
		WithArgs(groupID, childID, "Bike fund").
		WillReturnError(pgx.ErrNoRows)
	account, err = repo.RenameAccount(context.Background(), groupID, childID, "Bike fund")
	require.NoError(t, err)
	assert.Nil(t, account)

	mock.ExpectExec(regexp.QuoteMeta(deleteQuery)).
		WithArgs(groupID, childID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	deleted, err := repo.DeleteAccount(context.Background(), groupID, childID)
	require.NoError(t, err)
	assert.True(t, deleted)

	mock.ExpectExec(regexp.QuoteMeta(deleteQuery)).
		WithArgs(groupID, childID).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	deleted, err = repo.DeleteAccount(context.Background(), groupID, childID)
	require.NoError(t, err)
	assert.False(t, deleted)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListMemberAccounts(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM piggy_bank_accounts a JOIN group_members m ON m.group_id = a.group_id AND m.user_id = a.user_id AND m.role = 'MEMBER'`)).
		WithArgs(groupID).
		WillReturnRows(pgxmock.NewRows(append(append([]string{}, accountColumns...), "display_name", "wallet_balance")).
			AddRow(accountID, groupID, childID, "Piggy Bank", int64(2000), now, now, "Kid", int64(150)))

	overviews, err := repo.ListMemberAccounts(context.Background(), groupID)

	require.NoError(t, err)
	require.Len(t, overviews, 1)
	assert.Equal(t, "Kid", overviews[0].DisplayName)
	assert.Equal(t, int64(2000), overviews[0].Balance)
	assert.Equal(t, int64(150), overviews[0].WalletBalance)
	assert.NoError(t, mock.ExpectationsWereMet())
}
