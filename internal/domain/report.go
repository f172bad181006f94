package domain

import (
	"fmt"
	"time"
)

// Balances is the pair of balances touched by a save.
type Balances struct {
	WalletBalance int64
	BankBalance   int64
}

// OpenRequestReceipt is returned on request creation. InsufficientBalance
// flags a bank balance that did not cover the amount at creation time;
// approval re-checks it.
type OpenRequestReceipt struct {
	Request             *OpenRequest
	InsufficientBalance bool
}

// Summary is the balance view of a group. Account and Wallet describe one
// subject; Accounts is filled for a guardian's group-wide view.
type Summary struct {
	Role            Role
	IsOwner         bool
	SubjectID       string
	Account         *Account
	Wallet          *Wallet
	Accounts        []AccountOverview
	PendingRequests []OpenRequest
}

type HistoryEntry struct {
	Transaction
	TypeLabel string
	DateLabel string
	ActorName string
}

type History struct {
	Wallet []HistoryEntry
	Bank   []HistoryEntry
}

// DateLabel renders t as month/day in UTC, e.g. "10/17".
func DateLabel(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%d/%d", int(t.Month()), t.Day())
}
