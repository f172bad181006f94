package domain

import "time"

const DefaultAccountName = "Piggy Bank"

type Role string

const (
	RoleNone   Role = ""
	RoleMember Role = "MEMBER"
	RoleAdmin  Role = "ADMIN"
)

func (r Role) rank() int {
	switch r {
	case RoleAdmin:
		return 2
	case RoleMember:
		return 1
	default:
		return 0
	}
}

// Satisfies reports whether r grants at least min. RoleNone as min means
// any membership.
func (r Role) Satisfies(min Role) bool {
	if r == RoleNone {
		return false
	}
	return r.rank() >= min.rank()
}

// ResolveRole folds group ownership and the membership row into one role.
// The owner is always ADMIN.
func ResolveRole(isOwner bool, membership Role) Role {
	if isOwner {
		return RoleAdmin
	}
	switch membership {
	case RoleAdmin, RoleMember:
		return membership
	default:
		return RoleNone
	}
}

// Membership is the raw (group, user) lookup. Role is RoleNone when the
// user has no membership row.
type Membership struct {
	GroupID string `db:"group_id"`
	OwnerID string `db:"owner_id"`
	UserID  string `db:"user_id"`
	Role    Role   `db:"role"`
}

type Permission struct {
	Role    Role
	IsOwner bool
}

func (p *Permission) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}

type Member struct {
	UserID      string `db:"user_id"`
	DisplayName string `db:"display_name"`
	Role        Role   `db:"role"`
	IsOwner     bool   `db:"is_owner"`
	HasAccount  bool   `db:"has_account"`
}

type Account struct {
	ID        string    `db:"id"`
	GroupID   string    `db:"group_id"`
	UserID    string    `db:"user_id"`
	Name      string    `db:"name"`
	Balance   int64     `db:"balance"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type Wallet struct {
	ID        string    `db:"id"`
	GroupID   string    `db:"group_id"`
	UserID    string    `db:"user_id"`
	Balance   int64     `db:"balance"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// AccountOverview is a MEMBER's bank account joined with their wallet
// balance and display name, as shown to guardians.
type AccountOverview struct {
	Account
	DisplayName   string `db:"display_name"`
	WalletBalance int64  `db:"wallet_balance"`
}

type Ledger string

const (
	LedgerWallet Ledger = "wallet"
	LedgerBank   Ledger = "bank"
)

type TransactionType string

const (
	TxAllowance        TransactionType = "allowance"
	TxSpend            TransactionType = "spend"
	TxChildSave        TransactionType = "child_save"
	TxWithdrawToWallet TransactionType = "withdraw_to_wallet"
	TxWithdrawCash     TransactionType = "withdraw_cash"
	TxParentDeposit    TransactionType = "parent_deposit"
)

var transactionLabels = map[TransactionType]string{
	TxAllowance:        "Allowance",
	TxSpend:            "Spent",
	TxChildSave:        "Saved to piggy bank",
	TxWithdrawToWallet: "Moved to wallet",
	TxWithdrawCash:     "Taken out as cash",
	TxParentDeposit:    "Deposit from parent",
}

func (t TransactionType) Label() string {
	if label, ok := transactionLabels[t]; ok {
		return label
	}
	return string(t)
}

// Transaction is an immutable ledger record. UserID is the subject (the
// child); on the bank ledger it is stored as related_user_id.
type Transaction struct {
	ID        string          `db:"id"`
	GroupID   string          `db:"group_id"`
	UserID    string          `db:"user_id"`
	ActorID   string          `db:"actor_id"`
	Amount    int64           `db:"amount"`
	Type      TransactionType `db:"type"`
	Memo      *string         `db:"memo"`
	RequestID *string         `db:"request_id"`
	CreatedAt time.Time       `db:"created_at"`
}

type Destination string

const (
	DestinationWallet Destination = "wallet"
	DestinationCash   Destination = "cash"
)

func (d Destination) Valid() bool {
	return d == DestinationWallet || d == DestinationCash
}

type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
)

type OpenRequest struct {
	ID          string        `db:"id"`
	GroupID     string        `db:"group_id"`
	ChildID     string        `db:"child_id"`
	Amount      int64         `db:"amount"`
	Reason      string        `db:"reason"`
	Destination Destination   `db:"destination"`
	Status      RequestStatus `db:"status"`
	CreatedAt   time.Time     `db:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at"`
	ResolvedAt  *time.Time    `db:"resolved_at"`
}

type OpenApproval struct {
	ID         string    `db:"id"`
	RequestID  string    `db:"request_id"`
	ApproverID string    `db:"approver_id"`
	Role       string    `db:"role"`
	CreatedAt  time.Time `db:"created_at"`
}

type AccountRequest struct {
	ID          string        `db:"id"`
	GroupID     string        `db:"group_id"`
	UserID      string        `db:"user_id"`
	DisplayName string        `db:"display_name"`
	Status      RequestStatus `db:"status"`
	CreatedAt   time.Time     `db:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at"`
}

type AllowanceSchedule struct {
	ID           string    `db:"id"`
	GroupID      string    `db:"group_id"`
	ChildID      string    `db:"child_id"`
	Amount       int64     `db:"amount"`
	IntervalDays int       `db:"interval_days"`
	NextRunAt    time.Time `db:"next_run_at"`
	CreatedBy    string    `db:"created_by"`
	CreatedAt    time.Time `db:"created_at"`
}
