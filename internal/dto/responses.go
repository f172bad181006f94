package dto

import (
	"time"

	"github.com/GlebRadaev/piggybank/internal/domain"
)

type AccountDTO struct {
	ID        string    `json:"id"`
	GroupID   string    `json:"groupId"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name" example:"Piggy Bank"`
	Balance   int64     `json:"balance" example:"2000"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type WalletDTO struct {
	ID        string    `json:"id"`
	GroupID   string    `json:"groupId"`
	UserID    string    `json:"userId"`
	Balance   int64     `json:"balance" example:"500"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type AccountOverviewDTO struct {
	AccountDTO
	DisplayName   string `json:"displayName" example:"Mia"`
	WalletBalance int64  `json:"walletBalance" example:"500"`
}

type MemberDTO struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName" example:"Mia"`
	Role        string `json:"role" example:"MEMBER"`
	IsOwner     bool   `json:"isOwner"`
	HasAccount  bool   `json:"hasAccount"`
}

type BalanceDTO struct {
	Balance int64 `json:"balance" example:"1500"`
}

type BalancesDTO struct {
	WalletBalance int64 `json:"walletBalance" example:"600"`
	BankBalance   int64 `json:"bankBalance" example:"2400"`
}

type NameDTO struct {
	Name string `json:"name" example:"Bike fund"`
}

type StatusDTO struct {
	Status string `json:"status" example:"approved"`
}

type OpenRequestDTO struct {
	ID          string     `json:"id"`
	GroupID     string     `json:"groupId"`
	ChildID     string     `json:"childId"`
	Amount      int64      `json:"amount" example:"1000"`
	Reason      string     `json:"reason"`
	Destination string     `json:"destination" example:"wallet"`
	Status      string     `json:"status" example:"pending"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	ResolvedAt  *time.Time `json:"resolvedAt,omitempty"`
}

type OpenRequestCreatedDTO struct {
	ID                  string `json:"id"`
	Status              string `json:"status" example:"pending"`
	InsufficientBalance bool   `json:"insufficientBalance,omitempty"`
}

type AccountRequestDTO struct {
	ID          string    `json:"id"`
	GroupID     string    `json:"groupId"`
	UserID      string    `json:"userId"`
	DisplayName string    `json:"displayName,omitempty"`
	Status      string    `json:"status" example:"pending"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type SummaryDTO struct {
	Role            string               `json:"role" example:"ADMIN"`
	IsOwner         bool                 `json:"isOwner"`
	SubjectID       string               `json:"subjectId,omitempty"`
	Account         *AccountDTO          `json:"account"`
	Wallet          *WalletDTO           `json:"wallet"`
	Accounts        []AccountOverviewDTO `json:"accounts,omitempty"`
	PendingRequests []OpenRequestDTO     `json:"pendingRequests"`
}

type TransactionDTO struct {
	ID        string    `json:"id"`
	GroupID   string    `json:"groupId"`
	UserID    string    `json:"userId"`
	ActorID   string    `json:"actorId"`
	ActorName string    `json:"actorName"`
	Amount    int64     `json:"amount" example:"300"`
	Type      string    `json:"type" example:"spend"`
	TypeLabel string    `json:"typeLabel" example:"Spent"`
	DateLabel string    `json:"dateLabel" example:"10/17"`
	Memo      *string   `json:"memo,omitempty"`
	RequestID *string   `json:"requestId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type HistoryDTO struct {
	WalletTransactions []TransactionDTO `json:"walletTransactions"`
	BankTransactions   []TransactionDTO `json:"bankTransactions"`
}

type ScheduleDTO struct {
	ID           string    `json:"id"`
	GroupID      string    `json:"groupId"`
	ChildID      string    `json:"childId"`
	Amount       int64     `json:"amount" example:"500"`
	IntervalDays int       `json:"intervalDays" example:"7"`
	NextRunAt    time.Time `json:"nextRunAt"`
	CreatedBy    string    `json:"createdBy"`
	CreatedAt    time.Time `json:"createdAt"`
}

func NewAccountDTO(a *domain.Account) *AccountDTO {
	if a == nil {
		return nil
	}
	return &AccountDTO{
		ID:        a.ID,
		GroupID:   a.GroupID,
		UserID:    a.UserID,
		Name:      a.Name,
		Balance:   a.Balance,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func NewWalletDTO(w *domain.Wallet) *WalletDTO {
	if w == nil {
		return nil
	}
	return &WalletDTO{
		ID:        w.ID,
		GroupID:   w.GroupID,
		UserID:    w.UserID,
		Balance:   w.Balance,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

func NewMemberDTOs(members []domain.Member) []MemberDTO {
	out := make([]MemberDTO, len(members))
	for i, m := range members {
		out[i] = MemberDTO{
			UserID:      m.UserID,
			DisplayName: m.DisplayName,
			Role:        string(m.Role),
			IsOwner:     m.IsOwner,
			HasAccount:  m.HasAccount,
		}
	}
	return out
}

func NewOpenRequestDTO(r *domain.OpenRequest) OpenRequestDTO {
	return OpenRequestDTO{
		ID:          r.ID,
		GroupID:     r.GroupID,
		ChildID:     r.ChildID,
		Amount:      r.Amount,
		Reason:      r.Reason,
		Destination: string(r.Destination),
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		ResolvedAt:  r.ResolvedAt,
	}
}

func NewOpenRequestDTOs(requests []domain.OpenRequest) []OpenRequestDTO {
	out := make([]OpenRequestDTO, len(requests))
	for i := range requests {
		out[i] = NewOpenRequestDTO(&requests[i])
	}
	return out
}

func NewAccountRequestDTO(r *domain.AccountRequest) AccountRequestDTO {
	return AccountRequestDTO{
		ID:          r.ID,
		GroupID:     r.GroupID,
		UserID:      r.UserID,
		DisplayName: r.DisplayName,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func NewAccountRequestDTOs(requests []domain.AccountRequest) []AccountRequestDTO {
	out := make([]AccountRequestDTO, len(requests))
	for i := range requests {
		out[i] = NewAccountRequestDTO(&requests[i])
	}
	return out
}

func NewSummaryDTO(s *domain.Summary) SummaryDTO {
	out := SummaryDTO{
		Role:            string(s.Role),
		IsOwner:         s.IsOwner,
		SubjectID:       s.SubjectID,
		Account:         NewAccountDTO(s.Account),
		Wallet:          NewWalletDTO(s.Wallet),
		PendingRequests: NewOpenRequestDTOs(s.PendingRequests),
	}
	if s.Accounts != nil {
		out.Accounts = make([]AccountOverviewDTO, len(s.Accounts))
		for i := range s.Accounts {
			out.Accounts[i] = AccountOverviewDTO{
				AccountDTO:    *NewAccountDTO(&s.Accounts[i].Account),
				DisplayName:   s.Accounts[i].DisplayName,
				WalletBalance: s.Accounts[i].WalletBalance,
			}
		}
	}
	return out
}

func newTransactionDTOs(entries []domain.HistoryEntry) []TransactionDTO {
	out := make([]TransactionDTO, len(entries))
	for i, e := range entries {
		out[i] = TransactionDTO{
			ID:        e.ID,
			GroupID:   e.GroupID,
			UserID:    e.UserID,
			ActorID:   e.ActorID,
			ActorName: e.ActorName,
			Amount:    e.Amount,
			Type:      string(e.Type),
			TypeLabel: e.TypeLabel,
			DateLabel: e.DateLabel,
			Memo:      e.Memo,
			RequestID: e.RequestID,
			CreatedAt: e.CreatedAt,
		}
	}
	return out
}

func NewHistoryDTO(h *domain.History) HistoryDTO {
	return HistoryDTO{
		WalletTransactions: newTransactionDTOs(h.Wallet),
		BankTransactions:   newTransactionDTOs(h.Bank),
	}
}

func NewScheduleDTO(s *domain.AllowanceSchedule) ScheduleDTO {
	return ScheduleDTO{
		ID:           s.ID,
		GroupID:      s.GroupID,
		ChildID:      s.ChildID,
		Amount:       s.Amount,
		IntervalDays: s.IntervalDays,
		NextRunAt:    s.NextRunAt,
		CreatedBy:    s.CreatedBy,
		CreatedAt:    s.CreatedAt,
	}
}

func NewScheduleDTOs(schedules []domain.AllowanceSchedule) []ScheduleDTO {
	out := make([]ScheduleDTO, len(schedules))
	for i := range schedules {
		out[i] = NewScheduleDTO(&schedules[i])
	}
	return out
}
