package dto

import "time"

type EnsureAccountRequestDTO struct {
	GroupID string `json:"groupId" validate:"required,uuid" example:"8f14e45f-ceea-467f-a0e6-0a3a8b2b2a11"`
	ChildID string `json:"childId" validate:"required,uuid" example:"c9f0f895-fb98-4b91-9f1e-3e2d1c5a7b10"`
}

type RenameAccountRequestDTO struct {
	GroupID string `json:"groupId" validate:"required,uuid" example:"8f14e45f-ceea-467f-a0e6-0a3a8b2b2a11"`
	ChildID string `json:"childId,omitempty" validate:"omitempty,uuid"`
	Name    string `json:"name" validate:"required" example:"Bike fund"`
}

type DepositRequestDTO struct {
	GroupID string `json:"groupId" validate:"required,uuid" example:"8f14e45f-ceea-467f-a0e6-0a3a8b2b2a11"`
	ChildID string `json:"childId,omitempty" validate:"omitempty,uuid"`
	Amount  Amount `json:"amount" validate:"required" swaggertype:"integer" example:"1000"`
}

type SaveRequestDTO struct {
	GroupID string `json:"groupId" validate:"required,uuid" example:"8f14e45f-ceea-467f-a0e6-0a3a8b2b2a11"`
	Amount  Amount `json:"amount" validate:"required" swaggertype:"integer" example:"400"`
}

type SpendRequestDTO struct {
	GroupID  string `json:"groupId" validate:"required,uuid" example:"8f14e45f-ceea-467f-a0e6-0a3a8b2b2a11"`
	Amount   Amount `json:"amount" validate:"required" swaggertype:"integer" example:"300"`
	Category string `json:"category,omitempty" example:"Snacks"`
	Memo     string `json:"memo,omitempty" example:"ice cream"`
}

type AllowanceRequestDTO struct {
	GroupID string `json:"groupId" validate:"required,uuid" example:"8f14e45f-ceea-467f-a0e6-0a3a8b2b2a11"`
	ChildID string `json:"childId" validate:"required,uuid" example:"c9f0f895-fb98-4b91-9f1e-3e2d1c5a7b10"`
	Amount  Amount `json:"amount" validate:"required" swaggertype:"integer" example:"500"`
	Memo    string `json:"memo,omitempty" example:"Weekly allowance"`
}

type CreateOpenRequestDTO struct {
	GroupID     string `json:"groupId" validate:"required,uuid" example:"8f14e45f-ceea-467f-a0e6-0a3a8b2b2a11"`
	Amount      Amount `json:"amount" validate:"required" swaggertype:"integer" example:"1000"`
	Reason      string `json:"reason,omitempty" example:"New game"`
	Destination string `json:"destination" validate:"required" example:"wallet" enums:"wallet,cash"`
}

// GroupRequestDTO is the body of actions that only need a group scope:
// approve, reject and account requests.
type GroupRequestDTO struct {
	GroupID string `json:"groupId" validate:"required,uuid" example:"8f14e45f-ceea-467f-a0e6-0a3a8b2b2a11"`
}

type ScheduleRequestDTO struct {
	GroupID      string     `json:"groupId" validate:"required,uuid" example:"8f14e45f-ceea-467f-a0e6-0a3a8b2b2a11"`
	ChildID      string     `json:"childId" validate:"required,uuid" example:"c9f0f895-fb98-4b91-9f1e-3e2d1c5a7b10"`
	Amount       Amount     `json:"amount" validate:"required" swaggertype:"integer" example:"500"`
	IntervalDays int        `json:"intervalDays" validate:"required" example:"7"`
	StartAt      *time.Time `json:"startAt,omitempty" example:"2026-10-19T08:00:00Z"`
}
