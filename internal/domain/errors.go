package domain

import "errors"

var (
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInvalidAmount       = errors.New("amount must be a positive integer")
	ErrInvalidName         = errors.New("name must be between 2 and 40 characters")
	ErrInvalidDestination  = errors.New("destination must be wallet or cash")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrNotPending          = errors.New("request already processed")
	ErrAlreadyApproved     = errors.New("request already approved by this user")
	ErrSelfApproval        = errors.New("requester cannot approve own request")
	ErrAdminSelfRequest    = errors.New("admins manage accounts directly")
	ErrInvalidInterval     = errors.New("interval must be between 1 and 31 days")
)
