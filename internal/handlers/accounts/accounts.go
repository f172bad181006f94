package accounts

//go:generate mockgen -source=accounts.go -destination=mock_accounts.go -package=accounts

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/piggybank/internal/domain"
	"github.com/GlebRadaev/piggybank/internal/dto"
	"github.com/GlebRadaev/piggybank/internal/handlers/httperr"
	"github.com/GlebRadaev/piggybank/internal/handlers/params"
	"github.com/GlebRadaev/piggybank/pkg/utils"
	"github.com/GlebRadaev/piggybank/pkg/validate"
)

type Service interface {
	EnsureAccount(ctx context.Context, callerID, groupID, childID string) (*domain.Account, error)
	DeleteAccount(ctx context.Context, callerID, groupID, childID string) error
	RenameAccount(ctx context.Context, callerID, groupID, childID, name string) (*domain.Account, error)
	RequestAccount(ctx context.Context, callerID, groupID string) (*domain.AccountRequest, error)
	RejectAccountRequest(ctx context.Context, callerID, requestID string) error
	ListAccountRequests(ctx context.Context, callerID, groupID string) ([]domain.AccountRequest, error)
}

type AccountsHandler struct {
	accountService Service
}

func New(accountService Service) *AccountsHandler {
	return &AccountsHandler{
		accountService: accountService,
	}
}

// EnsureAccount godoc
//
//	@Summary		Provision a piggy-bank account
//	@Description	Create the child's bank account and wallet if missing. Idempotent.
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.EnsureAccountRequestDTO					true	"Target group and child"
//	@Success		200		{object}	utils.Response{data=dto.AccountDTO}			"Account"
//	@Failure		400		{object}	utils.ErrorResponse							"Invalid request body"
//	@Failure		401		{object}	utils.ErrorResponse							"User not authorized"
//	@Failure		403		{object}	utils.ErrorResponse							"Caller is not an admin"
//	@Failure		404		{object}	utils.ErrorResponse							"Child is not a member"
//	@Failure		500		{object}	utils.ErrorResponse							"Internal server error"
//	@Router			/api/piggy-bank/accounts [post]
func (h *AccountsHandler) EnsureAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := params.Caller(w, r)
	if !ok {
		return
	}

	var req dto.EnsureAccountRequestDTO
	if err := validate.DecodeJSON(r.Body, &req); err != nil {
		httperr.RespondDecode(w, err)
		return
	}

	account, err := h.accountService.EnsureAccount(r.Context(), userID, req.GroupID, req.ChildID)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithData(w, http.StatusOK, dto.NewAccountDTO(account))
}

// DeleteAccount godoc
//
//	@Summary		Delete a piggy-bank account
//	@Description	Remove the child's bank account. Wallet and history are kept.
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			group_id	query		string				true	"Group id"
//	@Param			child_id	query		string				true	"Child id"
//	@Success		200			{object}	utils.Response		"Deleted"
//	@Failure		400			{object}	utils.ErrorResponse	"Missing or invalid parameters"
//	@Failure		403			{object}	utils.ErrorResponse	"Caller is not an admin"
//	@Failure		404			{object}	utils.ErrorResponse	"Account not found"
//	@Failure		500			{object}	utils.ErrorResponse	"Internal server error"
//	@Router			/api/piggy-bank/accounts [delete]
func (h *AccountsHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := params.Caller(w, r)
	if !ok {
		return
	}
	groupID, err := params.QueryUUID(r, "group_id", true)
	if err != nil {
		params.RespondInvalid(w, err)
		return
	}
	childID, err := params.QueryUUID(r, "child_id", true)
	if err != nil {
		params.RespondInvalid(w, err)
		return
	}

	if err := h.accountService.DeleteAccount(r.Context(), userID, groupID, childID); err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "account deleted")
}

// RenameAccount godoc
//
//	@Summary		Rename a piggy-bank account
//	@Description	Rename the caller's account, or a child's account when called by an admin.
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RenameAccountRequestDTO			true	"New name (2-40 characters)"
//	@Success		200		{object}	utils.Response{data=dto.NameDTO}	"Renamed"
//	@Failure		400		{object}	utils.ErrorResponse					"Invalid name"
//	@Failure		403		{object}	utils.ErrorResponse					"Not a member or not an admin"
//	@Failure		404		{object}	utils.ErrorResponse					"Account not found"
//	@Failure		500		{object}	utils.ErrorResponse					"Internal server error"
//	@Router			/api/piggy-bank/accounts/name [patch]
func (h *AccountsHandler) RenameAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := params.Caller(w, r)
	if !ok {
		return
	}

	var req dto.RenameAccountRequestDTO
	if err := validate.DecodeJSON(r.Body, &req); err != nil {
		httperr.RespondDecode(w, err)
		return
	}

	account, err := h.accountService.RenameAccount(r.Context(), userID, req.GroupID, req.ChildID, req.Name)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithData(w, http.StatusOK, dto.NameDTO{Name: account.Name})
}

// RequestAccount godoc
//
//	@Summary		Ask a guardian for an account
//	@Description	File a pending account request. Re-requesting while pending is a no-op.
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.GroupRequestDTO							true	"Group"
//	@Success		200		{object}	utils.Response{data=dto.AccountRequestDTO}	"Request filed"
//	@Failure		400		{object}	utils.ErrorResponse							"Invalid request body"
//	@Failure		403		{object}	utils.ErrorResponse							"Not a member or caller is an admin"
//	@Failure		500		{object}	utils.ErrorResponse							"Internal server error"
//	@Router			/api/piggy-bank/account-requests [post]
func (h *AccountsHandler) RequestAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := params.Caller(w, r)
	if !ok {
		return
	}

	var req dto.GroupRequestDTO
	if err := validate.DecodeJSON(r.Body, &req); err != nil {
		httperr.RespondDecode(w, err)
		return
	}

	request, err := h.accountService.RequestAccount(r.Context(), userID, req.GroupID)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithData(w, http.StatusOK, dto.NewAccountRequestDTO(request))
}

// ListAccountRequests godoc
//
//	@Summary		List pending account requests
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			group_id	query		string										true	"Group id"
//	@Success		200			{object}	utils.Response{data=[]dto.AccountRequestDTO}	"Pending requests"
//	@Failure		400			{object}	utils.ErrorResponse							"Missing or invalid group_id"
//	@Failure		403			{object}	utils.ErrorResponse							"Caller is not an admin"
//	@Failure		500			{object}	utils.ErrorResponse							"Internal server error"
//	@Router			/api/piggy-bank/account-requests [get]
func (h *AccountsHandler) ListAccountRequests(w http.ResponseWriter, r *http.Request) {
	userID, ok := params.Caller(w, r)
	if !ok {
		return
	}
	groupID, err := params.QueryUUID(r, "group_id", true)
	if err != nil {
		params.RespondInvalid(w, err)
		return
	}

	requests, err := h.accountService.ListAccountRequests(r.Context(), userID, groupID)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithData(w, http.StatusOK, dto.NewAccountRequestDTOs(requests))
}

// RejectAccountRequest godoc
//
//	@Summary		Reject an account request
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			requestID	path		string				true	"Account request id"
//	@Success		200			{object}	utils.Response		"Rejected"
//	@Failure		400			{object}	utils.ErrorResponse	"Invalid request id"
//	@Failure		403			{object}	utils.ErrorResponse	"Caller is not an admin of the group"
//	@Failure		404			{object}	utils.ErrorResponse	"Request not found"
//	@Failure		409			{object}	utils.ErrorResponse	"Request is not pending"
//	@Failure		500			{object}	utils.ErrorResponse	"Internal server error"
//	@Router			/api/piggy-bank/account-requests/{requestID}/reject [post]
func (h *AccountsHandler) RejectAccountRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := params.Caller(w, r)
	if !ok {
		return
	}
	requestID, err := params.PathUUID(r, "requestID")
	if err != nil {
		params.RespondInvalid(w, err)
		return
	}

	if err := h.accountService.RejectAccountRequest(r.Context(), userID, requestID); err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "account request rejected")
}
