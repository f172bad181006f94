package requests

//go:generate mockgen -source=requests.go -destination=mock_requests.go -package=requests

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
	Create(ctx context.Context, callerID, groupID string, amount int64, reason string, destination domain.Destination) (*domain.OpenRequestReceipt, error)
	Approve(ctx context.Context, callerID, groupID, requestID string) (*domain.OpenRequest, error)
	Reject(ctx context.Context, callerID, groupID, requestID string) error
	List(ctx context.Context, callerID, groupID string) ([]domain.OpenRequest, error)
}

type RequestsHandler struct {
	requestService Service
}

func New(requestService Service) *RequestsHandler {
	return &RequestsHandler{
		requestService: requestService,
	}
}

// Create godoc
//
//	@Summary		Create open-request
//	@Description	Ask a guardian to pay out of the caller's bank account to their wallet or as cash.
//	@Description	A shortfall at creation is flagged but does not fail the request.
//	@Tags			Open requests
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateOpenRequestDTO						true	"Request"
//	@Success		201		{object}	utils.Response{data=dto.OpenRequestCreatedDTO}	"Created"
//	@Failure		400		{object}	utils.ErrorResponse								"Invalid amount or destination"
//	@Failure		403		{object}	utils.ErrorResponse								"Not a member"
//	@Failure		429		{object}	utils.ErrorResponse								"Too many requests"
//	@Failure		500		{object}	utils.ErrorResponse								"Internal server error"
//	@Router			/api/piggy-bank/open-requests [post]
func (h *RequestsHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := params.Caller(w, r)
	if !ok {
		return
	}

	var req dto.CreateOpenRequestDTO
	if err := validate.DecodeJSON(r.Body, &req); err != nil {
		httperr.RespondDecode(w, err)
		return
	}

	receipt, err := h.requestService.Create(r.Context(), userID, req.GroupID, req.Amount.Int64(), req.Reason, domain.Destination(req.Destination))
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithData(w, http.StatusCreated, dto.OpenRequestCreatedDTO{
		ID:                  receipt.Request.ID,
		Status:              string(receipt.Request.Status),
		InsufficientBalance: receipt.InsufficientBalance,
	})
}

// List godoc
//
//	@Summary		List open-requests
//	@Description	Members see their own requests, admins see the whole group. At most 50, newest first.
//	@Tags			Open requests
//	@Security		BearerAuth
//	@Produce		json
//	@Param			group_id	query		string									true	"Group id"
//	@Success		200			{object}	utils.Response{data=[]dto.OpenRequestDTO}	"Requests"
//	@Failure		400			{object}	utils.ErrorResponse						"Missing or invalid group_id"
//	@Failure		403			{object}	utils.ErrorResponse						"Not a member"
//	@Failure		500			{object}	utils.ErrorResponse						"Internal server error"
//	@Router			/api/piggy-bank/open-requests [get]
func (h *RequestsHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := params.Caller(w, r)
	if !ok {
		return
	}
	groupID, err := params.QueryUUID(r, "group_id", true)
	if err != nil {
		params.RespondInvalid(w, err)
		return
	}

	requests, err := h.requestService.List(r.Context(), userID, groupID)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithData(w, http.StatusOK, dto.NewOpenRequestDTOs(requests))
}

// Approve godoc
//
//	@Summary		Approve open-request
//	@Description	Pay the request out of the child's bank account. The requester cannot approve.
//	@Tags			Open requests
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			requestID	path		string								true	"Request id"
//	@Param			request		body		dto.GroupRequestDTO					true	"Group"
//	@Success		200			{object}	utils.Response{data=dto.StatusDTO}	"Approved"
//	@Failure		400			{object}	utils.ErrorResponse					"Invalid id"
//	@Failure		403			{object}	utils.ErrorResponse					"Not an admin or self-approval"
//	@Failure		404			{object}	utils.ErrorResponse					"Request not found"
//	@Failure		409			{object}	utils.ErrorResponse					"Not pending, already approved or insufficient balance"
//	@Failure		500			{object}	utils.ErrorResponse					"Internal server error"
//	@Router			/api/piggy-bank/open-requests/{requestID}/approve [post]
func (h *RequestsHandler) Approve(w http.ResponseWriter, r *http.Request) {
	userID, groupID, requestID, ok := h.action(w, r)
	if !ok {
		return
	}

	req, err := h.requestService.Approve(r.Context(), userID, groupID, requestID)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithData(w, http.StatusOK, dto.StatusDTO{Status: string(req.Status)})
}

// Reject godoc
//
//	@Summary		Reject open-request
//	@Tags			Open requests
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			requestID	path		string				true	"Request id"
//	@Param			request		body		dto.GroupRequestDTO	true	"Group"
//	@Success		200			{object}	utils.Response		"Rejected"
//	@Failure		400			{object}	utils.ErrorResponse	"Invalid id"
//	@Failure		403			{object}	utils.ErrorResponse	"Not an admin"
//	@Failure		404			{object}	utils.ErrorResponse	"Request not found"
//	@Failure		409			{object}	utils.ErrorResponse	"Not pending"
//	@Failure		500			{object}	utils.ErrorResponse	"Internal server error"
//	@Router			/api/piggy-bank/open-requests/{requestID}/reject [post]
func (h *RequestsHandler) Reject(w http.ResponseWriter, r *http.Request) {
	userID, groupID, requestID, ok := h.action(w, r)
	if !ok {
		return
	}

	if err := h.requestService.Reject(r.Context(), userID, groupID, requestID); err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "request rejected")
}

func (h *RequestsHandler) action(w http.ResponseWriter, r *http.Request) (userID, groupID, requestID string, ok bool) {
	if userID, ok = params.Caller(w, r); !ok {
		return
	}
	requestID, err := params.PathUUID(r, "requestID")
	if err != nil {
		params.RespondInvalid(w, err)
		return "", "", "", false
	}

	var req dto.GroupRequestDTO
	if err := validate.DecodeJSON(r.Body, &req); err != nil {
		httperr.RespondDecode(w, err)
		return "", "", "", false
	}
	return userID, req.GroupID, requestID, true
}
