package allowance

//go:generate mockgen -source=allowance.go -destination=mock_allowance.go -package=allowance

import (
	"context"
	"net/http"
	"time"

	"github.com/GlebRadaev/piggybank/internal/domain"
	"github.com/GlebRadaev/piggybank/internal/dto"
	"github.com/GlebRadaev/piggybank/internal/handlers/httperr"
	"github.com/GlebRadaev/piggybank/internal/handlers/params"
	"github.com/GlebRadaev/piggybank/pkg/utils"
	"github.com/GlebRadaev/piggybank/pkg/validate"
)

type Service interface {
	SetSchedule(ctx context.Context, callerID, groupID, childID string, amount int64, intervalDays int, startAt time.Time) (*domain.AllowanceSchedule, error)
	ListSchedules(ctx context.Context, callerID, groupID string) ([]domain.AllowanceSchedule, error)
	DeleteSchedule(ctx context.Context, callerID, groupID, scheduleID string) error
}

type AllowanceHandler struct {
	allowanceService Service
}

func New(allowanceService Service) *AllowanceHandler {
	return &AllowanceHandler{
		allowanceService: allowanceService,
	}
}

// SetSchedule godoc
//
//	@Summary		Set recurring allowance
//	@Description	Create or replace the child's allowance schedule. Without startAt the first payment is due now.
//	@Tags			Allowance
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ScheduleRequestDTO					true	"Schedule"
//	@Success		200		{object}	utils.Response{data=dto.ScheduleDTO}	"Schedule"
//	@Failure		400		{object}	utils.ErrorResponse						"Invalid amount or interval"
//	@Failure		403		{object}	utils.ErrorResponse						"Caller is not an admin"
//	@Failure		404		{object}	utils.ErrorResponse						"Child is not a member"
//	@Failure		500		{object}	utils.ErrorResponse						"Internal server error"
//	@Router			/api/piggy-bank/allowance-schedules [post]
func (h *AllowanceHandler) SetSchedule(w http.ResponseWriter, r *http.Request) {
	userID, ok := params.Caller(w, r)
	if !ok {
		return
	}

	var req dto.ScheduleRequestDTO
	if err := validate.DecodeJSON(r.Body, &req); err != nil {
		httperr.RespondDecode(w, err)
		return
	}
	var startAt time.Time
	if req.StartAt != nil {
		startAt = *req.StartAt
	}

	schedule, err := h.allowanceService.SetSchedule(r.Context(), userID, req.GroupID, req.ChildID, req.Amount.Int64(), req.IntervalDays, startAt)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithData(w, http.StatusOK, dto.NewScheduleDTO(schedule))
}

// ListSchedules godoc
//
//	@Summary		List allowance schedules
//	@Tags			Allowance
//	@Security		BearerAuth
//	@Produce		json
//	@Param			group_id	query		string									true	"Group id"
//	@Success		200			{object}	utils.Response{data=[]dto.ScheduleDTO}	"Schedules"
//	@Failure		400			{object}	utils.ErrorResponse						"Invalid parameters"
//	@Failure		403			{object}	utils.ErrorResponse						"Caller is not an admin"
//	@Failure		500			{object}	utils.ErrorResponse						"Internal server error"
//	@Router			/api/piggy-bank/allowance-schedules [get]
func (h *AllowanceHandler) ListSchedules(w http.ResponseWriter, r *http.Request) {
	userID, ok := params.Caller(w, r)
	if !ok {
		return
	}
	groupID, err := params.QueryUUID(r, "group_id", true)
	if err != nil {
		params.RespondInvalid(w, err)
		return
	}

	schedules, err := h.allowanceService.ListSchedules(r.Context(), userID, groupID)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithData(w, http.StatusOK, dto.NewScheduleDTOs(schedules))
}

// DeleteSchedule godoc
//
//	@Summary		Delete allowance schedule
//	@Tags			Allowance
//	@Security		BearerAuth
//	@Produce		json
//	@Param			scheduleID	path		string				true	"Schedule id"
//	@Param			group_id	query		string				true	"Group id"
//	@Success		200			{object}	utils.Response		"Deleted"
//	@Failure		400			{object}	utils.ErrorResponse	"Invalid parameters"
//	@Failure		403			{object}	utils.ErrorResponse	"Caller is not an admin"
//	@Failure		404			{object}	utils.ErrorResponse	"Schedule not found"
//	@Failure		500			{object}	utils.ErrorResponse	"Internal server error"
//	@Router			/api/piggy-bank/allowance-schedules/{scheduleID} [delete]
func (h *AllowanceHandler) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	userID, ok := params.Caller(w, r)
	if !ok {
		return
	}
	scheduleID, err := params.PathUUID(r, "scheduleID")
	if err != nil {
		params.RespondInvalid(w, err)
		return
	}
	groupID, err := params.QueryUUID(r, "group_id", true)
	if err != nil {
		params.RespondInvalid(w, err)
		return
	}

	if err := h.allowanceService.DeleteSchedule(r.Context(), userID, groupID, scheduleID); err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "schedule deleted")
}
