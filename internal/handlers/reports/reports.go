package reports

//go:generate mockgen -source=reports.go -destination=mock_reports.go -package=reports

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/piggybank/internal/domain"
	"github.com/GlebRadaev/piggybank/internal/dto"
	"github.com/GlebRadaev/piggybank/internal/handlers/httperr"
	"github.com/GlebRadaev/piggybank/internal/handlers/params"
	"github.com/GlebRadaev/piggybank/pkg/utils"
)

type Service interface {
	Summary(ctx context.Context, callerID, groupID, childID string) (*domain.Summary, error)
	History(ctx context.Context, callerID, groupID, childID string, limit, offset int) (*domain.History, error)
	ListMembers(ctx context.Context, callerID, groupID string) ([]domain.Member, error)
}

type ReportsHandler struct {
	reportService Service
}

func New(reportService Service) *ReportsHandler {
	return &ReportsHandler{
		reportService: reportService,
	}
}

// Summary godoc
//
//	@Summary		Balance summary
//	@Description	Caller's own account, wallet and pending requests. Admins may pass child_id for a
//	@Description	child's view, or omit it for every member account in the group.
//	@Tags			Reports
//	@Security		BearerAuth
//	@Produce		json
//	@Param			group_id	query		string								true	"Group id"
//	@Param			child_id	query		string								false	"Child id (admin only)"
//	@Success		200			{object}	utils.Response{data=dto.SummaryDTO}	"Summary"
//	@Failure		400			{object}	utils.ErrorResponse					"Invalid parameters"
//	@Failure		403			{object}	utils.ErrorResponse					"Not a member"
//	@Failure		500			{object}	utils.ErrorResponse					"Internal server error"
//	@Router			/api/piggy-bank/summary [get]
func (h *ReportsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	userID, ok := params.Caller(w, r)
	if !ok {
		return
	}
	groupID, childID, err := groupAndChild(r)
	if err != nil {
		params.RespondInvalid(w, err)
		return
	}

	summary, err := h.reportService.Summary(r.Context(), userID, groupID, childID)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithData(w, http.StatusOK, dto.NewSummaryDTO(summary))
}

// History godoc
//
//	@Summary		Transaction history
//	@Description	Wallet and bank ledgers, newest first, with display labels.
//	@Tags			Reports
//	@Security		BearerAuth
//	@Produce		json
//	@Param			group_id	query		string								true	"Group id"
//	@Param			child_id	query		string								false	"Child id (admin only)"
//	@Param			limit		query		int									false	"Page size, default 50, max 100"
//	@Param			offset		query		int									false	"Offset"
//	@Success		200			{object}	utils.Response{data=dto.HistoryDTO}	"History"
//	@Failure		400			{object}	utils.ErrorResponse					"Invalid parameters"
//	@Failure		403			{object}	utils.ErrorResponse					"Not a member or not an admin"
//	@Failure		500			{object}	utils.ErrorResponse					"Internal server error"
//	@Router			/api/piggy-bank/transactions [get]
func (h *ReportsHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := params.Caller(w, r)
	if !ok {
		return
	}
	groupID, childID, err := groupAndChild(r)
	if err != nil {
		params.RespondInvalid(w, err)
		return
	}
	limit, err := params.QueryInt(r, "limit", 0)
	if err != nil {
		params.RespondInvalid(w, err)
		return
	}
	offset, err := params.QueryInt(r, "offset", 0)
	if err != nil {
		params.RespondInvalid(w, err)
		return
	}

	history, err := h.reportService.History(r.Context(), userID, groupID, childID, limit, offset)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithData(w, http.StatusOK, dto.NewHistoryDTO(history))
}

// ListMembers godoc
//
//	@Summary		List group members
//	@Tags			Reports
//	@Security		BearerAuth
//	@Produce		json
//	@Param			group_id	query		string									true	"Group id"
//	@Success		200			{object}	utils.Response{data=[]dto.MemberDTO}	"Members"
//	@Failure		400			{object}	utils.ErrorResponse						"Invalid parameters"
//	@Failure		403			{object}	utils.ErrorResponse						"Caller is not an admin"
//	@Failure		500			{object}	utils.ErrorResponse						"Internal server error"
//	@Router			/api/piggy-bank/members [get]
func (h *ReportsHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	userID, ok := params.Caller(w, r)
	if !ok {
		return
	}
	groupID, err := params.QueryUUID(r, "group_id", true)
	if err != nil {
		params.RespondInvalid(w, err)
		return
	}

	members, err := h.reportService.ListMembers(r.Context(), userID, groupID)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithData(w, http.StatusOK, dto.NewMemberDTOs(members))
}

func groupAndChild(r *http.Request) (string, string, error) {
	groupID, err := params.QueryUUID(r, "group_id", true)
	if err != nil {
		return "", "", err
	}
	childID, err := params.QueryUUID(r, "child_id", false)
	if err != nil {
		return "", "", err
	}
	return groupID, childID, nil
}
