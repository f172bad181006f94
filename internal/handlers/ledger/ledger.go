package ledger

//go:generate mockgen -source=ledger.go -destination=mock_ledger.go -package=ledger

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
	Deposit(ctx context.Context, callerID, groupID, childID string, amount int64) (int64, error)
	Save(ctx context.Context, callerID, groupID string, amount int64) (*domain.Balances, error)
	Spend(ctx context.Context, callerID, groupID string, amount int64, category, note string) (int64, error)
	GrantAllowance(ctx context.Context, callerID, groupID, childID string, amount int64, memo string) (int64, error)
}

type LedgerHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
	}
}

// Deposit godoc
//
//	@Summary		Parent deposit
//	@Description	Credit a bank account. Without childId the caller's own account is credited.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DepositRequestDTO					true	"Deposit"
//	@Success		200		{object}	utils.Response{data=dto.BalanceDTO}		"New bank balance"
//	@Failure		400		{object}	utils.ErrorResponse						"Invalid amount"
//	@Failure		403		{object}	utils.ErrorResponse						"Caller is not an admin"
//	@Failure		404		{object}	utils.ErrorResponse						"Child is not a member"
//	@Failure		429		{object}	utils.ErrorResponse						"Too many requests"
//	@Failure		500		{object}	utils.ErrorResponse						"Internal server error"
//	@Router			/api/piggy-bank/deposit [post]
func (h *LedgerHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	userID, ok := params.Caller(w, r)
	if !ok {
		return
	}

	var req dto.DepositRequestDTO
	if err := validate.DecodeJSON(r.Body, &req); err != nil {
		httperr.RespondDecode(w, err)
		return
	}

	balance, err := h.ledgerService.Deposit(r.Context(), userID, req.GroupID, req.ChildID, req.Amount.Int64())
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithData(w, http.StatusOK, dto.BalanceDTO{Balance: balance})
}

// Save godoc
//
//	@Summary		Save to piggy bank
//	@Description	Move money from the caller's wallet into their bank account.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SaveRequestDTO						true	"Save"
//	@Success		200		{object}	utils.Response{data=dto.BalancesDTO}	"Wallet and bank balances"
//	@Failure		400		{object}	utils.ErrorResponse						"Invalid amount"
//	@Failure		403		{object}	utils.ErrorResponse						"Not a member"
//	@Failure		409		{object}	utils.ErrorResponse						"Insufficient wallet balance"
//	@Failure		429		{object}	utils.ErrorResponse						"Too many requests"
//	@Failure		500		{object}	utils.ErrorResponse						"Internal server error"
//	@Router			/api/piggy-bank/save [post]
func (h *LedgerHandler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := params.Caller(w, r)
	if !ok {
		return
	}

	var req dto.SaveRequestDTO
	if err := validate.DecodeJSON(r.Body, &req); err != nil {
		httperr.RespondDecode(w, err)
		return
	}

	balances, err := h.ledgerService.Save(r.Context(), userID, req.GroupID, req.Amount.Int64())
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithData(w, http.StatusOK, dto.BalancesDTO{
		WalletBalance: balances.WalletBalance,
		BankBalance:   balances.BankBalance,
	})
}

// Spend godoc
//
//	@Summary		Spend from wallet
//	@Description	Debit the caller's wallet. Category and memo are joined into the transaction memo.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SpendRequestDTO					true	"Spend"
//	@Success		200		{object}	utils.Response{data=dto.BalanceDTO}	"New wallet balance"
//	@Failure		400		{object}	utils.ErrorResponse					"Invalid amount"
//	@Failure		403		{object}	utils.ErrorResponse					"Not a member"
//	@Failure		409		{object}	utils.ErrorResponse					"Insufficient wallet balance"
//	@Failure		429		{object}	utils.ErrorResponse					"Too many requests"
//	@Failure		500		{object}	utils.ErrorResponse					"Internal server error"
//	@Router			/api/piggy-bank/spend [post]
func (h *LedgerHandler) Spend(w http.ResponseWriter, r *http.Request) {
	userID, ok := params.Caller(w, r)
	if !ok {
		return
	}

	var req dto.SpendRequestDTO
	if err := validate.DecodeJSON(r.Body, &req); err != nil {
		httperr.RespondDecode(w, err)
		return
	}

	balance, err := h.ledgerService.Spend(r.Context(), userID, req.GroupID, req.Amount.Int64(), req.Category, req.Memo)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithData(w, http.StatusOK, dto.BalanceDTO{Balance: balance})
}

// GrantAllowance godoc
//
//	@Summary		Grant allowance
//	@Description	Credit a child's wallet.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AllowanceRequestDTO				true	"Allowance"
//	@Success		200		{object}	utils.Response{data=dto.BalanceDTO}	"New wallet balance"
//	@Failure		400		{object}	utils.ErrorResponse					"Invalid amount"
//	@Failure		403		{object}	utils.ErrorResponse					"Caller is not an admin"
//	@Failure		404		{object}	utils.ErrorResponse					"Child is not a member"
//	@Failure		429		{object}	utils.ErrorResponse					"Too many requests"
//	@Failure		500		{object}	utils.ErrorResponse					"Internal server error"
//	@Router			/api/piggy-bank/allowance [post]
func (h *LedgerHandler) GrantAllowance(w http.ResponseWriter, r *http.Request) {
	userID, ok := params.Caller(w, r)
	if !ok {
		return
	}

	var req dto.AllowanceRequestDTO
	if err := validate.DecodeJSON(r.Body, &req); err != nil {
		httperr.RespondDecode(w, err)
		return
	}

	balance, err := h.ledgerService.GrantAllowance(r.Context(), userID, req.GroupID, req.ChildID, req.Amount.Int64(), req.Memo)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithData(w, http.StatusOK, dto.BalanceDTO{Balance: balance})
}
