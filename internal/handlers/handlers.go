package handlers

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/GlebRadaev/piggybank/docs"
	"github.com/GlebRadaev/piggybank/internal/handlers/accounts"
	allowancehandlers "github.com/GlebRadaev/piggybank/internal/handlers/allowance"
	"github.com/GlebRadaev/piggybank/internal/handlers/ledger"
	"github.com/GlebRadaev/piggybank/internal/handlers/reports"
	"github.com/GlebRadaev/piggybank/internal/handlers/requests"
	"github.com/GlebRadaev/piggybank/internal/service"
	"github.com/GlebRadaev/piggybank/pkg/auth"
	"github.com/GlebRadaev/piggybank/pkg/ratelimit"
	"github.com/GlebRadaev/piggybank/pkg/utils"
	"github.com/GlebRadaev/piggybank/pkg/validate"
)

const pingTimeout = 2 * time.Second

type AccountsHandler interface {
	EnsureAccount(w http.ResponseWriter, r *http.Request)
	DeleteAccount(w http.ResponseWriter, r *http.Request)
	RenameAccount(w http.ResponseWriter, r *http.Request)
	RequestAccount(w http.ResponseWriter, r *http.Request)
	ListAccountRequests(w http.ResponseWriter, r *http.Request)
	RejectAccountRequest(w http.ResponseWriter, r *http.Request)
}

type LedgerHandler interface {
	Deposit(w http.ResponseWriter, r *http.Request)
	Save(w http.ResponseWriter, r *http.Request)
	Spend(w http.ResponseWriter, r *http.Request)
	GrantAllowance(w http.ResponseWriter, r *http.Request)
}

type RequestsHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type ReportsHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	ListMembers(w http.ResponseWriter, r *http.Request)
}

type AllowanceHandler interface {
	SetSchedule(w http.ResponseWriter, r *http.Request)
	ListSchedules(w http.ResponseWriter, r *http.Request)
	DeleteSchedule(w http.ResponseWriter, r *http.Request)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type Handlers struct {
	AccountsHandler  AccountsHandler
	LedgerHandler    LedgerHandler
	RequestsHandler  RequestsHandler
	ReportsHandler   ReportsHandler
	AllowanceHandler AllowanceHandler

	tokens  auth.TokenValidator
	limiter ratelimit.Limiter
	pinger  Pinger
}

func New(s *service.Services, tokens auth.TokenValidator, limiter ratelimit.Limiter, pinger Pinger) *Handlers {
	return &Handlers{
		AccountsHandler:  accounts.New(s.AccountService),
		LedgerHandler:    ledger.New(s.LedgerService),
		RequestsHandler:  requests.New(s.RequestService),
		ReportsHandler:   reports.New(s.ReportService),
		AllowanceHandler: allowancehandlers.New(s.AllowanceService),
		tokens:           tokens,
		limiter:          limiter,
		pinger:           pinger,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Get("/ping", h.Ping)

	r.Route("/api/piggy-bank", func(r chi.Router) {
		r.Use(auth.AuthMiddleware(h.tokens))
		r.Use(middleware.RequestSize(validate.MaxBodyBytes))

		r.Get("/summary", h.ReportsHandler.Summary)
		r.Get("/transactions", h.ReportsHandler.History)
		r.Get("/members", h.ReportsHandler.ListMembers)
		r.Get("/open-requests", h.RequestsHandler.List)
		r.Get("/account-requests", h.AccountsHandler.ListAccountRequests)
		r.Get("/allowance-schedules", h.AllowanceHandler.ListSchedules)

		r.Group(func(r chi.Router) {
			r.Use(ratelimit.Middleware(h.limiter, callerKey))

			r.Route("/accounts", func(r chi.Router) {
				r.Post("/", h.AccountsHandler.EnsureAccount)
				r.Delete("/", h.AccountsHandler.DeleteAccount)
				r.Patch("/name", h.AccountsHandler.RenameAccount)
			})
			r.Post("/account-requests", h.AccountsHandler.RequestAccount)
			r.Post("/account-requests/{requestID}/reject", h.AccountsHandler.RejectAccountRequest)

			r.Post("/deposit", h.LedgerHandler.Deposit)
			r.Post("/save", h.LedgerHandler.Save)
			r.Post("/spend", h.LedgerHandler.Spend)
			r.Post("/allowance", h.LedgerHandler.GrantAllowance)

			r.Post("/open-requests", h.RequestsHandler.Create)
			r.Post("/open-requests/{requestID}/approve", h.RequestsHandler.Approve)
			r.Post("/open-requests/{requestID}/reject", h.RequestsHandler.Reject)

			r.Post("/allowance-schedules", h.AllowanceHandler.SetSchedule)
			r.Delete("/allowance-schedules/{scheduleID}", h.AllowanceHandler.DeleteSchedule)
		})
	})

	return r
}

// Ping godoc
//
//	@Summary	Health check
//	@Tags		Health
//	@Produce	json
//	@Success	200	{object}	utils.Response		"Database reachable"
//	@Failure	503	{object}	utils.ErrorResponse	"Database unreachable"
//	@Router		/ping [get]
func (h *Handlers) Ping(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.pinger.Ping(ctx); err != nil {
		zap.L().Error("database ping failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "pong")
}

func callerKey(r *http.Request) string {
	userID, _ := auth.UserIDFromContext(r.Context())
	return userID
}
