package service

import (
	"github.com/GlebRadaev/piggybank/internal/handlers/accounts"
	allowancehandlers "github.com/GlebRadaev/piggybank/internal/handlers/allowance"
	"github.com/GlebRadaev/piggybank/internal/handlers/ledger"
	"github.com/GlebRadaev/piggybank/internal/handlers/reports"
	"github.com/GlebRadaev/piggybank/internal/handlers/requests"
	"github.com/GlebRadaev/piggybank/internal/pg"
	"github.com/GlebRadaev/piggybank/internal/repo"
	"github.com/GlebRadaev/piggybank/internal/service/accountservice"
	"github.com/GlebRadaev/piggybank/internal/service/allowanceservice"
	"github.com/GlebRadaev/piggybank/internal/service/ledgerservice"
	"github.com/GlebRadaev/piggybank/internal/service/permissionservice"
	"github.com/GlebRadaev/piggybank/internal/service/reportservice"
	"github.com/GlebRadaev/piggybank/internal/service/requestservice"
)

type Services struct {
	AccountService   accounts.Service
	LedgerService    ledger.Service
	RequestService   requests.Service
	ReportService    reports.Service
	AllowanceService allowancehandlers.Service

	// AllowancePayer is the same allowance service, exposed for the
	// background scheduler.
	AllowancePayer *allowanceservice.Service
}

func New(repos *repo.Repositories, txManager pg.TXManager) *Services {
	gate := permissionservice.New(repos.GroupRepo)

	allowanceService := allowanceservice.New(gate, repos.ScheduleRepo, repos.AccountRepo, repos.LedgerRepo, txManager)

	return &Services{
		AccountService:   accountservice.New(gate, repos.AccountRepo, repos.AccountRepo, txManager),
		LedgerService:    ledgerservice.New(gate, repos.AccountRepo, repos.LedgerRepo, txManager),
		RequestService:   requestservice.New(gate, repos.RequestRepo, repos.AccountRepo, repos.LedgerRepo, txManager),
		ReportService:    reportservice.New(gate, repos.GroupRepo, repos.AccountRepo, repos.RequestRepo, repos.LedgerRepo),
		AllowanceService: allowanceService,
		AllowancePayer:   allowanceService,
	}
}
