package repo

import (
	"github.com/GlebRadaev/piggybank/internal/pg"
	accountrepo "github.com/GlebRadaev/piggybank/internal/repo/account-repo"
	grouprepo "github.com/GlebRadaev/piggybank/internal/repo/group-repo"
	ledgerrepo "github.com/GlebRadaev/piggybank/internal/repo/ledger-repo"
	requestrepo "github.com/GlebRadaev/piggybank/internal/repo/request-repo"
	schedulerepo "github.com/GlebRadaev/piggybank/internal/repo/schedule-repo"
)

// Repositories holds the concrete stores. Each service narrows them to the
// interface it consumes.
type Repositories struct {
	GroupRepo    *grouprepo.Repository
	AccountRepo  *accountrepo.Repository
	LedgerRepo   *ledgerrepo.Repository
	RequestRepo  *requestrepo.Repository
	ScheduleRepo *schedulerepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		GroupRepo:    grouprepo.New(conn),
		AccountRepo:  accountrepo.New(conn),
		LedgerRepo:   ledgerrepo.New(conn),
		RequestRepo:  requestrepo.New(conn),
		ScheduleRepo: schedulerepo.New(conn),
	}
}
