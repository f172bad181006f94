package allowanceservice

//go:generate mockgen -source=allowanceservice.go -destination=mock_allowanceservice.go -package=allowanceservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/piggybank/internal/domain"
	"github.com/GlebRadaev/piggybank/internal/pg"
	"github.com/GlebRadaev/piggybank/internal/service/ledgerservice"
	"github.com/GlebRadaev/piggybank/internal/service/permissionservice"
)

const (
	MinIntervalDays = 1
	MaxIntervalDays = 31

	scheduledMemo = "Scheduled allowance"
)

type ScheduleRepo interface {
	UpsertSchedule(ctx context.Context, s *domain.AllowanceSchedule) (*domain.AllowanceSchedule, error)
	ListSchedules(ctx context.Context, groupID string) ([]domain.AllowanceSchedule, error)
	DeleteSchedule(ctx context.Context, groupID, scheduleID string) (bool, error)
	AdvanceSchedule(ctx context.Context, scheduleID string, prev, next time.Time) (bool, error)
}

type Service struct {
	gate      permissionservice.Gate
	schedules ScheduleRepo
	accounts  ledgerservice.AccountRepo
	ledger    ledgerservice.LedgerRepo
	txManager pg.TXManager
	now       func() time.Time
}

func New(
	gate permissionservice.Gate,
	schedules ScheduleRepo,
	accounts ledgerservice.AccountRepo,
	ledger ledgerservice.LedgerRepo,
	txManager pg.TXManager,
) *Service {
	return &Service{
		gate:      gate,
		schedules: schedules,
		accounts:  accounts,
		ledger:    ledger,
		txManager: txManager,
		now:       time.Now,
	}
}

// SetSchedule creates or replaces the recurring allowance for a child. A
// zero startAt makes the first payment due immediately.
func (s *Service) SetSchedule(ctx context.Context, callerID, groupID, childID string, amount int64, intervalDays int, startAt time.Time) (*domain.AllowanceSchedule, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if intervalDays < MinIntervalDays || intervalDays > MaxIntervalDays {
		return nil, domain.ErrInvalidInterval
	}
	if _, err := s.gate.Check(ctx, callerID, groupID, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if err := permissionservice.CheckMember(ctx, s.gate, childID, groupID); err != nil {
		return nil, err
	}
	if startAt.IsZero() {
		startAt = s.now()
	}

	schedule, err := s.schedules.UpsertSchedule(ctx, &domain.AllowanceSchedule{
		GroupID:      groupID,
		ChildID:      childID,
		Amount:       amount,
		IntervalDays: intervalDays,
		NextRunAt:    startAt.UTC(),
		CreatedBy:    callerID,
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("allowance schedule set",
		zap.String("group_id", groupID),
		zap.String("child_id", childID),
		zap.Int64("amount", amount),
		zap.Int("interval_days", intervalDays),
	)
	return schedule, nil
}

func (s *Service) ListSchedules(ctx context.Context, callerID, groupID string) ([]domain.AllowanceSchedule, error) {
	if _, err := s.gate.Check(ctx, callerID, groupID, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.schedules.ListSchedules(ctx, groupID)
}

func (s *Service) DeleteSchedule(ctx context.Context, callerID, groupID, scheduleID string) error {
	if _, err := s.gate.Check(ctx, callerID, groupID, domain.RoleAdmin); err != nil {
		return err
	}
	deleted, err := s.schedules.DeleteSchedule(ctx, groupID, scheduleID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

// PayAllowance advances a due schedule and credits the child's wallet in one
// transaction. It reports false when another worker advanced the schedule
// first or when the schedule is no longer payable. Missed periods are
// skipped, not paid retroactively.
func (s *Service) PayAllowance(ctx context.Context, schedule domain.AllowanceSchedule, now time.Time) (bool, error) {
	next := NextRun(schedule.NextRunAt, schedule.IntervalDays, now)

	var paid bool
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		advanced, err := s.schedules.AdvanceSchedule(ctx, schedule.ID, schedule.NextRunAt, next)
		if err != nil || !advanced {
			return err
		}

		payable, err := s.payable(ctx, schedule)
		if err != nil || !payable {
			return err
		}

		_, err = ledgerservice.CreditAllowance(ctx, s.accounts, s.ledger, &domain.Transaction{
			GroupID: schedule.GroupID,
			UserID:  schedule.ChildID,
			ActorID: schedule.CreatedBy,
			Amount:  schedule.Amount,
			Memo:    ledgerservice.ComposeMemo("", scheduledMemo),
		})
		if err != nil {
			return err
		}
		paid = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return paid, nil
}

// payable checks that the creator still administers the group and the child
// is still a member.
func (s *Service) payable(ctx context.Context, schedule domain.AllowanceSchedule) (bool, error) {
	if _, err := s.gate.Check(ctx, schedule.CreatedBy, schedule.GroupID, domain.RoleAdmin); err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			zap.L().Warn("allowance creator lost admin role, skipping payment", zap.String("schedule_id", schedule.ID))
			return false, nil
		}
		return false, err
	}
	if err := permissionservice.CheckMember(ctx, s.gate, schedule.ChildID, schedule.GroupID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			zap.L().Warn("allowance child left the group, skipping payment", zap.String("schedule_id", schedule.ID))
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// NextRun returns the first occurrence after now in the series starting at
// prev with the given period in days.
func NextRun(prev time.Time, intervalDays int, now time.Time) time.Time {
	if intervalDays < MinIntervalDays {
		intervalDays = MinIntervalDays
	}
	next := prev.AddDate(0, 0, intervalDays)
	for !next.After(now) {
		next = next.AddDate(0, 0, intervalDays)
	}
	return next
}
