package allowance

//go:generate mockgen -source=scheduler.go -destination=mock_scheduler.go -package=allowance

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/piggybank/internal/config"
	"github.com/GlebRadaev/piggybank/internal/domain"
)

type DueRepo interface {
	FindDue(ctx context.Context, now time.Time, limit uint32) ([]domain.AllowanceSchedule, error)
}

type Payer interface {
	PayAllowance(ctx context.Context, schedule domain.AllowanceSchedule, now time.Time) (bool, error)
}

// Scheduler periodically pays due allowance schedules on a bounded worker
// pool. A schedule already being paid is skipped until its task finishes.
type Scheduler struct {
	repo       DueRepo
	payer      Payer
	workerPool WorkerPoolI
	limit      uint32
	interval   time.Duration
	now        func() time.Time
	inFlight   sync.Map
}

func New(cfg *config.Config, repo DueRepo, payer Payer) *Scheduler {
	return &Scheduler{
		repo:       repo,
		payer:      payer,
		workerPool: NewWorkerPool(cfg.AllowanceWorkers),
		limit:      cfg.AllowanceBatch,
		interval:   cfg.AllowanceInterval,
		now:        time.Now,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	zap.L().Info("allowance scheduler started", zap.Duration("interval", s.interval))
	go s.run(ctx)
}

func (s *Scheduler) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	defer s.workerPool.Close()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping allowance scheduler")
			return
		case <-ticker.C:
			s.processDue(ctx)
		}
	}
}

func (s *Scheduler) processDue(ctx context.Context) {
	now := s.now()
	schedules, err := s.repo.FindDue(ctx, now, s.limit)
	if err != nil {
		zap.L().Error("failed to fetch due allowance schedules", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, schedule := range schedules {
		schedule := schedule
		if _, loaded := s.inFlight.LoadOrStore(schedule.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer s.inFlight.Delete(schedule.ID)
				return s.pay(ctx, schedule, now)
			})
			if err != nil {
				s.inFlight.Delete(schedule.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("error dispatching allowance schedules", zap.Error(err))
	}
}

func (s *Scheduler) pay(ctx context.Context, schedule domain.AllowanceSchedule, now time.Time) error {
	paid, err := s.payer.PayAllowance(ctx, schedule, now)
	if err != nil {
		return err
	}
	if paid {
		zap.L().Info("allowance paid",
			zap.String("schedule_id", schedule.ID),
			zap.String("child_id", schedule.ChildID),
			zap.Int64("amount", schedule.Amount),
		)
	}
	return nil
}
