package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/piggybank/internal/allowance"
	"github.com/GlebRadaev/piggybank/internal/config"
	"github.com/GlebRadaev/piggybank/internal/handlers"
	"github.com/GlebRadaev/piggybank/internal/pg"
	"github.com/GlebRadaev/piggybank/internal/repo"
	"github.com/GlebRadaev/piggybank/internal/service"
	"github.com/GlebRadaev/piggybank/pkg/auth"
	"github.com/GlebRadaev/piggybank/pkg/logger"
	"github.com/GlebRadaev/piggybank/pkg/ratelimit"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg       *config.Config
	api       *handlers.Handlers
	srv       *service.Services
	repo      *repo.Repositories
	scheduler *allowance.Scheduler

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	conn := pg.New(pool)
	a.cfg = cfg
	a.repo = repo.New(conn)
	a.srv = service.New(a.repo, txManager)

	limiter, err := a.buildLimiter(ctx)
	if err != nil {
		return fmt.Errorf("can't build rate limiter: %w", err)
	}
	a.api = handlers.New(a.srv, auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer), limiter, conn)
	a.scheduler = allowance.New(cfg, a.repo.ScheduleRepo, a.srv.AllowancePayer)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startAllowanceScheduler(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

// buildLimiter uses redis when an address is configured so limits hold
// across instances, and an in-process limiter otherwise.
func (a *Application) buildLimiter(ctx context.Context) (ratelimit.Limiter, error) {
	if a.cfg.RedisAddress != "" {
		client := redis.NewClient(&redis.Options{Addr: a.cfg.RedisAddress})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, err
		}
		a.wg.Add(1)
		go func() {
			defer a.wg.Done()
			<-ctx.Done()
			if err := client.Close(); err != nil {
				zap.L().Error("failed to close redis client", zap.Error(err))
			}
		}()
		zap.L().Info("rate limiting backed by redis", zap.String("address", a.cfg.RedisAddress))
		return ratelimit.NewRedisLimiter(client, a.cfg.RateLimit, a.cfg.RateWindow), nil
	}

	limiter := ratelimit.NewMemoryLimiter(a.cfg.RateLimit, a.cfg.RateWindow)
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		ticker := time.NewTicker(a.cfg.RateWindow)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				limiter.Cleanup()
			}
		}
	}()
	return limiter, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startAllowanceScheduler(ctx context.Context) {
	a.scheduler.Start(ctx)
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
