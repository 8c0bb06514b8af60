package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/nickolaa/konsol-pro-clone/internal/config"
	"github.com/nickolaa/konsol-pro-clone/internal/handlers"
	"github.com/nickolaa/konsol-pro-clone/internal/pg"
	"github.com/nickolaa/konsol-pro-clone/internal/renderer"
	"github.com/nickolaa/konsol-pro-clone/internal/repo"
	"github.com/nickolaa/konsol-pro-clone/internal/service"
	"github.com/nickolaa/konsol-pro-clone/internal/settlement"
	"github.com/nickolaa/konsol-pro-clone/pkg/clients"
	"github.com/nickolaa/konsol-pro-clone/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

// Application owns the HTTP API and the settlement poller. Start brings
// both up; Wait blocks until the context is canceled or a component
// pushes a fatal error into errCh.
type Application struct {
	cfg    *config.Config
	api    *handlers.Handlers
	srv    *service.Services
	repo   *repo.Repositories
	poller *settlement.Service

	errCh chan error
	wg    sync.WaitGroup
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	if err := logger.InitLogger(cfg); err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := newPool(ctx, cfg.Database)
	if err != nil {
		zap.L().Error("Database connection failed", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("Migrations failed", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}

	txManager := pg.NewTXManager(pool)
	httpClient := clients.NewHTTPClient()

	a.cfg = cfg
	a.repo = repo.New(pg.New(pool), txManager)
	a.srv = service.New(a.repo, txManager, renderer.New(cfg, httpClient))
	a.api = handlers.New(a.srv)
	a.poller = settlement.New(cfg, a.repo.LedgerRepo, a.srv.Ledger, httpClient)

	a.serveHTTP(ctx)
	a.runPoller(ctx)

	zap.L().Info("All systems started successfully")
	return nil
}

func newPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func (a *Application) serveHTTP(ctx context.Context) {
	router := chi.NewRouter()
	a.api.InitRoutes(router)

	server := &http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("HTTP server shutdown failed", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("Starting http server", zap.String("address", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()
}

func (a *Application) runPoller(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.poller.Start(ctx)
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var drained sync.WaitGroup
	drained.Add(1)

	go func() {
		defer drained.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	drained.Wait()

	return appErr
}
