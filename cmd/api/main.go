package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/timesheet-service/internal/api/http"
	"github.com/spec-kit/timesheet-service/internal/api/http/handlers"
	"github.com/spec-kit/timesheet-service/internal/auth"
	"github.com/spec-kit/timesheet-service/internal/config"
	"github.com/spec-kit/timesheet-service/internal/events"
	"github.com/spec-kit/timesheet-service/internal/observability"
	"github.com/spec-kit/timesheet-service/internal/persistence"
	"github.com/spec-kit/timesheet-service/internal/repository"
	"github.com/spec-kit/timesheet-service/internal/service"
	"github.com/spec-kit/timesheet-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	staffRepo := repository.NewStaffRepository(pool)
	projectRepo := repository.NewProjectRepository(pool)
	entryRepo := repository.NewTimeEntryRepository(pool)

	dispatcher := events.NewInMemoryDispatcher(logger)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL())
	provider := auth.NewMicrosoftOAuthProvider(cfg.OAuth)
	states := auth.NewRedisStateStore(redis.Client, cfg.OAuth.StateTTL())
	gate := auth.NewGate(tokens, cfg.Auth.AdminPathPrefix, cfg.Auth.SessionCookie)

	identityService := service.NewIdentityService(staffRepo, tokens, dispatcher, logger)
	staffService := service.NewStaffService(staffRepo, entryRepo, dispatcher)
	projectService := service.NewProjectService(projectRepo)
	entryService := service.NewTimeEntryService(entryRepo, dispatcher)
	reportService := service.NewReportService(staffRepo, projectRepo, entryRepo)
	exportService := service.NewExportService(entryRepo)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:      handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:        handlers.NewAuthHandler(provider, states, identityService, cfg.Auth),
		Staff:       handlers.NewStaffHandler(staffService),
		Projects:    handlers.NewProjectsHandler(projectService),
		TimeEntries: handlers.NewTimeEntriesHandler(entryService),
		Reports:     handlers.NewReportsHandler(reportService, exportService),
		Gate:        gate,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
