// Package main - entry point of the school events hub API server.
//
// The architecture follows Clean Architecture and DDD:
// - Domain: pure business logic without external dependencies
// - Application: use case orchestration (Commands/Queries)
// - Infrastructure: repository implementations, messaging, seed data
// - Interface: HTTP endpoints
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/mergington-hub/school-events-hub/config"
	"github.com/mergington-hub/school-events-hub/internal/application/command"
	"github.com/mergington-hub/school-events-hub/internal/application/eventhandler"
	"github.com/mergington-hub/school-events-hub/internal/application/query"
	"github.com/mergington-hub/school-events-hub/internal/domain/shared"
	"github.com/mergington-hub/school-events-hub/internal/infrastructure/messaging"
	"github.com/mergington-hub/school-events-hub/internal/infrastructure/persistence/memory"
	"github.com/mergington-hub/school-events-hub/internal/infrastructure/scheduler"
	"github.com/mergington-hub/school-events-hub/internal/infrastructure/scheduler/jobs"
	"github.com/mergington-hub/school-events-hub/internal/infrastructure/seed"
	httpserver "github.com/mergington-hub/school-events-hub/internal/interface/http"
	"github.com/mergington-hub/school-events-hub/pkg/logger"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(logger.Options{
		Output:    os.Stdout,
		Level:     logger.ParseLevel(cfg.Observability.LogLevel),
		AddCaller: cfg.Observability.LogCaller,
	})
	log.Info("starting",
		logger.String("app", cfg.App.Name),
		logger.String("version", cfg.App.Version),
		logger.String("env", string(cfg.App.Environment)),
	)

	// ── Infrastructure ────────────────────────────────────────────────────

	users := memory.NewUserRepository()
	events := memory.NewEventRepository()
	ledger := memory.NewLedgerRepository()
	catalog := memory.NewBadgeCatalogRepository()
	userBadges := memory.NewUserBadgeRepository()

	if cfg.App.SeedDemoData {
		if err := seed.Run(ctx, seed.Stores{Users: users, Events: events, Badges: catalog}); err != nil {
			return fmt.Errorf("seed demo data: %w", err)
		}
		log.Info("demo data seeded")
	}

	bus := messaging.NewInMemoryEventBus(messaging.InMemoryEventBusConfig{
		AsyncMode:      cfg.EventBus.AsyncMode,
		WorkerPoolSize: cfg.EventBus.WorkerPoolSize,
		EnableMetrics:  true,
	})
	defer bus.Close()

	// Audit trail: every domain event becomes one log line
	if err := bus.SubscribeAll(eventhandler.NewAuditHandler(log)); err != nil {
		return fmt.Errorf("subscribe audit log: %w", err)
	}

	onPoints := eventhandler.NewOnPointsAwardedHandler(users, log, eventhandler.DefaultPointsAwardedConfig())
	if err := bus.Subscribe(shared.EventPointsAwarded, onPoints.Handle); err != nil {
		return fmt.Errorf("subscribe points handler: %w", err)
	}

	onBadge := eventhandler.NewOnBadgeEarnedHandler(catalog, userBadges, log)
	if err := bus.Subscribe(shared.EventBadgeEarned, onBadge.Handle); err != nil {
		return fmt.Errorf("subscribe badge handler: %w", err)
	}

	// ── Application ───────────────────────────────────────────────────────

	award := command.NewAwardPointsHandler(ledger, users, userBadges, bus)
	board := query.NewGetLeaderboardHandler(users, ledger, userBadges, cfg.Gamification.DefaultLeaderboardLimit)

	handlers := &httpserver.Handlers{
		ListEvents:  query.NewListEventsHandler(events),
		GetEvent:    query.NewGetEventHandler(events),
		Leaderboard: board,
		UserRanking: query.NewGetUserRankingHandler(board, ledger, userBadges),
		ListBadges:  query.NewListBadgesHandler(catalog),
		UserBadges:  query.NewGetUserBadgesHandler(catalog, userBadges),
		Register:    command.NewRegisterParticipantHandler(events, ledger, award, bus),
		Unregister:  command.NewUnregisterParticipantHandler(events, bus),
		Attendance:  command.NewMarkAttendanceHandler(events, award, bus),
		Complete:    command.NewCompleteEventHandler(events, award, bus),
	}

	// ── Background jobs ───────────────────────────────────────────────────

	if cfg.Scheduler.Enabled {
		sched := scheduler.NewScheduler(scheduler.SchedulerConfig{})
		if err := sched.Register(
			jobs.NewClosePastEventsJob(events, nil),
			scheduler.NewIntervalSchedule(cfg.Scheduler.CloseEventsInterval),
		); err != nil {
			return fmt.Errorf("register close events job: %w", err)
		}
		if err := sched.Register(
			jobs.NewLeaderboardSnapshotJob(board, nil),
			scheduler.NewIntervalSchedule(cfg.Scheduler.SnapshotInterval),
		); err != nil {
			return fmt.Errorf("register snapshot job: %w", err)
		}
		if err := sched.Start(ctx); err != nil {
			return fmt.Errorf("start scheduler: %w", err)
		}
		defer sched.Stop()
	}

	// ── Interface ─────────────────────────────────────────────────────────

	srv := httpserver.NewServer(httpserver.ServerConfig{
		HTTP:     cfg.HTTP,
		App:      cfg.App,
		Handlers: handlers,
		Logger:   log,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	// ── Shutdown ──────────────────────────────────────────────────────────

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case sig := <-sigCh:
		log.Info("shutdown signal received", logger.String("signal", sig.String()))
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("stopped")
	return nil
}
