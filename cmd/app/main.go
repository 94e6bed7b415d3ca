// @title Golden Egg API
// @version 1.0
// @description Break eggs for rewards, claim the running total and manage promotional links.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/osse101/GoldenEgg_Go/docs"
	"github.com/osse101/GoldenEgg_Go/internal/bootstrap"
	"github.com/osse101/GoldenEgg_Go/internal/config"
	"github.com/osse101/GoldenEgg_Go/internal/database"
	"github.com/osse101/GoldenEgg_Go/internal/game"
	"github.com/osse101/GoldenEgg_Go/internal/handler"
	"github.com/osse101/GoldenEgg_Go/internal/server"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		slog.Warn("Configuration warning", "warning", w)
	}

	handler.InitValidator()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, ledgerService, err := bootstrap.InitializeLedger(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize break ledger", "error", err)
		os.Exit(1)
	}

	eventBus := bootstrap.InitializeEventSystem()
	bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:      eventBus,
		LedgerService: ledgerService,
	})

	store := game.NewStore(game.Options{
		TotalEggs:     cfg.TotalEggs,
		MinReward:     cfg.MinReward,
		MaxReward:     cfg.MaxReward,
		DefaultDomain: cfg.DefaultDomain,
		GameDuration:  cfg.GameDuration,
	})
	gameService := game.NewService(store, eventBus)

	sched, err := bootstrap.InitializeScheduler(cfg, gameService, ledgerService)
	if err != nil {
		slog.Error("Failed to initialize scheduler", "error", err)
		os.Exit(1)
	}
	sched.Start()

	// A typed nil *pgxpool.Pool would defeat the nil check in /readyz
	var readiness database.Pool
	if dbPool != nil {
		readiness = dbPool
	}

	srv := server.NewServer(server.Options{
		Port:               cfg.Port,
		AdminAPIKey:        cfg.AdminAPIKey,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		TrustedProxies:     cfg.TrustedProxies,
	}, readiness, gameService, ledgerService)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:    srv,
		Scheduler: sched,
		DBPool:    dbPool,
	})
}
