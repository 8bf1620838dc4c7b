package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/voicebite/voicebite-backend/api/routes"
	"github.com/voicebite/voicebite-backend/internal/assistant"
	"github.com/voicebite/voicebite-backend/internal/intent"
	"github.com/voicebite/voicebite-backend/internal/menu"
	"github.com/voicebite/voicebite-backend/pkg/config"
	"github.com/voicebite/voicebite-backend/pkg/db"
	"github.com/voicebite/voicebite-backend/pkg/logger"
	"github.com/voicebite/voicebite-backend/pkg/metrics"
	"github.com/voicebite/voicebite-backend/pkg/redis"
)

const sessionSweepInterval = 5 * time.Minute

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx := context.Background()

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}

	if cfg.App.IsDev() {
		if err := dbClient.AutoMigrate(ctx); err != nil {
			logg.Error(ctx, "failed to migrate schema", err)
			os.Exit(1)
		}
	}
	if cfg.DB.SeedMenu {
		if err := menu.Seed(ctx, dbClient, logg); err != nil {
			logg.Error(ctx, "failed to seed menu", err)
			os.Exit(1)
		}
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(ctx, cfg.Redis, logg)
		if err != nil {
			logg.Error(ctx, "failed to bootstrap redis", err)
			os.Exit(1)
		}
	} else {
		logg.Warn(ctx, "redis not configured, voice rate limiting disabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	intentMetrics := metrics.NewIntentMetrics(registry)

	menuRepo := menu.NewRepository(dbClient.DB())
	menuService, err := menu.NewService(menuRepo)
	if err != nil {
		logg.Error(ctx, "failed to create menu service", err)
		os.Exit(1)
	}

	snapshotCache := menu.NewSnapshotCache(menuRepo, cfg.Catalog.SnapshotTTL, nil)

	oracle, err := intent.NewGeminiOracle(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		logg.Error(ctx, "failed to create oracle", err)
		os.Exit(1)
	}

	intentService, err := intent.NewService(snapshotCache, oracle, logg, intentMetrics)
	if err != nil {
		logg.Error(ctx, "failed to create intent service", err)
		os.Exit(1)
	}

	sessions := assistant.NewRegistry(cfg.Assistant.SessionTTL, nil)
	engine, err := assistant.NewEngine(
		sessions,
		intentService,
		snapshotCache,
		assistant.DelaySettler{Delay: cfg.Assistant.SettlementDelay},
		logg,
	)
	if err != nil {
		logg.Error(ctx, "failed to create assistant engine", err)
		os.Exit(1)
	}

	sweepCtx, stopSweeper := context.WithCancel(ctx)
	go func() {
		ticker := time.NewTicker(sessionSweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				engine.SweepSessions(sweepCtx)
			case <-sweepCtx.Done():
				return
			}
		}
	}()

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:        cfg,
			Logger:        logg,
			DB:            dbClient,
			Redis:         redisClient,
			MenuService:   menuService,
			SnapshotCache: snapshotCache,
			Intent:        intentService,
			Engine:        engine,
			Metrics:       registry,
		}),
	}

	serverCtx := logg.WithFields(ctx, map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(serverCtx, "starting api server")

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(serverCtx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logg.Info(logg.WithField(serverCtx, "signal", sig.String()), "shutting down")
		shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(serverCtx, "graceful shutdown failed", err)
		}
	}

	stopSweeper()

	var closeErr error
	closeErr = multierr.Append(closeErr, dbClient.Close())
	if redisClient != nil {
		closeErr = multierr.Append(closeErr, redisClient.Close())
	}
	if closeErr != nil {
		logg.Error(serverCtx, "error closing resources", closeErr)
		os.Exit(1)
	}
}
