package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"banking-ledger/config"
	httpHandler "banking-ledger/internal/adapter/http/handler"
	pgStorage "banking-ledger/internal/adapter/storage/postgres"
	redisStorage "banking-ledger/internal/adapter/storage/redis"
	"banking-ledger/internal/core/ports"
	"banking-ledger/internal/service"
	"banking-ledger/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Banking Ledger API")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Create tables on startup so a fresh database is immediately usable.
	if err := pgStorage.InitSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize schema")
	}

	// Initialize repositories
	accountRepo := pgStorage.NewAccountRepo(pool)
	ledgerRepo := pgStorage.NewLedgerRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize business services
	accountSvc := service.NewAccountService(accountRepo, ledgerRepo, transactor, log)
	transferSvc := service.NewTransferService(accountRepo, ledgerRepo, transactor, log)
	reportingSvc := service.NewReportingService(accountRepo, ledgerRepo)
	policySvc := service.NewPolicyService()

	// Health checkers
	healthCheckers := []ports.HealthChecker{pgStorage.NewHealthCheck(pool)}

	// Optional Redis-backed rate limiting. A missing Redis degrades to an
	// unlimited service rather than refusing to start.
	var rateLimitStore *redisStorage.RateLimitStore
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Warn().Err(err).Msg("Redis unavailable, rate limiting disabled")
		} else {
			defer rdb.Close()
			rateLimitStore = redisStorage.NewRateLimitStore(rdb)
			healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
			log.Info().Msg("Redis connected")
		}
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AccountSvc:     accountSvc,
		TransferSvc:    transferSvc,
		ReportingSvc:   reportingSvc,
		PolicySvc:      policySvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: healthCheckers,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
