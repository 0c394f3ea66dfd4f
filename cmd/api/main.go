package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smart-wallet-core/config"
	httpHandler "smart-wallet-core/internal/adapter/http/handler"
	"smart-wallet-core/internal/adapter/storage/memory"
	pgStorage "smart-wallet-core/internal/adapter/storage/postgres"
	redisStorage "smart-wallet-core/internal/adapter/storage/redis"
	"smart-wallet-core/internal/core/domain"
	"smart-wallet-core/internal/core/ports"
	"smart-wallet-core/internal/service"
	"smart-wallet-core/pkg/logger"
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
		Msg("Starting Smart Wallet Core")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Global owner (registry administration)
	var globalOwner domain.Address
	if cfg.Admin.Owner != "" {
		if globalOwner, err = domain.ParseAddress(cfg.Admin.Owner); err != nil {
			log.Fatal().Err(err).Msg("Invalid admin.owner address")
		}
	} else {
		log.Warn().Msg("admin.owner not set, registry administration disabled")
	}

	// Initialize repositories
	walletRepo := pgStorage.NewWalletRepo(pool)
	guardianRepo := pgStorage.NewGuardianRepo(pool)
	pendingRepo := pgStorage.NewPendingChangeRepo(pool)
	recoveryRepo := pgStorage.NewRecoveryRepo(pool)
	lockRepo := pgStorage.NewLockRepo(pool)
	whitelistRepo := pgStorage.NewWhitelistRepo(pool)
	registryRepo := pgStorage.NewRegistryRepo(pool)
	moduleRepo := pgStorage.NewModuleRepo(pool)
	auditRepo := pgStorage.NewAuditRepository(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	sessionStore := redisStorage.NewSessionStore(rdb)
	replayGuard := redisStorage.NewReplayGuard(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// External collaborators. The call executor and capability prober reach
	// the account/proxy layer; the bundled implementations record calls and
	// approve probes, which is sufficient until a chain gateway is attached.
	executor := memory.NewExecutor()
	prober := memory.NewProber()

	timelock := service.TimelockParams{
		SecurityPeriod: cfg.Timelock.SecurityPeriod,
		SecurityWindow: cfg.Timelock.SecurityWindow(),
		RecoveryPeriod: cfg.Timelock.RecoveryPeriod,
		LockPeriod:     cfg.Timelock.LockPeriod,
	}

	// Initialize core services
	sigSvc := service.NewECDSASignatureService()
	tokenSvc := service.NewJWTTokenService(cfg.Admin.JWTSecret, cfg.Admin.JWTExpiry, cfg.Admin.JWTIssuer)
	auditSvc := service.NewAuditService(auditRepo, log)

	// Initialize business services
	guardianSvc := service.NewGuardianService(walletRepo, guardianRepo, pendingRepo, lockRepo, sessionStore, prober, transactor, timelock, log)
	lockSvc := service.NewLockService(walletRepo, guardianRepo, lockRepo, transactor, timelock, log)
	recoverySvc := service.NewRecoveryService(walletRepo, guardianRepo, lockRepo, recoveryRepo, transactor, timelock, log)
	dappSvc := service.NewDappService(registryRepo, moduleRepo, globalOwner, log)
	relaySvc := service.NewRelayService(
		sigSvc, guardianSvc, recoverySvc, lockSvc, dappSvc, auditSvc, executor,
		walletRepo, guardianRepo, recoveryRepo, whitelistRepo, moduleRepo,
		sessionStore, replayGuard,
		service.RelayParams{BaseGas: cfg.Relay.BaseGas, GasPerCall: cfg.Relay.GasPerCall},
		timelock, log,
	)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		RelaySvc:       relaySvc,
		GuardianSvc:    guardianSvc,
		RecoverySvc:    recoverySvc,
		LockSvc:        lockSvc,
		DappSvc:        dappSvc,
		WalletRepo:     walletRepo,
		SigSvc:         sigSvc,
		ReplayGuard:    replayGuard,
		TokenSvc:       tokenSvc,
		GlobalOwner:    globalOwner,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		AuditSvc:       auditSvc,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
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
