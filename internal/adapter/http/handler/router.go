package handler

import (
	"smart-wallet-core/internal/adapter/http/middleware"
	redisStore "smart-wallet-core/internal/adapter/storage/redis"
	"smart-wallet-core/internal/core/domain"
	"smart-wallet-core/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	RelaySvc       ports.RelayService
	GuardianSvc    ports.GuardianService
	RecoverySvc    ports.RecoveryService
	LockSvc        ports.LockService
	DappSvc        ports.DappService
	WalletRepo     ports.WalletRepository
	SigSvc         ports.SignatureService
	ReplayGuard    ports.ReplayGuard
	TokenSvc       ports.TokenService
	GlobalOwner    domain.Address
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService // nil = audit logging disabled
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Relay (signatures live inside the payload, no transport auth) ---
	relayHandler := NewRelayHandler(deps.RelaySvc)
	v1.POST("/relay", rl("relay"), relayHandler.Submit)

	// --- Public queries ---
	walletHandler := NewWalletHandler(deps.WalletRepo, deps.GuardianSvc, deps.LockSvc, deps.RecoverySvc)
	wallets := v1.Group("/wallets")
	{
		wallets.GET("/:address", rl("queries"), walletHandler.Get)
		wallets.GET("/:address/guardians", rl("queries"), walletHandler.Guardians)
		wallets.GET("/:address/lock", rl("queries"), walletHandler.Lock)
		wallets.GET("/:address/recovery", rl("queries"), walletHandler.Recovery)
	}

	// --- Signer-authenticated routes (direct wallet management) ---
	signerAuth := middleware.SignerAuth(deps.SigSvc, deps.ReplayGuard, deps.Logger)
	guardianHandler := NewGuardianHandler(deps.GuardianSvc)
	securityHandler := NewSecurityHandler(deps.LockSvc, deps.RecoverySvc)

	signed := v1.Group("/wallets", signerAuth)
	{
		signed.POST("", rl("wallet_mgmt"), walletHandler.Create)
		signed.POST("/:address/guardians", rl("wallet_mgmt"), guardianHandler.RequestAddition)
		signed.DELETE("/:address/guardians/:guardian", rl("wallet_mgmt"), guardianHandler.RequestRevocation)
		signed.POST("/:address/guardians/:guardian/confirm-addition", rl("wallet_mgmt"), guardianHandler.ConfirmAddition)
		signed.POST("/:address/guardians/:guardian/confirm-revocation", rl("wallet_mgmt"), guardianHandler.ConfirmRevocation)
		signed.POST("/:address/guardians/:guardian/cancel-addition", rl("wallet_mgmt"), guardianHandler.CancelAddition)
		signed.POST("/:address/guardians/:guardian/cancel-revocation", rl("wallet_mgmt"), guardianHandler.CancelRevocation)
		signed.POST("/:address/lock", rl("wallet_mgmt"), securityHandler.Lock)
		signed.POST("/:address/unlock", rl("wallet_mgmt"), securityHandler.Unlock)
		signed.POST("/:address/recovery/finalize", rl("wallet_mgmt"), securityHandler.FinalizeRecovery)
	}

	// --- Registry administration (global owner) ---
	adminHandler := NewAdminHandler(deps.DappSvc, deps.TokenSvc, deps.GlobalOwner)
	v1.POST("/admin/token", signerAuth, rl("admin_token"), adminHandler.Token)

	jwtAuth := middleware.AdminJWTAuth(deps.TokenSvc, deps.Logger)
	admin := v1.Group("/admin", jwtAuth)
	{
		admin.POST("/registries", rl("admin"), adminHandler.CreateRegistry)
		admin.DELETE("/registries/:id", rl("admin"), adminHandler.RemoveRegistry)
		admin.POST("/registries/:id/authorisations", rl("admin"), adminHandler.AddAuthorisation)
	}

	return r
}
