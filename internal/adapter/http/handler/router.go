package handler

import (
	"banking-ledger/internal/adapter/http/middleware"
	redisStore "banking-ledger/internal/adapter/storage/redis"
	"banking-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AccountSvc     ports.AccountService
	TransferSvc    ports.TransferService
	ReportingSvc   ports.ReportingService
	PolicySvc      ports.PolicyService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

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

	v1 := r.Group("/api/v1")

	accountHandler := NewAccountHandler(deps.AccountSvc, deps.ReportingSvc)
	accounts := v1.Group("/accounts")
	{
		accounts.POST("", rl("accounts_create"), accountHandler.Create)
		accounts.GET("/:id", rl("queries"), accountHandler.Get)
		accounts.POST("/:id/deposit", rl("mutations"), accountHandler.Deposit)
		accounts.POST("/:id/withdraw", rl("mutations"), accountHandler.Withdraw)
		accounts.GET("/:id/history", rl("queries"), accountHandler.History)
	}

	transferHandler := NewTransferHandler(deps.TransferSvc)
	v1.POST("/transfers", rl("transfers"), transferHandler.Transfer)

	policyHandler := NewPolicyHandler(deps.PolicySvc)
	v1.GET("/policies", rl("queries"), policyHandler.Search)

	return r
}
