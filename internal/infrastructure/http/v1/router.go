// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"invoicer/internal/domain/catalogs/client"
	"invoicer/internal/domain/catalogs/product"
	"invoicer/internal/domain/catalogs/serviceitem"
	"invoicer/internal/infrastructure/http/v1/dto"
	"invoicer/internal/infrastructure/http/v1/handlers"
	"invoicer/internal/infrastructure/http/v1/middleware"
	"invoicer/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	// Logger for request logging
	Logger *logger.Logger

	// GinMode is passed to gin.SetMode ("release", "debug", "test")
	GinMode string

	// JWTValidator for token validation
	JWTValidator middleware.JWTValidator

	// CookieName is the auth cookie read as a fallback to the Bearer header
	CookieName string

	// AuthRateLimiter throttles login/register; nil disables throttling
	AuthRateLimiter *middleware.RateLimiter

	// Idempotency store for mutating operations; nil disables replay
	Idempotency middleware.IdempotencyStore

	// Database backs the readiness probe; may be nil
	Database handlers.Database

	// Version reported by /health/ready
	Version string

	AuthService    handlers.AuthService
	InvoiceService handlers.InvoiceService
	ReportService  handlers.ReportService
	Clients        handlers.CatalogService[*client.Client]
	Products       handlers.CatalogService[*product.Product]
	Services       handlers.CatalogService[*serviceitem.ServiceItem]
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.NewNop()
	}

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	healthHandler := handlers.NewHealthHandler(cfg.Database, cfg.Version)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
	}

	base := handlers.NewBaseHandler()

	v1 := router.Group("/api/v1")
	{
		registerAuthRoutes(v1, base, cfg)

		protected := v1.Group("")
		protected.Use(middleware.Auth(cfg.JWTValidator, cfg.CookieName))
		protected.Use(middleware.Idempotency(cfg.Idempotency))

		registerInvoiceRoutes(protected, base, cfg)
		registerCatalogRoutes(protected, base, cfg)
		registerReportRoutes(protected, base, cfg)
	}

	return router
}

func registerAuthRoutes(rg *gin.RouterGroup, base *handlers.BaseHandler, cfg RouterConfig) {
	if cfg.AuthService == nil {
		return
	}

	authHandler := handlers.NewAuthHandler(base, cfg.AuthService, cfg.CookieName)

	publicAuth := rg.Group("/auth")
	publicAuth.Use(middleware.RateLimit(cfg.AuthRateLimiter))

	protectedAuth := rg.Group("/auth")
	protectedAuth.Use(middleware.Auth(cfg.JWTValidator, cfg.CookieName))

	authHandler.RegisterRoutes(publicAuth, protectedAuth)
}

func registerInvoiceRoutes(rg *gin.RouterGroup, base *handlers.BaseHandler, cfg RouterConfig) {
	if cfg.InvoiceService == nil {
		return
	}
	handlers.NewInvoiceHandler(base, cfg.InvoiceService).RegisterRoutes(rg.Group("/invoices"))
}

func registerCatalogRoutes(rg *gin.RouterGroup, base *handlers.BaseHandler, cfg RouterConfig) {
	if cfg.Clients != nil {
		handlers.NewCatalogHandler(base, handlers.CatalogHandlerConfig[*client.Client, dto.ClientRequest, dto.ClientResponse]{
			Service: cfg.Clients,
			Apply:   dto.ApplyClient,
			ToDTO:   dto.FromClient,
		}).RegisterRoutes(rg.Group("/clients"))
	}
	if cfg.Products != nil {
		handlers.NewCatalogHandler(base, handlers.CatalogHandlerConfig[*product.Product, dto.ProductRequest, dto.ProductResponse]{
			Service: cfg.Products,
			Apply:   dto.ApplyProduct,
			ToDTO:   dto.FromProduct,
		}).RegisterRoutes(rg.Group("/products"))
	}
	if cfg.Services != nil {
		handlers.NewCatalogHandler(base, handlers.CatalogHandlerConfig[*serviceitem.ServiceItem, dto.ServiceRequest, dto.ServiceResponse]{
			Service: cfg.Services,
			Apply:   dto.ApplyService,
			ToDTO:   dto.FromService,
		}).RegisterRoutes(rg.Group("/services"))
	}
}

func registerReportRoutes(rg *gin.RouterGroup, base *handlers.BaseHandler, cfg RouterConfig) {
	if cfg.ReportService == nil {
		return
	}
	reportHandler := handlers.NewReportHandler(base, cfg.ReportService)
	rg.Group("/reports").GET("/summary", reportHandler.Summary)
}
