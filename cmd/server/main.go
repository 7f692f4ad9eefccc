// Package main is the entry point for the invoicer API server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/klauspost/compress/gzhttp"

	"invoicer/internal/app"
	"invoicer/internal/config"
	v1 "invoicer/internal/infrastructure/http/v1"
	"invoicer/internal/infrastructure/http/v1/middleware"
	"invoicer/internal/infrastructure/storage/postgres"
	"invoicer/migrations"
	"invoicer/pkg/logger"
)

func main() {
	migrate := flag.Bool("migrate", false, "apply database migrations before serving")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Development: cfg.Log.Development,
		Encoding:    cfg.Log.Encoding,
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx := logger.WithLogger(context.Background(), log)
	log.Infow("starting invoicer server", "version", app.Version)

	if *migrate || cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, migrations.FS); err != nil {
			log.Fatalw("failed to apply migrations", "error", err)
		}
	}

	pool, err := app.OpenPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	container, err := app.NewContainer(cfg, pool)
	if err != nil {
		log.Fatalw("failed to build services", "error", err)
	}

	var limiter *middleware.RateLimiter
	if cfg.Auth.RateLimit > 0 {
		limiter = middleware.NewRateLimiter(cfg.Auth.RateLimit, cfg.Auth.RateBurst, middleware.DefaultVisitorTTL)
	}

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Logger:          log,
		GinMode:         cfg.Server.GinMode,
		JWTValidator:    container.JWT,
		CookieName:      cfg.Auth.CookieName,
		AuthRateLimiter: limiter,
		Idempotency:     container.Idempotency,
		Database:        pool,
		Version:         app.Version,
		AuthService:     container.Auth,
		InvoiceService:  container.Invoices,
		ReportService:   container.Reports,
		Clients:         container.Clients,
		Products:        container.Products,
		Services:        container.Services,
	})

	var handler http.Handler = router
	if cfg.Server.Compression {
		handler = gzhttp.GzipHandler(router)
	}

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Infow("server starting",
			"addr", server.Addr,
			"ownership_mode", cfg.Invoice.OwnershipMode,
			"sequence_backend", cfg.Invoice.SequenceBackend,
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
	}

	pool.LogStats(ctx)
	log.Info("server stopped")
}
