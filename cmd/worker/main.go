// Package main is the entry point for the invoicer maintenance worker.
// It expires idempotency keys and reports pool usage.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"invoicer/internal/app"
	"invoicer/internal/config"
	"invoicer/internal/infrastructure/storage/postgres"
	"invoicer/pkg/logger"
)

const (
	cleanupInterval = time.Hour
	statsInterval   = 5 * time.Minute
)

func main() {
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

	ctx, cancel := context.WithCancel(logger.WithLogger(context.Background(), log))
	defer cancel()

	log.Info("starting invoicer worker")

	pool, err := app.OpenPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	worker := NewWorker(pool, postgres.NewIdempotencyStore(postgres.NewTxManager(pool), app.IdempotencyTTL), log)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		worker.Run(ctx)
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	cancel()

	wg.Wait()
	log.Info("worker stopped")
}

// Worker runs periodic maintenance jobs.
type Worker struct {
	pool        *postgres.Pool
	idempotency *postgres.IdempotencyStore
	log         *logger.Logger
}

// NewWorker creates a maintenance worker.
func NewWorker(pool *postgres.Pool, idempotency *postgres.IdempotencyStore, log *logger.Logger) *Worker {
	return &Worker{
		pool:        pool,
		idempotency: idempotency,
		log:         log.WithComponent("worker"),
	}
}

// Run blocks until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) {
	cleanupTicker := time.NewTicker(cleanupInterval)
	defer cleanupTicker.Stop()

	statsTicker := time.NewTicker(statsInterval)
	defer statsTicker.Stop()

	w.cleanupIdempotency(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-cleanupTicker.C:
			w.cleanupIdempotency(ctx)
		case <-statsTicker.C:
			w.pool.LogStats(ctx)
		}
	}
}

func (w *Worker) cleanupIdempotency(ctx context.Context) {
	n, err := w.idempotency.CleanupExpired(ctx)
	if err != nil {
		w.log.Errorw("idempotency cleanup failed", "error", err)
		return
	}
	if n > 0 {
		w.log.Infow("expired idempotency keys removed", "count", n)
	}
}
