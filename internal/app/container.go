// Package app wires configuration, storage and domain services together.
package app

import (
	"context"
	"fmt"
	"time"

	"invoicer/internal/config"
	corenumerator "invoicer/internal/core/numerator"
	"invoicer/internal/core/security"
	"invoicer/internal/domain/auth"
	"invoicer/internal/domain/catalogs/client"
	"invoicer/internal/domain/catalogs/product"
	"invoicer/internal/domain/catalogs/serviceitem"
	"invoicer/internal/domain/invoice"
	"invoicer/internal/domain/reports"
	"invoicer/internal/infrastructure/numerator"
	"invoicer/internal/infrastructure/render"
	"invoicer/internal/infrastructure/storage/postgres"
	"invoicer/internal/infrastructure/storage/postgres/auth_repo"
	"invoicer/internal/infrastructure/storage/postgres/catalog_repo"
	"invoicer/internal/infrastructure/storage/postgres/invoice_repo"
	"invoicer/internal/infrastructure/storage/postgres/report_repo"
	pkgnumerator "invoicer/pkg/numerator"
)

// IdempotencyTTL is how long a completed create response stays replayable.
const IdempotencyTTL = 24 * time.Hour

// Container holds the long-lived services of one process.
type Container struct {
	Pool        *postgres.Pool
	TxManager   *postgres.TxManager
	Sequences   corenumerator.Store
	JWT         *auth.JWTService
	Auth        *auth.Service
	Invoices    *invoice.Service
	Reports     *reports.Service
	Clients     *client.Service
	Products    *product.Service
	Services    *serviceitem.Service
	Idempotency *postgres.IdempotencyStore
}

// NewContainer builds every service on top of pool.
func NewContainer(cfg *config.Config, pool *postgres.Pool) (*Container, error) {
	policy, err := security.PolicyForMode(cfg.Invoice.OwnershipMode)
	if err != nil {
		return nil, err
	}

	txm := postgres.NewTxManager(pool)
	sequences := newSequenceStore(cfg.Invoice.SequenceBackend, txm)
	format := pkgnumerator.Format{Prefix: cfg.Invoice.NumberPrefix, PadWidth: cfg.Invoice.NumberPad}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		Secret:         cfg.Auth.JWTSecret,
		Issuer:         cfg.Auth.JWTIssuer,
		AccessTokenTTL: cfg.Auth.AccessTokenTTL,
	})

	authService := auth.NewService(
		auth_repo.NewUserRepo(txm),
		sequences,
		txm,
		jwtService,
		auth.ServiceConfig{BcryptCost: cfg.Auth.BcryptCost},
	)

	invoiceService := invoice.NewService(invoice.ServiceConfig{
		Repo:         invoice_repo.NewInvoiceRepo(txm),
		Sequences:    sequences,
		Renderers:    []invoice.Renderer{render.NewPDF(render.DefaultPDFOptions()), render.NewCSV()},
		Policy:       policy,
		TxManager:    txm,
		NumberFormat: format,
	})

	return &Container{
		Pool:        pool,
		TxManager:   txm,
		Sequences:   sequences,
		JWT:         jwtService,
		Auth:        authService,
		Invoices:    invoiceService,
		Reports:     reports.NewService(report_repo.NewReportRepo(txm), sequences, format),
		Clients:     client.NewService(catalog_repo.NewClientRepo(txm), txm),
		Products:    product.NewService(catalog_repo.NewProductRepo(txm), txm),
		Services:    serviceitem.NewService(catalog_repo.NewServiceItemRepo(txm), txm),
		Idempotency: postgres.NewIdempotencyStore(txm, IdempotencyTTL),
	}, nil
}

// newSequenceStore picks the invoice sequence backend. The Postgres store
// resolves its querier per call so allocation joins an open transaction.
func newSequenceStore(backend string, txm *postgres.TxManager) corenumerator.Store {
	if backend == config.SequenceMemory {
		return numerator.NewMemory()
	}
	return numerator.NewPostgresWithResolver(func(ctx context.Context) numerator.Querier {
		return txm.GetQuerier(ctx)
	})
}

// OpenPool connects to PostgreSQL using the database section of cfg.
func OpenPool(ctx context.Context, cfg config.DatabaseConfig) (*postgres.Pool, error) {
	poolCfg := postgres.DefaultPoolConfig(cfg.DSN)
	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return pool, nil
}
