// Package main provides a CLI tool for seeding a demo account with sample
// clients, products, services and invoices.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"invoicer/internal/app"
	"invoicer/internal/config"
	"invoicer/internal/core/apperror"
	appctx "invoicer/internal/core/context"
	"invoicer/internal/core/entity"
	"invoicer/internal/core/types"
	"invoicer/internal/domain/auth"
	"invoicer/internal/domain/catalogs/client"
	"invoicer/internal/domain/catalogs/product"
	"invoicer/internal/domain/catalogs/serviceitem"
	"invoicer/internal/domain/invoice"
	"invoicer/pkg/logger"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("failed to load config", "error", err)
	}

	ctx := logger.WithLogger(context.Background(), log)

	pool, err := app.OpenPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	container, err := app.NewContainer(cfg, pool)
	if err != nil {
		log.Fatalw("failed to build services", "error", err)
	}

	email := getEnv("DEMO_EMAIL", "demo@invoicer.local")
	password := getEnv("DEMO_PASSWORD", "demo-password")

	user, created, err := seedDemoUser(ctx, container.Auth, email, password)
	if err != nil {
		log.Fatalw("failed to seed demo user", "error", err)
	}
	if !created {
		log.Infow("demo user already exists, skipping sample data", "email", email, "user_id", user.ID)
		return
	}

	ownerCtx := appctx.WithUser(ctx, &appctx.UserContext{UserID: user.ID, Email: user.Email, Name: user.Name})
	if err := seedDemoData(ownerCtx, container, log); err != nil {
		log.Fatalw("failed to seed demo data", "error", err)
	}

	log.Infow("seeding completed successfully", "email", email, "user_id", user.ID)
}

func seedDemoUser(ctx context.Context, svc *auth.Service, email, password string) (*auth.User, bool, error) {
	session, err := svc.Register(ctx, auth.RegisterRequest{Name: "Demo User", Email: email, Password: password})
	if err == nil {
		return session.User, true, nil
	}
	if !apperror.HasCode(err, apperror.CodeDuplicate) {
		return nil, false, fmt.Errorf("register: %w", err)
	}

	session, err = svc.Login(ctx, auth.Credentials{Email: email, Password: password})
	if err != nil {
		return nil, false, fmt.Errorf("login existing demo user: %w", err)
	}
	return session.User, false, nil
}

func seedDemoData(ctx context.Context, c *app.Container, log *logger.Logger) error {
	log.Info("seeding demo data...")

	clients := []*client.Client{
		{Resource: entity.Resource{Name: "Acme Corporation"}, Email: strPtr("billing@acme.example"), TaxID: strPtr("us-123456789")},
		{Resource: entity.Resource{Name: "Globex Ltd"}, Email: strPtr("accounts@globex.example"), Phone: strPtr("+44 20 7946 0000")},
		{Resource: entity.Resource{Name: "Müller & Söhne GmbH"}, Address: strPtr("Hauptstraße 5, Berlin")},
	}
	for _, cl := range clients {
		if _, err := c.Clients.Create(ctx, cl); err != nil {
			return fmt.Errorf("client %q: %w", cl.Name, err)
		}
	}

	products := []*product.Product{
		{Resource: entity.Resource{Name: "USB-C Dock"}, Price: types.MustMoney("129.90"), Category: strPtr("hardware")},
		{Resource: entity.Resource{Name: "Ergonomic Keyboard"}, Price: types.MustMoney("89.00"), Category: strPtr("hardware")},
	}
	for _, p := range products {
		if _, err := c.Products.Create(ctx, p); err != nil {
			return fmt.Errorf("product %q: %w", p.Name, err)
		}
	}

	services := []*serviceitem.ServiceItem{
		{Resource: entity.Resource{Name: "Consulting hour"}, Amount: types.MustMoney("150.00"), Category: strPtr("consulting")},
		{Resource: entity.Resource{Name: "Monthly support"}, Amount: types.MustMoney("499.00"), Category: strPtr("support")},
	}
	for _, s := range services {
		if _, err := c.Services.Create(ctx, s); err != nil {
			return fmt.Errorf("service %q: %w", s.Name, err)
		}
	}

	type invoiceSeed struct {
		client   string
		amount   string
		status   invoice.Status
		daysAgo  int
		dueAfter int
	}
	seeds := []invoiceSeed{
		{"Acme Corporation", "1500.00", invoice.StatusPaid, 60, 30},
		{"Globex Ltd", "499.00", invoice.StatusSent, 20, 30},
		{"Acme Corporation", "129.90", invoice.StatusOverdue, 45, 14},
		{"Müller & Söhne GmbH", "2400.00", invoice.StatusDraft, 2, 30},
	}

	today := time.Now().UTC()
	for _, s := range seeds {
		number, err := c.Invoices.NextNumber(ctx)
		if err != nil {
			return fmt.Errorf("next number: %w", err)
		}
		date := today.AddDate(0, 0, -s.daysAgo)
		due := date.AddDate(0, 0, s.dueAfter)
		amount := types.MustMoney(s.amount)

		invoiceID, err := c.Invoices.Create(ctx, invoice.CreateRequest{
			InvoiceNumber: number,
			Date:          &date,
			DueDate:       &due,
			ClientName:    s.client,
			Amount:        &amount,
			Description:   "Demo invoice for " + s.client,
			Status:        string(s.status),
		})
		if err != nil {
			return fmt.Errorf("invoice %s: %w", number, err)
		}
		log.Infow("demo invoice created", "invoice_id", invoiceID, "number", number, "status", s.status)
	}

	return nil
}

func strPtr(s string) *string {
	return &s
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
