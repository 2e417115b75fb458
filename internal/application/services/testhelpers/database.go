package testhelpers

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/DanielPopoola/mollie-acquirer/internal/config"
	"github.com/DanielPopoola/mollie-acquirer/internal/domain"
	"github.com/DanielPopoola/mollie-acquirer/internal/infrastructure/persistence/postgres"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type TestDatabase struct {
	Container testcontainers.Container
	DB        *postgres.DB
	Config    *config.DatabaseConfig
}

// SetupTestDatabase starts postgres in a container and applies the schema.
// Skipped under -short.
func SetupTestDatabase(t *testing.T) *TestDatabase {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dbConfig := &config.DatabaseConfig{
		Host:            host,
		Port:            port.Int(),
		User:            "testuser",
		Password:        "testpass",
		Name:            "testdb",
		SSLMode:         "disable",
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 1 * time.Hour,
		ConnMaxIdleTime: 30 * time.Minute,
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))

	db, err := postgres.Connect(ctx, dbConfig, logger)
	require.NoError(t, err)

	err = runMigrations(ctx, db)
	require.NoError(t, err)

	return &TestDatabase{
		Container: container,
		DB:        db,
		Config:    dbConfig,
	}
}

func (td *TestDatabase) Cleanup(t *testing.T) {
	ctx := context.Background()
	td.DB.Close()
	require.NoError(t, td.Container.Terminate(ctx))
}

func (td *TestDatabase) CleanTables(t *testing.T) {
	ctx := context.Background()

	_, err := td.DB.Pool.Exec(ctx, `TRUNCATE TABLE
		payment_transactions, sale_order_lines, sale_orders, invoice_lines, invoices,
		products, partners, payment_method_issuers, payment_methods, issuers, icons
		RESTART IDENTITY CASCADE;`)
	require.NoError(t, err)
}

// SeedSaleOrder stores the order with its partner, lines and products.
func (td *TestDatabase) SeedSaleOrder(t *testing.T, order *domain.SaleOrder) {
	ctx := context.Background()
	partnerID := td.seedPartner(t, order.Partner)

	_, err := td.DB.Pool.Exec(ctx,
		`INSERT INTO sale_orders (id, name, partner_id, currency, amount_total) VALUES ($1, $2, $3, $4, $5)`,
		order.ID, order.Name, partnerID, order.Currency, order.AmountTotal.String(),
	)
	require.NoError(t, err)

	for i, l := range order.Lines {
		_, err := td.DB.Pool.Exec(ctx, `
			INSERT INTO sale_order_lines (
				id, sale_order_id, sequence, description, product_id, display_type, quantity,
				price_reduce_taxinc, price_total, price_tax, tax_rates, is_delivery, currency
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11::text[]::numeric[], $12, $13)`,
			uuid.New(), order.ID, i+1, l.Description, td.seedProduct(t, l.Product), l.DisplayType,
			l.Quantity.String(), l.PriceReduceTaxInc.String(), l.PriceTotal.String(), l.PriceTax.String(),
			decimalStrings(l.TaxRates), l.IsDelivery, lineCurrency(l.Currency, order.Currency),
		)
		require.NoError(t, err)
	}
}

func (td *TestDatabase) SeedInvoice(t *testing.T, invoice *domain.Invoice) {
	ctx := context.Background()
	partnerID := td.seedPartner(t, invoice.Partner)

	_, err := td.DB.Pool.Exec(ctx,
		`INSERT INTO invoices (id, name, partner_id, currency, residual) VALUES ($1, $2, $3, $4, $5)`,
		invoice.ID, invoice.Name, partnerID, invoice.Currency, invoice.Residual.String(),
	)
	require.NoError(t, err)

	for i, l := range invoice.Lines {
		_, err := td.DB.Pool.Exec(ctx, `
			INSERT INTO invoice_lines (
				id, invoice_id, sequence, description, product_id, display_type, quantity,
				price_total, price_subtotal, tax_rates, currency
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10::text[]::numeric[], $11)`,
			uuid.New(), invoice.ID, i+1, l.Description, td.seedProduct(t, l.Product), l.DisplayType,
			l.Quantity.String(), l.PriceTotal.String(), l.PriceSubtotal.String(),
			decimalStrings(l.TaxRates), lineCurrency(l.Currency, invoice.Currency),
		)
		require.NoError(t, err)
	}
}

// SeedTransaction stores tx and links it to its document, if any.
func (td *TestDatabase) SeedTransaction(t *testing.T, tx *domain.Transaction) {
	var saleOrderID, invoiceID *uuid.UUID
	if tx.Document != nil {
		id := tx.Document.ID
		switch tx.Document.Kind {
		case domain.KindSaleOrder:
			saleOrderID = &id
		case domain.KindInvoice:
			invoiceID = &id
		}
	}

	_, err := td.DB.Pool.Exec(context.Background(), `
		INSERT INTO payment_transactions (
			id, reference, amount, currency, method_code, card_token, issuer_code,
			acquirer_reference, state, sale_order_id, invoice_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		tx.ID, tx.Reference, tx.Amount.String(), tx.Currency, tx.MethodCode, tx.CardToken,
		tx.IssuerCode, tx.AcquirerReference, string(tx.State), saleOrderID, invoiceID,
	)
	require.NoError(t, err)
}

func (td *TestDatabase) seedPartner(t *testing.T, p domain.Partner) uuid.UUID {
	id := uuid.New()
	_, err := td.DB.Pool.Exec(context.Background(), `
		INSERT INTO partners (id, name, email, phone, street, street2, zip, city, state, country_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		id, p.Name, p.Email, p.Phone, p.Street, p.Street2, p.Zip, p.City, p.State, p.CountryCode,
	)
	require.NoError(t, err)
	return id
}

func (td *TestDatabase) seedProduct(t *testing.T, p *domain.Product) *uuid.UUID {
	if p == nil {
		return nil
	}
	_, err := td.DB.Pool.Exec(context.Background(), `
		INSERT INTO products (id, name, type, website_url) VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING`,
		p.ID, p.Name, string(p.Type), p.WebsiteURL,
	)
	require.NoError(t, err)
	id := p.ID
	return &id
}

func getProjectRoot() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "..", "..", "..", "..")
}

func runMigrations(ctx context.Context, db *postgres.DB) error {
	root := getProjectRoot()
	migrationPath := filepath.Join(root, "db", "migrations", "001_init.up.sql")

	migrationSQL, err := os.ReadFile(migrationPath) //nolint:gosec // test helper, controlled path
	if err != nil {
		return fmt.Errorf("read migration file from %s: %w", migrationPath, err)
	}

	_, err = db.Pool.Exec(ctx, string(migrationSQL))
	if err != nil {
		return fmt.Errorf("execute migration: %w", err)
	}

	return nil
}

func lineCurrency(line, doc string) string {
	if line == "" {
		return doc
	}
	return line
}

func decimalStrings(values []decimal.Decimal) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return out
}
