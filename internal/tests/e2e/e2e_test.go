package e2e

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/DanielPopoola/mollie-acquirer/internal/api"
	"github.com/DanielPopoola/mollie-acquirer/internal/application/services"
	"github.com/DanielPopoola/mollie-acquirer/internal/application/services/testhelpers"
	"github.com/DanielPopoola/mollie-acquirer/internal/config"
	"github.com/DanielPopoola/mollie-acquirer/internal/domain"
	"github.com/DanielPopoola/mollie-acquirer/internal/infrastructure/mollie"
	"github.com/DanielPopoola/mollie-acquirer/internal/infrastructure/persistence/postgres"
	"github.com/DanielPopoola/mollie-acquirer/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/mollie-acquirer/internal/interfaces/rest/middleware"
)

// E2ETestSuite drives the HTTP stack against postgres and a fake Mollie.
// The rate limiter is left out: its sync tier would throttle the suite.
type E2ETestSuite struct {
	suite.Suite
	testDB       *testhelpers.TestDatabase
	mollie       *FakeMollie
	server       *httptest.Server
	client       *TestClient
	transactions *postgres.TransactionRepository
}

func TestE2ESuite(t *testing.T) {
	suite.Run(t, new(E2ETestSuite))
}

func (suite *E2ETestSuite) SetupSuite() {
	t := suite.T()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	suite.testDB = testhelpers.SetupTestDatabase(t)
	db := suite.testDB.DB
	suite.mollie = NewFakeMollie()

	mollieClient, err := mollie.NewClient(config.MollieConfig{
		Environment:    "test",
		APIKeyTest:     "test_dHar4XY7LxsDOtmnkVtjNVWXLSlXsM",
		BaseURL:        suite.mollie.URL(),
		ConnTimeout:    5 * time.Second,
		IntegrationVer: "1.0",
	})
	require.NoError(t, err)
	gateway := mollie.NewRetryClient(mollieClient, config.RetryConfig{BaseDelay: time.Millisecond, MaxRetries: 2})

	urls, err := services.NewURLBuilder(config.ShopConfig{
		BaseURL:      "https://shop.example.com",
		RedirectPath: "/payment/mollie/redirect",
		WebhookPath:  "/payment/mollie/webhook",
	})
	require.NoError(t, err)

	methods := postgres.NewMethodRepository(db)
	suite.transactions = postgres.NewTransactionRepository(db)
	documents := postgres.NewDocumentRepository(db)

	h := handlers.NewHandlers(
		services.NewCheckoutService(suite.transactions, documents, methods, gateway, services.NewPayloadBuilder(urls), urls, db, logger),
		services.NewMethodSyncService(gateway, methods, postgres.NewIssuerRepository(db), postgres.NewIconStore(db),
			mollie.NewImageFetcher(5*time.Second), db, logger),
		services.NewMethodQueryService(methods, suite.transactions, documents),
		services.NewStatusService(suite.transactions, gateway, logger),
		logger,
	)

	doc, err := api.LoadSpec(context.Background())
	require.NoError(t, err)
	validate, err := middleware.RequestValidator(doc)
	require.NoError(t, err)

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	handler := validate(mux)
	handler = middleware.Timeout(10 * time.Second)(handler)
	handler = middleware.Recovery(logger)(handler)
	handler = middleware.Logging(logger)(handler)

	suite.server = httptest.NewServer(handler)
	suite.client = NewTestClient(suite.server.URL)
}

func (suite *E2ETestSuite) TearDownSuite() {
	suite.server.Close()
	suite.mollie.Close()
	suite.testDB.Cleanup(suite.T())
}

func (suite *E2ETestSuite) SetupTest() {
	suite.testDB.CleanTables(suite.T())
	suite.mollie.RejectOrders(false)
}

func (suite *E2ETestSuite) seedOrderTransaction() *domain.Transaction {
	order := testhelpers.DefaultSaleOrder()
	suite.testDB.SeedSaleOrder(suite.T(), order)
	tx := testhelpers.NewTransaction(order)
	suite.testDB.SeedTransaction(suite.T(), tx)
	return tx
}

// ============================================================================
// CATALOG
// ============================================================================

func (suite *E2ETestSuite) TestSyncThenList() {
	t := suite.T()

	report, status, _ := suite.client.Sync(t)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 2, report.Created)
	assert.False(t, report.Skipped)

	methods, status, _ := suite.client.ListMethods(t, "")
	require.Equal(t, http.StatusOK, status)
	require.Len(t, methods, 2)
	assert.Equal(t, "creditcard", methods[0].Code)
	assert.False(t, methods[0].SupportsOrderAPI)
	assert.Equal(t, "ideal", methods[1].Code)
	assert.True(t, methods[1].SupportsOrderAPI)
	assert.True(t, methods[1].SupportsPaymentAPI)
	assert.Equal(t, 1, methods[1].IssuerCount)

	methods, _, _ = suite.client.ListMethods(t, "139.15")
	require.Len(t, methods, 1)
	assert.Equal(t, "ideal", methods[0].Code)

	report, _, _ = suite.client.Sync(t)
	assert.Equal(t, 0, report.Created)
	assert.Equal(t, 2, report.Updated)
}

func (suite *E2ETestSuite) TestShopVisibilityHidesMethod() {
	t := suite.T()
	_, _, _ = suite.client.Sync(t)

	updated, status, _ := suite.client.SetShopVisibility(t, "creditcard", false)
	require.Equal(t, http.StatusOK, status)
	assert.False(t, updated.ActiveOnShop)

	methods, _, _ := suite.client.ListMethods(t, "")
	require.Len(t, methods, 1)
	assert.Equal(t, "ideal", methods[0].Code)

	_, status, code := suite.client.SetShopVisibility(t, "paypal", true)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", code)
}

func (suite *E2ETestSuite) TestListMethods_RejectsMalformedAmount() {
	_, status, code := suite.client.ListMethods(suite.T(), "ten euro")

	assert.Equal(suite.T(), http.StatusBadRequest, status)
	assert.Equal(suite.T(), "INVALID_INPUT", code)
}

// ============================================================================
// CHECKOUT
// ============================================================================

func (suite *E2ETestSuite) TestCheckout_OrdersAPI() {
	t := suite.T()
	tx := suite.seedOrderTransaction()

	values, status, _ := suite.client.Checkout(t, tx.Reference, "nl_NL")

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "https://www.mollie.com/checkout/order/ord_e2e1", values.CheckoutURL)
	assert.Equal(t, "created", values.Status)
	assert.Empty(t, values.ErrorMessage)

	orders := suite.mollie.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, "nl_NL", orders[0]["locale"])
	assert.Equal(t, map[string]any{"currency": "EUR", "value": "139.15"}, orders[0]["amount"])

	stored, err := suite.transactions.FindByReference(context.Background(), tx.Reference)
	require.NoError(t, err)
	assert.Equal(t, "ord_e2e1", stored.AcquirerReference)

	methods, status, _ := suite.client.TransactionMethods(t, tx.Reference)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, methods)

	gw, status, _ := suite.client.Status(t, tx.Reference)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "order", gw.Resource)
	assert.Equal(t, "paid", gw.Status)
	require.Len(t, gw.Payments, 1)
	assert.Equal(t, "tr_paid1", gw.Payments[0].ID)
}

func (suite *E2ETestSuite) TestCheckout_FallsBackToPaymentsAPI() {
	t := suite.T()
	_, _, _ = suite.client.Sync(t)
	tx := suite.seedOrderTransaction()
	suite.mollie.RejectOrders(true)

	values, status, _ := suite.client.Checkout(t, tx.Reference, "")

	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, values.ErrorMessage)
	assert.Equal(t, "https://www.mollie.com/checkout/select-issuer/tr_e2e1", values.CheckoutURL)

	payments := suite.mollie.Payments()
	require.Len(t, payments, 1)
	assert.Equal(t, "en_US", payments[0]["locale"])
	assert.Equal(t, "ideal", payments[0]["method"])

	stored, err := suite.transactions.FindByReference(context.Background(), tx.Reference)
	require.NoError(t, err)
	assert.Equal(t, "tr_e2e1", stored.AcquirerReference)
}

func (suite *E2ETestSuite) TestCheckout_RejectionWithoutFallback() {
	t := suite.T()
	tx := suite.seedOrderTransaction()
	suite.mollie.RejectOrders(true)

	values, status, _ := suite.client.Checkout(t, tx.Reference, "")

	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, values.ErrorMessage, "do not add up")
	assert.Empty(t, suite.mollie.Payments())

	stored, err := suite.transactions.FindByReference(context.Background(), tx.Reference)
	require.NoError(t, err)
	assert.Empty(t, stored.AcquirerReference)
}

func (suite *E2ETestSuite) TestCheckout_UnknownReference() {
	_, status, code := suite.client.Checkout(suite.T(), "TX-missing", "")

	assert.Equal(suite.T(), http.StatusNotFound, status)
	assert.Equal(suite.T(), "NOT_FOUND", code)
}

func (suite *E2ETestSuite) TestStatus_WithoutAcquirerReference() {
	tx := suite.seedOrderTransaction()

	_, status, _ := suite.client.Status(suite.T(), tx.Reference)

	assert.Equal(suite.T(), http.StatusConflict, status)
}
