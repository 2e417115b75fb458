package services_test

import (
	"context"
	"testing"

	"github.com/DanielPopoola/mollie-acquirer/internal/application/mocks"
	"github.com/DanielPopoola/mollie-acquirer/internal/application/services"
	"github.com/DanielPopoola/mollie-acquirer/internal/application/services/testhelpers"
	"github.com/DanielPopoola/mollie-acquirer/internal/domain"
	"github.com/DanielPopoola/mollie-acquirer/internal/infrastructure/persistence/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// IntegrationTestSuite runs the services against postgres with a mocked
// gateway.
type IntegrationTestSuite struct {
	suite.Suite
	testDB       *testhelpers.TestDatabase
	methods      *postgres.MethodRepository
	issuers      *postgres.IssuerRepository
	icons        *postgres.IconStore
	transactions *postgres.TransactionRepository
	documents    *postgres.DocumentRepository
	gateway      *mocks.MockGatewayClient
	images       *mocks.MockImageFetcher
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationTestSuite))
}

func (suite *IntegrationTestSuite) SetupSuite() {
	suite.testDB = testhelpers.SetupTestDatabase(suite.T())
	db := suite.testDB.DB
	suite.methods = postgres.NewMethodRepository(db)
	suite.issuers = postgres.NewIssuerRepository(db)
	suite.icons = postgres.NewIconStore(db)
	suite.transactions = postgres.NewTransactionRepository(db)
	suite.documents = postgres.NewDocumentRepository(db)
}

func (suite *IntegrationTestSuite) TearDownSuite() {
	suite.testDB.Cleanup(suite.T())
}

func (suite *IntegrationTestSuite) SetupTest() {
	suite.testDB.CleanTables(suite.T())
	suite.gateway = mocks.NewMockGatewayClient(suite.T())
	suite.images = mocks.NewMockImageFetcher(suite.T())
}

func (suite *IntegrationTestSuite) checkout() *services.CheckoutService {
	urls := newURLBuilder(suite.T(), "https://shop.example.com")
	return services.NewCheckoutService(
		suite.transactions,
		suite.documents,
		suite.methods,
		suite.gateway,
		services.NewPayloadBuilder(urls),
		urls,
		suite.testDB.DB,
		discardLogger(),
	)
}

func (suite *IntegrationTestSuite) sync() *services.MethodSyncService {
	return services.NewMethodSyncService(
		suite.gateway,
		suite.methods,
		suite.issuers,
		suite.icons,
		suite.images,
		suite.testDB.DB,
		discardLogger(),
	)
}

// ============================================================================
// CHECKOUT
// ============================================================================

func (suite *IntegrationTestSuite) Test_Checkout_PaidOrderIsPersisted() {
	ctx := context.Background()
	t := suite.T()

	order := testhelpers.DefaultSaleOrder()
	suite.testDB.SeedSaleOrder(t, order)
	tx := testhelpers.NewTransaction(order)
	suite.testDB.SeedTransaction(t, tx)

	suite.gateway.EXPECT().CreateOrder(mock.Anything, mock.Anything).
		Return(checkoutResponse("ord_kEn1PlbGa", services.StatusPaid), nil).Once()

	values, err := suite.checkout().GenerateCheckoutValues(ctx, services.CheckoutCommand{Reference: tx.Reference})

	require.NoError(t, err)
	assert.Equal(t, services.StatusPaid, values.Status)
	assert.Empty(t, values.CheckoutURL)

	stored, err := suite.transactions.FindByReference(ctx, tx.Reference)
	require.NoError(t, err)
	assert.Equal(t, "ord_kEn1PlbGa", stored.AcquirerReference)
	assert.Equal(t, domain.StateDone, stored.State)
}

func (suite *IntegrationTestSuite) Test_Checkout_FallbackToPaymentsAPI() {
	ctx := context.Background()
	t := suite.T()

	invoice := testhelpers.DefaultInvoice()
	suite.testDB.SeedInvoice(t, invoice)
	tx := testhelpers.NewTransaction(invoice)
	suite.testDB.SeedTransaction(t, tx)
	require.NoError(t, suite.methods.Create(ctx, testhelpers.NewMethod("ideal", true)))

	suite.gateway.EXPECT().CreateOrder(mock.Anything, mock.Anything).
		Return(nil, testhelpers.RejectionError("Order lines do not add up")).Once()
	suite.gateway.EXPECT().CreatePayment(mock.Anything, mock.Anything).
		Return(checkoutResponse("tr_WDqYK6vllg", "open"), nil).Once()

	values, err := suite.checkout().GenerateCheckoutValues(ctx, services.CheckoutCommand{Reference: tx.Reference})

	require.NoError(t, err)
	assert.Empty(t, values.ErrorMessage)
	assert.Contains(t, values.CheckoutURL, "tr_WDqYK6vllg")

	stored, err := suite.transactions.FindByReference(ctx, tx.Reference)
	require.NoError(t, err)
	assert.Equal(t, "tr_WDqYK6vllg", stored.AcquirerReference)
	assert.Equal(t, domain.StateDraft, stored.State)
}

func (suite *IntegrationTestSuite) Test_Checkout_RejectionLeavesTransactionUntouched() {
	ctx := context.Background()
	t := suite.T()

	order := testhelpers.DefaultSaleOrder()
	suite.testDB.SeedSaleOrder(t, order)
	tx := testhelpers.NewTransaction(order)
	suite.testDB.SeedTransaction(t, tx)
	require.NoError(t, suite.methods.Create(ctx, testhelpers.NewMethod("ideal", false)))

	suite.gateway.EXPECT().CreateOrder(mock.Anything, mock.Anything).
		Return(nil, testhelpers.RejectionError("The amount is higher than the maximum")).Once()

	values, err := suite.checkout().GenerateCheckoutValues(ctx, services.CheckoutCommand{Reference: tx.Reference})

	require.NoError(t, err)
	assert.Equal(t, "The amount is higher than the maximum", values.ErrorMessage)

	stored, err := suite.transactions.FindByReference(ctx, tx.Reference)
	require.NoError(t, err)
	assert.Empty(t, stored.AcquirerReference)
	assert.Equal(t, domain.StateDraft, stored.State)
}

// ============================================================================
// METHOD SYNC
// ============================================================================

func (suite *IntegrationTestSuite) Test_Sync_CreatesThenDeactivates() {
	ctx := context.Background()
	t := suite.T()
	png := []byte{0x89, 'P', 'N', 'G'}

	suite.images.EXPECT().Fetch(mock.Anything, mock.Anything).Return(png, nil)

	suite.gateway.EXPECT().ListMethods(mock.Anything, orderListing).Return(testhelpers.MethodList(
		testhelpers.MethodEntry("ideal", "iDEAL", "0.01", "50000.00",
			testhelpers.IssuerEntry("ideal_ABNANL2A", "ABN AMRO"),
			testhelpers.IssuerEntry("ideal_INGBNL2A", "ING"),
		),
	), nil).Once()
	suite.gateway.EXPECT().ListMethods(mock.Anything, paymentListing).Return(testhelpers.MethodList(
		testhelpers.MethodEntry("ideal", "iDEAL", "0.01", "50000.00"),
		testhelpers.MethodEntry("creditcard", "Credit card", "0.01", "10000.00"),
	), nil).Once()

	report, err := suite.sync().Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Created)

	ideal, err := suite.methods.FindByCode(ctx, "ideal")
	require.NoError(t, err)
	assert.Len(t, ideal.IssuerIDs, 2)
	assert.NotNil(t, ideal.IconID)
	assert.True(t, ideal.SupportsOrderAPI)
	assert.True(t, ideal.SupportsPaymentAPI)

	_, err = suite.issuers.FindByCode(ctx, "ideal_INGBNL2A")
	require.NoError(t, err)

	// Second run: creditcard disappears from the gateway.
	report, err = suite.sync().SyncMethods(ctx, map[string]domain.MethodDescriptor{
		"ideal": {Code: "ideal", Description: "iDEAL", SupportsOrderAPI: true},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Updated)
	assert.Equal(t, 1, report.Deactivated)
	assert.Zero(t, report.Created)

	all, err := suite.methods.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2, "methods are never deleted")

	card, err := suite.methods.FindByCode(ctx, "creditcard")
	require.NoError(t, err)
	assert.False(t, card.Active)
}
