package services_test

import (
	"context"
	"testing"

	"github.com/DanielPopoola/mollie-acquirer/internal/application"
	"github.com/DanielPopoola/mollie-acquirer/internal/application/mocks"
	"github.com/DanielPopoola/mollie-acquirer/internal/application/services"
	"github.com/DanielPopoola/mollie-acquirer/internal/application/services/testhelpers"
	"github.com/DanielPopoola/mollie-acquirer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGatewayStatus_Order(t *testing.T) {
	tx := testhelpers.NewTransaction(nil)
	tx.AcquirerReference = "ord_kEn1PlbGa"
	gateway := mocks.NewMockGatewayClient(t)
	svc := services.NewStatusService(testhelpers.NewMemoryTransactionRepository(tx), gateway, discardLogger())

	order := &application.GatewayResponse{Resource: "order", ID: "ord_kEn1PlbGa", Status: "paid"}
	order.Embedded.Payments = []application.GatewayResponse{{Resource: "payment", ID: "tr_ncaPcAhuUV", Status: "paid", Method: "ideal"}}
	gateway.EXPECT().GetOrder(mock.Anything, "ord_kEn1PlbGa").Return(order, nil).Once()

	status, err := svc.GatewayStatus(context.Background(), tx.Reference)

	require.NoError(t, err)
	assert.Equal(t, "order", status.Resource)
	assert.Equal(t, "paid", status.Status)
	require.Len(t, status.Payments, 1)
	assert.Equal(t, "tr_ncaPcAhuUV", status.Payments[0].ID)
}

func TestGatewayStatus_Payment(t *testing.T) {
	tx := testhelpers.NewTransaction(nil)
	tx.AcquirerReference = "tr_WDqYK6vllg"
	gateway := mocks.NewMockGatewayClient(t)
	svc := services.NewStatusService(testhelpers.NewMemoryTransactionRepository(tx), gateway, discardLogger())

	gateway.EXPECT().GetPayment(mock.Anything, "tr_WDqYK6vllg").
		Return(checkoutResponse("tr_WDqYK6vllg", "open"), nil).Once()

	status, err := svc.GatewayStatus(context.Background(), tx.Reference)

	require.NoError(t, err)
	assert.Equal(t, "open", status.Status)
	assert.NotEmpty(t, status.CheckoutURL)
}

func TestGatewayStatus_UnknownPrefix(t *testing.T) {
	tx := testhelpers.NewTransaction(nil)
	gateway := mocks.NewMockGatewayClient(t)
	svc := services.NewStatusService(testhelpers.NewMemoryTransactionRepository(tx), gateway, discardLogger())

	_, err := svc.GatewayStatus(context.Background(), tx.Reference)

	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeUnknownAcquirerReference))
}

func TestGatewayStatus_GatewayFailure(t *testing.T) {
	tx := testhelpers.NewTransaction(nil)
	tx.AcquirerReference = "tr_gone"
	gateway := mocks.NewMockGatewayClient(t)
	svc := services.NewStatusService(testhelpers.NewMemoryTransactionRepository(tx), gateway, discardLogger())

	gateway.EXPECT().GetPayment(mock.Anything, "tr_gone").
		Return(nil, &application.GatewayError{StatusCode: 404, Title: "Not Found", Detail: "No payment exists with token tr_gone."}).Once()

	_, err := svc.GatewayStatus(context.Background(), tx.Reference)

	require.Error(t, err)
	assert.Equal(t, application.ErrCodeGateway, application.ToErrorCode(err))
}
