package mollie_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/DanielPopoola/mollie-acquirer/internal/application"
	"github.com/DanielPopoola/mollie-acquirer/internal/application/mocks"
	"github.com/DanielPopoola/mollie-acquirer/internal/config"
	"github.com/DanielPopoola/mollie-acquirer/internal/infrastructure/mollie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRetryClient(t *testing.T) (*mocks.MockGatewayClient, application.GatewayClient) {
	mockClient := mocks.NewMockGatewayClient(t)
	return mockClient, mollie.NewRetryClient(mockClient, config.RetryConfig{
		BaseDelay:  time.Millisecond,
		MaxRetries: 3,
	})
}

func TestRetryClient_GetPayment_RetriesOn5xx(t *testing.T) {
	mockClient, retryClient := newRetryClient(t)

	expected := &application.GatewayResponse{ID: "tr_WDqYK6vllg", Status: "paid"}

	mockClient.EXPECT().
		GetPayment(mock.Anything, "tr_WDqYK6vllg").
		Return(nil, &application.GatewayError{StatusCode: http.StatusServiceUnavailable}).
		Twice()

	mockClient.EXPECT().
		GetPayment(mock.Anything, "tr_WDqYK6vllg").
		Return(expected, nil).
		Once()

	resp, err := retryClient.GetPayment(context.Background(), "tr_WDqYK6vllg")

	require.NoError(t, err)
	assert.Equal(t, expected, resp)
}

func TestRetryClient_ListMethods_RetriesOnRateLimit(t *testing.T) {
	mockClient, retryClient := newRetryClient(t)

	list := &application.MethodList{Count: 0}

	mockClient.EXPECT().
		ListMethods(mock.Anything, application.MethodListParams{}).
		Return(nil, &application.GatewayError{StatusCode: http.StatusTooManyRequests}).
		Once()

	mockClient.EXPECT().
		ListMethods(mock.Anything, application.MethodListParams{}).
		Return(list, nil).
		Once()

	resp, err := retryClient.ListMethods(context.Background(), application.MethodListParams{})

	require.NoError(t, err)
	assert.Equal(t, list, resp)
}

func TestRetryClient_DoesNotRetryOn4xx(t *testing.T) {
	mockClient, retryClient := newRetryClient(t)

	notFound := &application.GatewayError{StatusCode: http.StatusNotFound, Title: "Not Found"}

	mockClient.EXPECT().
		GetOrder(mock.Anything, "ord_unknown").
		Return(nil, notFound).
		Once()

	resp, err := retryClient.GetOrder(context.Background(), "ord_unknown")

	require.Error(t, err)
	assert.Nil(t, resp)
	gwErr, ok := application.IsGatewayError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, gwErr.StatusCode)
}

func TestRetryClient_ExhaustsRetries(t *testing.T) {
	mockClient, retryClient := newRetryClient(t)

	mockClient.EXPECT().
		GetPayment(mock.Anything, "tr_WDqYK6vllg").
		Return(nil, errors.New("connection reset by peer")).
		Times(3)

	resp, err := retryClient.GetPayment(context.Background(), "tr_WDqYK6vllg")

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "maximum retries exceeded")
}

func TestRetryClient_CreateCallsAreNotRetried(t *testing.T) {
	mockClient, retryClient := newRetryClient(t)

	mockClient.EXPECT().
		CreateOrder(mock.Anything, mock.Anything).
		Return(nil, &application.GatewayError{StatusCode: http.StatusInternalServerError}).
		Once()
	mockClient.EXPECT().
		CreatePayment(mock.Anything, mock.Anything).
		Return(nil, &application.GatewayError{StatusCode: http.StatusInternalServerError}).
		Once()

	_, err := retryClient.CreateOrder(context.Background(), application.OrderRequest{Method: "ideal"})
	assert.Error(t, err)

	_, err = retryClient.CreatePayment(context.Background(), application.PaymentRequest{Method: "ideal"})
	assert.Error(t, err)
}

func TestRetryClient_StopsOnCancelledContext(t *testing.T) {
	_, retryClient := newRetryClient(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := retryClient.GetPayment(ctx, "tr_WDqYK6vllg")

	assert.ErrorIs(t, err, context.Canceled)
}
