package mollie

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/DanielPopoola/mollie-acquirer/internal/application"
	"github.com/DanielPopoola/mollie-acquirer/internal/config"
)

// RetryClient retries reads against Mollie. Order and payment creation
// pass straight through: a retried POST could open a second checkout.
type RetryClient struct {
	inner      application.GatewayClient
	baseDelay  time.Duration
	maxRetries int
}

func NewRetryClient(inner application.GatewayClient, cfg config.RetryConfig) application.GatewayClient {
	return &RetryClient{
		inner:      inner,
		baseDelay:  cfg.BaseDelay,
		maxRetries: cfg.MaxRetries,
	}
}

func (r *RetryClient) CreateOrder(ctx context.Context, req application.OrderRequest) (*application.GatewayResponse, error) {
	return r.inner.CreateOrder(ctx, req)
}

func (r *RetryClient) CreatePayment(ctx context.Context, req application.PaymentRequest) (*application.GatewayResponse, error) {
	return r.inner.CreatePayment(ctx, req)
}

func (r *RetryClient) GetOrder(ctx context.Context, id string) (*application.GatewayResponse, error) {
	return retry(r, ctx, func(ctx context.Context) (*application.GatewayResponse, error) {
		return r.inner.GetOrder(ctx, id)
	})
}

func (r *RetryClient) GetPayment(ctx context.Context, id string) (*application.GatewayResponse, error) {
	return retry(r, ctx, func(ctx context.Context) (*application.GatewayResponse, error) {
		return r.inner.GetPayment(ctx, id)
	})
}

func (r *RetryClient) ListMethods(ctx context.Context, params application.MethodListParams) (*application.MethodList, error) {
	return retry(r, ctx, func(ctx context.Context) (*application.MethodList, error) {
		return r.inner.ListMethods(ctx, params)
	})
}

func retry[T any](r *RetryClient, ctx context.Context, operation func(ctx context.Context) (*T, error)) (*T, error) {
	var lastErr error

	for attempt := 0; attempt < r.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		resp, err := operation(ctx)
		if err == nil {
			return resp, nil
		}

		lastErr = err

		if !isRetryable(err) {
			return nil, err
		}

		if attempt < r.maxRetries-1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(r.backoff(attempt)):
			}
		}
	}

	return nil, fmt.Errorf("maximum retries exceeded: %w", lastErr)
}

func isRetryable(err error) bool {
	var gwErr *application.GatewayError
	if errors.As(err, &gwErr) {
		return gwErr.StatusCode >= 500 || gwErr.StatusCode == http.StatusTooManyRequests
	}

	if errors.Is(err, context.Canceled) {
		return false
	}

	return true
}

// backoff doubles per attempt and adds up to a quarter of the base as jitter.
func (r *RetryClient) backoff(attempt int) time.Duration {
	base := r.baseDelay * time.Duration(1<<attempt)

	var jitter time.Duration
	if quarter := int64(r.baseDelay / 4); quarter > 0 {
		jitter = time.Duration(rand.Int63n(quarter))
	}

	return base + jitter
}
