package middleware

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanielPopoola/mollie-acquirer/internal/api"
	"github.com/DanielPopoola/mollie-acquirer/internal/config"
	"github.com/DanielPopoola/mollie-acquirer/internal/interfaces/rest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) rest.APIResponse {
	t.Helper()
	var resp rest.APIResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func TestRecovery_ReturnsInternalError(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rr := httptest.NewRecorder()
	Recovery(discardLogger())(panicking).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	resp := decodeEnvelope(t, rr)
	assert.False(t, resp.Success)
	assert.Equal(t, "INTERNAL_ERROR", resp.Error.Code)
	assert.NotContains(t, rr.Body.String(), "boom")
}

func TestRecovery_ReraisesAbortHandler(t *testing.T) {
	aborting := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	})

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		Recovery(discardLogger())(aborting).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestRecovery_LogsUnderRequestID(t *testing.T) {
	var logs strings.Builder
	logger := slog.New(slog.NewJSONHandler(&logs, nil))
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodPost, "/payment/mollie/checkout", nil)
	req.Header.Set(RequestIDHeader, "req-7")
	rr := httptest.NewRecorder()
	Logging(discardLogger())(Recovery(logger)(panicking)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, logs.String(), `"request_id":"req-7"`)
	assert.Contains(t, logs.String(), `"route":"POST /payment/mollie/checkout"`)
}

func TestLogging_EchoesRequestID(t *testing.T) {
	handler := Logging(discardLogger())(okHandler)

	t.Run("generates one", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.NotEmpty(t, rr.Header().Get(RequestIDHeader))
	})

	t.Run("keeps the caller's", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "req-42")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, "req-42", rr.Header().Get(RequestIDHeader))
	})
}

func TestTimeout_WritesEnvelope(t *testing.T) {
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	rr := httptest.NewRecorder()
	Timeout(10*time.Millisecond)(slow).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Equal(t, "TIMEOUT", decodeEnvelope(t, rr).Error.Code)
}

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(config.RateLimitConfig{RPS: 1, Burst: 2})
	handler := limiter.Middleware(okHandler)

	send := func(method, path, remote string) int {
		req := httptest.NewRequest(method, path, nil)
		req.RemoteAddr = remote
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	t.Run("general bucket", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, send(http.MethodGet, "/mollie/methods", "10.0.0.1:1000"))
		assert.Equal(t, http.StatusOK, send(http.MethodGet, "/mollie/methods", "10.0.0.1:1001"))
		assert.Equal(t, http.StatusTooManyRequests, send(http.MethodGet, "/mollie/methods", "10.0.0.1:1002"))
		assert.Equal(t, http.StatusOK, send(http.MethodGet, "/mollie/methods", "10.0.0.2:1000"))
	})

	t.Run("sync has its own bucket", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, send(http.MethodPost, "/mollie/methods/sync", "10.0.0.1:1000"))
		assert.Equal(t, http.StatusOK, send(http.MethodPost, "/mollie/methods/sync", "10.0.0.1:1000"))
		assert.Equal(t, http.StatusTooManyRequests, send(http.MethodPost, "/mollie/methods/sync", "10.0.0.1:1000"))
	})

	t.Run("evicts idle visitors", func(t *testing.T) {
		limiter.evict(time.Now().Add(visitorTTL + time.Second))
		limiter.mu.Lock()
		defer limiter.mu.Unlock()
		assert.Empty(t, limiter.visitors)
	})
}

func TestRateLimiter_CleanupStopsWithContext(t *testing.T) {
	limiter := NewRateLimiter(config.RateLimitConfig{RPS: 1, Burst: 1})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		limiter.Cleanup(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup did not stop")
	}
}

func TestRequestValidator(t *testing.T) {
	doc, err := api.LoadSpec(context.Background())
	require.NoError(t, err)
	validate, err := RequestValidator(doc)
	require.NoError(t, err)
	handler := validate(okHandler)

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		wantStatus int
	}{
		{"valid checkout", http.MethodPost, "/payment/mollie/checkout", `{"reference":"S00042"}`, http.StatusOK},
		{"checkout without reference", http.MethodPost, "/payment/mollie/checkout", `{"lang":"nl_NL"}`, http.StatusBadRequest},
		{"visibility with wrong type", http.MethodPut, "/mollie/methods/ideal/shop-visibility", `{"active_on_shop":"yes"}`, http.StatusBadRequest},
		{"malformed amount", http.MethodGet, "/mollie/methods?amount=ten", "", http.StatusBadRequest},
		{"valid amount", http.MethodGet, "/mollie/methods?amount=10.50", "", http.StatusOK},
		{"route outside contract", http.MethodGet, "/healthz", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body io.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			req := httptest.NewRequest(tt.method, tt.target, body)
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusBadRequest {
				assert.Equal(t, "INVALID_INPUT", decodeEnvelope(t, rr).Error.Code)
			}
		})
	}
}
