package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/DanielPopoola/mollie-acquirer/internal/interfaces/rest/handlers"
)

// TestClient wraps HTTP calls to the acquirer.
type TestClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewTestClient(baseURL string) *TestClient {
	return &TestClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type envelope[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func do[T any](t *testing.T, c *TestClient, method, path string, body any) (T, int, string) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope[T]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))

	code := ""
	if env.Error != nil {
		code = env.Error.Code
	}
	return env.Data, resp.StatusCode, code
}

func (c *TestClient) Checkout(t *testing.T, reference, lang string) (handlers.CheckoutResponse, int, string) {
	return do[handlers.CheckoutResponse](t, c, http.MethodPost, "/payment/mollie/checkout",
		handlers.CheckoutRequest{Reference: reference, Lang: lang})
}

func (c *TestClient) Sync(t *testing.T) (handlers.SyncResponse, int, string) {
	return do[handlers.SyncResponse](t, c, http.MethodPost, "/mollie/methods/sync", nil)
}

func (c *TestClient) ListMethods(t *testing.T, amount string) ([]handlers.MethodResponse, int, string) {
	path := "/mollie/methods"
	if amount != "" {
		path += "?amount=" + url.QueryEscape(amount)
	}
	return do[[]handlers.MethodResponse](t, c, http.MethodGet, path, nil)
}

func (c *TestClient) TransactionMethods(t *testing.T, reference string) ([]handlers.MethodResponse, int, string) {
	return do[[]handlers.MethodResponse](t, c, http.MethodGet,
		"/payment/mollie/transactions/"+url.PathEscape(reference)+"/methods", nil)
}

func (c *TestClient) Status(t *testing.T, reference string) (handlers.StatusResponse, int, string) {
	return do[handlers.StatusResponse](t, c, http.MethodGet,
		"/payment/mollie/transactions/"+url.PathEscape(reference)+"/status", nil)
}

func (c *TestClient) SetShopVisibility(t *testing.T, code string, visible bool) (handlers.MethodResponse, int, string) {
	return do[handlers.MethodResponse](t, c, http.MethodPut,
		"/mollie/methods/"+url.PathEscape(code)+"/shop-visibility",
		handlers.ShopVisibilityRequest{ActiveOnShop: &visible})
}

// FakeMollie answers the handful of Mollie endpoints the acquirer calls.
// ideal is listed for orders and payments, creditcard for payments only.
type FakeMollie struct {
	server *httptest.Server

	mu           sync.Mutex
	rejectOrders bool
	orders       []map[string]any
	payments     []map[string]any
}

func NewFakeMollie() *FakeMollie {
	f := &FakeMollie{}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /methods", f.handleMethods)
	mux.HandleFunc("POST /orders", f.handleCreateOrder)
	mux.HandleFunc("POST /payments", f.handleCreatePayment)
	mux.HandleFunc("GET /orders/{id}", f.handleGetOrder)
	mux.HandleFunc("GET /icons/{name}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("\x89PNG-" + r.PathValue("name")))
	})

	f.server = httptest.NewServer(mux)
	return f
}

func (f *FakeMollie) URL() string { return f.server.URL }

func (f *FakeMollie) Close() { f.server.Close() }

func (f *FakeMollie) RejectOrders(reject bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rejectOrders = reject
}

func (f *FakeMollie) Orders() []map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]map[string]any(nil), f.orders...)
}

func (f *FakeMollie) Payments() []map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]map[string]any(nil), f.payments...)
}

func (f *FakeMollie) method(id, description, min, max string, withIssuers bool) map[string]any {
	m := map[string]any{
		"resource":      "method",
		"id":            id,
		"description":   description,
		"minimumAmount": map[string]string{"value": min, "currency": "EUR"},
		"maximumAmount": map[string]string{"value": max, "currency": "EUR"},
		"image":         map[string]string{"size2x": f.server.URL + "/icons/" + id},
	}
	if withIssuers {
		m["issuers"] = []map[string]any{{
			"resource": "issuer",
			"id":       "ideal_INGBNL2A",
			"name":     "ING",
			"image":    map[string]string{"size2x": f.server.URL + "/icons/ideal_INGBNL2A"},
		}}
	}
	return m
}

func (f *FakeMollie) handleMethods(w http.ResponseWriter, r *http.Request) {
	methods := []map[string]any{f.method("ideal", "iDEAL", "0.01", "50000.00", r.URL.Query().Get("include") == "issuers")}
	if r.URL.Query().Get("resource") != "orders" {
		methods = append(methods, f.method("creditcard", "Credit card", "1.00", "100.00", false))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count":     len(methods),
		"_embedded": map[string]any{"methods": methods},
	})
}

func (f *FakeMollie) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeProblem(w, http.StatusBadRequest, err.Error())
		return
	}

	f.mu.Lock()
	reject := f.rejectOrders
	f.orders = append(f.orders, body)
	f.mu.Unlock()

	if reject {
		writeProblem(w, http.StatusUnprocessableEntity, "The order lines do not add up to the order amount")
		return
	}

	id := fmt.Sprintf("ord_e2e%d", len(f.Orders()))
	writeJSON(w, http.StatusCreated, map[string]any{
		"resource": "order",
		"id":       id,
		"status":   "created",
		"amount":   body["amount"],
		"_links": map[string]any{
			"checkout": map[string]string{"href": "https://www.mollie.com/checkout/order/" + id, "type": "text/html"},
		},
	})
}

func (f *FakeMollie) handleCreatePayment(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeProblem(w, http.StatusBadRequest, err.Error())
		return
	}

	f.mu.Lock()
	f.payments = append(f.payments, body)
	id := fmt.Sprintf("tr_e2e%d", len(f.payments))
	f.mu.Unlock()

	writeJSON(w, http.StatusCreated, map[string]any{
		"resource": "payment",
		"id":       id,
		"status":   "open",
		"method":   body["method"],
		"amount":   body["amount"],
		"_links": map[string]any{
			"checkout": map[string]string{"href": "https://www.mollie.com/checkout/select-issuer/" + id, "type": "text/html"},
		},
	})
}

func (f *FakeMollie) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !strings.HasPrefix(id, "ord_") {
		writeProblem(w, http.StatusNotFound, "No order exists with token "+id)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"resource": "order",
		"id":       id,
		"status":   "paid",
		"_embedded": map[string]any{
			"payments": []map[string]any{{"resource": "payment", "id": "tr_paid1", "status": "paid", "method": "ideal"}},
		},
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/hal+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeProblem(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status": status,
		"title":  http.StatusText(status),
		"detail": detail,
	})
}
