package mollie

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"runtime"
	"strings"

	"github.com/DanielPopoola/mollie-acquirer/internal/application"
	"github.com/DanielPopoola/mollie-acquirer/internal/config"
)

var ErrInvalidAPIKey = errors.New("mollie api key does not match environment")

// Client talks to the Mollie v2 REST API. It holds its own credentials;
// build one per configuration with NewClient.
type Client struct {
	baseURL    string
	apiKey     string
	profileID  string
	userAgent  string
	httpClient *http.Client
}

var _ application.GatewayClient = (*Client)(nil)

// NewClient validates the key against the environment: live keys start
// with "live_", test keys with "test_".
func NewClient(cfg config.MollieConfig) (*Client, error) {
	key := cfg.APIKey()
	prefix := "test_"
	if cfg.Environment == "prod" {
		prefix = "live_"
	}
	if !strings.HasPrefix(key, prefix) {
		return nil, fmt.Errorf("%w: %s environment expects a %s key", ErrInvalidAPIKey, cfg.Environment, prefix)
	}

	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:    key,
		profileID: cfg.ProfileID,
		userAgent: userAgent(cfg),
		httpClient: &http.Client{
			Timeout: cfg.ConnTimeout,
		},
	}, nil
}

func userAgent(cfg config.MollieConfig) string {
	parts := []string{
		"Go/" + strings.TrimPrefix(runtime.Version(), "go"),
		"MollieAcquirer/" + cfg.IntegrationVer,
	}
	if cfg.PlatformName != "" {
		parts = append(parts, cfg.PlatformName+"/"+cfg.PlatformVer)
	}
	return strings.Join(parts, " ")
}

func (c *Client) CreateOrder(ctx context.Context, req application.OrderRequest) (*application.GatewayResponse, error) {
	endpoint := fmt.Sprintf("%s/orders", c.baseURL)
	return sendRequest[application.OrderRequest, application.GatewayResponse](c, ctx, http.MethodPost, endpoint, &req)
}

func (c *Client) CreatePayment(ctx context.Context, req application.PaymentRequest) (*application.GatewayResponse, error) {
	endpoint := fmt.Sprintf("%s/payments", c.baseURL)
	return sendRequest[application.PaymentRequest, application.GatewayResponse](c, ctx, http.MethodPost, endpoint, &req)
}

// GetOrder fetches an order with its payments embedded.
func (c *Client) GetOrder(ctx context.Context, id string) (*application.GatewayResponse, error) {
	endpoint := fmt.Sprintf("%s/orders/%s?embed=payments", c.baseURL, url.PathEscape(id))
	return sendRequest[any, application.GatewayResponse](c, ctx, http.MethodGet, endpoint, nil)
}

func (c *Client) GetPayment(ctx context.Context, id string) (*application.GatewayResponse, error) {
	endpoint := fmt.Sprintf("%s/payments/%s", c.baseURL, url.PathEscape(id))
	return sendRequest[any, application.GatewayResponse](c, ctx, http.MethodGet, endpoint, nil)
}

func (c *Client) ListMethods(ctx context.Context, params application.MethodListParams) (*application.MethodList, error) {
	query := url.Values{}
	if params.Resource != "" {
		query.Set("resource", params.Resource)
	}
	if params.Include != "" {
		query.Set("include", params.Include)
	}
	if params.Amount != nil {
		query.Set("amount[value]", params.Amount.Value)
		query.Set("amount[currency]", params.Amount.Currency)
	}
	if params.Locale != "" {
		query.Set("locale", params.Locale)
	}
	if c.profileID != "" {
		query.Set("profileId", c.profileID)
	}

	endpoint := fmt.Sprintf("%s/methods", c.baseURL)
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	return sendRequest[any, application.MethodList](c, ctx, http.MethodGet, endpoint, nil)
}

func sendRequest[Req any, Resp any](c *Client, ctx context.Context, method, url string, reqBody *Req) (*Resp, error) {
	var bodyReader io.Reader
	if reqBody != nil {
		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			return nil, fmt.Errorf("error marshalling json: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	if reqBody != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, decodeError(resp)
	}

	var out Resp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("error decoding json response: %w", err)
	}

	return &out, nil
}
