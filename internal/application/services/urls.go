package services

import (
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/DanielPopoola/mollie-acquirer/internal/config"
	"github.com/google/uuid"
)

// URLBuilder derives the shop URLs registered with the gateway.
type URLBuilder struct {
	base         *url.URL
	redirectPath string
	webhookPath  string
}

func NewURLBuilder(cfg config.ShopConfig) (*URLBuilder, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse shop base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("shop base url %q must be absolute", cfg.BaseURL)
	}
	return &URLBuilder{
		base:         base,
		redirectPath: cfg.RedirectPath,
		webhookPath:  cfg.WebhookPath,
	}, nil
}

func (b *URLBuilder) BaseURL() string {
	return b.base.String()
}

// RedirectURL is where the payer lands after the hosted checkout.
func (b *URLBuilder) RedirectURL(txID uuid.UUID) string {
	return b.withTx(b.redirectPath, txID)
}

// WebhookURL is where Mollie posts status changes for the transaction.
func (b *URLBuilder) WebhookURL(txID uuid.UUID) string {
	return b.withTx(b.webhookPath, txID)
}

// ProductURL resolves a product page path against the shop root. It
// returns "" when path does not parse.
func (b *URLBuilder) ProductURL(path string) string {
	ref, err := url.Parse(path)
	if err != nil {
		return ""
	}
	return b.base.ResolveReference(ref).String()
}

func (b *URLBuilder) withTx(path string, txID uuid.UUID) string {
	u := b.base.ResolveReference(&url.URL{Path: path})
	u.RawQuery = url.Values{"tx": []string{txID.String()}}.Encode()
	return u.String()
}

// WebhookAllowed reports whether Mollie can reach rawURL. Loopback, private
// and unspecified addresses and localhost names are refused by the gateway.
func WebhookAllowed(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return false
	}

	host := strings.ToLower(u.Hostname())
	if host == "localhost" || strings.HasSuffix(host, ".localhost") {
		return false
	}

	if ip := net.ParseIP(host); ip != nil {
		return !ip.IsLoopback() && !ip.IsPrivate() && !ip.IsUnspecified() && !ip.IsLinkLocalUnicast()
	}
	return true
}
