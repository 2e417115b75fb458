package application

import (
	"errors"
	"fmt"
	"net/http"
)

// Amount is Mollie's money object. Value always carries two decimals.
type Amount struct {
	Currency string `json:"currency"`
	Value    string `json:"value"`
}

type Address struct {
	GivenName        string `json:"givenName,omitempty"`
	FamilyName       string `json:"familyName,omitempty"`
	Email            string `json:"email,omitempty"`
	Phone            string `json:"phone,omitempty"`
	StreetAndNumber  string `json:"streetAndNumber,omitempty"`
	StreetAdditional string `json:"streetAdditional,omitempty"`
	PostalCode       string `json:"postalCode,omitempty"`
	City             string `json:"city,omitempty"`
	Region           string `json:"region,omitempty"`
	Country          string `json:"country,omitempty"`
}

// Order line types understood by the orders API.
const (
	LineTypePhysical    = "physical"
	LineTypeDigital     = "digital"
	LineTypeShippingFee = "shipping_fee"
)

type OrderLine struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Quantity    int64  `json:"quantity"`
	UnitPrice   Amount `json:"unitPrice"`
	TotalAmount Amount `json:"totalAmount"`
	VatRate     string `json:"vatRate"`
	VatAmount   Amount `json:"vatAmount"`
	ProductURL  string `json:"productUrl,omitempty"`
}

type Metadata struct {
	TransactionID string `json:"transaction_id"`
	Reference     string `json:"reference"`
	Type          string `json:"type,omitempty"`
	OrderID       string `json:"order_id,omitempty"`
	Description   string `json:"description,omitempty"`
}

// PaymentDetails holds exactly one of CardToken or Issuer.
type PaymentDetails struct {
	CardToken string `json:"cardToken,omitempty"`
	Issuer    string `json:"issuer,omitempty"`
}

type OrderRequest struct {
	Method         string          `json:"method"`
	Amount         Amount          `json:"amount"`
	BillingAddress Address         `json:"billingAddress"`
	OrderNumber    string          `json:"orderNumber"`
	Lines          []OrderLine     `json:"lines"`
	Metadata       Metadata        `json:"metadata"`
	Locale         string          `json:"locale"`
	RedirectURL    string          `json:"redirectUrl"`
	WebhookURL     string          `json:"webhookUrl,omitempty"`
	Payment        *PaymentDetails `json:"payment,omitempty"`
}

// PaymentRequest is the payments API body. A card token goes top level; an
// issuer goes in the payment sub-object.
type PaymentRequest struct {
	Method      string          `json:"method"`
	Amount      Amount          `json:"amount"`
	Description string          `json:"description"`
	Metadata    Metadata        `json:"metadata"`
	Locale      string          `json:"locale"`
	RedirectURL string          `json:"redirectUrl"`
	WebhookURL  string          `json:"webhookUrl,omitempty"`
	CardToken   string          `json:"cardToken,omitempty"`
	Payment     *PaymentDetails `json:"payment,omitempty"`
}

type Link struct {
	Href string `json:"href"`
	Type string `json:"type,omitempty"`
}

type GatewayLinks struct {
	Checkout *Link `json:"checkout,omitempty"`
}

// GatewayResponse covers the fields read from both order and payment
// resources.
type GatewayResponse struct {
	Resource string       `json:"resource"`
	ID       string       `json:"id"`
	Status   string       `json:"status"`
	Method   string       `json:"method,omitempty"`
	Amount   *Amount      `json:"amount,omitempty"`
	Links    GatewayLinks `json:"_links"`
	Embedded struct {
		Payments []GatewayResponse `json:"payments,omitempty"`
	} `json:"_embedded"`
}

// CheckoutURL returns the hosted checkout link, empty when the resource has none.
func (r *GatewayResponse) CheckoutURL() string {
	if r.Links.Checkout == nil {
		return ""
	}
	return r.Links.Checkout.Href
}

type Image struct {
	Size1x string `json:"size1x,omitempty"`
	Size2x string `json:"size2x,omitempty"`
	SVG    string `json:"svg,omitempty"`
}

type IssuerEntry struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image Image  `json:"image"`
}

type MethodEntry struct {
	ID            string        `json:"id"`
	Description   string        `json:"description"`
	MinimumAmount *Amount       `json:"minimumAmount"`
	MaximumAmount *Amount       `json:"maximumAmount"`
	Image         Image         `json:"image"`
	Issuers       []IssuerEntry `json:"issuers,omitempty"`
}

type MethodList struct {
	Count    int `json:"count"`
	Embedded struct {
		Methods []MethodEntry `json:"methods"`
	} `json:"_embedded"`
}

// MethodListParams narrows GET /methods. Empty fields are not sent.
type MethodListParams struct {
	Resource string
	Include  string
	Amount   *Amount
	Locale   string
}

// GatewayError is a non-2xx answer from Mollie, decoded from its
// problem+json body.
type GatewayError struct {
	StatusCode int
	Title      string
	Detail     string
	Field      string
}

func (e *GatewayError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("mollie error [%d %s]: %s (field: %s)", e.StatusCode, e.Title, e.Detail, e.Field)
	}
	return fmt.Sprintf("mollie error [%d %s]: %s", e.StatusCode, e.Title, e.Detail)
}

// IsRejection reports a 422 Unprocessable Entity, the only answer the
// checkout treats as a recoverable result rather than a failure.
func (e *GatewayError) IsRejection() bool {
	return e.StatusCode == http.StatusUnprocessableEntity
}

func IsGatewayError(err error) (*GatewayError, bool) {
	var gwErr *GatewayError
	ok := errors.As(err, &gwErr)
	return gwErr, ok
}

// IsRejection reports whether err is a gateway validation rejection.
func IsRejection(err error) bool {
	gwErr, ok := IsGatewayError(err)
	return ok && gwErr.IsRejection()
}
