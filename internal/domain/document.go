package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DocumentKind labels the document a transaction pays. The values appear in
// the gateway order number and metadata.
type DocumentKind string

const (
	KindSaleOrder DocumentKind = "Sale Order"
	KindInvoice   DocumentKind = "Invoice"
)

// SourceDocument is either a *SaleOrder or an *Invoice.
type SourceDocument interface {
	Kind() DocumentKind
	DocumentName() string
	BillingPartner() Partner
	// PayableAmount is what remains to be paid on the document.
	PayableAmount() decimal.Decimal

	sourceDocument()
}

type Partner struct {
	Name        string
	Email       string
	Phone       string
	Street      string
	Street2     string
	Zip         string
	City        string
	State       string
	CountryCode string
}

// ProductType follows the host catalog: "service", "consu" or "product".
type ProductType string

const ProductTypeService ProductType = "service"

type Product struct {
	ID   uuid.UUID
	Name string
	Type ProductType
	// WebsiteURL is the product page path relative to the shop root; empty
	// when the product is not published.
	WebsiteURL string
}

type SaleOrder struct {
	ID          uuid.UUID
	Name        string
	Partner     Partner
	Currency    string
	AmountTotal decimal.Decimal
	Lines       []SaleOrderLine
}

// SaleOrderLine carries the host's precomputed, tax-inclusive figures.
type SaleOrderLine struct {
	Description       string
	Product           *Product
	DisplayType       string
	Quantity          decimal.Decimal
	PriceReduceTaxInc decimal.Decimal
	PriceTotal        decimal.Decimal
	PriceTax          decimal.Decimal
	TaxRates          []decimal.Decimal
	IsDelivery        bool
	Currency          string
}

type Invoice struct {
	ID       uuid.UUID
	Name     string
	Partner  Partner
	Currency string
	Residual decimal.Decimal
	Lines    []InvoiceLine
}

// InvoiceLine has no tax-inclusive unit price; only line totals.
type InvoiceLine struct {
	Description   string
	Product       *Product
	DisplayType   string
	Quantity      decimal.Decimal
	PriceTotal    decimal.Decimal
	PriceSubtotal decimal.Decimal
	TaxRates      []decimal.Decimal
	Currency      string
}

func (s *SaleOrder) Kind() DocumentKind             { return KindSaleOrder }
func (s *SaleOrder) DocumentName() string           { return s.Name }
func (s *SaleOrder) BillingPartner() Partner        { return s.Partner }
func (s *SaleOrder) PayableAmount() decimal.Decimal { return s.AmountTotal }
func (s *SaleOrder) sourceDocument()                {}

func (i *Invoice) Kind() DocumentKind             { return KindInvoice }
func (i *Invoice) DocumentName() string           { return i.Name }
func (i *Invoice) BillingPartner() Partner        { return i.Partner }
func (i *Invoice) PayableAmount() decimal.Decimal { return i.Residual }
func (i *Invoice) sourceDocument()                {}

// IsDisplay reports section and note lines, which carry no amounts.
func (l SaleOrderLine) IsDisplay() bool { return l.DisplayType != "" }

func (l InvoiceLine) IsDisplay() bool { return l.DisplayType != "" }

// SumRates adds up tax percentages.
func SumRates(rates []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rates {
		total = total.Add(r)
	}
	return total
}
