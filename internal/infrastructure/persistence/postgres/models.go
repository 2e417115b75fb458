package postgres

import (
	"github.com/google/uuid"
)

// Numeric columns are selected as text and parsed with shopspring/decimal,
// so no float ever sits between the database and the payload builder.

type methodModel struct {
	ID                 uuid.UUID
	Code               string
	Name               string
	MinAmount          string
	MaxAmount          string
	Active             bool
	ActiveOnShop       bool
	SupportsOrderAPI   bool
	SupportsPaymentAPI bool
	IconID             *uuid.UUID
	IssuerIDs          []string
}

type transactionModel struct {
	ID                uuid.UUID
	Reference         string
	Amount            string
	Currency          string
	MethodCode        string
	CardToken         string
	IssuerCode        string
	AcquirerReference string
	State             string
	SaleOrderID       *uuid.UUID
	InvoiceID         *uuid.UUID
}

type partnerModel struct {
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

type productModel struct {
	ID         *uuid.UUID
	Name       *string
	Type       *string
	WebsiteURL *string
}

type saleOrderLineModel struct {
	Description       string
	Product           productModel
	DisplayType       string
	Quantity          string
	PriceReduceTaxInc string
	PriceTotal        string
	PriceTax          string
	TaxRates          []string
	IsDelivery        bool
	Currency          string
}

type invoiceLineModel struct {
	Description   string
	Product       productModel
	DisplayType   string
	Quantity      string
	PriceTotal    string
	PriceSubtotal string
	TaxRates      []string
	Currency      string
}
