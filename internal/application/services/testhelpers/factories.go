package testhelpers

import (
	"github.com/DanielPopoola/mollie-acquirer/internal/application"
	"github.com/DanielPopoola/mollie-acquirer/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func Dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func DefaultPartner() domain.Partner {
	return domain.Partner{
		Name:        "Anna van Dijk",
		Email:       "anna@example.com",
		Phone:       "+31612345678",
		Street:      "Keizersgracht 126",
		Zip:         "1015 CW",
		City:        "Amsterdam",
		CountryCode: "NL",
	}
}

// DefaultSaleOrder returns an order with a physical product, a service, a
// section line and a delivery line. AmountTotal is 139.15.
func DefaultSaleOrder() *domain.SaleOrder {
	return &domain.SaleOrder{
		ID:          uuid.New(),
		Name:        "S00042",
		Partner:     DefaultPartner(),
		Currency:    "EUR",
		AmountTotal: Dec("139.15"),
		Lines: []domain.SaleOrderLine{
			{
				Description:       "Desk lamp",
				Product:           &domain.Product{ID: uuid.New(), Name: "Desk lamp", Type: "consu", WebsiteURL: "/shop/desk-lamp-7"},
				Quantity:          Dec("2"),
				PriceReduceTaxInc: Dec("36.30"),
				PriceTotal:        Dec("72.60"),
				PriceTax:          Dec("12.60"),
				TaxRates:          []decimal.Decimal{Dec("21")},
			},
			{Description: "Extras", DisplayType: "line_section"},
			{
				Description:       "Installation",
				Product:           &domain.Product{ID: uuid.New(), Name: "Installation", Type: domain.ProductTypeService},
				Quantity:          Dec("1.7"),
				PriceReduceTaxInc: Dec("60.50"),
				PriceTotal:        Dec("60.50"),
				PriceTax:          Dec("10.50"),
				TaxRates:          []decimal.Decimal{Dec("21")},
			},
			{
				Description:       "Standard delivery",
				Product:           &domain.Product{ID: uuid.New(), Name: "Delivery", Type: domain.ProductTypeService},
				Quantity:          Dec("1"),
				PriceReduceTaxInc: Dec("6.05"),
				PriceTotal:        Dec("6.05"),
				PriceTax:          Dec("1.05"),
				TaxRates:          []decimal.Decimal{Dec("9"), Dec("12")},
				IsDelivery:        true,
			},
		},
	}
}

// DefaultInvoice has a residual lower than its total, as after a partial
// payment.
func DefaultInvoice() *domain.Invoice {
	return &domain.Invoice{
		ID:       uuid.New(),
		Name:     "INV/2024/0007",
		Partner:  DefaultPartner(),
		Currency: "EUR",
		Residual: Dec("50.00"),
		Lines: []domain.InvoiceLine{
			{
				Description:   "Paper rolls",
				Product:       &domain.Product{ID: uuid.New(), Name: "Paper rolls", Type: "product"},
				Quantity:      Dec("3"),
				PriceTotal:    Dec("100.00"),
				PriceSubtotal: Dec("82.64"),
				TaxRates:      []decimal.Decimal{Dec("21")},
			},
			{Description: "Thank you", DisplayType: "line_note"},
		},
	}
}

func NewTransaction(doc domain.SourceDocument) *domain.Transaction {
	tx := &domain.Transaction{
		ID:         uuid.New(),
		Reference:  "TX-" + uuid.NewString()[:8],
		Amount:     Dec("139.15"),
		Currency:   "EUR",
		MethodCode: "ideal",
		State:      domain.StateDraft,
	}
	switch d := doc.(type) {
	case *domain.SaleOrder:
		tx.Document = &domain.DocumentRef{Kind: domain.KindSaleOrder, ID: d.ID}
		tx.Amount = d.AmountTotal
	case *domain.Invoice:
		tx.Document = &domain.DocumentRef{Kind: domain.KindInvoice, ID: d.ID}
		tx.Amount = d.Residual
	}
	return tx
}

func NewMethod(code string, supportsPayments bool) *domain.PaymentMethod {
	m := domain.NewPaymentMethod(domain.MethodDescriptor{
		Code:               code,
		Description:        code,
		SupportsOrderAPI:   true,
		SupportsPaymentAPI: supportsPayments,
	})
	return m
}

func MethodEntry(id, description, min, max string, issuers ...application.IssuerEntry) application.MethodEntry {
	e := application.MethodEntry{
		ID:          id,
		Description: description,
		Image:       application.Image{Size2x: "https://www.mollie.com/external/icons/payment-methods/" + id + "%402x.png"},
		Issuers:     issuers,
	}
	if min != "" {
		e.MinimumAmount = &application.Amount{Currency: "EUR", Value: min}
	}
	if max != "" {
		e.MaximumAmount = &application.Amount{Currency: "EUR", Value: max}
	}
	return e
}

func IssuerEntry(id, name string) application.IssuerEntry {
	return application.IssuerEntry{
		ID:    id,
		Name:  name,
		Image: application.Image{Size2x: "https://www.mollie.com/external/icons/ideal-issuers/" + id + "%402x.png"},
	}
}

func MethodList(entries ...application.MethodEntry) *application.MethodList {
	list := &application.MethodList{Count: len(entries)}
	list.Embedded.Methods = entries
	return list
}

func RejectionError(detail string) *application.GatewayError {
	return &application.GatewayError{
		StatusCode: 422,
		Title:      "Unprocessable Entity",
		Detail:     detail,
	}
}
