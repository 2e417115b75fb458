package postgres

import (
	"fmt"

	"github.com/DanielPopoola/mollie-acquirer/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func toDomainMethod(m methodModel) (*domain.PaymentMethod, error) {
	minAmount, err := decimal.NewFromString(m.MinAmount)
	if err != nil {
		return nil, fmt.Errorf("parse min_amount of %s: %w", m.Code, err)
	}
	maxAmount, err := decimal.NewFromString(m.MaxAmount)
	if err != nil {
		return nil, fmt.Errorf("parse max_amount of %s: %w", m.Code, err)
	}
	issuerIDs, err := parseUUIDs(m.IssuerIDs)
	if err != nil {
		return nil, fmt.Errorf("parse issuers of %s: %w", m.Code, err)
	}

	return &domain.PaymentMethod{
		ID:                 m.ID,
		Code:               m.Code,
		Name:               m.Name,
		MinAmount:          minAmount,
		MaxAmount:          maxAmount,
		Active:             m.Active,
		ActiveOnShop:       m.ActiveOnShop,
		SupportsOrderAPI:   m.SupportsOrderAPI,
		SupportsPaymentAPI: m.SupportsPaymentAPI,
		IconID:             m.IconID,
		IssuerIDs:          issuerIDs,
	}, nil
}

// toDomainTransaction resolves the document link. An invoice wins over a
// sale order when both are set.
func toDomainTransaction(m transactionModel) (*domain.Transaction, error) {
	amount, err := decimal.NewFromString(m.Amount)
	if err != nil {
		return nil, fmt.Errorf("parse amount of %s: %w", m.Reference, err)
	}

	tx := &domain.Transaction{
		ID:                m.ID,
		Reference:         m.Reference,
		Amount:            amount,
		Currency:          m.Currency,
		MethodCode:        m.MethodCode,
		CardToken:         m.CardToken,
		IssuerCode:        m.IssuerCode,
		AcquirerReference: m.AcquirerReference,
		State:             domain.TransactionState(m.State),
	}

	switch {
	case m.InvoiceID != nil:
		tx.Document = &domain.DocumentRef{Kind: domain.KindInvoice, ID: *m.InvoiceID}
	case m.SaleOrderID != nil:
		tx.Document = &domain.DocumentRef{Kind: domain.KindSaleOrder, ID: *m.SaleOrderID}
	}

	return tx, nil
}

func toDomainPartner(m partnerModel) domain.Partner {
	return domain.Partner(m)
}

func toDomainProduct(m productModel) *domain.Product {
	if m.ID == nil {
		return nil
	}
	return &domain.Product{
		ID:         *m.ID,
		Name:       deref(m.Name),
		Type:       domain.ProductType(deref(m.Type)),
		WebsiteURL: deref(m.WebsiteURL),
	}
}

func toDomainSaleOrderLine(m saleOrderLineModel) (domain.SaleOrderLine, error) {
	nums, err := parseDecimals(m.Quantity, m.PriceReduceTaxInc, m.PriceTotal, m.PriceTax)
	if err != nil {
		return domain.SaleOrderLine{}, fmt.Errorf("parse line %q: %w", m.Description, err)
	}
	rates, err := parseDecimals(m.TaxRates...)
	if err != nil {
		return domain.SaleOrderLine{}, fmt.Errorf("parse tax rates of %q: %w", m.Description, err)
	}

	return domain.SaleOrderLine{
		Description:       m.Description,
		Product:           toDomainProduct(m.Product),
		DisplayType:       m.DisplayType,
		Quantity:          nums[0],
		PriceReduceTaxInc: nums[1],
		PriceTotal:        nums[2],
		PriceTax:          nums[3],
		TaxRates:          rates,
		IsDelivery:        m.IsDelivery,
		Currency:          m.Currency,
	}, nil
}

func toDomainInvoiceLine(m invoiceLineModel) (domain.InvoiceLine, error) {
	nums, err := parseDecimals(m.Quantity, m.PriceTotal, m.PriceSubtotal)
	if err != nil {
		return domain.InvoiceLine{}, fmt.Errorf("parse line %q: %w", m.Description, err)
	}
	rates, err := parseDecimals(m.TaxRates...)
	if err != nil {
		return domain.InvoiceLine{}, fmt.Errorf("parse tax rates of %q: %w", m.Description, err)
	}

	return domain.InvoiceLine{
		Description:   m.Description,
		Product:       toDomainProduct(m.Product),
		DisplayType:   m.DisplayType,
		Quantity:      nums[0],
		PriceTotal:    nums[1],
		PriceSubtotal: nums[2],
		TaxRates:      rates,
		Currency:      m.Currency,
	}, nil
}

func parseDecimals(values ...string) ([]decimal.Decimal, error) {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}

func parseUUIDs(values []string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, len(values))
	for i, v := range values {
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, err
		}
		out[i] = id
	}
	return out, nil
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
