package services

import (
	"strings"

	"github.com/DanielPopoola/mollie-acquirer/internal/application"
	"github.com/DanielPopoola/mollie-acquirer/internal/domain"
	"github.com/shopspring/decimal"
)

// PayloadBuilder maps source documents onto Mollie order lines and
// addresses.
type PayloadBuilder struct {
	urls *URLBuilder
}

func NewPayloadBuilder(urls *URLBuilder) *PayloadBuilder {
	return &PayloadBuilder{urls: urls}
}

// BuildLineItems returns one order line per non-display document line.
// Quantities are truncated to whole units; a line that truncates to zero
// is rejected with ZERO_QUANTITY.
func (b *PayloadBuilder) BuildLineItems(doc domain.SourceDocument) ([]application.OrderLine, error) {
	switch d := doc.(type) {
	case *domain.SaleOrder:
		return b.saleOrderLines(d)
	case *domain.Invoice:
		return b.invoiceLines(d)
	default:
		return nil, domain.NewUnsupportedDocumentError(doc)
	}
}

func (b *PayloadBuilder) saleOrderLines(order *domain.SaleOrder) ([]application.OrderLine, error) {
	lines := make([]application.OrderLine, 0, len(order.Lines))
	for _, l := range order.Lines {
		if l.IsDisplay() {
			continue
		}

		qty := l.Quantity.IntPart()
		if qty == 0 {
			return nil, domain.NewZeroQuantityError(l.Description)
		}

		currency := lineCurrency(l.Currency, order.Currency)
		line := b.lineCommon(l.Description, l.Product, l.IsDelivery)
		line.Quantity = qty
		line.UnitPrice = amount(currency, l.PriceReduceTaxInc)
		line.TotalAmount = amount(currency, l.PriceTotal)
		line.VatRate = domain.FormatAmount(domain.SumRates(l.TaxRates))
		line.VatAmount = amount(currency, l.PriceTax)
		lines = append(lines, line)
	}
	return lines, nil
}

// invoiceLines derives the tax-inclusive unit price from the line total,
// since invoice lines only carry totals.
func (b *PayloadBuilder) invoiceLines(invoice *domain.Invoice) ([]application.OrderLine, error) {
	lines := make([]application.OrderLine, 0, len(invoice.Lines))
	for _, l := range invoice.Lines {
		if l.IsDisplay() {
			continue
		}

		qty := l.Quantity.IntPart()
		if qty == 0 {
			return nil, domain.NewZeroQuantityError(l.Description)
		}

		currency := lineCurrency(l.Currency, invoice.Currency)
		line := b.lineCommon(l.Description, l.Product, false)
		line.Quantity = qty
		line.UnitPrice = amount(currency, l.PriceTotal.Div(decimal.NewFromInt(qty)))
		line.TotalAmount = amount(currency, l.PriceTotal)
		line.VatRate = domain.FormatAmount(domain.SumRates(l.TaxRates))
		line.VatAmount = amount(currency, l.PriceTotal.Sub(l.PriceSubtotal))
		lines = append(lines, line)
	}
	return lines, nil
}

// lineCommon fills name, type and product URL. Delivery wins over service.
func (b *PayloadBuilder) lineCommon(name string, product *domain.Product, isDelivery bool) application.OrderLine {
	if name == "" && product != nil {
		name = product.Name
	}

	line := application.OrderLine{
		Name: name,
		Type: application.LineTypePhysical,
	}

	if product != nil && product.Type == domain.ProductTypeService {
		line.Type = application.LineTypeDigital
	}
	if isDelivery {
		line.Type = application.LineTypeShippingFee
	}

	if product != nil && product.WebsiteURL != "" {
		line.ProductURL = b.urls.ProductURL(product.WebsiteURL)
	}

	return line
}

// BillingAddress maps a partner onto Mollie's address object. The name is
// split on its first space; a single word is used for both parts because
// the orders API requires both.
func (b *PayloadBuilder) BillingAddress(p domain.Partner) application.Address {
	given, family, found := strings.Cut(strings.TrimSpace(p.Name), " ")
	if !found {
		family = given
	}

	return application.Address{
		GivenName:        given,
		FamilyName:       strings.TrimSpace(family),
		Email:            p.Email,
		Phone:            p.Phone,
		StreetAndNumber:  p.Street,
		StreetAdditional: p.Street2,
		PostalCode:       p.Zip,
		City:             p.City,
		Region:           p.State,
		Country:          p.CountryCode,
	}
}

func amount(currency string, value decimal.Decimal) application.Amount {
	return toAmount(domain.Money{Value: value, Currency: currency})
}

func toAmount(m domain.Money) application.Amount {
	return application.Amount{Currency: m.Currency, Value: m.Fixed()}
}

func lineCurrency(line, document string) string {
	if line != "" {
		return line
	}
	return document
}
