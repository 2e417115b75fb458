package domain_test

import (
	"testing"

	"github.com/DanielPopoola/mollie-acquirer/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestPaymentMethod_AcceptsAmount(t *testing.T) {
	tests := []struct {
		name   string
		min    string
		max    string
		amount string
		want   bool
	}{
		{"inside limits", "1.00", "50000.00", "100.00", true},
		{"below minimum", "1.00", "50000.00", "0.50", false},
		{"above maximum", "1.00", "500.00", "500.01", false},
		{"on maximum", "1.00", "500.00", "500.00", true},
		{"zero maximum is unbounded", "0.01", "0", "999999.00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &domain.PaymentMethod{MinAmount: dec(tt.min), MaxAmount: dec(tt.max)}
			assert.Equal(t, tt.want, m.AcceptsAmount(dec(tt.amount)))
		})
	}
}

func TestNewPaymentMethod(t *testing.T) {
	d := domain.MethodDescriptor{
		Code:             "ideal",
		Description:      "iDEAL",
		MinimumAmount:    decPtr("0.01"),
		SupportsOrderAPI: true,
	}

	m := domain.NewPaymentMethod(d)

	assert.Equal(t, "ideal", m.Code)
	assert.Equal(t, "iDEAL", m.Name)
	assert.True(t, m.Active)
	assert.True(t, m.ActiveOnShop)
	assert.True(t, m.Available())
	assert.True(t, m.SupportsOrderAPI)
	assert.False(t, m.SupportsPaymentAPI)
	assert.Equal(t, "0.01", domain.FormatAmount(m.MinAmount))
	assert.True(t, m.MaxAmount.IsZero())
}

func TestPaymentMethod_RefreshAndDeactivate(t *testing.T) {
	m := &domain.PaymentMethod{Code: "creditcard", MaxAmount: dec("10")}

	m.Deactivate()
	assert.False(t, m.Available())

	m.Refresh(domain.MethodDescriptor{
		Code:               "creditcard",
		MaximumAmount:      decPtr("2000"),
		SupportsPaymentAPI: true,
	})

	assert.True(t, m.Active)
	assert.True(t, m.SupportsPaymentAPI)
	assert.False(t, m.SupportsOrderAPI)
	assert.True(t, m.MinAmount.IsZero())
	assert.Equal(t, "2000.00", domain.FormatAmount(m.MaxAmount))
}

func TestSumRates(t *testing.T) {
	assert.Equal(t, "21.00", domain.FormatAmount(domain.SumRates([]decimal.Decimal{dec("15"), dec("6")})))
	assert.Equal(t, "0.00", domain.FormatAmount(domain.SumRates(nil)))
}

func TestSourceDocumentVariants(t *testing.T) {
	var docs = []domain.SourceDocument{
		&domain.SaleOrder{Name: "S00012", Currency: "EUR", AmountTotal: dec("30")},
		&domain.Invoice{Name: "INV/2024/0001", Currency: "EUR", Residual: dec("12.5")},
	}

	assert.Equal(t, domain.KindSaleOrder, docs[0].Kind())
	assert.Equal(t, "30.00", domain.FormatAmount(docs[0].PayableAmount()))
	assert.Equal(t, domain.KindInvoice, docs[1].Kind())
	assert.Equal(t, "INV/2024/0001", docs[1].DocumentName())
	assert.Equal(t, "12.50", domain.FormatAmount(docs[1].PayableAmount()))
}
