package domain

import (
	"github.com/shopspring/decimal"
)

// Money is a currency-scoped decimal amount.
type Money struct {
	Value    decimal.Decimal
	Currency string
}

// Fixed renders the value with exactly two decimals, the format the gateway expects.
func (m Money) Fixed() string {
	return FormatAmount(m.Value)
}

func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// ParseAmount parses a gateway amount value. An empty value is zero.
func ParseAmount(value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, NewInvalidAmountError(value)
	}
	return d, nil
}
