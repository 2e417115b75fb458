package domain

import "github.com/shopspring/decimal"

// MethodDescriptor is one entry of the merged gateway method catalog.
type MethodDescriptor struct {
	Code               string
	Description        string
	MinimumAmount      *decimal.Decimal
	MaximumAmount      *decimal.Decimal
	ImageURL           string
	Issuers            []IssuerDescriptor
	SupportsOrderAPI   bool
	SupportsPaymentAPI bool
}

type IssuerDescriptor struct {
	Code     string
	Name     string
	ImageURL string
}

func (d MethodDescriptor) MinimumOrZero() decimal.Decimal {
	if d.MinimumAmount == nil {
		return decimal.Zero
	}
	return *d.MinimumAmount
}

func (d MethodDescriptor) MaximumOrZero() decimal.Decimal {
	if d.MaximumAmount == nil {
		return decimal.Zero
	}
	return *d.MaximumAmount
}
