package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod is a gateway payment method mirrored locally. Records are
// never deleted: past transactions keep referencing the method code.
type PaymentMethod struct {
	ID                 uuid.UUID
	Code               string
	Name               string
	MinAmount          decimal.Decimal
	MaxAmount          decimal.Decimal // zero means unbounded
	Active             bool
	ActiveOnShop       bool
	SupportsOrderAPI   bool
	SupportsPaymentAPI bool
	IconID             *uuid.UUID
	IssuerIDs          []uuid.UUID
}

// NewPaymentMethod builds an active method from a catalog entry.
func NewPaymentMethod(d MethodDescriptor) *PaymentMethod {
	m := &PaymentMethod{
		ID:           uuid.New(),
		Code:         d.Code,
		Name:         d.Description,
		ActiveOnShop: true,
	}
	m.Refresh(d)
	return m
}

// Refresh copies limits and capability flags from a fresh catalog entry and
// reactivates the method.
func (m *PaymentMethod) Refresh(d MethodDescriptor) {
	m.MinAmount = d.MinimumOrZero()
	m.MaxAmount = d.MaximumOrZero()
	m.Active = true
	m.SupportsOrderAPI = d.SupportsOrderAPI
	m.SupportsPaymentAPI = d.SupportsPaymentAPI
}

func (m *PaymentMethod) Deactivate() {
	m.Active = false
}

// AcceptsAmount reports whether amount falls inside the method limits.
func (m *PaymentMethod) AcceptsAmount(amount decimal.Decimal) bool {
	if amount.LessThan(m.MinAmount) {
		return false
	}
	return m.MaxAmount.IsZero() || amount.LessThanOrEqual(m.MaxAmount)
}

// Available is true when the method can be offered at checkout.
func (m *PaymentMethod) Available() bool {
	return m.Active && m.ActiveOnShop
}

// Issuer is a sub-choice of a method (e.g. the payer's bank).
type Issuer struct {
	ID     uuid.UUID
	Code   string
	Name   string
	IconID *uuid.UUID
}

// Icon is a stored image keyed by its display name.
type Icon struct {
	ID    uuid.UUID
	Name  string
	Image []byte
}
