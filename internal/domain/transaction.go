// Package domain holds the acquirer's payment methods, transactions and the
// source documents a transaction is paid against.
package domain

import (
	"errors"
	"slices"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionState is the host-side lifecycle of a payment attempt.
type TransactionState string

const (
	StateDraft   TransactionState = "draft"
	StatePending TransactionState = "pending"
	StateDone    TransactionState = "done"
	StateCancel  TransactionState = "cancel"
	StateError   TransactionState = "error"
)

var ErrInvalidTransition = errors.New("invalid transaction state transition")

// Transaction is an in-progress payment attempt owned by the host checkout.
// The acquirer only reads it and writes back AcquirerReference and State.
type Transaction struct {
	ID                uuid.UUID
	Reference         string
	Amount            decimal.Decimal
	Currency          string
	MethodCode        string
	CardToken         string
	IssuerCode        string
	AcquirerReference string
	State             TransactionState
	Document          *DocumentRef
}

// DocumentRef points at the sale order or invoice the transaction pays.
type DocumentRef struct {
	Kind DocumentKind
	ID   uuid.UUID
}

func (t *Transaction) Money() Money {
	return Money{Value: t.Amount, Currency: t.Currency}
}

// SetAcquirerReference records the gateway id. Some methods complete before
// any redirect, so the id must be stored as soon as the gateway returns it.
func (t *Transaction) SetAcquirerReference(ref string) {
	t.AcquirerReference = ref
}

// MarkDone is the paid feedback transition.
func (t *Transaction) MarkDone() error {
	return t.transition(StateDone)
}

func (t *Transaction) transition(target TransactionState) error {
	if t.State == target {
		return nil
	}
	if err := t.canTransitionTo(target); err != nil {
		return err
	}
	t.State = target
	return nil
}

func (t *Transaction) canTransitionTo(target TransactionState) error {
	switch t.State {
	case StateDraft, "":
		return allow(target, StatePending, StateDone, StateCancel, StateError)
	case StatePending:
		return allow(target, StateDone, StateCancel, StateError)
	}
	return ErrInvalidTransition
}

func allow(target TransactionState, allowed ...TransactionState) error {
	if slices.Contains(allowed, target) {
		return nil
	}
	return ErrInvalidTransition
}

// IsTerminal reports a transaction the host has closed; it must not be
// sent to the gateway again.
func (t *Transaction) IsTerminal() bool {
	switch t.State {
	case StateDone, StateCancel, StateError:
		return true
	default:
		return false
	}
}
