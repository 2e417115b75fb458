package services

import (
	"context"

	"github.com/DanielPopoola/mollie-acquirer/internal/application"
	"github.com/DanielPopoola/mollie-acquirer/internal/domain"
	"github.com/shopspring/decimal"
)

// MethodQueryService answers which methods a checkout may offer.
type MethodQueryService struct {
	methods      application.MethodRepository
	transactions application.TransactionRepository
	documents    application.DocumentAccessor
}

func NewMethodQueryService(
	methods application.MethodRepository,
	transactions application.TransactionRepository,
	documents application.DocumentAccessor,
) *MethodQueryService {
	return &MethodQueryService{
		methods:      methods,
		transactions: transactions,
		documents:    documents,
	}
}

// AvailableMethods lists active, shop-visible methods. With a non-nil amount
// only methods whose limits accept it are returned.
func (s *MethodQueryService) AvailableMethods(ctx context.Context, amount *decimal.Decimal) ([]*domain.PaymentMethod, error) {
	methods, err := s.methods.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	available := make([]*domain.PaymentMethod, 0, len(methods))
	for _, m := range methods {
		if !m.Available() {
			continue
		}
		if amount != nil && !m.AcceptsAmount(*amount) {
			continue
		}
		available = append(available, m)
	}
	return available, nil
}

// AvailableForTransaction filters on what is left to pay on the transaction's
// document: the order total or the invoice residual.
func (s *MethodQueryService) AvailableForTransaction(ctx context.Context, reference string) ([]*domain.PaymentMethod, error) {
	if reference == "" {
		return nil, domain.NewMissingReferenceError()
	}

	tx, err := s.transactions.FindByReference(ctx, reference)
	if err != nil {
		return nil, err
	}

	amount := tx.Amount
	if tx.Document != nil {
		doc, err := s.documents.SourceDocument(ctx, *tx.Document)
		if err != nil {
			return nil, err
		}
		amount = doc.PayableAmount()
	}

	return s.AvailableMethods(ctx, &amount)
}

func (s *MethodQueryService) SetShopVisibility(ctx context.Context, code string, activeOnShop bool) (*domain.PaymentMethod, error) {
	if err := s.methods.SetShopVisibility(ctx, code, activeOnShop); err != nil {
		return nil, err
	}
	return s.methods.FindByCode(ctx, code)
}
