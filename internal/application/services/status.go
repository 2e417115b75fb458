package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/DanielPopoola/mollie-acquirer/internal/application"
	"github.com/DanielPopoola/mollie-acquirer/internal/domain"
)

const (
	orderRefPrefix   = "ord_"
	paymentRefPrefix = "tr_"
)

type PaymentStatus struct {
	ID     string
	Status string
	Method string
}

// GatewayStatus is the gateway's current view of a transaction.
type GatewayStatus struct {
	Reference         string
	AcquirerReference string
	Resource          string
	Status            string
	CheckoutURL       string
	Payments          []PaymentStatus
}

type StatusService struct {
	transactions application.TransactionRepository
	gateway      application.GatewayClient
	logger       *slog.Logger
}

func NewStatusService(
	transactions application.TransactionRepository,
	gateway application.GatewayClient,
	logger *slog.Logger,
) *StatusService {
	return &StatusService{
		transactions: transactions,
		gateway:      gateway,
		logger:       logger,
	}
}

// GatewayStatus reads the order (with embedded payments) or the payment
// behind the transaction, chosen by the acquirer reference prefix.
func (s *StatusService) GatewayStatus(ctx context.Context, reference string) (*GatewayStatus, error) {
	if reference == "" {
		return nil, domain.NewMissingReferenceError()
	}

	tx, err := s.transactions.FindByReference(ctx, reference)
	if err != nil {
		return nil, err
	}

	ref := tx.AcquirerReference
	var resp *application.GatewayResponse
	switch {
	case strings.HasPrefix(ref, orderRefPrefix):
		resp, err = s.gateway.GetOrder(ctx, ref)
	case strings.HasPrefix(ref, paymentRefPrefix):
		resp, err = s.gateway.GetPayment(ctx, ref)
	default:
		return nil, domain.NewUnknownAcquirerReferenceError(ref)
	}
	if err != nil {
		s.logger.Warn("gateway status lookup failed",
			"method", tx.MethodCode,
			"reference", tx.Reference,
			"acquirer_reference", ref,
			"error", err,
		)
		return nil, application.NewGatewayError(err)
	}

	status := &GatewayStatus{
		Reference:         tx.Reference,
		AcquirerReference: ref,
		Resource:          resp.Resource,
		Status:            resp.Status,
		CheckoutURL:       resp.CheckoutURL(),
	}
	for _, p := range resp.Embedded.Payments {
		status.Payments = append(status.Payments, PaymentStatus{
			ID:     p.ID,
			Status: p.Status,
			Method: p.Method,
		})
	}
	return status, nil
}
