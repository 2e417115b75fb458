package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/DanielPopoola/mollie-acquirer/internal/application"
	"github.com/DanielPopoola/mollie-acquirer/internal/domain"
)

// StatusPaid is the gateway status that completes a checkout without a redirect.
const StatusPaid = "paid"

const legacyOrderIDPrefix = "ODOO-"

// errCheckoutRejected unwinds the unit of work when the gateway refuses the
// checkout. It never leaves GenerateCheckoutValues.
var errCheckoutRejected = errors.New("checkout rejected by gateway")

// CheckoutService creates the Mollie order or payment behind a checkout.
type CheckoutService struct {
	transactions application.TransactionRepository
	documents    application.DocumentAccessor
	methods      application.MethodRepository
	gateway      application.GatewayClient
	payloads     *PayloadBuilder
	urls         *URLBuilder
	uow          application.UnitOfWork
	logger       *slog.Logger
}

func NewCheckoutService(
	transactions application.TransactionRepository,
	documents application.DocumentAccessor,
	methods application.MethodRepository,
	gateway application.GatewayClient,
	payloads *PayloadBuilder,
	urls *URLBuilder,
	uow application.UnitOfWork,
	logger *slog.Logger,
) *CheckoutService {
	return &CheckoutService{
		transactions: transactions,
		documents:    documents,
		methods:      methods,
		gateway:      gateway,
		payloads:     payloads,
		urls:         urls,
		uow:          uow,
		logger:       logger,
	}
}

// GenerateCheckoutValues tries the orders API first and falls back to the
// payments API when the order is rejected and the method allows it. A
// rejection that survives the fallback is reported in ErrorMessage with a nil
// error and no local change committed.
func (s *CheckoutService) GenerateCheckoutValues(ctx context.Context, cmd CheckoutCommand) (*CheckoutValues, error) {
	if strings.TrimSpace(cmd.Reference) == "" {
		err := domain.NewMissingReferenceError()
		s.logger.Info("checkout refused", "error", err)
		return nil, err
	}

	values := &CheckoutValues{
		Reference: cmd.Reference,
		BaseURL:   s.urls.BaseURL(),
	}
	locale := domain.ResolveLocale(cmd.Lang)

	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		tx, err := s.transactions.FindByReference(ctx, cmd.Reference)
		if err != nil {
			return err
		}

		if tx.IsTerminal() {
			return domain.NewTransactionClosedError(tx.Reference, tx.State)
		}

		if tx.CardToken != "" && tx.IssuerCode != "" {
			return domain.NewAmbiguousPaymentDetailsError(tx.Reference)
		}

		resp, rejection, err := s.submit(ctx, tx, locale)
		if err != nil {
			return err
		}
		if rejection != "" {
			values.ErrorMessage = rejection
			return errCheckoutRejected
		}

		return s.applyResult(ctx, tx, resp, values)
	})
	if errors.Is(err, errCheckoutRejected) {
		return values, nil
	}
	if err != nil {
		return nil, err
	}

	return values, nil
}

// submit returns either a gateway resource or the rejection message to show.
func (s *CheckoutService) submit(ctx context.Context, tx *domain.Transaction, locale string) (*application.GatewayResponse, string, error) {
	doc, err := s.sourceDocument(ctx, tx)
	if err != nil {
		return nil, "", err
	}

	var orderErr error
	if doc != nil {
		req, err := s.orderRequest(tx, doc, locale)
		if err != nil {
			return nil, "", err
		}

		resp, err := s.gateway.CreateOrder(ctx, req)
		if err == nil {
			return resp, "", nil
		}
		if !application.IsRejection(err) {
			s.logGatewayError("order creation failed", tx, err)
			return nil, "", application.NewGatewayError(err)
		}
		orderErr = err
	}

	method, err := s.methods.FindByCode(ctx, tx.MethodCode)
	if err != nil && !errors.Is(err, domain.ErrMethodNotFound) {
		return nil, "", err
	}

	if method == nil || !method.SupportsPaymentAPI {
		if orderErr != nil {
			s.logGatewayError("order rejected, method has no payments api fallback", tx, orderErr)
			return nil, rejectionMessage(orderErr), nil
		}
		s.logger.Warn("checkout without source document needs the payments api",
			"method", tx.MethodCode,
			"reference", tx.Reference,
		)
		return nil, fmt.Sprintf("payment method %q cannot be used without a sale order or invoice", tx.MethodCode), nil
	}

	if orderErr != nil {
		s.logGatewayError("order rejected, falling back to payments api", tx, orderErr)
	}

	resp, err := s.gateway.CreatePayment(ctx, s.paymentRequest(tx, locale))
	if err == nil {
		return resp, "", nil
	}
	if application.IsRejection(err) {
		s.logGatewayError("payment rejected", tx, err)
		return nil, rejectionMessage(err), nil
	}

	s.logGatewayError("payment creation failed", tx, err)
	return nil, "", application.NewGatewayError(err)
}

// applyResult stores the gateway id right away: some methods complete
// before the payer is redirected.
func (s *CheckoutService) applyResult(ctx context.Context, tx *domain.Transaction, resp *application.GatewayResponse, values *CheckoutValues) error {
	tx.SetAcquirerReference(resp.ID)
	if err := s.transactions.SetAcquirerReference(ctx, tx.ID, resp.ID); err != nil {
		return fmt.Errorf("store acquirer reference: %w", err)
	}

	values.Status = resp.Status

	if resp.Status != StatusPaid {
		values.CheckoutURL = resp.CheckoutURL()
		return nil
	}

	if err := tx.MarkDone(); err != nil {
		return err
	}
	if err := s.transactions.UpdateState(ctx, tx.ID, tx.State); err != nil {
		return fmt.Errorf("mark transaction done: %w", err)
	}

	s.logger.Info("checkout paid without redirect",
		"reference", tx.Reference,
		"acquirer_reference", resp.ID,
	)
	return nil
}

func (s *CheckoutService) sourceDocument(ctx context.Context, tx *domain.Transaction) (domain.SourceDocument, error) {
	if tx.Document == nil {
		return nil, nil
	}
	return s.documents.SourceDocument(ctx, *tx.Document)
}

func (s *CheckoutService) orderRequest(tx *domain.Transaction, doc domain.SourceDocument, locale string) (application.OrderRequest, error) {
	lines, err := s.payloads.BuildLineItems(doc)
	if err != nil {
		return application.OrderRequest{}, err
	}

	kind := string(doc.Kind())
	return application.OrderRequest{
		Method:         tx.MethodCode,
		Amount:         toAmount(tx.Money()),
		BillingAddress: s.payloads.BillingAddress(doc.BillingPartner()),
		OrderNumber:    fmt.Sprintf("%s (%s)", kind, tx.Reference),
		Lines:          lines,
		Metadata: application.Metadata{
			TransactionID: tx.ID.String(),
			Reference:     tx.Reference,
			Type:          kind,
			OrderID:       legacyOrderIDPrefix + tx.Reference,
			Description:   doc.DocumentName(),
		},
		Locale:      locale,
		RedirectURL: s.urls.RedirectURL(tx.ID),
		WebhookURL:  s.webhookURL(tx),
		Payment:     paymentDetails(tx),
	}, nil
}

func (s *CheckoutService) paymentRequest(tx *domain.Transaction, locale string) application.PaymentRequest {
	req := application.PaymentRequest{
		Method:      tx.MethodCode,
		Amount:      toAmount(tx.Money()),
		Description: tx.Reference,
		Metadata: application.Metadata{
			TransactionID: tx.ID.String(),
			Reference:     tx.Reference,
		},
		Locale:      locale,
		RedirectURL: s.urls.RedirectURL(tx.ID),
		WebhookURL:  s.webhookURL(tx),
		CardToken:   tx.CardToken,
	}
	if tx.IssuerCode != "" {
		req.Payment = &application.PaymentDetails{Issuer: tx.IssuerCode}
	}
	return req
}

func (s *CheckoutService) webhookURL(tx *domain.Transaction) string {
	webhook := s.urls.WebhookURL(tx.ID)
	if !WebhookAllowed(webhook) {
		s.logger.Debug("webhook url omitted, not reachable by gateway", "url", webhook)
		return ""
	}
	return webhook
}

func (s *CheckoutService) logGatewayError(msg string, tx *domain.Transaction, err error) {
	s.logger.Warn(msg,
		"method", tx.MethodCode,
		"reference", tx.Reference,
		"category", application.CategorizeError(err),
		"error", err,
	)
}

func paymentDetails(tx *domain.Transaction) *application.PaymentDetails {
	switch {
	case tx.CardToken != "":
		return &application.PaymentDetails{CardToken: tx.CardToken}
	case tx.IssuerCode != "":
		return &application.PaymentDetails{Issuer: tx.IssuerCode}
	default:
		return nil
	}
}

func rejectionMessage(err error) string {
	if gwErr, ok := application.IsGatewayError(err); ok && gwErr.Detail != "" {
		return gwErr.Detail
	}
	return err.Error()
}
