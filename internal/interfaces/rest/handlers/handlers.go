package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/mollie-acquirer/internal/application"
	"github.com/DanielPopoola/mollie-acquirer/internal/application/services"
	"github.com/DanielPopoola/mollie-acquirer/internal/domain"
	"github.com/DanielPopoola/mollie-acquirer/internal/interfaces/rest"
	"github.com/go-playground/validator"
	"github.com/shopspring/decimal"
)

type CheckoutService interface {
	GenerateCheckoutValues(ctx context.Context, cmd services.CheckoutCommand) (*services.CheckoutValues, error)
}

type MethodSyncer interface {
	Sync(ctx context.Context) (services.SyncReport, error)
}

type MethodQuery interface {
	AvailableMethods(ctx context.Context, amount *decimal.Decimal) ([]*domain.PaymentMethod, error)
	AvailableForTransaction(ctx context.Context, reference string) ([]*domain.PaymentMethod, error)
	SetShopVisibility(ctx context.Context, code string, activeOnShop bool) (*domain.PaymentMethod, error)
}

type StatusQuery interface {
	GatewayStatus(ctx context.Context, reference string) (*services.GatewayStatus, error)
}

type Handlers struct {
	checkout CheckoutService
	syncer   MethodSyncer
	methods  MethodQuery
	status   StatusQuery
	validate *validator.Validate
	logger   *slog.Logger
}

func NewHandlers(
	checkout CheckoutService,
	syncer MethodSyncer,
	methods MethodQuery,
	status StatusQuery,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		checkout: checkout,
		syncer:   syncer,
		methods:  methods,
		status:   status,
		validate: validator.New(),
		logger:   logger,
	}
}

func (h *Handlers) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /payment/mollie/checkout", h.HandleCheckout)
	mux.HandleFunc("GET /payment/mollie/transactions/{reference}/methods", h.HandleTransactionMethods)
	mux.HandleFunc("GET /payment/mollie/transactions/{reference}/status", h.HandleTransactionStatus)
	mux.HandleFunc("POST /mollie/methods/sync", h.HandleSyncMethods)
	mux.HandleFunc("GET /mollie/methods", h.HandleListMethods)
	mux.HandleFunc("PUT /mollie/methods/{code}/shop-visibility", h.HandleShopVisibility)
}

// decodeAndValidate reads a JSON body into dst and checks its validate tags.
func (h *Handlers) decodeAndValidate(r *http.Request, dst any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return application.NewInvalidInputError(err)
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return application.NewInvalidInputError(err)
	}
	if err := h.validate.Struct(dst); err != nil {
		return application.NewInvalidInputError(err)
	}
	return nil
}

func (h *Handlers) fail(w http.ResponseWriter, err error) {
	rest.WriteError(w, err, h.logger)
}
