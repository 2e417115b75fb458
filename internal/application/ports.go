package application

import (
	"context"

	"github.com/DanielPopoola/mollie-acquirer/internal/domain"
	"github.com/google/uuid"
)

// GatewayClient is the port for the Mollie API.
type GatewayClient interface {
	CreateOrder(ctx context.Context, req OrderRequest) (*GatewayResponse, error)
	CreatePayment(ctx context.Context, req PaymentRequest) (*GatewayResponse, error)
	GetOrder(ctx context.Context, id string) (*GatewayResponse, error)
	GetPayment(ctx context.Context, id string) (*GatewayResponse, error)
	ListMethods(ctx context.Context, params MethodListParams) (*MethodList, error)
}

// ImageFetcher downloads method and issuer icons.
type ImageFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// MethodRepository stores the mirrored method catalog. ListAll includes
// inactive methods.
type MethodRepository interface {
	ListAll(ctx context.Context) ([]*domain.PaymentMethod, error)
	ListActive(ctx context.Context) ([]*domain.PaymentMethod, error)
	FindByCode(ctx context.Context, code string) (*domain.PaymentMethod, error)
	Create(ctx context.Context, method *domain.PaymentMethod) error
	Update(ctx context.Context, method *domain.PaymentMethod) error
	ReplaceIssuers(ctx context.Context, methodID uuid.UUID, issuerIDs []uuid.UUID) error
	SetShopVisibility(ctx context.Context, code string, activeOnShop bool) error
}

type IssuerRepository interface {
	FindByCode(ctx context.Context, code string) (*domain.Issuer, error)
	Create(ctx context.Context, issuer *domain.Issuer) error
}

// IconStore keeps icons keyed by display name.
type IconStore interface {
	FindByName(ctx context.Context, name string) (*domain.Icon, error)
	Create(ctx context.Context, icon *domain.Icon) error
}

type TransactionRepository interface {
	FindByReference(ctx context.Context, reference string) (*domain.Transaction, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	SetAcquirerReference(ctx context.Context, id uuid.UUID, ref string) error
	UpdateState(ctx context.Context, id uuid.UUID, state domain.TransactionState) error
}

// DocumentAccessor loads the sale order or invoice a transaction pays.
type DocumentAccessor interface {
	SourceDocument(ctx context.Context, ref domain.DocumentRef) (domain.SourceDocument, error)
}

// UnitOfWork runs fn in a database transaction carried by the context it
// passes to fn. An error returned by fn rolls everything back.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
