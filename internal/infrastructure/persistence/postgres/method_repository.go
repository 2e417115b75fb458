package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/DanielPopoola/mollie-acquirer/internal/application"
	"github.com/DanielPopoola/mollie-acquirer/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type MethodRepository struct {
	db *DB
}

var _ application.MethodRepository = (*MethodRepository)(nil)

func NewMethodRepository(db *DB) *MethodRepository {
	return &MethodRepository{db: db}
}

const methodColumns = `
	m.id, m.code, m.name, m.min_amount::text, m.max_amount::text,
	m.active, m.active_on_shop, m.supports_order_api, m.supports_payment_api, m.icon_id,
	ARRAY(SELECT mi.issuer_id::text FROM payment_method_issuers mi
	      WHERE mi.method_id = m.id ORDER BY mi.issuer_id)
`

// ListAll returns every method, inactive ones included, ordered by code.
func (r *MethodRepository) ListAll(ctx context.Context) ([]*domain.PaymentMethod, error) {
	query := `SELECT ` + methodColumns + ` FROM payment_methods m ORDER BY m.code`
	return r.list(ctx, query)
}

func (r *MethodRepository) ListActive(ctx context.Context) ([]*domain.PaymentMethod, error) {
	query := `SELECT ` + methodColumns + ` FROM payment_methods m WHERE m.active ORDER BY m.code`
	return r.list(ctx, query)
}

func (r *MethodRepository) FindByCode(ctx context.Context, code string) (*domain.PaymentMethod, error) {
	query := `SELECT ` + methodColumns + ` FROM payment_methods m WHERE m.code = $1`

	row := r.db.executor(ctx).QueryRow(ctx, query, code)
	method, err := scanMethod(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrMethodNotFound
	}
	return method, err
}

func (r *MethodRepository) Create(ctx context.Context, method *domain.PaymentMethod) error {
	query := `
		INSERT INTO payment_methods (
			id, code, name, min_amount, max_amount, active, active_on_shop,
			supports_order_api, supports_payment_api, icon_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.executor(ctx).Exec(ctx, query,
		method.ID,
		method.Code,
		method.Name,
		method.MinAmount.String(),
		method.MaxAmount.String(),
		method.Active,
		method.ActiveOnShop,
		method.SupportsOrderAPI,
		method.SupportsPaymentAPI,
		method.IconID,
	)
	if err != nil {
		return fmt.Errorf("failed to create payment method %s: %w", method.Code, err)
	}
	return nil
}

// Update writes limits, flags and activity. Code and icon never change after
// creation.
func (r *MethodRepository) Update(ctx context.Context, method *domain.PaymentMethod) error {
	query := `
		UPDATE payment_methods
		SET name = $2,
		    min_amount = $3,
		    max_amount = $4,
		    active = $5,
		    active_on_shop = $6,
		    supports_order_api = $7,
		    supports_payment_api = $8,
		    updated_at = NOW()
		WHERE id = $1
	`

	tag, err := r.db.executor(ctx).Exec(ctx, query,
		method.ID,
		method.Name,
		method.MinAmount.String(),
		method.MaxAmount.String(),
		method.Active,
		method.ActiveOnShop,
		method.SupportsOrderAPI,
		method.SupportsPaymentAPI,
	)
	if err != nil {
		return fmt.Errorf("failed to update payment method %s: %w", method.Code, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMethodNotFound
	}
	return nil
}

func (r *MethodRepository) ReplaceIssuers(ctx context.Context, methodID uuid.UUID, issuerIDs []uuid.UUID) error {
	q := r.db.executor(ctx)

	if _, err := q.Exec(ctx, `DELETE FROM payment_method_issuers WHERE method_id = $1`, methodID); err != nil {
		return fmt.Errorf("failed to clear issuers: %w", err)
	}
	if len(issuerIDs) == 0 {
		return nil
	}

	query := `
		INSERT INTO payment_method_issuers (method_id, issuer_id)
		SELECT $1, unnest($2::text[])::uuid
		ON CONFLICT DO NOTHING
	`
	if _, err := q.Exec(ctx, query, methodID, uuidStrings(issuerIDs)); err != nil {
		return fmt.Errorf("failed to link issuers: %w", err)
	}
	return nil
}

func (r *MethodRepository) SetShopVisibility(ctx context.Context, code string, activeOnShop bool) error {
	query := `UPDATE payment_methods SET active_on_shop = $2, updated_at = NOW() WHERE code = $1`

	tag, err := r.db.executor(ctx).Exec(ctx, query, code, activeOnShop)
	if err != nil {
		return fmt.Errorf("failed to set shop visibility of %s: %w", code, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMethodNotFound
	}
	return nil
}

func (r *MethodRepository) list(ctx context.Context, query string, args ...any) ([]*domain.PaymentMethod, error) {
	rows, err := r.db.executor(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment methods: %w", err)
	}
	defer rows.Close()

	var methods []*domain.PaymentMethod
	for rows.Next() {
		method, err := scanMethod(rows)
		if err != nil {
			return nil, err
		}
		methods = append(methods, method)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment methods: %w", err)
	}
	return methods, nil
}

func scanMethod(row pgx.Row) (*domain.PaymentMethod, error) {
	var m methodModel
	err := row.Scan(
		&m.ID,
		&m.Code,
		&m.Name,
		&m.MinAmount,
		&m.MaxAmount,
		&m.Active,
		&m.ActiveOnShop,
		&m.SupportsOrderAPI,
		&m.SupportsPaymentAPI,
		&m.IconID,
		&m.IssuerIDs,
	)
	if err != nil {
		return nil, err
	}
	return toDomainMethod(m)
}
