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

type TransactionRepository struct {
	db *DB
}

var _ application.TransactionRepository = (*TransactionRepository)(nil)

func NewTransactionRepository(db *DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

const transactionColumns = `
	id, reference, amount::text, currency, method_code, card_token, issuer_code,
	acquirer_reference, state, sale_order_id, invoice_id
`

// FindByReference locks the row when called inside a transaction, so two
// checkouts of the same reference cannot interleave.
func (r *TransactionRepository) FindByReference(ctx context.Context, reference string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM payment_transactions WHERE reference = $1`
	if _, inTx := ctx.Value(txKey{}).(pgx.Tx); inTx {
		query += ` FOR UPDATE`
	}
	return r.find(ctx, query, reference)
}

func (r *TransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM payment_transactions WHERE id = $1`
	return r.find(ctx, query, id)
}

func (r *TransactionRepository) SetAcquirerReference(ctx context.Context, id uuid.UUID, ref string) error {
	query := `UPDATE payment_transactions SET acquirer_reference = $2, updated_at = NOW() WHERE id = $1`
	return r.update(ctx, query, id, ref)
}

func (r *TransactionRepository) UpdateState(ctx context.Context, id uuid.UUID, state domain.TransactionState) error {
	query := `UPDATE payment_transactions SET state = $2, updated_at = NOW() WHERE id = $1`
	return r.update(ctx, query, id, string(state))
}

func (r *TransactionRepository) find(ctx context.Context, query string, arg any) (*domain.Transaction, error) {
	var m transactionModel
	err := r.db.executor(ctx).QueryRow(ctx, query, arg).Scan(
		&m.ID,
		&m.Reference,
		&m.Amount,
		&m.Currency,
		&m.MethodCode,
		&m.CardToken,
		&m.IssuerCode,
		&m.AcquirerReference,
		&m.State,
		&m.SaleOrderID,
		&m.InvoiceID,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrTransactionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}
	return toDomainTransaction(m)
}

func (r *TransactionRepository) update(ctx context.Context, query string, args ...any) error {
	tag, err := r.db.executor(ctx).Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}
