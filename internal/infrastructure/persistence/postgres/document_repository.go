package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/DanielPopoola/mollie-acquirer/internal/application"
	"github.com/DanielPopoola/mollie-acquirer/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// DocumentRepository reads the host's sale orders and invoices.
type DocumentRepository struct {
	db *DB
}

var _ application.DocumentAccessor = (*DocumentRepository)(nil)

func NewDocumentRepository(db *DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) SourceDocument(ctx context.Context, ref domain.DocumentRef) (domain.SourceDocument, error) {
	var (
		doc domain.SourceDocument
		err error
	)
	switch ref.Kind {
	case domain.KindSaleOrder:
		doc, err = r.saleOrder(ctx, ref.ID)
	case domain.KindInvoice:
		doc, err = r.invoice(ctx, ref.ID)
	default:
		return nil, domain.NewUnsupportedDocumentError(ref.Kind)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NewNotFoundError("source document", domain.ErrDocumentNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s %s: %w", ref.Kind, ref.ID, err)
	}
	return doc, nil
}

const partnerColumns = `
	p.name, p.email, p.phone, p.street, p.street2, p.zip, p.city, p.state, p.country_code
`

const productColumns = `pr.id, pr.name, pr.type, pr.website_url`

func (r *DocumentRepository) saleOrder(ctx context.Context, id uuid.UUID) (*domain.SaleOrder, error) {
	q := r.db.executor(ctx)

	query := `
		SELECT s.id, s.name, s.currency, s.amount_total::text, ` + partnerColumns + `
		FROM sale_orders s
		JOIN partners p ON p.id = s.partner_id
		WHERE s.id = $1
	`

	order := &domain.SaleOrder{}
	var (
		total   string
		partner partnerModel
	)
	err := q.QueryRow(ctx, query, id).Scan(
		&order.ID, &order.Name, &order.Currency, &total,
		&partner.Name, &partner.Email, &partner.Phone, &partner.Street, &partner.Street2,
		&partner.Zip, &partner.City, &partner.State, &partner.CountryCode,
	)
	if err != nil {
		return nil, err
	}
	if order.AmountTotal, err = decimal.NewFromString(total); err != nil {
		return nil, fmt.Errorf("parse amount_total: %w", err)
	}
	order.Partner = toDomainPartner(partner)

	linesQuery := `
		SELECT l.description, ` + productColumns + `, l.display_type,
		       l.quantity::text, l.price_reduce_taxinc::text, l.price_total::text,
		       l.price_tax::text, l.tax_rates::text[], l.is_delivery, l.currency
		FROM sale_order_lines l
		LEFT JOIN products pr ON pr.id = l.product_id
		WHERE l.sale_order_id = $1
		ORDER BY l.sequence, l.id
	`

	rows, err := q.Query(ctx, linesQuery, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query sale order lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m saleOrderLineModel
		err := rows.Scan(
			&m.Description,
			&m.Product.ID, &m.Product.Name, &m.Product.Type, &m.Product.WebsiteURL,
			&m.DisplayType,
			&m.Quantity,
			&m.PriceReduceTaxInc,
			&m.PriceTotal,
			&m.PriceTax,
			&m.TaxRates,
			&m.IsDelivery,
			&m.Currency,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sale order line: %w", err)
		}
		line, err := toDomainSaleOrderLine(m)
		if err != nil {
			return nil, err
		}
		order.Lines = append(order.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sale order lines: %w", err)
	}

	return order, nil
}

func (r *DocumentRepository) invoice(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	q := r.db.executor(ctx)

	query := `
		SELECT i.id, i.name, i.currency, i.residual::text, ` + partnerColumns + `
		FROM invoices i
		JOIN partners p ON p.id = i.partner_id
		WHERE i.id = $1
	`

	invoice := &domain.Invoice{}
	var (
		residual string
		partner  partnerModel
	)
	err := q.QueryRow(ctx, query, id).Scan(
		&invoice.ID, &invoice.Name, &invoice.Currency, &residual,
		&partner.Name, &partner.Email, &partner.Phone, &partner.Street, &partner.Street2,
		&partner.Zip, &partner.City, &partner.State, &partner.CountryCode,
	)
	if err != nil {
		return nil, err
	}
	if invoice.Residual, err = decimal.NewFromString(residual); err != nil {
		return nil, fmt.Errorf("parse residual: %w", err)
	}
	invoice.Partner = toDomainPartner(partner)

	linesQuery := `
		SELECT l.description, ` + productColumns + `, l.display_type,
		       l.quantity::text, l.price_total::text, l.price_subtotal::text,
		       l.tax_rates::text[], l.currency
		FROM invoice_lines l
		LEFT JOIN products pr ON pr.id = l.product_id
		WHERE l.invoice_id = $1
		ORDER BY l.sequence, l.id
	`

	rows, err := q.Query(ctx, linesQuery, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoice lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m invoiceLineModel
		err := rows.Scan(
			&m.Description,
			&m.Product.ID, &m.Product.Name, &m.Product.Type, &m.Product.WebsiteURL,
			&m.DisplayType,
			&m.Quantity,
			&m.PriceTotal,
			&m.PriceSubtotal,
			&m.TaxRates,
			&m.Currency,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice line: %w", err)
		}
		line, err := toDomainInvoiceLine(m)
		if err != nil {
			return nil, err
		}
		invoice.Lines = append(invoice.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice lines: %w", err)
	}

	return invoice, nil
}
