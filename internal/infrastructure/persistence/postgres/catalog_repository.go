package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/DanielPopoola/mollie-acquirer/internal/application"
	"github.com/DanielPopoola/mollie-acquirer/internal/domain"
	"github.com/jackc/pgx/v5"
)

type IssuerRepository struct {
	db *DB
}

var _ application.IssuerRepository = (*IssuerRepository)(nil)

func NewIssuerRepository(db *DB) *IssuerRepository {
	return &IssuerRepository{db: db}
}

func (r *IssuerRepository) FindByCode(ctx context.Context, code string) (*domain.Issuer, error) {
	query := `SELECT id, code, name, icon_id FROM issuers WHERE code = $1`

	var issuer domain.Issuer
	err := r.db.executor(ctx).QueryRow(ctx, query, code).Scan(
		&issuer.ID,
		&issuer.Code,
		&issuer.Name,
		&issuer.IconID,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrIssuerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find issuer %s: %w", code, err)
	}
	return &issuer, nil
}

func (r *IssuerRepository) Create(ctx context.Context, issuer *domain.Issuer) error {
	query := `INSERT INTO issuers (id, code, name, icon_id) VALUES ($1, $2, $3, $4)`

	_, err := r.db.executor(ctx).Exec(ctx, query, issuer.ID, issuer.Code, issuer.Name, issuer.IconID)
	if err != nil {
		return fmt.Errorf("failed to create issuer %s: %w", issuer.Code, err)
	}
	return nil
}

// IconStore keeps icon images keyed by their unique display name.
type IconStore struct {
	db *DB
}

var _ application.IconStore = (*IconStore)(nil)

func NewIconStore(db *DB) *IconStore {
	return &IconStore{db: db}
}

func (s *IconStore) FindByName(ctx context.Context, name string) (*domain.Icon, error) {
	query := `SELECT id, name, image FROM icons WHERE name = $1`

	var icon domain.Icon
	err := s.db.executor(ctx).QueryRow(ctx, query, name).Scan(&icon.ID, &icon.Name, &icon.Image)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrIconNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find icon %s: %w", name, err)
	}
	return &icon, nil
}

func (s *IconStore) Create(ctx context.Context, icon *domain.Icon) error {
	query := `INSERT INTO icons (id, name, image) VALUES ($1, $2, $3)`

	_, err := s.db.executor(ctx).Exec(ctx, query, icon.ID, icon.Name, icon.Image)
	if err != nil {
		return fmt.Errorf("failed to create icon %s: %w", icon.Name, err)
	}
	return nil
}
