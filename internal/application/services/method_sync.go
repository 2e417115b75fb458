package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/DanielPopoola/mollie-acquirer/internal/application"
	"github.com/DanielPopoola/mollie-acquirer/internal/domain"
	"github.com/google/uuid"
)

// MethodSyncService mirrors the gateway's method catalog into local records.
type MethodSyncService struct {
	gateway application.GatewayClient
	methods application.MethodRepository
	issuers application.IssuerRepository
	icons   application.IconStore
	images  application.ImageFetcher
	uow     application.UnitOfWork
	logger  *slog.Logger

	// serializes Sync between the worker and the REST trigger
	mu sync.Mutex
}

func NewMethodSyncService(
	gateway application.GatewayClient,
	methods application.MethodRepository,
	issuers application.IssuerRepository,
	icons application.IconStore,
	images application.ImageFetcher,
	uow application.UnitOfWork,
	logger *slog.Logger,
) *MethodSyncService {
	return &MethodSyncService{
		gateway: gateway,
		methods: methods,
		issuers: issuers,
		icons:   icons,
		images:  images,
		uow:     uow,
		logger:  logger,
	}
}

// Sync fetches the catalog and reconciles it. A failed or empty listing
// leaves local records untouched.
func (s *MethodSyncService) Sync(ctx context.Context) (SyncReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	catalog, err := s.FetchActiveMethods(ctx)
	if err != nil {
		s.logger.Warn("method sync skipped, gateway listing failed", "error", err)
		return SyncReport{Skipped: true}, nil
	}
	if len(catalog) == 0 {
		s.logger.Warn("method sync skipped, gateway returned no methods")
		return SyncReport{Skipped: true}, nil
	}

	report, err := s.SyncMethods(ctx, catalog)
	if err != nil {
		return SyncReport{}, err
	}

	s.logger.Info("payment methods synchronized",
		"created", report.Created,
		"updated", report.Updated,
		"deactivated", report.Deactivated,
	)
	return report, nil
}

// FetchActiveMethods merges the orders listing (with issuers) and the
// payments listing by method code. Base fields come from the orders listing.
func (s *MethodSyncService) FetchActiveMethods(ctx context.Context) (map[string]domain.MethodDescriptor, error) {
	orderMethods, err := s.gateway.ListMethods(ctx, application.MethodListParams{
		Resource: "orders",
		Include:  "issuers",
	})
	if err != nil {
		return nil, fmt.Errorf("list order methods: %w", err)
	}

	paymentMethods, err := s.gateway.ListMethods(ctx, application.MethodListParams{})
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}

	return mergeMethodListings(orderMethods, paymentMethods)
}

func mergeMethodListings(orders, payments *application.MethodList) (map[string]domain.MethodDescriptor, error) {
	result := make(map[string]domain.MethodDescriptor)

	if orders != nil && orders.Count > 0 {
		for _, entry := range orders.Embedded.Methods {
			d, err := toDescriptor(entry)
			if err != nil {
				return nil, err
			}
			d.SupportsOrderAPI = true
			result[entry.ID] = d
		}
	}

	if payments != nil && payments.Count > 0 {
		for _, entry := range payments.Embedded.Methods {
			if d, ok := result[entry.ID]; ok {
				d.SupportsPaymentAPI = true
				result[entry.ID] = d
				continue
			}
			d, err := toDescriptor(entry)
			if err != nil {
				return nil, err
			}
			d.SupportsPaymentAPI = true
			result[entry.ID] = d
		}
	}

	return result, nil
}

func toDescriptor(entry application.MethodEntry) (domain.MethodDescriptor, error) {
	d := domain.MethodDescriptor{
		Code:        entry.ID,
		Description: entry.Description,
		ImageURL:    entry.Image.Size2x,
	}

	if entry.MinimumAmount != nil {
		v, err := domain.ParseAmount(entry.MinimumAmount.Value)
		if err != nil {
			return d, fmt.Errorf("method %s minimum: %w", entry.ID, err)
		}
		d.MinimumAmount = &v
	}
	if entry.MaximumAmount != nil {
		v, err := domain.ParseAmount(entry.MaximumAmount.Value)
		if err != nil {
			return d, fmt.Errorf("method %s maximum: %w", entry.ID, err)
		}
		d.MaximumAmount = &v
	}

	for _, issuer := range entry.Issuers {
		d.Issuers = append(d.Issuers, domain.IssuerDescriptor{
			Code:     issuer.ID,
			Name:     issuer.Name,
			ImageURL: issuer.Image.Size2x,
		})
	}
	return d, nil
}

// SyncMethods reconciles local methods against catalog in one database
// transaction. Known methods, inactive ones included, are refreshed or
// deactivated; unknown codes are created with their issuers and icon.
// Nothing is ever deleted.
func (s *MethodSyncService) SyncMethods(ctx context.Context, catalog map[string]domain.MethodDescriptor) (SyncReport, error) {
	var report SyncReport

	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		existing, err := s.methods.ListAll(ctx)
		if err != nil {
			return fmt.Errorf("list local methods: %w", err)
		}

		known := make(map[string]bool, len(existing))
		for _, method := range existing {
			known[method.Code] = true

			if d, ok := catalog[method.Code]; ok {
				method.Refresh(d)
				report.Updated++
			} else {
				if method.Active {
					report.Deactivated++
				}
				method.Deactivate()
			}

			if err := s.methods.Update(ctx, method); err != nil {
				return fmt.Errorf("update method %s: %w", method.Code, err)
			}
		}

		for _, code := range slices.Sorted(maps.Keys(catalog)) {
			if known[code] {
				continue
			}
			if err := s.createMethod(ctx, catalog[code]); err != nil {
				return fmt.Errorf("create method %s: %w", code, err)
			}
			report.Created++
		}
		return nil
	})
	if err != nil {
		return SyncReport{}, err
	}

	return report, nil
}

func (s *MethodSyncService) createMethod(ctx context.Context, d domain.MethodDescriptor) error {
	method := domain.NewPaymentMethod(d)

	for _, issuerDesc := range d.Issuers {
		issuer, err := s.ensureIssuer(ctx, issuerDesc)
		if err != nil {
			return err
		}
		method.IssuerIDs = append(method.IssuerIDs, issuer.ID)
	}

	icon, err := s.ensureIcon(ctx, d.Description, d.ImageURL)
	if err != nil {
		return err
	}
	if icon != nil {
		method.IconID = &icon.ID
	}

	if err := s.methods.Create(ctx, method); err != nil {
		return err
	}

	if len(method.IssuerIDs) > 0 {
		return s.methods.ReplaceIssuers(ctx, method.ID, method.IssuerIDs)
	}
	return nil
}

// ensureIssuer returns the stored issuer for the code, creating it on first
// sight. Existing issuers are never updated.
func (s *MethodSyncService) ensureIssuer(ctx context.Context, d domain.IssuerDescriptor) (*domain.Issuer, error) {
	issuer, err := s.issuers.FindByCode(ctx, d.Code)
	if err == nil {
		return issuer, nil
	}
	if !errors.Is(err, domain.ErrIssuerNotFound) {
		return nil, err
	}

	issuer = &domain.Issuer{
		ID:   uuid.New(),
		Code: d.Code,
		Name: d.Name,
	}

	icon, err := s.ensureIcon(ctx, d.Name, d.ImageURL)
	if err != nil {
		return nil, err
	}
	if icon != nil {
		issuer.IconID = &icon.ID
	}

	if err := s.issuers.Create(ctx, issuer); err != nil {
		return nil, fmt.Errorf("create issuer %s: %w", d.Code, err)
	}
	return issuer, nil
}

// ensureIcon looks an icon up by name and downloads it when missing. A nil
// icon with a nil error means there is nothing to link.
func (s *MethodSyncService) ensureIcon(ctx context.Context, name, imageURL string) (*domain.Icon, error) {
	icon, err := s.icons.FindByName(ctx, name)
	if err == nil {
		return icon, nil
	}
	if !errors.Is(err, domain.ErrIconNotFound) {
		return nil, err
	}

	if imageURL == "" {
		return nil, nil
	}

	image, err := s.images.Fetch(ctx, imageURL)
	if err != nil {
		s.logger.Warn("icon download failed", "name", name, "url", imageURL, "error", err)
		return nil, nil
	}

	icon = &domain.Icon{
		ID:    uuid.New(),
		Name:  name,
		Image: image,
	}
	if err := s.icons.Create(ctx, icon); err != nil {
		return nil, fmt.Errorf("create icon %s: %w", name, err)
	}
	return icon, nil
}
