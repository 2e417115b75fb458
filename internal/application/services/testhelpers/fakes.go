package testhelpers

import (
	"context"
	"slices"
	"sync"

	"github.com/DanielPopoola/mollie-acquirer/internal/domain"
	"github.com/google/uuid"
)

// MemoryMethodRepository keeps methods by code. Fn fields override the
// default behaviour.
type MemoryMethodRepository struct {
	mu      sync.RWMutex
	methods map[string]*domain.PaymentMethod

	Creates int
	Updates int

	ListAllFn func(ctx context.Context) ([]*domain.PaymentMethod, error)
	UpdateFn  func(ctx context.Context, method *domain.PaymentMethod) error
}

func NewMemoryMethodRepository(methods ...*domain.PaymentMethod) *MemoryMethodRepository {
	r := &MemoryMethodRepository{methods: make(map[string]*domain.PaymentMethod)}
	for _, m := range methods {
		r.methods[m.Code] = m
	}
	return r
}

func (r *MemoryMethodRepository) ListAll(ctx context.Context) ([]*domain.PaymentMethod, error) {
	if r.ListAllFn != nil {
		return r.ListAllFn(ctx)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sorted(func(*domain.PaymentMethod) bool { return true }), nil
}

func (r *MemoryMethodRepository) ListActive(ctx context.Context) ([]*domain.PaymentMethod, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sorted(func(m *domain.PaymentMethod) bool { return m.Active }), nil
}

func (r *MemoryMethodRepository) FindByCode(ctx context.Context, code string) (*domain.PaymentMethod, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if m, ok := r.methods[code]; ok {
		cp := *m
		return &cp, nil
	}
	return nil, domain.ErrMethodNotFound
}

func (r *MemoryMethodRepository) Create(ctx context.Context, method *domain.PaymentMethod) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *method
	r.methods[method.Code] = &cp
	r.Creates++
	return nil
}

func (r *MemoryMethodRepository) Update(ctx context.Context, method *domain.PaymentMethod) error {
	if r.UpdateFn != nil {
		return r.UpdateFn(ctx, method)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *method
	r.methods[method.Code] = &cp
	r.Updates++
	return nil
}

func (r *MemoryMethodRepository) ReplaceIssuers(ctx context.Context, methodID uuid.UUID, issuerIDs []uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.methods {
		if m.ID == methodID {
			m.IssuerIDs = slices.Clone(issuerIDs)
			return nil
		}
	}
	return domain.ErrMethodNotFound
}

func (r *MemoryMethodRepository) SetShopVisibility(ctx context.Context, code string, activeOnShop bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.methods[code]
	if !ok {
		return domain.ErrMethodNotFound
	}
	m.ActiveOnShop = activeOnShop
	return nil
}

// Get returns the stored method, nil when absent.
func (r *MemoryMethodRepository) Get(code string) *domain.PaymentMethod {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.methods[code]
}

func (r *MemoryMethodRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.methods)
}

func (r *MemoryMethodRepository) sorted(keep func(*domain.PaymentMethod) bool) []*domain.PaymentMethod {
	out := make([]*domain.PaymentMethod, 0, len(r.methods))
	for _, m := range r.methods {
		if keep(m) {
			cp := *m
			out = append(out, &cp)
		}
	}
	slices.SortFunc(out, func(a, b *domain.PaymentMethod) int {
		switch {
		case a.Code < b.Code:
			return -1
		case a.Code > b.Code:
			return 1
		}
		return 0
	})
	return out
}

type MemoryIssuerRepository struct {
	mu      sync.RWMutex
	issuers map[string]*domain.Issuer
}

func NewMemoryIssuerRepository() *MemoryIssuerRepository {
	return &MemoryIssuerRepository{issuers: make(map[string]*domain.Issuer)}
}

func (r *MemoryIssuerRepository) FindByCode(ctx context.Context, code string) (*domain.Issuer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i, ok := r.issuers[code]; ok {
		return i, nil
	}
	return nil, domain.ErrIssuerNotFound
}

func (r *MemoryIssuerRepository) Create(ctx context.Context, issuer *domain.Issuer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.issuers[issuer.Code] = issuer
	return nil
}

func (r *MemoryIssuerRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.issuers)
}

type MemoryIconStore struct {
	mu    sync.RWMutex
	icons map[string]*domain.Icon
}

func NewMemoryIconStore() *MemoryIconStore {
	return &MemoryIconStore{icons: make(map[string]*domain.Icon)}
}

func (s *MemoryIconStore) FindByName(ctx context.Context, name string) (*domain.Icon, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i, ok := s.icons[name]; ok {
		return i, nil
	}
	return nil, domain.ErrIconNotFound
}

func (s *MemoryIconStore) Create(ctx context.Context, icon *domain.Icon) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.icons[icon.Name] = icon
	return nil
}

func (s *MemoryIconStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.icons)
}

type MemoryTransactionRepository struct {
	mu           sync.RWMutex
	transactions map[uuid.UUID]*domain.Transaction
}

func NewMemoryTransactionRepository(txs ...*domain.Transaction) *MemoryTransactionRepository {
	r := &MemoryTransactionRepository{transactions: make(map[uuid.UUID]*domain.Transaction)}
	for _, tx := range txs {
		r.transactions[tx.ID] = tx
	}
	return r
}

func (r *MemoryTransactionRepository) FindByReference(ctx context.Context, reference string) (*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, tx := range r.transactions {
		if tx.Reference == reference {
			cp := *tx
			return &cp, nil
		}
	}
	return nil, domain.NewNotFoundError("transaction", domain.ErrTransactionNotFound)
}

func (r *MemoryTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if tx, ok := r.transactions[id]; ok {
		cp := *tx
		return &cp, nil
	}
	return nil, domain.NewNotFoundError("transaction", domain.ErrTransactionNotFound)
}

func (r *MemoryTransactionRepository) SetAcquirerReference(ctx context.Context, id uuid.UUID, ref string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	tx, ok := r.transactions[id]
	if !ok {
		return domain.ErrTransactionNotFound
	}
	tx.AcquirerReference = ref
	return nil
}

func (r *MemoryTransactionRepository) UpdateState(ctx context.Context, id uuid.UUID, state domain.TransactionState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	tx, ok := r.transactions[id]
	if !ok {
		return domain.ErrTransactionNotFound
	}
	tx.State = state
	return nil
}

// Get returns the stored transaction, nil when absent.
func (r *MemoryTransactionRepository) Get(id uuid.UUID) *domain.Transaction {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.transactions[id]
}

type MemoryDocuments struct {
	docs map[uuid.UUID]domain.SourceDocument
}

func NewMemoryDocuments(docs ...domain.SourceDocument) *MemoryDocuments {
	d := &MemoryDocuments{docs: make(map[uuid.UUID]domain.SourceDocument)}
	for _, doc := range docs {
		switch v := doc.(type) {
		case *domain.SaleOrder:
			d.docs[v.ID] = v
		case *domain.Invoice:
			d.docs[v.ID] = v
		}
	}
	return d
}

func (d *MemoryDocuments) SourceDocument(ctx context.Context, ref domain.DocumentRef) (domain.SourceDocument, error) {
	if doc, ok := d.docs[ref.ID]; ok && doc.Kind() == ref.Kind {
		return doc, nil
	}
	return nil, domain.NewNotFoundError("source document", domain.ErrDocumentNotFound)
}

// RecordingUnitOfWork runs fn directly and counts outcomes. Writes are not
// undone; tests assert on RolledBack instead.
type RecordingUnitOfWork struct {
	mu         sync.Mutex
	Committed  int
	RolledBack int
}

func (u *RecordingUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	err := fn(ctx)
	u.mu.Lock()
	defer u.mu.Unlock()
	if err != nil {
		u.RolledBack++
		return err
	}
	u.Committed++
	return nil
}
