package inventory_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmaster-api/internal/application/inventory"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// memStore reproduce en memoria lo que garantiza Postgres: Run serializa transacciones
// y descarta todos los cambios si fn falla.
type memStore struct {
	mu        sync.Mutex
	docs      map[string]*entity.Document
	seq       map[entity.DocumentKind]int64
	stock     map[string]*entity.StockLevel
	moves     []*entity.StockMove
	products  map[string]*entity.Product
	locations map[string]*entity.Location
}

func newMemStore() *memStore {
	return &memStore{
		docs:      map[string]*entity.Document{},
		seq:       map[entity.DocumentKind]int64{},
		stock:     map[string]*entity.StockLevel{},
		products:  map[string]*entity.Product{},
		locations: map[string]*entity.Location{},
	}
}

func stockKey(productID, locationID string) string { return productID + "|" + locationID }

func cloneDoc(d *entity.Document) *entity.Document {
	c := *d
	c.Lines = append([]entity.DocumentLine(nil), d.Lines...)
	return &c
}

type snapshot struct {
	docs     map[string]*entity.Document
	seq      map[entity.DocumentKind]int64
	stock    map[string]*entity.StockLevel
	moves    []*entity.StockMove
	products map[string]*entity.Product
}

func (s *memStore) snapshot() snapshot {
	snap := snapshot{
		docs:     make(map[string]*entity.Document, len(s.docs)),
		seq:      make(map[entity.DocumentKind]int64, len(s.seq)),
		stock:    make(map[string]*entity.StockLevel, len(s.stock)),
		moves:    append([]*entity.StockMove(nil), s.moves...),
		products: make(map[string]*entity.Product, len(s.products)),
	}
	for k, v := range s.products {
		snap.products[k] = v
	}
	for k, v := range s.docs {
		snap.docs[k] = cloneDoc(v)
	}
	for k, v := range s.seq {
		snap.seq[k] = v
	}
	for k, v := range s.stock {
		c := *v
		snap.stock[k] = &c
	}
	return snap
}

func (s *memStore) restore(snap snapshot) {
	s.docs, s.seq, s.stock, s.moves, s.products = snap.docs, snap.seq, snap.stock, snap.moves, snap.products
}

// Run implementa inventory.TxRunner.
func (s *memStore) Run(ctx context.Context, fn func(tx inventory.TxRepos) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.snapshot()
	err := fn(inventory.TxRepos{
		Products:  &memProducts{s: s, inTx: true},
		Documents: &memDocs{s: s, inTx: true},
		Sequences: &memSeq{s: s},
		Stock:     &memStock{s: s, inTx: true},
		Moves:     &memMoves{s: s, inTx: true},
	})
	if err != nil {
		s.restore(snap)
	}
	return err
}

func (s *memStore) lock(inTx bool) func() {
	if inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// helpers de test

func (s *memStore) addProduct(id, sku string) {
	s.products[id] = &entity.Product{ID: id, SKU: sku, Name: "Producto " + sku, IsActive: true}
}

func (s *memStore) addLocation(id, code, name string) {
	s.locations[id] = &entity.Location{ID: id, Code: code, Name: name, IsActive: true}
}

func (s *memStore) setStock(productID, locationID string, qty int64) {
	s.stock[stockKey(productID, locationID)] = &entity.StockLevel{
		ID: stockKey(productID, locationID), ProductID: productID, LocationID: locationID,
		Quantity: decimal.NewFromInt(qty),
	}
}

func (s *memStore) quantity(productID, locationID string) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok := s.stock[stockKey(productID, locationID)]; ok {
		return l.Quantity
	}
	return decimal.Zero
}

// productStock es Product.stock derivado: suma de StockLevel del producto.
func (s *memStore) productStock(productID string) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, l := range s.stock {
		if l.ProductID == productID {
			total = total.Add(l.Quantity)
		}
	}
	return total
}

func (s *memStore) movesFor(documentID string) []*entity.StockMove {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.StockMove
	for _, m := range s.moves {
		if m.DocumentID == documentID {
			out = append(out, m)
		}
	}
	return out
}

func (s *memStore) status(id string) entity.DocumentStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.docs[id].Status
}

// ── documentos ──────────────────────────────────────────────────────────────

type memDocs struct {
	s    *memStore
	inTx bool
}

func (r *memDocs) Create(ctx context.Context, doc *entity.Document) error {
	defer r.s.lock(r.inTx)()
	for _, d := range r.s.docs {
		if d.Kind == doc.Kind && d.Reference == doc.Reference {
			return domain.ErrDuplicateReference
		}
	}
	r.s.docs[doc.ID] = cloneDoc(doc)
	return nil
}

func (r *memDocs) GetByID(ctx context.Context, kind entity.DocumentKind, id string) (*entity.Document, error) {
	defer r.s.lock(r.inTx)()
	d, ok := r.s.docs[id]
	if !ok || d.Kind != kind {
		return nil, domain.ErrNotFound
	}
	return cloneDoc(d), nil
}

func (r *memDocs) GetForUpdate(ctx context.Context, kind entity.DocumentKind, id string) (*entity.Document, error) {
	return r.GetByID(ctx, kind, id)
}

func (r *memDocs) UpdateLineQuantities(ctx context.Context, lines []entity.DocumentLine) error {
	defer r.s.lock(r.inTx)()
	for _, l := range lines {
		d, ok := r.s.docs[l.DocumentID]
		if !ok {
			return domain.ErrNotFound
		}
		for i := range d.Lines {
			if d.Lines[i].ID == l.ID {
				d.Lines[i].Requested, d.Lines[i].Actual = l.Requested, l.Actual
			}
		}
	}
	return nil
}

func (r *memDocs) MarkDone(ctx context.Context, id string, completedAt time.Time) error {
	defer r.s.lock(r.inTx)()
	d, ok := r.s.docs[id]
	if !ok {
		return domain.ErrNotFound
	}
	if d.Status == entity.StatusDone {
		return domain.ErrAlreadyValidated
	}
	d.Status = entity.StatusDone
	d.CompletedDate = &completedAt
	return nil
}

func (r *memDocs) List(ctx context.Context, kind entity.DocumentKind, status entity.DocumentStatus, limit, offset int) ([]*entity.Document, int, error) {
	defer r.s.lock(r.inTx)()
	var all []*entity.Document
	for _, d := range r.s.docs {
		if d.Kind == kind && (status == "" || d.Status == status) {
			all = append(all, cloneDoc(d))
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Reference > all[j].Reference })
	total := len(all)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

type memSeq struct{ s *memStore }

func (r *memSeq) Next(ctx context.Context, kind entity.DocumentKind) (int64, error) {
	r.s.seq[kind]++
	return r.s.seq[kind], nil
}

// ── stock ───────────────────────────────────────────────────────────────────

type memStock struct {
	s    *memStore
	inTx bool
}

func (r *memStock) Get(ctx context.Context, productID, locationID string) (*entity.StockLevel, error) {
	defer r.s.lock(r.inTx)()
	if l, ok := r.s.stock[stockKey(productID, locationID)]; ok {
		c := *l
		return &c, nil
	}
	return &entity.StockLevel{ProductID: productID, LocationID: locationID}, nil
}

func (r *memStock) Increase(ctx context.Context, productID, locationID string, qty decimal.Decimal) (*entity.StockLevel, error) {
	defer r.s.lock(r.inTx)()
	k := stockKey(productID, locationID)
	l, ok := r.s.stock[k]
	if !ok {
		l = &entity.StockLevel{ID: k, ProductID: productID, LocationID: locationID}
		r.s.stock[k] = l
	}
	l.Quantity = l.Quantity.Add(qty)
	c := *l
	return &c, nil
}

func (r *memStock) Decrease(ctx context.Context, productID, locationID string, qty decimal.Decimal) (*entity.StockLevel, error) {
	defer r.s.lock(r.inTx)()
	l, ok := r.s.stock[stockKey(productID, locationID)]
	if !ok || l.Quantity.LessThan(qty) {
		avail := decimal.Zero
		if ok {
			avail = l.Quantity
		}
		return nil, &domain.InsufficientStockError{ProductID: productID, LocationID: locationID, Requested: qty, Available: avail}
	}
	l.Quantity = l.Quantity.Sub(qty)
	c := *l
	return &c, nil
}

func (r *memStock) ListByProduct(ctx context.Context, productID string) ([]entity.StockLevelView, error) {
	defer r.s.lock(r.inTx)()
	var out []entity.StockLevelView
	for _, l := range r.s.stock {
		if l.ProductID == productID {
			out = append(out, entity.StockLevelView{StockLevel: *l})
		}
	}
	return out, nil
}

// ── movimientos ─────────────────────────────────────────────────────────────

type memMoves struct {
	s    *memStore
	inTx bool
}

func (r *memMoves) Create(ctx context.Context, m *entity.StockMove) error {
	defer r.s.lock(r.inTx)()
	c := *m
	r.s.moves = append(r.s.moves, &c)
	return nil
}

func (r *memMoves) List(ctx context.Context, f repository.MoveFilter) ([]*entity.StockMoveView, int, error) {
	defer r.s.lock(r.inTx)()
	var out []*entity.StockMoveView
	for _, m := range r.s.moves {
		if f.ProductID != "" && m.ProductID != f.ProductID {
			continue
		}
		if f.DocumentType != "" && m.DocumentType != f.DocumentType {
			continue
		}
		if f.StartDate != nil && m.Date.Before(*f.StartDate) {
			continue
		}
		if f.EndDate != nil && m.Date.After(*f.EndDate) {
			continue
		}
		out = append(out, &entity.StockMoveView{StockMove: *m})
	}
	return out, len(out), nil
}

func (r *memMoves) CountByDocument(ctx context.Context, documentID string) (int, error) {
	defer r.s.lock(r.inTx)()
	n := 0
	for _, m := range r.s.moves {
		if m.DocumentID == documentID {
			n++
		}
	}
	return n, nil
}

// ── catálogo ────────────────────────────────────────────────────────────────

type memProducts struct {
	s    *memStore
	inTx bool
}

func (r *memProducts) Create(ctx context.Context, p *entity.Product) error {
	defer r.s.lock(r.inTx)()
	for _, existing := range r.s.products {
		if existing.SKU == p.SKU {
			return domain.ErrDuplicate
		}
	}
	r.s.products[p.ID] = p
	return nil
}

func (r *memProducts) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	defer r.s.lock(r.inTx)()
	p, ok := r.s.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c := *p
	return &c, nil
}

func (r *memProducts) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	defer r.s.lock(r.inTx)()
	for _, p := range r.s.products {
		if p.SKU == sku {
			c := *p
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memProducts) Update(ctx context.Context, p *entity.Product) error         { return nil }
func (r *memProducts) Deactivate(ctx context.Context, id string) error             { return nil }
func (r *memProducts) ListLowStock(ctx context.Context) ([]*entity.Product, error) { return nil, nil }
func (r *memProducts) List(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, int, error) {
	return nil, 0, nil
}

type memLocations struct{ s *memStore }

func (r *memLocations) Create(ctx context.Context, l *entity.Location) error { return nil }

func (r *memLocations) GetByID(ctx context.Context, id string) (*entity.Location, error) {
	defer r.s.lock(false)()
	l, ok := r.s.locations[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return l, nil
}

func (r *memLocations) Resolve(ctx context.Context, ref string) (*entity.Location, error) {
	defer r.s.lock(false)()
	if l, ok := r.s.locations[ref]; ok {
		return l, nil
	}
	for _, l := range r.s.locations {
		if l.Code == ref || l.Name == ref {
			return l, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memLocations) List(ctx context.Context, warehouseID string) ([]*entity.Location, error) {
	return nil, nil
}

// observer de test
type countingObserver struct {
	mu    sync.Mutex
	calls int
}

func (o *countingObserver) StockChanged(ctx context.Context, doc *entity.Document) {
	o.mu.Lock()
	o.calls++
	o.mu.Unlock()
}

func newUseCase(s *memStore, obs ...inventory.StockObserver) *inventory.DocumentUseCase {
	return inventory.NewDocumentUseCase(
		s,
		&memDocs{s: s},
		&memProducts{s: s},
		&memLocations{s: s},
		&memStock{s: s},
		&memMoves{s: s},
		obs...,
	)
}
