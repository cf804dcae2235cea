package stock_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/puntoventa/minimarket-api/internal/application/stock"
	"github.com/puntoventa/minimarket-api/internal/domain/entity"
	"github.com/puntoventa/minimarket-api/internal/domain/repository"
)

// fakeStore estado en memoria compartido por los repos de prueba. La
// transacción se simula copiando el estado al iniciar y descartando la
// copia si el callback falla (rollback) o promoviéndola si termina bien
// (commit). Run serializa con un mutex, igual que el aislamiento que el
// ledger exige a la capa de almacenamiento.
type fakeStore struct {
	mu        sync.Mutex
	products  map[string]*entity.Product
	customers map[int64]*entity.Customer
	entries   []*entity.StockEntry
	lines     []*entity.StockLine
	logs      []*entity.ActivityLog
	nextNum   int64

	failOn string // "" | "header" | "line" | "increment" | "log"
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products:  make(map[string]*entity.Product),
		customers: make(map[int64]*entity.Customer),
		nextNum:   1,
	}
}

func (s *fakeStore) addProduct(cod string, stock float64, active bool) {
	s.products[cod] = &entity.Product{
		Cod:         cod,
		Description: "producto " + cod,
		Unit:        "UND",
		Stock:       decimal.NewFromFloat(stock),
		Active:      active,
	}
}

func (s *fakeStore) addCustomer(id int64, name string) {
	s.customers[id] = &entity.Customer{ID: id, Doc: "20100000001", Name: name, Type: "EMPRESA"}
}

// snapshot copia profunda del estado mutable.
func (s *fakeStore) snapshot() *fakeStore {
	cp := newFakeStore()
	cp.nextNum = s.nextNum
	cp.failOn = s.failOn
	for k, v := range s.products {
		p := *v
		cp.products[k] = &p
	}
	for k, v := range s.customers {
		c := *v
		cp.customers[k] = &c
	}
	cp.entries = append(cp.entries, s.entries...)
	cp.lines = append(cp.lines, s.lines...)
	cp.logs = append(cp.logs, s.logs...)
	return cp
}

func (s *fakeStore) restore(from *fakeStore) {
	s.products = from.products
	s.customers = from.customers
	s.entries = from.entries
	s.lines = from.lines
	s.logs = from.logs
	s.nextNum = from.nextNum
}

// fakeTxRunner implementa stock.TxRunner sobre el fakeStore.
type fakeTxRunner struct {
	store *fakeStore
}

var _ stock.TxRunner = (*fakeTxRunner)(nil)

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	entryRepo repository.StockEntryRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	logRepo repository.ActivityLogRepository,
) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	staged := r.store.snapshot()
	err := fn(
		&fakeEntryRepo{store: staged},
		&fakeProductRepo{store: staged},
		&fakeCustomerRepo{store: staged},
		&fakeLogRepo{store: staged},
	)
	if err != nil {
		return err // rollback: la copia se descarta
	}
	r.store.restore(staged)
	return nil
}

// ── repos de prueba ───────────────────────────────────────────────────────────

var errSimulated = errors.New("fallo simulado de almacenamiento")

type fakeEntryRepo struct{ store *fakeStore }

var _ repository.StockEntryRepository = (*fakeEntryRepo)(nil)

func (r *fakeEntryRepo) CreateHeader(entry *entity.StockEntry) error {
	if r.store.failOn == "header" {
		return errSimulated
	}
	entry.ID = int64(len(r.store.entries) + 1)
	entry.Num = r.store.nextNum
	r.store.nextNum++
	entry.Date = time.Now()
	r.store.entries = append(r.store.entries, entry)
	return nil
}

func (r *fakeEntryRepo) CreateLine(line *entity.StockLine) error {
	if r.store.failOn == "line" {
		return errSimulated
	}
	line.ID = int64(len(r.store.lines) + 1)
	r.store.lines = append(r.store.lines, line)
	return nil
}

func (r *fakeEntryRepo) List(repository.StockEntryFilter) ([]*entity.StockEntrySummary, int, error) {
	var out []*entity.StockEntrySummary
	for _, e := range r.store.entries {
		s := &entity.StockEntrySummary{StockEntry: *e}
		for _, l := range r.store.lines {
			if l.EntryID == e.ID {
				s.LineCount++
				s.QuantityTotal = s.QuantityTotal.Add(l.Quantity)
			}
		}
		out = append(out, s)
	}
	return out, len(out), nil
}

func (r *fakeEntryRepo) GetByID(id int64) (*entity.StockEntry, error) {
	for _, e := range r.store.entries {
		if e.ID == id {
			cp := *e
			for _, l := range r.store.lines {
				if l.EntryID == id {
					cp.Lines = append(cp.Lines, *l)
				}
			}
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeEntryRepo) Stats(days int) (*entity.StockEntryStats, error) {
	return &entity.StockEntryStats{Days: days, EntryCount: len(r.store.entries)}, nil
}

type fakeProductRepo struct{ store *fakeStore }

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func (r *fakeProductRepo) FindActiveByCodes(codes []string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, cod := range codes {
		if p, ok := r.store.products[cod]; ok && p.Active {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) IncrementStock(cod string, delta decimal.Decimal) (decimal.Decimal, error) {
	if r.store.failOn == "increment" {
		return decimal.Zero, errSimulated
	}
	p, ok := r.store.products[cod]
	if !ok {
		return decimal.Zero, errSimulated
	}
	p.Stock = p.Stock.Add(delta)
	return p.Stock, nil
}

func (r *fakeProductRepo) Create(*entity.Product) error { return nil }
func (r *fakeProductRepo) GetByCod(cod string) (*entity.ProductListItem, error) {
	if p, ok := r.store.products[cod]; ok {
		return &entity.ProductListItem{Product: *p}, nil
	}
	return nil, nil
}
func (r *fakeProductRepo) List(repository.ProductFilter) ([]*entity.ProductListItem, int, error) {
	return nil, 0, nil
}
func (r *fakeProductRepo) Update(*entity.Product) error          { return nil }
func (r *fakeProductRepo) Delete(string) error                   { return nil }
func (r *fakeProductRepo) HasLedgerLines(string) (bool, error)   { return false, nil }

type fakeCustomerRepo struct{ store *fakeStore }

var _ repository.CustomerRepository = (*fakeCustomerRepo)(nil)

func (r *fakeCustomerRepo) GetByID(id int64) (*entity.Customer, error) {
	if c, ok := r.store.customers[id]; ok {
		return c, nil
	}
	return nil, nil
}

func (r *fakeCustomerRepo) Create(*entity.Customer) error { return nil }
func (r *fakeCustomerRepo) GetByDoc(string) (*entity.Customer, error) {
	return nil, nil
}
func (r *fakeCustomerRepo) List(repository.CustomerFilter) ([]*entity.Customer, int, error) {
	return nil, 0, nil
}
func (r *fakeCustomerRepo) Update(*entity.Customer) error    { return nil }
func (r *fakeCustomerRepo) Delete(int64) error               { return nil }
func (r *fakeCustomerRepo) HasEntries(int64) (bool, error)   { return false, nil }

type fakeLogRepo struct{ store *fakeStore }

var _ repository.ActivityLogRepository = (*fakeLogRepo)(nil)

func (r *fakeLogRepo) Create(log *entity.ActivityLog) error {
	if r.store.failOn == "log" {
		return errSimulated
	}
	r.store.logs = append(r.store.logs, log)
	return nil
}
