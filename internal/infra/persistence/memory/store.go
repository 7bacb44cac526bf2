// Package memory is an in-process implementation of the repository ports for
// local development and tests. Data is lost on restart.
package memory

import (
	"context"
	"sync"
	"time"

	"whatsorder/internal/domain/entity"
	"whatsorder/internal/domain/repository"
)

// Store holds every table behind one lock. Transactions run on a working
// copy that replaces the committed data only when they succeed.
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex
	data *dataset
	now  func() time.Time
}

// view is what repositories read and write: the committed dataset, or the
// working copy of an open transaction.
type view struct {
	mu   storeLock
	data *dataset
	now  func() time.Time
}

// storeLock takes the transaction lock for writes outside a transaction, so
// they cannot interleave with a transaction's commit.
type storeLock struct {
	tx *sync.Mutex
	rw *sync.RWMutex
}

func (l storeLock) Lock() {
	if l.tx != nil {
		l.tx.Lock()
	}
	l.rw.Lock()
}

func (l storeLock) Unlock() {
	l.rw.Unlock()
	if l.tx != nil {
		l.tx.Unlock()
	}
}

func (l storeLock) RLock() {
	l.rw.RLock()
}

func (l storeLock) RUnlock() {
	l.rw.RUnlock()
}

type sequences struct {
	business int64
	category int64
	product  int64
	service  int64
	order    int64
}

type dataset struct {
	businesses map[int64]*entity.Business
	categories map[int64]*entity.Category
	products   map[int64]*entity.Product
	services   map[int64]*entity.Service
	orders     map[int64]*entity.Order
	profiles   map[string]*entity.Profile
	seq        sequences
}

func newDataset() *dataset {
	return &dataset{
		businesses: make(map[int64]*entity.Business),
		categories: make(map[int64]*entity.Category),
		products:   make(map[int64]*entity.Product),
		services:   make(map[int64]*entity.Service),
		orders:     make(map[int64]*entity.Order),
		profiles:   make(map[string]*entity.Profile),
	}
}

func (d *dataset) clone() *dataset {
	c := newDataset()
	for id, v := range d.businesses {
		c.businesses[id] = copyBusiness(v)
	}
	for id, v := range d.categories {
		cp := *v
		c.categories[id] = &cp
	}
	for id, v := range d.products {
		c.products[id] = copyProduct(v)
	}
	for id, v := range d.services {
		cp := *v
		c.services[id] = &cp
	}
	for id, v := range d.orders {
		c.orders[id] = copyOrder(v)
	}
	for id, v := range d.profiles {
		cp := *v
		c.profiles[id] = &cp
	}
	c.seq = d.seq

	return c
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		data: newDataset(),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) committed() *view {
	return &view{
		mu:   storeLock{tx: &s.txMu, rw: &s.mu},
		data: s.data,
		now:  s.now,
	}
}

// Repositories returns repositories that operate on the store directly.
func (s *Store) Repositories() repository.RepositoryFactory {
	return &factory{store: s.committed()}
}

func (s *Store) NewOrderRepository() repository.OrderRepository {
	return &orderRepository{store: s.committed()}
}

func (s *Store) NewProfileRepository() repository.ProfileRepository {
	return &profileRepository{store: s.committed()}
}

// Execute serializes transactions. fn works on a copy of the data which is
// committed when fn returns nil and discarded otherwise.
func (s *Store) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	work := s.data.clone()
	s.mu.RUnlock()

	tx := &view{
		mu:   storeLock{rw: new(sync.RWMutex)},
		data: work,
		now:  s.now,
	}
	if err := fn(&factory{store: tx}); err != nil {
		return err
	}

	s.mu.Lock()
	*s.data = *work
	s.mu.Unlock()

	return nil
}

type factory struct {
	store *view
}

func (f *factory) NewBusinessRepository() repository.BusinessRepository {
	return &businessRepository{store: f.store}
}

func (f *factory) NewCategoryRepository() repository.CategoryRepository {
	return &categoryRepository{store: f.store}
}

func (f *factory) NewProductRepository() repository.ProductRepository {
	return &productRepository{store: f.store}
}

func (f *factory) NewServiceRepository() repository.ServiceRepository {
	return &serviceRepository{store: f.store}
}

func copyBusiness(b *entity.Business) *entity.Business {
	cp := *b
	cp.Description = copyString(b.Description)
	cp.LogoURL = copyString(b.LogoURL)

	return &cp
}

func copyProduct(p *entity.Product) *entity.Product {
	cp := *p
	cp.ImageURL = copyString(p.ImageURL)
	if p.CategoryID != nil {
		id := *p.CategoryID
		cp.CategoryID = &id
	}

	return &cp
}

func copyOrder(o *entity.Order) *entity.Order {
	cp := *o
	cp.CustomerNote = copyString(o.CustomerNote)

	return &cp
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s

	return &v
}
