package memory

import (
	"context"
	"slices"
	"strings"
	"time"

	"whatsorder/internal/domain/entity"
	"whatsorder/internal/domain/repository"
)

type categoryRepository struct {
	store *view
}

func (r *categoryRepository) CreateCategory(_ context.Context, category *entity.Category) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.seq.category++
	category.ID = s.data.seq.category
	category.CreatedAt = s.now()
	cp := *category
	s.data.categories[category.ID] = &cp

	return nil
}

func (r *categoryRepository) FindCategory(_ context.Context, businessID, id int64) (*entity.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	c, ok := r.store.data.categories[id]
	if !ok || c.BusinessID != businessID {
		return nil, repository.ErrCategoryNotFound
	}
	cp := *c

	return &cp, nil
}

func (r *categoryRepository) ListCategories(_ context.Context, businessID int64) ([]*entity.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	categories := make([]*entity.Category, 0)
	for _, c := range r.store.data.categories {
		if c.BusinessID == businessID {
			cp := *c
			categories = append(categories, &cp)
		}
	}
	slices.SortFunc(categories, func(a, b *entity.Category) int {
		if n := strings.Compare(a.Name, b.Name); n != 0 {
			return n
		}

		return compareInt64(a.ID, b.ID)
	})

	return categories, nil
}

func (r *categoryRepository) DeleteCategory(_ context.Context, businessID, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if c, ok := r.store.data.categories[id]; ok && c.BusinessID == businessID {
		delete(r.store.data.categories, id)
	}

	return nil
}

type productRepository struct {
	store *view
}

func (r *productRepository) CreateProduct(_ context.Context, product *entity.Product) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.seq.product++
	now := s.now()
	product.ID = s.data.seq.product
	product.CreatedAt = now
	product.UpdatedAt = now
	s.data.products[product.ID] = copyProduct(product)

	return nil
}

func (r *productRepository) FindProduct(_ context.Context, businessID, id int64) (*entity.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.data.products[id]
	if !ok || p.BusinessID != businessID {
		return nil, repository.ErrProductNotFound
	}

	return copyProduct(p), nil
}

func (r *productRepository) ListProducts(_ context.Context, businessID int64) ([]*entity.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	products := make([]*entity.Product, 0)
	for _, p := range r.store.data.products {
		if p.BusinessID == businessID {
			products = append(products, copyProduct(p))
		}
	}
	slices.SortFunc(products, func(a, b *entity.Product) int {
		return newestFirst(a.CreatedAt, b.CreatedAt, a.ID, b.ID)
	})

	return products, nil
}

func (r *productRepository) CountProducts(_ context.Context, businessID int64) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var count int64
	for _, p := range r.store.data.products {
		if p.BusinessID == businessID {
			count++
		}
	}

	return count, nil
}

func (r *productRepository) UpdateProduct(_ context.Context, product *entity.Product) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.data.products[product.ID]
	if !ok || existing.BusinessID != product.BusinessID {
		return repository.ErrProductNotFound
	}

	product.CreatedAt = existing.CreatedAt
	product.UpdatedAt = s.now()
	s.data.products[product.ID] = copyProduct(product)

	return nil
}

func (r *productRepository) DeleteProduct(_ context.Context, businessID, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.data.products[id]
	if !ok || p.BusinessID != businessID {
		return repository.ErrProductNotFound
	}
	delete(r.store.data.products, id)

	return nil
}

func (r *productRepository) ClearCategory(_ context.Context, businessID, categoryID int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, p := range r.store.data.products {
		if p.BusinessID == businessID && p.CategoryID != nil && *p.CategoryID == categoryID {
			p.CategoryID = nil
		}
	}

	return nil
}

type serviceRepository struct {
	store *view
}

func (r *serviceRepository) CreateService(_ context.Context, service *entity.Service) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.seq.service++
	now := s.now()
	service.ID = s.data.seq.service
	service.CreatedAt = now
	service.UpdatedAt = now
	cp := *service
	s.data.services[service.ID] = &cp

	return nil
}

func (r *serviceRepository) FindService(_ context.Context, businessID, id int64) (*entity.Service, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	svc, ok := r.store.data.services[id]
	if !ok || svc.BusinessID != businessID {
		return nil, repository.ErrServiceNotFound
	}
	cp := *svc

	return &cp, nil
}

func (r *serviceRepository) ListServices(_ context.Context, businessID int64) ([]*entity.Service, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	services := make([]*entity.Service, 0)
	for _, svc := range r.store.data.services {
		if svc.BusinessID == businessID {
			cp := *svc
			services = append(services, &cp)
		}
	}
	slices.SortFunc(services, func(a, b *entity.Service) int {
		return newestFirst(a.CreatedAt, b.CreatedAt, a.ID, b.ID)
	})

	return services, nil
}

func (r *serviceRepository) CountServices(_ context.Context, businessID int64) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var count int64
	for _, svc := range r.store.data.services {
		if svc.BusinessID == businessID {
			count++
		}
	}

	return count, nil
}

func (r *serviceRepository) UpdateService(_ context.Context, service *entity.Service) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.data.services[service.ID]
	if !ok || existing.BusinessID != service.BusinessID {
		return repository.ErrServiceNotFound
	}

	service.CreatedAt = existing.CreatedAt
	service.UpdatedAt = s.now()
	cp := *service
	s.data.services[service.ID] = &cp

	return nil
}

func (r *serviceRepository) DeleteService(_ context.Context, businessID, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	svc, ok := r.store.data.services[id]
	if !ok || svc.BusinessID != businessID {
		return repository.ErrServiceNotFound
	}
	delete(r.store.data.services, id)

	return nil
}

// newestFirst orders by creation time descending, then id descending.
func newestFirst(aTime, bTime time.Time, aID, bID int64) int {
	if n := bTime.Compare(aTime); n != 0 {
		return n
	}

	return compareInt64(bID, aID)
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
