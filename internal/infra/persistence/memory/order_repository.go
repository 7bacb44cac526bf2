package memory

import (
	"context"
	"slices"

	"whatsorder/internal/domain/entity"
	"whatsorder/internal/domain/repository"
)

type orderRepository struct {
	store *view
}

func (r *orderRepository) CreateOrder(_ context.Context, order *entity.Order) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.seq.order++
	order.ID = s.data.seq.order
	order.CreatedAt = s.now()
	s.data.orders[order.ID] = copyOrder(order)

	return nil
}

func (r *orderRepository) ListOrders(_ context.Context, businessID int64) ([]*entity.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	orders := make([]*entity.Order, 0)
	for _, o := range r.store.data.orders {
		if o.BusinessID == businessID {
			orders = append(orders, copyOrder(o))
		}
	}
	slices.SortFunc(orders, func(a, b *entity.Order) int {
		return newestFirst(a.CreatedAt, b.CreatedAt, a.ID, b.ID)
	})

	return orders, nil
}

type profileRepository struct {
	store *view
}

func (r *profileRepository) FindProfile(_ context.Context, userID string) (*entity.Profile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.data.profiles[userID]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}
	cp := *p

	return &cp, nil
}

func (r *profileRepository) CreateProfile(_ context.Context, profile *entity.Profile) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.data.profiles[profile.UserID]; ok {
		*profile = *existing

		return nil
	}

	now := s.now()
	profile.CreatedAt = now
	profile.UpdatedAt = now
	cp := *profile
	s.data.profiles[profile.UserID] = &cp

	return nil
}

func (r *profileRepository) MarkOnboardingCompleted(_ context.Context, userID string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	p, ok := s.data.profiles[userID]
	if !ok {
		p = &entity.Profile{UserID: userID, CreatedAt: now}
		s.data.profiles[userID] = p
	}
	p.OnboardingCompleted = true
	p.UpdatedAt = now

	return nil
}
