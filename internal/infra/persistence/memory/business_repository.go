package memory

import (
	"context"

	"whatsorder/internal/domain/entity"
	"whatsorder/internal/domain/repository"
)

type businessRepository struct {
	store *view
}

func (r *businessRepository) CreateBusiness(_ context.Context, business *entity.Business) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.data.businesses {
		if existing.OwnerID == business.OwnerID {
			return repository.ErrBusinessAlreadyExists
		}
		if existing.Slug == business.Slug {
			return repository.ErrSlugTaken
		}
	}

	s.data.seq.business++
	now := s.now()
	business.ID = s.data.seq.business
	business.CreatedAt = now
	business.UpdatedAt = now
	s.data.businesses[business.ID] = copyBusiness(business)

	return nil
}

func (r *businessRepository) FindBusinessByOwner(_ context.Context, ownerID string) (*entity.Business, error) {
	return r.find(func(b *entity.Business) bool { return b.OwnerID == ownerID })
}

func (r *businessRepository) FindBusinessBySlug(_ context.Context, slug string) (*entity.Business, error) {
	return r.find(func(b *entity.Business) bool { return b.Slug == slug })
}

func (r *businessRepository) FindBusinessByID(_ context.Context, id int64) (*entity.Business, error) {
	return r.find(func(b *entity.Business) bool { return b.ID == id })
}

func (r *businessRepository) find(match func(*entity.Business) bool) (*entity.Business, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, b := range r.store.data.businesses {
		if match(b) {
			return copyBusiness(b), nil
		}
	}

	return nil, repository.ErrBusinessNotFound
}

func (r *businessRepository) UpdateBusiness(_ context.Context, business *entity.Business) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.data.businesses[business.ID]
	if !ok || existing.OwnerID != business.OwnerID {
		return repository.ErrBusinessNotFound
	}

	existing.Name = business.Name
	existing.WhatsAppNumber = business.WhatsAppNumber
	existing.Description = copyString(business.Description)
	existing.LogoURL = copyString(business.LogoURL)
	existing.UpdatedAt = s.now()
	business.UpdatedAt = existing.UpdatedAt

	return nil
}

// LockBusiness only checks existence; Store.Execute already serializes transactions.
func (r *businessRepository) LockBusiness(_ context.Context, id int64) error {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if _, ok := r.store.data.businesses[id]; !ok {
		return repository.ErrBusinessNotFound
	}

	return nil
}
