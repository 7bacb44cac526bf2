package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"whatsorder/config"
	"whatsorder/internal/domain/entity"
	"whatsorder/internal/infra/persistence"
	"whatsorder/internal/infra/persistence/memory"
	"whatsorder/internal/usecase"

	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.ApplyDefaults()

	return cfg
}

func stringPtr(s string) *string {
	return &s
}

func int64Ptr(v int64) *int64 {
	return &v
}

// memoryServices wires the catalog use cases to one in-memory store.
type memoryServices struct {
	repos      persistence.Repositories
	businesses usecase.BusinessUsecase
	categories usecase.CategoryUsecase
	products   usecase.ProductUsecase
	offerings  usecase.OfferingUsecase
}

func newMemoryServices(t *testing.T, cfg *config.Config) memoryServices {
	t.Helper()

	repos := persistence.FromMemory(memory.NewStore())
	logger := newDiscardLogger()

	return memoryServices{
		repos: repos,
		businesses: NewBusinessService(BusinessServiceParams{
			BusinessRepo: repos.Businesses,
			Logger:       logger,
		}),
		categories: NewCategoryService(CategoryServiceParams{
			TxManager:    repos.TxManager,
			BusinessRepo: repos.Businesses,
			CategoryRepo: repos.Categories,
			Logger:       logger,
		}),
		products: NewProductService(ProductServiceParams{
			TxManager:    repos.TxManager,
			BusinessRepo: repos.Businesses,
			ProductRepo:  repos.Products,
			Config:       cfg,
			Logger:       logger,
		}),
		offerings: NewOfferingService(OfferingServiceParams{
			TxManager:    repos.TxManager,
			BusinessRepo: repos.Businesses,
			ServiceRepo:  repos.Services,
			Config:       cfg,
			Logger:       logger,
		}),
	}
}

func (s memoryServices) createBusiness(t *testing.T, ownerID, name string) *entity.Business {
	t.Helper()

	business, err := s.businesses.CreateBusiness(context.Background(), ownerID, &usecase.BusinessInput{
		Name:           name,
		WhatsAppNumber: "+234 801 234 5678",
	})
	require.NoError(t, err)

	return business
}
