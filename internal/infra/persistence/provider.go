// Package persistence selects the repository adapter configured for the process.
package persistence

import (
	"log/slog"

	"whatsorder/config"
	"whatsorder/internal/domain/repository"
	"whatsorder/internal/infra/persistence/memory"
	"whatsorder/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the dependencies of the repository set.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories is the full repository set provided to use cases.
type Repositories struct {
	fx.Out

	TxManager  repository.TransactionManager
	Businesses repository.BusinessRepository
	Categories repository.CategoryRepository
	Products   repository.ProductRepository
	Services   repository.ServiceRepository
	Orders     repository.OrderRepository
	Profiles   repository.ProfileRepository
}

// New builds the repositories for cfg.Persistence.Driver.
func New(params Params) (Repositories, error) {
	switch driver := params.Config.Persistence.Driver; driver {
	case config.DriverMemory:
		params.Logger.Warn("Using in-memory persistence; data is lost on restart")

		return FromMemory(memory.NewStore()), nil
	case config.DriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}
		factory := postgres.NewRepositoryFactory(db)

		return Repositories{
			TxManager:  postgres.NewTransactionManager(db),
			Businesses: factory.NewBusinessRepository(),
			Categories: factory.NewCategoryRepository(),
			Products:   factory.NewProductRepository(),
			Services:   factory.NewServiceRepository(),
			Orders:     postgres.NewOrderRepository(db),
			Profiles:   postgres.NewProfileRepository(db),
		}, nil
	default:
		return Repositories{}, errors.Errorf("unknown persistence driver %q", driver)
	}
}

// FromMemory exposes an in-memory store as a repository set.
func FromMemory(store *memory.Store) Repositories {
	factory := store.Repositories()

	return Repositories{
		TxManager:  store,
		Businesses: factory.NewBusinessRepository(),
		Categories: factory.NewCategoryRepository(),
		Products:   factory.NewProductRepository(),
		Services:   factory.NewServiceRepository(),
		Orders:     store.NewOrderRepository(),
		Profiles:   store.NewProfileRepository(),
	}
}
