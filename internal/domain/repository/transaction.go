package repository

import "context"

// TransactionManager lets use cases run several repository calls atomically
// without depending on a specific driver.
type TransactionManager interface {
	// Execute runs fn within a transaction. A returned error rolls it back;
	// otherwise it is committed.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the current transaction.
type RepositoryFactory interface {
	NewBusinessRepository() BusinessRepository
	NewCategoryRepository() CategoryRepository
	NewProductRepository() ProductRepository
	NewServiceRepository() ServiceRepository
}
