package repository

import "context"

// TransactionManager runs use case work inside one storage transaction so that
// multi-store mutations (order creation, cascade delete) commit or roll back together.
type TransactionManager interface {
	// Execute runs fn in a read-write transaction. If fn returns an error the
	// transaction is rolled back, including any id allocated inside it.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error

	// Read runs fn in a read-only transaction. Read transactions may run
	// concurrently with each other.
	Read(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific transaction.
type RepositoryFactory interface {
	NewClientRepository() ClientRepository
	NewItemRepository() ItemRepository
	NewOrderRepository() OrderRepository
	NewReviewRepository() ReviewRepository
	NewIDAllocator() IDAllocator
	NewPrincipalRepository() PrincipalRepository
}
