package repository

import "context"

// TransactionManager runs use case work atomically. fn receives repositories
// bound to the transaction; returning an error rolls everything back.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out transaction-bound repositories. Derivation uses
// it to hold the advisory lock while it checks coverage and creates the
// notification; todos use it for read-modify-write updates.
type RepositoryFactory interface {
	NewNotificationRepository() NotificationRepository
	NewTodoRepository() TodoRepository
}
