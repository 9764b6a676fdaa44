// Package postgres implements the repositories on GORM and PostgreSQL.
package postgres

import (
	"context"

	"vradmin/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

// txRepositories hands out repositories bound to one open transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (f txRepositories) NewNotificationRepository() repository.NotificationRepository {
	return NewNotificationRepository(f.tx)
}

func (f txRepositories) NewTodoRepository() repository.TodoRepository {
	return NewTodoRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute commits when fn returns nil and rolls back otherwise, including
// when fn panics. The error returned by fn is passed through unchanged so
// callers can still match domain errors.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	var fnErr error

	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepositories{tx: tx})

		return fnErr
	})
	switch {
	case fnErr != nil:
		return fnErr
	case err != nil:
		return errors.Wrap(err, "run transaction")
	}

	return nil
}
