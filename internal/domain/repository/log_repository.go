package repository

import (
	"context"
	"errors"

	"vradmin/internal/domain/entity"
)

// ErrLogStoreDisabled is returned when no log store is configured.
var ErrLogStoreDisabled = errors.New("log store disabled")

// LogRepository reads structured application logs.
type LogRepository interface {
	Search(ctx context.Context, query entity.LogQuery) (*entity.LogPage, error)
}
