package service

import (
	"context"

	"vradmin/internal/domain/entity"
)

// StatusCache stores the last computed status per purchase id. Writes are
// last-write-wins.
type StatusCache interface {
	Get(ctx context.Context, purchaseID int64) (*entity.CachedStatus, bool, error)
	Set(ctx context.Context, purchaseID int64, status *entity.CachedStatus) error
	Delete(ctx context.Context, purchaseID int64) error
}
