package usecase

import (
	"context"

	"vradmin/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase defines the interface for admin notification use cases
type NotificationUsecase interface {
	// DeriveShippingMissing scans the trailing window and creates at most one
	// SHIPPING_MISSING notification for the purchases not yet covered
	DeriveShippingMissing(ctx context.Context) (*entity.DerivationResult, error)

	// ListNotifications returns notifications newest first
	ListNotifications(ctx context.Context, query entity.NotificationQuery) ([]*entity.Notification, error)

	// CountNotifications counts all and unread notifications
	CountNotifications(ctx context.Context) (*entity.NotificationCount, error)

	// MarkRead sets the read flag of one notification
	MarkRead(ctx context.Context, id uuid.UUID, read bool) (*entity.Notification, error)

	// MarkAllRead marks every notification read and returns how many changed
	MarkAllRead(ctx context.Context) (int64, error)
}
