package repository

import (
	"context"
	"errors"

	"vradmin/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
)

// NotificationRepository defines the interface for admin notification database operations.
type NotificationRepository interface {
	// CreateNotification persists a new notification.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// FindNotificationByID retrieves a notification by its unique ID.
	FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// ListNotifications returns notifications matching query, newest first.
	ListNotifications(ctx context.Context, query entity.NotificationQuery) ([]*entity.Notification, error)

	// CountNotifications counts all and unread notifications.
	CountNotifications(ctx context.Context) (*entity.NotificationCount, error)

	// CoveredPurchaseIDs returns which of purchaseIDs already appear in a
	// notification of the given type, read or unread.
	CoveredPurchaseIDs(ctx context.Context, notificationType entity.NotificationType, purchaseIDs []int64) ([]int64, error)

	// SetRead updates the read flag of one notification and returns it.
	SetRead(ctx context.Context, id uuid.UUID, read bool) (*entity.Notification, error)

	// MarkAllRead marks every unread notification read and returns how many changed.
	MarkAllRead(ctx context.Context) (int64, error)

	// LockDerivation takes the cross-process derivation lock. It is held until
	// the surrounding transaction ends and must be called inside one.
	LockDerivation(ctx context.Context) error
}
