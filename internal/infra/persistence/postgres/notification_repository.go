// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"vradmin/internal/domain/entity"
	domainerrors "vradmin/internal/domain/errors"
	"vradmin/internal/domain/repository"
	"vradmin/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateNotification persists a new notification.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrNotificationCreationFailed.WrapMessage("missing required notification information")
		}
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrNotificationCreationFailed.WrapMessage("notification already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	// Update the entity with generated values
	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt
	notification.UpdatedAt = notificationM.UpdatedAt

	return nil
}

// FindNotificationByID retrieves a notification by its unique ID.
func (repo *notificationRepository) FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	var notificationM model.AdminNotificationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	return toNotificationDomain(&notificationM), nil
}

// ListNotifications returns notifications matching query, newest first.
func (repo *notificationRepository) ListNotifications(ctx context.Context, query entity.NotificationQuery) ([]*entity.Notification, error) {
	var notificationModels []*model.AdminNotificationModel

	tx := repo.db.WithContext(ctx).Order("created_at DESC")
	if query.Start != nil {
		tx = tx.Where("created_at >= ?", *query.Start)
	}
	if query.End != nil {
		tx = tx.Where("created_at <= ?", *query.End)
	}
	if query.Type != "" {
		tx = tx.Where("type = ?", string(query.Type))
	}
	if query.UnreadOnly {
		tx = tx.Where("read = ?", false)
	}
	if query.Limit > 0 {
		tx = tx.Limit(query.Limit)
	}

	if err := tx.Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// CountNotifications counts all and unread notifications.
func (repo *notificationRepository) CountNotifications(ctx context.Context) (*entity.NotificationCount, error) {
	var row struct {
		Total  int64
		Unread int64
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.AdminNotificationModel{}).
		Select("COUNT(*) AS total, COUNT(*) FILTER (WHERE read = false) AS unread").
		Scan(&row).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count notifications")
	}

	return &entity.NotificationCount{Total: row.Total, Unread: row.Unread}, nil
}

// CoveredPurchaseIDs returns which of purchaseIDs already appear in the
// metadata of a notification of the given type.
func (repo *notificationRepository) CoveredPurchaseIDs(ctx context.Context, notificationType entity.NotificationType, purchaseIDs []int64) ([]int64, error) {
	covered := make([]int64, 0)
	if len(purchaseIDs) == 0 {
		return covered, nil
	}

	if err := repo.db.WithContext(ctx).Raw(`
		SELECT DISTINCT (e.id)::bigint AS id
		FROM admin_notifications n
		CROSS JOIN LATERAL jsonb_array_elements_text(COALESCE(n.metadata->'purchaseIds', '[]'::jsonb)) AS e(id)
		WHERE n.type = ? AND (e.id)::bigint IN ?
		ORDER BY id`,
		string(notificationType), purchaseIDs,
	).Scan(&covered).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find covered purchase ids")
	}

	return covered, nil
}

// SetRead updates the read flag of one notification and returns it.
func (repo *notificationRepository) SetRead(ctx context.Context, id uuid.UUID, read bool) (*entity.Notification, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.AdminNotificationModel{}).
		Where("id = ?", id).
		Update("read", read)

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update notification read state")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrNotificationNotFound
	}

	return repo.FindNotificationByID(ctx, id)
}

// MarkAllRead marks every unread notification read.
func (repo *notificationRepository) MarkAllRead(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.AdminNotificationModel{}).
		Where("read = ?", false).
		Update("read", true)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to mark all notifications read")
	}

	return result.RowsAffected, nil
}

// derivationLockKey identifies the advisory lock serialising notification derivation.
const derivationLockKey int64 = 0x5648_4e4f_5449_4659

// LockDerivation takes a transaction-scoped advisory lock.
func (repo *notificationRepository) LockDerivation(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(?)", derivationLockKey).Error; err != nil {
		return errors.Wrap(err, "failed to take derivation lock")
	}

	return nil
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM AdminNotificationModel to a domain Notification entity.
func toNotificationDomain(data *model.AdminNotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	return &entity.Notification{
		ID:        data.ID,
		Title:     data.Title,
		Message:   data.Message,
		Type:      entity.NotificationType(data.Type),
		Metadata:  entity.NotificationMetadata{PurchaseIDs: data.Metadata.Data().PurchaseIDs},
		Read:      data.Read,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromNotificationDomain converts a domain Notification entity to a GORM AdminNotificationModel.
func fromNotificationDomain(data *entity.Notification) *model.AdminNotificationModel {
	if data == nil {
		return nil
	}

	return &model.AdminNotificationModel{
		ID:        data.ID,
		Title:     data.Title,
		Message:   data.Message,
		Type:      string(data.Type),
		Metadata:  datatypes.NewJSONType(model.NotificationMetadata{PurchaseIDs: data.Metadata.PurchaseIDs}),
		Read:      data.Read,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
