package postgres

import (
	"context"
	"time"

	"vradmin/internal/domain/entity"
	domainerrors "vradmin/internal/domain/errors"
	"vradmin/internal/domain/repository"
	"vradmin/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// adminDeviceRepository implements repository.AdminDeviceRepository.
type adminDeviceRepository struct {
	db *gorm.DB
}

// NewAdminDeviceRepository is the constructor for adminDeviceRepository.
func NewAdminDeviceRepository(db *gorm.DB) repository.AdminDeviceRepository {
	return &adminDeviceRepository{db: db}
}

var deviceUpsert = clause.OnConflict{
	Columns: []clause.Column{{Name: "admin_id"}, {Name: "device_id"}},
	DoUpdates: clause.AssignmentColumns([]string{
		"fcm_token", "platform", "is_active", "last_seen_at", "deactivated_at", "updated_at",
	}),
}

func (repo *adminDeviceRepository) UpsertDevice(ctx context.Context, device *entity.AdminDevice) error {
	deviceM := fromDeviceDomain(device)
	db := repo.db.WithContext(ctx)

	if err := db.Clauses(deviceUpsert).Create(deviceM).Error; err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing or invalid device information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert device")
	}

	// On conflict the insert values are discarded, so read back the stored row.
	var stored model.AdminDeviceModel
	if err := db.Where("admin_id = ? AND device_id = ?", device.AdminID, device.DeviceID).
		First(&stored).Error; err != nil {
		return errors.Wrap(err, "failed to reload device")
	}
	*device = *toDeviceDomain(&stored)

	return nil
}

func (repo *adminDeviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.AdminDevice, error) {
	var deviceM model.AdminDeviceModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return toDeviceDomain(&deviceM), nil
}

func (repo *adminDeviceRepository) FindActiveDevicesByAdmin(ctx context.Context, adminID string) ([]*entity.AdminDevice, error) {
	var deviceModels []*model.AdminDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("admin_id = ? AND is_active", adminID).
		Order("last_seen_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find devices by admin")
	}

	return toDeviceDomainList(deviceModels), nil
}

func (repo *adminDeviceRepository) FindAllActiveDevices(ctx context.Context) ([]*entity.AdminDevice, error) {
	var deviceModels []*model.AdminDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("is_active").
		Order("admin_id, last_seen_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active devices")
	}

	return toDeviceDomainList(deviceModels), nil
}

func (repo *adminDeviceRepository) UpdateFCMToken(ctx context.Context, id uuid.UUID, fcmToken string, seenAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AdminDeviceModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"fcm_token":      fcmToken,
			"is_active":      true,
			"last_seen_at":   seenAt,
			"deactivated_at": nil,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update FCM token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

func (repo *adminDeviceRepository) DeactivateByTokens(ctx context.Context, tokens []string, at time.Time) (int64, error) {
	if len(tokens) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.AdminDeviceModel{}).
		Where("fcm_token IN ? AND is_active", tokens).
		Updates(map[string]any{"is_active": false, "deactivated_at": at})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to deactivate devices by token")
	}

	return result.RowsAffected, nil
}

func (repo *adminDeviceRepository) DeactivateDevice(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AdminDeviceModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_active": false, "deactivated_at": at})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate device")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

func toDeviceDomainList(models []*model.AdminDeviceModel) []*entity.AdminDevice {
	devices := make([]*entity.AdminDevice, 0, len(models))
	for _, deviceM := range models {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices
}

func toDeviceDomain(data *model.AdminDeviceModel) *entity.AdminDevice {
	return &entity.AdminDevice{
		ID:            data.ID,
		AdminID:       data.AdminID,
		DeviceID:      data.DeviceID,
		FCMToken:      data.FCMToken,
		Platform:      data.Platform,
		IsActive:      data.IsActive,
		LastSeenAt:    data.LastSeenAt,
		DeactivatedAt: data.DeactivatedAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromDeviceDomain(data *entity.AdminDevice) *model.AdminDeviceModel {
	return &model.AdminDeviceModel{
		ID:            data.ID,
		AdminID:       data.AdminID,
		DeviceID:      data.DeviceID,
		FCMToken:      data.FCMToken,
		Platform:      data.Platform,
		IsActive:      data.IsActive,
		LastSeenAt:    data.LastSeenAt,
		DeactivatedAt: data.DeactivatedAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
