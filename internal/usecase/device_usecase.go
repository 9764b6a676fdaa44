package usecase

import (
	"context"

	"vradmin/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo is the registration payload of an admin device.
type DeviceInfo struct {
	FCMToken string `json:"fcm_token" validate:"required"`
	DeviceID string `json:"device_id" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
}

// AdminDeviceUsecase manages the devices admins receive push notifications on.
type AdminDeviceUsecase interface {
	// RegisterDevice registers a device, or refreshes and reactivates the
	// admin's existing device with the same device id.
	RegisterDevice(ctx context.Context, adminID string, deviceInfo *DeviceInfo) (*entity.AdminDevice, error)

	UpdateFCMToken(ctx context.Context, adminID string, deviceID uuid.UUID, fcmToken string) error

	// GetAdminDevices lists the admin's active devices.
	GetAdminDevices(ctx context.Context, adminID string) ([]*entity.AdminDevice, error)

	// DeactivateDevice stops pushes to a device. Deactivating an inactive
	// device is a no-op.
	DeactivateDevice(ctx context.Context, adminID string, deviceID uuid.UUID) error
}
