package impl

import (
	"context"

	"vradmin/internal/domain/entity"
	domainerrors "vradmin/internal/domain/errors"
	"vradmin/internal/domain/repository"
	"vradmin/internal/domain/service"
	"vradmin/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type adminDeviceService struct {
	deviceRepo repository.AdminDeviceRepository
	clock      service.Clock
}

// NewAdminDeviceService creates the admin device use case.
func NewAdminDeviceService(deviceRepo repository.AdminDeviceRepository, clock service.Clock) usecase.AdminDeviceUsecase {
	return &adminDeviceService{
		deviceRepo: deviceRepo,
		clock:      clock,
	}
}

func (s *adminDeviceService) RegisterDevice(ctx context.Context, adminID string, deviceInfo *usecase.DeviceInfo) (*entity.AdminDevice, error) {
	device := &entity.AdminDevice{
		AdminID:    adminID,
		DeviceID:   deviceInfo.DeviceID,
		FCMToken:   deviceInfo.FCMToken,
		Platform:   deviceInfo.Platform,
		IsActive:   true,
		LastSeenAt: s.clock.Now(),
	}

	if err := s.deviceRepo.UpsertDevice(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to register device")
	}

	return device, nil
}

// ownedDevice fetches a device and verifies it belongs to adminID.
func (s *adminDeviceService) ownedDevice(ctx context.Context, adminID string, deviceID uuid.UUID) (*entity.AdminDevice, error) {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	if device.AdminID != adminID {
		return nil, domainerrors.ErrDeviceOwnershipViolation
	}

	return device, nil
}

func (s *adminDeviceService) UpdateFCMToken(ctx context.Context, adminID string, deviceID uuid.UUID, fcmToken string) error {
	if _, err := s.ownedDevice(ctx, adminID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.UpdateFCMToken(ctx, deviceID, fcmToken, s.clock.Now()); err != nil {
		return errors.Wrap(err, "failed to update FCM token")
	}

	return nil
}

func (s *adminDeviceService) GetAdminDevices(ctx context.Context, adminID string) ([]*entity.AdminDevice, error) {
	devices, err := s.deviceRepo.FindActiveDevicesByAdmin(ctx, adminID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by admin")
	}

	return devices, nil
}

func (s *adminDeviceService) DeactivateDevice(ctx context.Context, adminID string, deviceID uuid.UUID) error {
	device, err := s.ownedDevice(ctx, adminID, deviceID)
	if err != nil {
		return err
	}
	if !device.IsActive {
		return nil
	}

	if err := s.deviceRepo.DeactivateDevice(ctx, deviceID, s.clock.Now()); err != nil {
		return errors.Wrap(err, "failed to deactivate device")
	}

	return nil
}
