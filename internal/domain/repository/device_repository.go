// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"vradmin/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDeviceNotFound is returned when no device matches the lookup.
var ErrDeviceNotFound = errors.New("device not found")

// AdminDeviceRepository stores the devices admins receive pushes on.
type AdminDeviceRepository interface {
	// UpsertDevice inserts device, or refreshes token, platform and last-seen
	// time of the row with the same admin and device id and reactivates it.
	// device.ID and timestamps are filled from the stored row.
	UpsertDevice(ctx context.Context, device *entity.AdminDevice) error

	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.AdminDevice, error)

	// FindActiveDevicesByAdmin lists an admin's active devices, most recently seen first.
	FindActiveDevicesByAdmin(ctx context.Context, adminID string) ([]*entity.AdminDevice, error)

	FindAllActiveDevices(ctx context.Context) ([]*entity.AdminDevice, error)

	// UpdateFCMToken replaces the token of a device and reactivates it.
	UpdateFCMToken(ctx context.Context, id uuid.UUID, fcmToken string, seenAt time.Time) error

	// DeactivateByTokens deactivates every active device holding one of
	// tokens and reports how many rows changed.
	DeactivateByTokens(ctx context.Context, tokens []string, at time.Time) (int64, error)

	DeactivateDevice(ctx context.Context, id uuid.UUID, at time.Time) error
}
