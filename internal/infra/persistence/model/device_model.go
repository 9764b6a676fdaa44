package model

import (
	"time"

	"github.com/google/uuid"
)

// AdminDeviceModel maps the 'admin_devices' table. Rows are never removed;
// a device that unregisters or whose token Firebase rejects is deactivated.
type AdminDeviceModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AdminID       string     `gorm:"type:varchar(255);not null;uniqueIndex:idx_admin_devices_admin_device,priority:1"`
	DeviceID      string     `gorm:"type:varchar(255);not null;uniqueIndex:idx_admin_devices_admin_device,priority:2"`
	FCMToken      string     `gorm:"type:text;not null;index"`
	Platform      string     `gorm:"type:varchar(16);not null;check:chk_admin_devices_platform,platform IN ('ios','android','web')"`
	IsActive      bool       `gorm:"not null;default:true;index"`
	LastSeenAt    time.Time  `gorm:"not null"`
	DeactivatedAt *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (AdminDeviceModel) TableName() string {
	return "admin_devices"
}
