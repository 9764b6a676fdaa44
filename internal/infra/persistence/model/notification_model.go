package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationMetadata is the JSON document stored in admin_notifications.metadata.
type NotificationMetadata struct {
	PurchaseIDs []int64 `json:"purchaseIds,omitempty"`
}

// AdminNotificationModel is the GORM-specific struct for the 'admin_notifications' table.
type AdminNotificationModel struct {
	ID        uuid.UUID                                `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title     string                                   `gorm:"type:text;not null"`
	Message   string                                   `gorm:"type:text;not null"`
	Type      string                                   `gorm:"type:varchar(32);not null;index"`
	Metadata  datatypes.JSONType[NotificationMetadata] `gorm:"type:jsonb;not null;default:'{}'"`
	Read      bool                                     `gorm:"not null;default:false;index"`
	CreatedAt time.Time                                `gorm:"index"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminNotificationModel) TableName() string {
	return "admin_notifications"
}
