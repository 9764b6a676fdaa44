package entity

import (
	"time"

	"github.com/google/uuid"
)

// AdminDevice is a staff device registered for push notifications. A device
// is identified by the pair (AdminID, DeviceID); re-registering the same pair
// refreshes its token instead of adding a row.
type AdminDevice struct {
	ID            uuid.UUID  `json:"id"`
	AdminID       string     `json:"admin_id"`
	DeviceID      string     `json:"device_id"`
	FCMToken      string     `json:"fcm_token"`
	Platform      string     `json:"platform"`
	IsActive      bool       `json:"is_active"`
	LastSeenAt    time.Time  `json:"last_seen_at"`
	DeactivatedAt *time.Time `json:"deactivated_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// AdminUser is a dashboard staff member known to the backend.
type AdminUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}
