package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType distinguishes admin notification kinds.
type NotificationType string

const (
	NotificationTypeShippingMissing  NotificationType = "SHIPPING_MISSING"
	NotificationTypePurchaseStatus   NotificationType = "PURCHASE_STATUS"
	NotificationTypeTrainingReminder NotificationType = "TRAINING_REMINDER"
	NotificationTypeTodoReminder     NotificationType = "TODO_REMINDER"
)

// NotificationMetadata references the purchases a notification is about.
type NotificationMetadata struct {
	PurchaseIDs []int64 `json:"purchaseIds,omitempty"`
}

// Notification is an alert shown to dashboard staff.
type Notification struct {
	ID        uuid.UUID            `json:"id"`
	Title     string               `json:"title"`
	Message   string               `json:"message"`
	Type      NotificationType     `json:"type"`
	Metadata  NotificationMetadata `json:"metadata"`
	Read      bool                 `json:"read"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

// NotificationQuery filters the notification listing. Zero values mean "no filter".
type NotificationQuery struct {
	Start      *time.Time
	End        *time.Time
	Type       NotificationType
	UnreadOnly bool
	Limit      int
}

// NotificationCount summarises the notification inbox.
type NotificationCount struct {
	Total  int64 `json:"total"`
	Unread int64 `json:"unread"`
}

// DerivationResult reports one run of notification derivation.
type DerivationResult struct {
	Scanned        int           `json:"scanned"`
	Qualifying     []int64       `json:"qualifying"`
	AlreadyCovered []int64       `json:"alreadyCovered"`
	Created        *Notification `json:"created,omitempty"`
}
