package entity

import "time"

// StatusCategory is the single display category of a purchase.
type StatusCategory string

const (
	CategoryTrained             StatusCategory = "TRAINED"
	CategoryPendingConfirmation StatusCategory = "PENDING_CONFIRMATION"
	CategoryDeliveredNotTrained StatusCategory = "DELIVERED_NOT_TRAINED"
	CategoryInvalid             StatusCategory = "INVALID"
	CategoryUnknown             StatusCategory = "UNKNOWN"
)

// AllCategories lists the categories in precedence order.
var AllCategories = []StatusCategory{
	CategoryTrained,
	CategoryPendingConfirmation,
	CategoryDeliveredNotTrained,
	CategoryInvalid,
	CategoryUnknown,
}

// PurchaseStatus is the derived status of one purchase. It is never persisted
// to the database; it is recomputed from a SignalBundle.
type PurchaseStatus struct {
	SignalBundle

	HasOrderStatusEmail              bool           `json:"hasOrderStatusEmail"`
	IsActivatedVRDeliveredNotTrained bool           `json:"isActivatedVRDeliveredNotTrained"`
	IsActivatedVRNotDelivered        bool           `json:"isActivatedVRNotDelivered"`
	StartedTraining                  bool           `json:"startedTraining"`
	StartedTrainingWithVR            bool           `json:"startedTrainingWithVR"`
	IsInvalidAccount                 bool           `json:"isInvalidAccount"`
	MultipleActivations              bool           `json:"multipleActivations"`
	Category                         StatusCategory `json:"category"`
	EvaluatedAt                      time.Time      `json:"evaluatedAt"`
}

// PurchaseStatusView is a cached or freshly collected status for one purchase.
type PurchaseStatusView struct {
	PurchaseID int64           `json:"purchaseId"`
	Status     *PurchaseStatus `json:"status"`
	FetchedAt  time.Time       `json:"fetchedAt"`
	Cached     bool            `json:"cached"`
	Warnings   []SignalWarning `json:"warnings,omitempty"`
}

// CachedStatus is what the status cache stores per purchase id.
type CachedStatus struct {
	Status    *PurchaseStatus `json:"status"`
	FetchedAt time.Time       `json:"fetchedAt"`
}

// ClassifiedSnapshot pairs a bulk snapshot with its derived status.
type ClassifiedSnapshot struct {
	PurchaseSnapshot

	Status *PurchaseStatus `json:"status"`
}
