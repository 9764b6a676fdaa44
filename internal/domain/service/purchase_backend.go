// Package service defines the interfaces of external collaborators.
package service

import (
	"context"
	"errors"
	"time"

	"vradmin/internal/domain/entity"
)

// ErrPurchaseNotFound is returned by the backend when a purchase does not exist.
var ErrPurchaseNotFound = errors.New("purchase not found")

// ErrPurchaseRejected is returned when the backend refuses a purchase write
// as invalid.
var ErrPurchaseRejected = errors.New("purchase change rejected")

// PurchaseBackend is the purchases/activation backend. Lookups that the
// backend answers with not-found return a nil result and a nil error.
type PurchaseBackend interface {
	// ListPurchases returns one page of purchases.
	ListPurchases(ctx context.Context, page, limit int) ([]entity.Purchase, error)

	// GetPurchase returns one purchase or ErrPurchaseNotFound.
	GetPurchase(ctx context.Context, id int64) (*entity.Purchase, error)

	// GetOrderStatus returns the e-commerce platform's view of an order.
	GetOrderStatus(ctx context.Context, orderNumber string) (*entity.OrderStatus, error)

	// GetActivations returns the activation records of a purchase, most recent first.
	GetActivations(ctx context.Context, purchaseID int64) ([]entity.ActivationRecord, error)

	// GetShippingRecord returns the stored tracking number of a purchase.
	GetShippingRecord(ctx context.Context, purchaseID int64) (*entity.ShippingRecord, error)

	// GetAllInfoByDateRange returns every purchase created in [start, end]
	// together with its signals.
	GetAllInfoByDateRange(ctx context.Context, start, end time.Time) ([]entity.PurchaseSnapshot, error)

	// CreateAdditionalInfo attaches a provenance note to a purchase.
	CreateAdditionalInfo(ctx context.Context, purchaseID int64, info entity.AdditionalInfo) error

	// UpdatePurchase applies a partial edit and returns the stored purchase.
	UpdatePurchase(ctx context.Context, id int64, update entity.PurchaseUpdate) (*entity.Purchase, error)

	// ListAdminUsers returns the dashboard staff.
	ListAdminUsers(ctx context.Context) ([]entity.AdminUser, error)
}
