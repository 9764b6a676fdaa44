package usecase

import (
	"context"
	"time"

	"vradmin/internal/domain/entity"
)

// PurchasePage is one page of the purchase table.
type PurchasePage struct {
	Rows  []entity.PurchaseRow `json:"rows"`
	Page  int                  `json:"page"`
	Limit int                  `json:"limit"`
}

// AddAdditionalInfoInput is a provenance note attached to an existing purchase
type AddAdditionalInfoInput struct {
	Info           string                `json:"info" validate:"required,max=2000"`
	PurchaseSource entity.PurchaseSource `json:"purchase_source" validate:"omitempty,oneof=ADMIN WEBSHOP IMPORTED"`
	PurchaseType   entity.PurchaseType   `json:"purchase_type" validate:"omitempty,oneof=START_PACKAGE CONTINUE_TRAINING SUBSCRIPTION"`
}

// UpdatePurchaseInput is a partial purchase edit; absent fields are kept
type UpdatePurchaseInput struct {
	Email            *string `json:"email" validate:"omitempty,max=255"`
	ConfirmationCode *string `json:"confirmationCode" validate:"omitempty,max=64"`
	DurationDays     *int    `json:"duration"`
	NumberOfLicenses *int    `json:"numberOfLicenses"`
	OrderNumber      *string `json:"orderNumber" validate:"omitempty,max=64"`
}

// PurchaseUsecase defines the purchase listing and status use cases
type PurchaseUsecase interface {
	// ListPurchases returns one backend page grouped into customer lineages
	ListPurchases(ctx context.Context, filter entity.PurchaseListFilter) (*PurchasePage, error)

	// GetPurchaseStatus returns the cached status of a purchase, collecting
	// fresh signals when nothing is cached or refresh is set
	GetPurchaseStatus(ctx context.Context, purchaseID int64, refresh bool) (*entity.PurchaseStatusView, error)

	// GetStatusesByDateRange classifies every purchase created in [start, end]
	// from the backend's bulk snapshot
	GetStatusesByDateRange(ctx context.Context, start, end time.Time) ([]entity.ClassifiedSnapshot, error)

	// AddAdditionalInfo attaches a provenance note to a purchase; the source
	// defaults to ADMIN
	AddAdditionalInfo(ctx context.Context, purchaseID int64, input *AddAdditionalInfoInput) error

	// UpdatePurchase edits a purchase and drops its cached status
	UpdatePurchase(ctx context.Context, purchaseID int64, input *UpdatePurchaseInput) (*entity.Purchase, error)

	// GetActivationQR renders the confirmation code of a purchase as a PNG QR code
	GetActivationQR(ctx context.Context, purchaseID int64) ([]byte, error)
}
