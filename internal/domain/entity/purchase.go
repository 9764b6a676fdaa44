// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"
)

// PurchaseSource records where a purchase was created.
type PurchaseSource string

const (
	PurchaseSourceAdmin    PurchaseSource = "ADMIN"
	PurchaseSourceWebshop  PurchaseSource = "WEBSHOP"
	PurchaseSourceImported PurchaseSource = "IMPORTED"
)

// PurchaseType classifies what the customer bought.
type PurchaseType string

const (
	PurchaseTypeStartPackage     PurchaseType = "START_PACKAGE"
	PurchaseTypeContinueTraining PurchaseType = "CONTINUE_TRAINING"
	PurchaseTypeSubscription     PurchaseType = "SUBSCRIPTION"
)

// AdditionalInfo carries provenance details attached to a purchase.
type AdditionalInfo struct {
	ID             int64          `json:"id,omitempty"`
	Info           string         `json:"info,omitempty"`
	PurchaseSource PurchaseSource `json:"purchase_source,omitempty"`
	PurchaseType   PurchaseType   `json:"purchase_type,omitempty"`
	IsHidden       bool           `json:"is_hidden"`
	Shipped        bool           `json:"shipped"`
}

// Purchase is one sales transaction.
type Purchase struct {
	ID                int64            `json:"id"`
	OrderNumber       string           `json:"orderNumber"`
	ConfirmationCode  string           `json:"confirmationCode"`
	Email             string           `json:"email"`
	FirstName         string           `json:"firstName"`
	LastName          string           `json:"lastName"`
	NumberOfVRGlasses int              `json:"numberOfVrGlasses"`
	NumberOfLicenses  int              `json:"numberOfLicenses"`
	DurationDays      int              `json:"duration"`
	IsSubscription    bool             `json:"isSubscription"`
	CreatedAt         time.Time        `json:"date"`
	UpdatedAt         time.Time        `json:"updatedDate"`
	AdditionalInfo    []AdditionalInfo `json:"additionalInfo,omitempty"`
}

// CustomerName joins first and last name.
func (p *Purchase) CustomerName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// NormalizedEmail is the lineage key of the purchase.
func (p *Purchase) NormalizedEmail() string {
	return strings.ToLower(strings.TrimSpace(p.Email))
}

// PrimaryInfo returns the first additional info entry, or nil.
func (p *Purchase) PrimaryInfo() *AdditionalInfo {
	return FirstAdditionalInfo(p.AdditionalInfo)
}

// FirstAdditionalInfo returns infos[0] or nil when the list is empty.
func FirstAdditionalInfo(infos []AdditionalInfo) *AdditionalInfo {
	if len(infos) == 0 {
		return nil
	}

	return &infos[0]
}

// PurchaseRow is a purchase as listed in the admin table, annotated with
// its customer lineage and detected source.
type PurchaseRow struct {
	Purchase

	CustomerName        string         `json:"customerName"`
	Source              PurchaseSource `json:"source"`
	IsCurrent           bool           `json:"isCurrent"`
	PreviousPurchaseIDs []int64        `json:"previousPurchaseIds,omitempty"`
}

// PurchaseUpdate is a partial edit of a purchase. Nil fields are left unchanged.
type PurchaseUpdate struct {
	Email            *string
	ConfirmationCode *string
	DurationDays     *int
	NumberOfLicenses *int
	OrderNumber      *string
}

// IsEmpty reports whether the update changes nothing.
func (u *PurchaseUpdate) IsEmpty() bool {
	return u.Email == nil && u.ConfirmationCode == nil && u.DurationDays == nil &&
		u.NumberOfLicenses == nil && u.OrderNumber == nil
}

// PurchaseListFilter narrows the purchase listing.
type PurchaseListFilter struct {
	Page            int
	Limit           int
	MissingShipping bool
	PurchaseIDs     []int64
}
