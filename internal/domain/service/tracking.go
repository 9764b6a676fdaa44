package service

import (
	"context"

	"vradmin/internal/domain/entity"
)

// CarrierTracker looks up shipments at one carrier.
type CarrierTracker interface {
	Carrier() entity.Carrier

	// Track returns the carrier's first shipment for trackingNumber, or nil
	// when the carrier does not know it.
	Track(ctx context.Context, trackingNumber string) (*entity.ShippingInfo, error)
}

// ShipmentTracker routes a tracking number to exactly one carrier.
type ShipmentTracker interface {
	Track(ctx context.Context, trackingNumber string) (*entity.ShippingInfo, error)
}

// OrderEmailLookup finds the delivery status of a purchase's order
// confirmation email. A nil status means no such email was found.
type OrderEmailLookup interface {
	OrderEmailStatus(ctx context.Context, email string) (*string, error)
}
