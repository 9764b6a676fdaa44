package status

import (
	"strings"

	"vradmin/internal/domain/entity"
)

// ShipmentState is the carrier-independent progress of a shipment.
type ShipmentState string

const (
	ShipmentDelivered ShipmentState = "DELIVERED"
	ShipmentInTransit ShipmentState = "IN_TRANSIT"
	ShipmentPending   ShipmentState = "PENDING"
	ShipmentFailed    ShipmentState = "FAILED"
	ShipmentUnknown   ShipmentState = "UNKNOWN"
)

// postNordStates maps PostNord shipment status codes. Only DELIVERED is a
// delivered-equivalent; the rest are display hints.
var postNordStates = map[string]ShipmentState{
	"DELIVERED":              ShipmentDelivered,
	"AVAILABLE_FOR_DELIVERY": ShipmentInTransit,
	"EN_ROUTE":               ShipmentInTransit,
	"DELAYED":                ShipmentInTransit,
	"INFORMED":               ShipmentPending,
	"CREATED":                ShipmentPending,
	"STOPPED":                ShipmentFailed,
	"RETURNED":               ShipmentFailed,
}

// dhlStates maps DHL status.statusCode values.
var dhlStates = map[string]ShipmentState{
	"delivered":   ShipmentDelivered,
	"transit":     ShipmentInTransit,
	"pre-transit": ShipmentPending,
	"failure":     ShipmentFailed,
}

// StateOf returns the progress of a shipment. Lookups are exact: a status
// that differs only in case is not recognised.
func StateOf(info *entity.ShippingInfo) ShipmentState {
	raw := info.RawStatus()
	if raw == "" {
		return ShipmentUnknown
	}

	var table map[string]ShipmentState
	switch info.Carrier {
	case entity.CarrierPostNord:
		table = postNordStates
	case entity.CarrierDHL:
		table = dhlStates
	default:
		return ShipmentUnknown
	}

	if state, ok := table[raw]; ok {
		return state
	}

	return ShipmentUnknown
}

// IsDelivered reports whether the shipment reached the customer.
func IsDelivered(info *entity.ShippingInfo) bool {
	return info != nil && StateOf(info) == ShipmentDelivered
}

// CarrierFor picks the carrier a tracking number belongs to.
func CarrierFor(trackingNumber string) entity.Carrier {
	if strings.HasPrefix(trackingNumber, "UU") {
		return entity.CarrierPostNord
	}

	return entity.CarrierDHL
}
