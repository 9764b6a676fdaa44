package entity

import (
	"bytes"
	"encoding/json"
	"time"
)

// OrderID is an order identifier that the platforms return either as a JSON
// number or as a string.
type OrderID string

// UnmarshalJSON accepts both numeric and string identifiers.
func (id *OrderID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""

		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = OrderID(s)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = OrderID(n.String())

	return nil
}

// String returns the identifier as text.
func (id OrderID) String() string {
	return string(id)
}

// OrderStatus is the e-commerce platform's view of an order.
type OrderStatus struct {
	Status  string  `json:"status"`
	OrderID OrderID `json:"order_id"`
}

// Carrier identifies the shipping carrier a tracking number belongs to.
type Carrier string

const (
	CarrierPostNord Carrier = "postnord"
	CarrierDHL      Carrier = "dhl"
)

// PostNordStatusText is the human readable part of a PostNord shipment.
type PostNordStatusText struct {
	Header string `json:"header"`
	Body   string `json:"body,omitempty"`
}

// PostNordShipment is shipments[0] of a PostNord findByIdentifier response.
type PostNordShipment struct {
	ShipmentID string             `json:"shipmentId"`
	Status     string             `json:"status"`
	StatusText PostNordStatusText `json:"statusText"`
}

// DHLStatus is the latest status block of a DHL shipment.
type DHLStatus struct {
	StatusCode  string `json:"statusCode"`
	Status      string `json:"status,omitempty"`
	Description string `json:"description,omitempty"`
	Timestamp   string `json:"timestamp,omitempty"`
}

// DHLShipment is shipments[0] of a DHL track response.
type DHLShipment struct {
	ID     string    `json:"id"`
	Status DHLStatus `json:"status"`
}

// ShippingInfo is carrier tracking data, tagged by carrier once at fetch time.
// Exactly one of PostNord or DHL is set, matching Carrier.
type ShippingInfo struct {
	Carrier        Carrier           `json:"carrier"`
	TrackingNumber string            `json:"trackingNumber,omitempty"`
	PostNord       *PostNordShipment `json:"postnord,omitempty"`
	DHL            *DHLShipment      `json:"dhl,omitempty"`
}

// RawStatus returns the carrier-native status code.
func (s *ShippingInfo) RawStatus() string {
	if s == nil {
		return ""
	}

	switch s.Carrier {
	case CarrierPostNord:
		if s.PostNord != nil {
			return s.PostNord.Status
		}
	case CarrierDHL:
		if s.DHL != nil {
			return s.DHL.Status.StatusCode
		}
	}

	return ""
}

// ShippingRecord is the backend's stored shipment reference for a purchase.
type ShippingRecord struct {
	PurchaseID     int64  `json:"purchase_id"`
	TrackingNumber string `json:"tracking_number"`
}

// TrainingSession is one VR training session of an end user.
type TrainingSession struct {
	SessionNumber   int        `json:"session_number"`
	StartTime       *time.Time `json:"start_time"`
	SessionDuration float64    `json:"session_duration"`
}

// ActivationUser is the end user that redeemed an activation code.
type ActivationUser struct {
	ID               string            `json:"id,omitempty"`
	ValidUntil       *time.Time        `json:"valid_until"`
	TrainingSessions []TrainingSession `json:"training_session_data"`
}

// ActivationRecord is one license activation.
type ActivationRecord struct {
	ID             int64           `json:"id,omitempty"`
	ActivationDate *time.Time      `json:"activation_date,omitempty"`
	User           *ActivationUser `json:"user"`
}

// PrimaryActivation selects the activation record the classifier reasons
// about: the first record in backend order, which the backend returns most
// recently created first.
func PrimaryActivation(records []ActivationRecord) *ActivationRecord {
	if len(records) == 0 {
		return nil
	}

	return &records[0]
}

// SignalBundle is the set of nullable external facts used to classify one purchase.
type SignalBundle struct {
	OrderStatus       *OrderStatus       `json:"orderStatus"`
	EmailStatus       *string            `json:"orderConfirmationNotification"`
	ShippingInfo      *ShippingInfo      `json:"shippingInfo"`
	ActivationRecords []ActivationRecord `json:"activationRecords"`
}

// PurchaseSnapshot is one entry of the backend's bulk date-range response.
type PurchaseSnapshot struct {
	PurchaseID     int64            `json:"purchaseId"`
	OrderNumber    string           `json:"orderNumber,omitempty"`
	PurchaseDate   time.Time        `json:"purchaseDate"`
	AdditionalInfo []AdditionalInfo `json:"additionalInfo,omitempty"`
	Signals        SignalBundle     `json:"signals"`
}

// SignalName names one signal collector.
type SignalName string

const (
	SignalOrderStatus SignalName = "order_status"
	SignalEmailStatus SignalName = "email_status"
	SignalShipping    SignalName = "shipping"
	SignalActivations SignalName = "activations"
)

// SignalWarning reports a collector that failed for a reason other than
// not-found. The signal is treated as absent.
type SignalWarning struct {
	Signal  SignalName `json:"signal"`
	Message string     `json:"message"`
}
