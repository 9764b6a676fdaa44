package backend

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"vradmin/internal/domain/entity"

	"github.com/pkg/errors"
)

// timeLayouts are the timestamp formats the backend has been seen to emit.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}

	return time.Time{}, errors.Errorf("unrecognised timestamp %q", raw)
}

// parseOptionalTime maps "" and null to nil.
func parseOptionalTime(raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}

	t, err := parseTime(*raw)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

type purchaseDTO struct {
	ID                int64                   `json:"id"`
	OrderNumber       entity.OrderID          `json:"order_number"`
	Code              string                  `json:"code"`
	Email             string                  `json:"email"`
	FirstName         string                  `json:"first_name"`
	LastName          string                  `json:"last_name"`
	NumberOfVRGlasses int                     `json:"number_of_vr_glasses"`
	NumberOfLicenses  int                     `json:"number_of_licenses"`
	Duration          int                     `json:"duration"`
	IsSubscription    bool                    `json:"is_subscription"`
	CreatedAt         string                  `json:"created_at"`
	UpdatedAt         string                  `json:"updated_at"`
	AdditionalInfo    []entity.AdditionalInfo `json:"additional_info"`
}

type purchasePageDTO struct {
	Purchases   []purchaseDTO `json:"purchases"`
	CurrentPage int           `json:"currentPage"`
	Total       int           `json:"total"`
	TotalPages  int           `json:"totalPages"`
}

type sessionDTO struct {
	SessionNumber   int     `json:"session_number"`
	StartTime       *string `json:"start_time"`
	SessionDuration float64 `json:"session_duration"`
}

type activationUserDTO struct {
	ID               json.RawMessage `json:"id"`
	ValidUntil       *string         `json:"valid_until"`
	TrainingSessions []sessionDTO    `json:"training_session_data"`
}

type activationDTO struct {
	ID             int64              `json:"id"`
	ActivationDate *string            `json:"activation_date"`
	User           *activationUserDTO `json:"user"`
}

type shippingRecordDTO struct {
	PurchaseID     int64  `json:"purchase_id"`
	TrackingNumber string `json:"tracking_number"`
}

type additionalInfoRequestDTO struct {
	Info           string                `json:"info"`
	PurchaseSource entity.PurchaseSource `json:"purchase_source"`
	PurchaseType   entity.PurchaseType   `json:"purchase_type,omitempty"`
}

type purchaseUpdateDTO struct {
	Email            *string `json:"email,omitempty"`
	Code             *string `json:"code,omitempty"`
	Duration         *int    `json:"duration,omitempty"`
	NumberOfLicenses *int    `json:"number_of_licenses,omitempty"`
	OrderNumber      *string `json:"order_number,omitempty"`
}

func toPurchaseUpdateDTO(u *entity.PurchaseUpdate) purchaseUpdateDTO {
	return purchaseUpdateDTO{
		Email:            u.Email,
		Code:             u.ConfirmationCode,
		Duration:         u.DurationDays,
		NumberOfLicenses: u.NumberOfLicenses,
		OrderNumber:      u.OrderNumber,
	}
}

type adminUserDTO struct {
	ID        json.RawMessage `json:"id"`
	Email     string          `json:"email"`
	Name      string          `json:"name"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
}

type adminUsersDTO struct {
	Data []adminUserDTO `json:"data"`
}

// bulkEntryDTO is one value of the date-range response, keyed by purchase id.
// Signals stay raw so a malformed one can be dropped on its own.
type bulkEntryDTO struct {
	PurchaseDate                  string                  `json:"purchaseDate"`
	OrderNumber                   entity.OrderID          `json:"orderNumber"`
	AdditionalInfo                []entity.AdditionalInfo `json:"additionalInfo"`
	OrderStatus                   json.RawMessage         `json:"orderStatus"`
	OrderConfirmationNotification json.RawMessage         `json:"orderConfirmationNotification"`
	ShippingInfo                  json.RawMessage         `json:"shippingInfo"`
	ActivationRecords             json.RawMessage         `json:"activationRecords"`
}

// signalDefect is a signal that was present in a bulk entry but unreadable.
type signalDefect struct {
	signal entity.SignalName
	err    error
}

func toPurchaseDomain(dto *purchaseDTO) (*entity.Purchase, error) {
	createdAt, err := parseTime(dto.CreatedAt)
	if err != nil {
		return nil, errors.Wrapf(err, "purchase %d created_at", dto.ID)
	}

	// updated_at is informational; an unparsable value falls back to created_at.
	updatedAt, err := parseTime(dto.UpdatedAt)
	if err != nil {
		updatedAt = createdAt
	}

	return &entity.Purchase{
		ID:                dto.ID,
		OrderNumber:       dto.OrderNumber.String(),
		ConfirmationCode:  dto.Code,
		Email:             dto.Email,
		FirstName:         dto.FirstName,
		LastName:          dto.LastName,
		NumberOfVRGlasses: dto.NumberOfVRGlasses,
		NumberOfLicenses:  dto.NumberOfLicenses,
		DurationDays:      dto.Duration,
		IsSubscription:    dto.IsSubscription,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
		AdditionalInfo:    dto.AdditionalInfo,
	}, nil
}

func toActivationDomain(dto *activationDTO) (entity.ActivationRecord, error) {
	activationDate, err := parseOptionalTime(dto.ActivationDate)
	if err != nil {
		return entity.ActivationRecord{}, errors.Wrapf(err, "activation %d activation_date", dto.ID)
	}

	record := entity.ActivationRecord{
		ID:             dto.ID,
		ActivationDate: activationDate,
	}
	if dto.User == nil {
		return record, nil
	}

	validUntil, err := parseOptionalTime(dto.User.ValidUntil)
	if err != nil {
		return entity.ActivationRecord{}, errors.Wrapf(err, "activation %d valid_until", dto.ID)
	}

	sessions := make([]entity.TrainingSession, 0, len(dto.User.TrainingSessions))
	for _, s := range dto.User.TrainingSessions {
		start, err := parseOptionalTime(s.StartTime)
		if err != nil {
			return entity.ActivationRecord{}, errors.Wrapf(err, "activation %d session %d", dto.ID, s.SessionNumber)
		}
		sessions = append(sessions, entity.TrainingSession{
			SessionNumber:   s.SessionNumber,
			StartTime:       start,
			SessionDuration: s.SessionDuration,
		})
	}

	record.User = &entity.ActivationUser{
		ID:               rawID(dto.User.ID),
		ValidUntil:       validUntil,
		TrainingSessions: sessions,
	}

	return record, nil
}

func toActivationDomainList(dtos []activationDTO) ([]entity.ActivationRecord, error) {
	records := make([]entity.ActivationRecord, 0, len(dtos))
	for i := range dtos {
		record, err := toActivationDomain(&dtos[i])
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

func toAdminUserDomain(dto *adminUserDTO) entity.AdminUser {
	name := dto.Name
	if name == "" {
		name = strings.TrimSpace(dto.FirstName + " " + dto.LastName)
	}

	return entity.AdminUser{
		ID:    rawID(dto.ID),
		Email: dto.Email,
		Name:  name,
	}
}

// rawID renders a JSON string or number id as text.
func rawID(raw json.RawMessage) string {
	var id entity.OrderID
	if len(raw) == 0 || json.Unmarshal(raw, &id) != nil {
		return ""
	}

	return id.String()
}

// carrierShipment is the common shape of a PostNord or DHL shipments[0] entry.
type carrierShipment struct {
	ShipmentID string          `json:"shipmentId"`
	ID         string          `json:"id"`
	Status     json.RawMessage `json:"status"`
}

// tagShipment tags an untagged carrier shipment. PostNord reports its status
// as a string, DHL as an object with a statusCode.
func tagShipment(raw json.RawMessage) (*entity.ShippingInfo, error) {
	if isNull(raw) {
		return nil, nil
	}

	var head carrierShipment
	if err := json.Unmarshal(raw, &head); err != nil {
		return nil, errors.Wrap(err, "decode shipping info")
	}

	status := bytes.TrimSpace(head.Status)
	if len(status) > 0 && status[0] == '{' {
		var shipment entity.DHLShipment
		if err := json.Unmarshal(raw, &shipment); err != nil {
			return nil, errors.Wrap(err, "decode dhl shipment")
		}

		return &entity.ShippingInfo{Carrier: entity.CarrierDHL, TrackingNumber: shipment.ID, DHL: &shipment}, nil
	}

	var shipment entity.PostNordShipment
	if err := json.Unmarshal(raw, &shipment); err != nil {
		return nil, errors.Wrap(err, "decode postnord shipment")
	}

	return &entity.ShippingInfo{Carrier: entity.CarrierPostNord, TrackingNumber: shipment.ShipmentID, PostNord: &shipment}, nil
}

func isNull(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)

	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

func decodeOrderStatus(raw json.RawMessage) (*entity.OrderStatus, error) {
	if isNull(raw) {
		return nil, nil
	}

	var status entity.OrderStatus
	if err := json.Unmarshal(raw, &status); err != nil {
		return nil, errors.Wrap(err, "decode order status")
	}

	return &status, nil
}

func decodeEmailStatus(raw json.RawMessage) (*string, error) {
	if isNull(raw) {
		return nil, nil
	}

	var status string
	if err := json.Unmarshal(raw, &status); err != nil {
		return nil, errors.Wrap(err, "decode order confirmation status")
	}

	return &status, nil
}

// decodeActivations keeps every readable record. Unreadable records are
// returned as errors alongside the ones that survived.
func decodeActivations(raw json.RawMessage) ([]entity.ActivationRecord, []error) {
	if isNull(raw) {
		return []entity.ActivationRecord{}, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return []entity.ActivationRecord{}, []error{errors.Wrap(err, "decode activation records")}
	}

	records := make([]entity.ActivationRecord, 0, len(items))
	var failures []error
	for i, item := range items {
		var dto activationDTO
		if err := json.Unmarshal(item, &dto); err != nil {
			failures = append(failures, errors.Wrapf(err, "decode activation record %d", i))

			continue
		}
		record, err := toActivationDomain(&dto)
		if err != nil {
			failures = append(failures, err)

			continue
		}
		records = append(records, record)
	}

	return records, failures
}

// toSnapshotDomain maps one bulk entry. A malformed signal is left absent and
// reported as a defect; only an unusable purchase date rejects the entry.
func toSnapshotDomain(purchaseID int64, dto *bulkEntryDTO) (entity.PurchaseSnapshot, []signalDefect, error) {
	purchaseDate, err := parseTime(dto.PurchaseDate)
	if err != nil {
		return entity.PurchaseSnapshot{}, nil, errors.Wrapf(err, "purchase %d purchaseDate", purchaseID)
	}

	var defects []signalDefect

	orderStatus, err := decodeOrderStatus(dto.OrderStatus)
	if err != nil {
		defects = append(defects, signalDefect{signal: entity.SignalOrderStatus, err: err})
	}

	emailStatus, err := decodeEmailStatus(dto.OrderConfirmationNotification)
	if err != nil {
		defects = append(defects, signalDefect{signal: entity.SignalEmailStatus, err: err})
	}

	shipping, err := tagShipment(dto.ShippingInfo)
	if err != nil {
		defects = append(defects, signalDefect{signal: entity.SignalShipping, err: err})
	}

	records, failures := decodeActivations(dto.ActivationRecords)
	for _, failure := range failures {
		defects = append(defects, signalDefect{signal: entity.SignalActivations, err: failure})
	}

	return entity.PurchaseSnapshot{
		PurchaseID:     purchaseID,
		OrderNumber:    dto.OrderNumber.String(),
		PurchaseDate:   purchaseDate,
		AdditionalInfo: dto.AdditionalInfo,
		Signals: entity.SignalBundle{
			OrderStatus:       orderStatus,
			EmailStatus:       emailStatus,
			ShippingInfo:      shipping,
			ActivationRecords: records,
		},
	}, defects, nil
}
