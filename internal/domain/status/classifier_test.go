package status

import (
	"testing"
	"time"

	"vradmin/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var evalTime = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func completedOrder(orderID string) *entity.OrderStatus {
	return &entity.OrderStatus{Status: "completed", OrderID: entity.OrderID(orderID)}
}

func dhl(code string) *entity.ShippingInfo {
	return &entity.ShippingInfo{
		Carrier: entity.CarrierDHL,
		DHL:     &entity.DHLShipment{ID: "JD0001", Status: entity.DHLStatus{StatusCode: code}},
	}
}

func postNord(code string) *entity.ShippingInfo {
	return &entity.ShippingInfo{
		Carrier:  entity.CarrierPostNord,
		PostNord: &entity.PostNordShipment{ShipmentID: "UU123SE", Status: code},
	}
}

func activation(validUntil *time.Time, sessions int) entity.ActivationRecord {
	user := &entity.ActivationUser{ValidUntil: validUntil}
	for i := range sessions {
		start := evalTime.AddDate(0, 0, -i)
		user.TrainingSessions = append(user.TrainingSessions, entity.TrainingSession{
			SessionNumber: i + 1,
			StartTime:     &start,
		})
	}

	return entity.ActivationRecord{ID: 1, User: user}
}

func TestClassify_AllSignalsAbsent(t *testing.T) {
	t.Parallel()

	st := Classify(entity.SignalBundle{}, evalTime)
	require.NotNil(t, st)

	assert.Equal(t, entity.CategoryUnknown, st.Category)
	assert.False(t, st.HasOrderStatusEmail)
	assert.False(t, st.StartedTraining)
	assert.False(t, st.StartedTrainingWithVR)
	assert.False(t, st.IsInvalidAccount)
	assert.False(t, st.IsActivatedVRDeliveredNotTrained)
	assert.False(t, st.IsActivatedVRNotDelivered)
	assert.False(t, st.MultipleActivations)
	assert.Equal(t, evalTime, st.EvaluatedAt)
}

func TestClassify_Scenarios(t *testing.T) {
	t.Parallel()

	future := evalTime.AddDate(1, 0, 0)
	yesterday := evalTime.AddDate(0, 0, -1)

	tests := []struct {
		name     string
		bundle   entity.SignalBundle
		category entity.StatusCategory
		check    func(t *testing.T, st *entity.PurchaseStatus)
	}{
		{
			name: "order and email without shipping is pending",
			bundle: entity.SignalBundle{
				OrderStatus: completedOrder("12345678"),
				EmailStatus: ptr("sent"),
			},
			category: entity.CategoryPendingConfirmation,
			check: func(t *testing.T, st *entity.PurchaseStatus) {
				assert.True(t, st.HasOrderStatusEmail)
			},
		},
		{
			name: "delivered by DHL with training is trained with VR",
			bundle: entity.SignalBundle{
				OrderStatus:       completedOrder("12345678"),
				EmailStatus:       ptr("sent"),
				ShippingInfo:      dhl("delivered"),
				ActivationRecords: []entity.ActivationRecord{activation(&future, 1)},
			},
			category: entity.CategoryTrained,
			check: func(t *testing.T, st *entity.PurchaseStatus) {
				assert.True(t, st.StartedTraining)
				assert.True(t, st.StartedTrainingWithVR)
				assert.False(t, st.HasOrderStatusEmail)
			},
		},
		{
			name: "expired account without training is invalid",
			bundle: entity.SignalBundle{
				ActivationRecords: []entity.ActivationRecord{activation(&yesterday, 0)},
			},
			category: entity.CategoryInvalid,
			check: func(t *testing.T, st *entity.PurchaseStatus) {
				assert.True(t, st.IsInvalidAccount)
				assert.False(t, st.StartedTraining)
			},
		},
		{
			name: "delivered activation without sessions awaits training",
			bundle: entity.SignalBundle{
				OrderStatus:       completedOrder("1001"),
				EmailStatus:       ptr("opened"),
				ShippingInfo:      postNord("DELIVERED"),
				ActivationRecords: []entity.ActivationRecord{activation(nil, 0)},
			},
			category: entity.CategoryDeliveredNotTrained,
			check: func(t *testing.T, st *entity.PurchaseStatus) {
				assert.True(t, st.IsActivatedVRDeliveredNotTrained)
				assert.False(t, st.IsActivatedVRNotDelivered)
			},
		},
		{
			name: "activation with shipment in transit is pending",
			bundle: entity.SignalBundle{
				OrderStatus:       completedOrder("1001"),
				EmailStatus:       ptr("sent"),
				ShippingInfo:      dhl("transit"),
				ActivationRecords: []entity.ActivationRecord{activation(nil, 0)},
			},
			category: entity.CategoryPendingConfirmation,
			check: func(t *testing.T, st *entity.PurchaseStatus) {
				assert.True(t, st.IsActivatedVRNotDelivered)
				assert.False(t, st.IsActivatedVRDeliveredNotTrained)
			},
		},
		{
			name: "DHL delivered does not count as not delivered",
			bundle: entity.SignalBundle{
				OrderStatus:       completedOrder("1001"),
				EmailStatus:       ptr("sent"),
				ShippingInfo:      dhl("delivered"),
				ActivationRecords: []entity.ActivationRecord{activation(nil, 0)},
			},
			category: entity.CategoryDeliveredNotTrained,
			check: func(t *testing.T, st *entity.PurchaseStatus) {
				assert.False(t, st.IsActivatedVRNotDelivered)
			},
		},
		{
			name: "training without shipping is still trained",
			bundle: entity.SignalBundle{
				ActivationRecords: []entity.ActivationRecord{activation(nil, 3)},
			},
			category: entity.CategoryTrained,
			check: func(t *testing.T, st *entity.PurchaseStatus) {
				assert.True(t, st.StartedTraining)
				assert.False(t, st.StartedTrainingWithVR)
			},
		},
		{
			name: "activation without user is unknown",
			bundle: entity.SignalBundle{
				ActivationRecords: []entity.ActivationRecord{{ID: 7}},
			},
			category: entity.CategoryUnknown,
		},
		{
			name: "empty email status is treated as absent",
			bundle: entity.SignalBundle{
				OrderStatus: completedOrder("1001"),
				EmailStatus: ptr(""),
			},
			category: entity.CategoryUnknown,
			check: func(t *testing.T, st *entity.PurchaseStatus) {
				assert.False(t, st.HasOrderStatusEmail)
			},
		},
		{
			name: "second activation sets multiple activations",
			bundle: entity.SignalBundle{
				ActivationRecords: []entity.ActivationRecord{activation(&future, 2), activation(nil, 0)},
			},
			category: entity.CategoryTrained,
			check: func(t *testing.T, st *entity.PurchaseStatus) {
				assert.True(t, st.MultipleActivations)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			st := Classify(tt.bundle, evalTime)
			assert.Equal(t, tt.category, st.Category)
			if tt.check != nil {
				tt.check(t, st)
			}
		})
	}
}

func TestClassify_ValidUntilBoundary(t *testing.T) {
	t.Parallel()

	bundle := entity.SignalBundle{
		ActivationRecords: []entity.ActivationRecord{activation(&evalTime, 0)},
	}

	st := Classify(bundle, evalTime)
	assert.False(t, st.IsInvalidAccount, "valid_until equal to now is not yet expired")

	st = Classify(bundle, evalTime.Add(time.Nanosecond))
	assert.True(t, st.IsInvalidAccount)
}

func TestCategory_Precedence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   entity.PurchaseStatus
		category entity.StatusCategory
	}{
		{
			name:     "trained beats invalid",
			status:   entity.PurchaseStatus{StartedTraining: true, IsInvalidAccount: true},
			category: entity.CategoryTrained,
		},
		{
			name:     "trained with VR beats pending",
			status:   entity.PurchaseStatus{StartedTrainingWithVR: true, HasOrderStatusEmail: true},
			category: entity.CategoryTrained,
		},
		{
			name:     "pending beats delivered not trained",
			status:   entity.PurchaseStatus{IsActivatedVRNotDelivered: true, IsActivatedVRDeliveredNotTrained: true},
			category: entity.CategoryPendingConfirmation,
		},
		{
			name:     "delivered not trained beats invalid",
			status:   entity.PurchaseStatus{IsActivatedVRDeliveredNotTrained: true, IsInvalidAccount: true},
			category: entity.CategoryDeliveredNotTrained,
		},
		{
			name:     "invalid alone",
			status:   entity.PurchaseStatus{IsInvalidAccount: true, MultipleActivations: true},
			category: entity.CategoryInvalid,
		},
		{
			name:     "nothing set",
			status:   entity.PurchaseStatus{MultipleActivations: true},
			category: entity.CategoryUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.category, Category(&tt.status))
		})
	}
}

// Every combination of present and absent signals yields exactly one known category.
func TestClassify_Totality(t *testing.T) {
	t.Parallel()

	past := evalTime.AddDate(0, -1, 0)
	future := evalTime.AddDate(0, 1, 0)

	orders := []*entity.OrderStatus{nil, completedOrder("1"), {Status: "processing", OrderID: "123456789"}}
	emails := []*string{nil, ptr(""), ptr("sent")}
	shipping := []*entity.ShippingInfo{nil, dhl("delivered"), dhl("transit"), postNord("DELIVERED"), postNord("EN_ROUTE"), {Carrier: entity.CarrierDHL}}
	records := [][]entity.ActivationRecord{
		nil,
		{{}},
		{activation(nil, 0)},
		{activation(&past, 0)},
		{activation(&past, 2)},
		{activation(&future, 1), activation(nil, 0)},
	}

	for _, o := range orders {
		for _, e := range emails {
			for _, s := range shipping {
				for _, r := range records {
					st := Classify(entity.SignalBundle{OrderStatus: o, EmailStatus: e, ShippingInfo: s, ActivationRecords: r}, evalTime)
					require.NotNil(t, st)
					assert.Contains(t, entity.AllCategories, st.Category)
					if st.StartedTrainingWithVR {
						assert.True(t, st.StartedTraining)
					}
					assert.False(t, st.IsActivatedVRDeliveredNotTrained && st.IsActivatedVRNotDelivered)
				}
			}
		}
	}
}
