package status

import (
	"testing"

	"vradmin/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestIsDelivered(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		info *entity.ShippingInfo
		want bool
	}{
		{"nil shipping", nil, false},
		{"postnord delivered", postNord("DELIVERED"), true},
		{"postnord lower case", postNord("delivered"), false},
		{"postnord en route", postNord("EN_ROUTE"), false},
		{"dhl delivered", dhl("delivered"), true},
		{"dhl upper case", dhl("DELIVERED"), false},
		{"dhl transit", dhl("transit"), false},
		{"dhl without payload", &entity.ShippingInfo{Carrier: entity.CarrierDHL}, false},
		{"carrier payload mismatch", &entity.ShippingInfo{Carrier: entity.CarrierDHL, PostNord: &entity.PostNordShipment{Status: "DELIVERED"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsDelivered(tt.info))
		})
	}
}

func TestStateOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ShipmentInTransit, StateOf(postNord("AVAILABLE_FOR_DELIVERY")))
	assert.Equal(t, ShipmentPending, StateOf(dhl("pre-transit")))
	assert.Equal(t, ShipmentFailed, StateOf(dhl("failure")))
	assert.Equal(t, ShipmentUnknown, StateOf(dhl("something-new")))
	assert.Equal(t, ShipmentUnknown, StateOf(nil))
}

func TestCarrierFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, entity.CarrierPostNord, CarrierFor("UU123456789SE"))
	assert.Equal(t, entity.CarrierDHL, CarrierFor("JVGL0600123"))
	assert.Equal(t, entity.CarrierDHL, CarrierFor("uu123"))
	assert.Equal(t, entity.CarrierDHL, CarrierFor(""))
}
