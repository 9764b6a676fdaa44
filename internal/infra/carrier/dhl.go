package carrier

import (
	"context"
	"net/url"

	"vradmin/internal/domain/entity"
	"vradmin/internal/domain/service"
	"vradmin/internal/infra/httpx"

	"github.com/pkg/errors"
)

const (
	dhlTrackPath    = "/track/shipments"
	dhlAPIKeyHeader = "DHL-API-Key"
)

type dhlResponse struct {
	Shipments []entity.DHLShipment `json:"shipments"`
}

type dhlTracker struct {
	http *httpx.Client
}

// NewDHLTracker creates a tracker for the DHL unified tracking API. The
// client must carry the DHL-API-Key header.
func NewDHLTracker(http *httpx.Client) service.CarrierTracker {
	return &dhlTracker{http: http}
}

func (t *dhlTracker) Carrier() entity.Carrier {
	return entity.CarrierDHL
}

func (t *dhlTracker) Track(ctx context.Context, trackingNumber string) (*entity.ShippingInfo, error) {
	var resp dhlResponse
	err := t.http.GetJSON(ctx, dhlTrackPath, url.Values{"trackingNumber": {trackingNumber}}, &resp)
	if err != nil {
		if errors.Is(err, httpx.ErrNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "dhl track")
	}

	if len(resp.Shipments) == 0 {
		return nil, nil
	}

	return &entity.ShippingInfo{
		Carrier:        entity.CarrierDHL,
		TrackingNumber: trackingNumber,
		DHL:            &resp.Shipments[0],
	}, nil
}
