// Package carrier tracks shipments at PostNord and DHL.
package carrier

import (
	"context"
	"net/url"

	"vradmin/internal/domain/entity"
	"vradmin/internal/domain/service"
	"vradmin/internal/infra/httpx"

	"github.com/pkg/errors"
)

const postNordTrackPath = "/rest/shipment/v5/trackandtrace/findByIdentifier.json"

type postNordResponse struct {
	TrackingInformationResponse struct {
		Shipments []entity.PostNordShipment `json:"shipments"`
	} `json:"TrackingInformationResponse"`
}

type postNordTracker struct {
	http   *httpx.Client
	apiKey string
	locale string
}

// NewPostNordTracker creates a tracker for the PostNord track and trace API.
func NewPostNordTracker(http *httpx.Client, apiKey, locale string) service.CarrierTracker {
	return &postNordTracker{http: http, apiKey: apiKey, locale: locale}
}

func (t *postNordTracker) Carrier() entity.Carrier {
	return entity.CarrierPostNord
}

func (t *postNordTracker) Track(ctx context.Context, trackingNumber string) (*entity.ShippingInfo, error) {
	query := url.Values{
		"apikey": {t.apiKey},
		"id":     {trackingNumber},
		"locale": {t.locale},
	}

	var resp postNordResponse
	if err := t.http.GetJSON(ctx, postNordTrackPath, query, &resp); err != nil {
		if errors.Is(err, httpx.ErrNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "postnord track")
	}

	shipments := resp.TrackingInformationResponse.Shipments
	if len(shipments) == 0 {
		return nil, nil
	}

	return &entity.ShippingInfo{
		Carrier:        entity.CarrierPostNord,
		TrackingNumber: trackingNumber,
		PostNord:       &shipments[0],
	}, nil
}
