package carrier

import (
	"context"
	"log/slog"

	"vradmin/config"
	"vradmin/internal/domain/entity"
	"vradmin/internal/domain/service"
	"vradmin/internal/domain/status"
	"vradmin/internal/infra/httpx"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultPostNordBaseURL = "https://api2.postnord.com"
	defaultDHLBaseURL      = "https://api-eu.dhl.com"
)

// ErrCarrierNotConfigured is returned for a carrier without an API key.
var ErrCarrierNotConfigured = errors.New("carrier not configured")

type router struct {
	trackers map[entity.Carrier]service.CarrierTracker
}

// NewRouter routes each tracking number to the one carrier it belongs to.
func NewRouter(trackers ...service.CarrierTracker) service.ShipmentTracker {
	byCarrier := make(map[entity.Carrier]service.CarrierTracker, len(trackers))
	for _, tracker := range trackers {
		byCarrier[tracker.Carrier()] = tracker
	}

	return &router{trackers: byCarrier}
}

func (r *router) Track(ctx context.Context, trackingNumber string) (*entity.ShippingInfo, error) {
	if trackingNumber == "" {
		return nil, nil
	}

	carrier := status.CarrierFor(trackingNumber)
	tracker, ok := r.trackers[carrier]
	if !ok {
		return nil, errors.Wrapf(ErrCarrierNotConfigured, "%s", carrier)
	}

	return tracker.Track(ctx, trackingNumber)
}

// TrackerParams holds dependencies for the shipment tracker, injected by Fx
type TrackerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewShipmentTracker builds the carrier router from configuration. Carriers
// without an API key are left out, so their tracking numbers surface as
// collector warnings.
func NewShipmentTracker(params TrackerParams) service.ShipmentTracker {
	cfg := params.Config.Carriers
	if cfg == nil {
		cfg = &config.CarriersConfig{}
	}
	logger := params.Logger.With(slog.String("component", "carrier"))

	trackers := make([]service.CarrierTracker, 0, 2)

	if cfg.PostNord.APIKey != "" {
		client := httpx.New(baseURLOr(cfg.PostNord.BaseURL, defaultPostNordBaseURL),
			logger.With(slog.String("carrier", string(entity.CarrierPostNord))))
		trackers = append(trackers, NewPostNordTracker(client, cfg.PostNord.APIKey, cfg.PostNord.Locale))
	} else {
		logger.Warn("PostNord API key not set, PostNord tracking disabled")
	}

	if cfg.DHL.APIKey != "" {
		client := httpx.New(baseURLOr(cfg.DHL.BaseURL, defaultDHLBaseURL),
			logger.With(slog.String("carrier", string(entity.CarrierDHL))),
			httpx.WithHeader(dhlAPIKeyHeader, cfg.DHL.APIKey))
		trackers = append(trackers, NewDHLTracker(client))
	} else {
		logger.Warn("DHL API key not set, DHL tracking disabled")
	}

	return NewRouter(trackers...)
}

func baseURLOr(configured, fallback string) string {
	if configured != "" {
		return configured
	}

	return fallback
}
