package cache

import (
	"context"
	"log/slog"
	"time"

	"vradmin/config"
	"vradmin/internal/domain/constants"
	"vradmin/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const pingTimeout = 5 * time.Second

// CacheParams holds dependencies for the status cache, injected by Fx
type CacheParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
	Clock  service.Clock
}

// NewStatusCache creates the status cache selected by configuration.
func NewStatusCache(params CacheParams) (service.StatusCache, error) {
	cfg := params.Config.StatusCache
	if cfg == nil {
		cfg = &config.StatusCacheConfig{Provider: constants.CacheProviderMemory}
	}

	switch cfg.Provider {
	case constants.CacheProviderMemory, "":
		params.Logger.Info("Using in-memory status cache", slog.Duration("ttl", cfg.TTL))

		return NewMemoryCache(cfg.TTL, params.Clock), nil

	case constants.CacheProviderRedis:
		if cfg.Redis.Addr == "" {
			return nil, errors.New("redis address is required for redis status cache")
		}

		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		params.Lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
				defer cancel()

				if err := client.Ping(pingCtx).Err(); err != nil {
					return errors.Wrap(err, "redis ping")
				}
				params.Logger.Info("Using redis status cache",
					slog.String("addr", cfg.Redis.Addr),
					slog.Duration("ttl", cfg.TTL),
				)

				return nil
			},
			OnStop: func(ctx context.Context) error {
				return errors.WithStack(client.Close())
			},
		})

		return NewRedisCache(client, cfg.TTL), nil

	default:
		return nil, errors.Errorf("unknown status cache provider: %s", cfg.Provider)
	}
}

// Module provides the status cache FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewStatusCache),
)
