package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"vradmin/internal/domain/entity"
	"vradmin/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "vradmin:purchase-status:"

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache creates a status cache shared between processes. A zero ttl
// stores keys without expiry.
func NewRedisCache(client *redis.Client, ttl time.Duration) service.StatusCache {
	return &redisCache{client: client, ttl: ttl}
}

func statusKey(purchaseID int64) string {
	return keyPrefix + strconv.FormatInt(purchaseID, 10)
}

func (c *redisCache) Get(ctx context.Context, purchaseID int64) (*entity.CachedStatus, bool, error) {
	raw, err := c.client.Get(ctx, statusKey(purchaseID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}

		return nil, false, errors.WithStack(err)
	}

	var status entity.CachedStatus
	if err := json.Unmarshal(raw, &status); err != nil {
		// A payload from an older layout is treated as a miss and replaced on the next Set.
		return nil, false, nil
	}

	return &status, true, nil
}

func (c *redisCache) Set(ctx context.Context, purchaseID int64, status *entity.CachedStatus) error {
	if status == nil {
		return nil
	}

	raw, err := json.Marshal(status)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.client.Set(ctx, statusKey(purchaseID), raw, c.ttl).Err())
}

func (c *redisCache) Delete(ctx context.Context, purchaseID int64) error {
	return errors.WithStack(c.client.Del(ctx, statusKey(purchaseID)).Err())
}
