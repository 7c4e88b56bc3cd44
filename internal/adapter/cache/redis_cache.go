package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Radithya02/Catering-Food/internal/entity"
	"github.com/Radithya02/Catering-Food/internal/usecase"
)

// RedisCatalogCache fronts menu lookups. Entries are whole Food records as
// JSON; the Kafka price handler invalidates on repricing.
type RedisCatalogCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCatalogCache(rdb *redis.Client, ttl time.Duration) *RedisCatalogCache {
	return &RedisCatalogCache{rdb: rdb, ttl: ttl}
}

func foodKey(id string) string { return "menu:food:" + id }

func (c *RedisCatalogCache) GetFood(ctx context.Context, id string) (entity.Food, bool, error) {
	raw, err := c.rdb.Get(ctx, foodKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entity.Food{}, false, nil
	}
	if err != nil {
		return entity.Food{}, false, err
	}
	var f entity.Food
	if err := json.Unmarshal(raw, &f); err != nil {
		// poisoned entry: drop it and report a miss
		_ = c.rdb.Del(ctx, foodKey(id)).Err()
		return entity.Food{}, false, nil
	}
	return f, true, nil
}

func (c *RedisCatalogCache) SetFood(ctx context.Context, f entity.Food) error {
	raw, err := json.Marshal(f)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, foodKey(f.ID), raw, c.ttl).Err()
}

func (c *RedisCatalogCache) Invalidate(ctx context.Context, id string) error {
	return c.rdb.Del(ctx, foodKey(id)).Err()
}

var _ usecase.CatalogCache = (*RedisCatalogCache)(nil)
