package cache

import (
	"context"
	"fmt"
	"time"

	"pricewaze-decision-engine/die"
)

// WaitRiskCache memoizes base wait-risk results in Redis, keyed by property
// and a hash of the full input tuple so stale upstream aggregates never
// leak into a fresh analysis. Implements die.ResultCache.
type WaitRiskCache struct {
	redis *RedisClient
	ttl   time.Duration
}

// NewWaitRiskCache creates a new wait-risk result cache
func NewWaitRiskCache(redis *RedisClient, ttl time.Duration) *WaitRiskCache {
	return &WaitRiskCache{
		redis: redis,
		ttl:   ttl,
	}
}

// GetResult retrieves a cached wait-risk result.
// Returns the result and true if found, nil and false otherwise.
func (c *WaitRiskCache) GetResult(ctx context.Context, propertyID, inputHash string) (*die.WaitRisk, bool) {
	if c.redis == nil {
		return nil, false
	}

	var result die.WaitRisk
	if err := c.redis.Get(ctx, resultKey(propertyID, inputHash), &result); err != nil {
		return nil, false
	}

	return &result, true
}

// SetResult caches a wait-risk result for a property
func (c *WaitRiskCache) SetResult(ctx context.Context, propertyID, inputHash string, result *die.WaitRisk) error {
	if c.redis == nil {
		return fmt.Errorf("redis client not available")
	}

	return c.redis.Set(ctx, resultKey(propertyID, inputHash), result, c.ttl)
}

// Invalidate drops a cached result for a property
func (c *WaitRiskCache) Invalidate(ctx context.Context, propertyID, inputHash string) error {
	if c.redis == nil {
		return nil
	}

	return c.redis.Delete(ctx, resultKey(propertyID, inputHash))
}

func resultKey(propertyID, inputHash string) string {
	return fmt.Sprintf("waitrisk:result:%s:%s", propertyID, inputHash)
}
