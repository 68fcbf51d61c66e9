// internal/repository/cache/subscription_cache.go
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"authbase-service/internal/domain/subscription"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	subscriptionKeyPrefix      = "subscription:"
	userSubscriptionsKeyPrefix = "user_subscriptions:"

	defaultTTL = 15 * time.Minute
)

// SubscriptionCache keeps raw subscription rows in Redis. Only stored fields
// are cached; anything time-derived (remaining, expiring-soon) is recomputed
// on every read so a stale clock never leaks out of the cache.
type SubscriptionCache struct {
	client *redis.Client
	logger *zap.Logger
}

func NewSubscriptionCache(client *redis.Client, logger *zap.Logger) *SubscriptionCache {
	return &SubscriptionCache{client: client, logger: logger}
}

// GetHistory returns the cached history list, or nil, nil on a miss.
func (c *SubscriptionCache) GetHistory(ctx context.Context, userID string) ([]subscription.Subscription, error) {
	key := userSubscriptionsKeyPrefix + userID

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read subscription cache: %w", err)
	}

	var subs []subscription.Subscription
	if err := json.Unmarshal(data, &subs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached subscriptions: %w", err)
	}

	return subs, nil
}

func (c *SubscriptionCache) SetHistory(ctx context.Context, userID string, subs []subscription.Subscription) {
	key := userSubscriptionsKeyPrefix + userID

	data, err := json.Marshal(subs)
	if err != nil {
		c.logger.Warn("failed to marshal subscriptions for cache", zap.Error(err))
		return
	}

	if err := c.client.Set(ctx, key, data, defaultTTL).Err(); err != nil {
		c.logger.Warn("failed to cache subscriptions", zap.String("user_id", userID), zap.Error(err))
	}
}

func (c *SubscriptionCache) Get(ctx context.Context, id string) (*subscription.Subscription, error) {
	data, err := c.client.Get(ctx, subscriptionKeyPrefix+id).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read subscription cache: %w", err)
	}

	var sub subscription.Subscription
	if err := json.Unmarshal(data, &sub); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached subscription: %w", err)
	}

	return &sub, nil
}

func (c *SubscriptionCache) Set(ctx context.Context, sub *subscription.Subscription) {
	data, err := json.Marshal(sub)
	if err != nil {
		c.logger.Warn("failed to marshal subscription for cache", zap.Error(err))
		return
	}

	if err := c.client.Set(ctx, subscriptionKeyPrefix+sub.ID, data, defaultTTL).Err(); err != nil {
		c.logger.Warn("failed to cache subscription", zap.String("subscription_id", sub.ID), zap.Error(err))
	}
}

// Invalidate drops every cached view touched by a write to the user's rows.
func (c *SubscriptionCache) Invalidate(ctx context.Context, userID, subscriptionID string) {
	keys := []string{userSubscriptionsKeyPrefix + userID}
	if subscriptionID != "" {
		keys = append(keys, subscriptionKeyPrefix+subscriptionID)
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("failed to invalidate subscription cache", zap.String("user_id", userID), zap.Error(err))
	}
}
