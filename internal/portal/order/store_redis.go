// Copyright (c) 2026 Champa Studio. All rights reserved.
// Author: dev@champa.studio

package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/champastudio/champa/internal/platform/constants"
)

// RedisIdempotencyStore implements [IdempotencyStore] using Redis SET NX,
// which makes the claim atomic across API instances.
type RedisIdempotencyStore struct {
	client *redis.Client
}

// NewIdempotencyStore creates a new Redis-backed IdempotencyStore.
func NewIdempotencyStore(client *redis.Client) *RedisIdempotencyStore {
	return &RedisIdempotencyStore{client: client}
}

/*
Reserve atomically claims key for orderID.

Description: A fresh claim returns "". A key already held returns the order
ID that holds it, so the caller can hand back the original order.

Parameters:
  - context: context.Context
  - key: string
  - orderID: string
  - ttl: time.Duration

Returns:
  - string: Holder order ID, "" when the claim is fresh
  - error: Connectivity failures
*/
func (store *RedisIdempotencyStore) Reserve(context context.Context, key, orderID string, ttl time.Duration) (string, error) {

	// Build the namespaced key
	redisKey := constants.RedisPrefixOrderKey + key

	// Claim atomically; only the first writer wins
	claimed, err := store.client.SetNX(context, redisKey, orderID, ttl).Result()
	if err != nil {
		return "", fmt.Errorf("redis_order_key_reserve_failed: %w", err)
	}

	if claimed {
		return "", nil
	}

	// Someone holds the key; resolve the original order ID
	holder, err := store.client.Get(context, redisKey).Result()
	if err != nil {
		// The key expired between SetNX and Get. Treat as fresh on retry.
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("redis_order_key_lookup_failed: %w", err)
	}

	return holder, nil
}

/*
Release frees a reserved key after a failed order creation.

Parameters:
  - context: context.Context
  - key: string

Returns:
  - error: Deletion failures
*/
func (store *RedisIdempotencyStore) Release(context context.Context, key string) error {

	// Build the namespaced key
	redisKey := constants.RedisPrefixOrderKey + key

	// Delete the claim
	if err := store.client.Del(context, redisKey).Err(); err != nil {
		return fmt.Errorf("redis_order_key_release_failed: %w", err)
	}

	return nil
}
