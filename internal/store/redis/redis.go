// Package redis implements the store.KV boundary on a single Redis key,
// for setups that share one dashboard document across machines. The
// document stays a single serialized value; last write wins, same as the
// file backend.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/tabdeck/tabdeck/internal/store"
)

// KV stores the document under store.StorageKey.
type KV struct {
	client *redis.Client
}

func New(client *redis.Client) *KV {
	return &KV{client: client}
}

func (k *KV) Get(ctx context.Context) ([]byte, bool, error) {
	data, err := k.client.Get(ctx, store.StorageKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get config key: %w", err)
	}
	return data, true, nil
}

func (k *KV) Set(ctx context.Context, data []byte) error {
	// No TTL: the document lives until explicitly cleared.
	if err := k.client.Set(ctx, store.StorageKey, data, 0).Err(); err != nil {
		return fmt.Errorf("set config key: %w", err)
	}
	return nil
}

func (k *KV) Delete(ctx context.Context) error {
	if err := k.client.Del(ctx, store.StorageKey).Err(); err != nil {
		return fmt.Errorf("delete config key: %w", err)
	}
	return nil
}
