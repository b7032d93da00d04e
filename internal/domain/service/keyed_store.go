package service

import (
	"context"
	"time"
)

// KeyedStore is a small keyed counter store with per-key expiry.
// It backs request throttling on the discovery endpoints.
type KeyedStore interface {
	// Increment bumps the counter for key, setting ttl on first touch,
	// and returns the post-increment value.
	Increment(ctx context.Context, key string, ttl time.Duration) (int64, error)

	// Close releases any resources held by the store.
	Close() error
}
