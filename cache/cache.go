// The Licensed Work is (c) 2024 Remitix
// SPDX-License-Identifier: LGPL-3.0-only

package cache

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("key not found")

// Cache is the TTL-capable key-value collaborator used for short-lived
// records such as quotes. A zero ttl stores without expiry.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}
