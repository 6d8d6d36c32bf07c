package cache

import (
	"context"
	"time"
)

// Cache is the JSON blob cache used for assembled full-resume reads. A nil
// Cache is a valid configuration; callers degrade to uncached reads.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}
