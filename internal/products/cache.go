package products

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const cacheVersionKey = "catalog:products:version"

// ViewCache is an optional read-through cache for product views with
// version-bump invalidation. A nil cache or client is a pass-through; the
// loader runs directly and correctness never depends on Redis being up.
type ViewCache struct {
	client *redis.Client
	ttl    time.Duration
	group  singleflight.Group
}

// NewViewCache instantiates the cache helper.
func NewViewCache(client *redis.Client, ttl time.Duration) *ViewCache {
	return &ViewCache{client: client, ttl: ttl}
}

func (c *ViewCache) version(ctx context.Context) (int64, error) {
	ver, err := c.client.Get(ctx, cacheVersionKey).Int64()
	if err == redis.Nil {
		if err := c.client.Set(ctx, cacheVersionKey, 1, 0).Err(); err != nil {
			return 0, err
		}
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return ver, nil
}

func (c *ViewCache) key(ctx context.Context, suffix string) (string, error) {
	ver, err := c.version(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("catalog:products:%d:%s", ver, suffix), nil
}

// fetch loads dest from the cache, falling back to the loader on a miss.
// Concurrent misses for the same key share one loader call. Cache errors
// degrade to the loader; they never fail the request.
func (c *ViewCache) fetch(ctx context.Context, suffix string, dest any, loader func(context.Context) (any, error)) error {
	if c == nil || c.client == nil {
		value, err := loader(ctx)
		if err != nil {
			return err
		}
		return reencode(value, dest)
	}

	key, err := c.key(ctx, suffix)
	if err == nil {
		if raw, gerr := c.client.Get(ctx, key).Bytes(); gerr == nil {
			if uerr := json.Unmarshal(raw, dest); uerr == nil {
				return nil
			}
			// Corrupt entry: drop it and reload from the store.
			_ = c.client.Del(ctx, key).Err()
		}
	} else {
		value, lerr := loader(ctx)
		if lerr != nil {
			return lerr
		}
		return reencode(value, dest)
	}

	value, err, _ := c.group.Do(key, func() (any, error) {
		value, err := loader(ctx)
		if err != nil {
			return nil, err
		}
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		_ = c.client.Set(ctx, key, encoded, c.ttl).Err()
		return value, nil
	})
	if err != nil {
		return err
	}
	return reencode(value, dest)
}

// Invalidate bumps the version so every cached view expires at once. Called
// after each successful mutation.
func (c *ViewCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	_ = c.client.Incr(ctx, cacheVersionKey).Err()
}

func reencode(value, dest any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dest)
}

func listKey() string {
	return "list"
}

func itemKey(id int64) string {
	return "item:" + strconv.FormatInt(id, 10)
}
