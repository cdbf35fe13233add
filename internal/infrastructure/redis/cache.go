package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/infrastructure/logging"
	"github.com/Larryveryhandsome/taiwan-legal-ai/pkg/errors"
)

// Cache is a JSON value cache with a shared key prefix and TTL.
// Concurrent misses for the same key are collapsed into one fill via
// singleflight.
type Cache struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
	group  singleflight.Group
	log    logging.Logger
}

// NewCache wires a Cache over an established client.
func NewCache(client *goredis.Client, prefix string, ttl time.Duration, log logging.Logger) *Cache {
	return &Cache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
		log:    log.Named("cache"),
	}
}

// BuildKey joins the parts under the cache prefix.  Parts longer than 64
// bytes are hashed so free-text values (question bodies) yield bounded keys.
func (c *Cache) BuildKey(parts ...string) string {
	elems := make([]string, 0, len(parts)+1)
	elems = append(elems, c.prefix)
	for _, p := range parts {
		if len(p) > 64 {
			sum := sha256.Sum256([]byte(p))
			p = hex.EncodeToString(sum[:])
		}
		elems = append(elems, p)
	}
	return strings.Join(elems, ":")
}

// Get unmarshals the cached value at key into dest.  A miss returns
// (false, nil).
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err == goredis.Nil {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, errors.ErrCodeCacheError, "cache get")
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, errors.Wrap(err, errors.ErrCodeCacheError, "cache decode")
	}
	return true, nil
}

// Set stores v at key for the configured TTL.
func (c *Cache) Set(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeCacheError, "cache encode")
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return errors.Wrap(err, errors.ErrCodeCacheError, "cache set")
	}
	return nil
}

// Delete removes key from the cache.
func (c *Cache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return errors.Wrap(err, errors.ErrCodeCacheError, "cache delete")
	}
	return nil
}

// GetOrFill returns the cached value at key, or runs fill once per key
// across concurrent callers, caches its result, and returns it.  The
// result is delivered into dest either way.  Cache write failures are
// logged, not fatal: the fresh value still reaches the caller.
func (c *Cache) GetOrFill(ctx context.Context, key string, dest interface{}, fill func(context.Context) (interface{}, error)) (bool, error) {
	hit, err := c.Get(ctx, key, dest)
	if err != nil {
		c.log.Warn("cache read failed, filling directly", logging.String("key", key), logging.Err(err))
	}
	if hit {
		return true, nil
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		fresh, err := fill(ctx)
		if err != nil {
			return nil, err
		}
		if err := c.Set(ctx, key, fresh); err != nil {
			c.log.Warn("cache write failed", logging.String("key", key), logging.Err(err))
		}
		return fresh, nil
	})
	if err != nil {
		return false, err
	}

	// Round-trip through JSON so every flight participant gets its own copy.
	data, err := json.Marshal(v)
	if err != nil {
		return false, errors.Wrap(err, errors.ErrCodeCacheError, "cache encode")
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, errors.Wrap(err, errors.ErrCodeCacheError, "cache decode")
	}
	return false, nil
}
