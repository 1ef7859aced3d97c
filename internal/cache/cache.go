// Package cache is a Redis read-through cache over collection reads. One
// rule governs it: every successful mutation invalidates exactly the
// collections it touched. Redis being down degrades to direct DB reads.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"buildtrack/internal/logging"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Collection keys.
const (
	KeyProjects = "projects"
	KeyTasksAll = "tasks:all"
)

// KeyProjectTasks is the cache key for one project's task list.
func KeyProjectTasks(projectID uuid.UUID) string {
	return fmt.Sprintf("tasks:project:%s", projectID)
}

type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New connects to Redis at addr. An empty addr returns a disabled cache on
// which every method is a no-op.
func New(addr string) *Cache {
	if addr == "" {
		return &Cache{}
	}
	return &Cache{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
		ttl: 5 * time.Minute,
	}
}

func (c *Cache) Enabled() bool {
	return c != nil && c.rdb != nil
}

// GetJSON loads key into dest, reporting whether it was a hit. Errors count
// as misses.
func (c *Cache) GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if !c.Enabled() {
		return false
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logging.Logger.Warnf("cache get %q failed: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		logging.Logger.Warnf("cache decode %q failed: %v", key, err)
		return false
	}
	return true
}

// SetJSON stores v under key. Failures are logged and ignored.
func (c *Cache) SetJSON(ctx context.Context, key string, v interface{}) {
	if !c.Enabled() {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		logging.Logger.Warnf("cache encode %q failed: %v", key, err)
		return
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		logging.Logger.Warnf("cache set %q failed: %v", key, err)
	}
}

// Invalidate drops the given keys after a successful mutation.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if !c.Enabled() || len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		logging.Logger.Warnf("cache invalidate %v failed: %v", keys, err)
	}
}
