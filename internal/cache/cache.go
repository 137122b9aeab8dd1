package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL matches the original one-hour expiry window.
const DefaultTTL = time.Hour

// entry is the stored envelope. Expiry is judged from StoredAt on read,
// so an entry is logically absent the moment it ages past the TTL even
// if the sweep has not seen it yet.
type entry struct {
	Value    json.RawMessage `json:"value"`
	StoredAt int64           `json:"storedAt"`
}

// Cache is a namespaced key-value store with expiry on top of Redis.
// Storage failures and corrupt payloads never reach callers: reads
// degrade to a miss and writes to a no-op, logged only.
type Cache struct {
	client  *redis.Client
	prefix  string
	ttl     time.Duration
	nowFunc func() time.Time
}

// New creates a Cache. Keys are namespaced under prefix so Clear and
// PurgeExpired cannot touch unrelated keys in the same Redis database.
func New(client *redis.Client, prefix string, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		client:  client,
		prefix:  prefix,
		ttl:     ttl,
		nowFunc: time.Now,
	}
}

// Put stores value under key, overwriting any existing entry.
func (c *Cache) Put(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("[cache] marshal %s: %v", key, err)
		return
	}

	data, err := json.Marshal(entry{
		Value:    raw,
		StoredAt: c.nowFunc().UnixMilli(),
	})
	if err != nil {
		log.Printf("[cache] marshal envelope %s: %v", key, err)
		return
	}

	if err := c.client.Set(ctx, c.prefix+key, data, 0).Err(); err != nil {
		log.Printf("[cache] set %s: %v", key, err)
	}
}

// Get loads key into dest, reporting whether a live entry was found.
// Expired entries are deleted and reported absent.
func (c *Cache) Get(ctx context.Context, key string, dest any) bool {
	data, err := c.client.Get(ctx, c.prefix+key).Result()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		log.Printf("[cache] get %s: %v", key, err)
		return false
	}

	var e entry
	if err := json.Unmarshal([]byte(data), &e); err != nil {
		log.Printf("[cache] corrupt entry %s: %v", key, err)
		return false
	}

	if c.expired(e) {
		if err := c.client.Del(ctx, c.prefix+key).Err(); err != nil {
			log.Printf("[cache] del expired %s: %v", key, err)
		}
		return false
	}

	if err := json.Unmarshal(e.Value, dest); err != nil {
		log.Printf("[cache] corrupt value %s: %v", key, err)
		return false
	}
	return true
}

// Remove deletes a single entry.
func (c *Cache) Remove(ctx context.Context, key string) {
	if err := c.client.Del(ctx, c.prefix+key).Err(); err != nil {
		log.Printf("[cache] del %s: %v", key, err)
	}
}

// Clear removes every entry under the cache prefix, leaving unrelated
// keys in the same database untouched.
func (c *Cache) Clear(ctx context.Context) {
	c.sweep(ctx, func(entry) bool { return true })
}

// PurgeExpired removes only the prefixed entries past their TTL.
func (c *Cache) PurgeExpired(ctx context.Context) {
	c.sweep(ctx, c.expired)
}

func (c *Cache) expired(e entry) bool {
	return c.nowFunc().UnixMilli()-e.StoredAt > c.ttl.Milliseconds()
}

func (c *Cache) sweep(ctx context.Context, drop func(entry) bool) {
	iter := c.client.Scan(ctx, 0, c.prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()

		data, err := c.client.Get(ctx, key).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			log.Printf("[cache] sweep get %s: %v", key, err)
			continue
		}

		var e entry
		if err := json.Unmarshal([]byte(data), &e); err != nil {
			// Corrupt entries are dropped on any sweep.
			e = entry{}
		}

		if drop(e) {
			if err := c.client.Del(ctx, key).Err(); err != nil {
				log.Printf("[cache] sweep del %s: %v", key, err)
			}
		}
	}
	if err := iter.Err(); err != nil {
		log.Printf("[cache] sweep scan: %v", err)
	}
}
