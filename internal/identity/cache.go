package identity

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// Cache хранит определённых пользователей с ограниченным сроком жизни.
type Cache interface {
	Get(key string) (Identity, bool)
	Set(key string, id Identity, ttl time.Duration)
}

// sweepEvery: через сколько вставок выполнять очистку просроченных записей.
const sweepEvery = 256

type cacheEntry struct {
	id        Identity
	expiresAt time.Time
}

// TTLCache: потокобезопасный кэш с абсолютным сроком жизни записей.
type TTLCache struct {
	mu      sync.Mutex
	clock   clock.Clock
	entries map[string]cacheEntry
	inserts int
}

// NewTTLCache создаёт кэш. clk == nil: системные часы.
func NewTTLCache(clk clock.Clock) *TTLCache {
	if clk == nil {
		clk = clock.New()
	}
	return &TTLCache{clock: clk, entries: make(map[string]cacheEntry)}
}

func (c *TTLCache) Get(key string) (Identity, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return Identity{}, false
	}
	if !c.clock.Now().Before(e.expiresAt) {
		delete(c.entries, key)
		return Identity{}, false
	}
	return e.id, true
}

func (c *TTLCache) Set(key string, id Identity, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	c.entries[key] = cacheEntry{id: id, expiresAt: now.Add(ttl)}
	c.inserts++
	if c.inserts%sweepEvery == 0 {
		for k, e := range c.entries {
			if !now.Before(e.expiresAt) {
				delete(c.entries, k)
			}
		}
	}
}

// Len: количество записей, включая ещё не вычищенные просроченные.
func (c *TTLCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
