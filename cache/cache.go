package cache

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// Cache is a size-bounded, TTL-aware in-memory cache keyed by string.
type Cache[T any] struct {
	impl *ristretto.Cache[string, T]
	name string
	ttl  time.Duration
}

// Stats is a point-in-time view of cache activity.
type Stats struct {
	Name         string  `json:"name"`
	Hits         uint64  `json:"hits"`
	Misses       uint64  `json:"misses"`
	Sets         uint64  `json:"sets"`
	SetsDropped  uint64  `json:"sets_dropped"`
	SetsRejected uint64  `json:"sets_rejected"`
	HitRate      float64 `json:"hit_rate"`
	CurrentItems int64   `json:"current_items"`
	MemoryUsedKB float64 `json:"memory_used_kb"`
}

// New creates a cache whose entries expire after ttl. costFunc may be nil,
// in which case every entry must be set with an explicit cost.
func New[T any](name string, maxCost int64, ttl time.Duration, costFunc func(T) int64) (*Cache[T], error) {
	impl, err := ristretto.NewCache(&ristretto.Config[string, T]{
		NumCounters:        maxCost * 10, // ristretto recommends 10x the expected item count
		MaxCost:            maxCost,
		BufferItems:        64,
		Metrics:            true,
		IgnoreInternalCost: true,
		Cost:               costFunc,
	})
	if err != nil {
		return nil, err
	}

	return &Cache[T]{
		impl: impl,
		name: name,
		ttl:  ttl,
	}, nil
}

func (c *Cache[T]) Get(key string) (T, bool) {
	return c.impl.Get(key)
}

// Set stores value with the cache's default TTL. Ristretto may drop the
// write under contention, which is reported by the return value.
func (c *Cache[T]) Set(key string, value T, cost int64) bool {
	return c.impl.SetWithTTL(key, value, cost, c.ttl)
}

func (c *Cache[T]) Clear() {
	c.impl.Clear()
}

// Wait blocks until buffered writes are applied.
func (c *Cache[T]) Wait() {
	c.impl.Wait()
}

func (c *Cache[T]) Close() {
	c.impl.Close()
}

func (c *Cache[T]) Stats() Stats {
	m := c.impl.Metrics

	hitRate := 0.0
	if total := m.Hits() + m.Misses(); total > 0 {
		hitRate = float64(m.Hits()) / float64(total) * 100
	}

	return Stats{
		Name:         c.name,
		Hits:         m.Hits(),
		Misses:       m.Misses(),
		Sets:         m.KeysAdded(),
		SetsDropped:  m.SetsDropped(),
		SetsRejected: m.SetsRejected(),
		HitRate:      hitRate,
		CurrentItems: int64(m.KeysAdded() - m.KeysEvicted()),
		MemoryUsedKB: float64(m.CostAdded()-m.CostEvicted()) / 1024,
	}
}
