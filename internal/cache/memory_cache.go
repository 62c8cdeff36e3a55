package cache

import (
	"context"
	"hash/fnv"
	"sync"
	"time"
)

type entry[V any] struct {
	value     V
	expiresAt int64 // unix nanos; zero = never
}

func (e entry[V]) expired(now int64) bool {
	return e.expiresAt > 0 && now > e.expiresAt
}

type shard[V any] struct {
	sync.Mutex
	items map[string]entry[V]
}

// MemoryCache is a sharded in-process cache with a background janitor.
type MemoryCache[V any] struct {
	shards   []*shard[V]
	quit     chan struct{}
	stopOnce sync.Once
}

var _ Cache[string] = (*MemoryCache[string])(nil)

// NewMemoryCache creates a 64-shard cache swept every second.
func NewMemoryCache[V any]() *MemoryCache[V] {
	return NewMemoryCacheWithOptions[V](64, time.Second)
}

func NewMemoryCacheWithOptions[V any](shardCount int, janitorInterval time.Duration) *MemoryCache[V] {
	if shardCount < 1 {
		shardCount = 1
	}
	mc := &MemoryCache[V]{
		shards: make([]*shard[V], shardCount),
		quit:   make(chan struct{}),
	}
	for i := range mc.shards {
		mc.shards[i] = &shard[V]{items: make(map[string]entry[V])}
	}
	go mc.sweep(janitorInterval)
	return mc
}

func (mc *MemoryCache[V]) shardFor(key string) *shard[V] {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return mc.shards[h.Sum32()%uint32(len(mc.shards))]
}

func (mc *MemoryCache[V]) Get(_ context.Context, key string) (V, error) {
	var zero V
	s := mc.shardFor(key)

	s.Lock()
	defer s.Unlock()
	e, ok := s.items[key]
	if !ok {
		return zero, ErrCacheMiss
	}
	if e.expired(time.Now().UnixNano()) {
		delete(s.items, key)
		return zero, ErrCacheMiss
	}
	return e.value, nil
}

func (mc *MemoryCache[V]) Set(_ context.Context, key string, value V, ttl time.Duration) error {
	var exp int64
	if ttl > 0 {
		exp = time.Now().Add(ttl).UnixNano()
	}
	s := mc.shardFor(key)
	s.Lock()
	s.items[key] = entry[V]{value: value, expiresAt: exp}
	s.Unlock()
	return nil
}

func (mc *MemoryCache[V]) Delete(_ context.Context, key string) error {
	s := mc.shardFor(key)
	s.Lock()
	delete(s.items, key)
	s.Unlock()
	return nil
}

// Len returns the number of live entries.
func (mc *MemoryCache[V]) Len() int {
	now := time.Now().UnixNano()
	n := 0
	for _, s := range mc.shards {
		s.Lock()
		for _, e := range s.items {
			if !e.expired(now) {
				n++
			}
		}
		s.Unlock()
	}
	return n
}

// Close stops the janitor. Safe to call more than once.
func (mc *MemoryCache[V]) Close() error {
	mc.stopOnce.Do(func() { close(mc.quit) })
	return nil
}

func (mc *MemoryCache[V]) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			now := time.Now().UnixNano()
			for _, s := range mc.shards {
				s.Lock()
				for k, e := range s.items {
					if e.expired(now) {
						delete(s.items, k)
					}
				}
				s.Unlock()
			}
		case <-mc.quit:
			return
		}
	}
}
