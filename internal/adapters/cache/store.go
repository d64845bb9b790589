// Package cache implements the in-memory response cache shared by every API client.
package cache

import (
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/repute/internal/core/domain"
	"go.trai.ch/repute/internal/core/ports"
)

const defaultShards = 16

// Store is a key to entry map with per-entry expiration.
//
// Expiration is lazy: an expired entry is dropped by the Get that observes it.
// Every operation is atomic, but a Get miss followed by a Set is not; two callers
// may both miss and both store. The API client collapses such identical misses.
type Store struct {
	clock   clockwork.Clock
	ttl     time.Duration
	metrics ports.CacheMetrics
	shards  []*shard
}

// Option configures a Store.
type Option func(*Store)

// WithTTL sets the lifetime of stored entries.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithClock sets the time source used for timestamps and expiry checks.
func WithClock(clock clockwork.Clock) Option {
	return func(s *Store) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithMetrics reports cache outcomes to m.
func WithMetrics(m ports.CacheMetrics) Option {
	return func(s *Store) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithShards sets the number of independently locked partitions.
func WithShards(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.shards = make([]*shard, n)
		}
	}
}

// New creates a Store. The TTL defaults to five minutes.
func New(opts ...Option) *Store {
	s := &Store{
		clock:   clockwork.NewRealClock(),
		ttl:     domain.DefaultCacheTTL,
		metrics: noopMetrics{},
		shards:  make([]*shard, defaultShards),
	}
	for _, opt := range opts {
		opt(s)
	}
	for i := range s.shards {
		s.shards[i] = newShard()
	}
	return s
}

// TTL returns the lifetime of stored entries.
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Get returns the cached value for key if it exists and has not expired.
// Freshness is strict: an entry is stale from the instant now reaches ExpiresAt.
func (s *Store) Get(key domain.CacheKey) (any, bool) {
	entry, ok := s.Entry(key)
	if !ok {
		return nil, false
	}
	return entry.Data, true
}

// Entry is Get returning the whole entry.
func (s *Store) Entry(key domain.CacheKey) (*domain.CacheEntry, bool) {
	sh := s.shardFor(key)
	now := s.clock.Now()

	sh.mu.RLock()
	entry, ok := sh.entries[key]
	sh.mu.RUnlock()

	if !ok {
		s.metrics.Miss()
		return nil, false
	}
	if entry.FreshAt(now) {
		s.metrics.Hit()
		return entry, true
	}

	sh.mu.Lock()
	// Only drop the entry we saw; a concurrent Set may have replaced it.
	if current, ok := sh.entries[key]; ok && current == entry {
		sh.remove(key)
	}
	sh.mu.Unlock()

	s.metrics.Expire()
	s.metrics.Miss()
	return nil, false
}

// Set stores data under key, replacing any previous entry.
func (s *Store) Set(key domain.CacheKey, data any) {
	now := s.clock.Now()
	entry := &domain.CacheEntry{
		Data:      data,
		Timestamp: now,
		ExpiresAt: now.Add(s.ttl),
	}

	sh := s.shardFor(key)
	sh.mu.Lock()
	sh.put(key, entry)
	sh.mu.Unlock()

	s.metrics.Store()
}

// Clear removes every entry.
func (s *Store) Clear() {
	removed := 0
	for _, sh := range s.shards {
		sh.mu.Lock()
		removed += len(sh.entries)
		sh.reset()
		sh.mu.Unlock()
	}
	s.metrics.Evict(removed)
}

// ClearAddress removes every entry belonging to address and returns how many were removed.
func (s *Store) ClearAddress(address string) int {
	address = domain.NormalizeAddress(address)
	if address == "" {
		return 0
	}

	removed := 0
	for _, sh := range s.shards {
		sh.mu.Lock()
		removed += sh.removeAddress(address)
		sh.mu.Unlock()
	}
	s.metrics.Evict(removed)
	return removed
}

// Len returns the number of stored entries, fresh or not.
func (s *Store) Len() int {
	n := 0
	for _, sh := range s.shards {
		sh.mu.RLock()
		n += len(sh.entries)
		sh.mu.RUnlock()
	}
	return n
}

func (s *Store) shardFor(key domain.CacheKey) *shard {
	return s.shards[xxhash.Sum64String(string(key))%uint64(len(s.shards))]
}

// Lookup is Get with the value asserted to T. A value of another type is a miss.
func Lookup[T any](s *Store, key domain.CacheKey) (T, bool) {
	var zero T
	v, ok := s.Get(key)
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

type noopMetrics struct{}

func (noopMetrics) Hit()      {}
func (noopMetrics) Miss()     {}
func (noopMetrics) Expire()   {}
func (noopMetrics) Store()    {}
func (noopMetrics) Evict(int) {}
