package cache_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/repute/internal/adapters/cache"
	"go.trai.ch/repute/internal/core/domain"
	"go.trai.ch/repute/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newStore(t *testing.T, opts ...cache.Option) (*cache.Store, clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClockAt(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))
	return cache.New(append([]cache.Option{cache.WithClock(clock)}, opts...)...), clock
}

func TestStore_GetMiss(t *testing.T) {
	s, _ := newStore(t)

	v, ok := s.Get("profile:0xabc")
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestStore_SetThenGet(t *testing.T) {
	s, clock := newStore(t)
	key := domain.NewCacheKey(domain.ResourceWidgetProfile, "0xABC", nil)

	s.Set(key, "data")

	v, ok := s.Get(key)
	require.True(t, ok)
	assert.Equal(t, "data", v)

	entry, ok := s.Entry(key)
	require.True(t, ok)
	assert.Equal(t, clock.Now(), entry.Timestamp)
	assert.Equal(t, clock.Now().Add(domain.DefaultCacheTTL), entry.ExpiresAt)
}

func TestStore_Expiry(t *testing.T) {
	tests := []struct {
		name    string
		advance time.Duration
		wantHit bool
	}{
		{name: "just stored", advance: 0, wantHit: true},
		{name: "one nanosecond before expiry", advance: time.Minute - time.Nanosecond, wantHit: true},
		{name: "exactly at expiry", advance: time.Minute, wantHit: false},
		{name: "after expiry", advance: 2 * time.Minute, wantHit: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, clock := newStore(t, cache.WithTTL(time.Minute))
			s.Set("reputation:0xabc", 42)

			clock.Advance(tt.advance)

			_, ok := s.Get("reputation:0xabc")
			assert.Equal(t, tt.wantHit, ok)
			if tt.wantHit {
				assert.Equal(t, 1, s.Len())
			} else {
				assert.Equal(t, 0, s.Len(), "stale entry should be dropped lazily")
			}
		})
	}
}

func TestStore_SetReplacesEntry(t *testing.T) {
	s, clock := newStore(t, cache.WithTTL(time.Minute))
	s.Set("profile:0xabc", "first")

	clock.Advance(50 * time.Second)
	s.Set("profile:0xabc", "second")

	clock.Advance(50 * time.Second)
	v, ok := s.Get("profile:0xabc")
	require.True(t, ok, "replacement should restart the ttl")
	assert.Equal(t, "second", v)
	assert.Equal(t, 1, s.Len())
}

func TestStore_Clear(t *testing.T) {
	s, _ := newStore(t)
	s.Set("profile:0xabc", 1)
	s.Set("reputation:0xdef", 2)

	s.Clear()

	assert.Equal(t, 0, s.Len())
	_, ok := s.Get("profile:0xabc")
	assert.False(t, ok)
}

func TestStore_ClearAddress(t *testing.T) {
	s, _ := newStore(t)
	s.Set(domain.NewCacheKey(domain.ResourceWidgetProfile, "0xAAA", nil), 1)
	s.Set(domain.NewCacheKey(domain.ResourceWidgetReputation, "0xAAA", nil), 2)
	s.Set(domain.NewCacheKey(domain.ResourceWidgetBadges, "0xAAA", map[string]string{"badgeKey": "early"}), 3)
	s.Set(domain.NewCacheKey(domain.ResourceWidgetProfile, "0xbbb", nil), 4)
	s.Set("legacy-0xAAA-entry", 5)

	removed := s.ClearAddress(" 0xAAA ")

	assert.Equal(t, 4, removed)
	assert.Equal(t, 1, s.Len())
	_, ok := s.Get(domain.NewCacheKey(domain.ResourceWidgetProfile, "0xbbb", nil))
	assert.True(t, ok)
}

func TestStore_ClearAddress_KeepsOtherCase(t *testing.T) {
	s, _ := newStore(t)
	s.Set(domain.NewCacheKey(domain.ResourceWidgetProfile, "5GrwvaEF", nil), 1)
	s.Set(domain.NewCacheKey(domain.ResourceWidgetProfile, "5grwvaef", nil), 2)

	assert.Equal(t, 1, s.ClearAddress("5grwvaef"))
	v, ok := s.Get(domain.NewCacheKey(domain.ResourceWidgetProfile, "5GrwvaEF", nil))
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestStore_ClearAddress_DoesNotMatchPrefix(t *testing.T) {
	s, _ := newStore(t)
	s.Set(domain.NewCacheKey(domain.ResourceWidgetProfile, "0xaaa", nil), 1)
	s.Set(domain.NewCacheKey(domain.ResourceWidgetProfile, "0xaaab", nil), 2)

	assert.Equal(t, 1, s.ClearAddress("0xaaa"))
	assert.Equal(t, 1, s.Len())
}

func TestStore_ClearAddress_Empty(t *testing.T) {
	s, _ := newStore(t)
	s.Set("profile:0xabc", 1)

	assert.Equal(t, 0, s.ClearAddress("  "))
	assert.Equal(t, 1, s.Len())
}

func TestLookup(t *testing.T) {
	s, _ := newStore(t)
	s.Set("profile:0xabc", &domain.WidgetProfile{Total: 7})

	got, ok := cache.Lookup[*domain.WidgetProfile](s, "profile:0xabc")
	require.True(t, ok)
	assert.Equal(t, 7, got.Total)

	_, ok = cache.Lookup[*domain.WidgetReputation](s, "profile:0xabc")
	assert.False(t, ok, "a value of another type is a miss")
}

func TestStore_Metrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockCacheMetrics(ctrl)

	gomock.InOrder(
		m.EXPECT().Miss(),
		m.EXPECT().Store(),
		m.EXPECT().Hit(),
		m.EXPECT().Expire(),
		m.EXPECT().Miss(),
		m.EXPECT().Store(),
		m.EXPECT().Evict(1),
	)

	s, clock := newStore(t, cache.WithTTL(time.Minute), cache.WithMetrics(m))
	s.Get("profile:0xabc")
	s.Set("profile:0xabc", 1)
	s.Get("profile:0xabc")
	clock.Advance(time.Minute)
	s.Get("profile:0xabc")
	s.Set("profile:0xabc", 2)
	s.Clear()
}

func TestStore_Concurrent(t *testing.T) {
	s, _ := newStore(t, cache.WithShards(4))

	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			addr := fmt.Sprintf("0x%02d", i%8)
			key := domain.NewCacheKey(domain.ResourceWidgetReputation, addr, nil)
			s.Set(key, i)
			s.Get(key)
			if i%5 == 0 {
				s.ClearAddress(addr)
			}
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, s.Len(), 8)
}

func TestDefault_IsShared(t *testing.T) {
	t.Cleanup(cache.ResetDefault)

	cache.Default().Set("profile:0xabc", 1)

	v, ok := cache.Default().Get("profile:0xabc")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	cache.ResetDefault()
	assert.Equal(t, 0, cache.Default().Len())
}
