package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/repute/internal/core/domain"
)

func TestNewCacheKey(t *testing.T) {
	tests := []struct {
		name    string
		kind    domain.ResourceKind
		address string
		params  map[string]string
		want    domain.CacheKey
	}{
		{
			name:    "address only",
			kind:    domain.ResourceWidgetProfile,
			address: "0xABC",
			want:    "profile:0xABC",
		},
		{
			name:    "surrounding whitespace",
			kind:    domain.ResourceWidgetReputation,
			address: "  0xabc\n",
			want:    "reputation:0xabc",
		},
		{
			name:    "single param",
			kind:    domain.ResourceWidgetCategory,
			address: "0xabc",
			params:  map[string]string{"categoryKey": "governance"},
			want:    "category:0xabc:categoryKey=governance",
		},
		{
			name:    "params sorted",
			kind:    domain.ResourceWidgetBadges,
			address: "0xabc",
			params:  map[string]string{"z": "1", "a": "2"},
			want:    "badges:0xabc:a=2&z=1",
		},
		{
			name:    "empty params dropped",
			kind:    domain.ResourceWidgetBadges,
			address: "0xabc",
			params:  map[string]string{"badgeKey": ""},
			want:    "badges:0xabc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.NewCacheKey(tt.kind, tt.address, tt.params))
		})
	}
}

func TestNewCacheKey_IdenticalRequestsShareKey(t *testing.T) {
	a := domain.NewCacheKey(domain.ResourceWidgetBadges, "0xABC", map[string]string{"badgeKey": "early", "level": "2"})
	b := domain.NewCacheKey(domain.ResourceWidgetBadges, "0xABC ", map[string]string{"level": "2", "badgeKey": "early"})

	assert.Equal(t, a, b)
}

func TestNewCacheKey_AddressCaseIsSignificant(t *testing.T) {
	upper := domain.NewCacheKey(domain.ResourceWidgetReputation, "5GrwvaEF", nil)
	lower := domain.NewCacheKey(domain.ResourceWidgetReputation, "5grwvaef", nil)

	assert.NotEqual(t, upper, lower)
	assert.Equal(t, "5GrwvaEF", domain.NormalizeAddress(" 5GrwvaEF\n"))
}

func TestParseCacheKey(t *testing.T) {
	tests := []struct {
		key      string
		wantKind domain.ResourceKind
		wantAddr string
		wantOK   bool
	}{
		{key: "profile:0xabc", wantKind: "profile", wantAddr: "0xabc", wantOK: true},
		{key: "badges:0xabc:badgeKey=early", wantKind: "badges", wantAddr: "0xabc", wantOK: true},
		{key: "no-separator", wantOK: false},
		{key: ":0xabc", wantOK: false},
		{key: "profile:", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			kind, addr, ok := domain.ParseCacheKey(tt.key)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantKind, kind)
			assert.Equal(t, tt.wantAddr, addr)
		})
	}
}

func TestCacheEntry_FreshAt(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	entry := &domain.CacheEntry{Timestamp: now, ExpiresAt: now.Add(time.Minute)}

	assert.True(t, entry.FreshAt(now))
	assert.True(t, entry.FreshAt(now.Add(time.Minute-time.Nanosecond)))
	assert.False(t, entry.FreshAt(now.Add(time.Minute)), "expiry is strict")

	var missing *domain.CacheEntry
	assert.False(t, missing.FreshAt(now))
}
