package domain

import (
	"slices"
	"strings"
	"time"
)

// ResourceKind names a cacheable remote resource.
type ResourceKind string

const (
	// ResourceWidgetProfile is the consolidated profile widget payload.
	ResourceWidgetProfile ResourceKind = "profile"
	// ResourceWidgetReputation is the consolidated reputation widget payload.
	ResourceWidgetReputation ResourceKind = "reputation"
	// ResourceWidgetBadges is the consolidated badge widget payload.
	ResourceWidgetBadges ResourceKind = "badges"
	// ResourceWidgetCategory is the consolidated category widget payload.
	ResourceWidgetCategory ResourceKind = "category"
)

const cacheKeySeparator = ":"

// CacheKey identifies one cached response: {kind}:{address}[:{params}].
type CacheKey string

// NewCacheKey builds the key for a request. Logically identical requests always
// produce the same key: the address is trimmed, params are sorted by name and
// empty values are dropped. Address case is kept because it is part of the
// request path and SS58 addresses are case-sensitive.
func NewCacheKey(kind ResourceKind, address string, params map[string]string) CacheKey {
	key := string(kind) + cacheKeySeparator + NormalizeAddress(address)
	if extra := serializeParams(params); extra != "" {
		key += cacheKeySeparator + extra
	}
	return CacheKey(key)
}

// ParseCacheKey splits a key into its resource kind and address segment.
// It reports false when the key does not follow the {kind}:{address} layout.
func ParseCacheKey(key string) (kind ResourceKind, address string, ok bool) {
	parts := strings.SplitN(key, cacheKeySeparator, 3)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return ResourceKind(parts[0]), parts[1], true
}

// NormalizeAddress canonicalizes an account address for comparison and keying.
// It yields exactly the segment sent in request paths.
func NormalizeAddress(address string) string {
	return strings.TrimSpace(address)
}

func serializeParams(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}
	names := make([]string, 0, len(params))
	for name, value := range params {
		if value == "" {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)

	var sb strings.Builder
	for i, name := range names {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(name)
		sb.WriteByte('=')
		sb.WriteString(params[name])
	}
	return sb.String()
}

// CacheEntry is one stored response. Entries are never mutated after creation;
// a later Set for the same key replaces the entry.
type CacheEntry struct {
	Data      any
	Timestamp time.Time
	ExpiresAt time.Time
}

// FreshAt reports whether the entry may still be served at the given instant.
func (e *CacheEntry) FreshAt(now time.Time) bool {
	return e != nil && now.Before(e.ExpiresAt)
}

// FetchOptions tunes a cache-aware widget fetch.
type FetchOptions struct {
	// ForceRefresh bypasses the cache lookup. A successful response still
	// overwrites the cached entry.
	ForceRefresh bool
}
