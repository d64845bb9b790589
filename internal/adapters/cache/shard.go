package cache

import (
	"strings"
	"sync"

	"go.trai.ch/repute/internal/core/domain"
)

// shard is one independently locked partition of the store.
// byAddress indexes keys that parse as kind:address[:params]; loose holds the rest.
type shard struct {
	mu        sync.RWMutex
	entries   map[domain.CacheKey]*domain.CacheEntry
	byAddress map[string]map[domain.CacheKey]struct{}
	loose     map[domain.CacheKey]struct{}
}

func newShard() *shard {
	sh := &shard{}
	sh.reset()
	return sh
}

func (sh *shard) reset() {
	sh.entries = make(map[domain.CacheKey]*domain.CacheEntry)
	sh.byAddress = make(map[string]map[domain.CacheKey]struct{})
	sh.loose = make(map[domain.CacheKey]struct{})
}

func (sh *shard) put(key domain.CacheKey, entry *domain.CacheEntry) {
	if _, exists := sh.entries[key]; !exists {
		sh.index(key)
	}
	sh.entries[key] = entry
}

func (sh *shard) index(key domain.CacheKey) {
	_, address, ok := domain.ParseCacheKey(string(key))
	if !ok {
		sh.loose[key] = struct{}{}
		return
	}
	keys, ok := sh.byAddress[address]
	if !ok {
		keys = make(map[domain.CacheKey]struct{})
		sh.byAddress[address] = keys
	}
	keys[key] = struct{}{}
}

func (sh *shard) remove(key domain.CacheKey) {
	delete(sh.entries, key)
	if _, ok := sh.loose[key]; ok {
		delete(sh.loose, key)
		return
	}
	_, address, ok := domain.ParseCacheKey(string(key))
	if !ok {
		return
	}
	if keys, ok := sh.byAddress[address]; ok {
		delete(keys, key)
		if len(keys) == 0 {
			delete(sh.byAddress, address)
		}
	}
}

func (sh *shard) removeAddress(address string) int {
	removed := 0
	for key := range sh.byAddress[address] {
		delete(sh.entries, key)
		removed++
	}
	delete(sh.byAddress, address)

	// Keys outside the kind:address layout fall back to a substring match.
	for key := range sh.loose {
		if strings.Contains(string(key), address) {
			delete(sh.entries, key)
			delete(sh.loose, key)
			removed++
		}
	}
	return removed
}
