package iocache

import (
	"sync"
	"time"

	"github.com/huangsam/talentview/internal/contract"
	"github.com/huangsam/talentview/schema"
)

// MemCache is an in-memory TTL cache for API payloads. The clock is injected
// so tests can control expiry without sleeping. All operations are safe for
// concurrent use.
type MemCache struct {
	mu      sync.Mutex
	entries map[string]memEntry
	ttl     time.Duration
	now     func() time.Time
}

type memEntry struct {
	value     []byte
	expiresAt time.Time
}

var _ contract.Cache = &MemCache{} // Compile-time check

// NewMemCache creates a MemCache with the given TTL, using the wall clock.
func NewMemCache(ttl time.Duration) *MemCache {
	return NewMemCacheWithClock(ttl, time.Now)
}

// NewMemCacheWithClock creates a MemCache with an explicit clock function.
func NewMemCacheWithClock(ttl time.Duration, now func() time.Time) *MemCache {
	return &MemCache{
		entries: make(map[string]memEntry),
		ttl:     ttl,
		now:     now,
	}
}

// Get returns the cached value for key if it exists and has not expired.
// Expired entries are removed on access.
func (mc *MemCache) Get(key string) ([]byte, bool) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	entry, ok := mc.entries[key]
	if !ok {
		return nil, false
	}
	if mc.now().After(entry.expiresAt) {
		delete(mc.entries, key)
		return nil, false
	}
	return entry.value, true
}

// Set stores value under key with a fresh TTL window. A zero TTL disables
// caching entirely, so Set becomes a no-op.
func (mc *MemCache) Set(key string, value []byte) {
	if mc.ttl <= 0 {
		return
	}
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.entries[key] = memEntry{
		value:     value,
		expiresAt: mc.now().Add(mc.ttl),
	}
}

// Invalidate removes the entry for key, if any.
func (mc *MemCache) Invalidate(key string) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	delete(mc.entries, key)
}

// InvalidateAll removes every entry.
func (mc *MemCache) InvalidateAll() {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.entries = make(map[string]memEntry)
}

// Status reports the live entry count and the configured TTL. Expired but
// not-yet-evicted entries are excluded from the count.
func (mc *MemCache) Status() schema.CacheStatus {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	now := mc.now()
	live := 0
	for _, entry := range mc.entries {
		if !now.After(entry.expiresAt) {
			live++
		}
	}
	return schema.CacheStatus{
		Entries: live,
		TTL:     mc.ttl,
	}
}
