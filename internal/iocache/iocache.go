// Package iocache holds the short-lived response cache and the durable
// snapshot store behind the dashboard commands.
package iocache

import (
	"sync"

	"github.com/huangsam/talentview/internal/contract"
)

// StoreManager manages the response cache and snapshot store instances.
type StoreManager struct {
	sync.RWMutex // Protects the store pointers during initialization
	cache        contract.Cache
	snapshots    contract.SnapshotStore
}

var _ contract.CacheManager = &StoreManager{} // Compile-time check

// GetCache returns the in-memory response cache.
func (mgr *StoreManager) GetCache() contract.Cache {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.cache
}

// GetSnapshotStore returns the snapshot SnapshotStore.
func (mgr *StoreManager) GetSnapshotStore() contract.SnapshotStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.snapshots
}
