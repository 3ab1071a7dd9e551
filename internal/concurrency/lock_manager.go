// Package concurrency provides keyed locks so that edits to one session never wait on another.
package concurrency

import (
	"sync"
)

// LockManager hands out one mutex per key
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for key, creating it on first use
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// WithLock runs fn while holding the lock for key
func (lm *LockManager) WithLock(key string, fn func() error) error {
	mu := lm.GetLock(key)
	mu.Lock()
	defer mu.Unlock()
	return fn()
}

// Forget drops the mutex for key unless someone holds it, in which case it reports
// false and the holder is expected to call Forget again after unlocking.
func (lm *LockManager) Forget(key string) bool {
	lock, ok := lm.locks.Load(key)
	if !ok {
		return true
	}
	mu := lock.(*sync.Mutex)
	if !mu.TryLock() {
		return false
	}
	lm.locks.Delete(key)
	mu.Unlock()
	return true
}
