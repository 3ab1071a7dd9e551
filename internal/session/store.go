package session

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/CropCalc_Go/internal/domain"
)

// StoreConfig bounds the in-memory session store
type StoreConfig struct {
	Size int
	TTL  time.Duration
}

// DefaultStoreConfig returns the store limits used when none are configured
func DefaultStoreConfig() StoreConfig {
	return StoreConfig{
		Size: DefaultStoreSize,
		TTL:  2 * time.Hour,
	}
}

// storedState wraps a session with version metadata for invalidation
type storedState struct {
	Version  string
	State    *domain.SessionState
	StoredAt time.Time
}

// stateStore keeps sessions in an LRU with time-based expiration.
// Idle sessions fall out after TTL; the least recently used fall out when full.
type stateStore struct {
	lru *expirable.LRU[string, *storedState]
}

func newStateStore(cfg StoreConfig, onEvict func(id string)) *stateStore {
	var cb expirable.EvictCallback[string, *storedState]
	if onEvict != nil {
		cb = func(key string, _ *storedState) { onEvict(key) }
	}
	return &stateStore{
		lru: expirable.NewLRU[string, *storedState](cfg.Size, cb, cfg.TTL),
	}
}

// Get returns the stored state. Entries written under another schema version are dropped.
func (s *stateStore) Get(id string) (*domain.SessionState, bool) {
	entry, found := s.lru.Get(id)
	if !found {
		return nil, false
	}
	if entry.Version != StoreSchemaVersion {
		s.lru.Remove(id)
		return nil, false
	}
	return entry.State, true
}

// Put stores state under its id, refreshing its TTL
func (s *stateStore) Put(state *domain.SessionState) {
	s.lru.Add(state.ID, &storedState{
		Version:  StoreSchemaVersion,
		State:    state,
		StoredAt: time.Now(),
	})
}

// Contains reports whether id is stored and not yet expired, without touching recency
func (s *stateStore) Contains(id string) bool {
	_, ok := s.lru.Peek(id)
	return ok
}

// Remove deletes a session
func (s *stateStore) Remove(id string) {
	s.lru.Remove(id)
}

// Len is the number of live sessions
func (s *stateStore) Len() int {
	return s.lru.Len()
}
