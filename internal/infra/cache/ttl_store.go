// Package cache provides an in-memory keyed counter store with expiry.
package cache

import (
	"context"
	"sync"
	"time"

	"mazza/internal/domain/service"
)

const sweepInterval = time.Minute

type entry struct {
	count     int64
	expiresAt time.Time
}

// memoryStore is a process-local KeyedStore. A background sweeper drops
// expired keys so a long-running process does not accumulate dead entries.
type memoryStore struct {
	mu      sync.Mutex
	entries map[string]*entry
	nowFn   func() time.Time
	done    chan struct{}
	once    sync.Once
}

// NewMemoryStore creates an in-memory KeyedStore and starts its sweeper.
func NewMemoryStore() service.KeyedStore {
	store := &memoryStore{
		entries: make(map[string]*entry),
		nowFn:   time.Now,
		done:    make(chan struct{}),
	}
	go store.sweep()

	return store
}

// Increment bumps the counter for key, resetting it when the previous window expired.
func (s *memoryStore) Increment(_ context.Context, key string, ttl time.Duration) (int64, error) {
	now := s.nowFn()

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok || now.After(e.expiresAt) {
		e = &entry{expiresAt: now.Add(ttl)}
		s.entries[key] = e
	}
	e.count++

	return e.count, nil
}

// Close stops the background sweeper.
func (s *memoryStore) Close() error {
	s.once.Do(func() { close(s.done) })

	return nil
}

func (s *memoryStore) sweep() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			now := s.nowFn()
			s.mu.Lock()
			for key, e := range s.entries {
				if now.After(e.expiresAt) {
					delete(s.entries, key)
				}
			}
			s.mu.Unlock()
		}
	}
}
