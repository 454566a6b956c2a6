// Package memkv provides an in-process KVStore backed by a map. It is the
// default backend and the one used throughout the test suite. External
// change notifications can be simulated through NotifyExternal.
package memkv

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	portsrepo "github.com/zetaenergy/zeta_books/internal/core/ports/repositories"
)

// Store is a map-backed KVStore. It is safe for concurrent use.
type Store struct {
	mu          sync.RWMutex
	values      map[string][]byte
	subscribers map[int]func(key string)
	nextSubID   int
	logger      *slog.Logger
}

// New creates an empty in-memory store.
func New(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		values:      make(map[string][]byte),
		subscribers: make(map[int]func(key string)),
		logger:      logger,
	}
}

var _ portsrepo.KVStore = (*Store)(nil)

// Get implements portsrepo.KVStore.
func (s *Store) Get(ctx context.Context, key string, dest any) (bool, error) {
	s.mu.RLock()
	raw, ok := s.values[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		// Malformed values fall back to the caller's default, never an error.
		s.logger.Warn("Stored value is unparseable, falling back to default",
			slog.String("key", key), slog.String("error", err.Error()))
		return false, nil
	}
	return true, nil
}

// Set implements portsrepo.KVStore.
func (s *Store) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.values[key] = raw
	s.mu.Unlock()
	return nil
}

// Subscribe implements portsrepo.KVStore. Local Sets do not trigger
// notifications, matching the contract that only external changes are
// delivered.
func (s *Store) Subscribe(ctx context.Context, fn func(key string)) (func(), error) {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
	return cancel, nil
}

// NotifyExternal simulates a change made by another process: it replaces the
// stored value and notifies all subscribers. Used by tests.
func (s *Store) NotifyExternal(key string, raw []byte) {
	s.mu.Lock()
	s.values[key] = raw
	subs := make([]func(string), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(key)
	}
}

// Close implements portsrepo.KVStore.
func (s *Store) Close() error {
	return nil
}
