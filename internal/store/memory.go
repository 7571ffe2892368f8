// internal/store/memory.go
//
// In-memory registry of live sessions for the local API.
//
// Characteristics:
//   - Values are keyed by ID in a map guarded by an RWMutex.
//   - Every entry carries its own mutex; With runs a callback while holding
//     it, so one session is never driven by two requests at once.
//   - Entries remember when they were last used; Prune drops idle ones.
//   - State is lost when the process restarts (no history persistence).

package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// ErrNotFound is returned for unknown IDs.
var ErrNotFound = errors.New("not found")

// Store holds values of type T by ID.
type Store[T any] interface {
	// Save adds or replaces the value for id.
	Save(ctx context.Context, id string, v T) error

	// With runs fn on the value for id while holding that entry's lock.
	// It returns ErrNotFound for unknown IDs, otherwise fn's error.
	With(ctx context.Context, id string, fn func(T) error) error

	// Delete drops id. It returns ErrNotFound for unknown IDs.
	Delete(ctx context.Context, id string) error

	// Prune drops every value last saved or used before cutoff and
	// returns how many were dropped.
	Prune(cutoff time.Time) int

	// Len is the number of stored values.
	Len() int
}

type entry[T any] struct {
	mu       sync.Mutex
	value    T
	lastUsed atomic.Int64 // unix nanos
}

func (e *entry[T]) touch() { e.lastUsed.Store(time.Now().UnixNano()) }

// memory is a map-based Store implementation.
type memory[T any] struct {
	mu      sync.RWMutex // guards entries
	entries map[string]*entry[T]
}

// NewMemoryStore constructs an empty in-memory Store.
func NewMemoryStore[T any]() Store[T] {
	return &memory[T]{entries: make(map[string]*entry[T])}
}

func (m *memory[T]) Save(ctx context.Context, id string, v T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	e := &entry[T]{value: v}
	e.touch()
	m.entries[id] = e
	return nil
}

func (m *memory[T]) With(ctx context.Context, id string, fn func(T) error) error {
	m.mu.RLock()
	e, ok := m.entries[id]
	m.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	e.touch()
	return fn(e.value)
}

func (m *memory[T]) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(m.entries, id)
	return nil
}

func (m *memory[T]) Prune(cutoff time.Time) int {
	limit := cutoff.UnixNano()
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, e := range m.entries {
		if e.lastUsed.Load() < limit {
			delete(m.entries, id)
			n++
		}
	}
	return n
}

func (m *memory[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
