// Package screen holds the source collections the list screens derive from,
// one batch per key (a merchant, or a count session).
package screen

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/fekuna/omnipos-retail-view/internal/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var ErrNotFound = errors.New("collection not found")

// Fetcher reads a full batch for key from the backend.
type Fetcher[T any] func(ctx context.Context, key string) ([]T, error)

// Snapshot is a read-only view of one collection. Err holds the last fetch
// failure; Records are then the last good batch, or empty on first load.
type Snapshot[T any] struct {
	Records  []T
	Version  uint64
	LoadedAt time.Time
	Err      error
}

type entry[T any] struct {
	records       []T
	version       uint64
	loadedAt      time.Time
	err           error
	loaded        bool // a fetch or Put succeeded at least once
	stale         bool
	invalidations uint64
}

type Store[T any] struct {
	name   string
	fetch  Fetcher[T]
	logger logger.ZapLogger

	group singleflight.Group

	mu      sync.RWMutex
	entries map[string]*entry[T]
	seq     uint64 // versions are unique across keys and deletes
	now     func() time.Time
}

// NewStore creates a store. fetch may be nil for collections that are only
// ever written with Put.
func NewStore[T any](name string, fetch Fetcher[T], log logger.ZapLogger) *Store[T] {
	return &Store[T]{
		name:    name,
		fetch:   fetch,
		logger:  log,
		entries: map[string]*entry[T]{},
		now:     time.Now,
	}
}

// Snapshot returns the collection for key, fetching it first when it was
// never loaded or has been invalidated.
func (s *Store[T]) Snapshot(ctx context.Context, key string) Snapshot[T] {
	s.mu.RLock()
	e, ok := s.entries[key]
	fresh := ok && e.loaded && !e.stale
	var snap Snapshot[T]
	if ok {
		snap = e.snapshot()
	}
	s.mu.RUnlock()

	if fresh || s.fetch == nil {
		return snap
	}
	return s.Refresh(ctx, key)
}

// Lookup returns the collection without fetching.
func (s *Store[T]) Lookup(key string) (Snapshot[T], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	if !ok {
		return Snapshot[T]{}, false
	}
	return e.snapshot(), true
}

// Refresh fetches key from the backend. Concurrent refreshes of the same key
// share one fetch. A failed fetch keeps the previous records.
func (s *Store[T]) Refresh(ctx context.Context, key string) Snapshot[T] {
	if s.fetch == nil {
		snap, _ := s.Lookup(key)
		return snap
	}

	v, _, _ := s.group.Do(key, func() (interface{}, error) {
		return s.load(context.WithoutCancel(ctx), key), nil
	})
	return v.(Snapshot[T])
}

func (s *Store[T]) load(ctx context.Context, key string) Snapshot[T] {
	s.mu.Lock()
	e := s.entryLocked(key)
	startVersion, startInvalidations := e.version, e.invalidations
	s.mu.Unlock()

	records, err := s.fetch(ctx, key)

	s.mu.Lock()
	defer s.mu.Unlock()

	e = s.entryLocked(key)
	if err != nil {
		s.logger.Warn("failed to fetch collection",
			zap.String("collection", s.name),
			zap.String("key", key),
			zap.Error(err),
		)
		e.err = err
		return e.snapshot()
	}

	if e.version != startVersion {
		// A Put or Update landed while fetching; it wins.
		return e.snapshot()
	}
	if records == nil {
		records = []T{}
	}
	e.records = records
	e.version = s.nextVersionLocked()
	e.loadedAt = s.now()
	e.err = nil
	e.loaded = true
	e.stale = e.invalidations != startInvalidations

	s.logger.Debug("collection loaded",
		zap.String("collection", s.name),
		zap.String("key", key),
		zap.Int("records", len(records)),
		zap.Uint64("version", e.version),
	)
	return e.snapshot()
}

// Put replaces the whole batch for key.
func (s *Store[T]) Put(key string, records []T) Snapshot[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.entryLocked(key)
	e.records = records
	e.version = s.nextVersionLocked()
	e.loadedAt = s.now()
	e.err = nil
	e.loaded = true
	e.stale = false
	return e.snapshot()
}

// Update swaps the batch for key with fn's result. fn must not modify its
// argument; it returns a new slice.
func (s *Store[T]) Update(key string, fn func([]T) ([]T, error)) (Snapshot[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok || !e.loaded {
		return Snapshot[T]{}, ErrNotFound
	}
	records, err := fn(e.records)
	if err != nil {
		return e.snapshot(), err
	}
	e.records = records
	e.version = s.nextVersionLocked()
	return e.snapshot(), nil
}

// Invalidate marks key stale; the next Snapshot fetches again.
func (s *Store[T]) Invalidate(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok {
		e.stale = true
		e.invalidations++
	}
}

func (s *Store[T]) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
}

func (s *Store[T]) nextVersionLocked() uint64 {
	s.seq++
	return s.seq
}

func (s *Store[T]) entryLocked(key string) *entry[T] {
	e, ok := s.entries[key]
	if !ok {
		e = &entry[T]{}
		s.entries[key] = e
	}
	return e
}

func (e *entry[T]) snapshot() Snapshot[T] {
	records := e.records
	if records == nil {
		records = []T{}
	}
	return Snapshot[T]{
		Records:  records,
		Version:  e.version,
		LoadedAt: e.loadedAt,
		Err:      e.err,
	}
}
