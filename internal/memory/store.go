// Package memory implements the canonical in-memory PartsStore: a slice of
// records kept in insertion order.
package memory

import (
	"fmt"
	"sync"

	"github.com/mesh-intelligence/partsdesk/pkg/types"
)

// Compile-time interface check: Store must implement PartsStore.
var _ types.PartsStore = (*Store)(nil)

// Store holds parts in memory. Nothing survives the process.
type Store struct {
	mu    sync.RWMutex
	parts []types.PartRecord
	newID func() string
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator replaces the UUID v7 generator used by Add.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// New creates a store preloaded with seed records, in order.
// Returns ErrDuplicateID, ErrInvalidID or ErrValidation if the seed is
// inconsistent.
func New(seed []types.PartRecord, opts ...Option) (*Store, error) {
	parts, err := types.PrepareSeed(seed)
	if err != nil {
		return nil, fmt.Errorf("loading seed: %w", err)
	}
	s := &Store{
		parts: parts,
		newID: types.NewID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// indexOf returns the position of id, or -1. The caller must hold mu.
func (s *Store) indexOf(id string) int {
	for i := range s.parts {
		if s.parts[i].ID == id {
			return i
		}
	}
	return -1
}

// List returns a copy of every record in insertion order.
func (s *Store) List() ([]types.PartRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]types.PartRecord(nil), s.parts...), nil
}

// Get returns the record with the given ID or ErrNotFound.
func (s *Store) Get(id string) (types.PartRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return types.PartRecord{}, fmt.Errorf("part %q: %w", id, types.ErrNotFound)
	}
	return s.parts[i], nil
}

// Add validates draft and appends a new record with a fresh ID.
func (s *Store) Add(draft types.FormDraft) (types.PartRecord, error) {
	if err := draft.Validate(); err != nil {
		return types.PartRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := types.AllocateID(s.newID, func(id string) bool { return s.indexOf(id) >= 0 })
	p, err := types.NewPartFromDraft(id, draft)
	if err != nil {
		return types.PartRecord{}, err
	}
	s.parts = append(s.parts, p)
	return p, nil
}

// Update replaces the editable fields of the record with the given ID.
func (s *Store) Update(id string, draft types.FormDraft) (types.PartRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return types.PartRecord{}, fmt.Errorf("part %q: %w", id, types.ErrNotFound)
	}
	updated, err := s.parts[i].UpdatedFromDraft(draft)
	if err != nil {
		return types.PartRecord{}, err
	}
	s.parts[i] = updated
	return updated, nil
}

// Remove deletes the record with the given ID. Absent IDs are ignored.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	s.parts = append(s.parts[:i:i], s.parts[i+1:]...)
	return nil
}

// Query returns the records matching filter in insertion order.
func (s *Store) Query(filter types.Filter) ([]types.PartRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return filter.Apply(s.parts), nil
}
