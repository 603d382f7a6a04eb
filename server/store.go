package server

import (
	"sync/atomic"

	"github.com/maiden-org/maiden/dataset"
)

// Store holds the current dataset snapshot. The dataset itself is
// immutable; reloads swap the pointer atomically, so requests always
// see a fully derived snapshot and never a half-loaded one.
type Store struct {
	ptr atomic.Pointer[dataset.Dataset]
}

// NewStore creates a store around an initial snapshot.
func NewStore(ds *dataset.Dataset) *Store {
	s := &Store{}
	s.ptr.Store(ds)
	return s
}

// Current returns the active snapshot.
func (s *Store) Current() *dataset.Dataset {
	return s.ptr.Load()
}

// Swap replaces the active snapshot.
func (s *Store) Swap(ds *dataset.Dataset) {
	s.ptr.Store(ds)
}
