// Package fieldstore holds the process-wide current field. A new field is
// installed only after it has been fully built, so readers always see a
// consistent set of parameters, elements and tables.
package fieldstore

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Davincible/fieldcalc/pkg/galois"
	"github.com/google/uuid"
)

// ErrNotInitialized is returned by Current before any field was installed.
var ErrNotInitialized = errors.New("field not initialized")

// Snapshot is one installed field. ID changes on every successful install.
type Snapshot struct {
	ID        uuid.UUID
	Field     *galois.Field
	Installed time.Time
}

type Store struct {
	mu      sync.RWMutex
	current *Snapshot
	opts    []galois.Option
}

// New returns an empty store. opts are passed to every galois.NewField call.
func New(opts ...galois.Option) *Store {
	return &Store{opts: opts}
}

// Initialize builds GF(p^m) modulo modulus and installs it. On error the
// previously installed field, if any, stays current.
func (s *Store) Initialize(p, m int, modulus string) (*Snapshot, error) {
	f, err := galois.NewField(p, m, modulus, s.opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize field: %w", err)
	}
	return s.Install(f), nil
}

// Install replaces the current field with f.
func (s *Store) Install(f *galois.Field) *Snapshot {
	snap := &Snapshot{
		ID:        uuid.New(),
		Field:     f,
		Installed: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = snap
	return snap
}

// Current returns the installed snapshot.
func (s *Store) Current() (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil, ErrNotInitialized
	}
	return s.current, nil
}

// Clear forgets the current field.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}
