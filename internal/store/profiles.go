// Package store keeps the deduplicated compression profile collection.
package store

import (
	"sync"

	"github.com/zetaframe/pipeline/internal/model"
)

// ProfileStore is a bounded collection of compression profiles keyed by
// the parameter-derived profile key. Profiles are soft-deleted only:
// Deactivate flips them inactive, nothing is ever removed.
type ProfileStore struct {
	mu          sync.Mutex
	maxProfiles int
	profiles    map[string]*model.CompressionProfile
	order       []string
}

func NewProfileStore(maxProfiles int) *ProfileStore {
	return &ProfileStore{
		maxProfiles: maxProfiles,
		profiles:    make(map[string]*model.CompressionProfile),
	}
}

// Add inserts a profile under its key. Returns false without mutating
// when the key already exists or the store is at capacity.
func (s *ProfileStore) Add(p model.CompressionProfile) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.profiles[p.Key]; exists {
		return false
	}
	if len(s.profiles) >= s.maxProfiles {
		return false
	}
	stored := p
	s.profiles[p.Key] = &stored
	s.order = append(s.order, p.Key)
	return true
}

// Get returns a copy of the stored profile.
func (s *ProfileStore) Get(key string) (model.CompressionProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[key]
	if !ok {
		return model.CompressionProfile{}, false
	}
	return *p, true
}

// Deactivate flips the profile inactive. Returns false when the key is
// absent or the profile already left the active state, so a second call
// for the same key fails.
func (s *ProfileStore) Deactivate(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[key]
	if !ok {
		return false
	}
	return p.Deactivate()
}

// Len returns the total number of stored profiles, active or not.
func (s *ProfileStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.profiles)
}

// ActiveCount returns how many profiles are still active.
func (s *ProfileStore) ActiveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, p := range s.profiles {
		if p.Active() {
			n++
		}
	}
	return n
}

// ListActive returns copies of the active profiles in insertion order.
func (s *ProfileStore) ListActive() []model.CompressionProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.CompressionProfile, 0, len(s.order))
	for _, key := range s.order {
		if p := s.profiles[key]; p.Active() {
			out = append(out, *p)
		}
	}
	return out
}
