// Package store defines the persistence contract for finished profiles.
// Persistence itself is a collaborator concern; the pipeline only consumes
// this get/set interface and ships an in-memory implementation for hosts
// and tests that need nothing durable.
package store

import (
	"errors"
	"sync"

	"github.com/dshills/valuelens/internal/schema"
)

// ErrNotFound is returned when no profile exists for the key.
var ErrNotFound = errors.New("store: profile not found")

// Store saves and retrieves profiles keyed by user identifier.
type Store interface {
	Get(key string) (*schema.Profile, error)
	Set(key string, p *schema.Profile) error
}

// Memory is a concurrency-safe in-memory Store.
type Memory struct {
	mu       sync.RWMutex
	profiles map[string]schema.Profile
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{profiles: make(map[string]schema.Profile)}
}

// Get returns a copy of the stored profile, or ErrNotFound.
func (m *Memory) Get(key string) (*schema.Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.profiles[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := p
	return &out, nil
}

// Set stores a copy of p under key, replacing any previous value.
func (m *Memory) Set(key string, p *schema.Profile) error {
	if p == nil {
		return errors.New("store: nil profile")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[key] = *p
	return nil
}
