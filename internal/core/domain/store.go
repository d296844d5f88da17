package domain

import "sync"

// Store is the process-local holder of the current settings. It is created
// once at startup and handed to the setting coordinator, which is its only
// writer. Reads return copies.
type Store struct {
	mu       sync.RWMutex
	settings Settings
}

// NewStore creates a store seeded with initial.
func NewStore(initial Settings) *Store {
	return &Store{settings: initial}
}

// Settings returns a snapshot of the current settings.
func (s *Store) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

func (s *Store) SetUnit(u Unit) {
	s.mu.Lock()
	s.settings.Unit = u
	s.mu.Unlock()
}

func (s *Store) SetFiat(f Fiat) {
	s.mu.Lock()
	s.settings.Fiat = f
	s.mu.Unlock()
}

func (s *Store) SetRestoring(restoring bool) {
	s.mu.Lock()
	s.settings.Restoring = restoring
	s.mu.Unlock()
}

func (s *Store) SetAutopilot(enabled bool) {
	s.mu.Lock()
	s.settings.Autopilot = enabled
	s.mu.Unlock()
}

// FlipAutopilot negates the autopilot flag and returns the value it held
// before.
func (s *Store) FlipAutopilot() (previous bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	previous = s.settings.Autopilot
	s.settings.Autopilot = !previous
	return previous
}
