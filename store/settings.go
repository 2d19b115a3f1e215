package store

import "voltstore/entities"

func (s *Store) Settings() entities.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// UpdateSettings replaces the whole record; admin saves are wholesale.
func (s *Store) UpdateSettings(settings entities.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
}
