package repository

import (
	"context"
	"sync"

	"github.com/meteomotto/go-weather-backend/internal/preferences/domain"
)

// MemoryStore is an in-process Store used in tests.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]domain.UserPreferences
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]domain.UserPreferences)}
}

func (s *MemoryStore) Load(_ context.Context, userID string) (*domain.UserPreferences, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prefs, ok := s.docs[userID]
	if !ok {
		return nil, false, nil
	}
	copied := prefs
	copied.FavoriteCities = append([]string(nil), prefs.FavoriteCities...)
	return &copied, true, nil
}

func (s *MemoryStore) Save(_ context.Context, userID string, prefs domain.UserPreferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs.FavoriteCities = append([]string(nil), prefs.FavoriteCities...)
	s.docs[userID] = prefs
	return nil
}
