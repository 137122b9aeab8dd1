package repository

import (
	"context"

	"github.com/meteomotto/go-weather-backend/internal/preferences/domain"
)

type userNode struct {
	Preferences *domain.UserPreferences `json:"preferences"`
}

// ListAll returns every stored preferences document keyed by user id.
// Used by the notification dispatcher; users without a document are
// skipped.
func (s *RTDBStore) ListAll(ctx context.Context) (map[string]domain.UserPreferences, error) {
	var users map[string]userNode
	if err := s.client.NewRef("users").Get(ctx, &users); err != nil {
		return nil, &domain.StoreError{Op: "list", Err: err}
	}

	out := make(map[string]domain.UserPreferences, len(users))
	for uid, node := range users {
		if node.Preferences != nil {
			out[uid] = *node.Preferences
		}
	}
	return out, nil
}

// ListAll returns the in-memory documents, for tests.
func (s *MemoryStore) ListAll(_ context.Context) (map[string]domain.UserPreferences, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]domain.UserPreferences, len(s.docs))
	for uid, prefs := range s.docs {
		out[uid] = prefs
	}
	return out, nil
}
