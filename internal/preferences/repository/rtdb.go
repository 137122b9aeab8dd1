package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"firebase.google.com/go/v4/db"

	"github.com/meteomotto/go-weather-backend/internal/preferences/domain"
)

// Store reads and writes the per-user preferences document.
// Load reports absence (nil, false, nil) for users with no document yet;
// callers supply defaults, absence is never an error.
type Store interface {
	Load(ctx context.Context, userID string) (*domain.UserPreferences, bool, error)
	Save(ctx context.Context, userID string, prefs domain.UserPreferences) error
}

// RTDBStore keeps the document in the Firebase Realtime Database at
// users/{uid}/preferences, the same path the web client reads.
type RTDBStore struct {
	client *db.Client
}

func NewRTDBStore(client *db.Client) *RTDBStore {
	return &RTDBStore{client: client}
}

func (s *RTDBStore) ref(userID string) *db.Ref {
	return s.client.NewRef(fmt.Sprintf("users/%s/preferences", userID))
}

func (s *RTDBStore) Load(ctx context.Context, userID string) (*domain.UserPreferences, bool, error) {
	var raw json.RawMessage
	if err := s.ref(userID).Get(ctx, &raw); err != nil {
		return nil, false, &domain.StoreError{Op: "load", Err: err}
	}

	// The database returns a JSON null when the path does not exist.
	if len(raw) == 0 || string(raw) == "null" {
		return nil, false, nil
	}

	var prefs domain.UserPreferences
	if err := json.Unmarshal(raw, &prefs); err != nil {
		return nil, false, &domain.StoreError{Op: "load", Err: err}
	}
	return &prefs, true, nil
}

// Save overwrites the whole document. Two devices saving concurrently
// race last-writer-wins; the realtime database offers no conditional
// write for this shape, so the race is documented rather than hidden.
func (s *RTDBStore) Save(ctx context.Context, userID string, prefs domain.UserPreferences) error {
	if err := s.ref(userID).Set(ctx, prefs); err != nil {
		return &domain.StoreError{Op: "save", Err: err}
	}
	return nil
}
