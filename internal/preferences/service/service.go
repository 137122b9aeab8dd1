package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/meteomotto/go-weather-backend/internal/preferences/domain"
	"github.com/meteomotto/go-weather-backend/internal/preferences/repository"
)

// Service implements the read-merge-write operations over the remote
// preferences document. Every partial update loads the full document
// (or defaults for a new user), mutates only its own sub-object and
// writes the whole document back, so siblings survive the write.
type Service struct {
	store repository.Store
}

func NewService(store repository.Store) *Service {
	return &Service{store: store}
}

// Load returns the stored preferences, or defaults when the user has no
// document yet. The second return reports whether a document existed.
func (s *Service) Load(ctx context.Context, userID string) (domain.UserPreferences, bool, error) {
	prefs, found, err := s.store.Load(ctx, userID)
	if err != nil {
		return domain.Defaults(), false, err
	}
	if !found {
		return domain.Defaults(), false, nil
	}
	if prefs.FavoriteCities == nil {
		prefs.FavoriteCities = []string{}
	}
	return *prefs, true, nil
}

// Save validates and overwrites the full document.
func (s *Service) Save(ctx context.Context, userID string, prefs domain.UserPreferences) error {
	if err := validate(prefs); err != nil {
		return err
	}
	return s.store.Save(ctx, userID, prefs)
}

// AddFavorite appends a city to the favorites, de-duplicating on add.
func (s *Service) AddFavorite(ctx context.Context, userID, city string) (domain.UserPreferences, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return domain.UserPreferences{}, fmt.Errorf("%w: city is required", domain.ErrInvalidInput)
	}

	prefs, _, err := s.Load(ctx, userID)
	if err != nil {
		return domain.UserPreferences{}, err
	}

	if prefs.AddFavorite(city) {
		if err := s.store.Save(ctx, userID, prefs); err != nil {
			return domain.UserPreferences{}, err
		}
	}
	return prefs, nil
}

// RemoveFavorite drops a city from the favorites.
func (s *Service) RemoveFavorite(ctx context.Context, userID, city string) (domain.UserPreferences, error) {
	prefs, _, err := s.Load(ctx, userID)
	if err != nil {
		return domain.UserPreferences{}, err
	}

	if prefs.RemoveFavorite(city) {
		if err := s.store.Save(ctx, userID, prefs); err != nil {
			return domain.UserPreferences{}, err
		}
	}
	return prefs, nil
}

// UpdateNotificationSettings merges a partial notification update,
// preserving favorites and display settings.
func (s *Service) UpdateNotificationSettings(ctx context.Context, userID string, patch domain.NotificationPatch) (domain.UserPreferences, error) {
	if patch.NotificationTime != nil {
		if err := domain.ValidateNotificationTime(*patch.NotificationTime); err != nil {
			return domain.UserPreferences{}, err
		}
	}

	prefs, _, err := s.Load(ctx, userID)
	if err != nil {
		return domain.UserPreferences{}, err
	}

	prefs.ApplyNotification(patch)
	if err := s.store.Save(ctx, userID, prefs); err != nil {
		return domain.UserPreferences{}, err
	}
	return prefs, nil
}

// UpdateDisplaySettings merges a partial display update, preserving
// favorites and notification settings.
func (s *Service) UpdateDisplaySettings(ctx context.Context, userID string, patch domain.DisplayPatch) (domain.UserPreferences, error) {
	if patch.Language != nil {
		if err := domain.ValidateLanguage(*patch.Language); err != nil {
			return domain.UserPreferences{}, err
		}
	}
	if patch.TemperatureUnit != nil {
		if err := domain.ValidateTemperatureUnit(*patch.TemperatureUnit); err != nil {
			return domain.UserPreferences{}, err
		}
	}

	prefs, _, err := s.Load(ctx, userID)
	if err != nil {
		return domain.UserPreferences{}, err
	}

	prefs.ApplyDisplay(patch)
	if err := s.store.Save(ctx, userID, prefs); err != nil {
		return domain.UserPreferences{}, err
	}
	return prefs, nil
}

func validate(prefs domain.UserPreferences) error {
	if prefs.NotificationSettings.NotificationTime != "" {
		if err := domain.ValidateNotificationTime(prefs.NotificationSettings.NotificationTime); err != nil {
			return err
		}
	}
	if prefs.DisplaySettings.Language != "" {
		if err := domain.ValidateLanguage(prefs.DisplaySettings.Language); err != nil {
			return err
		}
	}
	if prefs.DisplaySettings.TemperatureUnit != "" {
		if err := domain.ValidateTemperatureUnit(prefs.DisplaySettings.TemperatureUnit); err != nil {
			return err
		}
	}
	return nil
}
