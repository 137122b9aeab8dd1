package domain

// UserPreferences is the per-user document stored in the realtime
// database under users/{uid}/preferences. Sub-objects are merged
// independently: updating one never erases its siblings.
type UserPreferences struct {
	FavoriteCities       []string             `json:"favoriteCities"`
	NotificationSettings NotificationSettings `json:"notificationSettings"`
	DisplaySettings      DisplaySettings      `json:"displaySettings"`
}

type NotificationSettings struct {
	DailySummary        bool   `json:"dailySummary"`
	SevereWeatherAlerts bool   `json:"severeWeatherAlerts"`
	NotificationTime    string `json:"notificationTime,omitempty"`
}

type DisplaySettings struct {
	DarkMode        bool   `json:"darkMode"`
	Language        string `json:"language"`
	TemperatureUnit string `json:"temperatureUnit"`
}

// NotificationPatch is a partial update; nil fields are left unchanged.
type NotificationPatch struct {
	DailySummary        *bool   `json:"dailySummary,omitempty"`
	SevereWeatherAlerts *bool   `json:"severeWeatherAlerts,omitempty"`
	NotificationTime    *string `json:"notificationTime,omitempty"`
}

// DisplayPatch is a partial update; nil fields are left unchanged.
type DisplayPatch struct {
	DarkMode        *bool   `json:"darkMode,omitempty"`
	Language        *string `json:"language,omitempty"`
	TemperatureUnit *string `json:"temperatureUnit,omitempty"`
}

// Defaults returns the preferences a new user starts from.
func Defaults() UserPreferences {
	return UserPreferences{
		FavoriteCities: []string{},
		NotificationSettings: NotificationSettings{
			DailySummary:        false,
			SevereWeatherAlerts: false,
			NotificationTime:    "08:00",
		},
		DisplaySettings: DisplaySettings{
			DarkMode:        false,
			Language:        "tr",
			TemperatureUnit: "C",
		},
	}
}

// AddFavorite appends city if it is not already present, preserving
// order. Idempotent: adding an existing city is a no-op.
func (p *UserPreferences) AddFavorite(city string) bool {
	for _, c := range p.FavoriteCities {
		if c == city {
			return false
		}
	}
	p.FavoriteCities = append(p.FavoriteCities, city)
	return true
}

// RemoveFavorite drops city from the favorites, preserving the order of
// the remaining entries.
func (p *UserPreferences) RemoveFavorite(city string) bool {
	for i, c := range p.FavoriteCities {
		if c == city {
			p.FavoriteCities = append(p.FavoriteCities[:i], p.FavoriteCities[i+1:]...)
			return true
		}
	}
	return false
}

// ApplyNotification merges a partial notification update.
func (p *UserPreferences) ApplyNotification(patch NotificationPatch) {
	if patch.DailySummary != nil {
		p.NotificationSettings.DailySummary = *patch.DailySummary
	}
	if patch.SevereWeatherAlerts != nil {
		p.NotificationSettings.SevereWeatherAlerts = *patch.SevereWeatherAlerts
	}
	if patch.NotificationTime != nil {
		p.NotificationSettings.NotificationTime = *patch.NotificationTime
	}
}

// ApplyDisplay merges a partial display update.
func (p *UserPreferences) ApplyDisplay(patch DisplayPatch) {
	if patch.DarkMode != nil {
		p.DisplaySettings.DarkMode = *patch.DarkMode
	}
	if patch.Language != nil {
		p.DisplaySettings.Language = *patch.Language
	}
	if patch.TemperatureUnit != nil {
		p.DisplaySettings.TemperatureUnit = *patch.TemperatureUnit
	}
}
