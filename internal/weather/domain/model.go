package domain

import "time"

// ConditionsSnapshot is one point-in-time weather reading for a location.
// Produced fresh per fetch and never mutated afterwards.
type ConditionsSnapshot struct {
	City        string    `json:"city"`
	Country     string    `json:"country"`
	Lat         float64   `json:"lat"`
	Lon         float64   `json:"lon"`
	Timestamp   time.Time `json:"timestamp"`
	Temperature float64   `json:"temperature"`
	FeelsLike   float64   `json:"feels_like"`
	Humidity    int       `json:"humidity"`
	WindSpeed   float64   `json:"wind_speed"`
	// Condition is the coarse provider category ("Thunderstorm", "Rain",
	// "Snow", "Clear", ...). Description is the localized text for it.
	Condition   string    `json:"condition"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Sunrise     time.Time `json:"sunrise"`
	Sunset      time.Time `json:"sunset"`
}

// ForecastEntry is a single 3-hour step of the provider forecast.
type ForecastEntry struct {
	Timestamp   time.Time `json:"timestamp"`
	Temperature float64   `json:"temperature"`
	FeelsLike   float64   `json:"feels_like"`
	Humidity    int       `json:"humidity"`
	WindSpeed   float64   `json:"wind_speed"`
	Condition   string    `json:"condition"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
}

// ForecastSnapshot is the ordered 3-hour-step forecast for a location.
type ForecastSnapshot struct {
	City    string          `json:"city"`
	Country string          `json:"country"`
	Entries []ForecastEntry `json:"entries"`
}

// TomorrowIndex is the entry used for the ~24h-ahead outlook
// (8 entries per day at 3-hour steps, index 7 ≈ 21-24h out).
const TomorrowIndex = 7

// Tomorrow returns the ~24h-ahead entry, or nil when the forecast is
// too short. A short forecast is reduced output, not an error.
func (f *ForecastSnapshot) Tomorrow() *ForecastEntry {
	if f == nil || len(f.Entries) <= TomorrowIndex {
		return nil
	}
	return &f.Entries[TomorrowIndex]
}
