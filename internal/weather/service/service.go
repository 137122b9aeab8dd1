package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/meteomotto/go-weather-backend/internal/alerts"
	"github.com/meteomotto/go-weather-backend/internal/cache"
	"github.com/meteomotto/go-weather-backend/internal/geo"
	"github.com/meteomotto/go-weather-backend/internal/maps"
	"github.com/meteomotto/go-weather-backend/internal/suggestion"
	"github.com/meteomotto/go-weather-backend/internal/summary"
	"github.com/meteomotto/go-weather-backend/internal/weather/domain"
)

// Provider is the slice of the weather API the service consumes.
type Provider interface {
	CurrentByCity(ctx context.Context, city, lang string) (domain.ConditionsSnapshot, error)
	CurrentByCoords(ctx context.Context, lat, lon float64, lang string) (domain.ConditionsSnapshot, error)
	ForecastByCity(ctx context.Context, city, lang string) (domain.ForecastSnapshot, error)
	ForecastByCoords(ctx context.Context, lat, lon float64, lang string) (domain.ForecastSnapshot, error)
}

// Report is the composite answer for one lookup: the snapshot plus
// everything derived from it. Query echoes the normalized request the
// report was computed for; clients discard reports whose query no
// longer matches their current selection, which closes the
// stale-response race on superseding fetches.
type Report struct {
	Query      string                    `json:"query"`
	Snapshot   domain.ConditionsSnapshot `json:"snapshot"`
	Forecast   *domain.ForecastSnapshot  `json:"forecast,omitempty"`
	Alert      alerts.Alert              `json:"alert"`
	Summary    string                    `json:"summary"`
	Suggestion string                    `json:"suggestion,omitempty"`
	Marker     maps.Marker               `json:"marker"`
	// Cached marks a report served from the TTL cache after a failed
	// provider fetch.
	Cached bool `json:"cached"`
}

// Service orchestrates provider fetches, opportunistic caching and the
// derived alert/summary/suggestion outputs.
type Service struct {
	provider  Provider
	cache     *cache.Cache
	suggester *suggestion.Service
}

func NewService(provider Provider, c *cache.Cache, suggester *suggestion.Service) *Service {
	return &Service{provider: provider, cache: c, suggester: suggester}
}

// ReportByCity builds the full report for a city name.
func (s *Service) ReportByCity(ctx context.Context, city, lang string, withForecast, withSuggestion bool) (Report, error) {
	query := normalizeQuery(city, lang)

	snapshot, cached, err := s.currentByCity(ctx, city, lang, query)
	if err != nil {
		return Report{}, err
	}

	var forecast *domain.ForecastSnapshot
	if withForecast {
		forecast = s.forecast(ctx, query, func(ctx context.Context) (domain.ForecastSnapshot, error) {
			return s.provider.ForecastByCity(ctx, city, lang)
		})
	}

	return s.assemble(ctx, query, snapshot.City, snapshot, forecast, lang, cached, withSuggestion), nil
}

// ReportByCoords builds the full report for a geolocated position.
func (s *Service) ReportByCoords(ctx context.Context, pos geo.Position, lang string, withForecast, withSuggestion bool) (Report, error) {
	query := fmt.Sprintf("%.4f,%.4f:%s", pos.Lat, pos.Lon, lang)

	snapshot, cached, err := s.currentByCoords(ctx, pos, lang, query)
	if err != nil {
		return Report{}, err
	}

	var forecast *domain.ForecastSnapshot
	if withForecast {
		forecast = s.forecast(ctx, query, func(ctx context.Context) (domain.ForecastSnapshot, error) {
			return s.provider.ForecastByCoords(ctx, pos.Lat, pos.Lon, lang)
		})
	}

	return s.assemble(ctx, query, snapshot.City, snapshot, forecast, lang, cached, withSuggestion), nil
}

// Forecast returns the 3-hour-step forecast on its own, cache-backed.
func (s *Service) Forecast(ctx context.Context, city, lang string) (domain.ForecastSnapshot, bool, error) {
	query := normalizeQuery(city, lang)

	forecast, err := s.provider.ForecastByCity(ctx, city, lang)
	if err != nil {
		var stale domain.ForecastSnapshot
		if s.cache.Get(ctx, forecastKey(query), &stale) {
			log.Printf("[weather] forecast %s failed, serving cached: %v", city, err)
			return stale, true, nil
		}
		return domain.ForecastSnapshot{}, false, err
	}

	s.cache.Put(ctx, forecastKey(query), forecast)
	return forecast, false, nil
}

func (s *Service) currentByCity(ctx context.Context, city, lang, query string) (domain.ConditionsSnapshot, bool, error) {
	snapshot, err := s.provider.CurrentByCity(ctx, city, lang)
	if err != nil {
		return s.cachedFallback(ctx, query, city, err)
	}
	s.cache.Put(ctx, currentKey(query), snapshot)
	return snapshot, false, nil
}

func (s *Service) currentByCoords(ctx context.Context, pos geo.Position, lang, query string) (domain.ConditionsSnapshot, bool, error) {
	snapshot, err := s.provider.CurrentByCoords(ctx, pos.Lat, pos.Lon, lang)
	if err != nil {
		return s.cachedFallback(ctx, query, query, err)
	}
	s.cache.Put(ctx, currentKey(query), snapshot)
	return snapshot, false, nil
}

func (s *Service) cachedFallback(ctx context.Context, query, label string, fetchErr error) (domain.ConditionsSnapshot, bool, error) {
	var stale domain.ConditionsSnapshot
	if s.cache.Get(ctx, currentKey(query), &stale) {
		log.Printf("[weather] fetch %s failed, serving cached: %v", label, fetchErr)
		return stale, true, nil
	}
	return domain.ConditionsSnapshot{}, false, fetchErr
}

func (s *Service) forecast(ctx context.Context, query string, fetch func(context.Context) (domain.ForecastSnapshot, error)) *domain.ForecastSnapshot {
	forecast, err := fetch(ctx)
	if err != nil {
		var stale domain.ForecastSnapshot
		if s.cache.Get(ctx, forecastKey(query), &stale) {
			return &stale
		}
		// A missing forecast only shortens the summary.
		log.Printf("[weather] forecast for %s: %v", query, err)
		return nil
	}
	s.cache.Put(ctx, forecastKey(query), forecast)
	return &forecast
}

func (s *Service) assemble(ctx context.Context, query, city string, snapshot domain.ConditionsSnapshot, forecast *domain.ForecastSnapshot, lang string, cached, withSuggestion bool) Report {
	report := Report{
		Query:    query,
		Snapshot: snapshot,
		Forecast: forecast,
		Alert:    alerts.Evaluate(snapshot, city, lang),
		Summary:  summary.Compose(city, snapshot, forecast, lang),
		Marker:   maps.MarkerFromSnapshot(snapshot),
		Cached:   cached,
	}
	if withSuggestion {
		report.Suggestion = s.suggester.Suggest(ctx, snapshot, city, lang)
	}
	return report
}

func normalizeQuery(city, lang string) string {
	return strings.ToLower(strings.TrimSpace(city)) + ":" + lang
}

func currentKey(query string) string {
	return "weather:" + query
}

func forecastKey(query string) string {
	return "forecast:" + query
}
