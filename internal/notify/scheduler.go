package notify

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/meteomotto/go-weather-backend/internal/alerts"
	prefdomain "github.com/meteomotto/go-weather-backend/internal/preferences/domain"
	"github.com/meteomotto/go-weather-backend/internal/summary"
	"github.com/meteomotto/go-weather-backend/internal/weather/domain"
)

// PreferenceLister enumerates every stored preferences document.
type PreferenceLister interface {
	ListAll(ctx context.Context) (map[string]prefdomain.UserPreferences, error)
}

// Fetcher is the slice of the weather service the dispatcher needs.
type Fetcher interface {
	CurrentByCity(ctx context.Context, city, lang string) (domain.ConditionsSnapshot, error)
	ForecastByCity(ctx context.Context, city, lang string) (domain.ForecastSnapshot, error)
}

// Scheduler runs the daily summary dispatch job. Delivery transport is
// out of scope here; composed summaries and severe alerts are handed to
// the log sink, which a push/mail worker can replace.
type Scheduler struct {
	lister  PreferenceLister
	fetcher Fetcher
	spec    string
}

func NewScheduler(lister PreferenceLister, fetcher Fetcher, spec string) *Scheduler {
	return &Scheduler{lister: lister, fetcher: fetcher, spec: spec}
}

// Start registers the cron job and begins the schedule.
func (s *Scheduler) Start() (*cron.Cron, error) {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc(s.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		s.Dispatch(ctx)
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[notify] daily summary scheduler started (spec %q)", s.spec)
	c.Start()
	return c, nil
}

// Dispatch composes and emits summaries for every opted-in user.
func (s *Scheduler) Dispatch(ctx context.Context) {
	all, err := s.lister.ListAll(ctx)
	if err != nil {
		log.Printf("[notify] list preferences: %v", err)
		return
	}

	for uid, prefs := range all {
		if !prefs.NotificationSettings.DailySummary && !prefs.NotificationSettings.SevereWeatherAlerts {
			continue
		}

		lang := prefs.DisplaySettings.Language
		if lang == "" {
			lang = "tr"
		}

		for _, city := range prefs.FavoriteCities {
			snapshot, err := s.fetcher.CurrentByCity(ctx, city, lang)
			if err != nil {
				log.Printf("[notify] fetch %s for %s: %v", city, uid, err)
				continue
			}

			if prefs.NotificationSettings.SevereWeatherAlerts {
				if alert := alerts.Evaluate(snapshot, city, lang); alert.Severity == alerts.SeveritySevere {
					log.Printf("[notify] severe alert user=%s city=%s: %s", uid, city, alert.Message)
				}
			}

			if prefs.NotificationSettings.DailySummary {
				var forecast *domain.ForecastSnapshot
				if fc, err := s.fetcher.ForecastByCity(ctx, city, lang); err == nil {
					forecast = &fc
				}
				log.Printf("[notify] daily summary user=%s city=%s: %s",
					uid, city, summary.Compose(city, snapshot, forecast, lang))
			}
		}
	}
}
