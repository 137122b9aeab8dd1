package summary

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/meteomotto/go-weather-backend/internal/weather/domain"
)

func testSnapshot() domain.ConditionsSnapshot {
	return domain.ConditionsSnapshot{
		City:        "Ankara",
		Description: "clear sky",
		Temperature: 21.4,
		FeelsLike:   19.6,
		Humidity:    45,
		WindSpeed:   5,
	}
}

func testForecast(entries int) *domain.ForecastSnapshot {
	fc := &domain.ForecastSnapshot{City: "Ankara"}
	for i := 0; i < entries; i++ {
		fc.Entries = append(fc.Entries, domain.ForecastEntry{
			Timestamp:   time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC).Add(time.Duration(i) * 3 * time.Hour),
			Temperature: 10 + float64(i),
			Description: "scattered clouds",
		})
	}
	return fc
}

func TestCompose_WithForecast(t *testing.T) {
	text := Compose("Ankara", testSnapshot(), testForecast(8), "en")

	assert.Contains(t, text, "Today in Ankara, the weather is clear sky, temperature 21°C (feels like 20°C).")
	assert.Contains(t, text, "Humidity is 45% and wind speed is 5 km/h.")
	// Tomorrow comes from entry index 7 (10 + 7 = 17°C).
	assert.Contains(t, text, "Tomorrow's forecast: scattered clouds, temperature 17°C.")
}

func TestCompose_ShortForecastOmitsTomorrow(t *testing.T) {
	text := Compose("Ankara", testSnapshot(), testForecast(5), "en")

	assert.Contains(t, text, "Today in Ankara")
	assert.NotContains(t, text, "Tomorrow")
	assert.Equal(t, 2, strings.Count(text, "."), "expected only the two today clauses")
}

func TestCompose_NoForecast(t *testing.T) {
	text := Compose("Ankara", testSnapshot(), nil, "en")

	assert.Contains(t, text, "Today in Ankara")
	assert.NotContains(t, text, "Tomorrow")
}

func TestCompose_Turkish(t *testing.T) {
	text := Compose("Ankara", testSnapshot(), testForecast(8), "tr")

	assert.Contains(t, text, "Bugün Ankara'de hava clear sky, sıcaklık 21°C (hissedilen 20°C).")
	assert.Contains(t, text, "Nem oranı %45 ve rüzgar hızı 5 km/s.")
	assert.Contains(t, text, "Yarın için tahmin: scattered clouds, sıcaklık 17°C.")
}

func TestCompose_Pure(t *testing.T) {
	snap := testSnapshot()
	fc := testForecast(8)
	assert.Equal(t, Compose("Ankara", snap, fc, "en"), Compose("Ankara", snap, fc, "en"))
}
