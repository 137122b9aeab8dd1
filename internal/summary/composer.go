package summary

import (
	"fmt"
	"math"

	"github.com/meteomotto/go-weather-backend/internal/weather/domain"
)

// Compose builds the daily narrative for a city. The first sentence
// always describes current conditions; a second sentence covering
// tomorrow is appended only when the forecast reaches the ~24h-ahead
// entry. Pure function, recomputed on every input change.
func Compose(city string, snapshot domain.ConditionsSnapshot, forecast *domain.ForecastSnapshot, lang string) string {
	temp := round(snapshot.Temperature)
	feelsLike := round(snapshot.FeelsLike)

	var text string
	if lang == "tr" {
		text = fmt.Sprintf("Bugün %s'de hava %s, sıcaklık %d°C (hissedilen %d°C). ",
			city, snapshot.Description, temp, feelsLike)
		text += fmt.Sprintf("Nem oranı %%%d ve rüzgar hızı %g km/s. ",
			snapshot.Humidity, snapshot.WindSpeed)
	} else {
		text = fmt.Sprintf("Today in %s, the weather is %s, temperature %d°C (feels like %d°C). ",
			city, snapshot.Description, temp, feelsLike)
		text += fmt.Sprintf("Humidity is %d%% and wind speed is %g km/h. ",
			snapshot.Humidity, snapshot.WindSpeed)
	}

	if tomorrow := forecast.Tomorrow(); tomorrow != nil {
		if lang == "tr" {
			text += fmt.Sprintf("Yarın için tahmin: %s, sıcaklık %d°C.",
				tomorrow.Description, round(tomorrow.Temperature))
		} else {
			text += fmt.Sprintf("Tomorrow's forecast: %s, temperature %d°C.",
				tomorrow.Description, round(tomorrow.Temperature))
		}
	}

	return text
}

func round(v float64) int {
	return int(math.Round(v))
}
