package alerts

import (
	"fmt"
	"math"

	"github.com/meteomotto/go-weather-backend/internal/weather/domain"
)

// Severity classifies an alert.
type Severity string

const (
	SeverityNone   Severity = "none"
	SeverityNormal Severity = "normal"
	SeveritySevere Severity = "severe"
)

// Alert is the result of evaluating current conditions against the
// alert rules. Severity "none" carries an empty message.
type Alert struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message,omitempty"`
}

// Evaluate maps a conditions snapshot to at most one alert. Rules are
// checked top to bottom and the first match wins, so a thunderstorm in
// a heat wave reports the storm, not the heat. Pure function: same
// snapshot, city and language always produce the same alert.
func Evaluate(snapshot domain.ConditionsSnapshot, city, lang string) Alert {
	temp := snapshot.Temperature
	wind := snapshot.WindSpeed
	humidity := snapshot.Humidity
	condition := snapshot.Condition

	switch {
	case condition == "Thunderstorm" || condition == "Tornado" ||
		(condition == "Rain" && wind > 10) ||
		(condition == "Snow" && wind > 8):
		return Alert{Severity: SeveritySevere, Message: severeConditionsMessage(city, snapshot.Description, lang)}

	case temp > 35:
		return Alert{Severity: SeveritySevere, Message: heatMessage(city, temp, lang)}

	case temp < -10:
		return Alert{Severity: SeveritySevere, Message: coldMessage(city, temp, lang)}

	case humidity > 85 && temp > 25:
		return Alert{Severity: SeverityNormal, Message: humidityMessage(city, humidity, lang)}

	case wind > 15:
		return Alert{Severity: SeverityNormal, Message: windMessage(city, wind, lang)}
	}

	return Alert{Severity: SeverityNone}
}

func severeConditionsMessage(city, description, lang string) string {
	if lang == "tr" {
		return fmt.Sprintf("%s için şiddetli hava koşulları uyarısı: %s. Lütfen dikkatli olun.", city, description)
	}
	return fmt.Sprintf("Severe weather alert for %s: %s. Please be careful.", city, description)
}

func heatMessage(city string, temp float64, lang string) string {
	if lang == "tr" {
		return fmt.Sprintf("%s için aşırı sıcaklık uyarısı: %d°C. Bol su için ve doğrudan güneş ışığından kaçının.", city, round(temp))
	}
	return fmt.Sprintf("Extreme heat alert for %s: %d°C. Stay hydrated and avoid direct sunlight.", city, round(temp))
}

func coldMessage(city string, temp float64, lang string) string {
	if lang == "tr" {
		return fmt.Sprintf("%s için aşırı soğuk uyarısı: %d°C. Sıcak kalın ve uzun süre dışarıda kalmaktan kaçının.", city, round(temp))
	}
	return fmt.Sprintf("Extreme cold alert for %s: %d°C. Stay warm and avoid prolonged outdoor exposure.", city, round(temp))
}

func humidityMessage(city string, humidity int, lang string) string {
	if lang == "tr" {
		return fmt.Sprintf("%s için yüksek nem uyarısı: %%%d. Hissedilen sıcaklık daha yüksek olabilir.", city, humidity)
	}
	return fmt.Sprintf("High humidity alert for %s: %d%%. The perceived temperature may be higher.", city, humidity)
}

func windMessage(city string, wind float64, lang string) string {
	if lang == "tr" {
		return fmt.Sprintf("%s için güçlü rüzgar uyarısı: %g km/s. Dışarıdayken dikkatli olun.", city, wind)
	}
	return fmt.Sprintf("Strong wind alert for %s: %g km/h. Be careful when outdoors.", city, wind)
}

func round(v float64) int {
	return int(math.Round(v))
}
