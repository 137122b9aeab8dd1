package alerts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meteomotto/go-weather-backend/internal/weather/domain"
)

func snap(condition string, temp, wind float64, humidity int) domain.ConditionsSnapshot {
	return domain.ConditionsSnapshot{
		Condition:   condition,
		Description: strings.ToLower(condition),
		Temperature: temp,
		WindSpeed:   wind,
		Humidity:    humidity,
	}
}

func TestEvaluate_SevereConditions(t *testing.T) {
	t.Run("thunderstorm is always severe", func(t *testing.T) {
		alert := Evaluate(snap("Thunderstorm", 20, 0, 50), "Ankara", "en")
		assert.Equal(t, SeveritySevere, alert.Severity)
		assert.Contains(t, alert.Message, "Severe weather alert for Ankara")
	})

	t.Run("tornado is always severe", func(t *testing.T) {
		alert := Evaluate(snap("Tornado", 15, 2, 40), "Ankara", "en")
		assert.Equal(t, SeveritySevere, alert.Severity)
	})

	t.Run("rain is severe only above wind 10", func(t *testing.T) {
		assert.Equal(t, SeveritySevere, Evaluate(snap("Rain", 18, 11, 60), "İzmir", "en").Severity)
		assert.Equal(t, SeverityNone, Evaluate(snap("Rain", 18, 9, 60), "İzmir", "en").Severity)
	})

	t.Run("snow is severe only above wind 8", func(t *testing.T) {
		assert.Equal(t, SeveritySevere, Evaluate(snap("Snow", -2, 9, 60), "Erzurum", "en").Severity)
		assert.Equal(t, SeverityNone, Evaluate(snap("Snow", -2, 7, 60), "Erzurum", "en").Severity)
	})
}

func TestEvaluate_TemperatureRules(t *testing.T) {
	t.Run("heat above 35 is severe", func(t *testing.T) {
		alert := Evaluate(snap("Clear", 36, 0, 10), "Adana", "en")
		assert.Equal(t, SeveritySevere, alert.Severity)
		assert.Contains(t, alert.Message, "Extreme heat alert for Adana: 36°C")
	})

	t.Run("cold below -10 is severe", func(t *testing.T) {
		alert := Evaluate(snap("Clear", -11, 0, 10), "Kars", "en")
		assert.Equal(t, SeveritySevere, alert.Severity)
		assert.Contains(t, alert.Message, "Extreme cold alert")
	})

	t.Run("displayed temperature is rounded", func(t *testing.T) {
		alert := Evaluate(snap("Clear", 36.6, 0, 10), "Adana", "en")
		assert.Contains(t, alert.Message, "37°C")
	})
}

func TestEvaluate_NormalRules(t *testing.T) {
	t.Run("humidity rule requires temp above 25", func(t *testing.T) {
		assert.Equal(t, SeverityNone, Evaluate(snap("Clear", 20, 0, 90), "Rize", "en").Severity)

		alert := Evaluate(snap("Clear", 26, 0, 90), "Rize", "en")
		assert.Equal(t, SeverityNormal, alert.Severity)
		assert.Contains(t, alert.Message, "High humidity alert for Rize: 90%")
	})

	t.Run("strong wind above 15 is normal", func(t *testing.T) {
		alert := Evaluate(snap("Clear", 20, 16, 10), "Çanakkale", "en")
		assert.Equal(t, SeverityNormal, alert.Severity)
		assert.Contains(t, alert.Message, "Strong wind alert")
	})

	t.Run("calm weather yields none", func(t *testing.T) {
		alert := Evaluate(snap("Clear", 20, 3, 40), "Ankara", "en")
		assert.Equal(t, SeverityNone, alert.Severity)
		assert.Empty(t, alert.Message)
	})
}

func TestEvaluate_FirstMatchWins(t *testing.T) {
	// A thunderstorm during extreme heat must report the storm, not the heat.
	alert := Evaluate(snap("Thunderstorm", 40, 0, 10), "Adana", "en")
	assert.Equal(t, SeveritySevere, alert.Severity)
	assert.Contains(t, alert.Message, "Severe weather alert")
	assert.NotContains(t, alert.Message, "heat")
}

func TestEvaluate_Localization(t *testing.T) {
	tr := Evaluate(snap("Thunderstorm", 20, 0, 50), "Ankara", "tr")
	assert.Contains(t, tr.Message, "şiddetli hava koşulları uyarısı")

	en := Evaluate(snap("Thunderstorm", 20, 0, 50), "Ankara", "en")
	assert.Contains(t, en.Message, "Please be careful")
}

func TestEvaluate_Pure(t *testing.T) {
	s := snap("Rain", 18, 12, 60)
	first := Evaluate(s, "İzmir", "tr")
	second := Evaluate(s, "İzmir", "tr")
	assert.Equal(t, first, second)
}
