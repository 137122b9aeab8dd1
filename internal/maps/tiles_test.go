package maps

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meteomotto/go-weather-backend/internal/weather/domain"
)

func TestTileURL(t *testing.T) {
	assert.Equal(t, "https://a.tile.openstreetmap.org/10/619/383.png", TileURL("a", 10, 619, 383))
}

func TestMarkerFromSnapshot(t *testing.T) {
	marker := MarkerFromSnapshot(domain.ConditionsSnapshot{
		City:        "Ankara",
		Lat:         39.9334,
		Lon:         32.8597,
		Temperature: 21.4,
		Description: "clear sky",
		Icon:        "01d",
	})

	assert.Equal(t, 39.9334, marker.Lat)
	assert.Equal(t, 32.8597, marker.Lon)
	assert.Equal(t, "Ankara", marker.City)
	assert.Equal(t, 21.4, marker.Temperature)
	assert.Equal(t, "https://openweathermap.org/img/wn/01d@2x.png", marker.IconURL)
}

func TestMarkerFromSnapshot_NoIcon(t *testing.T) {
	marker := MarkerFromSnapshot(domain.ConditionsSnapshot{City: "Ankara"})
	assert.Empty(t, marker.IconURL)
}
