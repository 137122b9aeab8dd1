package maps

import (
	"fmt"

	"github.com/meteomotto/go-weather-backend/internal/weather/domain"
	"github.com/meteomotto/go-weather-backend/internal/weather/provider"
)

// TileURLTemplate is the raster tile source the map view consumes.
// Display-only: no logic depends on tile contents.
const TileURLTemplate = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"

// Attribution is the notice the tile provider requires next to the map.
const Attribution = "© OpenStreetMap contributors"

// Marker is an ephemeral map pin derived from a conditions snapshot.
type Marker struct {
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	City        string  `json:"city"`
	Temperature float64 `json:"temperature"`
	Description string  `json:"description,omitempty"`
	IconURL     string  `json:"icon_url,omitempty"`
}

// MarkerFromSnapshot builds the marker for a fetched city.
func MarkerFromSnapshot(snapshot domain.ConditionsSnapshot) Marker {
	m := Marker{
		Lat:         snapshot.Lat,
		Lon:         snapshot.Lon,
		City:        snapshot.City,
		Temperature: snapshot.Temperature,
		Description: snapshot.Description,
	}
	if snapshot.Icon != "" {
		m.IconURL = provider.IconURL(snapshot.Icon)
	}
	return m
}

// TileURL resolves the template for a concrete tile, mostly for tests
// and server-side previews.
func TileURL(subdomain string, z, x, y int) string {
	return fmt.Sprintf("https://%s.tile.openstreetmap.org/%d/%d/%d.png", subdomain, z, x, y)
}
