package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/meteomotto/go-weather-backend/internal/geo"
	"github.com/meteomotto/go-weather-backend/internal/maps"
	"github.com/meteomotto/go-weather-backend/internal/weather/domain"
	"github.com/meteomotto/go-weather-backend/internal/weather/service"
)

type Handler struct {
	weather *service.Service
}

func NewHandler(weather *service.Service) *Handler {
	return &Handler{weather: weather}
}

// GetWeather returns the full report for ?city= lookups.
func (h *Handler) GetWeather(c *gin.Context) {
	city := strings.TrimSpace(c.Query("city"))
	if city == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "city is required"})
		return
	}

	lang := normalizeLang(c.Query("lang"))
	report, err := h.weather.ReportByCity(
		c.Request.Context(),
		city,
		lang,
		c.DefaultQuery("forecast", "true") == "true",
		c.DefaultQuery("suggestion", "true") == "true",
	)
	if err != nil {
		respondFetchError(c, lang, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetWeatherByCoords returns the full report for ?lat=&lon= lookups.
func (h *Handler) GetWeatherByCoords(c *gin.Context) {
	pos, err := geo.ParsePosition(c.Query("lat"), c.Query("lon"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lang := normalizeLang(c.Query("lang"))
	report, err := h.weather.ReportByCoords(
		c.Request.Context(),
		pos,
		lang,
		c.DefaultQuery("forecast", "true") == "true",
		c.DefaultQuery("suggestion", "true") == "true",
	)
	if err != nil {
		respondFetchError(c, lang, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetForecast returns the raw 3-hour-step forecast for a city.
func (h *Handler) GetForecast(c *gin.Context) {
	city := strings.TrimSpace(c.Query("city"))
	if city == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "city is required"})
		return
	}

	lang := normalizeLang(c.Query("lang"))
	forecast, cached, err := h.weather.Forecast(c.Request.Context(), city, lang)
	if err != nil {
		respondFetchError(c, lang, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"forecast": forecast, "cached": cached})
}

// SearchCities filters the static reference list.
func (h *Handler) SearchCities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cities": geo.SearchCities(c.Query("q"))})
}

// GetMapConfig exposes the tile source the map view should render.
func (h *Handler) GetMapConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"tile_url":    maps.TileURLTemplate,
		"attribution": maps.Attribution,
	})
}

func normalizeLang(lang string) string {
	if lang == "en" {
		return "en"
	}
	return "tr"
}

// respondFetchError keeps the provider's HTTP status when it had one,
// with a localized user-facing message. Retry is up to the user.
func respondFetchError(c *gin.Context, lang string, err error) {
	var provErr *domain.ProviderError
	if errors.As(err, &provErr) {
		status := provErr.StatusCode
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{"error": fetchErrorMessage(lang), "detail": provErr.Error()})
		return
	}

	c.JSON(http.StatusBadGateway, gin.H{"error": fetchErrorMessage(lang)})
}

func fetchErrorMessage(lang string) string {
	if lang == "tr" {
		return "Hava durumu bilgisi alınamadı"
	}
	return "Could not fetch weather data"
}
