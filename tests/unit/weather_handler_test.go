package unit

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meteomotto/go-weather-backend/internal/cache"
	"github.com/meteomotto/go-weather-backend/internal/suggestion"
	"github.com/meteomotto/go-weather-backend/internal/weather/domain"
	weatherhttp "github.com/meteomotto/go-weather-backend/internal/weather/http"
	weatherservice "github.com/meteomotto/go-weather-backend/internal/weather/service"
)

type stubProvider struct {
	snapshot domain.ConditionsSnapshot
	forecast domain.ForecastSnapshot
	err      error
}

func (s *stubProvider) CurrentByCity(context.Context, string, string) (domain.ConditionsSnapshot, error) {
	return s.snapshot, s.err
}

func (s *stubProvider) CurrentByCoords(context.Context, float64, float64, string) (domain.ConditionsSnapshot, error) {
	return s.snapshot, s.err
}

func (s *stubProvider) ForecastByCity(context.Context, string, string) (domain.ForecastSnapshot, error) {
	return s.forecast, s.err
}

func (s *stubProvider) ForecastByCoords(context.Context, float64, float64, string) (domain.ForecastSnapshot, error) {
	return s.forecast, s.err
}

func setupWeatherRouter(t *testing.T, p *stubProvider) *gin.Engine {
	gin.SetMode(gin.TestMode)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	svc := weatherservice.NewService(p, cache.New(client, "test:cache:", time.Hour), suggestion.NewService(nil))

	router := gin.New()
	weatherhttp.NewHandler(svc).Register(router.Group("/api/v1"))
	return router
}

func ankaraProvider() *stubProvider {
	return &stubProvider{
		snapshot: domain.ConditionsSnapshot{
			City:        "Ankara",
			Country:     "TR",
			Temperature: 21.4,
			FeelsLike:   19.8,
			Humidity:    45,
			WindSpeed:   3.6,
			Condition:   "Clear",
			Description: "clear sky",
		},
	}
}

func TestGetWeather(t *testing.T) {
	router := setupWeatherRouter(t, ankaraProvider())

	req, _ := http.NewRequest("GET", "/api/v1/weather?city=Ankara&lang=en&forecast=false", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var report weatherservice.Report
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))
	assert.Equal(t, "ankara:en", report.Query)
	assert.Equal(t, "Ankara", report.Snapshot.City)
	assert.Contains(t, report.Summary, "Today in Ankara")
}

func TestGetWeather_MissingCity(t *testing.T) {
	router := setupWeatherRouter(t, ankaraProvider())

	req, _ := http.NewRequest("GET", "/api/v1/weather", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetWeather_ProviderStatusPropagates(t *testing.T) {
	p := ankaraProvider()
	p.err = &domain.ProviderError{StatusCode: http.StatusNotFound, Body: "city not found"}
	router := setupWeatherRouter(t, p)

	req, _ := http.NewRequest("GET", "/api/v1/weather?city=Nowhere&lang=en", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "Could not fetch weather data")
}

func TestGetWeatherByCoords_InvalidInput(t *testing.T) {
	router := setupWeatherRouter(t, ankaraProvider())

	req, _ := http.NewRequest("GET", "/api/v1/weather/coords?lat=north&lon=32.8", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSearchCitiesEndpoint(t *testing.T) {
	router := setupWeatherRouter(t, ankaraProvider())

	req, _ := http.NewRequest("GET", "/api/v1/cities?q=ank", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Cities []string `json:"cities"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Contains(t, body.Cities, "Ankara")
}

func TestMapConfigEndpoint(t *testing.T) {
	router := setupWeatherRouter(t, ankaraProvider())

	req, _ := http.NewRequest("GET", "/api/v1/map/config", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "tile.openstreetmap.org")
}
