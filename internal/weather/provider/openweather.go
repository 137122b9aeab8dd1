package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/meteomotto/go-weather-backend/internal/weather/domain"
)

// Client talks to the OpenWeatherMap REST API. All requests use metric
// units; the provider localizes descriptions via the lang parameter.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates an OpenWeatherMap client. rps bounds outgoing
// requests per second so a burst of UI fetches cannot exhaust the quota.
func NewClient(apiKey, baseURL string, rps float64) *Client {
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(rps), int(rps)+1),
	}
}

// CurrentByCity fetches current conditions for a city name.
func (c *Client) CurrentByCity(ctx context.Context, city, lang string) (domain.ConditionsSnapshot, error) {
	params := url.Values{}
	params.Set("q", city)
	return c.current(ctx, params, lang)
}

// CurrentByCoords fetches current conditions for coordinates.
func (c *Client) CurrentByCoords(ctx context.Context, lat, lon float64, lang string) (domain.ConditionsSnapshot, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	return c.current(ctx, params, lang)
}

// ForecastByCity fetches the 5-day / 3-hour-step forecast for a city name.
func (c *Client) ForecastByCity(ctx context.Context, city, lang string) (domain.ForecastSnapshot, error) {
	params := url.Values{}
	params.Set("q", city)
	return c.forecast(ctx, params, lang)
}

// ForecastByCoords fetches the 5-day / 3-hour-step forecast for coordinates.
func (c *Client) ForecastByCoords(ctx context.Context, lat, lon float64, lang string) (domain.ForecastSnapshot, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	return c.forecast(ctx, params, lang)
}

// IconURL returns the provider image URL for an icon code.
func IconURL(iconCode string) string {
	return fmt.Sprintf("https://openweathermap.org/img/wn/%s@2x.png", iconCode)
}

func (c *Client) get(ctx context.Context, path string, params url.Values, lang string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	params.Set("appid", c.apiKey)
	params.Set("units", "metric")
	params.Set("lang", lang)

	endpoint := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.ProviderError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}

type conditionsResponse struct {
	Coord struct {
		Lon float64 `json:"lon"`
		Lat float64 `json:"lat"`
	} `json:"coord"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Dt  int64 `json:"dt"`
	Sys struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Name string `json:"name"`
}

func (c *Client) current(ctx context.Context, params url.Values, lang string) (domain.ConditionsSnapshot, error) {
	body, err := c.get(ctx, "/weather", params, lang)
	if err != nil {
		return domain.ConditionsSnapshot{}, err
	}

	var response conditionsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return domain.ConditionsSnapshot{}, fmt.Errorf("failed to parse response: %w", err)
	}

	snapshot := domain.ConditionsSnapshot{
		City:        response.Name,
		Country:     response.Sys.Country,
		Lat:         response.Coord.Lat,
		Lon:         response.Coord.Lon,
		Timestamp:   time.Unix(response.Dt, 0).UTC(),
		Temperature: response.Main.Temp,
		FeelsLike:   response.Main.FeelsLike,
		Humidity:    response.Main.Humidity,
		WindSpeed:   response.Wind.Speed,
		Sunrise:     time.Unix(response.Sys.Sunrise, 0).UTC(),
		Sunset:      time.Unix(response.Sys.Sunset, 0).UTC(),
	}
	if len(response.Weather) > 0 {
		snapshot.Condition = response.Weather[0].Main
		snapshot.Description = response.Weather[0].Description
		snapshot.Icon = response.Weather[0].Icon
	}

	return snapshot, nil
}

type forecastResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp      float64 `json:"temp"`
			FeelsLike float64 `json:"feels_like"`
			Humidity  int     `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			Main        string `json:"main"`
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
	} `json:"list"`
	City struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"city"`
}

func (c *Client) forecast(ctx context.Context, params url.Values, lang string) (domain.ForecastSnapshot, error) {
	body, err := c.get(ctx, "/forecast", params, lang)
	if err != nil {
		return domain.ForecastSnapshot{}, err
	}

	var response forecastResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return domain.ForecastSnapshot{}, fmt.Errorf("failed to parse response: %w", err)
	}

	forecast := domain.ForecastSnapshot{
		City:    response.City.Name,
		Country: response.City.Country,
		Entries: make([]domain.ForecastEntry, 0, len(response.List)),
	}

	for _, item := range response.List {
		entry := domain.ForecastEntry{
			Timestamp:   time.Unix(item.Dt, 0).UTC(),
			Temperature: item.Main.Temp,
			FeelsLike:   item.Main.FeelsLike,
			Humidity:    item.Main.Humidity,
			WindSpeed:   item.Wind.Speed,
		}
		if len(item.Weather) > 0 {
			entry.Condition = item.Weather[0].Main
			entry.Description = item.Weather[0].Description
			entry.Icon = item.Weather[0].Icon
		}
		forecast.Entries = append(forecast.Entries, entry)
	}

	return forecast, nil
}
