package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hatake/internal/models"
)

// DefaultBaseURL is the public Open-Meteo forecast endpoint.
const DefaultBaseURL = "https://api.open-meteo.com/v1/forecast"

// DailyFields are the daily aggregates the dashboard needs.
var DailyFields = []string{"temperature_2m_max", "temperature_2m_min", "precipitation_sum"}

// OpenMeteoClient is a client for the Open-Meteo API
type OpenMeteoClient struct {
	client  *http.Client
	baseURL string
}

type ForecastParams struct {
	Latitude       float64
	Longitude      float64
	CurrentWeather bool
	DailyFields    []string
	Timezone       string
	ForecastDays   int // how many days in the future you want to forecast, 0 keeps the API default
}

// NewOpenMeteoClient creates a new Open-Meteo API client
func NewOpenMeteoClient(baseURL string, timeout time.Duration) *OpenMeteoClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &OpenMeteoClient{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

// GetForecast fetches current conditions and daily aggregates for the given params
func (c *OpenMeteoClient) GetForecast(ctx context.Context, params ForecastParams) (*models.Forecast, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BuildURL(params), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch forecast: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var forecast models.Forecast
	if err := json.NewDecoder(resp.Body).Decode(&forecast); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &forecast, nil
}

// Builds URL for OpenMeteoClient request
func (c *OpenMeteoClient) BuildURL(params ForecastParams) string {
	if params.Timezone == "" {
		params.Timezone = "auto"
	}

	u := fmt.Sprintf("%s?latitude=%.4f&longitude=%.4f&timezone=%s",
		c.baseURL, params.Latitude, params.Longitude, url.QueryEscape(params.Timezone))

	if params.CurrentWeather {
		u += "&current_weather=true"
	}

	if params.ForecastDays > 0 {
		u += fmt.Sprintf("&forecast_days=%d", params.ForecastDays)
	}

	if len(params.DailyFields) > 0 {
		u += "&daily=" + strings.Join(params.DailyFields, ",")
	}

	return u
}

// GetDashboardForecast fetches the current conditions plus the daily series the dashboard uses.
func (c *OpenMeteoClient) GetDashboardForecast(ctx context.Context, lat, long float64, timezone string, days int) (*models.Forecast, error) {
	if lat < -90 || lat > 90 || long < -180 || long > 180 {
		return nil, fmt.Errorf("GetDashboardForecast: coordinates out of range (%.4f, %.4f)", lat, long)
	}

	return c.GetForecast(ctx, ForecastParams{
		Latitude:       lat,
		Longitude:      long,
		CurrentWeather: true,
		DailyFields:    DailyFields,
		Timezone:       timezone,
		ForecastDays:   days,
	})
}

// StatusError is returned when Open-Meteo answers with a non-200 status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API error: status %d, body: %s", e.StatusCode, e.Body)
}

// Temporary reports whether retrying the request may succeed.
func (e *StatusError) Temporary() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}
