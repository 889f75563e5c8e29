package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNewOpenMeteoClient(t *testing.T) {
	client := NewOpenMeteoClient("", 5*time.Second)
	if client == nil {
		t.Fatal("NewOpenMeteoClient() returned nil")
	}

	if client.client == nil {
		t.Error("OpenMeteoClient.client should not be nil")
	}

	if client.baseURL != DefaultBaseURL {
		t.Errorf("OpenMeteoClient.baseURL = %v, want %v", client.baseURL, DefaultBaseURL)
	}
}

func TestBuildURL(t *testing.T) {
	client := NewOpenMeteoClient("", time.Second)

	tests := []struct {
		name   string
		params ForecastParams
		want   string
	}{
		{
			name: "dashboard request",
			params: ForecastParams{
				Latitude:       34.65,
				Longitude:      138.85,
				CurrentWeather: true,
				DailyFields:    DailyFields,
				Timezone:       "Asia/Tokyo",
			},
			want: "https://api.open-meteo.com/v1/forecast?latitude=34.6500&longitude=138.8500&timezone=Asia%2FTokyo&current_weather=true&daily=temperature_2m_max,temperature_2m_min,precipitation_sum",
		},
		{
			name: "daily only with forecast days",
			params: ForecastParams{
				Latitude:     40.7128,
				Longitude:    -74.0060,
				DailyFields:  []string{"temperature_2m_max"},
				ForecastDays: 7,
			},
			want: "https://api.open-meteo.com/v1/forecast?latitude=40.7128&longitude=-74.0060&timezone=auto&forecast_days=7&daily=temperature_2m_max",
		},
		{
			name: "current weather only",
			params: ForecastParams{
				Latitude:       51.5074,
				Longitude:      -0.1278,
				CurrentWeather: true,
				Timezone:       "Europe/London",
			},
			want: "https://api.open-meteo.com/v1/forecast?latitude=51.5074&longitude=-0.1278&timezone=Europe%2FLondon&current_weather=true",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := client.BuildURL(tt.params)
			if got != tt.want {
				t.Errorf("BuildURL() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildURL_NegativeCoordinates(t *testing.T) {
	client := NewOpenMeteoClient("", time.Second)

	url := client.BuildURL(ForecastParams{Latitude: -33.8688, Longitude: 151.2093})

	if !strings.Contains(url, "latitude=-33.8688") {
		t.Error("BuildURL() should handle negative latitude")
	}

	if !strings.Contains(url, "longitude=151.2093") {
		t.Error("BuildURL() should handle positive longitude")
	}
}

const forecastBody = `{
  "latitude": 34.625, "longitude": 138.875, "timezone": "Asia/Tokyo",
  "current_weather": {"time": "2026-10-17T09:00", "temperature": 21.4, "windspeed": 12.6, "winddirection": 203, "weathercode": 3},
  "daily": {
    "time": ["2026-10-17"],
    "temperature_2m_max": [24.1],
    "temperature_2m_min": [16.3],
    "precipitation_sum": [3.5]
  }
}`

func TestGetDashboardForecast(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(forecastBody))
	}))
	defer srv.Close()

	client := NewOpenMeteoClient(srv.URL, time.Second)
	forecast, err := client.GetDashboardForecast(context.Background(), 34.65, 138.85, "Asia/Tokyo", 7)
	if err != nil {
		t.Fatalf("GetDashboardForecast() error = %v", err)
	}

	if !strings.Contains(gotQuery, "current_weather=true") || !strings.Contains(gotQuery, "forecast_days=7") {
		t.Errorf("GetDashboardForecast() query = %v", gotQuery)
	}
	if forecast.CurrentWeather.WindDirection != 203 {
		t.Errorf("CurrentWeather.WindDirection = %v, want 203", forecast.CurrentWeather.WindDirection)
	}
	if len(forecast.Daily.PrecipitationSum) != 1 || forecast.Daily.PrecipitationSum[0] != 3.5 {
		t.Errorf("Daily.PrecipitationSum = %v, want [3.5]", forecast.Daily.PrecipitationSum)
	}
}

func TestGetDashboardForecast_InvalidCoordinates(t *testing.T) {
	client := NewOpenMeteoClient("", time.Second)

	if _, err := client.GetDashboardForecast(context.Background(), 91, 0, "", 7); err == nil {
		t.Error("GetDashboardForecast() expected error for latitude 91, got nil")
	}
	if _, err := client.GetDashboardForecast(context.Background(), 0, -181, "", 7); err == nil {
		t.Error("GetDashboardForecast() expected error for longitude -181, got nil")
	}
}

func TestGetForecast_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":true,"reason":"maintenance"}`))
	}))
	defer srv.Close()

	_, err := NewOpenMeteoClient(srv.URL, time.Second).GetForecast(context.Background(), ForecastParams{})

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("GetForecast() error = %v, want *StatusError", err)
	}
	if statusErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("StatusError.StatusCode = %v, want 503", statusErr.StatusCode)
	}
	if !statusErr.Temporary() {
		t.Error("503 should be temporary")
	}
	if !strings.Contains(err.Error(), "maintenance") {
		t.Errorf("error should include body, got %v", err)
	}
}

func TestStatusError_Temporary(t *testing.T) {
	tests := map[int]bool{400: false, 404: false, 429: true, 500: true, 502: true}
	for code, want := range tests {
		if got := (&StatusError{StatusCode: code}).Temporary(); got != want {
			t.Errorf("StatusError{%d}.Temporary() = %v, want %v", code, got, want)
		}
	}
}

func TestGetForecast_DecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := NewOpenMeteoClient(srv.URL, time.Second).GetForecast(context.Background(), ForecastParams{})
	if err == nil || !strings.Contains(err.Error(), "failed to decode response") {
		t.Errorf("GetForecast() error = %v, want decode error", err)
	}
}

func TestGetForecast_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(forecastBody))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewOpenMeteoClient(srv.URL, time.Second).GetForecast(ctx, ForecastParams{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("GetForecast() error = %v, want context.Canceled", err)
	}
}
