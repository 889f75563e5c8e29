package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrIncompleteForecast is returned when a forecast lacks the values needed
// to build today's snapshot.
var ErrIncompleteForecast = errors.New("incomplete forecast")

// Forecast represents weather forecast data from Open-Meteo API
type Forecast struct {
	Latitude         float64        `json:"latitude"`
	Longitude        float64        `json:"longitude"`
	Timezone         string         `json:"timezone"`
	CurrentWeather   CurrentWeather `json:"current_weather"`
	DailyUnits       DailyUnits     `json:"daily_units"`
	Daily            Daily          `json:"daily"`
	GenerationTimeMs float64        `json:"generation_time_ms"`
}

type CurrentWeather struct {
	Time          string  `json:"time"`
	Temperature   float64 `json:"temperature"`
	WindSpeed     float64 `json:"windspeed"`
	WindDirection float64 `json:"winddirection"`
	WeatherCode   int     `json:"weathercode"`
}

type DailyUnits struct {
	Time             string `json:"time"`
	Temperature2mMax string `json:"temperature_2m_max"`
	Temperature2mMin string `json:"temperature_2m_min"`
	PrecipitationSum string `json:"precipitation_sum"`
}

type Daily struct {
	Time             []string  `json:"time"`
	Temperature2mMax []float64 `json:"temperature_2m_max"`
	Temperature2mMin []float64 `json:"temperature_2m_min"`
	PrecipitationSum []float64 `json:"precipitation_sum"`
}

// Days returns the number of complete daily rows in the forecast.
func (d Daily) Days() int {
	n := len(d.Time)
	for _, l := range []int{len(d.Temperature2mMax), len(d.Temperature2mMin), len(d.PrecipitationSum)} {
		if l < n {
			n = l
		}
	}
	return n
}

// Snapshot builds today's snapshot from the current conditions and daily index 0.
func (f *Forecast) Snapshot() (WeatherSnapshot, error) {
	if f == nil {
		return WeatherSnapshot{}, fmt.Errorf("%w: nil forecast", ErrIncompleteForecast)
	}
	if f.Daily.Days() == 0 {
		return WeatherSnapshot{}, fmt.Errorf("%w: no daily rows", ErrIncompleteForecast)
	}

	return WeatherSnapshot{
		CurrentTemperatureC:     f.CurrentWeather.Temperature,
		CurrentWindSpeedKmh:     f.CurrentWeather.WindSpeed,
		CurrentWindDirectionDeg: f.CurrentWeather.WindDirection,
		TodayMaxTempC:           f.Daily.Temperature2mMax[0],
		TodayMinTempC:           f.Daily.Temperature2mMin[0],
		TodayPrecipitationMm:    f.Daily.PrecipitationSum[0],
	}, nil
}

// WeatherSnapshot is a point-in-time bundle of current and today's readings.
type WeatherSnapshot struct {
	CurrentTemperatureC     float64 `json:"current_temperature_c"`
	CurrentWindSpeedKmh     float64 `json:"current_wind_speed_kmh"`
	CurrentWindDirectionDeg float64 `json:"current_wind_direction_deg"`
	TodayMaxTempC           float64 `json:"today_max_temp_c"`
	TodayMinTempC           float64 `json:"today_min_temp_c"`
	TodayPrecipitationMm    float64 `json:"today_precipitation_mm"`
}

// RiskLevel is the three-tier label derived from a risk score.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// RiskAssessment represents today's composite weather risk
type RiskAssessment struct {
	Score int       `json:"score"` // 0-100
	Level RiskLevel `json:"level"`
	Label string    `json:"label"`
}

type Category string

const (
	CategoryTemperature Category = "temperature"
	CategoryRain        Category = "rain"
	CategoryWind        Category = "wind"
)

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Icon is a presentation-neutral token; renderers map it to a glyph.
type Icon string

const (
	IconSun     Icon = "sun"
	IconSnow    Icon = "snow"
	IconRain    Icon = "rain"
	IconShower  Icon = "shower"
	IconWind    Icon = "wind"
	IconTornado Icon = "tornado"
	IconIce     Icon = "ice"
	IconFog     Icon = "fog"
	IconBreeze  Icon = "breeze"
)

// Advisory represents one farm-work recommendation
type Advisory struct {
	Category Category `json:"category"`
	Severity Severity `json:"severity"`
	Icon     Icon     `json:"icon"`
	Title    string   `json:"title"`
	Message  string   `json:"message"`
}

// DayTag marks a notable condition on a forecast day
type DayTag struct {
	Icon  Icon   `json:"icon"`
	Label string `json:"label"`
	Kind  string `json:"kind"` // "hot", "cold", "heavy_rain", "shower"
}

// DayOutlook is one row of the weekly forecast list
type DayOutlook struct {
	Date            time.Time `json:"date"`
	Today           bool      `json:"today"`
	MaxTempC        float64   `json:"max_temp_c"`
	MinTempC        float64   `json:"min_temp_c"`
	PrecipitationMm float64   `json:"precipitation_mm"`
	Tags            []DayTag  `json:"tags"`
}

// Location is the single monitored place
type Location struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
}

// Dashboard is everything the presentation layer needs for one render.
type Dashboard struct {
	Location      Location        `json:"location"`
	ObservedAt    string          `json:"observed_at"`
	Snapshot      WeatherSnapshot `json:"snapshot"`
	WindDirection string          `json:"wind_direction"`
	Risk          RiskAssessment  `json:"risk"`
	Advisories    []Advisory      `json:"advisories"`
	Week          []DayOutlook    `json:"week"`
	Source        string          `json:"source"` // "live", "cache", "fallback"
	Synthetic     bool            `json:"synthetic"`
	Notice        string          `json:"notice,omitempty"`
	GeneratedAt   time.Time       `json:"generated_at"`
}
