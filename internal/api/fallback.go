package api

import (
	"time"

	"hatake/internal/models"
)

// Fixed sample values shown when the live forecast is unavailable.
var (
	syntheticMax    = []float64{18, 19, 20, 18, 9, 19, 5}
	syntheticMin    = []float64{12, 11, 10, 9, 10, 11, 13}
	syntheticPrecip = []float64{0, 0, 0, 3.2, 0, 0.2, 15}
)

// SyntheticForecast builds a 7-day stand-in forecast starting on now's date in loc.
func SyntheticForecast(now time.Time, lat, long float64, loc *time.Location) *models.Forecast {
	if loc == nil {
		loc = time.UTC
	}
	now = now.In(loc)

	days := make([]string, len(syntheticMax))
	for i := range days {
		days[i] = now.AddDate(0, 0, i).Format("2006-01-02")
	}

	return &models.Forecast{
		Latitude:  lat,
		Longitude: long,
		Timezone:  loc.String(),
		CurrentWeather: models.CurrentWeather{
			Time:          now.Format("2006-01-02T15:04"),
			Temperature:   30,
			WindSpeed:     22,
			WindDirection: 180,
			WeatherCode:   0,
		},
		DailyUnits: models.DailyUnits{
			Time:             "iso8601",
			Temperature2mMax: "°C",
			Temperature2mMin: "°C",
			PrecipitationSum: "mm",
		},
		Daily: models.Daily{
			Time:             days,
			Temperature2mMax: append([]float64(nil), syntheticMax...),
			Temperature2mMin: append([]float64(nil), syntheticMin...),
			PrecipitationSum: append([]float64(nil), syntheticPrecip...),
		},
	}
}
