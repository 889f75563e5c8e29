package advisor

import (
	"time"

	"hatake/internal/models"
)

type tagKind string

const (
	tagHot       tagKind = "hot"
	tagCold      tagKind = "cold"
	tagHeavyRain tagKind = "heavy_rain"
	tagShower    tagKind = "shower"
)

type tagRule struct {
	when threshold
	kind tagKind
	icon models.Icon
}

// Day tags use the advisory thresholds minus the mild-heat band.
var (
	temperatureTags = []tagRule{
		{gte(28), tagHot, models.IconSun},
		{lte(10), tagCold, models.IconSnow},
	}
	precipitationTags = []tagRule{
		{gte(10), tagHeavyRain, models.IconRain},
		{gte(1), tagShower, models.IconShower},
	}
)

func (e *Engine) firstTag(rules []tagRule, v float64) (models.DayTag, bool) {
	for _, r := range rules {
		if r.when.matches(v) {
			return models.DayTag{Icon: r.icon, Label: e.catalog.dayTags[r.kind], Kind: string(r.kind)}, true
		}
	}
	return models.DayTag{}, false
}

// Tags returns the weekly-list tags for one day's max temperature and precipitation.
func (e *Engine) Tags(maxTempC, precipMm float64) []models.DayTag {
	tags := make([]models.DayTag, 0, 2)
	if t, ok := e.firstTag(temperatureTags, maxTempC); ok {
		tags = append(tags, t)
	}
	if t, ok := e.firstTag(precipitationTags, precipMm); ok {
		tags = append(tags, t)
	}
	return tags
}

// Outlook builds the tagged day list for every complete daily row of the forecast.
// Row 0 is today. Dates that fail to parse are left zero.
func (e *Engine) Outlook(f *models.Forecast, loc *time.Location) []models.DayOutlook {
	if f == nil {
		return nil
	}
	if loc == nil {
		loc = time.UTC
	}

	n := f.Daily.Days()
	days := make([]models.DayOutlook, 0, n)
	for i := 0; i < n; i++ {
		date, _ := time.ParseInLocation("2006-01-02", f.Daily.Time[i], loc)
		high := f.Daily.Temperature2mMax[i]
		precip := f.Daily.PrecipitationSum[i]
		days = append(days, models.DayOutlook{
			Date:            date,
			Today:           i == 0,
			MaxTempC:        high,
			MinTempC:        f.Daily.Temperature2mMin[i],
			PrecipitationMm: precip,
			Tags:            e.Tags(high, precip),
		})
	}
	return days
}
