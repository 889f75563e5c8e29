package dashboard

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hatake/internal/advisor"
	"hatake/internal/api"
	"hatake/internal/models"
	"hatake/internal/provider"
)

type stubLoader struct {
	result    provider.Result
	refreshed bool
}

func (l *stubLoader) Load(context.Context) provider.Result { return l.result }

func (l *stubLoader) Refresh(context.Context) provider.Result {
	l.refreshed = true
	return l.result
}

var field = models.Location{Name: "南伊豆", Latitude: 34.65, Longitude: 138.85, Timezone: "UTC"}

func newService(l Loader, clock clockwork.Clock) *Service {
	return NewService(l, advisor.NewEngine(nil), field, clock, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestBuild_Live(t *testing.T) {
	now := time.Date(2026, 10, 17, 6, 0, 0, 0, time.UTC)
	f := &models.Forecast{
		CurrentWeather: models.CurrentWeather{Time: "2026-10-17T06:00", Temperature: 19, WindSpeed: 10, WindDirection: 0},
		Daily: models.Daily{
			Time:             []string{"2026-10-17", "2026-10-18"},
			Temperature2mMax: []float64{24, 29},
			Temperature2mMin: []float64{14, 18},
			PrecipitationSum: []float64{2, 12},
		},
	}
	l := &stubLoader{result: provider.Result{Forecast: f, Source: provider.SourceLive}}

	d := newService(l, clockwork.NewFakeClockAt(now)).Build(context.Background())

	assert.Equal(t, field, d.Location)
	assert.Equal(t, "2026-10-17T06:00", d.ObservedAt)
	assert.Equal(t, "live", d.Source)
	assert.False(t, d.Synthetic)
	assert.Empty(t, d.Notice)
	assert.Equal(t, now, d.GeneratedAt)
	assert.Equal(t, "北風", d.WindDirection)

	// 24C -> 0, 2mm -> 0, 10km/h -> 15
	assert.Equal(t, 15, d.Risk.Score)
	assert.Equal(t, models.RiskLow, d.Risk.Level)
	assert.Equal(t, advisor.Generate(d.Snapshot), d.Advisories)

	require.Len(t, d.Week, 2)
	assert.True(t, d.Week[0].Today)
	assert.Len(t, d.Week[1].Tags, 2)
}

func TestBuild_Fallback(t *testing.T) {
	now := time.Date(2026, 10, 17, 6, 0, 0, 0, time.UTC)
	l := &stubLoader{result: provider.Result{
		Forecast: api.SyntheticForecast(now, field.Latitude, field.Longitude, time.UTC),
		Source:   provider.SourceFallback,
		Notice:   "synthetic",
	}}

	d := newService(l, clockwork.NewFakeClockAt(now)).Build(context.Background())

	assert.True(t, d.Synthetic)
	assert.Equal(t, "synthetic", d.Notice)
	assert.Equal(t, "fallback", d.Source)
	assert.Equal(t, "南風", d.WindDirection)
	assert.Len(t, d.Week, 7)
	// 18C -> 0, 0mm -> 0, 22km/h -> 30
	assert.Equal(t, 30, d.Risk.Score)
	assert.Equal(t, models.RiskLow, d.Risk.Level)
}

func TestBuild_UnusableForecastIsReplaced(t *testing.T) {
	l := &stubLoader{result: provider.Result{Forecast: &models.Forecast{}, Source: provider.SourceCache}}

	d := newService(l, nil).Build(context.Background())

	assert.True(t, d.Synthetic)
	assert.NotEmpty(t, d.Notice)
	assert.Len(t, d.Week, 7)
}

func TestRefresh_ForcesLiveLoad(t *testing.T) {
	l := &stubLoader{result: provider.Result{
		Forecast: api.SyntheticForecast(time.Now(), 0, 0, time.UTC),
		Source:   provider.SourceLive,
	}}

	newService(l, nil).Refresh(context.Background())

	assert.True(t, l.refreshed)
}
