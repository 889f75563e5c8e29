// Package provider obtains the forecast the dashboard is built from. It tries the
// cache, then Open-Meteo with retries, and finally falls back to a synthetic
// forecast so a caller always has something to render.
package provider

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jonboulle/clockwork"

	"hatake/internal/api"
	"hatake/internal/cache"
	"hatake/internal/metrics"
	"hatake/internal/models"
)

type Source string

const (
	SourceLive     Source = "live"
	SourceCache    Source = "cache"
	SourceFallback Source = "fallback"
)

// Fetcher retrieves a live forecast. *api.OpenMeteoClient satisfies it.
type Fetcher interface {
	GetDashboardForecast(ctx context.Context, lat, long float64, timezone string, days int) (*models.Forecast, error)
}

type Cache interface {
	Get(ctx context.Context, lat, long float64) (*models.Forecast, error)
	Set(ctx context.Context, lat, long float64, f *models.Forecast) error
}

// Result is the outcome of a load. Forecast is never nil and always has at
// least one complete daily row.
type Result struct {
	Forecast *models.Forecast
	Source   Source
	Notice   string
	// Cause is the error that forced the fallback, nil otherwise.
	Cause error
}

type Options struct {
	Location       models.Location
	Days           int
	Retries        uint64
	FallbackNotice string
	Cache          Cache
	Clock          clockwork.Clock
	Logger         *slog.Logger
	// NewBackOff overrides the retry schedule between live attempts.
	NewBackOff func() backoff.BackOff
}

type Provider struct {
	fetcher    Fetcher
	cache      Cache
	location   models.Location
	tz         *time.Location
	days       int
	retries    uint64
	notice     string
	clock      clockwork.Clock
	logger     *slog.Logger
	newBackOff func() backoff.BackOff
}

func New(fetcher Fetcher, opts Options) *Provider {
	p := &Provider{
		fetcher:    fetcher,
		cache:      opts.Cache,
		location:   opts.Location,
		days:       opts.Days,
		retries:    opts.Retries,
		notice:     opts.FallbackNotice,
		clock:      opts.Clock,
		logger:     opts.Logger,
		newBackOff: opts.NewBackOff,
	}

	if p.cache == nil {
		p.cache = cache.NopCache{}
	}
	if p.clock == nil {
		p.clock = clockwork.NewRealClock()
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	if p.newBackOff == nil {
		p.newBackOff = defaultBackOff
	}

	tz, err := time.LoadLocation(opts.Location.Timezone)
	if err != nil {
		tz = time.UTC
	}
	p.tz = tz

	return p
}

func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = 20 * time.Second
	return b
}

// Load returns the cached forecast when one is available, otherwise a live one.
func (p *Provider) Load(ctx context.Context) Result {
	return p.load(ctx, true)
}

// Refresh skips the cache read and goes straight to Open-Meteo.
func (p *Provider) Refresh(ctx context.Context) Result {
	return p.load(ctx, false)
}

func (p *Provider) load(ctx context.Context, useCache bool) Result {
	lat, long := p.location.Latitude, p.location.Longitude

	if useCache {
		if f, err := p.cache.Get(ctx, lat, long); err == nil {
			if _, snapErr := f.Snapshot(); snapErr == nil {
				metrics.RecordForecastLoad(string(SourceCache))
				return Result{Forecast: f, Source: SourceCache}
			}
			p.logger.Warn("ignoring incomplete cached forecast")
		} else if !errors.Is(err, cache.ErrCacheMiss) {
			p.logger.Warn("forecast cache read failed", "error", err)
		}
	}

	f, err := p.fetchLive(ctx)
	if err != nil {
		p.logger.Warn("live forecast unavailable, using synthetic data", "error", err)
		metrics.RecordForecastLoad(string(SourceFallback))
		return Result{
			Forecast: api.SyntheticForecast(p.clock.Now(), lat, long, p.tz),
			Source:   SourceFallback,
			Notice:   p.notice,
			Cause:    err,
		}
	}

	if err := p.cache.Set(ctx, lat, long, f); err != nil {
		p.logger.Warn("forecast cache write failed", "error", err)
	}

	metrics.RecordForecastLoad(string(SourceLive))
	return Result{Forecast: f, Source: SourceLive}
}

func (p *Provider) fetchLive(ctx context.Context) (*models.Forecast, error) {
	if p.fetcher == nil {
		return nil, errors.New("no forecast fetcher configured")
	}

	var forecast *models.Forecast
	attempt := 0
	op := func() error {
		attempt++
		start := p.clock.Now()
		f, err := p.fetcher.GetDashboardForecast(ctx, p.location.Latitude, p.location.Longitude, p.location.Timezone, p.days)
		metrics.RecordFetch(p.clock.Since(start), err)
		if err != nil {
			p.logger.Debug("forecast attempt failed", "attempt", attempt, "error", err)
			if ctx.Err() != nil || !retryable(err) {
				return backoff.Permanent(err)
			}
			return err
		}

		if _, err := f.Snapshot(); err != nil {
			return backoff.Permanent(err)
		}

		forecast = f
		return nil
	}

	b := backoff.WithContext(backoff.WithMaxRetries(p.newBackOff(), p.retries), ctx)
	if err := backoff.Retry(op, b); err != nil {
		return nil, fmt.Errorf("fetch forecast after %d attempt(s): %w", attempt, err)
	}
	return forecast, nil
}

// retryable reports whether another attempt may succeed. Client errors from
// Open-Meteo are final.
func retryable(err error) bool {
	var statusErr *api.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Temporary()
	}
	return true
}
