// Package dashboard assembles everything the field dashboard shows from one
// forecast load.
package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"hatake/internal/advisor"
	"hatake/internal/api"
	"hatake/internal/metrics"
	"hatake/internal/models"
	"hatake/internal/provider"
)

type Loader interface {
	Load(ctx context.Context) provider.Result
	Refresh(ctx context.Context) provider.Result
}

type Service struct {
	loader   Loader
	engine   *advisor.Engine
	location models.Location
	tz       *time.Location
	clock    clockwork.Clock
	logger   *slog.Logger
}

func NewService(loader Loader, engine *advisor.Engine, location models.Location, clock clockwork.Clock, logger *slog.Logger) *Service {
	if engine == nil {
		engine = advisor.NewEngine(nil)
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = slog.Default()
	}
	tz, err := time.LoadLocation(location.Timezone)
	if err != nil {
		tz = time.UTC
	}
	return &Service{loader: loader, engine: engine, location: location, tz: tz, clock: clock, logger: logger}
}

func (s *Service) Engine() *advisor.Engine {
	return s.engine
}

// Build loads the forecast (cache first) and evaluates it.
func (s *Service) Build(ctx context.Context) *models.Dashboard {
	return s.assemble(s.loader.Load(ctx))
}

// Refresh is Build with a forced live fetch.
func (s *Service) Refresh(ctx context.Context) *models.Dashboard {
	return s.assemble(s.loader.Refresh(ctx))
}

func (s *Service) assemble(res provider.Result) *models.Dashboard {
	snapshot, err := res.Forecast.Snapshot()
	if err != nil {
		s.logger.Error("loaded forecast is unusable, substituting synthetic data", "source", res.Source, "error", err)
		res = provider.Result{
			Forecast: api.SyntheticForecast(s.clock.Now(), s.location.Latitude, s.location.Longitude, s.tz),
			Source:   provider.SourceFallback,
			Notice:   s.engine.Catalog().FallbackNotice,
		}
		snapshot, _ = res.Forecast.Snapshot()
	}

	eval := s.engine.Evaluate(snapshot)
	recordEvaluation(eval)

	return &models.Dashboard{
		Location:      s.location,
		ObservedAt:    res.Forecast.CurrentWeather.Time,
		Snapshot:      snapshot,
		WindDirection: s.engine.WindName(snapshot.CurrentWindDirectionDeg),
		Risk:          eval.Risk,
		Advisories:    eval.Advisories,
		Week:          s.engine.Outlook(res.Forecast, s.tz),
		Source:        string(res.Source),
		Synthetic:     res.Source == provider.SourceFallback,
		Notice:        res.Notice,
		GeneratedAt:   s.clock.Now(),
	}
}

func recordEvaluation(eval advisor.Evaluation) {
	labels := make([]metrics.AdvisoryLabel, 0, len(eval.Advisories))
	for _, a := range eval.Advisories {
		labels = append(labels, metrics.AdvisoryLabel{Category: string(a.Category), Severity: string(a.Severity)})
	}
	metrics.RecordEvaluation(eval.Risk.Score, string(eval.Risk.Level), labels)
}
