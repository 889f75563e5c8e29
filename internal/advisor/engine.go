package advisor

import "hatake/internal/models"

// Engine scores weather risk and produces farm-work advisories.
// It holds only a read-only catalog and is safe for concurrent use.
type Engine struct {
	catalog *Catalog
}

// Evaluation is the full engine output for one snapshot.
type Evaluation struct {
	Risk       models.RiskAssessment `json:"risk"`
	Advisories []models.Advisory     `json:"advisories"`
}

// NewEngine creates an engine that localizes output with catalog.
// A nil catalog falls back to the default locale.
func NewEngine(catalog *Catalog) *Engine {
	if catalog == nil {
		catalog = japanese
	}
	return &Engine{catalog: catalog}
}

var defaultEngine = NewEngine(nil)

// Score converts today's max temperature, precipitation and wind speed into a risk assessment.
func Score(maxTempC, precipMm, windSpeedKmh float64) models.RiskAssessment {
	return defaultEngine.Score(maxTempC, precipMm, windSpeedKmh)
}

// Generate returns the advisories for a snapshot using the default catalog.
func Generate(snapshot models.WeatherSnapshot) []models.Advisory {
	return defaultEngine.Generate(snapshot)
}

// Catalog returns the engine's catalog.
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// Score converts today's max temperature, precipitation and wind speed into a risk assessment.
func (e *Engine) Score(maxTempC, precipMm, windSpeedKmh float64) models.RiskAssessment {
	score := points(temperaturePoints, maxTempC) +
		points(precipitationPoints, precipMm) +
		points(windPoints, windSpeedKmh)
	if score > maxScore {
		score = maxScore
	}

	level := riskLevel(score)
	return models.RiskAssessment{
		Score: score,
		Level: level,
		Label: e.catalog.RiskLabel(level),
	}
}

func riskLevel(score int) models.RiskLevel {
	switch {
	case score >= highRiskScore:
		return models.RiskHigh
	case score >= mediumRiskScore:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

// Generate returns the advisories for a snapshot in rule order:
// temperature, rain, wind strength, wind direction.
// An empty slice means nothing needs special attention today.
func (e *Engine) Generate(s models.WeatherSnapshot) []models.Advisory {
	advisories := make([]models.Advisory, 0, 4)

	if r, ok := firstRule(temperatureRules, s.TodayMaxTempC); ok {
		advisories = append(advisories, e.catalog.advisory(models.CategoryTemperature, r.severity, r.copy))
	}
	if r, ok := firstRule(rainRules, s.TodayPrecipitationMm); ok {
		advisories = append(advisories, e.catalog.advisory(models.CategoryRain, r.severity, r.copy))
	}
	if r, ok := firstRule(windStrengthRules, s.CurrentWindSpeedKmh); ok {
		advisories = append(advisories, e.catalog.advisory(models.CategoryWind, r.severity, r.copy))
	}
	if a, ok := e.windDirectionAdvisory(s.CurrentWindSpeedKmh, s.CurrentWindDirectionDeg); ok {
		advisories = append(advisories, a)
	}

	return advisories
}

func (e *Engine) windDirectionAdvisory(speedKmh, directionDeg float64) (models.Advisory, bool) {
	if speedKmh < windDirectionGate {
		return models.Advisory{}, false
	}

	sector := Classify(directionDeg)
	for _, rule := range directionRules {
		if !sector.Has(rule.component) {
			continue
		}
		v := rule.normal
		if speedKmh >= strongWindKmh {
			v = rule.strong
		}
		return e.catalog.advisory(models.CategoryWind, v.severity, v.copy), true
	}
	return models.Advisory{}, false
}

// Evaluate scores and generates advisories for one snapshot.
func (e *Engine) Evaluate(s models.WeatherSnapshot) Evaluation {
	return Evaluation{
		Risk:       e.Score(s.TodayMaxTempC, s.TodayPrecipitationMm, s.CurrentWindSpeedKmh),
		Advisories: e.Generate(s),
	}
}

// WindName returns the localized name of the wind blowing from directionDeg.
func (e *Engine) WindName(directionDeg float64) string {
	return e.catalog.SectorName(Classify(directionDeg))
}
