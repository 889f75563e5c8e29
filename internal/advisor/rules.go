package advisor

import "hatake/internal/models"

type comparison int

const (
	atLeast comparison = iota
	atMost
)

// threshold is a single inclusive bound on a reading.
type threshold struct {
	op    comparison
	limit float64
}

func (t threshold) matches(v float64) bool {
	if t.op == atMost {
		return v <= t.limit
	}
	return v >= t.limit
}

func gte(limit float64) threshold { return threshold{op: atLeast, limit: limit} }
func lte(limit float64) threshold { return threshold{op: atMost, limit: limit} }

// Risk point buckets. Each list is checked in order and stops at the first match.
type pointBucket struct {
	when   threshold
	points int
}

var (
	temperaturePoints = []pointBucket{
		{gte(30), 40},
		{gte(25), 25},
		{lte(5), 30},
		{lte(10), 20},
	}
	precipitationPoints = []pointBucket{
		{gte(20), 30},
		{gte(5), 15},
	}
	windPoints = []pointBucket{
		{gte(20), 30},
		{gte(10), 15},
	}
)

const (
	maxScore          = 100
	highRiskScore     = 70
	mediumRiskScore   = 40
	windDirectionGate = 8.0
	strongWindKmh     = 20.0
)

func points(buckets []pointBucket, v float64) int {
	for _, b := range buckets {
		if b.when.matches(v) {
			return b.points
		}
	}
	return 0
}

// copyKey identifies an advisory's icon, title and message in a catalog.
type copyKey string

const (
	copyHighHeat     copyKey = "temperature.high_heat"
	copyMildHeat     copyKey = "temperature.mild_heat"
	copyLowTemp      copyKey = "temperature.low"
	copyHeavyRain    copyKey = "rain.heavy"
	copyShower       copyKey = "rain.shower"
	copyStrongWind   copyKey = "wind.strong"
	copyModerateWind copyKey = "wind.moderate"
	copySouthStrong  copyKey = "wind.south_strong"
	copySouthHumid   copyKey = "wind.south"
	copyNorthStrong  copyKey = "wind.north_strong"
	copyNorthCooling copyKey = "wind.north"
	copyWestStrong   copyKey = "wind.west_strong"
	copyWestDrying   copyKey = "wind.west"
	copyEastMinor    copyKey = "wind.east"
)

var copyIcons = map[copyKey]models.Icon{
	copyHighHeat:     models.IconSun,
	copyMildHeat:     models.IconSun,
	copyLowTemp:      models.IconSnow,
	copyHeavyRain:    models.IconRain,
	copyShower:       models.IconShower,
	copyStrongWind:   models.IconWind,
	copyModerateWind: models.IconWind,
	copySouthStrong:  models.IconTornado,
	copySouthHumid:   models.IconSun,
	copyNorthStrong:  models.IconSnow,
	copyNorthCooling: models.IconIce,
	copyWestStrong:   models.IconFog,
	copyWestDrying:   models.IconFog,
	copyEastMinor:    models.IconBreeze,
}

// advisoryRule fires when its threshold matches; a cascade stops at the first hit.
type advisoryRule struct {
	when     threshold
	severity models.Severity
	copy     copyKey
}

var (
	temperatureRules = []advisoryRule{
		{gte(28), models.SeverityHigh, copyHighHeat},
		{gte(24), models.SeverityMedium, copyMildHeat},
		{lte(10), models.SeverityHigh, copyLowTemp},
	}
	rainRules = []advisoryRule{
		{gte(10), models.SeverityHigh, copyHeavyRain},
		{gte(1), models.SeverityMedium, copyShower},
	}
	windStrengthRules = []advisoryRule{
		{gte(strongWindKmh), models.SeverityHigh, copyStrongWind},
		{gte(windDirectionGate), models.SeverityMedium, copyModerateWind},
	}
)

func firstRule(rules []advisoryRule, v float64) (advisoryRule, bool) {
	for _, r := range rules {
		if r.when.matches(v) {
			return r, true
		}
	}
	return advisoryRule{}, false
}

type directionVariant struct {
	severity models.Severity
	copy     copyKey
}

// directionRules are tried in precedence order: a compound sector such as
// Southeast resolves to the first component listed here.
var directionRules = []struct {
	component      Component
	strong, normal directionVariant
}{
	{
		component: ComponentSouth,
		strong:    directionVariant{models.SeverityHigh, copySouthStrong},
		normal:    directionVariant{models.SeverityMedium, copySouthHumid},
	},
	{
		component: ComponentNorth,
		strong:    directionVariant{models.SeverityHigh, copyNorthStrong},
		normal:    directionVariant{models.SeverityMedium, copyNorthCooling},
	},
	{
		component: ComponentWest,
		strong:    directionVariant{models.SeverityMedium, copyWestStrong},
		normal:    directionVariant{models.SeverityLow, copyWestDrying},
	},
	{
		component: ComponentEast,
		strong:    directionVariant{models.SeverityLow, copyEastMinor},
		normal:    directionVariant{models.SeverityLow, copyEastMinor},
	},
}
