package advisor

import "math"

// CompassSector is one of the 8 coarse wind-direction buckets.
type CompassSector int

const (
	North CompassSector = iota
	Northeast
	East
	Southeast
	South
	Southwest
	West
	Northwest
)

// Component is a cardinal direction contained in a sector.
type Component uint8

const (
	ComponentNorth Component = 1 << iota
	ComponentEast
	ComponentSouth
	ComponentWest
)

// Half-open [lo, hi) intervals in degrees. North wraps around 0 and is the fallthrough.
var sectorBounds = []struct {
	lo, hi float64
	sector CompassSector
}{
	{22.5, 67.5, Northeast},
	{67.5, 112.5, East},
	{112.5, 157.5, Southeast},
	{157.5, 202.5, South},
	{202.5, 247.5, Southwest},
	{247.5, 292.5, West},
	{292.5, 337.5, Northwest},
}

var sectorComponents = map[CompassSector]Component{
	North:     ComponentNorth,
	Northeast: ComponentNorth | ComponentEast,
	East:      ComponentEast,
	Southeast: ComponentSouth | ComponentEast,
	South:     ComponentSouth,
	Southwest: ComponentSouth | ComponentWest,
	West:      ComponentWest,
	Northwest: ComponentNorth | ComponentWest,
}

// Classify maps a wind direction in degrees to its compass sector.
// Values outside [0, 360) are wrapped first.
func Classify(deg float64) CompassSector {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}

	for _, b := range sectorBounds {
		if d >= b.lo && d < b.hi {
			return b.sector
		}
	}
	return North
}

// Components returns the cardinal directions the sector is made of.
func (s CompassSector) Components() Component {
	return sectorComponents[s]
}

// Has reports whether the sector contains the given cardinal component.
func (s CompassSector) Has(c Component) bool {
	return s.Components()&c != 0
}

// String returns the sector abbreviation.
func (s CompassSector) String() string {
	switch s {
	case North:
		return "N"
	case Northeast:
		return "NE"
	case East:
		return "E"
	case Southeast:
		return "SE"
	case South:
		return "S"
	case Southwest:
		return "SW"
	case West:
		return "W"
	case Northwest:
		return "NW"
	default:
		return "?"
	}
}
