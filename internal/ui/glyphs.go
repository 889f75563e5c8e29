package ui

import "hatake/internal/models"

var glyphs = map[models.Icon]string{
	models.IconSun:     "☀️",
	models.IconSnow:    "❄️",
	models.IconRain:    "🌧",
	models.IconShower:  "🌦",
	models.IconWind:    "💨",
	models.IconTornado: "🌪",
	models.IconIce:     "🧊",
	models.IconFog:     "🌫",
	models.IconBreeze:  "🌬",
}

// Glyph returns the emoji for an icon token, or "•" for unknown tokens.
func Glyph(icon models.Icon) string {
	if g, ok := glyphs[icon]; ok {
		return g
	}
	return "•"
}
