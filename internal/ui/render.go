package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hatake/internal/advisor"
	"hatake/internal/models"
)

// Render lays out the dashboard sections top to bottom. A width of zero
// leaves the boxes unsized.
func Render(d *models.Dashboard, c *advisor.Catalog, width int) string {
	if c == nil {
		c = advisor.NewEngine(nil).Catalog()
	}
	l := labelsFor(c.Locale)

	box := sectionBoxStyle
	if width > 4 {
		box = box.Width(width - 4)
	}

	sections := []string{
		box.Render(renderCurrent(d, l)),
		box.Render(renderRisk(d, l)),
		box.Render(renderWeek(d, l)),
		box.Render(renderAdvisories(d, c, l)),
	}
	if d.Notice != "" {
		sections = append([]string{noticeStyle.Render("⚠ " + d.Notice)}, sections...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderCurrent(d *models.Dashboard, l labels) string {
	var b strings.Builder
	s := d.Snapshot

	header := fmt.Sprintf(l.current, d.Location.Name)
	if src, ok := l.sources[d.Source]; ok {
		header += "  " + mutedStyle.Render("["+src+"]")
	}
	b.WriteString(boxHeaderStyle.Render(header) + "\n")
	if d.ObservedAt != "" {
		b.WriteString(mutedStyle.Render(fmt.Sprintf(l.observedAt, d.ObservedAt)) + "\n")
	}

	rows := [][2]string{
		{l.currentTemp, fmt.Sprintf("%.1f℃", s.CurrentTemperatureC)},
		{l.todayRange, fmt.Sprintf("%.1f℃ / %.1f℃", s.TodayMaxTempC, s.TodayMinTempC)},
		{l.precipitation, fmt.Sprintf("%.1f mm", s.TodayPrecipitationMm)},
		{l.wind, fmt.Sprintf("%.1f km/h  %s", s.CurrentWindSpeedKmh,
			fmt.Sprintf(l.windFrom, d.WindDirection, s.CurrentWindDirectionDeg))},
	}
	for _, r := range rows {
		b.WriteString(labelStyle.Render(r[0]) + "  " + valueStyle.Render(r[1]) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderRisk(d *models.Dashboard, l labels) string {
	var b strings.Builder
	style := levelStyle(string(d.Risk.Level))

	b.WriteString(boxHeaderStyle.Render(l.risk) + "\n")
	b.WriteString(mutedStyle.Render(l.riskHint) + "\n\n")
	b.WriteString(scoreStyle.Inherit(style).Render(fmt.Sprintf("%3d", d.Risk.Score)) + " / 100  " +
		style.Render(d.Risk.Label) + "\n\n")
	b.WriteString(mutedStyle.Render(l.riskNote))
	return b.String()
}

func renderWeek(d *models.Dashboard, l labels) string {
	var b strings.Builder
	b.WriteString(boxHeaderStyle.Render(l.week) + "\n")
	b.WriteString(mutedStyle.Render(l.weekHint) + "\n\n")

	for _, day := range d.Week {
		label := fmt.Sprintf("%-10s", l.dayLabel(day.Date))
		if day.Today {
			label += " " + todayStyle.Render(l.today)
		}
		line := fmt.Sprintf("%s  %5.1f℃ / %5.1f℃  %5.1fmm", label, day.MaxTempC, day.MinTempC, day.PrecipitationMm)

		tags := make([]string, 0, len(day.Tags))
		for _, t := range day.Tags {
			tags = append(tags, Glyph(t.Icon)+" "+t.Label)
		}
		if len(tags) > 0 {
			line += "  " + strings.Join(tags, "  ")
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderAdvisories(d *models.Dashboard, c *advisor.Catalog, l labels) string {
	var b strings.Builder
	b.WriteString(boxHeaderStyle.Render(l.advisories) + "\n")
	b.WriteString(mutedStyle.Render(l.advisoryHint) + "\n\n")

	if len(d.Advisories) == 0 {
		b.WriteString(valueStyle.Render(c.NoAdvisories))
		return b.String()
	}

	for i, a := range d.Advisories {
		if i > 0 {
			b.WriteString("\n")
		}
		sev := levelStyle(string(a.Severity))
		b.WriteString(Glyph(a.Icon) + " " + sev.Render(a.Title) + "  " + mutedStyle.Render(c.SeverityLabel(a.Severity)) + "\n")
		b.WriteString("   " + a.Message + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
