package ui

import (
	"fmt"
	"strings"
)

// renderForecast renders the daily outlook. It returns "" when there is no
// forecast for the city currently shown, so a late forecast from an older
// search is never paired with a newer snapshot.
func (m Model) renderForecast() string {
	if m.forecast == nil || m.snapshot == nil || len(m.forecast.Days) == 0 {
		if m.loadingForecast {
			return mutedStyle.Render("Loading forecast...")
		}
		return ""
	}
	if !strings.EqualFold(m.forecast.City, m.snapshot.Location) {
		return ""
	}

	var content strings.Builder
	content.WriteString(boxHeaderStyle.Render(fmt.Sprintf("%d-Day Forecast", len(m.forecast.Days))))
	content.WriteString("\n")

	for i, day := range m.forecast.Days {
		if i > 0 {
			content.WriteString("\n")
		}
		row := fmt.Sprintf("%-10s %s  %3d° / %3d°  %s",
			day.Date.Format("Mon Jan 2"),
			conditionGlyph(day.Icon),
			day.TempMin,
			day.TempMax,
			titleCase(day.Description),
		)
		content.WriteString(valueStyle.Render(row))
	}

	return cardStyle.Render(content.String())
}
