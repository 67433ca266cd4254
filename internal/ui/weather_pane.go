package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/ngmaloney/weather-insights/internal/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCase capitalises each word of a provider description. Casers are
// stateful, so one is built per call.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// renderWeather renders the current conditions card
func (m Model) renderWeather() string {
	s := m.snapshot

	var content strings.Builder

	// Headline: icon, temperature and range
	headline := lipgloss.JoinHorizontal(lipgloss.Center,
		conditionGlyph(s.Icon),
		"  ",
		tempStyle.Render(fmt.Sprintf("%d°C", s.Temperature)),
		"  ",
		mutedStyle.Render(fmt.Sprintf("↓%d° ↑%d°", s.TempMin, s.TempMax)),
	)
	content.WriteString(headline)
	content.WriteString("\n")
	content.WriteString(valueStyle.Render(titleCase(s.Description)))
	content.WriteString("\n")
	content.WriteString(locationStyle.Render(formatLocation(s.Location, s.Country)))
	content.WriteString("\n\n")

	content.WriteString(detailLine("Feels like", fmt.Sprintf("%d°C", s.FeelsLike)))
	content.WriteString(detailLine("Humidity",
		fmt.Sprintf("%s %d%%", m.humidity.ViewAs(float64(s.Humidity)/100), s.Humidity)))
	content.WriteString(detailLine("Wind", formatWind(s.WindSpeed, s.WindDeg)))
	content.WriteString(detailLine("Pressure", formatPressure(s)))
	content.WriteString("\n")

	sun := fmt.Sprintf("Sunrise %s   Sunset %s",
		s.Sunrise().Format("03:04 PM"),
		s.Sunset().Format("03:04 PM"))
	content.WriteString(sunStyle.Render(sun))

	if !m.lastUpdated.IsZero() {
		content.WriteString("\n")
		content.WriteString(mutedStyle.Render("Updated " + humanize.Time(m.lastUpdated)))
	}

	return cardStyle.Render(content.String())
}

func detailLine(label, value string) string {
	return labelStyle.Render(fmt.Sprintf("%-11s", label)) + valueStyle.Render(value) + "\n"
}

// formatLocation joins city and country code, dropping an empty country
func formatLocation(city, country string) string {
	if country == "" {
		return city
	}
	return city + ", " + country
}

// formatPressure shows hPa with a high/low marker relative to standard
// sea-level pressure
func formatPressure(s *models.WeatherSnapshot) string {
	trend := "↓ Low"
	if s.HighPressure() {
		trend = "↑ High"
	}
	return fmt.Sprintf("%d hPa %s", s.Pressure, trend)
}

var (
	compassPoints = []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
	// Arrows point where the wind is heading, opposite its origin
	compassArrows = []string{"↓", "↙", "←", "↖", "↑", "↗", "→", "↘"}
)

// compassIndex buckets degrees into one of eight 45° sectors centred on N
func compassIndex(deg int) int {
	deg = ((deg % 360) + 360) % 360
	return ((deg + 22) / 45) % 8
}

// formatWind formats wind speed and origin direction
func formatWind(speed float64, deg int) string {
	i := compassIndex(deg)
	return fmt.Sprintf("%.1f m/s %s %s", speed, compassArrows[i], compassPoints[i])
}

// conditionGlyph maps a provider icon id (e.g. "10d") to a terminal glyph
func conditionGlyph(icon string) string {
	if len(icon) < 2 {
		return "?"
	}
	night := strings.HasSuffix(icon, "n")

	switch icon[:2] {
	case "01":
		if night {
			return "☾"
		}
		return "☀"
	case "02":
		return "⛅"
	case "03", "04":
		return "☁"
	case "09":
		return "🌧"
	case "10":
		return "🌦"
	case "11":
		return "⛈"
	case "13":
		return "❄"
	case "50":
		return "🌫"
	default:
		return "?"
	}
}
