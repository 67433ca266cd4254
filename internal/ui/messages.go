package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/weather-insights/internal/models"
	"github.com/ngmaloney/weather-insights/internal/openweather"
)

// Message types for async operations

// searchRequestedMsg asks the model to run a search with the current query
type searchRequestedMsg struct{}

// weatherFetchedMsg is sent when a current weather request completes
type weatherFetchedMsg struct {
	city     string // query as sent to the provider
	snapshot *models.WeatherSnapshot
	err      error
}

// forecastFetchedMsg is sent when a forecast request completes
type forecastFetchedMsg struct {
	forecast *models.Forecast
	err      error
}

// requestSearch emits a searchRequestedMsg so that searches started from
// Init go through the same path as the Enter key
func requestSearch() tea.Msg {
	return searchRequestedMsg{}
}

// fetchWeather fetches current conditions in the background.
// There is no deadline here; the client's transport timeout applies.
func fetchWeather(client openweather.CurrentWeatherClient, city string) tea.Cmd {
	return func() tea.Msg {
		snapshot, err := client.GetCurrentWeather(context.Background(), city)
		return weatherFetchedMsg{city: city, snapshot: snapshot, err: err}
	}
}

// fetchForecast fetches the daily outlook in the background
func fetchForecast(client openweather.ForecastClient, city string) tea.Cmd {
	return func() tea.Msg {
		forecast, err := client.GetForecast(context.Background(), city)
		return forecastFetchedMsg{forecast: forecast, err: err}
	}
}

// Decorative timers

const (
	rotateInterval = 10 * time.Second
	pulseInterval  = 5 * time.Second
	pulseDuration  = 500 * time.Millisecond
)

type rotateTickMsg time.Time

type pulseTickMsg time.Time

type pulseResetMsg time.Time

func rotateTick() tea.Cmd {
	return tea.Tick(rotateInterval, func(t time.Time) tea.Msg {
		return rotateTickMsg(t)
	})
}

func pulseTick() tea.Cmd {
	return tea.Tick(pulseInterval, func(t time.Time) tea.Msg {
		return pulseTickMsg(t)
	})
}

func pulseReset() tea.Cmd {
	return tea.Tick(pulseDuration, func(t time.Time) tea.Msg {
		return pulseResetMsg(t)
	})
}
