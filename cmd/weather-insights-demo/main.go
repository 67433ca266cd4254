package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/weather-insights/internal/models"
	"github.com/ngmaloney/weather-insights/internal/openweather"
	"github.com/ngmaloney/weather-insights/internal/ui"
)

// This demo shows the UI with mock data and no network access
func main() {
	p := tea.NewProgram(ui.NewModel(demoClient{}, "London", nil), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running demo: %v\n", err)
		os.Exit(1)
	}
}

// demoClient serves a few canned cities after a short fake delay.
// "nokey" exercises the API key error path.
type demoClient struct{}

var demoCities = map[string]models.WeatherSnapshot{
	"london": {
		Location: "London", Country: "GB",
		Temperature: 16, FeelsLike: 15, TempMin: 14, TempMax: 17,
		Humidity: 82, Pressure: 1009, WindSpeed: 3.4, WindDeg: 240,
		Description: "light rain", Icon: "10d",
	},
	"tokyo": {
		Location: "Tokyo", Country: "JP",
		Temperature: 24, FeelsLike: 25, TempMin: 22, TempMax: 26,
		Humidity: 64, Pressure: 1016, WindSpeed: 4.1, WindDeg: 135,
		Description: "few clouds", Icon: "02d",
	},
	"reykjavik": {
		Location: "Reykjavik", Country: "IS",
		Temperature: 3, FeelsLike: -2, TempMin: 1, TempMax: 4,
		Humidity: 91, Pressure: 998, WindSpeed: 11.7, WindDeg: 10,
		Description: "light snow", Icon: "13n",
	},
}

func (demoClient) GetCurrentWeather(ctx context.Context, city string) (*models.WeatherSnapshot, error) {
	if err := delay(ctx); err != nil {
		return nil, &openweather.FetchError{Kind: openweather.KindNetwork, Err: err}
	}

	key := strings.ToLower(city)
	if key == "nokey" {
		return nil, &openweather.FetchError{Kind: openweather.KindUnauthorized, StatusCode: 401}
	}
	s, ok := demoCities[key]
	if !ok {
		return nil, &openweather.FetchError{Kind: openweather.KindNotFound, StatusCode: 404}
	}

	// Sun times for today so the night check follows the local clock
	now := time.Now()
	s.SunriseMillis = time.Date(now.Year(), now.Month(), now.Day(), 6, 30, 0, 0, time.Local).UnixMilli()
	s.SunsetMillis = time.Date(now.Year(), now.Month(), now.Day(), 19, 45, 0, 0, time.Local).UnixMilli()
	return &s, nil
}

func (demoClient) GetForecast(ctx context.Context, city string) (*models.Forecast, error) {
	if err := delay(ctx); err != nil {
		return nil, &openweather.FetchError{Kind: openweather.KindNetwork, Err: err}
	}

	name, _, _ := strings.Cut(city, ",")
	s, ok := demoCities[strings.ToLower(name)]
	if !ok {
		return nil, &openweather.FetchError{Kind: openweather.KindNotFound, StatusCode: 404}
	}

	today := time.Now().Truncate(24 * time.Hour)
	f := &models.Forecast{City: s.Location, Country: s.Country}
	for i := 0; i < 5; i++ {
		f.Days = append(f.Days, models.DailyForecast{
			Date:        today.AddDate(0, 0, i),
			TempMin:     s.TempMin - i%2,
			TempMax:     s.TempMax + i%3,
			Description: s.Description,
			Icon:        s.Icon,
		})
	}
	return f, nil
}

func delay(ctx context.Context) error {
	select {
	case <-time.After(300*time.Millisecond + time.Duration(rand.Intn(700))*time.Millisecond):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
