package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/ngmaloney/weather-insights/internal/models"
)

// GetCurrentWeather retrieves current conditions for city
func (c *Client) GetCurrentWeather(ctx context.Context, city string) (*models.WeatherSnapshot, error) {
	body, err := c.get(ctx, "/weather", city)
	if err != nil {
		return nil, err
	}

	var cur currentResponse
	if err := json.Unmarshal(body, &cur); err != nil {
		return nil, &FetchError{Kind: KindUnavailable, Err: fmt.Errorf("decode current weather: %w", err)}
	}

	return cur.snapshot()
}

// snapshot maps the provider response into the display model
func (r currentResponse) snapshot() (*models.WeatherSnapshot, error) {
	if len(r.Weather) == 0 {
		return nil, &FetchError{Kind: KindUnavailable, Err: fmt.Errorf("response has no weather conditions")}
	}

	return &models.WeatherSnapshot{
		Location:      r.Name,
		Country:       r.Sys.Country,
		Temperature:   roundHalfUp(r.Main.Temp),
		FeelsLike:     roundHalfUp(r.Main.FeelsLike),
		TempMin:       roundHalfUp(r.Main.TempMin),
		TempMax:       roundHalfUp(r.Main.TempMax),
		Humidity:      r.Main.Humidity,
		Pressure:      r.Main.Pressure,
		WindSpeed:     roundTenth(r.Wind.Speed),
		WindDeg:       r.Wind.Deg,
		Description:   r.Weather[0].Description,
		Icon:          r.Weather[0].Icon,
		SunriseMillis: r.Sys.Sunrise * 1000,
		SunsetMillis:  r.Sys.Sunset * 1000,
	}, nil
}

// roundHalfUp rounds to the nearest integer with halves going up (-2.5 -> -2)
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// roundTenth rounds to one decimal place with halves going up
func roundTenth(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}

// Internal types for OpenWeatherMap API responses

type conditionJSON struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type currentResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		TempMin   float64 `json:"temp_min"`
		TempMax   float64 `json:"temp_max"`
		Pressure  int     `json:"pressure"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []conditionJSON `json:"weather"`
	Wind    struct {
		Speed float64 `json:"speed"`
		Deg   int     `json:"deg"`
	} `json:"wind"`
	Sys struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
}
