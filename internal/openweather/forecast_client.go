package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ngmaloney/weather-insights/internal/models"
)

// maxForecastDays caps the outlook; the provider returns 5 days of 3 hour steps
const maxForecastDays = 5

// GetForecast retrieves the 5 day forecast for city, grouped per local day
func (c *Client) GetForecast(ctx context.Context, city string) (*models.Forecast, error) {
	body, err := c.get(ctx, "/forecast", city)
	if err != nil {
		return nil, err
	}

	var fr forecastResponse
	if err := json.Unmarshal(body, &fr); err != nil {
		return nil, &FetchError{Kind: KindUnavailable, Err: fmt.Errorf("decode forecast: %w", err)}
	}

	return fr.forecast(), nil
}

// forecast groups 3 hour entries into days in the city's own UTC offset.
// Each day keeps the lowest minimum, the highest maximum and the
// conditions of the entry nearest to midday.
func (r forecastResponse) forecast() *models.Forecast {
	loc := time.FixedZone(r.City.Name, r.City.Timezone)

	out := &models.Forecast{
		City:    r.City.Name,
		Country: r.City.Country,
		Days:    make([]models.DailyForecast, 0, maxForecastDays),
	}

	var (
		minT, maxT float64
		bestDist   = -1
	)

	for _, entry := range r.List {
		t := time.Unix(entry.Dt, 0).In(loc)
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)

		if n := len(out.Days); n == 0 || !out.Days[n-1].Date.Equal(day) {
			if n == maxForecastDays {
				break
			}
			out.Days = append(out.Days, models.DailyForecast{Date: day})
			minT, maxT = entry.Main.TempMin, entry.Main.TempMax
			bestDist = -1
		}

		cur := &out.Days[len(out.Days)-1]
		if entry.Main.TempMin < minT {
			minT = entry.Main.TempMin
		}
		if entry.Main.TempMax > maxT {
			maxT = entry.Main.TempMax
		}
		cur.TempMin = roundHalfUp(minT)
		cur.TempMax = roundHalfUp(maxT)

		if len(entry.Weather) > 0 {
			dist := abs(t.Hour()*60 + t.Minute() - 12*60)
			if bestDist < 0 || dist < bestDist {
				bestDist = dist
				cur.Description = entry.Weather[0].Description
				cur.Icon = entry.Weather[0].Icon
			}
		}
	}

	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

type forecastResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			TempMin float64 `json:"temp_min"`
			TempMax float64 `json:"temp_max"`
		} `json:"main"`
		Weather []conditionJSON `json:"weather"`
	} `json:"list"`
	City struct {
		Name     string `json:"name"`
		Country  string `json:"country"`
		Timezone int    `json:"timezone"` // seconds east of UTC
	} `json:"city"`
}
