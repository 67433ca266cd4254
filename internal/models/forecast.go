package models

import "time"

// DailyForecast summarizes one calendar day of forecast entries
type DailyForecast struct {
	Date        time.Time // midnight, provider local time
	TempMin     int       // Celsius
	TempMax     int       // Celsius
	Description string
	Icon        string
}

// Forecast contains the daily outlook for a city
type Forecast struct {
	City    string
	Country string
	Days    []DailyForecast
}
