package models

import "time"

// WeatherSnapshot represents the current conditions for a city as shown on screen.
// A snapshot is never modified after it is built; a new fetch replaces it wholesale.
type WeatherSnapshot struct {
	Location string // canonical city name as returned by the provider
	Country  string // ISO 3166 country code, e.g. "GB"

	Temperature int // Celsius
	FeelsLike   int // Celsius
	TempMin     int // Celsius
	TempMax     int // Celsius

	Humidity int // percent, 0-100
	Pressure int // hPa

	WindSpeed float64 // m/s, one decimal place
	WindDeg   int     // degrees, 0-359

	Description string // e.g. "light rain"
	Icon        string // provider icon id, e.g. "10d"

	SunriseMillis int64 // Unix epoch milliseconds
	SunsetMillis  int64 // Unix epoch milliseconds
}

// Sunrise returns the sunrise instant.
func (w WeatherSnapshot) Sunrise() time.Time {
	return time.UnixMilli(w.SunriseMillis)
}

// Sunset returns the sunset instant.
func (w WeatherSnapshot) Sunset() time.Time {
	return time.UnixMilli(w.SunsetMillis)
}

// IsNightAt reports whether now falls outside the sunrise-sunset window.
// Sunrise and sunset belong to the day the snapshot was fetched, so the
// answer goes stale after midnight until the next fetch.
func (w WeatherSnapshot) IsNightAt(now time.Time) bool {
	ms := now.UnixMilli()
	return ms < w.SunriseMillis || ms > w.SunsetMillis
}

// HighPressure reports whether pressure is above standard sea-level pressure.
func (w WeatherSnapshot) HighPressure() bool {
	return w.Pressure > 1013
}
