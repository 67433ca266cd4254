package openweather

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/ngmaloney/weather-insights/internal/models"
	"resty.dev/v3"
)

const (
	// DefaultBaseURL is the OpenWeatherMap 2.5 API root
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5"
	// DefaultTimeout bounds a single request at the transport level
	DefaultTimeout = 30 * time.Second

	userAgent = "WeatherInsights/1.0 (github.com/ngmaloney/weather-insights)"
)

// CurrentWeatherClient defines the interface for fetching current conditions
type CurrentWeatherClient interface {
	// GetCurrentWeather retrieves current conditions for a city name.
	// It makes exactly one request and never retries.
	GetCurrentWeather(ctx context.Context, city string) (*models.WeatherSnapshot, error)
}

// ForecastClient defines the interface for fetching the daily outlook
type ForecastClient interface {
	// GetForecast retrieves the 5 day forecast for a city name
	GetForecast(ctx context.Context, city string) (*models.Forecast, error)
}

// Options configures a Client. Zero values fall back to defaults.
type Options struct {
	BaseURL string
	Timeout time.Duration
	Logger  *slog.Logger
}

// Client implements CurrentWeatherClient and ForecastClient against OpenWeatherMap
type Client struct {
	baseURL string
	apiKey  string
	timeout time.Duration
	http    *resty.Client
	logger  *slog.Logger
}

// NewClient creates a new OpenWeatherMap client
func NewClient(apiKey string, opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &Client{
		baseURL: opts.BaseURL,
		apiKey:  apiKey,
		timeout: opts.Timeout,
		http: resty.New().
			SetTimeout(opts.Timeout).
			SetRetryCount(0).
			SetHeader("Accept", "application/json").
			SetHeader("User-Agent", userAgent),
		logger: opts.Logger.With("component", "openweather"),
	}
}

// Close releases idle connections held by the underlying transport
func (c *Client) Close() error {
	return c.http.Close()
}

// get performs one GET against endpoint for city and classifies the outcome.
// A nil error means a 2xx response whose body is returned as-is.
func (c *Client) get(ctx context.Context, endpoint, city string) ([]byte, error) {
	start := time.Now()

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":     city,
			"units": "metric",
			"appid": c.apiKey,
		}).
		Get(c.baseURL + endpoint)
	if err != nil {
		err = c.redact(err, endpoint)
		c.logger.Debug("request failed",
			"endpoint", endpoint,
			"city", city,
			"duration", time.Since(start),
			"err", err,
		)
		return nil, &FetchError{Kind: KindNetwork, Err: err}
	}

	c.logger.Debug("request completed",
		"endpoint", endpoint,
		"city", city,
		"status", resp.StatusCode(),
		"duration", time.Since(start),
	)

	if resp.IsError() || resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, errorForStatus(resp.StatusCode())
	}

	return resp.Bytes(), nil
}

// redact removes the API key from transport errors. *url.Error messages
// carry the full request URL, query string included.
func (c *Client) redact(err error, endpoint string) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		ue.URL = c.baseURL + endpoint
	}
	if c.apiKey != "" && strings.Contains(err.Error(), c.apiKey) {
		return &redactedError{msg: strings.ReplaceAll(err.Error(), c.apiKey, "REDACTED"), err: err}
	}
	return err
}

// redactedError replaces the message of an error whose text leaked the key.
// Unwrap keeps errors.Is working for timeouts and cancellation.
type redactedError struct {
	msg string
	err error
}

func (e *redactedError) Error() string { return e.msg }

func (e *redactedError) Unwrap() error { return e.err }
