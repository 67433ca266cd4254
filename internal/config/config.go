package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

// AppName is the binary name used in help output and log records
const AppName = "weather-insights"

// Config holds everything the app reads from flags, the environment and .env
type Config struct {
	City     string        `help:"City to show on startup." default:"London" env:"WEATHER_CITY"`
	APIKey   string        `name:"api-key" help:"OpenWeatherMap API key." env:"OPENWEATHER_API_KEY"`
	BaseURL  string        `name:"base-url" help:"OpenWeatherMap API root." default:"https://api.openweathermap.org/data/2.5" env:"OPENWEATHER_BASE_URL"`
	Timeout  time.Duration `help:"Transport timeout for a single provider request." default:"30s" env:"OPENWEATHER_TIMEOUT"`
	AppEnv   string        `name:"app-env" help:"Runtime environment (dev, prod)." default:"dev" env:"APP_ENV"`
	LogLevel string        `name:"log-level" help:"Log level (debug, info, warn, error)." default:"info" env:"LOG_LEVEL"`
	LogFile  string        `name:"log-file" help:"Write logs to this file. Logs are discarded when empty." env:"LOG_FILE"`

	// Level is LogLevel parsed; set by Load
	Level slog.Level `kong:"-"`
}

// Load reads an optional .env file from the working directory, then parses
// args (without the program name) with environment fallbacks.
func Load(args []string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}

	var cfg Config
	parser, err := kong.New(&cfg,
		kong.Name(AppName),
		kong.Description("Current weather for any city, in your terminal."),
		kong.UsageOnError(),
	)
	if err != nil {
		return Config{}, fmt.Errorf("building flag parser: %w", err)
	}

	if _, err := parser.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg.normalize()
}

func (c Config) normalize() (Config, error) {
	c.City = strings.TrimSpace(c.City)
	c.APIKey = strings.TrimSpace(c.APIKey)
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	c.LogFile = strings.TrimSpace(c.LogFile)

	c.AppEnv = strings.TrimSpace(c.AppEnv)
	switch c.AppEnv {
	case "dev", "prod":
	default:
		return Config{}, fmt.Errorf("invalid APP_ENV %q (allowed: dev, prod)", c.AppEnv)
	}

	level, err := parseLogLevel(c.LogLevel)
	if err != nil {
		return Config{}, err
	}
	c.Level = level

	if c.BaseURL == "" {
		return Config{}, fmt.Errorf("base URL must not be empty")
	}
	if c.Timeout <= 0 {
		return Config{}, fmt.Errorf("invalid timeout %v: must be positive", c.Timeout)
	}

	return c, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q (allowed: debug, info, warn, error)", s)
	}
}
