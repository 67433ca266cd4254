package logging

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"

	"github.com/ngmaloney/weather-insights/internal/config"
)

// New builds the application logger. APP_ENV=dev gets tint's readable
// output, prod gets JSON whatever the build version. w is usually a log file because the
// terminal belongs to the UI.
func New(w io.Writer, cfg config.Config, version string) *slog.Logger {
	if w == nil {
		w = io.Discard
	}

	if cfg.AppEnv == "dev" {
		h := tint.NewHandler(w, &tint.Options{
			Level:      cfg.Level,
			AddSource:  true,
			TimeFormat: time.Kitchen,
			NoColor:    true,
		})
		return slog.New(h).With("app", config.AppName)
	}

	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: cfg.Level,
	})
	return slog.New(h).With(
		"app", config.AppName,
		"version", version,
		"env", cfg.AppEnv,
	)
}
