package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/weather-insights/internal/config"
	"github.com/ngmaloney/weather-insights/internal/logging"
	"github.com/ngmaloney/weather-insights/internal/openweather"
	"github.com/ngmaloney/weather-insights/internal/ui"
)

var version = "dev"

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the UI, so logs only go to a file
	var logOut io.Writer
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, config.AppName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}

	logger := logging.New(logOut, cfg, version)
	slog.SetDefault(logger)

	if cfg.APIKey == "" {
		logger.Warn("no API key configured; set OPENWEATHER_API_KEY or --api-key")
	}

	client := openweather.NewClient(cfg.APIKey, openweather.Options{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		Logger:  logger,
	})
	defer client.Close()

	logger.Info("starting", "city", cfg.City, "base_url", cfg.BaseURL, "timeout", cfg.Timeout)

	p := tea.NewProgram(ui.NewModel(client, cfg.City, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "err", err)
		fmt.Printf("Error running application: %v\n", err)
		os.Exit(1)
	}
}
