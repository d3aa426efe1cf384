package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/chopstix/internal/config"
)

// loadConfig reads the file named by --config, or the XDG default.
func (g *Globals) loadConfig() (*config.Config, error) {
	path := g.Config
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if g.Debug {
		cfg.Log.Level = "debug"
	}
	return cfg, nil
}

// newLogger builds the application logger at the configured level.
func newLogger(w io.Writer, level string, prefix string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           lvl,
		Prefix:          prefix,
	}), nil
}

// openLogFile truncates and opens the debug log used during interactive play.
func openLogFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}
	return f, nil
}

func millis(d time.Duration) int {
	return int(d / time.Millisecond)
}
