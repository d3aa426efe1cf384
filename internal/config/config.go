// Package config loads the ChopStix HCL configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// RelativePath is the config file location under the XDG config directories.
var RelativePath = filepath.Join("chopstix", "config.hcl")

// Who opens each game.
const (
	FirstHuman    = "human"
	FirstComputer = "computer"
	FirstRandom   = "random"
)

// Config is the complete configuration.
type Config struct {
	Strategy StrategySettings
	Play     PlaySettings
	Log      LogSettings
}

// StrategySettings tunes the computer opponent.
type StrategySettings struct {
	FavorSplit  int
	FavorRandom int
}

// PlaySettings controls interactive play.
type PlaySettings struct {
	First      string
	ShortPause time.Duration
	LongPause  time.Duration
	Color      bool
}

// LogSettings controls the debug log.
type LogSettings struct {
	Level string
	File  string
}

// file mirrors the HCL layout. Every attribute is optional; nil keeps the
// default.
type file struct {
	Strategy *strategyBlock `hcl:"strategy,block"`
	Play     *playBlock     `hcl:"play,block"`
	Log      *logBlock      `hcl:"log,block"`
}

type strategyBlock struct {
	FavorSplit  *int `hcl:"favor_split,optional"`
	FavorRandom *int `hcl:"favor_random,optional"`
}

type playBlock struct {
	First        *string `hcl:"first,optional"`
	ShortPauseMS *int    `hcl:"short_pause_ms,optional"`
	LongPauseMS  *int    `hcl:"long_pause_ms,optional"`
	Color        *bool   `hcl:"color,optional"`
}

type logBlock struct {
	Level *string `hcl:"level,optional"`
	File  *string `hcl:"file,optional"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Strategy: StrategySettings{
			FavorSplit:  20,
			FavorRandom: 5,
		},
		Play: PlaySettings{
			First:      FirstHuman,
			ShortPause: 800 * time.Millisecond,
			LongPause:  1300 * time.Millisecond,
			Color:      true,
		},
		Log: LogSettings{
			Level: "warn",
			File:  "chopstix.log",
		},
	}
}

// DefaultPath returns the config file found in the XDG config directories,
// or "" when there is none.
func DefaultPath() string {
	path, err := xdg.SearchConfigFile(RelativePath)
	if err != nil {
		return ""
	}
	return path
}

// Load reads filename over the defaults. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	cfg := Default()
	if filename == "" {
		return cfg, nil
	}
	if _, err := os.Stat(filename); errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}

	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw file
	diags = gohcl.DecodeBody(f.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	raw.apply(cfg)

	return cfg, nil
}

func (f *file) apply(cfg *Config) {
	if s := f.Strategy; s != nil {
		setInt(&cfg.Strategy.FavorSplit, s.FavorSplit)
		setInt(&cfg.Strategy.FavorRandom, s.FavorRandom)
	}
	if p := f.Play; p != nil {
		if p.First != nil {
			cfg.Play.First = *p.First
		}
		if p.ShortPauseMS != nil {
			cfg.Play.ShortPause = time.Duration(*p.ShortPauseMS) * time.Millisecond
		}
		if p.LongPauseMS != nil {
			cfg.Play.LongPause = time.Duration(*p.LongPauseMS) * time.Millisecond
		}
		if p.Color != nil {
			cfg.Play.Color = *p.Color
		}
	}
	if l := f.Log; l != nil {
		if l.Level != nil {
			cfg.Log.Level = *l.Level
		}
		if l.File != nil {
			cfg.Log.File = *l.File
		}
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Strategy.FavorSplit < 0 || c.Strategy.FavorSplit > 100 {
		return fmt.Errorf("favor_split must be between 0 and 100, got %d", c.Strategy.FavorSplit)
	}
	if c.Strategy.FavorRandom < 0 || c.Strategy.FavorRandom > 100 {
		return fmt.Errorf("favor_random must be between 0 and 100, got %d", c.Strategy.FavorRandom)
	}

	validFirst := map[string]bool{
		FirstHuman:    true,
		FirstComputer: true,
		FirstRandom:   true,
	}
	if !validFirst[c.Play.First] {
		return fmt.Errorf("invalid first player: %s", c.Play.First)
	}

	if c.Play.ShortPause < 0 || c.Play.LongPause < 0 {
		return fmt.Errorf("pauses cannot be negative")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.Log.Level] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	return nil
}
