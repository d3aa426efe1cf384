package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 20, cfg.Strategy.FavorSplit)
	assert.Equal(t, 5, cfg.Strategy.FavorRandom)
	assert.Equal(t, FirstHuman, cfg.Play.First)
	assert.Equal(t, 800*time.Millisecond, cfg.Play.ShortPause)
	assert.Equal(t, 1300*time.Millisecond, cfg.Play.LongPause)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFull(t *testing.T) {
	path := writeConfig(t, `
strategy {
  favor_split  = 0
  favor_random = 50
}

play {
  first          = "computer"
  short_pause_ms = 0
  long_pause_ms  = 250
  color          = false
}

log {
  level = "debug"
  file  = "/tmp/chopstix-test.log"
}
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 0, cfg.Strategy.FavorSplit, "explicit zero overrides the default")
	assert.Equal(t, 50, cfg.Strategy.FavorRandom)
	assert.Equal(t, FirstComputer, cfg.Play.First)
	assert.Equal(t, time.Duration(0), cfg.Play.ShortPause)
	assert.Equal(t, 250*time.Millisecond, cfg.Play.LongPause)
	assert.False(t, cfg.Play.Color)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/chopstix-test.log", cfg.Log.File)
}

func TestLoadPartial(t *testing.T) {
	path := writeConfig(t, `
strategy {
  favor_random = 10
}
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	want := Default()
	want.Strategy.FavorRandom = 10
	assert.Equal(t, want, cfg)
}

func TestLoadErrors(t *testing.T) {
	t.Run("syntax", func(t *testing.T) {
		_, err := Load(writeConfig(t, `strategy {`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse")
	})

	t.Run("unknown attribute", func(t *testing.T) {
		_, err := Load(writeConfig(t, `strategy { favour = 1 }`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode")
	})

	t.Run("wrong type", func(t *testing.T) {
		_, err := Load(writeConfig(t, `play { color = "yes please" }`))
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		msg    string
	}{
		{"split too high", func(c *Config) { c.Strategy.FavorSplit = 101 }, "favor_split"},
		{"split negative", func(c *Config) { c.Strategy.FavorSplit = -1 }, "favor_split"},
		{"random too high", func(c *Config) { c.Strategy.FavorRandom = 1000 }, "favor_random"},
		{"first", func(c *Config) { c.Play.First = "dealer" }, "first player"},
		{"pause", func(c *Config) { c.Play.LongPause = -time.Second }, "pauses"},
		{"log level", func(c *Config) { c.Log.Level = "verbose" }, "log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestDefaultPath(t *testing.T) {
	// Only checks that a found path points at our file name.
	if path := DefaultPath(); path != "" {
		assert.Equal(t, "config.hcl", filepath.Base(path))
	}
}
