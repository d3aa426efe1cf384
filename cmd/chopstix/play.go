package main

import (
	"context"
	"fmt"
	rand "math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/lox/chopstix/internal/bot"
	"github.com/lox/chopstix/internal/config"
	"github.com/lox/chopstix/internal/console"
	"github.com/lox/chopstix/internal/display"
	"github.com/lox/chopstix/internal/game"
	"github.com/lox/chopstix/internal/randutil"
	"github.com/lox/chopstix/internal/tui"
)

type PlayCmd struct {
	FavorSplit  *int   `help:"Percent chance of splitting when a split is optional" env:"CHOPSTIX_FAVOR_SPLIT"`
	FavorRandom *int   `help:"Percent chance of a random move instead of the move table" env:"CHOPSTIX_FAVOR_RANDOM"`
	First       string `help:"Who opens each game: human, computer or random" env:"CHOPSTIX_FIRST"`
	Seed        int64  `default:"0" help:"RNG seed (0 for random)" env:"CHOPSTIX_SEED"`
	Plain       bool   `help:"Line based console instead of the full screen interface" env:"CHOPSTIX_PLAIN"`
	NoColor     bool   `help:"Disable colour" env:"CHOPSTIX_NO_COLOR"`
	Intro       bool   `help:"Explain the rules before the first game"`
	LogFile     string `help:"Debug log file (default from config)" type:"path" env:"CHOPSTIX_LOG_FILE"`
}

// apply layers the command line over the config file.
func (p *PlayCmd) apply(cfg *config.Config) {
	if p.FavorSplit != nil {
		cfg.Strategy.FavorSplit = *p.FavorSplit
	}
	if p.FavorRandom != nil {
		cfg.Strategy.FavorRandom = *p.FavorRandom
	}
	if p.First != "" {
		cfg.Play.First = p.First
	}
	if p.NoColor {
		cfg.Play.Color = false
	}
	if p.LogFile != "" {
		cfg.Log.File = p.LogFile
	}
}

func (p *PlayCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	p.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	display.SetColor(cfg.Play.Color)

	logFile, err := openLogFile(cfg.Log.File)
	if err != nil {
		return err
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}()
	logger, err := newLogger(logFile, cfg.Log.Level, "chopstix")
	if err != nil {
		return err
	}

	rng := randutil.New(p.Seed)
	mm, err := bot.New(bot.Options{
		FavorSplit:  cfg.Strategy.FavorSplit,
		FavorRandom: cfg.Strategy.FavorRandom,
	}, rng, logger)
	if err != nil {
		return err
	}
	first := firstPicker(cfg.Play.First, rng)

	mode := "tui"
	if p.Plain {
		mode = "console"
	}
	logger.Info("Starting session",
		"mode", mode,
		"favor_split", cfg.Strategy.FavorSplit,
		"favor_random", cfg.Strategy.FavorRandom,
		"first", cfg.Play.First,
		"short_pause_ms", millis(cfg.Play.ShortPause),
		"long_pause_ms", millis(cfg.Play.LongPause))

	if p.Plain {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		c := console.New(mm, console.Options{
			First:      first,
			ShortPause: cfg.Play.ShortPause,
			LongPause:  cfg.Play.LongPause,
			Intro:      p.Intro,
		}, os.Stdin, os.Stdout, logger)
		if err := c.Run(ctx); err != nil && ctx.Err() == nil {
			return err
		}
		return nil
	}

	model := tui.New(mm, tui.Options{
		First: first,
		Pause: cfg.Play.LongPause,
		Intro: p.Intro,
	}, logger)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	score := model.Match().Score()
	fmt.Println(display.Score(score.TeamA(), score.TeamB(), score.Games()))
	return nil
}

// firstPicker returns who opens each game for a config.First* mode.
func firstPicker(mode string, rng *rand.Rand) func() game.Player {
	switch mode {
	case config.FirstComputer:
		return func() game.Player { return game.Computer }
	case config.FirstRandom:
		return func() game.Player {
			if randutil.Coin(rng) {
				return game.Computer
			}
			return game.Human
		}
	default:
		return func() game.Player { return game.Human }
	}
}
