package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/briandowns/spinner"
	"github.com/lox/chopstix/internal/bot"
	"github.com/lox/chopstix/internal/simulator"
)

type SimulateCmd struct {
	Games    int   `short:"n" default:"10000" help:"Number of games to simulate"`
	Workers  int   `default:"0" help:"Parallel workers (0 for one per CPU)"`
	Seed     int64 `default:"0" help:"RNG seed (0 for random)"`
	MaxTurns int   `default:"200" help:"Turns before a game is called a draw"`

	ASplit   *int `name:"a-split" help:"Player A favor_split (default from config)"`
	ARandom  *int `name:"a-random" help:"Player A favor_random (default from config)"`
	ARandBot bool `name:"a-randbot" help:"Player A plays random moves"`
	BSplit   *int `name:"b-split" help:"Player B favor_split (default from config)"`
	BRandom  *int `name:"b-random" help:"Player B favor_random (default from config)"`
	BRandBot bool `name:"b-randbot" help:"Player B plays random moves"`

	Quiet bool `short:"q" help:"Hide the progress spinner"`
}

func player(base bot.Options, split, random *int, randBot bool) simulator.Player {
	opts := base
	if split != nil {
		opts.FavorSplit = *split
	}
	if random != nil {
		opts.FavorRandom = *random
	}
	return simulator.Player{Options: opts, Random: randBot}
}

func (s *SimulateCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	logger, err := newLogger(os.Stderr, cfg.Log.Level, "simulate")
	if err != nil {
		return err
	}

	base := bot.Options{
		FavorSplit:  cfg.Strategy.FavorSplit,
		FavorRandom: cfg.Strategy.FavorRandom,
	}
	simCfg := simulator.Config{
		Games:    s.Games,
		Workers:  s.Workers,
		Seed:     s.Seed,
		MaxTurns: s.MaxTurns,
		A:        player(base, s.ASplit, s.ARandom, s.ARandBot),
		B:        player(base, s.BSplit, s.BRandom, s.BRandBot),
		Logger:   logger,
	}

	var spin *spinner.Spinner
	if !s.Quiet {
		spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
		step := max(s.Games/100, 1)
		simCfg.Progress = func(done int) {
			if done%step != 0 && done != s.Games {
				return
			}
			spin.Lock()
			spin.Suffix = fmt.Sprintf(" %d/%d games", done, s.Games)
			spin.Unlock()
		}
	}

	sim, err := simulator.New(simCfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Simulating %d games (seed %d)\n", s.Games, sim.Seed())
	if spin != nil {
		spin.Start()
	}
	start := time.Now()
	stats, err := sim.Run(ctx)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	if err := simulator.PrintSummary(os.Stdout, stats, simCfg.A, simCfg.B); err != nil {
		return err
	}
	fmt.Printf("\nCompleted in %s\n", time.Since(start).Round(time.Millisecond))
	return nil
}
