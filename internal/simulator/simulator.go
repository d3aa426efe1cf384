// Package simulator plays computer-vs-computer ChopStix games in parallel
// and aggregates the results.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/chopstix/internal/bot"
	"github.com/lox/chopstix/internal/game"
	"github.com/lox/chopstix/internal/randutil"
	"github.com/lox/chopstix/internal/statistics"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxTurns ends a game as a draw. Chopsticks positions can repeat
// forever.
const DefaultMaxTurns = 200

// Player configures one seat.
type Player struct {
	Options bot.Options
	// Random replaces the MoveMaster with a RandBot that splits
	// Options.FavorSplit percent of the time.
	Random bool
}

func (p Player) String() string {
	if p.Random {
		return fmt.Sprintf("random(split=%d%%)", p.Options.FavorSplit)
	}
	return fmt.Sprintf("movemaster(split=%d%%, random=%d%%)", p.Options.FavorSplit, p.Options.FavorRandom)
}

// Config holds configuration for running simulations.
type Config struct {
	Games    int
	Workers  int   // 0 means one per CPU
	Seed     int64 // 0 means seed from the clock
	MaxTurns int   // 0 means DefaultMaxTurns
	A, B     Player
	Logger   *log.Logger
	// Progress, when set, is called from worker goroutines with the number
	// of finished games.
	Progress func(done int)
}

// Simulator runs ChopStix simulations.
type Simulator struct {
	config Config
	logger *log.Logger
}

// strategy is what a seat needs from a bot.
type strategy interface {
	game.Strategy
	Stats() bot.Stats
}

// New validates config and creates a simulator.
func New(config Config) (*Simulator, error) {
	if config.Games <= 0 {
		return nil, fmt.Errorf("games must be positive, got %d", config.Games)
	}
	if config.Workers < 0 {
		return nil, fmt.Errorf("workers must not be negative, got %d", config.Workers)
	}
	if config.MaxTurns < 0 {
		return nil, fmt.Errorf("max turns must not be negative, got %d", config.MaxTurns)
	}
	for _, p := range []struct {
		seat statistics.Seat
		opts bot.Options
	}{{statistics.SeatA, config.A.Options}, {statistics.SeatB, config.B.Options}} {
		if err := p.opts.Validate(); err != nil {
			return nil, fmt.Errorf("player %s: %w", p.seat, err)
		}
	}
	if config.Workers == 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.MaxTurns == 0 {
		config.MaxTurns = DefaultMaxTurns
	}
	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	return &Simulator{
		config: config,
		logger: config.Logger.WithPrefix("simulator"),
	}, nil
}

// Seed returns the base seed, useful for replaying a run.
func (s *Simulator) Seed() int64 { return s.config.Seed }

// Run plays every game and returns the aggregate. Results don't depend on
// the number of workers.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	start := time.Now()
	s.logger.Info("Starting simulation",
		"games", s.config.Games,
		"workers", s.config.Workers,
		"seed", s.config.Seed,
		"a", s.config.A,
		"b", s.config.B)

	results := make([]statistics.GameResult, s.config.Games)
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)

	for i := 0; i < s.config.Games; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := s.PlayGame(i)
			if err != nil {
				return err
			}
			results[i] = r
			n := done.Add(1)
			if s.config.Progress != nil {
				s.config.Progress(int(n))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, r := range results {
		stats.Add(r)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	s.logger.Info("Simulation finished",
		"games", stats.Games,
		"a_wins", stats.Wins[statistics.SeatA],
		"b_wins", stats.Wins[statistics.SeatB],
		"draws", stats.Draws,
		"illegal_moves", stats.IllegalMoves,
		"elapsed", time.Since(start).Round(time.Millisecond))
	return stats, nil
}

// PlayGame plays game n of the run. Seat A starts even games and seat B
// starts odd ones.
func (s *Simulator) PlayGame(n int) (statistics.GameResult, error) {
	seed := randutil.Derive(s.config.Seed, n)
	players := [2]strategy{}
	for seat, p := range []Player{s.config.A, s.config.B} {
		st, err := s.newPlayer(p, randutil.Derive(seed, seat))
		if err != nil {
			return statistics.GameResult{}, err
		}
		players[seat] = st
	}

	result := statistics.GameResult{
		Game:    n,
		Seed:    seed,
		Starter: statistics.Seat(n % 2),
		Draw:    true,
	}
	hands := [2]*game.Hands{game.NewHands(), game.NewHands()}
	turn := result.Starter

	for result.Turns < s.config.MaxTurns {
		from, to := hands[turn], hands[turn.Other()]
		mv := players[turn].GetMove(from, to)
		result.Turns++

		if err := game.Apply(mv, from, to); err != nil {
			result.IllegalMoves++
			s.logger.Warn("Illegal move",
				"game", n,
				"seat", turn,
				"move", mv,
				"from", from,
				"to", to,
				"error", err)
			break
		}
		if to.TappedOut() {
			result.Winner = turn
			result.Draw = false
			break
		}
		turn = turn.Other()
	}

	for seat := range players {
		result.Moves[seat] = players[seat].Stats()
	}
	s.logger.Debug("Game finished",
		"game", n,
		"turns", result.Turns,
		"draw", result.Draw,
		"winner", result.Winner)
	return result, nil
}

func (s *Simulator) newPlayer(p Player, seed int64) (strategy, error) {
	rng := randutil.New(seed)
	if p.Random {
		return bot.NewRandBot(p.Options.FavorSplit, rng, s.config.Logger)
	}
	return bot.New(p.Options, rng, s.config.Logger)
}

// ErrNoGames is returned by PrintSummary for an empty result.
var ErrNoGames = errors.New("no games played")

// PrintSummary writes a human readable report of stats to w.
func PrintSummary(w io.Writer, stats *statistics.Statistics, a, b Player) error {
	if stats == nil || stats.Games == 0 {
		return ErrNoGames
	}
	pct := func(n, of int) float64 {
		if of == 0 {
			return 0
		}
		return float64(n) / float64(of) * 100
	}

	fmt.Fprintf(w, "\n=== RESULTS: A=%s vs B=%s ===\n", a, b)
	fmt.Fprintf(w, "Games played: %d\n", stats.Games)
	fmt.Fprintf(w, "A wins: %d (%.1f%%)\n", stats.Wins[statistics.SeatA], pct(stats.Wins[statistics.SeatA], stats.Games))
	fmt.Fprintf(w, "B wins: %d (%.1f%%)\n", stats.Wins[statistics.SeatB], pct(stats.Wins[statistics.SeatB], stats.Games))
	fmt.Fprintf(w, "Draws: %d (%.1f%%)\n", stats.Draws, pct(stats.Draws, stats.Games))
	fmt.Fprintf(w, "First mover won: %d of %d decided (%.1f%%)\n",
		stats.StarterWins, stats.Decided(), pct(stats.StarterWins, stats.Decided()))

	fmt.Fprintf(w, "\n=== GAME LENGTH ===\n")
	fmt.Fprintf(w, "Turns: total %d, min %d, max %d\n", stats.TotalTurns, stats.MinTurns, stats.MaxTurns)
	fmt.Fprintf(w, "Mean: %.2f  Median: %.1f  Std Dev: %.2f\n", stats.Mean(), stats.Median(), stats.StdDev())
	fmt.Fprintf(w, "Percentiles: P25=%.1f, P75=%.1f, P95=%.1f\n",
		stats.Percentile(0.25), stats.Percentile(0.75), stats.Percentile(0.95))

	fmt.Fprintf(w, "\n=== MOVES ===\n")
	for _, seat := range []statistics.Seat{statistics.SeatA, statistics.SeatB} {
		m := stats.Moves[seat]
		fmt.Fprintf(w, "%s: %d moves, %d random (%.1f%%), %d random splits\n",
			seat, m.Moves, m.RandomMoves, pct(m.RandomMoves, m.Moves), m.RandomSplits)
	}
	fmt.Fprintf(w, "Illegal moves: %d\n", stats.IllegalMoves)
	return nil
}
