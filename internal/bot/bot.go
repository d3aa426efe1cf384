package bot

import (
	"errors"
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/chopstix/internal/game"
	"github.com/lox/chopstix/internal/randutil"
)

// ErrFavorOutOfRange is returned by New when a percentage is outside [0,100].
var ErrFavorOutOfRange = errors.New("favor percentage must be between 0 and 100")

// Options tunes how often the MoveMaster strays from its best play.
type Options struct {
	// FavorSplit is the percentage chance of splitting when a split is
	// possible but neither required nor blocking a win.
	FavorSplit int
	// FavorRandom is the percentage chance of a random tap instead of a
	// table move.
	FavorRandom int
	// Table overrides DefaultTable when set.
	Table *MoveTable
}

// DefaultOptions returns the thresholds the game ships with.
func DefaultOptions() Options {
	return Options{FavorSplit: 20, FavorRandom: 5}
}

// Validate checks both percentages are within [0,100].
func (o Options) Validate() error {
	if o.FavorSplit < 0 || o.FavorSplit > 100 {
		return fmt.Errorf("%w: favor split %d", ErrFavorOutOfRange, o.FavorSplit)
	}
	if o.FavorRandom < 0 || o.FavorRandom > 100 {
		return fmt.Errorf("%w: favor random %d", ErrFavorOutOfRange, o.FavorRandom)
	}
	return nil
}

// Source says how a move was chosen.
type Source int

const (
	SourceForcedSplit Source = iota
	SourceChosenSplit
	SourceWinningTap
	SourceTable
	SourceRandom
)

func (s Source) String() string {
	switch s {
	case SourceForcedSplit:
		return "forced split"
	case SourceChosenSplit:
		return "chosen split"
	case SourceWinningTap:
		return "winning tap"
	case SourceTable:
		return "table"
	case SourceRandom:
		return "random"
	default:
		return "unknown"
	}
}

// Decision is a move and how it was chosen.
type Decision struct {
	Move   game.Move
	Source Source
}

// Stats counts the moves a MoveMaster has made.
type Stats struct {
	Moves        int
	RandomMoves  int
	RandomSplits int
}

// Since returns the counters accumulated after base was taken.
func (s Stats) Since(base Stats) Stats {
	return Stats{
		Moves:        s.Moves - base.Moves,
		RandomMoves:  s.RandomMoves - base.RandomMoves,
		RandomSplits: s.RandomSplits - base.RandomSplits,
	}
}

type splitAdvice int

const (
	splitNo splitAdvice = iota
	splitYes
	splitMaybe
)

// MoveMaster picks the computer's moves.
type MoveMaster struct {
	opts   Options
	table  *MoveTable
	rng    *rand.Rand
	logger *log.Logger
	stats  Stats
	last   *Decision
}

var _ game.Strategy = (*MoveMaster)(nil)

// New creates a MoveMaster. rng supplies all of its randomness.
func New(opts Options, rng *rand.Rand, logger *log.Logger) (*MoveMaster, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	table := opts.Table
	if table == nil {
		table = DefaultTable
	}
	return &MoveMaster{
		opts:   opts,
		table:  table,
		rng:    rng,
		logger: logger.WithPrefix("movemaster"),
	}, nil
}

// Moves returns the total number of moves made.
func (mm *MoveMaster) Moves() int { return mm.stats.Moves }

// RandomMoves returns how many moves went through the random fallback.
func (mm *MoveMaster) RandomMoves() int { return mm.stats.RandomMoves }

// RandomSplits returns how many splits were picked by chance.
func (mm *MoveMaster) RandomSplits() int { return mm.stats.RandomSplits }

// Stats returns a copy of all counters.
func (mm *MoveMaster) Stats() Stats { return mm.stats }

// GetMove returns the move for from against to.
func (mm *MoveMaster) GetMove(from, to *game.Hands) game.Move {
	return mm.Decide(from, to).Move
}

// Decide returns the move for from against to and how it was chosen.
func (mm *MoveMaster) Decide(from, to *game.Hands) Decision {
	d := mm.decide(from, to, &mm.stats)
	mm.last = &d
	mm.logger.Debug("Move chosen",
		"move", d.Move,
		"source", d.Source,
		"from", from,
		"to", to,
		"moves", mm.stats.Moves)
	return d
}

// LastDecision returns the most recent Decide result.
func (mm *MoveMaster) LastDecision() (Decision, bool) {
	if mm.last == nil {
		return Decision{}, false
	}
	return *mm.last, true
}

// Suggest runs the same procedure as Decide without touching the counters.
// The random draws still advance the shared source.
func (mm *MoveMaster) Suggest(from, to *game.Hands) Decision {
	var scratch Stats
	return mm.decide(from, to, &scratch)
}

func (mm *MoveMaster) decide(from, to *game.Hands, stats *Stats) Decision {
	stats.Moves++
	switch mm.shouldSplit(from, to) {
	case splitYes:
		return Decision{Move: game.Split, Source: SourceForcedSplit}
	case splitMaybe:
		if randutil.Chance(mm.rng, mm.opts.FavorSplit) {
			stats.RandomSplits++
			return Decision{Move: game.Split, Source: SourceChosenSplit}
		}
		return mm.pickMove(from, to, stats)
	}
	if m, ok := winningMove(from, to); ok {
		return Decision{Move: m, Source: SourceWinningTap}
	}
	return mm.pickMove(from, to, stats)
}

// shouldSplit checks an immediate win first, then whether staying unsplit
// lets the opponent win next turn.
func (mm *MoveMaster) shouldSplit(from, to *game.Hands) splitAdvice {
	if !from.CanSplit() {
		return splitNo
	}
	// One hand is a fist, so the total is the other hand.
	fromTotal := from.Total()
	if to.Left().IsFist() || to.Right().IsFist() {
		if fromTotal+to.Total() == 5 {
			return splitNo
		}
	}
	if fromTotal+to.Left().Fingers() == 5 || fromTotal+to.Right().Fingers() == 5 {
		return splitYes
	}
	return splitMaybe
}

func (mm *MoveMaster) pickMove(from, to *game.Hands, stats *Stats) Decision {
	if randutil.Chance(mm.rng, mm.opts.FavorRandom) {
		return mm.randomMove(from, to, false, stats)
	}
	if m, ok := mm.table.Lookup(from, to); ok {
		return Decision{Move: m, Source: SourceTable}
	}
	return mm.randomMove(from, to, false, stats)
}

// RandomMove returns a random tap, or a split when allowSplit is set and
// the FavorSplit roll succeeds. A winning tap is always taken.
func (mm *MoveMaster) RandomMove(from, to *game.Hands, allowSplit bool) game.Move {
	return mm.randomMove(from, to, allowSplit, &mm.stats).Move
}

func (mm *MoveMaster) randomMove(from, to *game.Hands, allowSplit bool, stats *Stats) Decision {
	stats.RandomMoves++
	if m, ok := winningMove(from, to); ok {
		return Decision{Move: m, Source: SourceWinningTap}
	}
	if allowSplit && from.CanSplit() && randutil.Chance(mm.rng, mm.opts.FavorSplit) {
		stats.RandomSplits++
		return Decision{Move: game.Split, Source: SourceRandom}
	}
	return Decision{
		Move:   game.Tap(mm.pickSide(from), mm.pickSide(to)),
		Source: SourceRandom,
	}
}

// pickSide flips a coin for a side, falling back to the other side when the
// chosen hand is a fist.
func (mm *MoveMaster) pickSide(h *game.Hands) game.Side {
	side := game.Right
	if randutil.Coin(mm.rng) {
		side = game.Left
	}
	if h.Get(side).IsFist() {
		return side.Other()
	}
	return side
}

// winningMove returns the tap that taps out to, if there is one. A win needs
// to to have a single hand left.
func winningMove(from, to *game.Hands) (game.Move, bool) {
	if !to.Left().IsFist() && !to.Right().IsFist() {
		return game.NoMove, false
	}
	toTotal := to.Total()
	target := game.Right
	if to.Right().IsFist() {
		target = game.Left
	}
	switch {
	case from.Left().Fingers()+toTotal == 5:
		return game.Tap(game.Left, target), true
	case from.Right().Fingers()+toTotal == 5:
		return game.Tap(game.Right, target), true
	}
	return game.NoMove, false
}
