package bot

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/chopstix/internal/game"
)

// RandBot plays random moves, splitting now and then. It still takes a win
// when one is on the board. Useful as a sparring partner in simulations.
type RandBot struct {
	mm *MoveMaster
}

var _ game.Strategy = (*RandBot)(nil)

// NewRandBot creates a RandBot that splits with the given percentage when
// it can.
func NewRandBot(favorSplit int, rng *rand.Rand, logger *log.Logger) (*RandBot, error) {
	mm, err := New(Options{FavorSplit: favorSplit, FavorRandom: 100}, rng, logger)
	if err != nil {
		return nil, err
	}
	return &RandBot{mm: mm}, nil
}

// GetMove returns a random legal-looking move.
func (r *RandBot) GetMove(from, to *game.Hands) game.Move {
	r.mm.stats.Moves++
	return r.mm.RandomMove(from, to, true)
}

// Stats returns the counters of the underlying generator.
func (r *RandBot) Stats() Stats {
	return r.mm.Stats()
}
