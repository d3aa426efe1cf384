// Package statistics aggregates the results of simulated ChopStix games.
package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/chopstix/internal/bot"
)

// Seat identifies one of the two simulated players.
type Seat int

const (
	SeatA Seat = iota
	SeatB
)

func (s Seat) String() string {
	if s == SeatA {
		return "A"
	}
	return "B"
}

// Other returns the opposing seat.
func (s Seat) Other() Seat {
	return 1 - s
}

// GameResult is the outcome of a single simulated game.
type GameResult struct {
	Game    int   // index of the game in the run
	Seed    int64 // seed the game's players were built from (for replay)
	Starter Seat  // who moved first
	Winner  Seat  // meaningless when Draw is set
	Draw    bool  // turn limit reached or an illegal move stopped the game
	Turns   int
	// IllegalMoves counts moves that Apply rejected.
	IllegalMoves int
	Moves        [2]bot.Stats
}

// Statistics accumulates GameResults.
type Statistics struct {
	Games int
	Draws int
	Wins  [2]int
	// StarterWins counts decided games won by the player who moved first.
	StarterWins int

	TotalTurns int
	MinTurns   int
	MaxTurns   int
	SumTurns2  float64
	Values     []float64 // turns per game, for median/percentiles

	IllegalMoves int
	Moves        [2]bot.Stats
}

// Add incorporates a game result.
func (s *Statistics) Add(r GameResult) {
	s.Games++
	if r.Draw {
		s.Draws++
	} else {
		s.Wins[r.Winner]++
		if r.Winner == r.Starter {
			s.StarterWins++
		}
	}

	if s.Games == 1 || r.Turns < s.MinTurns {
		s.MinTurns = r.Turns
	}
	if r.Turns > s.MaxTurns {
		s.MaxTurns = r.Turns
	}
	s.TotalTurns += r.Turns
	t := float64(r.Turns)
	s.SumTurns2 += t * t
	s.Values = append(s.Values, t)

	s.IllegalMoves += r.IllegalMoves
	for seat := range s.Moves {
		s.Moves[seat].Moves += r.Moves[seat].Moves
		s.Moves[seat].RandomMoves += r.Moves[seat].RandomMoves
		s.Moves[seat].RandomSplits += r.Moves[seat].RandomSplits
	}
}

// Decided returns the number of games that had a winner.
func (s *Statistics) Decided() int {
	return s.Games - s.Draws
}

// WinRate returns the share of decided games won by seat.
func (s *Statistics) WinRate(seat Seat) float64 {
	if s.Decided() == 0 {
		return 0
	}
	return float64(s.Wins[seat]) / float64(s.Decided())
}

// Mean returns the average number of turns per game.
func (s *Statistics) Mean() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.TotalTurns) / float64(s.Games)
}

// Variance returns the sample variance of game length.
func (s *Statistics) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumTurns2 - float64(s.Games)*mean*mean) / float64(s.Games-1)
}

// StdDev returns the sample standard deviation of game length.
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Median returns the median game length.
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the game length at p (0.0 to 1.0), interpolating
// between neighbours.
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Validate checks that the tallies agree with each other.
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}
	if len(s.Values) != s.Games {
		return fmt.Errorf("values length (%d) does not match games count (%d)", len(s.Values), s.Games)
	}
	if s.Wins[SeatA]+s.Wins[SeatB]+s.Draws != s.Games {
		return fmt.Errorf("wins (%d+%d) and draws (%d) do not add up to games (%d)",
			s.Wins[SeatA], s.Wins[SeatB], s.Draws, s.Games)
	}
	if s.StarterWins > s.Decided() {
		return fmt.Errorf("starter wins (%d) exceed decided games (%d)", s.StarterWins, s.Decided())
	}
	if s.MinTurns > s.MaxTurns {
		return fmt.Errorf("min turns (%d) exceed max turns (%d)", s.MinTurns, s.MaxTurns)
	}
	return nil
}
