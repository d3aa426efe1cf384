package game

import "fmt"

// Strategy picks the computer's move.
type Strategy interface {
	GetMove(from, to *Hands) Move
}

// Outcome describes the result of one applied move.
type Outcome struct {
	Player Player
	Move   Move
	// Over is set when the move tapped out the opponent.
	Over bool
}

// Match tracks a series of games between a human and a Strategy.
type Match struct {
	strategy Strategy
	first    func() Player

	computer *Hands
	human    *Hands
	score    Score

	turn     Player
	moves    int
	over     bool
	winner   Player
	lastMove Move
}

// NewMatch creates a match. first picks who opens each game; nil means the
// human always goes first. Call Start before the first move.
func NewMatch(strategy Strategy, first func() Player) *Match {
	if first == nil {
		first = func() Player { return Human }
	}
	return &Match{
		strategy: strategy,
		first:    first,
		computer: NewHands(),
		human:    NewHands(),
		over:     true,
	}
}

// Start begins a new game with fresh hands.
func (m *Match) Start() {
	m.computer = NewHands()
	m.human = NewHands()
	m.score.StartGame()
	m.moves = 0
	m.over = false
	m.lastMove = NoMove
	m.turn = m.first()
}

// PlayHuman parses and applies the human's move. On error the turn stays
// with the human.
func (m *Match) PlayHuman(input string) (Outcome, error) {
	if err := m.ready(Human); err != nil {
		return Outcome{}, err
	}
	mv, err := ParseMove(input)
	if err != nil {
		return Outcome{}, err
	}
	return m.play(Human, mv, m.human, m.computer)
}

// PlayComputer asks the strategy for a move and applies it.
func (m *Match) PlayComputer() (Outcome, error) {
	if err := m.ready(Computer); err != nil {
		return Outcome{}, err
	}
	mv := m.strategy.GetMove(m.computer, m.human)
	out, err := m.play(Computer, mv, m.computer, m.human)
	if err != nil {
		return out, fmt.Errorf("computer move %s: %w", mv, err)
	}
	m.lastMove = mv
	return out, nil
}

func (m *Match) ready(p Player) error {
	if m.over {
		return ErrGameOver
	}
	if m.turn != p {
		return fmt.Errorf("%w: waiting for %s", ErrNotYourTurn, m.turn)
	}
	return nil
}

func (m *Match) play(p Player, mv Move, from, to *Hands) (Outcome, error) {
	if err := Apply(mv, from, to); err != nil {
		return Outcome{Player: p, Move: mv}, err
	}
	m.moves++
	out := Outcome{Player: p, Move: mv}
	if to.TappedOut() {
		m.over = true
		m.winner = p
		out.Over = true
		if p == Computer {
			m.score.TeamAWon()
		} else {
			m.score.TeamBWon()
		}
		return out, nil
	}
	m.turn = p.Other()
	return out, nil
}

// Computer returns the computer's hands.
func (m *Match) Computer() *Hands { return m.computer }

// Human returns the human's hands.
func (m *Match) Human() *Hands { return m.human }

// Turn returns the player to move.
func (m *Match) Turn() Player { return m.turn }

// Over reports whether the current game has finished.
func (m *Match) Over() bool { return m.over }

// Winner returns the winner of a finished game.
func (m *Match) Winner() (Player, bool) {
	if !m.over || m.moves == 0 {
		return Human, false
	}
	return m.winner, true
}

// Moves returns the number of moves applied in the current game.
func (m *Match) Moves() int { return m.moves }

// LastComputerMove returns the computer's most recent move in this game.
func (m *Match) LastComputerMove() Move { return m.lastMove }

// Score returns the running score.
func (m *Match) Score() *Score { return &m.score }
