package game

// Score keeps the tally for team A (the computer) and team B (the human).
type Score struct {
	teamA int
	teamB int
	games int
}

// TeamA returns the computer's wins.
func (s *Score) TeamA() int { return s.teamA }

// TeamB returns the human's wins.
func (s *Score) TeamB() int { return s.teamB }

// Games returns the number of games started.
func (s *Score) Games() int { return s.games }

// StartGame clears both tallies and counts a new game.
func (s *Score) StartGame() {
	s.teamA = 0
	s.teamB = 0
	s.games++
}

// TeamAWon records a win for team A.
func (s *Score) TeamAWon() {
	s.teamA++
}

// TeamBWon records a win for team B.
func (s *Score) TeamBWon() {
	s.teamB++
}
