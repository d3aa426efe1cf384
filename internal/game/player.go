package game

// Player identifies one side of a match.
type Player uint8

const (
	Human Player = iota
	Computer
)

// Other returns the opponent.
func (p Player) Other() Player {
	if p == Human {
		return Computer
	}
	return Human
}

func (p Player) String() string {
	if p == Human {
		return "human"
	}
	return "computer"
}

// ParsePlayer converts "human" or "computer" to a Player.
func ParsePlayer(s string) (Player, bool) {
	switch Normalize(s) {
	case "HUMAN":
		return Human, true
	case "COMPUTER":
		return Computer, true
	}
	return Human, false
}
