package game

import (
	"fmt"
	"strings"
	"unicode"
)

// Side picks the left or right hand.
type Side uint8

const (
	Left Side = iota
	Right
)

// Other returns the opposite side.
func (s Side) Other() Side {
	if s == Left {
		return Right
	}
	return Left
}

// Letter returns "L" or "R".
func (s Side) Letter() string {
	if s == Left {
		return "L"
	}
	return "R"
}

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Move is a single turn: a split or a tap of one of our hands onto one of
// theirs. The zero value is not a valid move.
type Move uint8

const (
	NoMove Move = iota
	Split
	TapLL
	TapLR
	TapRL
	TapRR
)

// Tap returns the tap move from our side onto their side.
func Tap(from, to Side) Move {
	switch {
	case from == Left && to == Left:
		return TapLL
	case from == Left:
		return TapLR
	case to == Left:
		return TapRL
	default:
		return TapRR
	}
}

// IsValid reports whether m is one of the five move tokens.
func (m Move) IsValid() bool {
	return m >= Split && m <= TapRR
}

// IsTap reports whether m is a tap.
func (m Move) IsTap() bool {
	return m >= TapLL && m <= TapRR
}

// From returns the tapping side. Only meaningful for taps.
func (m Move) From() Side {
	if m == TapRL || m == TapRR {
		return Right
	}
	return Left
}

// To returns the tapped side. Only meaningful for taps.
func (m Move) To() Side {
	if m == TapLR || m == TapRR {
		return Right
	}
	return Left
}

// MirrorFrom returns the tap with the tapping side swapped. Splits are
// returned unchanged.
func (m Move) MirrorFrom() Move {
	if !m.IsTap() {
		return m
	}
	return Tap(m.From().Other(), m.To())
}

// MirrorTo returns the tap with the tapped side swapped. Splits are
// returned unchanged.
func (m Move) MirrorTo() Move {
	if !m.IsTap() {
		return m
	}
	return Tap(m.From(), m.To().Other())
}

// String returns the text token: "S", "LL", "LR", "RL" or "RR".
func (m Move) String() string {
	switch {
	case m == Split:
		return "S"
	case m.IsTap():
		return m.From().Letter() + m.To().Letter()
	default:
		return "?"
	}
}

// ParseMove converts text input to a Move. Case and whitespace are ignored.
func ParseMove(input string) (Move, error) {
	switch Normalize(input) {
	case "S":
		return Split, nil
	case "LL":
		return TapLL, nil
	case "LR":
		return TapLR, nil
	case "RL":
		return TapRL, nil
	case "RR":
		return TapRR, nil
	}
	return NoMove, &MoveError{Kind: ErrInvalidMoveCmd, Reason: fmt.Sprintf("%q is not S or a combination of L and R", input)}
}

// Normalize strips all whitespace and upper-cases input.
func Normalize(input string) string {
	return strings.ToUpper(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, input))
}
