package game

import "errors"

var (
	// ErrInvalidMoveCmd is returned for input that is not S or a pair of L/R letters.
	ErrInvalidMoveCmd = errors.New("invalid move command")

	// ErrMoveNotAllowed is returned for a well-formed move the hands can't make.
	ErrMoveNotAllowed = errors.New("move not allowed")

	// ErrSplitNotEven is returned when the splitting hand doesn't hold 2 or 4 fingers.
	ErrSplitNotEven = errors.New("split needs 2 or 4 fingers")

	// ErrSplitNotEmpty is returned when the hand receiving a split isn't a fist.
	ErrSplitNotEmpty = errors.New("split needs an empty hand")
)

// MoveError attaches a human readable reason to one of the error kinds above.
type MoveError struct {
	Kind   error
	Reason string
}

func (e *MoveError) Error() string {
	if e.Reason == "" {
		return e.Kind.Error()
	}
	return e.Kind.Error() + ": " + e.Reason
}

func (e *MoveError) Unwrap() error {
	return e.Kind
}

// Reason returns the reason attached to err, or err's text when there is none.
func Reason(err error) string {
	var me *MoveError
	if errors.As(err, &me) && me.Reason != "" {
		return me.Reason
	}
	return err.Error()
}

var (
	// ErrGameOver is returned when a move is attempted after a player was tapped out.
	ErrGameOver = errors.New("game is over")

	// ErrNotYourTurn is returned when a player moves out of turn.
	ErrNotYourTurn = errors.New("not your turn")
)
