package game

import "fmt"

// Apply makes move m for the player owning from against the player owning
// to. A tap adds the tapping hand onto the tapped hand and leaves the tapping
// hand unchanged.
func Apply(m Move, from, to *Hands) error {
	switch {
	case m == Split:
		if !from.CanSplit() {
			return &MoveError{
				Kind:   ErrMoveNotAllowed,
				Reason: fmt.Sprintf("the fingers, %s don't allow for a split", from),
			}
		}
		return from.Split()
	case m.IsTap():
		hand := from.Get(m.From())
		if hand.IsFist() {
			return &MoveError{
				Kind:   ErrMoveNotAllowed,
				Reason: fmt.Sprintf("there are no fingers on the %s hand", m.From()),
			}
		}
		to.Get(m.To()).Add(hand)
		return nil
	default:
		return &MoveError{Kind: ErrInvalidMoveCmd, Reason: fmt.Sprintf("unknown move %d", uint8(m))}
	}
}

// TappedOut reports whether h has lost: both hands are fists.
func TappedOut(h *Hands) bool {
	return h.TappedOut()
}
