package game

import "fmt"

// Hands is the left and right hand of one player.
type Hands struct {
	left  *Hand
	right *Hand
}

// NewHands returns a pair of hands with one finger out on each.
func NewHands() *Hands {
	return &Hands{left: NewHand(), right: NewHand()}
}

// NewHandsWithFingers returns a pair of hands holding the given counts.
func NewHandsWithFingers(left, right int) (*Hands, error) {
	if left < 0 || left > MaxFingers || right < 0 || right > MaxFingers {
		return nil, fmt.Errorf("finger counts must be between 0 and %d, got [%d,%d]", MaxFingers, left, right)
	}
	return &Hands{left: &Hand{fingers: left}, right: &Hand{fingers: right}}, nil
}

// Left returns the left hand.
func (h *Hands) Left() *Hand {
	return h.left
}

// Right returns the right hand.
func (h *Hands) Right() *Hand {
	return h.right
}

// Get returns the hand on the given side.
func (h *Hands) Get(side Side) *Hand {
	if side == Left {
		return h.left
	}
	return h.right
}

// Total returns the fingers out across both hands.
func (h *Hands) Total() int {
	return h.left.fingers + h.right.fingers
}

// CanSplit reports whether a split is possible: one hand must be a fist and
// a non-fist hand must hold an even count.
func (h *Hands) CanSplit() bool {
	return (h.left.IsFist() || h.right.IsFist()) &&
		((!h.left.IsFist() && h.left.fingers%2 == 0) ||
			(!h.right.IsFist() && h.right.fingers%2 == 0))
}

// Split divides the non-empty hand onto the fist.
func (h *Hands) Split() error {
	if h.left.IsFist() {
		return h.right.SplitTo(h.left)
	}
	return h.left.SplitTo(h.right)
}

// TappedOut reports whether both hands are fists.
func (h *Hands) TappedOut() bool {
	return h.left.IsFist() && h.right.IsFist()
}

// Clone returns an independent copy.
func (h *Hands) Clone() *Hands {
	return &Hands{left: &Hand{fingers: h.left.fingers}, right: &Hand{fingers: h.right.fingers}}
}

// String renders the hands as [left,right].
func (h *Hands) String() string {
	return fmt.Sprintf("[%d,%d]", h.left.fingers, h.right.fingers)
}
