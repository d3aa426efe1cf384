package game

import "fmt"

// MaxFingers is the largest finger count a hand can hold.
const MaxFingers = 4

// fingerModulus is the wrap-around point for finger arithmetic.
const fingerModulus = MaxFingers + 1

// Hand is a single hand and the number of fingers it has out.
type Hand struct {
	fingers int // 0-4
}

// NewHand returns a hand with one finger out.
func NewHand() *Hand {
	return &Hand{fingers: 1}
}

// Fingers returns the number of fingers out.
func (h *Hand) Fingers() int {
	return h.fingers
}

// Add adds the fingers of other to this hand, modulo 5, and returns the new
// count. other is not changed.
func (h *Hand) Add(other *Hand) int {
	h.fingers = (h.fingers + other.fingers) % fingerModulus
	return h.fingers
}

// IsFist reports whether no fingers are out.
func (h *Hand) IsFist() bool {
	return h.fingers == 0
}

// SplitTo moves half of this hand's fingers onto other. This hand must hold
// 2 or 4 fingers and other must be a fist.
func (h *Hand) SplitTo(other *Hand) error {
	if h.fingers != 2 && h.fingers != 4 {
		return &MoveError{Kind: ErrSplitNotEven, Reason: fmt.Sprintf("from hand has %s", describeFingers(h.fingers))}
	}
	if !other.IsFist() {
		return &MoveError{Kind: ErrSplitNotEmpty, Reason: "hand isn't empty"}
	}
	h.fingers /= 2
	other.fingers = h.fingers
	return nil
}

// String renders the finger count.
func (h *Hand) String() string {
	return fmt.Sprintf("%d", h.fingers)
}

func describeFingers(n int) string {
	switch n {
	case 0:
		return "no fingers"
	case 1:
		return "1 finger"
	default:
		return fmt.Sprintf("%d fingers", n)
	}
}
