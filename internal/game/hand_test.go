package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHand(t *testing.T) {
	h := NewHand()
	assert.Equal(t, 1, h.Fingers())
	assert.False(t, h.IsFist())
}

func TestHand_Add(t *testing.T) {
	for a := 0; a <= MaxFingers; a++ {
		for b := 0; b <= MaxFingers; b++ {
			h := &Hand{fingers: a}
			other := &Hand{fingers: b}

			got := h.Add(other)

			assert.Equal(t, (a+b)%5, got, "%d+%d", a, b)
			assert.Equal(t, got, h.Fingers())
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, MaxFingers)
			assert.Equal(t, b, other.Fingers(), "other hand must not change")
		}
	}
}

func TestHand_IsFist(t *testing.T) {
	assert.True(t, (&Hand{fingers: 0}).IsFist())
	for n := 1; n <= MaxFingers; n++ {
		assert.False(t, (&Hand{fingers: n}).IsFist())
	}
}

func TestHand_SplitTo(t *testing.T) {
	tests := []struct {
		name      string
		fingers   int
		other     int
		wantErr   error
		wantBoth  int
		wantInMsg string
	}{
		{name: "split 2 onto fist", fingers: 2, other: 0, wantBoth: 1},
		{name: "split 4 onto fist", fingers: 4, other: 0, wantBoth: 2},
		{name: "split fist", fingers: 0, other: 0, wantErr: ErrSplitNotEven, wantInMsg: "no fingers"},
		{name: "split 1", fingers: 1, other: 0, wantErr: ErrSplitNotEven, wantInMsg: "1 finger"},
		{name: "split 3", fingers: 3, other: 0, wantErr: ErrSplitNotEven, wantInMsg: "3 fingers"},
		{name: "split 2 onto 1", fingers: 2, other: 1, wantErr: ErrSplitNotEmpty},
		{name: "split 4 onto 3", fingers: 4, other: 3, wantErr: ErrSplitNotEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Hand{fingers: tt.fingers}
			other := &Hand{fingers: tt.other}

			err := h.SplitTo(other)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				assert.Contains(t, err.Error(), tt.wantInMsg)
				assert.Equal(t, tt.fingers, h.Fingers(), "failed split must not change hands")
				assert.Equal(t, tt.other, other.Fingers())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBoth, h.Fingers())
			assert.Equal(t, tt.wantBoth, other.Fingers())
		})
	}
}

func TestHand_SplitToNonEmptyAnySource(t *testing.T) {
	for src := 0; src <= MaxFingers; src++ {
		if src != 2 && src != 4 {
			continue
		}
		for dst := 1; dst <= MaxFingers; dst++ {
			err := (&Hand{fingers: src}).SplitTo(&Hand{fingers: dst})
			assert.ErrorIs(t, err, ErrSplitNotEmpty, "src=%d dst=%d", src, dst)
		}
	}
}
