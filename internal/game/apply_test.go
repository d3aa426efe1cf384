package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyTap(t *testing.T) {
	a := NewHands()
	b := NewHands()

	require.NoError(t, Apply(TapLL, a, b))

	assert.Equal(t, "[1,1]", a.String(), "tapping hand is unchanged")
	assert.Equal(t, "[2,1]", b.String())
}

func TestApplyTapWraps(t *testing.T) {
	a := mustHands(t, 3, 4)
	b := mustHands(t, 2, 4)

	require.NoError(t, Apply(TapRR, a, b))
	assert.Equal(t, "[2,3]", b.String())

	require.NoError(t, Apply(TapLL, a, b))
	assert.Equal(t, "[0,3]", b.String())
}

func TestApplyTapFromFist(t *testing.T) {
	a := mustHands(t, 0, 3)
	b := NewHands()

	err := Apply(TapLR, a, b)
	require.ErrorIs(t, err, ErrMoveNotAllowed)
	assert.Equal(t, "there are no fingers on the left hand", Reason(err))
	assert.Equal(t, "[1,1]", b.String())

	a = mustHands(t, 2, 0)
	err = Apply(TapRL, a, b)
	require.ErrorIs(t, err, ErrMoveNotAllowed)
	assert.Contains(t, Reason(err), "right hand")
}

func TestApplyTapOntoFist(t *testing.T) {
	a := mustHands(t, 2, 1)
	b := mustHands(t, 0, 3)

	require.NoError(t, Apply(TapLL, a, b))
	assert.Equal(t, "[2,3]", b.String())
}

func TestApplySplit(t *testing.T) {
	a := mustHands(t, 4, 0)
	b := NewHands()

	require.True(t, a.CanSplit())
	require.NoError(t, Apply(Split, a, b))
	assert.Equal(t, "[2,2]", a.String())
	assert.Equal(t, "[1,1]", b.String())
}

func TestApplySplitNotAllowed(t *testing.T) {
	a := mustHands(t, 3, 0)
	err := Apply(Split, a, NewHands())
	require.ErrorIs(t, err, ErrMoveNotAllowed)
	assert.Contains(t, Reason(err), "[3,0]")
}

func TestApplyInvalid(t *testing.T) {
	err := Apply(NoMove, NewHands(), NewHands())
	assert.ErrorIs(t, err, ErrInvalidMoveCmd)

	err = Apply(Move(42), NewHands(), NewHands())
	assert.ErrorIs(t, err, ErrInvalidMoveCmd)
}

func TestReasonFallsBackToErrorText(t *testing.T) {
	assert.Equal(t, ErrGameOver.Error(), Reason(ErrGameOver))
}
