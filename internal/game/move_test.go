package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		input string
		want  Move
	}{
		{"S", Split},
		{"s", Split},
		{" s ", Split},
		{"LL", TapLL},
		{"lr", TapLR},
		{"R l", TapRL},
		{"\trr\n", TapRR},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMove(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMoveInvalid(t *testing.T) {
	for _, input := range []string{"", "X", "L", "LLL", "SS", "LS", "Q", "?"} {
		t.Run(input, func(t *testing.T) {
			got, err := ParseMove(input)
			assert.ErrorIs(t, err, ErrInvalidMoveCmd)
			assert.Equal(t, NoMove, got)
		})
	}
}

func TestMoveString(t *testing.T) {
	assert.Equal(t, "S", Split.String())
	assert.Equal(t, "LL", TapLL.String())
	assert.Equal(t, "LR", TapLR.String())
	assert.Equal(t, "RL", TapRL.String())
	assert.Equal(t, "RR", TapRR.String())
	assert.Equal(t, "?", NoMove.String())
}

func TestMoveRoundTrip(t *testing.T) {
	for _, m := range []Move{Split, TapLL, TapLR, TapRL, TapRR} {
		got, err := ParseMove(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
}

func TestTapSides(t *testing.T) {
	for _, from := range []Side{Left, Right} {
		for _, to := range []Side{Left, Right} {
			m := Tap(from, to)
			assert.True(t, m.IsTap())
			assert.Equal(t, from, m.From())
			assert.Equal(t, to, m.To())
		}
	}
	assert.False(t, Split.IsTap())
	assert.True(t, Split.IsValid())
	assert.False(t, NoMove.IsValid())
}

func TestMoveMirror(t *testing.T) {
	assert.Equal(t, TapRL, TapLL.MirrorFrom())
	assert.Equal(t, TapLR, TapLL.MirrorTo())
	assert.Equal(t, TapRR, TapLR.MirrorFrom())
	assert.Equal(t, TapRL, TapRR.MirrorTo())
	assert.Equal(t, Split, Split.MirrorFrom())
	assert.Equal(t, Split, Split.MirrorTo())
}
