package display

import (
	"os"
	"strings"
	"testing"

	"github.com/lox/chopstix/internal/bot"
	"github.com/lox/chopstix/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	SetColor(false)
	os.Exit(m.Run())
}

func TestHands(t *testing.T) {
	computer, err := game.NewHandsWithFingers(3, 2)
	require.NoError(t, err)
	human, err := game.NewHandsWithFingers(1, 4)
	require.NoError(t, err)

	want := strings.Join([]string{
		"  |  |>    <|  |  [My Hands]",
		"  wwww      wwww",
		"   III      II",
		"",
		"     I      IIII",
		"  mmmm      mmmm",
		"  |  |>    <|  |  [Your Hands]",
	}, "\n")
	assert.Equal(t, want, Hands(computer, human))
}

func TestHandsFists(t *testing.T) {
	computer, err := game.NewHandsWithFingers(0, 0)
	require.NoError(t, err)
	out := Hands(computer, game.NewHands())
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "", lines[2])
	assert.Equal(t, "     I      I", lines[4])
}

func TestStats(t *testing.T) {
	got := Stats(bot.Stats{Moves: 123, RandomMoves: 7, RandomSplits: 0})
	want := strings.Join([]string{
		"        My Moves: 123",
		" My Random Moves:   7",
		"My Random Splits:   0",
	}, "\n")
	assert.Equal(t, want, got)

	assert.Contains(t, Stats(bot.Stats{}), "My Moves: 0")
}

func TestScore(t *testing.T) {
	assert.Equal(t, "Games: 3   Me: 1   You: 0", Score(1, 0, 3))
}

func TestOptions(t *testing.T) {
	all := Options(true, true, true)
	assert.Contains(t, all, "To split, enter 'S'")
	assert.Contains(t, all, "To start a new game, enter 'N'. To quit, enter 'Q'.")

	none := Options(false, false, false)
	assert.NotContains(t, none, "split")
	assert.NotContains(t, none, "'N'")
	assert.NotContains(t, none, "'Q'")
	assert.Contains(t, none, "'H'")
}

func TestIntro(t *testing.T) {
	intro := Intro()
	assert.True(t, strings.HasPrefix(intro, "The game is played"))
	assert.Contains(t, intro, "modulo 5")
	assert.Contains(t, intro, "tapped out!")
	assert.False(t, strings.HasPrefix(Help, "\t"), "heredoc strips indentation")
}

func TestExplain(t *testing.T) {
	tests := []struct {
		source bot.Source
		want   string
	}{
		{bot.SourceForcedSplit, "only sensible move"},
		{bot.SourceChosenSplit, "felt like splitting"},
		{bot.SourceWinningTap, "tapped you out"},
		{bot.SourceTable, "book of moves"},
		{bot.SourceRandom, "at random"},
	}
	for _, tt := range tests {
		t.Run(tt.source.String(), func(t *testing.T) {
			assert.Contains(t, Explain(bot.Decision{Move: game.TapLR, Source: tt.source}), tt.want)
		})
	}
}

func TestMoveMessages(t *testing.T) {
	assert.Equal(t, "You could try 'RL'.", Hint(game.TapRL))
	assert.Contains(t, Hint(game.Split), "'S'")
	assert.Contains(t, InvalidMove("xyz"), "'xyz' is not valid")

	h, err := game.NewHandsWithFingers(0, 3)
	require.NoError(t, err)
	err = game.Apply(game.TapLL, h, game.NewHands())
	require.Error(t, err)
	assert.Equal(t, "That move isn't allowed. There are no fingers on the left hand.", NotAllowed(err))

	assert.Equal(t, "Congratulations, you won! It took 9 moves", HumanWon(9))
	assert.Contains(t, ComputerWon(4), "It took 4 moves")
}
