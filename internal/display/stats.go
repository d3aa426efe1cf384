package display

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/chopstix/internal/bot"
)

// Stats renders the computer's move counters, right aligned to the width of
// the total.
func Stats(s bot.Stats) string {
	width := len(strconv.Itoa(s.Moves))
	lines := []string{
		fmt.Sprintf("        My Moves: %*d", width, s.Moves),
		fmt.Sprintf(" My Random Moves: %*d", width, s.RandomMoves),
		fmt.Sprintf("My Random Splits: %*d", width, s.RandomSplits),
	}
	return strings.Join(lines, "\n")
}

// Score renders the running tally.
func Score(computer, human, games int) string {
	return fmt.Sprintf("Games: %d   Me: %d   You: %d", games, computer, human)
}
