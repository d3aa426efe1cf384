package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/chopstix/internal/game"
)

// Hands draws both players' hands, the computer's on top facing down and the
// human's below facing up.
//
//	  |  |>    <|  |  [My Hands]
//	  wwww      wwww
//	   III      II
//
//	     I      IIII
//	  mmmm      mmmm
//	  |  |>    <|  |  [Your Hands]
func Hands(computer, human *game.Hands) string {
	var b strings.Builder
	top := []string{
		"  |  |>    <|  |  [My Hands]",
		"  wwww      wwww",
		fingerRow(computer),
	}
	bottom := []string{
		fingerRow(human),
		"  mmmm      mmmm",
		"  |  |>    <|  |  [Your Hands]",
	}
	renderLines(&b, ComputerHandStyle, top)
	b.WriteString("\n")
	renderLines(&b, HumanHandStyle, bottom)
	return strings.TrimSuffix(b.String(), "\n")
}

// renderLines styles each line on its own so lipgloss doesn't pad them to a
// common width.
func renderLines(b *strings.Builder, style lipgloss.Style, lines []string) {
	for _, line := range lines {
		if line != "" {
			line = style.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
}

// fingerRow right-aligns the left hand so both hands meet in the middle.
func fingerRow(h *game.Hands) string {
	left := strings.Repeat(" ", game.MaxFingers-h.Left().Fingers()) + strings.Repeat("I", h.Left().Fingers())
	right := strings.Repeat("I", h.Right().Fingers())
	return strings.TrimRight(fmt.Sprintf("  %s      %s", left, right), " ")
}
