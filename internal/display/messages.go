package display

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/lox/chopstix/internal/bot"
	"github.com/lox/chopstix/internal/game"
)

// Welcome is printed once when the program starts.
var Welcome = heredoc.Doc(`
	Welcome to the game of ChopStix.
	It is an interesting math challenge between you and me.
`)

// Help describes the rules.
var Help = heredoc.Doc(`
	We each start with one finger out on each hand. We take turns tapping
	one of our hands on one of the other player's hands. The number of fingers
	on our hand are added to the number of fingers on the other player's hand,
	and the result (modulo 5) is then on the other player's hand. For example,
	if a hand with two fingers out is 'tapped' on a hand with four fingers out,
	the result is the 'tapped' hand has one finger out. (2 + 4 = 6. 6 modulo 5 = 1)

	In addition to tapping the other player's hand, an alternate move called
	'split' is possible if the player has one hand with no fingers out and one
	hand with either two or four fingers out. The result is to split the number
	of fingers between the two hands. After a split, it becomes the other player's
	turn (to tap or split).
`)

var tappedOut = heredoc.Doc(`
	The game continues back and forth until one player's tapping results in the
	other player not having any fingers out. In other words...
	The other player is 'tapped out!'
`)

var moveOptions = heredoc.Doc(`
	At any prompt you can enter a '?' to get help.

	To make a move, enter two letters. The first letter is your hand,
	'L'eft or 'R'ight, and the second letter is my hand that you are tapping
	(as you see them - in other words, your left or right).
`)

var extraOptions = heredoc.Doc(`
	Enter 'H' for a hint, or 'W' to ask why I made my last move.
`)

// Options lists the commands available at the prompt.
func Options(showSplit, showNew, showQuit bool) string {
	var b strings.Builder
	b.WriteString(moveOptions)
	b.WriteString("\n")
	if showSplit {
		b.WriteString("To split, enter 'S'\n\n")
	}
	var tail []string
	if showNew {
		tail = append(tail, "To start a new game, enter 'N'.")
	}
	if showQuit {
		tail = append(tail, "To quit, enter 'Q'.")
	}
	if len(tail) > 0 {
		b.WriteString(strings.Join(tail, " "))
		b.WriteString("\n")
	}
	b.WriteString(extraOptions)
	return b.String()
}

// Intro explains the game before the first move.
func Intro() string {
	return "The game is played with our two (virtual) hands.\n" +
		Help + "\n" + tappedOut + "\n" + Options(true, true, true)
}

// Explain describes how the computer arrived at d.
func Explain(d bot.Decision) string {
	switch d.Source {
	case bot.SourceForcedSplit:
		return fmt.Sprintf("I played %s because a split was my only sensible move.", d.Move)
	case bot.SourceChosenSplit:
		return fmt.Sprintf("I played %s because I felt like splitting.", d.Move)
	case bot.SourceWinningTap:
		return fmt.Sprintf("I played %s because it tapped you out.", d.Move)
	case bot.SourceTable:
		return fmt.Sprintf("I played %s from my book of moves.", d.Move)
	default:
		return fmt.Sprintf("I played %s at random.", d.Move)
	}
}

// Hint suggests m to the human.
func Hint(m game.Move) string {
	if m == game.Split {
		return "You could try a split: 'S'."
	}
	return fmt.Sprintf("You could try '%s'.", m)
}

// InvalidMove is printed for input that isn't a move or command.
func InvalidMove(input string) string {
	return fmt.Sprintf("The move you entered, '%s' is not valid.\n"+
		"Only use the letters 'S' or 'L' and 'R' to specify your move. Enter '?' for help.", input)
}

// NotAllowed is printed when a well formed move can't be made.
func NotAllowed(err error) string {
	return "That move isn't allowed. " + capitalize(game.Reason(err)) + "."
}

// HumanWon congratulates the human.
func HumanWon(moves int) string {
	return fmt.Sprintf("Congratulations, you won! It took %d moves", moves)
}

// ComputerWon gloats.
func ComputerWon(moves int) string {
	return fmt.Sprintf("I win, I win!!! Oh, sorry that you lost. It took %d moves", moves)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
