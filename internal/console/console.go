// Package console runs ChopStix as a plain line based dialogue on any
// reader and writer pair.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/chopstix/internal/bot"
	"github.com/lox/chopstix/internal/display"
	"github.com/lox/chopstix/internal/game"
)

// Options controls the pacing of a console session.
type Options struct {
	// First picks who opens each game. Nil means the human.
	First func() game.Player
	// ShortPause follows a rejected move, LongPause precedes the computer's
	// move and follows a win. Zero disables the pause.
	ShortPause time.Duration
	LongPause  time.Duration
	// Intro prints the rules before the first game.
	Intro bool
	// Clock drives the pauses. Nil means the real clock.
	Clock quartz.Clock
}

// Console plays games between a human on in/out and a MoveMaster.
type Console struct {
	mm     *bot.MoveMaster
	match  *game.Match
	opts   Options
	clock  quartz.Clock
	in     *bufio.Scanner
	out    io.Writer
	logger *log.Logger

	base  bot.Stats
	shown bool
}

// New creates a console session.
func New(mm *bot.MoveMaster, opts Options, in io.Reader, out io.Writer, logger *log.Logger) *Console {
	clock := opts.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Console{
		mm:     mm,
		match:  game.NewMatch(mm, opts.First),
		opts:   opts,
		clock:  clock,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger.WithPrefix("console"),
	}
}

// Match exposes the match being played.
func (c *Console) Match() *game.Match { return c.match }

// Run plays until the human quits or input ends. It returns nil on a normal
// exit.
func (c *Console) Run(ctx context.Context) error {
	c.println(display.Welcome)
	if c.opts.Intro {
		c.println(display.Intro())
	}
	c.newGame()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var (
			quit bool
			err  error
		)
		switch {
		case c.match.Over():
			quit, err = c.afterGame()
		case c.match.Turn() == game.Computer:
			err = c.computerTurn(ctx)
		default:
			quit, err = c.humanTurn(ctx)
		}
		if err != nil {
			return err
		}
		if quit {
			if !c.match.Over() && c.match.Moves() > 0 {
				c.printStats()
			}
			c.logger.Info("Session ended", "games", c.match.Score().Games())
			return nil
		}
	}
}

func (c *Console) newGame() {
	c.match.Start()
	c.base = c.mm.Stats()
	c.shown = false
	c.logger.Info("Game started", "game", c.match.Score().Games(), "first", c.match.Turn())
}

func (c *Console) showHands() {
	if c.shown {
		return
	}
	c.println("")
	c.println(display.Hands(c.match.Computer(), c.match.Human()))
	c.shown = true
}

func (c *Console) computerTurn(ctx context.Context) error {
	c.showHands()
	if err := c.pause(ctx, c.opts.LongPause); err != nil {
		return err
	}
	out, err := c.match.PlayComputer()
	if err != nil {
		return err
	}
	c.shown = false
	c.printf("\n\n>>> My move is: %s\n", display.MoveStyle.Render(out.Move.String()))
	if out.Over {
		c.showHands()
		c.println(display.ComputerWon(c.match.Moves()))
		return c.pause(ctx, c.opts.LongPause)
	}
	return nil
}

func (c *Console) humanTurn(ctx context.Context) (bool, error) {
	c.showHands()
	line, ok := c.prompt("\nYour move: ")
	if !ok {
		return true, c.in.Err()
	}

	switch cmd := game.Normalize(line); cmd {
	case "":
		return false, nil
	case "Q":
		return true, nil
	case "?":
		c.println(display.Help)
		c.println(display.Options(c.match.Human().CanSplit(), true, true))
	case "N":
		c.logger.Info("Game abandoned", "moves", c.match.Moves())
		c.newGame()
	case "H":
		d := c.mm.Suggest(c.match.Human(), c.match.Computer())
		c.println(display.Hint(d.Move))
	case "W":
		d, ok := c.mm.LastDecision()
		if !ok || c.match.LastComputerMove() == game.NoMove {
			c.println("I haven't moved yet.")
			break
		}
		c.println(display.Explain(d))
	default:
		return false, c.playHuman(ctx, line, cmd)
	}
	return false, nil
}

func (c *Console) playHuman(ctx context.Context, line, cmd string) error {
	out, err := c.match.PlayHuman(cmd)
	switch {
	case errors.Is(err, game.ErrInvalidMoveCmd):
		c.println(display.ErrorStyle.Render(display.InvalidMove(line)))
		return c.pause(ctx, c.opts.ShortPause)
	case errors.Is(err, game.ErrMoveNotAllowed):
		c.println(display.WarningStyle.Render(display.NotAllowed(err)))
		return c.pause(ctx, c.opts.ShortPause)
	case err != nil:
		return err
	}

	c.shown = false
	if out.Over {
		c.showHands()
		c.println(display.SuccessStyle.Render(display.HumanWon(c.match.Moves())))
		return c.pause(ctx, c.opts.LongPause)
	}
	return nil
}

// afterGame prints the results and asks whether to play again.
func (c *Console) afterGame() (bool, error) {
	winner, _ := c.match.Winner()
	c.logger.Info("Game finished", "winner", winner, "moves", c.match.Moves())
	c.println("")
	c.printStats()
	score := c.match.Score()
	c.println(display.InfoStyle.Render(display.Score(score.TeamA(), score.TeamB(), score.Games())))

	for {
		line, ok := c.prompt("\nEnter 'N' for a new game or 'Q' to quit: ")
		if !ok {
			return true, c.in.Err()
		}
		switch game.Normalize(line) {
		case "N":
			c.newGame()
			return false, nil
		case "Q":
			return true, nil
		case "?":
			c.println(display.Help)
		}
	}
}

func (c *Console) printStats() {
	c.println(display.Stats(c.mm.Stats().Since(c.base)))
}

// pause waits for d on the session clock.
func (c *Console) pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := c.clock.NewTimer(d, "console", "pause")
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (c *Console) prompt(text string) (string, bool) {
	fmt.Fprint(c.out, text)
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
