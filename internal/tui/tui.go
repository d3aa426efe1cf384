// Package tui is the Bubble Tea front-end for ChopStix.
package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/chopstix/internal/bot"
	"github.com/lox/chopstix/internal/display"
	"github.com/lox/chopstix/internal/game"
)

const (
	logPane = iota
	inputPane
)

const sidebarWidth = 34

// Options controls a TUI session.
type Options struct {
	// First picks who opens each game. Nil means the human.
	First func() game.Player
	// Pause is how long the computer "thinks" before moving.
	Pause time.Duration
	// Intro puts the rules at the top of the log.
	Intro bool
	// Clock drives the thinking pause. Nil means the real clock.
	Clock quartz.Clock
}

// computerTurnMsg tells the model the thinking pause is over.
type computerTurnMsg struct{}

// Model is the Bubble Tea model for a ChopStix session.
type Model struct {
	mm     *bot.MoveMaster
	match  *game.Match
	opts   Options
	clock  quartz.Clock
	logger *log.Logger

	logViewport viewport.Model
	moveInput   textinput.Model

	gameLog     []string
	base        bot.Stats
	thinking    bool
	quitting    bool
	focusedPane int

	width       int
	height      int
	initialized bool
}

// New creates the model and starts the first game.
func New(mm *bot.MoveMaster, opts Options, logger *log.Logger) *Model {
	clock := opts.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}

	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 20
	ti.Width = 40
	ti.Prompt = "> "
	ti.PromptStyle = PromptStyle
	ti.TextStyle = InputTextStyle

	m := &Model{
		mm:          mm,
		match:       game.NewMatch(mm, opts.First),
		opts:        opts,
		clock:       clock,
		logger:      logger.WithPrefix("tui"),
		logViewport: vp,
		moveInput:   ti,
		focusedPane: inputPane,
	}
	m.addLog(display.Welcome)
	if opts.Intro {
		m.addLog(display.Intro())
	}
	m.newGame()
	return m
}

// Match exposes the match being played.
func (m *Model) Match() *game.Match { return m.match }

// Log returns the lines written to the game log.
func (m *Model) Log() []string { return m.gameLog }

// Quitting reports whether the session has ended.
func (m *Model) Quitting() bool { return m.quitting }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.nextTurn())
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)

	case computerTurnMsg:
		cmds = append(cmds, m.computerTurn())

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, m.quit()
		case "tab":
			if m.focusedPane == logPane {
				m.focusedPane = inputPane
				m.moveInput.Focus()
			} else {
				m.focusedPane = logPane
				m.moveInput.Blur()
			}
		case "enter":
			if m.focusedPane == inputPane {
				input := m.moveInput.Value()
				m.moveInput.SetValue("")
				if cmd := m.submit(input); cmd != nil {
					return m, cmd
				}
			}
		case "up", "k":
			if m.focusedPane == logPane {
				m.logViewport.ScrollUp(1)
			}
		case "down", "j":
			if m.focusedPane == logPane {
				m.logViewport.ScrollDown(1)
			}
		case "pgup", "b":
			if m.focusedPane == logPane {
				m.logViewport.HalfPageUp()
			}
		case "pgdown", "f":
			if m.focusedPane == logPane {
				m.logViewport.HalfPageDown()
			}
		case "home", "g":
			if m.focusedPane == logPane {
				m.logViewport.GotoTop()
			}
		case "end", "G":
			if m.focusedPane == logPane {
				m.logViewport.GotoBottom()
			}
		}
	}

	var cmd tea.Cmd
	if m.focusedPane == inputPane {
		m.moveInput, cmd = m.moveInput.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.logViewport, cmd = m.logViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit handles one line of input from the human.
func (m *Model) submit(input string) tea.Cmd {
	cmd := game.Normalize(input)
	if cmd == "" {
		return nil
	}
	if m.thinking {
		m.addLog(display.WarningStyle.Render("Hold on, I'm thinking."))
		return nil
	}

	switch cmd {
	case "Q":
		return m.quit()
	case "?":
		m.addLog(display.Help)
		m.addLog(display.Options(!m.match.Over() && m.match.Human().CanSplit(), true, true))
		return nil
	case "N":
		if !m.match.Over() {
			m.logger.Info("Game abandoned", "moves", m.match.Moves())
		}
		m.newGame()
		return m.nextTurn()
	}

	if m.match.Over() {
		m.addLog(display.InfoStyle.Render("Enter 'N' for a new game or 'Q' to quit."))
		return nil
	}

	switch cmd {
	case "H":
		d := m.mm.Suggest(m.match.Human(), m.match.Computer())
		m.addLog(display.Hint(d.Move))
		return nil
	case "W":
		d, ok := m.mm.LastDecision()
		if !ok || m.match.LastComputerMove() == game.NoMove {
			m.addLog("I haven't moved yet.")
			return nil
		}
		m.addLog(display.Explain(d))
		return nil
	}

	out, err := m.match.PlayHuman(cmd)
	switch {
	case errors.Is(err, game.ErrInvalidMoveCmd):
		m.addLog(display.ErrorStyle.Render(display.InvalidMove(strings.TrimSpace(input))))
		return nil
	case errors.Is(err, game.ErrMoveNotAllowed):
		m.addLog(display.WarningStyle.Render(display.NotAllowed(err)))
		return nil
	case err != nil:
		m.logger.Error("Move failed", "move", cmd, "error", err)
		m.addLog(display.ErrorStyle.Render(err.Error()))
		return nil
	}

	m.addLog(fmt.Sprintf("You played %s", display.MoveStyle.Render(out.Move.String())))
	if out.Over {
		m.addLog(display.SuccessStyle.Render(display.HumanWon(m.match.Moves())))
		m.finishGame()
		return nil
	}
	return m.nextTurn()
}

func (m *Model) newGame() {
	m.match.Start()
	m.base = m.mm.Stats()
	m.thinking = false
	m.addLog(HeaderStyle.Render(fmt.Sprintf(" Game %d ", m.match.Score().Games())))
	m.logger.Info("Game started", "game", m.match.Score().Games(), "first", m.match.Turn())
}

// nextTurn schedules the computer's move when it is due.
func (m *Model) nextTurn() tea.Cmd {
	if m.match.Over() || m.match.Turn() != game.Computer {
		return nil
	}
	m.thinking = true
	clock, d := m.clock, m.opts.Pause
	return func() tea.Msg {
		if d > 0 {
			t := clock.NewTimer(d, "tui", "think")
			defer t.Stop()
			<-t.C
		}
		return computerTurnMsg{}
	}
}

func (m *Model) computerTurn() tea.Cmd {
	if !m.thinking {
		return nil
	}
	m.thinking = false

	out, err := m.match.PlayComputer()
	if err != nil {
		m.logger.Error("Computer move failed", "error", err)
		m.addLog(display.ErrorStyle.Render(err.Error()))
		return nil
	}
	m.addLog(fmt.Sprintf(">>> My move is: %s", display.MoveStyle.Render(out.Move.String())))
	if out.Over {
		m.addLog(display.ErrorStyle.Render(display.ComputerWon(m.match.Moves())))
		m.finishGame()
	}
	return nil
}

func (m *Model) finishGame() {
	winner, _ := m.match.Winner()
	m.logger.Info("Game finished", "winner", winner, "moves", m.match.Moves())
	m.addLog(display.Stats(m.mm.Stats().Since(m.base)))
	m.addLog(display.InfoStyle.Render("Enter 'N' for a new game or 'Q' to quit."))
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	m.logger.Info("Session ended", "games", m.match.Score().Games())
	return tea.Sequence(tea.ClearScreen, tea.Quit)
}

func (m *Model) addLog(entry string) {
	m.gameLog = append(m.gameLog, strings.TrimRight(entry, "\n"))
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	m.logViewport.GotoBottom()
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	inputContent := m.renderInputPane()
	inputHeight := lipgloss.Height(inputContent)
	inputPaneView := paneStyle(m.width-2, inputHeight, m.focusedPane == inputPane).Render(inputContent)

	topHeight := m.height - inputHeight - 4
	sidebar := paneStyle(sidebarWidth, topHeight, false).Render(m.renderSidebar())

	logWidth := max(m.width-sidebarWidth-4, 1)
	m.logViewport.Width = logWidth
	m.logViewport.Height = max(topHeight, 1)
	if !m.initialized && logWidth > 1 && topHeight > 1 {
		m.logViewport.GotoBottom()
		m.initialized = true
	}
	logView := paneStyle(logWidth, topHeight, m.focusedPane == logPane).Render(m.logViewport.View())

	top := lipgloss.JoinHorizontal(lipgloss.Top, logView, sidebar)
	return lipgloss.JoinVertical(lipgloss.Top, top, inputPaneView)
}

func (m *Model) renderSidebar() string {
	var b strings.Builder
	b.WriteString(display.Hands(m.match.Computer(), m.match.Human()))
	b.WriteString("\n\n")
	score := m.match.Score()
	b.WriteString(display.InfoStyle.Render(display.Score(score.TeamA(), score.TeamB(), score.Games())))
	return b.String()
}

func (m *Model) renderInputPane() string {
	var b strings.Builder
	switch {
	case m.match.Over():
		b.WriteString(StatusStyle.Render("Game over"))
		m.moveInput.Placeholder = "N for a new game, Q to quit"
	case m.thinking:
		b.WriteString(StatusStyle.Render("Thinking..."))
		m.moveInput.Placeholder = ""
	default:
		b.WriteString(StatusStyle.Render(fmt.Sprintf("Your move (%d played)", m.match.Moves())))
		m.moveInput.Placeholder = "LL, LR, RL, RR or S; ? for help"
	}
	b.WriteString("\n")
	b.WriteString(m.moveInput.View())
	b.WriteString("\n")
	if m.focusedPane == logPane {
		b.WriteString(HelpStyle.Render("Log focused: ↑↓ scroll, PgUp/PgDn half page, Home/End, Tab to input"))
	} else {
		b.WriteString(HelpStyle.Render("Tab to scroll log • Enter to submit • H hint • W why • Ctrl+C to quit"))
	}
	return b.String()
}
