// Package tui drives puzzle games in the terminal with Bubble Tea.
// Games stay unaware of the terminal: the model feeds them directions and
// reads cells back through the registry.Game interface.
package tui

import (
	"io"
	"slices"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-puzzles/internal/board"
	"github.com/vovakirdan/tui-puzzles/internal/core"
	"github.com/vovakirdan/tui-puzzles/internal/registry"
	"github.com/vovakirdan/tui-puzzles/internal/storage"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	wonStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46"))
	stuckStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

// Model is the Bubble Tea model for playing one puzzle.
// Puzzles are turn-based, so the model only reacts to key presses.
type Model struct {
	game     registry.Game
	store    *storage.Store
	logger   *log.Logger
	config   core.RuntimeConfig
	keys     PlayKeyMap
	help     help.Model
	status   core.Status
	saved    bool // Whether the result has been recorded for this game
	quitting bool
}

// NewModel creates a model for an uninitialized game and initializes it.
// store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Initialize()

	return Model{
		game:   game,
		store:  store,
		logger: logger,
		config: cfg,
		keys:   DefaultPlayKeyMap(),
		help:   help.New(),
		status: core.Status{Won: game.HasWon(), CanMove: game.CanMove()},
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Status returns the status after the last processed key.
func (m Model) Status() core.Status {
	return m.status
}

// Game returns the game being played.
func (m Model) Game() registry.Game {
	return m.game
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.recordResult(core.OutcomeQuit)
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		m.recordResult(core.OutcomeQuit)
		return m.restart(), nil
	}

	if m.status.Finished() {
		return m, nil
	}

	dir, ok := m.keys.Direction(msg)
	if !ok {
		return m, nil
	}

	m.move(dir)
	return m, nil
}

// move applies one direction and refreshes the status.
// A move counts only when the board changed.
func (m *Model) move(dir board.Direction) {
	before := BoardValues(m.game)
	m.game.ProcessMove(dir)

	if !equalBoards(before, BoardValues(m.game)) {
		m.status.Moves++
	}
	m.status.Won = m.game.HasWon()
	m.status.CanMove = m.game.CanMove()

	if m.status.Finished() {
		m.recordResult(m.status.Outcome())
	}
}

// recordResult saves the result once per game. Games quit before the
// first move are not recorded.
func (m *Model) recordResult(outcome core.Outcome) {
	if m.saved {
		return
	}
	if outcome == core.OutcomeQuit && m.status.Moves == 0 {
		return
	}
	m.saved = true

	m.logger.Info("game finished", "game", m.game.ID(), "outcome", outcome, "moves", m.status.Moves)
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveResult(m.game.ID(), outcome, m.status.Moves); err != nil {
		m.logger.Warn("cannot save result", "game", m.game.ID(), "err", err)
	}
}

// restart replaces the game with a fresh instance from the registry.
func (m Model) restart() Model {
	cfg := m.config
	cfg.Seed = time.Now().UnixNano()

	g, err := registry.Create(m.game.ID(), cfg)
	if err != nil {
		m.logger.Error("cannot restart game", "game", m.game.ID(), "err", err)
		return m
	}

	m.logger.Debug("game restarted", "game", g.ID(), "seed", cfg.Seed)

	next := NewModel(g, m.store, m.logger, cfg)
	next.help = m.help
	return next
}

// View renders the board, status line and key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var status string
	switch {
	case m.status.Won:
		status = wonStyle.Render("You won!") + statusStyle.Render("  r: new game  q: quit")
	case !m.status.CanMove:
		status = stuckStyle.Render(stuckMessage(m.game)) + statusStyle.Render("  r: new game  q: quit")
	default:
		status = statusStyle.Render(pluralMoves(m.status.Moves))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.game.Title()),
		RenderBoard(BoardValues(m.game)),
		status,
		"",
		m.help.View(m.keys),
	)

	if m.config.ScreenW > 0 {
		return centerBlock(content, m.config.ScreenW)
	}
	return content
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger.Debug("starting game", "game", game.ID(), "seed", cfg.Seed)

	p := tea.NewProgram(
		NewModel(game, store, logger, cfg),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}

	if fm, ok := final.(Model); ok {
		logger.Debug("session ended", "game", fm.game.ID(), "moves", fm.status.Moves)
	}
	return nil
}

// mergeAware is implemented by games that can report a merge left on a
// board that no longer accepts moves.
type mergeAware interface {
	HasPossibleMerge() bool
}

// stuckMessage explains why a game cannot continue.
func stuckMessage(g registry.Game) string {
	if ma, ok := g.(mergeAware); ok && ma.HasPossibleMerge() {
		return "Board full, merges left"
	}
	return "No moves left"
}

func equalBoards(a, b [][]int) bool {
	return slices.EqualFunc(a, b, slices.Equal[[]int])
}

func pluralMoves(n int) string {
	if n == 1 {
		return "1 move"
	}
	return strconv.Itoa(n) + " moves"
}
