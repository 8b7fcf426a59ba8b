// Package tui provides the terminal user interface implementation
// using the Bubbletea framework.
package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/termclock/internal/services"
)

// tickMsg is sent once per second, aligned to the wall clock.
type tickMsg time.Time

// loopState is the display loop's state. Stopped is terminal.
type loopState int

const (
	stateRunning loopState = iota
	stateStopped
)

// Options configures the clock screen.
type Options struct {
	Render      RenderOptions
	WithDate    bool
	Screensaver bool
	Logger      *slog.Logger
	Renderer    *lipgloss.Renderer
}

// Model represents the TUI state.
type Model struct {
	clock  *services.ClockService
	opts   Options
	font   *bigFont
	keys   keyMap
	logger *slog.Logger

	width  int
	height int
	state  loopState
	frame  []string
	err    error
}

// NewModel creates the clock model for a width x height terminal and
// renders the first frame. A render failure leaves the model stopped with
// the error available from Err.
func NewModel(clock *services.ClockService, opts Options, width, height int) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	m := Model{
		clock:  clock,
		opts:   opts,
		font:   newBigFont(opts.Renderer),
		keys:   defaultKeyMap(),
		logger: logger,
		width:  width,
		height: height,
	}
	m.refresh()
	return m
}

func tickCmd() tea.Cmd {
	return tea.Every(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init starts the refresh ticker.
func (m Model) Init() tea.Cmd {
	if m.state == stateStopped {
		return tea.Quit
	}
	return tickCmd()
}

// refresh samples the clock and re-renders the frame. On failure the
// frame is dropped and the loop stops.
func (m *Model) refresh() {
	m.clock.Update()
	frame, err := m.font.renderClock(m.clock.Time(), m.opts.Render, m.width, m.height)
	if err != nil {
		m.logger.Error("render failed", "width", m.width, "height", m.height, "err", err)
		m.frame = nil
		m.err = err
		m.state = stateStopped
		return
	}
	m.frame = frame
}

func (m Model) stop(reason string) (tea.Model, tea.Cmd) {
	m.logger.Debug("stopping clock", "reason", reason)
	m.state = stateStopped
	return m, tea.Quit
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == stateStopped {
		return m, tea.Quit
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m.stop("quit key")
		case key.Matches(msg, m.keys.Interrupt):
			return m.stop("interrupt")
		case m.opts.Screensaver:
			return m.stop("screensaver key " + msg.String())
		}
		m.refresh()
		if m.state == stateStopped {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logger.Debug("terminal resized", "width", m.width, "height", m.height)
		m.refresh()
		if m.state == stateStopped {
			return m, tea.Quit
		}

	case tickMsg:
		m.refresh()
		if m.state == stateStopped {
			return m, tea.Quit
		}
		return m, tickCmd()
	}

	return m, nil
}

// View renders the TUI.
func (m Model) View() string {
	if m.err != nil || len(m.frame) == 0 {
		return ""
	}
	date := ""
	if m.opts.WithDate {
		date = m.clock.Date()
	}
	return composeScreen(m.frame, date, m.width, m.height)
}

// Err returns the render error that stopped the loop, if any.
func (m Model) Err() error {
	return m.err
}

// Stopped reports whether the loop has left the running state.
func (m Model) Stopped() bool {
	return m.state == stateStopped
}

// Frame returns the most recently rendered clock block.
func (m Model) Frame() []string {
	return m.frame
}
