package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/xvierd/termclock/internal/ports"
	"github.com/xvierd/termclock/internal/services"
)

// Display implements the ports.Display interface using Bubbletea.
type Display struct {
	model   Model
	logger  *slog.Logger
	options []tea.ProgramOption
}

// NewDisplay creates a full-screen clock for a width x height terminal.
// Extra program options are appended after the defaults, which lets tests
// swap the input and output streams.
func NewDisplay(clock *services.ClockService, opts Options, width, height int, programOpts ...tea.ProgramOption) *Display {
	model := NewModel(clock, opts, width, height)
	return &Display{
		model:   model,
		logger:  model.logger,
		options: programOpts,
	}
}

// Run enters the alternate screen and raw mode and blocks until the clock
// stops. Bubbletea restores the terminal before returning, including when
// it recovers from a panic, so errors are reported on a clean terminal.
func (d *Display) Run(ctx context.Context) error {
	options := append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	}, d.options...)

	program := tea.NewProgram(d.model, options...)
	final, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramPanic) {
			return fmt.Errorf("clock display crashed: %w", err)
		}
		if ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
			d.logger.Debug("display cancelled", "err", ctx.Err())
			return nil
		}
		return fmt.Errorf("failed to run clock display: %w", err)
	}

	if m, ok := final.(Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}

// Ensure Display implements ports.Display.
var _ ports.Display = (*Display)(nil)
