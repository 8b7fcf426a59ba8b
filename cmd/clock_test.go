package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xvierd/termclock/internal/adapters/tui"
	"github.com/xvierd/termclock/internal/config"
	"github.com/xvierd/termclock/internal/domain"
	"github.com/xvierd/termclock/internal/services"
)

// clockRun records the arguments startClock was called with.
type clockRun struct {
	called bool
	clock  *services.ClockService
	opts   tui.Options
	width  int
	height int
}

// stubTerminal replaces the terminal and display with fakes.
func stubTerminal(t *testing.T, width, height int) *clockRun {
	t.Helper()
	rec := &clockRun{}

	origSize, origStart := terminalSize, startClock
	t.Cleanup(func() {
		terminalSize, startClock = origSize, origStart
	})

	terminalSize = func() (int, int, error) { return width, height, nil }
	startClock = func(_ context.Context, clock *services.ClockService, opts tui.Options, w, h int) error {
		rec.called = true
		rec.clock = clock
		rec.opts = opts
		rec.width = w
		rec.height = h
		return nil
	}
	return rec
}

func TestClockCmd_Structure(t *testing.T) {
	if clockCmd.Use != "clock" {
		t.Errorf("clockCmd.Use = %q, want %q", clockCmd.Use, "clock")
	}

	flags := []struct {
		name      string
		shorthand string
	}{
		{"rainbow-mode", "r"},
		{"scale", "f"},
		{"hide-seconds", "s"},
		{"one-position", "1"},
		{"with-date", "d"},
		{"date-format", "F"},
		{"screensaver", "S"},
		{"save", ""},
	}
	for _, f := range flags {
		flag := clockCmd.Flags().Lookup(f.name)
		if flag == nil {
			t.Errorf("clockCmd should have --%s flag", f.name)
			continue
		}
		if flag.Shorthand != f.shorthand {
			t.Errorf("--%s shorthand = %q, want %q", f.name, flag.Shorthand, f.shorthand)
		}
	}
}

func TestClockCmd_Defaults(t *testing.T) {
	rec := stubTerminal(t, 120, 40)

	if _, err := run(t, "clock"); err != nil {
		t.Fatalf("clock failed: %v", err)
	}
	if !rec.called {
		t.Fatal("display should have been started")
	}
	if rec.width != 120 || rec.height != 40 {
		t.Errorf("size = %dx%d, want 120x40", rec.width, rec.height)
	}

	want := tui.RenderOptions{
		Colors:      domain.DefaultColorConfig(),
		Scale:       0,
		OnePosition: domain.OneRight,
	}
	if rec.opts.Render != want {
		t.Errorf("render options = %+v, want %+v", rec.opts.Render, want)
	}
	if rec.opts.WithDate || rec.opts.Screensaver {
		t.Errorf("date and screensaver should be off, got %+v", rec.opts)
	}
	if rec.clock.DateFormat() != domain.DefaultDateFormat {
		t.Errorf("date format = %q", rec.clock.DateFormat())
	}
}

func TestClockCmd_Flags(t *testing.T) {
	rec := stubTerminal(t, 200, 60)

	_, err := run(t, "clock",
		"-c", "brred", "-:", "blue",
		"-f", "2", "-s", "-1", "m", "-d", "-F", "%d.%m.%Y", "-S")
	if err != nil {
		t.Fatalf("clock failed: %v", err)
	}

	opts := rec.opts
	if opts.Render.Colors.Number != domain.ColorBrightRed || opts.Render.Colors.Delimiter != domain.ColorBlue {
		t.Errorf("colors = %+v", opts.Render.Colors)
	}
	if opts.Render.Scale != 2 {
		t.Errorf("scale = %d, want 2", opts.Render.Scale)
	}
	if !opts.Render.HideSeconds {
		t.Error("seconds should be hidden")
	}
	if opts.Render.OnePosition != domain.OneMiddle {
		t.Errorf("one position = %v, want middle", opts.Render.OnePosition)
	}
	if !opts.WithDate || !opts.Screensaver {
		t.Errorf("date and screensaver should be on, got %+v", opts)
	}
	if rec.clock.DateFormat() != "%d.%m.%Y" {
		t.Errorf("date format = %q", rec.clock.DateFormat())
	}
}

func TestClockCmd_Rainbow(t *testing.T) {
	rec := stubTerminal(t, 80, 24)

	if _, err := run(t, "clock", "--rainbow-mode"); err != nil {
		t.Fatalf("clock failed: %v", err)
	}
	if !rec.opts.Render.Colors.Rainbow {
		t.Error("rainbow mode should be enabled")
	}
}

func TestClockCmd_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
		wantMsg string
	}{
		{"rainbow with color", []string{"-r", "-c", "red"}, errRainbowWithColor, ""},
		{"scale zero", []string{"-f", "0"}, domain.ErrInvalidScale, ""},
		{"negative scale", []string{"--scale", "-2"}, domain.ErrInvalidScale, ""},
		{"scale too large", []string{"--scale", "256"}, domain.ErrInvalidScale, ""},
		{"date format without date", []string{"-F", "%H"}, errDateFormatNoDate, ""},
		{"empty date format", []string{"-d", "-F", " "}, errEmptyDateFormat, ""},
		{"unknown color", []string{"-c", "purple"}, nil, "unknown color"},
		{"unknown position", []string{"-1", "top"}, nil, "invalid position"},
		{"extra argument", []string{"now"}, nil, "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := stubTerminal(t, 80, 24)

			_, err := run(t, append([]string{"clock"}, tt.args...)...)
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want it to mention %q", err, tt.wantMsg)
			}
			if rec.called {
				t.Error("display should not start on invalid input")
			}
		})
	}
}

func TestClockCmd_TerminalTooSmall(t *testing.T) {
	rec := stubTerminal(t, 50, 5)

	_, err := run(t, "clock", "--scale", "1")
	if !errors.Is(err, domain.ErrTerminalTooSmall) {
		t.Errorf("error = %v, want ErrTerminalTooSmall", err)
	}
	if rec.called {
		t.Error("display should not start when the terminal is too small")
	}
}

func TestClockCmd_DebugLogClosedOnError(t *testing.T) {
	t.Chdir(t.TempDir())
	stubTerminal(t, 50, 5)

	_, err := run(t, "clock", "--debug")
	if !errors.Is(err, domain.ErrTerminalTooSmall) {
		t.Fatalf("error = %v, want ErrTerminalTooSmall", err)
	}
	if logCloser != nil {
		t.Error("debug log should be closed after a failed run")
	}
	if _, err := os.Stat(debugLogFile); err != nil {
		t.Errorf("debug log should have been created: %v", err)
	}
}

func TestClockCmd_NotATerminal(t *testing.T) {
	rec := stubTerminal(t, 80, 24)
	terminalSize = func() (int, int, error) { return 0, 0, errNotATerminal }

	_, err := run(t, "clock")
	if !errors.Is(err, errNotATerminal) {
		t.Errorf("error = %v, want errNotATerminal", err)
	}
	if rec.called {
		t.Error("display should not start without a terminal")
	}
}

func TestClockCmd_DisplayError(t *testing.T) {
	stubTerminal(t, 80, 24)
	boom := errors.New("boom")
	startClock = func(context.Context, *services.ClockService, tui.Options, int, int) error {
		return boom
	}

	if _, err := run(t, "clock"); !errors.Is(err, boom) {
		t.Errorf("error = %v, want display error", err)
	}
}

func TestClockCmd_ConfigFile(t *testing.T) {
	rec := stubTerminal(t, 80, 24)
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `color = "cyan"

[clock]
scale = 3
hide_seconds = true
one_position = "left"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := run(t, "clock", "--scale", "2", "--config", path); err != nil {
		t.Fatalf("clock failed: %v", err)
	}

	opts := rec.opts.Render
	if opts.Colors.Number != domain.ColorCyan {
		t.Errorf("color = %v, want cyan from config", opts.Colors.Number)
	}
	if opts.Scale != 2 {
		t.Errorf("scale = %d, want flag value 2 over config 3", opts.Scale)
	}
	if !opts.HideSeconds {
		t.Error("hide_seconds from config should apply")
	}
	if opts.OnePosition != domain.OneLeft {
		t.Errorf("one position = %v, want left from config", opts.OnePosition)
	}
}

func TestClockCmd_Save(t *testing.T) {
	stubTerminal(t, 80, 24)
	path := filepath.Join(t.TempDir(), "saved", "config.toml")

	stdout, err := run(t, "clock", "-r", "-S", "-f", "4", "--save", "--config", path)
	if err != nil {
		t.Fatalf("clock failed: %v", err)
	}
	if !strings.Contains(stdout, "saved") {
		t.Errorf("expected a confirmation, got %q", stdout)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("failed to load saved config: %v", err)
	}
	if !cfg.Clock.RainbowMode || !cfg.Clock.Screensaver || cfg.Clock.Scale != 4 {
		t.Errorf("saved config = %+v", cfg.Clock)
	}
}

func TestResolveClockConfig_DoesNotModifyInput(t *testing.T) {
	resetFlags(t)
	t.Cleanup(func() { resetFlags(t) })

	if err := clockCmd.Flags().Set("scale", "5"); err != nil {
		t.Fatal(err)
	}
	cfg := config.DefaultConfig()

	effective, err := resolveClockConfig(clockCmd, cfg)
	if err != nil {
		t.Fatalf("resolveClockConfig() error = %v", err)
	}
	if effective.Clock.Scale != 5 {
		t.Errorf("effective scale = %d, want 5", effective.Clock.Scale)
	}
	if cfg.Clock.Scale != 0 {
		t.Errorf("input config was modified: scale = %d", cfg.Clock.Scale)
	}
}
