package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	"github.com/xvierd/termclock/internal/adapters/tui"
	"github.com/xvierd/termclock/internal/config"
	"github.com/xvierd/termclock/internal/domain"
	"github.com/xvierd/termclock/internal/ports"
	"github.com/xvierd/termclock/internal/services"
)

var (
	// Clock flags
	rainbowMode bool
	scaleFlag   int
	hideSeconds bool
	onePosition = domain.DefaultOnePosition
	withDate    bool
	dateFormat  string
	screensaver bool
	saveConfig  bool
)

var (
	errRainbowWithColor = errors.New("--rainbow-mode cannot be used together with --color")
	errDateFormatNoDate = errors.New("--date-format requires --with-date")
	errEmptyDateFormat  = errors.New("date format must not be empty")
	errNotATerminal     = errors.New("stdout is not a terminal")
)

// terminalSize reports the size of the terminal the clock draws on.
var terminalSize = func() (int, int, error) {
	fd := os.Stdout.Fd()
	if !term.IsTerminal(fd) {
		return 0, 0, errNotATerminal
	}
	return term.GetSize(fd)
}

// startClock runs the display until the user quits.
var startClock = func(ctx context.Context, clock *services.ClockService, opts tui.Options, width, height int) error {
	var display ports.Display = tui.NewDisplay(clock, opts, width, height)
	return display.Run(ctx)
}

// clockCmd represents the clock command
var clockCmd = &cobra.Command{
	Use:   "clock",
	Short: "Show the clock",
	Long: `Show a big digital clock centered in the terminal.

Press q to quit. In screensaver mode any key quits.
Flags override the values in the config file.`,
	Args: cobra.NoArgs,
	RunE: runClock,
}

func init() {
	clockCmd.Flags().BoolVarP(&rainbowMode, "rainbow-mode", "r", false, "Paint each digit in a different color")
	clockCmd.Flags().IntVarP(&scaleFlag, "scale", "f", 0, fmt.Sprintf("Scale factor from 1 to %d (default: fit the terminal)", domain.MaxScale))
	clockCmd.Flags().BoolVarP(&hideSeconds, "hide-seconds", "s", false, "Show HH:MM only")
	clockCmd.Flags().VarP(&onePosition, "one-position", "1", "Position of the digit one: "+domain.OnePositionNames())
	clockCmd.Flags().BoolVarP(&withDate, "with-date", "d", false, "Show the date below the clock")
	clockCmd.Flags().StringVarP(&dateFormat, "date-format", "F", domain.DefaultDateFormat, "strftime format of the date line")
	clockCmd.Flags().BoolVarP(&screensaver, "screensaver", "S", false, "Quit on any key press")
	clockCmd.Flags().BoolVar(&saveConfig, "save", false, "Save the effective clock options to the config file")
}

func runClock(cmd *cobra.Command, args []string) error {
	cfg := appConfig
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	effective, err := resolveClockConfig(cmd, cfg)
	if err != nil {
		return err
	}

	if saveConfig {
		if err := config.Save(configPath, effective); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Clock options saved.")
	}

	width, height, err := terminalSize()
	if err != nil {
		return fmt.Errorf("failed to get terminal size: %w", err)
	}
	if err := domain.CheckTerminalSize(width, height); err != nil {
		return err
	}

	logger.Debug("starting clock",
		"width", width,
		"height", height,
		"scale", effective.Clock.Scale,
		"rainbow", effective.Clock.RainbowMode,
		"screensaver", effective.Clock.Screensaver,
	)

	opts, err := displayOptions(effective)
	if err != nil {
		return err
	}
	clock := services.NewClockService(nil, effective.Clock.DateFormat)
	if err := startClock(cmd.Context(), clock, opts, width, height); err != nil {
		return err
	}
	return nil
}

// resolveClockConfig overlays the flags set on the command line onto cfg
// and validates the result. cfg is not modified.
func resolveClockConfig(cmd *cobra.Command, cfg *config.Config) (*config.Config, error) {
	flags := cmd.Flags()
	effective := *cfg

	if flags.Changed("rainbow-mode") && rainbowMode && flags.Changed("color") {
		return nil, errRainbowWithColor
	}

	if flags.Changed("color") {
		effective.Color = colorFlag.String()
	}
	if flags.Changed("color-delimiter") {
		effective.ColorDelimiter = delimiterFlag.String()
	}
	if flags.Changed("rainbow-mode") {
		effective.Clock.RainbowMode = rainbowMode
	}
	if flags.Changed("scale") {
		if scaleFlag < 1 || scaleFlag > domain.MaxScale {
			return nil, fmt.Errorf("invalid --scale %d: %w", scaleFlag, domain.ErrInvalidScale)
		}
		effective.Clock.Scale = scaleFlag
	}
	if flags.Changed("hide-seconds") {
		effective.Clock.HideSeconds = hideSeconds
	}
	if flags.Changed("one-position") {
		effective.Clock.OnePosition = onePosition.String()
	}
	if flags.Changed("with-date") {
		effective.Clock.WithDate = withDate
	}
	if flags.Changed("date-format") {
		if !effective.Clock.WithDate {
			return nil, errDateFormatNoDate
		}
		if strings.TrimSpace(dateFormat) == "" {
			return nil, errEmptyDateFormat
		}
		effective.Clock.DateFormat = dateFormat
	}
	if flags.Changed("screensaver") {
		effective.Clock.Screensaver = screensaver
	}

	if err := effective.Validate(); err != nil {
		return nil, err
	}
	return &effective, nil
}

// displayOptions converts the effective configuration to display options.
func displayOptions(cfg *config.Config) (tui.Options, error) {
	colors, err := cfg.ColorConfig()
	if err != nil {
		return tui.Options{}, err
	}
	return tui.Options{
		Render: tui.RenderOptions{
			Colors:      colors,
			Scale:       cfg.Clock.Scale,
			HideSeconds: cfg.Clock.HideSeconds,
			OnePosition: cfg.OnePosition(),
		},
		WithDate:    cfg.Clock.WithDate,
		Screensaver: cfg.Clock.Screensaver,
		Logger:      logger,
	}, nil
}
