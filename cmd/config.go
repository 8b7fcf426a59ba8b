package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xvierd/termclock/internal/config"
	"github.com/xvierd/termclock/internal/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and edit the saved clock settings",
	Long:  `Show the configuration file in effect and interactively change colors, the digit-one position or the date format.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reader := bufio.NewReader(cmd.InOrStdin())
		out := cmd.OutOrStdout()

		cfg := appConfig
		if cfg == nil {
			cfg = config.DefaultConfig()
		}

		path := configPath
		if path == "" {
			var err error
			if path, err = config.GetConfigPath(); err != nil {
				return err
			}
		}

		printConfig(out, path, cfg)

		fmt.Fprintln(out)
		fmt.Fprintln(out, "  What would you like to change?")
		fmt.Fprintln(out, "    [c] Clock color")
		fmt.Fprintln(out, "    [d] Delimiter color")
		fmt.Fprintln(out, "    [p] Position of the digit one")
		fmt.Fprintln(out, "    [f] Date format")
		fmt.Fprintln(out, "    [r] Reset to defaults")
		fmt.Fprintln(out, "    [q] Quit without saving")
		fmt.Fprint(out, "  Choose: ")

		choice, _ := reader.ReadString('\n')
		choice = strings.TrimSpace(strings.ToLower(choice))

		updated := *cfg
		switch choice {
		case "c":
			if err := editColor(reader, out, "Clock color", &updated.Color); err != nil {
				return err
			}
		case "d":
			if err := editColor(reader, out, "Delimiter color", &updated.ColorDelimiter); err != nil {
				return err
			}
		case "p":
			if err := editOnePosition(reader, out, &updated); err != nil {
				return err
			}
		case "f":
			if err := editDateFormat(reader, out, &updated); err != nil {
				return err
			}
		case "r":
			updated = *config.DefaultConfig()
		case "q", "":
			fmt.Fprintln(out, "  No changes made.")
			return nil
		default:
			return fmt.Errorf("invalid choice %q", choice)
		}

		if updated == *cfg {
			fmt.Fprintln(out, "  No changes made.")
			return nil
		}
		if err := config.Save(path, &updated); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		appConfig = &updated
		fmt.Fprintf(out, "\n  Saved to %s\n", path)
		return nil
	},
}

func printConfig(out io.Writer, path string, cfg *config.Config) {
	scale := "auto"
	if cfg.Clock.Scale > 0 {
		scale = fmt.Sprintf("%d", cfg.Clock.Scale)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "  Current configuration:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Config file:   %s\n", path)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "    Color:          %s\n", cfg.Color)
	fmt.Fprintf(out, "    Delimiter:      %s\n", cfg.ColorDelimiter)
	fmt.Fprintf(out, "    Rainbow mode:   %s\n", onOff(cfg.Clock.RainbowMode))
	fmt.Fprintf(out, "    Scale:          %s\n", scale)
	fmt.Fprintf(out, "    Hide seconds:   %s\n", onOff(cfg.Clock.HideSeconds))
	fmt.Fprintf(out, "    One position:   %s\n", cfg.Clock.OnePosition)
	fmt.Fprintf(out, "    Show date:      %s\n", onOff(cfg.Clock.WithDate))
	fmt.Fprintf(out, "    Date format:    %s\n", cfg.Clock.DateFormat)
	fmt.Fprintf(out, "    Screensaver:    %s\n", onOff(cfg.Clock.Screensaver))
}

func editColor(reader *bufio.Reader, out io.Writer, label string, value *string) error {
	fmt.Fprintf(out, "\n  %s [%s]: ", label, *value)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}

	c, err := domain.ParseColor(input)
	if err != nil {
		return err
	}
	*value = c.String()
	return nil
}

func editOnePosition(reader *bufio.Reader, out io.Writer, cfg *config.Config) error {
	fmt.Fprintf(out, "\n  Position of the digit one, left/middle/right [%s]: ", cfg.Clock.OnePosition)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}

	pos, err := domain.ParseOnePosition(input)
	if err != nil {
		return err
	}
	cfg.Clock.OnePosition = pos.String()
	return nil
}

func editDateFormat(reader *bufio.Reader, out io.Writer, cfg *config.Config) error {
	fmt.Fprintf(out, "\n  Date format (strftime) [%s]: ", cfg.Clock.DateFormat)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}
	cfg.Clock.DateFormat = input
	return nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
