// Package cmd provides the CLI commands for termclock.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/xvierd/termclock/internal/config"
	"github.com/xvierd/termclock/internal/domain"
)

// debugLogFile receives diagnostic logs when --debug is set.
const debugLogFile = "termclock-debug.log"

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"

	// Global flags
	colorFlag     = domain.ColorGreen
	delimiterFlag = domain.ColorGreen
	configPath    string
	debugMode     bool

	// Global dependencies
	appConfig *config.Config
	logger    = slog.New(slog.DiscardHandler)
	logCloser io.Closer
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "termclock",
	Short: "termclock - a big digital clock for your terminal",
	Long: `termclock draws a large block-art clock centered in the terminal.

Run "termclock clock" to start it. Press q to quit.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command through fang, which prints styled errors
// and cancels the command context on SIGINT or SIGTERM.
func Execute() {
	if err := fang.Execute(context.Background(), rootCmd,
		fang.WithVersion(Version),
		fang.WithCommit(GitCommit),
		fang.WithoutCompletions(),
		fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM),
	); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().VarP(&colorFlag, "color", "c", "Clock color (one of the 16 ANSI color names, see 'termclock colors')")
	rootCmd.PersistentFlags().VarP(&delimiterFlag, "color-delimiter", ":", "Delimiter color")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default: ~/.config/termclock/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Write debug logs to "+debugLogFile)

	// Finalizers run even when RunE fails, unlike PersistentPostRunE.
	cobra.OnFinalize(func() {
		if err := cleanupServices(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close debug log: %v\n", err)
		}
	})

	rootCmd.SetVersionTemplate("termclock\nVersion: {{.Version}}\n")
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Add subcommands
	rootCmd.AddCommand(clockCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(colorsCmd)
	rootCmd.AddCommand(configCmd)
}

// initializeServices sets up logging and loads the configuration.
func initializeServices() error {
	if debugMode {
		f, err := tea.LogToFile(debugLogFile, "termclock")
		if err != nil {
			return fmt.Errorf("failed to open debug log: %w", err)
		}
		logCloser = f
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
		slog.SetDefault(logger)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	appConfig = cfg
	logger.Debug("config loaded", "path", configPath, "color", cfg.Color, "scale", cfg.Clock.Scale)
	return nil
}

// cleanupServices closes the debug log, if any.
func cleanupServices() error {
	if logCloser == nil {
		return nil
	}
	err := logCloser.Close()
	logCloser = nil
	logger = slog.New(slog.DiscardHandler)
	return err
}
