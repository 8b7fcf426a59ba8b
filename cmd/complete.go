package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// completionShells lists the shells a completion script can be generated for.
var completionShells = []string{"bash", "zsh", "fish", "powershell"}

// completeCmd represents the complete command
var completeCmd = &cobra.Command{
	Use:   "complete <shell>",
	Short: "Generate a shell completion script",
	Long: `Print a completion script for the given shell to stdout.

Supported shells: bash, zsh, fish, powershell.

  termclock complete bash > /etc/bash_completion.d/termclock`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: completionShells,
	RunE: func(cmd *cobra.Command, args []string) error {
		root := cmd.Root()
		out := cmd.OutOrStdout()

		var err error
		switch args[0] {
		case "bash":
			err = root.GenBashCompletionV2(out, true)
		case "zsh":
			err = root.GenZshCompletion(out)
		case "fish":
			err = root.GenFishCompletion(out, true)
		case "powershell":
			err = root.GenPowerShellCompletionWithDesc(out)
		default:
			return fmt.Errorf("unsupported shell %q", args[0])
		}
		if err != nil {
			return fmt.Errorf("failed to generate %s completion: %w", args[0], err)
		}
		return nil
	},
}
