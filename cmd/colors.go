package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/xvierd/termclock/internal/domain"
)

// colorsCmd represents the colors command
var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "List the available colors",
	Long:  `List the color names accepted by --color and --color-delimiter, with a swatch and their short aliases.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, c := range domain.AllColors() {
			swatch := swatchFor(c).Sprint("    ")
			line := fmt.Sprintf("%s  %-15s", swatch, c.String())
			if aliases := c.Aliases(); len(aliases) > 0 {
				line += " " + strings.Join(aliases, ", ")
			}
			fmt.Fprintln(out, strings.TrimRight(line, " "))
		}
		return nil
	},
}

// swatchFor returns a printer whose background is c.
func swatchFor(c domain.Color) *color.Color {
	if c.IsBright() {
		return color.New(color.BgHiBlack + color.Attribute(c.ANSIIndex()-int(domain.ColorBrightBlack)))
	}
	return color.New(color.BgBlack + color.Attribute(c.ANSIIndex()))
}
