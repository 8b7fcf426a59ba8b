package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// centerOffset returns the offset that centers inner within outer,
// or 0 when inner does not fit.
func centerOffset(outer, inner int) int {
	if inner >= outer {
		return 0
	}
	return (outer - inner) / 2
}

// composeScreen lays the clock block out in the middle of a width x height
// screen. The date, when set, sits one blank row below the block and is
// centered on its own width. Rows past the bottom of the screen are dropped.
func composeScreen(block []string, date string, width, height int) string {
	if len(block) == 0 {
		return ""
	}

	top := centerOffset(height, len(block))
	left := strings.Repeat(" ", centerOffset(width, lipgloss.Width(block[0])))

	screen := make([]string, 0, height)
	for range top {
		screen = append(screen, "")
	}
	for _, line := range block {
		screen = append(screen, left+line)
	}
	if date != "" {
		dateLeft := centerOffset(width, lipgloss.Width(date))
		screen = append(screen, "", strings.Repeat(" ", dateLeft)+date)
	}

	if height > 0 && len(screen) > height {
		screen = screen[:height]
	}
	return strings.Join(screen, "\n")
}
