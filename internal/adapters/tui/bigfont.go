package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/termclock/internal/domain"
)

// RenderOptions controls how the clock block is drawn.
type RenderOptions struct {
	Colors      domain.ColorConfig
	Scale       int // 0 picks the largest scale that fits the terminal
	HideSeconds bool
	OnePosition domain.OnePosition
}

// AutoScale returns the largest scale whose unscaled 51x5 reference block
// fits in width x height, never less than 1.
func AutoScale(width, height int) int {
	scale := min(width/domain.MinTerminalWidth, height/domain.MinTerminalHeight)
	return max(scale, 1)
}

// clockText formats t and follows every character with a space, which
// becomes the gap between glyphs.
func clockText(t domain.Time, withSeconds bool) []rune {
	formatted := t.Format(withSeconds)
	out := make([]rune, 0, 2*len(formatted))
	for _, r := range formatted {
		out = append(out, r, ' ')
	}
	return out
}

// glyphColors picks the color of each character in text. Rainbow mode
// cycles digits through domain.Rainbow; the delimiter stays neutral.
func glyphColors(text []rune, colors domain.ColorConfig) []domain.Color {
	out := make([]domain.Color, len(text))
	next := 0
	for i, r := range text {
		switch {
		case r == ' ':
			out[i] = domain.DefaultColor
		case r == ':' && colors.Rainbow:
			out[i] = domain.DefaultColor
		case r == ':':
			out[i] = colors.Delimiter
		case colors.Rainbow:
			out[i] = domain.RainbowColor(next)
			next++
		default:
			out[i] = colors.Number
		}
	}
	return out
}

// bigFont renders clock blocks with a lipgloss renderer.
type bigFont struct {
	renderer *lipgloss.Renderer
	styles   map[domain.Color]lipgloss.Style
}

func newBigFont(r *lipgloss.Renderer) *bigFont {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &bigFont{renderer: r, styles: make(map[domain.Color]lipgloss.Style)}
}

// cellStyle paints blank cells with the color as background.
func (f *bigFont) cellStyle(c domain.Color) lipgloss.Style {
	if s, ok := f.styles[c]; ok {
		return s
	}
	s := f.renderer.NewStyle().Background(lipgloss.Color(strconv.Itoa(c.ANSIIndex())))
	f.styles[c] = s
	return s
}

// renderClock returns the clock block for t. It fails with
// domain.ErrTerminalTooSmall, and no lines, when width x height is below
// the minimum. Each glyph row is repeated scale times, so the block is
// 5*scale lines tall.
func (f *bigFont) renderClock(t domain.Time, opts RenderOptions, width, height int) ([]string, error) {
	if err := domain.CheckTerminalSize(width, height); err != nil {
		return nil, err
	}

	scale := opts.Scale
	if scale <= 0 {
		scale = AutoScale(width, height)
	}

	text := clockText(t, !opts.HideSeconds)
	colors := glyphColors(text, opts.Colors)

	rows := make([]strings.Builder, glyphRows)
	for i, r := range text {
		glyph := formatGlyph(GlyphKindOf(r), f.cellStyle(colors[i]).Render, scale, opts.OnePosition)
		for row := range glyph {
			rows[row].WriteString(glyph[row])
		}
	}

	lines := make([]string, 0, glyphRows*scale)
	for row := range rows {
		line := rows[row].String()
		for range scale {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// RenderClock renders t with the default lipgloss renderer.
func RenderClock(t domain.Time, opts RenderOptions, width, height int) ([]string, error) {
	return newBigFont(nil).renderClock(t, opts, width, height)
}
