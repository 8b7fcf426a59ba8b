package tui

import (
	"fmt"
	"strings"

	"github.com/xvierd/termclock/internal/domain"
)

// glyphRows is the fixed height of every glyph before vertical scaling.
const glyphRows = 5

// GlyphKind enumerates the characters the clock font can draw.
type GlyphKind int

const (
	GlyphZero GlyphKind = iota
	GlyphOne
	GlyphTwo
	GlyphThree
	GlyphFour
	GlyphFive
	GlyphSix
	GlyphSeven
	GlyphEight
	GlyphNine
	GlyphColon
	GlyphSpace
)

// GlyphKindOf maps a clock character to its glyph. The clock only ever
// formats "HH:MM[:SS]", so any other rune is a programming error and panics.
func GlyphKindOf(r rune) GlyphKind {
	switch {
	case r >= '0' && r <= '9':
		return GlyphZero + GlyphKind(r-'0')
	case r == ':':
		return GlyphColon
	case r == ' ':
		return GlyphSpace
	default:
		panic(fmt.Sprintf("tui: unexpected clock character %q", r))
	}
}

// rowPattern identifies one of the primitive rows glyphs are built from.
type rowPattern int

const (
	rowFull   rowPattern = iota // "######"
	rowSides                    // "##  ##"
	rowLeft                     // "##    "
	rowRight                    // "    ##"
	rowCenter                   // "  ##  "
	rowGap                      // "    "
	rowDot                      // " ## "
	rowThin                     // " "
)

// rows returns the row patterns of k from top to bottom.
func (k GlyphKind) rows(one domain.OnePosition) [glyphRows]rowPattern {
	switch k {
	case GlyphZero:
		return [glyphRows]rowPattern{rowFull, rowSides, rowSides, rowSides, rowFull}
	case GlyphOne:
		switch one {
		case domain.OneLeft:
			return [glyphRows]rowPattern{rowLeft, rowLeft, rowLeft, rowLeft, rowLeft}
		case domain.OneMiddle:
			return [glyphRows]rowPattern{rowCenter, rowCenter, rowCenter, rowCenter, rowCenter}
		default:
			return [glyphRows]rowPattern{rowRight, rowRight, rowRight, rowRight, rowRight}
		}
	case GlyphTwo:
		return [glyphRows]rowPattern{rowFull, rowRight, rowFull, rowLeft, rowFull}
	case GlyphThree:
		return [glyphRows]rowPattern{rowFull, rowRight, rowFull, rowRight, rowFull}
	case GlyphFour:
		return [glyphRows]rowPattern{rowSides, rowSides, rowFull, rowRight, rowRight}
	case GlyphFive:
		return [glyphRows]rowPattern{rowFull, rowLeft, rowFull, rowRight, rowFull}
	case GlyphSix:
		return [glyphRows]rowPattern{rowFull, rowLeft, rowFull, rowSides, rowFull}
	case GlyphSeven:
		return [glyphRows]rowPattern{rowFull, rowRight, rowRight, rowRight, rowRight}
	case GlyphEight:
		return [glyphRows]rowPattern{rowFull, rowSides, rowFull, rowSides, rowFull}
	case GlyphNine:
		return [glyphRows]rowPattern{rowFull, rowSides, rowFull, rowRight, rowFull}
	case GlyphColon:
		return [glyphRows]rowPattern{rowGap, rowDot, rowGap, rowDot, rowGap}
	case GlyphSpace:
		return [glyphRows]rowPattern{rowThin, rowThin, rowThin, rowThin, rowThin}
	default:
		panic(fmt.Sprintf("tui: unknown glyph kind %d", int(k)))
	}
}

// cellPainter fills cells with a style. Wide cells are 2*scale columns,
// thin cells are scale columns.
type cellPainter struct {
	paint func(...string) string
	wide  string
	thin  string
}

func newCellPainter(paint func(...string) string, scale int) cellPainter {
	return cellPainter{
		paint: paint,
		wide:  strings.Repeat(" ", 2*scale),
		thin:  strings.Repeat(" ", scale),
	}
}

func (c cellPainter) row(p rowPattern) string {
	switch p {
	case rowFull:
		return c.paint(c.wide + c.wide + c.wide)
	case rowSides:
		return c.paint(c.wide) + c.wide + c.paint(c.wide)
	case rowLeft:
		return c.paint(c.wide) + c.wide + c.wide
	case rowRight:
		return c.wide + c.wide + c.paint(c.wide)
	case rowCenter:
		return c.wide + c.paint(c.wide) + c.wide
	case rowGap:
		return c.wide + c.wide
	case rowDot:
		return c.thin + c.paint(c.wide) + c.thin
	case rowThin:
		return c.thin
	default:
		panic(fmt.Sprintf("tui: unknown row pattern %d", int(p)))
	}
}

// formatGlyph draws one glyph at the given scale. paint applies the cell
// color; it is normally lipgloss.Style.Render.
func formatGlyph(k GlyphKind, paint func(...string) string, scale int, one domain.OnePosition) [glyphRows]string {
	painter := newCellPainter(paint, scale)
	var out [glyphRows]string
	for i, p := range k.rows(one) {
		out[i] = painter.row(p)
	}
	return out
}
