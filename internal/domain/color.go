package domain

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Color is one of the 16 standard ANSI terminal colors.
type Color int

const (
	ColorBlack Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightBlack
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
)

// DefaultColor is used where no color was configured, and for the
// delimiter in rainbow mode.
const DefaultColor = ColorWhite

var colorNames = [...]string{
	ColorBlack:         "black",
	ColorRed:           "red",
	ColorGreen:         "green",
	ColorYellow:        "yellow",
	ColorBlue:          "blue",
	ColorMagenta:       "magenta",
	ColorCyan:          "cyan",
	ColorWhite:         "white",
	ColorBrightBlack:   "bright-black",
	ColorBrightRed:     "bright-red",
	ColorBrightGreen:   "bright-green",
	ColorBrightYellow:  "bright-yellow",
	ColorBrightBlue:    "bright-blue",
	ColorBrightMagenta: "bright-magenta",
	ColorBrightCyan:    "bright-cyan",
	ColorBrightWhite:   "bright-white",
}

// colorAliases holds the short names accepted on the command line.
// "brblock" is kept for compatibility with older scripts.
var colorAliases = map[string]Color{
	"brblack":   ColorBrightBlack,
	"brblock":   ColorBrightBlack,
	"brred":     ColorBrightRed,
	"brgreen":   ColorBrightGreen,
	"bryellow":  ColorBrightYellow,
	"brblue":    ColorBrightBlue,
	"brmagenta": ColorBrightMagenta,
	"brcyan":    ColorBrightCyan,
	"brwhite":   ColorBrightWhite,
}

// Rainbow is the color cycle used by rainbow mode.
var Rainbow = [6]Color{
	ColorRed,
	ColorYellow,
	ColorGreen,
	ColorCyan,
	ColorBlue,
	ColorMagenta,
}

// RainbowColor returns the i-th color of the rainbow cycle, wrapping around.
func RainbowColor(i int) Color {
	return Rainbow[i%len(Rainbow)]
}

// AllColors returns every color in ANSI index order.
func AllColors() []Color {
	colors := make([]Color, len(colorNames))
	for i := range colorNames {
		colors[i] = Color(i)
	}
	return colors
}

// ParseColor resolves a color name or alias. Unknown names produce an
// error wrapping ErrUnknownColor with the closest known names.
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.ReplaceAll(name, "_", "-")
	for i, n := range colorNames {
		if n == name {
			return Color(i), nil
		}
	}
	if c, ok := colorAliases[name]; ok {
		return c, nil
	}

	if suggestions := suggestColors(name); len(suggestions) > 0 {
		return 0, fmt.Errorf("%w %q (did you mean %s?)", ErrUnknownColor, s, strings.Join(suggestions, ", "))
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownColor, s)
}

// suggestColors fuzzy-matches name against the known color names.
func suggestColors(name string) []string {
	if name == "" {
		return nil
	}
	matches := fuzzy.Find(name, colorNames[:])
	var out []string
	for _, m := range matches {
		out = append(out, m.Str)
		if len(out) == 3 {
			break
		}
	}
	return out
}

// ANSIIndex returns the 0-15 terminal palette index.
func (c Color) ANSIIndex() int {
	return int(c)
}

// IsBright reports whether c is one of the eight high-intensity colors.
func (c Color) IsBright() bool {
	return c >= ColorBrightBlack
}

// Aliases returns the short names that resolve to c.
func (c Color) Aliases() []string {
	var out []string
	for alias, color := range colorAliases {
		if color == c {
			out = append(out, alias)
		}
	}
	slices.Sort(out)
	return out
}

// String returns the canonical name.
func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// Set implements pflag.Value.
func (c *Color) Set(s string) error {
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Type implements pflag.Value.
func (c *Color) Type() string {
	return "color"
}

// ColorConfig selects the colors used to paint the clock.
type ColorConfig struct {
	Number    Color
	Delimiter Color
	Rainbow   bool
}

// DefaultColorConfig returns green digits and delimiter.
func DefaultColorConfig() ColorConfig {
	return ColorConfig{
		Number:    ColorGreen,
		Delimiter: ColorGreen,
	}
}
