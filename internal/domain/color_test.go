package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		input string
		want  Color
	}{
		{"black", ColorBlack},
		{"red", ColorRed},
		{"Green", ColorGreen},
		{"  yellow ", ColorYellow},
		{"white", ColorWhite},
		{"bright-black", ColorBrightBlack},
		{"bright_cyan", ColorBrightCyan},
		{"brblack", ColorBrightBlack},
		{"brblock", ColorBrightBlack},
		{"brred", ColorBrightRed},
		{"brwhite", ColorBrightWhite},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColor_UnknownSuggests(t *testing.T) {
	_, err := ParseColor("gren")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownColor))
	assert.Contains(t, err.Error(), "did you mean")
	assert.Contains(t, err.Error(), "green")
}

func TestParseColor_UnknownNoSuggestion(t *testing.T) {
	_, err := ParseColor("zzz")
	require.ErrorIs(t, err, ErrUnknownColor)
	assert.False(t, strings.Contains(err.Error(), "did you mean"))
}

func TestColor_StringRoundTrip(t *testing.T) {
	for _, c := range AllColors() {
		parsed, err := ParseColor(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}
}

func TestAllColors(t *testing.T) {
	colors := AllColors()
	require.Len(t, colors, 16)
	for i, c := range colors {
		assert.Equal(t, i, c.ANSIIndex())
		assert.Equal(t, i >= 8, c.IsBright(), "color %s", c)
	}
}

func TestColor_Aliases(t *testing.T) {
	assert.Equal(t, []string{"brblack", "brblock"}, ColorBrightBlack.Aliases())
	assert.Equal(t, []string{"brred"}, ColorBrightRed.Aliases())
	assert.Empty(t, ColorRed.Aliases())
}

func TestColor_Set(t *testing.T) {
	var c Color
	require.NoError(t, c.Set("magenta"))
	assert.Equal(t, ColorMagenta, c)
	assert.Equal(t, "color", c.Type())

	err := c.Set("purple")
	assert.ErrorIs(t, err, ErrUnknownColor)
	assert.Equal(t, ColorMagenta, c, "failed Set must not change the value")
}

func TestRainbowColor(t *testing.T) {
	want := []Color{ColorRed, ColorYellow, ColorGreen, ColorCyan, ColorBlue, ColorMagenta, ColorRed, ColorYellow}
	for i, w := range want {
		assert.Equal(t, w, RainbowColor(i), "index %d", i)
	}
}

func TestDefaultColorConfig(t *testing.T) {
	cfg := DefaultColorConfig()
	assert.Equal(t, ColorGreen, cfg.Number)
	assert.Equal(t, ColorGreen, cfg.Delimiter)
	assert.False(t, cfg.Rainbow)
}
