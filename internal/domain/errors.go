package domain

import (
	"errors"
	"fmt"
)

// Minimum terminal size able to hold an unscaled "HH:MM:SS" block.
const (
	MinTerminalWidth  = 51
	MinTerminalHeight = 5
)

// MaxScale is the largest explicit scale factor.
const MaxScale = 255

var (
	// ErrTerminalTooSmall is returned when the terminal cannot hold the clock.
	ErrTerminalTooSmall = fmt.Errorf("the minimum terminal size to display the clock is %dx%d", MinTerminalWidth, MinTerminalHeight)

	// ErrUnknownColor is returned for color names outside the palette.
	ErrUnknownColor = errors.New("unknown color")

	// ErrInvalidPosition is returned for an unsupported digit-one position.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrInvalidScale is returned for a scale outside 1..MaxScale.
	ErrInvalidScale = fmt.Errorf("scale must be between 1 and %d", MaxScale)
)

// CheckTerminalSize returns an error wrapping ErrTerminalTooSmall when the
// given size is below the minimum.
func CheckTerminalSize(width, height int) error {
	if width < MinTerminalWidth || height < MinTerminalHeight {
		return fmt.Errorf("terminal size %dx%d is too small: %w", width, height, ErrTerminalTooSmall)
	}
	return nil
}
