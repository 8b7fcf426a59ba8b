package domain

import (
	"fmt"
	"strings"
)

// OnePosition places the bar of the digit one inside its glyph box.
type OnePosition string

const (
	OneLeft   OnePosition = "left"
	OneMiddle OnePosition = "middle"
	OneRight  OnePosition = "right"
)

// DefaultOnePosition matches the alignment of the other digits' right edge.
const DefaultOnePosition = OneRight

// ValidOnePositions lists all supported positions.
var ValidOnePositions = []OnePosition{OneLeft, OneMiddle, OneRight}

// ParseOnePosition accepts a full position name or its first letter.
func ParseOnePosition(s string) (OnePosition, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return OneLeft, nil
	case "middle", "m":
		return OneMiddle, nil
	case "right", "r":
		return OneRight, nil
	default:
		return "", fmt.Errorf("%w %q: must be one of %s", ErrInvalidPosition, s, OnePositionNames())
	}
}

// OnePositionNames joins ValidOnePositions for help and error text.
func OnePositionNames() string {
	names := make([]string, len(ValidOnePositions))
	for i, p := range ValidOnePositions {
		names[i] = p.String()
	}
	return strings.Join(names, ", ")
}

func (p OnePosition) String() string {
	return string(p)
}

// Set implements pflag.Value.
func (p *OnePosition) Set(s string) error {
	parsed, err := ParseOnePosition(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Type implements pflag.Value.
func (p *OnePosition) Type() string {
	return "position"
}
