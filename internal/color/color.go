package color

import (
	"fmt"
	"strconv"
	"strings"
)

// RGBA is an 8-bit-per-channel color with straight (non-premultiplied) alpha.
type RGBA struct {
	R, G, B, A uint8
}

// DefaultFill is the placeholder purple (#7C3AED) at full opacity.
var DefaultFill = RGBA{R: 124, G: 58, B: 237, A: 255}

// ParseHex parses "RRGGBB" or "RRGGBBAA" hex notation, with an optional
// leading '#'. A six-digit color gets full opacity.
func ParseHex(s string) (RGBA, error) {
	h := strings.TrimPrefix(s, "#")
	switch len(h) {
	case 6:
		h += "FF"
	case 8:
	default:
		return RGBA{}, fmt.Errorf("invalid color %q: expected RRGGBB or RRGGBBAA", s)
	}
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return RGBA{
		R: uint8(n >> 24),
		G: uint8(n >> 16),
		B: uint8(n >> 8),
		A: uint8(n),
	}, nil
}

// String renders the color in RRGGBBAA hex notation.
func (c RGBA) String() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}
