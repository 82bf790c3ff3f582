package main

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strings"
)

// ParseHexColor parses an RRGGBBAA hex string into an RGBA color.
// The string must be exactly 8 hex digits; anything else is an error.
func ParseHexColor(s string) (color.RGBA, error) {
	if len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("color %q: want 8 hex digits (RRGGBBAA)", s)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: b[0], G: b[1], B: b[2], A: b[3]}, nil
}

// FormatHexColor renders a color as an uppercase RRGGBBAA string.
func FormatHexColor(c color.RGBA) string {
	return strings.ToUpper(hex.EncodeToString([]byte{c.R, c.G, c.B, c.A}))
}
