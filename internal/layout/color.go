// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package layout

import (
	"image/color"
	"strconv"
	"strings"

	"brandstudio/internal/brightness"
)

// ParseHex parses "#rgb" or "#rrggbb" into an opaque color. Malformed
// input yields opaque black and ok=false.
func ParseHex(s string) (color.RGBA, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return color.RGBA{A: 0xff}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{A: 0xff}, false
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, true
}

// colorDecision classifies a flat background color the same way the
// brightness classifier scores an image sample.
func colorDecision(hex string) brightness.Decision {
	c, ok := ParseHex(hex)
	if !ok {
		return brightness.Bright
	}
	lum := 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
	if lum > 128 {
		return brightness.Bright
	}
	return brightness.Dark
}
