// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package layout

import (
	"image/color"
	"testing"

	"brandstudio/internal/brightness"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#ffffff", color.RGBA{255, 255, 255, 255}, true},
		{"#000000", color.RGBA{0, 0, 0, 255}, true},
		{"#1a2b3c", color.RGBA{0x1a, 0x2b, 0x3c, 255}, true},
		{"#abc", color.RGBA{0xaa, 0xbb, 0xcc, 255}, true},
		{"ffffff", color.RGBA{255, 255, 255, 255}, true},
		{" #fff ", color.RGBA{255, 255, 255, 255}, true},
		{"", color.RGBA{A: 255}, false},
		{"#zzzzzz", color.RGBA{A: 255}, false},
		{"#ffff", color.RGBA{A: 255}, false},
	}
	for _, tt := range tests {
		got, ok := ParseHex(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseHex(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestColorDecision(t *testing.T) {
	tests := []struct {
		in   string
		want brightness.Decision
	}{
		{"#ffffff", brightness.Bright},
		{"#000000", brightness.Dark},
		{"#ffe000", brightness.Bright},
		{"#222244", brightness.Dark},
		{"not a color", brightness.Bright},
	}
	for _, tt := range tests {
		if got := colorDecision(tt.in); got != tt.want {
			t.Errorf("colorDecision(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
