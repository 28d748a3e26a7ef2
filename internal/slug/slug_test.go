// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package slug

import (
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Hero Banner", "hero-banner"},
		{"punctuation stripped", "Hero Banner (Dark)", "hero-banner-dark"},
		{"numbers kept", "Promo 2026", "promo-2026"},
		{"whitespace trimmed", "  Vertical Banner  ", "vertical-banner"},
		{"hyphens collapsed", "A -- B", "a-b"},
		{"unicode dropped", "견적서 Quotation", "quotation"},
		{"empty", "", ""},
		{"only punctuation", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Generate(tt.input); got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestGenerateTruncates(t *testing.T) {
	long := strings.Repeat("word ", 40)
	got := Generate(long)
	if len(got) > maxSlugLen {
		t.Errorf("Generate produced %d chars, want <= %d", len(got), maxSlugLen)
	}
	if strings.HasSuffix(got, "-") {
		t.Errorf("truncated slug ends with hyphen: %q", got)
	}
}

func TestFilename(t *testing.T) {
	if got := Filename("Hero Banner", "png"); got != "hero-banner.png" {
		t.Errorf("Filename = %q, want %q", got, "hero-banner.png")
	}
	if got := Filename("계약서", "pdf"); got != "artifact.pdf" {
		t.Errorf("Filename fallback = %q, want %q", got, "artifact.pdf")
	}
}
