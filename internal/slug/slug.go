// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides filesystem- and URL-friendly names derived from
// arbitrary strings, used for export download filenames.
package slug

import (
	"regexp"
	"strings"
)

// maxSlugLen keeps download filenames within sane limits regardless of
// how long the template or work name is.
const maxSlugLen = 80

var (
	// nonAlphanumeric matches anything that isn't a letter, digit, or space.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Generate creates a URL-friendly slug from the given string.
// Example: "Hero Banner (Dark)" → "hero-banner-dark"
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = strings.ReplaceAll(result, " ", "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	if len(result) > maxSlugLen {
		result = strings.Trim(result[:maxSlugLen], "-")
	}
	return result
}

// Filename builds a download filename from a display name and an
// extension. Names that slug down to nothing fall back to "artifact".
func Filename(name, ext string) string {
	s := Generate(name)
	if s == "" {
		s = "artifact"
	}
	return s + "." + ext
}
