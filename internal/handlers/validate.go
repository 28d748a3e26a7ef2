// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"strings"
	"unicode/utf8"

	"brandstudio/internal/models"
)

// Validation limits for render and persistence inputs.
const (
	maxValueEntries = 100
	maxValueTextLen = 10_000
	maxAssetURLLen  = 2_000
	maxWorkNameLen  = 200
	maxPreloadURLs  = 50
	maxQuality      = 100
)

// validateCategory checks a template category filter.
func validateCategory(category string) string {
	switch models.Category(category) {
	case models.CategoryDocument, models.CategoryBanner, models.CategoryBrochure:
		return ""
	}
	return "Category must be document, banner, or brochure."
}

// validateValues checks the user value snapshot and returns the first
// error found. Unknown placeholder ids are allowed; the resolver ignores
// them.
func validateValues(values models.Values) string {
	if len(values) > maxValueEntries {
		return "Too many values (max 100 entries)."
	}
	for id, fv := range values {
		if strings.TrimSpace(id) == "" {
			return "Value keys must not be empty."
		}
		if utf8.RuneCountInString(fv.Text) > maxValueTextLen {
			return "Value text is too long (max 10,000 characters)."
		}
		if fv.Asset != nil {
			if msg := validateAssetURL(fv.Asset.URL); msg != "" {
				return msg
			}
		}
	}
	return ""
}

// validateQuality checks the export quality knob. Zero selects the
// default and is always accepted.
func validateQuality(quality int) string {
	if quality < 0 || quality > maxQuality {
		return "Quality must be between 0 and 100."
	}
	return ""
}

// validatePreload checks the asset warm-up URL list.
func validatePreload(urls []string) string {
	if len(urls) == 0 {
		return "At least one URL is required."
	}
	if len(urls) > maxPreloadURLs {
		return "Too many URLs (max 50)."
	}
	for _, u := range urls {
		if msg := validateAssetURL(u); msg != "" {
			return msg
		}
	}
	return ""
}

// validateWorkName checks the save payload name.
func validateWorkName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Work name is required."
	}
	if utf8.RuneCountInString(name) > maxWorkNameLen {
		return "Work name is too long (max 200 characters)."
	}
	return ""
}

func validateAssetURL(u string) string {
	if u == "" {
		return "Asset URL is required."
	}
	if utf8.RuneCountInString(u) > maxAssetURLLen {
		return "Asset URL is too long (max 2,000 characters)."
	}
	if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
		return "Asset URL must be http or https."
	}
	return ""
}
