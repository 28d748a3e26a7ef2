// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"strings"
	"testing"

	"brandstudio/internal/models"
)

func TestValidateCategory(t *testing.T) {
	tests := []struct {
		name      string
		category  string
		wantError bool
	}{
		{"banner", "banner", false},
		{"document", "document", false},
		{"brochure", "brochure", false},
		{"unknown", "poster", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validateCategory(tt.category)
			if tt.wantError && result == "" {
				t.Error("expected an error, got none")
			}
			if !tt.wantError && result != "" {
				t.Errorf("unexpected error: %s", result)
			}
		})
	}
}

func TestValidateValues(t *testing.T) {
	tooMany := make(models.Values)
	for i := 0; i < 101; i++ {
		tooMany[strings.Repeat("x", i+1)] = models.FieldValue{Text: "v"}
	}

	tests := []struct {
		name      string
		values    models.Values
		wantError bool
	}{
		{"nil", nil, false},
		{"text value", models.Values{"heading": {Text: "Sale"}}, false},
		{"asset value", models.Values{"logo": {Asset: &models.Asset{URL: "https://img.test/a.png"}}}, false},
		{"empty key", models.Values{" ": {Text: "x"}}, true},
		{"text too long", models.Values{"heading": {Text: strings.Repeat("a", 10_001)}}, true},
		{"asset without url", models.Values{"logo": {Asset: &models.Asset{}}}, true},
		{"asset bad scheme", models.Values{"logo": {Asset: &models.Asset{URL: "file:///etc/passwd"}}}, true},
		{"too many entries", tooMany, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validateValues(tt.values)
			if tt.wantError && result == "" {
				t.Error("expected an error, got none")
			}
			if !tt.wantError && result != "" {
				t.Errorf("unexpected error: %s", result)
			}
		})
	}
}

func TestValidateQuality(t *testing.T) {
	for _, q := range []int{0, 1, 30, 90, 100} {
		if msg := validateQuality(q); msg != "" {
			t.Errorf("quality %d rejected: %s", q, msg)
		}
	}
	for _, q := range []int{-1, 101, 1000} {
		if msg := validateQuality(q); msg == "" {
			t.Errorf("quality %d accepted", q)
		}
	}
}

func TestValidatePreload(t *testing.T) {
	many := make([]string, 51)
	for i := range many {
		many[i] = "https://img.test/a.png"
	}

	tests := []struct {
		name      string
		urls      []string
		wantError bool
	}{
		{"valid", []string{"https://img.test/a.png", "http://img.test/b.png"}, false},
		{"empty list", nil, true},
		{"too many", many, true},
		{"bad scheme", []string{"ftp://img.test/a.png"}, true},
		{"url too long", []string{"https://img.test/" + strings.Repeat("a", 2_000)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validatePreload(tt.urls)
			if tt.wantError && result == "" {
				t.Error("expected an error, got none")
			}
			if !tt.wantError && result != "" {
				t.Errorf("unexpected error: %s", result)
			}
		})
	}
}

func TestValidateWorkName(t *testing.T) {
	if msg := validateWorkName("My Draft"); msg != "" {
		t.Errorf("valid name rejected: %s", msg)
	}
	if msg := validateWorkName("   "); msg == "" {
		t.Error("blank name accepted")
	}
	if msg := validateWorkName(strings.Repeat("a", 201)); msg == "" {
		t.Error("overlong name accepted")
	}
}
