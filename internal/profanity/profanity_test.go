// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package profanity

import "testing"

func TestCleanMasksWholeWords(t *testing.T) {
	f := New([]string{"damn", "crap"})

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single word", "damn", "****"},
		{"in sentence", "well damn, that failed", "well ****, that failed"},
		{"case insensitive", "DAMN it", "**** it"},
		{"substring untouched", "damnation", "damnation"},
		{"punctuation boundary", "crap!", "****!"},
		{"clean text", "hello world", "hello world"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Clean(tt.in); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanEmptyFilter(t *testing.T) {
	f := New(nil)
	if got := f.Clean("anything goes"); got != "anything goes" {
		t.Errorf("empty filter changed text: %q", got)
	}
}

func TestContains(t *testing.T) {
	f := New([]string{"damn"})
	if !f.Contains("damn right") {
		t.Error("Contains should flag banned word")
	}
	if f.Contains("all fine here") {
		t.Error("Contains flagged clean text")
	}
}

func TestNewDefaultLoadsEmbeddedList(t *testing.T) {
	f := NewDefault()
	if len(f.words) == 0 {
		t.Fatal("embedded word list is empty")
	}
}
