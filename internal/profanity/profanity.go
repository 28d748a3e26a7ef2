// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package profanity masks banned words in user-supplied text before it
// reaches a rendered artifact. The filter is an explicit instance owned by
// the application root and passed to whoever needs it — no package-level
// state.
package profanity

import (
	"bufio"
	"bytes"
	"strings"
	"unicode"

	_ "embed"
)

//go:embed words.txt
var defaultWordList []byte

// Filter masks configured words with asterisks, matching whole words
// case-insensitively.
type Filter struct {
	words map[string]struct{}
}

// New creates a filter from an explicit word list. Blank entries and
// leading/trailing space are ignored.
func New(words []string) *Filter {
	f := &Filter{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			f.words[w] = struct{}{}
		}
	}
	return f
}

// NewDefault creates a filter from the embedded word list, one word per
// line, '#' lines being comments.
func NewDefault() *Filter {
	var words []string
	sc := bufio.NewScanner(bytes.NewReader(defaultWordList))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return New(words)
}

// Clean returns s with every banned word replaced by asterisks of the
// same length. Word boundaries are any non-letter, non-digit runes.
func (f *Filter) Clean(s string) string {
	if len(f.words) == 0 || s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		word := s[start:end]
		if _, banned := f.words[strings.ToLower(word)]; banned {
			b.WriteString(strings.Repeat("*", len([]rune(word))))
		} else {
			b.WriteString(word)
		}
		start = -1
	}
	for i, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i)
		b.WriteRune(r)
	}
	flush(len(s))
	return b.String()
}

// Contains reports whether s contains at least one banned word.
func (f *Filter) Contains(s string) bool {
	return f.Clean(s) != s
}
