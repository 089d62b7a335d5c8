// Package slug derives URL-safe identifiers from display labels.
package slug

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	invalidChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespace   = regexp.MustCompile(`\s+`)
	hyphenRuns   = regexp.MustCompile(`-+`)
)

// Make normalizes a free-text label to a URL slug: lowercase, characters
// outside [a-z0-9\s-] stripped, whitespace runs and repeated hyphens
// collapsed to one hyphen, leading/trailing hyphens trimmed. Accented
// letters are stripped, not transliterated.
func Make(label string) string {
	s := strings.ToLower(label)
	s = invalidChars.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	s = hyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Title renders a slug as a display label: hyphens become spaces and
// each word is capitalized. Words may start with an accented letter, so
// the first rune is upper-cased, not the first byte.
func Title(s string) string {
	words := strings.Split(s, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
