// Package titles holds the canonical form for category and blog titles.
package titles

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Normalize splits the title on whitespace, uppercases the first rune of each
// word and rejoins with single spaces. Characters after the first are left
// untouched, so "ALREADY CAPS" stays as is. The normalized form is what gets
// stored and what the per-owner uniqueness check runs against.
func Normalize(title string) string {
	words := strings.Fields(title)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if r == utf8.RuneError && size <= 1 {
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
