// Package textmatch canonicalizes free text and scores approximate name matches.
package textmatch

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// Normalize lower-cases text, strips diacritics, keeps only ASCII letters,
// digits and whitespace, and collapses whitespace runs into single spaces.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	decomposed, _, err := transform.String(stripMarks, strings.ToLower(text))
	if err != nil {
		decomposed = strings.ToLower(text)
	}

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
