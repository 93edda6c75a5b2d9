// Package asciifold strips diacritics from text by NFKD-decomposing it
// and dropping the resulting combining marks, turning characters like
// "ü" or "é" into their closest plain-ASCII equivalents. It backs both
// the transform package's normalize step and the phonetic package's
// algorithms, which both need the same ASCII-folding behavior the
// original system gets from a dedicated transliteration library.
package asciifold

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Fold NFKD-decomposes s and removes combining marks.
func Fold(s string) string {
	decomposed := norm.NFKD.String(s)

	var sb strings.Builder
	sb.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
