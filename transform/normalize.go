package transform

import (
	"regexp"
	"strings"

	"github.com/datatrails/go-pprl/internal/asciifold"
)

var multiWhitespace = regexp.MustCompile(`\s{2,}`)

// stripNonASCII drops any rune whose value exceeds the ASCII range.
// diacritic folding already converts most accented Latin input to plain
// ASCII; this removes whatever it could not (CJK, emoji, and so on).
func stripNonASCII(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if r <= 0x7f {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Normalize returns a StringTransformFn that folds diacritics to their
// closest ASCII form, lowercases, collapses runs of two or more
// whitespace characters to a single space, and trims leading/trailing
// whitespace.
func Normalize() StringTransformFn {
	return func(in string) (string, error) {
		out := asciifold.Fold(in)
		out = stripNonASCII(out)
		out = strings.ToLower(out)
		out = multiWhitespace.ReplaceAllString(out, " ")
		return strings.TrimSpace(out), nil
	}
}
