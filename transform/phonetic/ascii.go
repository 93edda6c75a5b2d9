package phonetic

import (
	"strings"

	"github.com/datatrails/go-pprl/internal/asciifold"
)

// toASCIIUpper folds diacritics and uppercases the result. This mirrors
// the normalize step's diacritic handling closely enough for phonetic
// algorithms, which only ever look at letters.
func toASCIIUpper(word string) string {
	return strings.ToUpper(asciifold.Fold(word))
}

// filterAtoZ drops every byte outside A-Z.
func filterAtoZ(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}
