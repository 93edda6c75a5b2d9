package tokenize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQGramsDefaultPadding(t *testing.T) {
	tokens := QGrams("foobar", 2, '_')
	expected := map[string]struct{}{
		"_f": {}, "fo": {}, "oo": {}, "ob": {}, "ba": {}, "ar": {}, "r_": {},
	}
	assert.Equal(t, expected, tokens)
}

func TestQGramsDedupes(t *testing.T) {
	tokens := QGrams("aaaa", 2, '_')
	assert.Contains(t, tokens, "aa")
	assert.Len(t, tokens, 3)
}

func TestQGramsSingleCharWithLargeQ(t *testing.T) {
	tokens := QGrams("a", 3, '_')
	assert.Len(t, tokens, 3)
}
