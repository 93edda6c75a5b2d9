package asciifold

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldStripsDiacritics(t *testing.T) {
	assert.Equal(t, "Muller-Ludenscheidt", Fold("Müller-Ludenscheidt"))
	assert.Equal(t, "cafe", Fold("café"))
}

func TestFoldLeavesPlainASCIIUnchanged(t *testing.T) {
	assert.Equal(t, "Robert", Fold("Robert"))
}

func TestFoldEmpty(t *testing.T) {
	assert.Equal(t, "", Fold(""))
}
