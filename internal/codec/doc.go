// Package codec provides the canonical CBOR encoding cmd/pprl uses for
// optional -snapshot artifact of the mask subcommand: a byte-comparable
// record of a mask job file (as parsed) and its output,
// suitable for diffing two runs to confirm they produced bit-identical
// results. Deterministic encoding (sorted map keys, shortest-form
// integers) is what makes that comparison meaningful.
package codec

import (
	"github.com/fxamacker/cbor/v2"
)

// NewEncMode returns the deterministic (core deterministic encoding
// requirements of RFC 8949) CBOR encode mode this module standardizes
// on for snapshot artifacts.
func NewEncMode() (cbor.EncMode, error) {
	return cbor.CanonicalEncOptions().EncMode()
}

// NewDecMode returns the default decode mode paired with NewEncMode.
func NewDecMode() (cbor.DecMode, error) {
	return cbor.DecOptions{}.DecMode()
}
