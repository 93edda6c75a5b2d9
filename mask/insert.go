package mask

import (
	"github.com/datatrails/go-pprl/bitvec"
	"github.com/datatrails/go-pprl/hashscheme"
	"github.com/datatrails/go-pprl/internal/tokenize"
)

// insertTokens tokenizes value, digests each token under the given salt
// configuration, and sets the k bit positions hashscheme.Positions
// derives for each into v.
func insertTokens(
	v *bitvec.BitVector,
	hashFn HashFunction,
	strategy hashscheme.Scheme,
	k int,
	value, salt, attributeName string,
	prependAttributeName bool,
	tokenSize int,
	tokenPadding rune,
) error {
	tokens := tokenize.QGrams(value, tokenSize, tokenPadding)

	for token := range tokens {
		digestInput := saltedToken(salt, attributeName, token, prependAttributeName)

		digest, err := Digest(hashFn, digestInput)
		if err != nil {
			return err
		}

		positions, err := hashscheme.Positions(strategy, digest, k, v.Len())
		if err != nil {
			return err
		}
		for _, p := range positions {
			v.Set(p)
		}
	}

	return nil
}
