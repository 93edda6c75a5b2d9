package hashscheme

// Positions computes the k bit positions a token's digest maps to under
// the named scheme, mod filterSize.
func Positions(scheme Scheme, digest []byte, k, filterSize int) ([]int, error) {
	seeds, err := Destructure(digest)
	if err != nil {
		return nil, err
	}

	switch scheme {
	case DoubleHash:
		h0, h1 := seeds.DoubleSeeds()
		return DoublePositions(h0, h1, k, filterSize)
	case EnhancedDoubleHash:
		h0, h1 := seeds.DoubleSeeds()
		return EnhancedDoublePositions(h0, h1, k, filterSize)
	case TripleHash:
		h0, h1, h2 := seeds.TripleSeeds()
		return TriplePositions(h0, h1, h2, k, filterSize)
	case RandomHash:
		return RandomPositions(seeds.RandomSeed(), k, filterSize)
	default:
		return nil, ErrUnknownScheme
	}
}
