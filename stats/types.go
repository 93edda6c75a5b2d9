package stats

// AttributeStats holds the two summary numbers computed for one
// attribute's pool of values.
type AttributeStats struct {
	AverageTokens float64
	NgramEntropy  float64
}
