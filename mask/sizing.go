package mask

import (
	"errors"
	"math"
)

var (
	ErrBadExpectedInsertions = errors.New("mask: expected insertions must be positive")
	ErrBadSetBitFraction     = errors.New("mask: set-bit fraction must be in (0,1)")
)

// OptimalSize computes the bitset size n = ceil(expectedInsertions /
// log(1/(1-p))), the size at which, after the given number of expected
// token insertions, approximately p fraction of its bits are expected
// to be set. Used for sizing RBF sub-filters and CLK-RBF's shared
// filter.
func OptimalSize(p, expectedInsertions float64) (int, error) {
	if expectedInsertions <= 0 {
		return 0, ErrBadExpectedInsertions
	}
	if p <= 0 || p >= 1 {
		return 0, ErrBadSetBitFraction
	}
	return int(math.Ceil(expectedInsertions / math.Log(1/(1-p)))), nil
}
