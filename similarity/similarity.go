package similarity

import (
	"math"

	"github.com/datatrails/go-pprl/bitvec"
)

// counts returns na = popcount(a), nb = popcount(b), and n12 =
// popcount(a AND b).
func counts(a, b *bitvec.BitVector) (na, nb, n12 int, err error) {
	anded, err := bitvec.And(a, b)
	if err != nil {
		return 0, 0, 0, err
	}
	return a.Popcount(), b.Popcount(), anded.Popcount(), nil
}

// Dice computes the Dice coefficient: 2*n12 / (na+nb).
func Dice(a, b *bitvec.BitVector) (float64, error) {
	na, nb, n12, err := counts(a, b)
	if err != nil {
		return 0, err
	}
	if na+nb == 0 {
		return 0, nil
	}
	return 2 * float64(n12) / float64(na+nb), nil
}

// Cosine computes the cosine similarity: n12 / sqrt(na*nb).
func Cosine(a, b *bitvec.BitVector) (float64, error) {
	na, nb, n12, err := counts(a, b)
	if err != nil {
		return 0, err
	}
	if na == 0 || nb == 0 {
		return 0, nil
	}
	return float64(n12) / math.Sqrt(float64(na*nb)), nil
}

// Jaccard computes the Jaccard index: n12 / (na+nb-n12).
func Jaccard(a, b *bitvec.BitVector) (float64, error) {
	na, nb, n12, err := counts(a, b)
	if err != nil {
		return 0, err
	}
	denom := na + nb - n12
	if denom == 0 {
		return 0, nil
	}
	return float64(n12) / float64(denom), nil
}
