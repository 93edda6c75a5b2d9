package hashscheme

import "math/rand"

// mod reduces a possibly negative int64 into [0, size).
func mod(x int64, size int) int {
	size64 := int64(size)
	r := x % size64
	if r < 0 {
		r += size64
	}
	return int(r)
}

// DoublePositions computes k bit positions using the double hashing
// scheme: position_j = (h0 + j*h1) mod filterSize, for j in [0, k).
func DoublePositions(h0, h1 int64, k, filterSize int) ([]int, error) {
	if filterSize <= 0 {
		return nil, ErrBadFilterSize
	}
	if k <= 0 {
		return nil, ErrBadK
	}
	out := make([]int, k)
	for j := 0; j < k; j++ {
		out[j] = mod(h0+int64(j)*h1, filterSize)
	}
	return out, nil
}

// EnhancedDoublePositions computes k bit positions using the enhanced
// double hashing scheme: position_j = (h0 + j*h1 + (j^3-j)/6) mod
// filterSize, for j in [0, k). The cubic correction term is what
// distinguishes this scheme from plain double hashing — it breaks the
// arithmetic-progression structure that can otherwise cause clustering
// for certain (h0, h1) pairs.
func EnhancedDoublePositions(h0, h1 int64, k, filterSize int) ([]int, error) {
	if filterSize <= 0 {
		return nil, ErrBadFilterSize
	}
	if k <= 0 {
		return nil, ErrBadK
	}
	out := make([]int, k)
	for j := 0; j < k; j++ {
		jj := int64(j)
		correction := (jj*jj*jj - jj) / 6
		out[j] = mod(h0+jj*h1+correction, filterSize)
	}
	return out, nil
}

// TriplePositions computes k bit positions using the triple hashing
// scheme: position_j = (h0 + j*h1 + ((j^3-j)/6)*h2) mod filterSize, for
// j in [0, k).
func TriplePositions(h0, h1, h2 int64, k, filterSize int) ([]int, error) {
	if filterSize <= 0 {
		return nil, ErrBadFilterSize
	}
	if k <= 0 {
		return nil, ErrBadK
	}
	out := make([]int, k)
	for j := 0; j < k; j++ {
		jj := int64(j)
		correction := (jj*jj*jj - jj) / 6
		out[j] = mod(h0+jj*h1+h2*correction, filterSize)
	}
	return out, nil
}

// RandomPositions draws k bit positions uniformly from [0, filterSize)
// using a *rand.Rand seeded with seed. Go's math/rand is this module's
// one fixed PRNG algorithm for every seeded operation (see the mask
// package doc for the full list of call sites that share this contract);
// callers needing reproducible output across runs must use the same Go
// version's math/rand, since its exact stream is not a formal spec.
func RandomPositions(seed int64, k, filterSize int) ([]int, error) {
	if filterSize <= 0 {
		return nil, ErrBadFilterSize
	}
	if k <= 0 {
		return nil, ErrBadK
	}
	rng := rand.New(rand.NewSource(seed))
	out := make([]int, k)
	for j := 0; j < k; j++ {
		out[j] = rng.Intn(filterSize)
	}
	return out, nil
}
