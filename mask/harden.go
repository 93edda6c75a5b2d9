package mask

import (
	"encoding/binary"
	"math/rand"

	"github.com/datatrails/go-pprl/bitvec"
)

// HardenerFn transforms a finished filter into its hardened form.
type HardenerFn func(*bitvec.BitVector) (*bitvec.BitVector, error)

// NewHardener builds the HardenerFn cfg describes.
func NewHardener(cfg HardenerConfig) (HardenerFn, error) {
	switch cfg.Kind {
	case HardenerBalance:
		return Balance, nil
	case HardenerXorFold:
		return XorFold, nil
	case HardenerPermute:
		return Permute(cfg.Seed), nil
	case HardenerRandomizedResponse:
		return RandomizedResponse(cfg.Seed, cfg.Probability), nil
	case HardenerRule90:
		return Rule90, nil
	case HardenerRehash:
		return Rehash(cfg.WindowSize, cfg.WindowStep, cfg.K), nil
	default:
		return nil, ErrUnknownHardenerKind
	}
}

// Chain applies every configured hardener in order, feeding each one's
// output into the next.
func Chain(cfgs []HardenerConfig, v *bitvec.BitVector) (*bitvec.BitVector, error) {
	for _, cfg := range cfgs {
		fn, err := NewHardener(cfg)
		if err != nil {
			return nil, err
		}
		var err2 error
		v, err2 = fn(v)
		if err2 != nil {
			return nil, err2
		}
	}
	return v, nil
}

// Balance appends a bitwise-inverted copy of v to itself, guaranteeing
// exactly half of the result's bits are set.
func Balance(v *bitvec.BitVector) (*bitvec.BitVector, error) {
	inverted, _ := bitvec.New(v.Len())
	for i := 0; i < v.Len(); i++ {
		if !v.Test(i) {
			inverted.Set(i)
		}
	}
	return bitvec.Concat(v, inverted), nil
}

// XorFold splits v into two equal halves (padding with one unset bit if
// v.Len() is odd) and XORs them together.
func XorFold(v *bitvec.BitVector) (*bitvec.BitVector, error) {
	padded := v
	if v.Len()%2 == 1 {
		padded, _ = bitvec.New(v.Len() + 1)
		for i := 0; i < v.Len(); i++ {
			if v.Test(i) {
				padded.Set(i)
			}
		}
	}

	left, right, err := bitvec.Halves(padded)
	if err != nil {
		return nil, err
	}
	return bitvec.Xor(left, right)
}

// Permute returns a HardenerFn that applies a Fisher-Yates shuffle to
// v's bits, using a fresh *rand.Rand seeded with seed on every call.
func Permute(seed int64) HardenerFn {
	return func(v *bitvec.BitVector) (*bitvec.BitVector, error) {
		out := v.Clone()
		rng := rand.New(rand.NewSource(seed))

		for i := out.Len() - 1; i > 0; i-- {
			j := rng.Intn(i + 1)
			bi, bj := out.Test(i), out.Test(j)
			setOrClear(out, i, bj)
			setOrClear(out, j, bi)
		}
		return out, nil
	}
}

// RandomizedResponse returns a HardenerFn that, independently for each
// bit, leaves it unchanged with probability 1-probability, and
// otherwise redraws it (set with probability probability/2, cleared
// with probability probability/2).
func RandomizedResponse(seed int64, probability float64) HardenerFn {
	pHalf := probability / 2

	return func(v *bitvec.BitVector) (*bitvec.BitVector, error) {
		out := v.Clone()
		rng := rand.New(rand.NewSource(seed))

		for i := 0; i < out.Len(); i++ {
			d := rng.Float64()
			if d > probability {
				continue
			}
			setOrClear(out, i, d < pHalf)
		}
		return out, nil
	}
}

// Rule90 replaces every bit with the XOR of its left and right
// neighbors, treating the vector as circular so the first and last
// bits wrap around to each other.
func Rule90(v *bitvec.BitVector) (*bitvec.BitVector, error) {
	n := v.Len()
	out, _ := bitvec.New(n)
	if n == 0 {
		return out, nil
	}

	for i := 0; i < n; i++ {
		left := v.Test((i - 1 + n) % n)
		right := v.Test((i + 1) % n)
		if left != right {
			out.Set(i)
		}
	}
	return out, nil
}

// Rehash slides a window of windowSize bits across v in windowStep-bit
// steps; each window's bits (read as a little-endian int32, zero-padded
// if short) reseed a fresh RNG that draws k indices uniformly from
// [0, v.Len()), setting each one in the result.
func Rehash(windowSize, windowStep, k int) HardenerFn {
	return func(v *bitvec.BitVector) (*bitvec.BitVector, error) {
		out := v.Clone()
		n := v.Len()

		for start := 0; start+windowSize <= n; start += windowStep {
			seed := windowSeed(v, start, windowSize)
			rng := rand.New(rand.NewSource(seed))

			for i := 0; i < k; i++ {
				idx := rng.Intn(n)
				out.Set(idx)
			}
		}
		return out, nil
	}
}

// windowSeed reads windowSize bits starting at start as big-endian
// bytes (matching this module's bit-numbering convention), zero-pads to
// at least 4 bytes, and interprets the first 4 as a little-endian
// signed int32.
func windowSeed(v *bitvec.BitVector, start, windowSize int) int64 {
	byteLen := (windowSize + 7) / 8
	if byteLen < 4 {
		byteLen = 4
	}
	raw := make([]byte, byteLen)

	for i := 0; i < windowSize; i++ {
		if v.Test(start + i) {
			raw[i/8] |= 1 << (7 - uint(i%8))
		}
	}

	return int64(int32(binary.LittleEndian.Uint32(raw[0:4])))
}

func setOrClear(v *bitvec.BitVector, i int, on bool) {
	if on {
		v.Set(i)
	} else {
		v.Clear(i)
	}
}
