package hashscheme

import "encoding/binary"

// Seeds holds the four little-endian signed 32-bit integers extracted
// from the first 16 bytes of a digest.
type Seeds struct {
	I0, I1, I2, I3 int32
}

// Destructure reads the first 16 bytes of digest as four little-endian
// signed int32 values.
func Destructure(digest []byte) (Seeds, error) {
	if len(digest) < 16 {
		return Seeds{}, ErrShortDigest
	}
	return Seeds{
		I0: int32(binary.LittleEndian.Uint32(digest[0:4])),
		I1: int32(binary.LittleEndian.Uint32(digest[4:8])),
		I2: int32(binary.LittleEndian.Uint32(digest[8:12])),
		I3: int32(binary.LittleEndian.Uint32(digest[12:16])),
	}, nil
}

// DoubleSeeds combines s into the (h0, h1) pair double_hash and
// enhanced_double_hash both consume.
func (s Seeds) DoubleSeeds() (h0, h1 int64) {
	return int64(s.I0 ^ s.I1), int64(s.I2 ^ s.I3)
}

// TripleSeeds combines s into the (h0, h1, h2) triple triple_hash consumes.
func (s Seeds) TripleSeeds() (h0, h1, h2 int64) {
	return int64(s.I0), int64(s.I1), int64(s.I2 ^ s.I3)
}

// RandomSeed combines s into the single seed random_hash consumes.
func (s Seeds) RandomSeed() int64 {
	return int64(s.I0 ^ s.I1 ^ s.I2 ^ s.I3)
}
