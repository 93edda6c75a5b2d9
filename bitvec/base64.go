package bitvec

import "encoding/base64"

// ToBase64 encodes v's underlying bytes as standard base64. v's storage
// is already rounded up to a whole number of bytes with the unused
// trailing bits zeroed, so a vector whose length isn't a multiple of 8
// encodes cleanly with no separate padding step.
func ToBase64(v *BitVector) (string, error) {
	return base64.StdEncoding.EncodeToString(v.bits), nil
}

// FromBase64 decodes s into a BitVector of 8*len(decoded) bits.
func FromBase64(s string) (*BitVector, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, err
	}
	v, err := New(len(raw) * 8)
	if err != nil {
		return nil, err
	}
	v.SetBytes(raw)
	return v, nil
}
