package codec

// Codec wraps a matched encode/decode mode pair.
type Codec struct {
	Enc interface {
		Marshal(v any) ([]byte, error)
	}
	Dec interface {
		Unmarshal(data []byte, v any) error
	}
}

// New builds a Codec using this package's standard deterministic CBOR
// modes.
func New() (Codec, error) {
	enc, err := NewEncMode()
	if err != nil {
		return Codec{}, err
	}
	dec, err := NewDecMode()
	if err != nil {
		return Codec{}, err
	}
	return Codec{Enc: enc, Dec: dec}, nil
}
