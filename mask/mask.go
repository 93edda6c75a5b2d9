package mask

import "github.com/datatrails/go-pprl/bitvec"

// Mask builds and hardens the bit vector for one entity under cfg.
func Mask(cfg Config, entity Entity) (*bitvec.BitVector, error) {
	var v *bitvec.BitVector
	var err error

	switch cfg.Filter.Kind {
	case FilterCLK:
		v, err = maskCLK(cfg, entity)
	case FilterRBF:
		v, err = maskRBF(cfg, entity)
	case FilterCLKRBF:
		v, err = maskCLKRBF(cfg, entity)
	default:
		return nil, ErrUnknownFilterKind
	}
	if err != nil {
		return nil, err
	}

	return Chain(cfg.Hardeners, v)
}

// MaskAll masks every entity in entities under cfg, stopping at the
// first error.
func MaskAll(cfg Config, entities []Entity) (map[string]*bitvec.BitVector, error) {
	out := make(map[string]*bitvec.BitVector, len(entities))
	for _, e := range entities {
		v, err := Mask(cfg, e)
		if err != nil {
			return nil, err
		}
		out[e.ID] = v
	}
	return out, nil
}
