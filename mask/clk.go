package mask

import "github.com/datatrails/go-pprl/bitvec"

// maskCLK builds a single filter of cfg.Filter.FilterSize bits, inserting
// every configured static attribute's tokens using the filter's shared
// hash_values (k).
func maskCLK(cfg Config, entity Entity) (*bitvec.BitVector, error) {
	if len(cfg.StaticAttributes) == 0 {
		return nil, ErrNoAttributes
	}

	v, err := bitvec.New(cfg.Filter.FilterSize)
	if err != nil {
		return nil, err
	}

	for _, attr := range cfg.StaticAttributes {
		value, ok := entity.Attributes[attr.AttributeName]
		if !ok {
			return nil, ErrMissingAttribute
		}

		salt, err := resolveSalt(attr.Salt, entity.Attributes)
		if err != nil {
			return nil, err
		}

		if err := insertTokens(
			v, cfg.Hash, cfg.Strategy, cfg.Filter.HashValues,
			value, salt, attr.AttributeName, attr.PrependAttributeName,
			cfg.TokenSize, cfg.TokenPadding,
		); err != nil {
			return nil, err
		}
	}

	return v, nil
}
