package mask

import (
	"math"

	"github.com/datatrails/go-pprl/bitvec"
)

// maskCLKRBF builds a single shared filter, sized from every weighted
// attribute's own effective k (derived from its weight relative to the
// smallest configured weight) and average token count.
func maskCLKRBF(cfg Config, entity Entity) (*bitvec.BitVector, error) {
	attrs := cfg.WeightedAttributes
	if len(attrs) == 0 {
		return nil, ErrNoWeightedAttrs
	}

	minWeight := attrs[0].Weight
	for _, a := range attrs[1:] {
		if a.Weight < minWeight {
			minWeight = a.Weight
		}
	}

	baseK := cfg.Filter.HashValues
	effectiveK := make(map[string]int, len(attrs))
	expectedInsertions := 0.0
	for _, a := range attrs {
		k := int(math.Ceil(float64(baseK) * a.Weight / minWeight))
		effectiveK[a.AttributeName] = k
		expectedInsertions += float64(k) * a.AverageTokenCount
	}

	filterSize, err := OptimalSize(0.5, expectedInsertions)
	if err != nil {
		return nil, err
	}

	v, err := bitvec.New(filterSize)
	if err != nil {
		return nil, err
	}

	for _, attr := range attrs {
		value, ok := entity.Attributes[attr.AttributeName]
		if !ok {
			return nil, ErrMissingAttribute
		}

		salt, err := resolveSalt(attr.Salt, entity.Attributes)
		if err != nil {
			return nil, err
		}

		if err := insertTokens(
			v, cfg.Hash, cfg.Strategy, effectiveK[attr.AttributeName],
			value, salt, attr.AttributeName, attr.PrependAttributeName,
			cfg.TokenSize, cfg.TokenPadding,
		); err != nil {
			return nil, err
		}
	}

	return v, nil
}
