package mask

import (
	"math"
	"math/rand"
	"sort"

	"github.com/datatrails/go-pprl/bitvec"
)

// maskRBF builds one sub-filter per weighted attribute, sized
// independently, then samples bits from each sub-filter proportionally
// to attribute weight into one parent filter.
func maskRBF(cfg Config, entity Entity) (*bitvec.BitVector, error) {
	attrs := cfg.WeightedAttributes
	if len(attrs) == 0 {
		return nil, ErrNoWeightedAttrs
	}

	sorted := make([]WeightedAttributeConfig, len(attrs))
	copy(sorted, attrs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].AttributeName < sorted[j].AttributeName })

	totalWeight := 0.0
	for _, a := range sorted {
		totalWeight += a.Weight
	}

	subFilterSize := make(map[string]int, len(sorted))
	parentSize := 0
	for _, a := range sorted {
		size, err := OptimalSize(0.5, a.AverageTokenCount*float64(cfg.Filter.HashValues))
		if err != nil {
			return nil, err
		}
		subFilterSize[a.AttributeName] = size

		candidate := int(math.Ceil(float64(size) * totalWeight / a.Weight))
		if candidate > parentSize {
			parentSize = candidate
		}
	}

	subFilters := make(map[string]*bitvec.BitVector, len(sorted))
	for _, a := range sorted {
		value, ok := entity.Attributes[a.AttributeName]
		if !ok {
			return nil, ErrMissingAttribute
		}

		salt, err := resolveSalt(a.Salt, entity.Attributes)
		if err != nil {
			return nil, err
		}

		sub, err := bitvec.New(subFilterSize[a.AttributeName])
		if err != nil {
			return nil, err
		}

		if err := insertTokens(
			sub, cfg.Hash, cfg.Strategy, cfg.Filter.HashValues,
			value, salt, a.AttributeName, a.PrependAttributeName,
			cfg.TokenSize, cfg.TokenPadding,
		); err != nil {
			return nil, err
		}

		subFilters[a.AttributeName] = sub
	}

	parent, err := bitvec.New(parentSize)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Filter.Seed))
	offset := 0
	for _, a := range sorted {
		sub := subFilters[a.AttributeName]
		attrBitsInParent := int(math.Floor(a.Weight / totalWeight * float64(parentSize)))

		for i := 0; i < attrBitsInParent; i++ {
			idx := rng.Intn(sub.Len())
			if sub.Test(idx) {
				parent.Set(offset + idx)
			}
		}
		offset += attrBitsInParent
	}

	return parent, nil
}
