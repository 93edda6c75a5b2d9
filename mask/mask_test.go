package mask

import (
	"testing"

	"github.com/datatrails/go-pprl/hashscheme"
	"github.com/stretchr/testify/require"
)

func basicHashFn() HashFunction {
	return HashFunction{Algorithms: []DigestAlgorithm{DigestSHA256}}
}

func TestMaskCLK(t *testing.T) {
	cfg := Config{
		Hash:     basicHashFn(),
		Strategy: hashscheme.DoubleHash,
		Filter:   FilterSpec{Kind: FilterCLK, FilterSize: 256, HashValues: 10},
		StaticAttributes: []StaticAttributeConfig{
			{AttributeName: "first_name"},
			{AttributeName: "last_name"},
		},
		TokenSize:    2,
		TokenPadding: '_',
	}
	entity := Entity{ID: "1", Attributes: map[string]string{
		"first_name": "john",
		"last_name":  "smith",
	}}

	v, err := Mask(cfg, entity)
	require.NoError(t, err)
	require.Equal(t, 256, v.Len())
	require.Greater(t, v.Popcount(), 0)
}

func TestMaskCLKDeterministic(t *testing.T) {
	cfg := Config{
		Hash:     basicHashFn(),
		Strategy: hashscheme.TripleHash,
		Filter:   FilterSpec{Kind: FilterCLK, FilterSize: 128, HashValues: 5},
		StaticAttributes: []StaticAttributeConfig{
			{AttributeName: "name"},
		},
		TokenSize:    2,
		TokenPadding: '_',
	}
	entity := Entity{ID: "1", Attributes: map[string]string{"name": "alice"}}

	v1, err := Mask(cfg, entity)
	require.NoError(t, err)
	v2, err := Mask(cfg, entity)
	require.NoError(t, err)
	require.Equal(t, v1.Bytes(), v2.Bytes())
}

func TestMaskCLKRBF(t *testing.T) {
	cfg := Config{
		Hash:     basicHashFn(),
		Strategy: hashscheme.EnhancedDoubleHash,
		Filter:   FilterSpec{Kind: FilterCLKRBF, HashValues: 10},
		WeightedAttributes: []WeightedAttributeConfig{
			{AttributeName: "first_name", Weight: 1, AverageTokenCount: 5},
			{AttributeName: "last_name", Weight: 2, AverageTokenCount: 6},
		},
		TokenSize:    2,
		TokenPadding: '_',
	}
	entity := Entity{ID: "1", Attributes: map[string]string{
		"first_name": "john",
		"last_name":  "smith",
	}}

	v, err := Mask(cfg, entity)
	require.NoError(t, err)
	require.Greater(t, v.Len(), 0)
}

func TestMaskRBF(t *testing.T) {
	cfg := Config{
		Hash:     basicHashFn(),
		Strategy: hashscheme.DoubleHash,
		Filter:   FilterSpec{Kind: FilterRBF, HashValues: 10, Seed: 99},
		WeightedAttributes: []WeightedAttributeConfig{
			{AttributeName: "first_name", Weight: 1, AverageTokenCount: 5},
			{AttributeName: "last_name", Weight: 2, AverageTokenCount: 6},
		},
		TokenSize:    2,
		TokenPadding: '_',
	}
	entity := Entity{ID: "1", Attributes: map[string]string{
		"first_name": "john",
		"last_name":  "smith",
	}}

	v, err := Mask(cfg, entity)
	require.NoError(t, err)
	require.Greater(t, v.Len(), 0)
}

func TestMaskMissingAttribute(t *testing.T) {
	cfg := Config{
		Hash:     basicHashFn(),
		Strategy: hashscheme.DoubleHash,
		Filter:   FilterSpec{Kind: FilterCLK, FilterSize: 64, HashValues: 5},
		StaticAttributes: []StaticAttributeConfig{
			{AttributeName: "missing"},
		},
		TokenSize:    2,
		TokenPadding: '_',
	}
	entity := Entity{ID: "1", Attributes: map[string]string{}}

	_, err := Mask(cfg, entity)
	require.ErrorIs(t, err, ErrMissingAttribute)
}

func TestOptimalSizeWorkedExample(t *testing.T) {
	size, err := OptimalSize(0.5, 2)
	require.NoError(t, err)
	require.Equal(t, 3, size)
}

func TestOptimalSize(t *testing.T) {
	size, err := OptimalSize(0.5, 10)
	require.NoError(t, err)
	require.Greater(t, size, 0)

	_, err = OptimalSize(0.5, 0)
	require.ErrorIs(t, err, ErrBadExpectedInsertions)

	_, err = OptimalSize(1.5, 10)
	require.ErrorIs(t, err, ErrBadSetBitFraction)

	_, err = OptimalSize(0, 10)
	require.ErrorIs(t, err, ErrBadSetBitFraction)
}

func TestDigestChainAndHMAC(t *testing.T) {
	plain, err := Digest(HashFunction{Algorithms: []DigestAlgorithm{DigestSHA256}}, "hello")
	require.NoError(t, err)
	require.Len(t, plain, 32)

	keyed, err := Digest(HashFunction{Algorithms: []DigestAlgorithm{DigestSHA256}, Key: []byte("k")}, "hello")
	require.NoError(t, err)
	require.NotEqual(t, plain, keyed)

	chained, err := Digest(HashFunction{Algorithms: []DigestAlgorithm{DigestSHA256, DigestMD5}}, "hello")
	require.NoError(t, err)
	require.Len(t, chained, 16)
}
