package hashscheme

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDoublePositionsWorkedExample(t *testing.T) {
	positions, err := DoublePositions(13, 37, 5, 32)
	require.NoError(t, err)
	require.Equal(t, []int{13, 18, 23, 28, 1}, positions)
}

func TestTriplePositionsWorkedExample(t *testing.T) {
	positions, err := TriplePositions(13, 37, 7, 5, 1000)
	require.NoError(t, err)
	require.Equal(t, []int{13, 50, 94, 152, 231}, positions)
}

func TestDestructure(t *testing.T) {
	digest := append(
		append(append([]byte{0x01, 0x01, 0x01, 0x01}, 0x23, 0x23, 0x23, 0x23),
			0x45, 0x45, 0x45, 0x45),
		0x67, 0x67, 0x67, 0x67)

	seeds, err := Destructure(digest)
	require.NoError(t, err)
	require.Equal(t, int32(0x01010101), seeds.I0)
	require.Equal(t, int32(0x23232323), seeds.I1)
	require.Equal(t, int32(0x45454545), seeds.I2)
	require.Equal(t, int32(0x67676767), seeds.I3)
}

func TestDestructureShortDigest(t *testing.T) {
	_, err := Destructure(make([]byte, 8))
	require.ErrorIs(t, err, ErrShortDigest)
}

func TestPositionsAllBoundedAndDeterministic(t *testing.T) {
	digest := make([]byte, 16)
	for i := range digest {
		digest[i] = byte(i * 17)
	}

	for _, scheme := range []Scheme{DoubleHash, EnhancedDoubleHash, TripleHash, RandomHash} {
		positions1, err := Positions(scheme, digest, 8, 64)
		require.NoError(t, err)
		positions2, err := Positions(scheme, digest, 8, 64)
		require.NoError(t, err)
		require.Equal(t, positions1, positions2, "scheme %s must be deterministic", scheme)
		require.Len(t, positions1, 8)
		for _, p := range positions1 {
			require.GreaterOrEqual(t, p, 0)
			require.Less(t, p, 64)
		}
	}
}

func TestPositionsUnknownScheme(t *testing.T) {
	_, err := Positions(Scheme("bogus"), make([]byte, 16), 4, 16)
	require.ErrorIs(t, err, ErrUnknownScheme)
}
