package mask

import (
	"testing"

	"github.com/datatrails/go-pprl/bitvec"
	"github.com/stretchr/testify/require"
)

func bitsOf(t *testing.T, bits string) *bitvec.BitVector {
	t.Helper()
	v, err := bitvec.New(len(bits))
	require.NoError(t, err)
	for i, c := range bits {
		if c == '1' {
			v.Set(i)
		}
	}
	return v
}

func toBitString(v *bitvec.BitVector) string {
	out := make([]byte, v.Len())
	for i := 0; i < v.Len(); i++ {
		if v.Test(i) {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}
	return string(out)
}

func TestBalanceWorkedExample(t *testing.T) {
	v := bitsOf(t, "1010")
	out, err := Balance(v)
	require.NoError(t, err)
	require.Equal(t, "10100101", toBitString(out))
}

func TestXorFold(t *testing.T) {
	v := bitsOf(t, "1111111110100011")
	out, err := XorFold(v)
	require.NoError(t, err)
	require.Equal(t, "01011100", toBitString(out))
}

func TestXorFoldOddLength(t *testing.T) {
	v := bitsOf(t, "111111111010001")
	out, err := XorFold(v)
	require.NoError(t, err)
	require.Len(t, toBitString(out), 8)
}

func TestRule90WorkedExamples(t *testing.T) {
	out, err := Rule90(bitsOf(t, "10010"))
	require.NoError(t, err)
	require.Equal(t, "01100", toBitString(out))

	out, err = Rule90(bitsOf(t, "0110101"))
	require.NoError(t, err)
	require.Equal(t, "0110000", toBitString(out))
}

func TestPermuteDeterministicAcrossCalls(t *testing.T) {
	v := bitsOf(t, "1100110011001100")

	out1, err := Permute(42)(v)
	require.NoError(t, err)
	out2, err := Permute(42)(v)
	require.NoError(t, err)

	require.Equal(t, toBitString(out1), toBitString(out2))
	require.Equal(t, v.Popcount(), out1.Popcount())
}

func TestPermuteDifferentSeedsDiffer(t *testing.T) {
	v := bitsOf(t, "1100110011001100")

	out1, _ := Permute(1)(v)
	out2, _ := Permute(2)(v)

	require.NotEqual(t, toBitString(out1), toBitString(out2))
}

func TestRandomizedResponseDeterministic(t *testing.T) {
	v := bitsOf(t, "000000000000000000000000000000")

	out1, err := RandomizedResponse(7, 0.5)(v)
	require.NoError(t, err)
	out2, err := RandomizedResponse(7, 0.5)(v)
	require.NoError(t, err)

	require.Equal(t, toBitString(out1), toBitString(out2))
}

func TestRehashDeterministic(t *testing.T) {
	v := bitsOf(t, "0000000000000000000000000000000000000000000000000000000000000000")

	out1, err := Rehash(8, 8, 3)(v)
	require.NoError(t, err)
	out2, err := Rehash(8, 8, 3)(v)
	require.NoError(t, err)

	require.Equal(t, toBitString(out1), toBitString(out2))
}

func TestChainAppliesInOrder(t *testing.T) {
	v := bitsOf(t, "1010")

	out, err := Chain([]HardenerConfig{
		{Kind: HardenerBalance},
		{Kind: HardenerXorFold},
	}, v)
	require.NoError(t, err)
	require.Equal(t, 4, out.Len())
}
