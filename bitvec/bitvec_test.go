package bitvec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetTestPopcount(t *testing.T) {
	v, err := New(16)
	require.NoError(t, err)

	v.Set(0)
	v.Set(15)
	v.Set(7)

	require.True(t, v.Test(0))
	require.True(t, v.Test(7))
	require.True(t, v.Test(15))
	require.False(t, v.Test(1))
	require.Equal(t, 3, v.Popcount())
}

func TestClear(t *testing.T) {
	v, _ := New(8)
	v.Set(3)
	require.True(t, v.Test(3))
	v.Clear(3)
	require.False(t, v.Test(3))
}

func TestAndOrXor(t *testing.T) {
	a, _ := New(8)
	b, _ := New(8)
	a.Set(0)
	a.Set(1)
	b.Set(1)
	b.Set(2)

	and, err := And(a, b)
	require.NoError(t, err)
	require.Equal(t, 1, and.Popcount())
	require.True(t, and.Test(1))

	or, err := Or(a, b)
	require.NoError(t, err)
	require.Equal(t, 3, or.Popcount())

	xor, err := Xor(a, b)
	require.NoError(t, err)
	require.Equal(t, 2, xor.Popcount())
	require.True(t, xor.Test(0))
	require.True(t, xor.Test(2))
}

func TestBinaryOpLengthMismatch(t *testing.T) {
	a, _ := New(8)
	b, _ := New(16)

	_, err := And(a, b)
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestConcatAndHalves(t *testing.T) {
	a, _ := New(4)
	a.Set(0)
	b, _ := New(4)
	b.Set(3)

	full := Concat(a, b)
	require.Equal(t, 8, full.Len())
	require.True(t, full.Test(0))
	require.True(t, full.Test(7))

	left, right, err := Halves(full)
	require.NoError(t, err)
	require.True(t, left.Test(0))
	require.True(t, right.Test(3))
}

func TestHalvesOddLength(t *testing.T) {
	v, _ := New(5)
	_, _, err := Halves(v)
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestBase64RoundTrip(t *testing.T) {
	v, _ := New(64)
	for _, i := range []int{1, 6, 8, 14, 17, 23, 33, 38, 42, 47, 50, 56, 62} {
		v.Set(i)
	}

	encoded, err := ToBase64(v)
	require.NoError(t, err)

	decoded, err := FromBase64(encoded)
	require.NoError(t, err)
	require.Equal(t, v.Bytes(), decoded.Bytes())
}

func TestToBase64PadsUnalignedLength(t *testing.T) {
	v, _ := New(12)
	v.Set(0)
	v.Set(11)

	encoded, err := ToBase64(v)
	require.NoError(t, err)

	decoded, err := FromBase64(encoded)
	require.NoError(t, err)
	require.Equal(t, 16, decoded.Len())
	require.True(t, decoded.Test(0))
	require.True(t, decoded.Test(11))
}
