package bigint_test

import (
	"testing"

	"github.com/rcauth-eu/privkeysplit/bigint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ToBytesBE_FromBytesBE_RoundTrip(t *testing.T) {
	t.Parallel()

	cases := []uint64{0, 1, 255, 256, 65535, 1 << 20, 1<<32 - 1, 1 << 40}

	for _, v := range cases {
		in := bigint.FromUint64(v)
		out := bigint.FromBytesBE(in.ToBytesBE())
		assert.True(t, bigint.Equal(in, out), "round-trip mismatch for %d", v)
	}
}

func Test_ToBytesBE_ZeroIsSingleByte(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []byte{0}, bigint.Zero().ToBytesBE())
}

func Test_ToBytesBE_ShortestEncoding(t *testing.T) {
	t.Parallel()

	b := bigint.FromUint64(0xB0).ToBytesBE()
	assert.Equal(t, []byte{0xB0}, b)
}

func Test_Cmp_Ordering(t *testing.T) {
	t.Parallel()

	a := bigint.FromUint64(10)
	b := bigint.FromUint64(20)

	assert.Equal(t, -1, bigint.Cmp(a, b))
	assert.Equal(t, 1, bigint.Cmp(b, a))
	assert.Equal(t, 0, bigint.Cmp(a, a))
}

func Test_Add_Sub(t *testing.T) {
	t.Parallel()

	a := bigint.FromUint64(1 << 40)
	b := bigint.FromUint64(12345)

	sum := bigint.Add(a, b)
	back := bigint.Sub(sum, b)

	assert.True(t, bigint.Equal(a, back))
}

func Test_Mul(t *testing.T) {
	t.Parallel()

	a := bigint.FromUint64(61)
	b := bigint.FromUint64(53)

	assert.True(t, bigint.Equal(bigint.FromUint64(3233), bigint.Mul(a, b)))
}

func Test_DivMod(t *testing.T) {
	t.Parallel()

	n := bigint.FromUint64(3233)
	p := bigint.FromUint64(61)

	q, r, err := bigint.DivMod(n, p)
	require.NoError(t, err)
	assert.True(t, r.IsZero())
	assert.True(t, bigint.Equal(q, bigint.FromUint64(53)))
}

func Test_DivMod_DivideByZero(t *testing.T) {
	t.Parallel()

	_, _, err := bigint.DivMod(bigint.FromUint64(1), bigint.Zero())
	assert.ErrorIs(t, err, bigint.ErrDivideByZero)
}

func Test_ShlShr_RoundTrip(t *testing.T) {
	t.Parallel()

	a := bigint.FromUint64(12345)
	shifted := bigint.Shl(a, 37)
	back := bigint.Shr(shifted, 37)

	assert.True(t, bigint.Equal(a, back))
}

func Test_BitLen(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, bigint.Zero().BitLen())
	assert.Equal(t, 1, bigint.One().BitLen())
	assert.Equal(t, 8, bigint.FromUint64(0xB0).BitLen())
}

func Test_Inv_CoprimeRoundTrip(t *testing.T) {
	t.Parallel()

	k := bigint.FromUint64(17)
	m := bigint.FromUint64(3120)

	r, err := bigint.Inv(k, m)
	require.NoError(t, err)
	assert.True(t, bigint.Equal(r, bigint.FromUint64(2753)))

	prod, err := bigint.Mod(bigint.Mul(k, r), m)
	require.NoError(t, err)
	assert.True(t, bigint.Equal(prod, bigint.One()))
}

func Test_Inv_NotCoprime(t *testing.T) {
	t.Parallel()

	_, err := bigint.Inv(bigint.FromUint64(4), bigint.FromUint64(8))
	assert.ErrorIs(t, err, bigint.ErrNotInvertible)
}

func Test_PowMod(t *testing.T) {
	t.Parallel()

	// 65^17 mod 3233, then ^2753 mod 3233, should recover 65 (textbook RSA).
	enc, err := bigint.PowMod(bigint.FromUint64(65), bigint.IntFromUInt(bigint.FromUint64(17)), bigint.FromUint64(3233))
	require.NoError(t, err)

	dec, err := bigint.PowMod(enc, bigint.IntFromUInt(bigint.FromUint64(2753)), bigint.FromUint64(3233))
	require.NoError(t, err)

	assert.True(t, bigint.Equal(dec, bigint.FromUint64(65)))
}

func Test_PowMod_NegativeExponent(t *testing.T) {
	t.Parallel()

	neg := bigint.Int{Neg: true, Mag: bigint.One()}

	_, err := bigint.PowMod(bigint.FromUint64(2), neg, bigint.FromUint64(5))
	assert.ErrorIs(t, err, bigint.ErrNegativeExponent)
}
