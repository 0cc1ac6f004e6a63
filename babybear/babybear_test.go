// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package babybear

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRoundTrip(t *testing.T) {
	for _, v := range []uint32{0, 1, 2, 255, 0xffff, P - 1} {
		require.Equal(t, v, New(v).AsU32(), "value %d", v)
	}
	// Inputs at or above the modulus reduce.
	require.Equal(t, uint32(0), New(P).AsU32())
	require.Equal(t, uint32(1), New(P+1).AsU32())
}

func TestRawRoundTrip(t *testing.T) {
	e := New(123456)
	raw := e.AsU32Mont()
	require.True(t, NewRaw(raw).IsReduced())
	require.Equal(t, e, NewRaw(raw))
	require.Equal(t, uint32(123456), NewRaw(raw).AsU32())
}

func TestIsReduced(t *testing.T) {
	require.True(t, NewRaw(P-1).IsReduced())
	require.False(t, NewRaw(P).IsReduced())
	require.False(t, NewRaw(0xffffffff).IsReduced())
}

func TestFieldArithmetic(t *testing.T) {
	a := New(1234567)
	b := New(7654321)

	require.Equal(t, uint32(8888888), a.Add(b).AsU32())
	require.Equal(t, b.Add(a), a.Add(b))
	require.Equal(t, a, a.Add(Zero))
	require.Equal(t, Zero, a.Sub(a))
	require.Equal(t, a, a.Sub(b).Add(b))

	// Wrap-around.
	require.Equal(t, uint32(P-1), New(P-2).Add(New(1)).AsU32())
	require.Equal(t, uint32(0), New(P-1).Add(New(1)).AsU32())
	require.Equal(t, uint32(P-1), Zero.Sub(New(1)).AsU32())

	require.Equal(t, a, a.Mul(New(1)))
	require.Equal(t, Zero, a.Mul(Zero))
	require.Equal(t, uint32(15), New(3).Mul(New(5)).AsU32())
	require.Equal(t, b.Mul(a), a.Mul(b))
}

func TestMulMatchesBigIntReference(t *testing.T) {
	// 2^31 * 2^31 = 2^62 mod p.
	big := New(1 << 31)
	got := big.Mul(big).AsU32()
	// 2^62 mod 2013265921 computed independently.
	want := uint32(1)
	for i := 0; i < 62; i++ {
		want = uint32((uint64(want) * 2) % uint64(P))
	}
	require.Equal(t, want, got)
}

func TestPow(t *testing.T) {
	require.Equal(t, uint32(1), New(5).Pow(0).AsU32())
	require.Equal(t, uint32(5), New(5).Pow(1).AsU32())
	require.Equal(t, uint32(3125), New(5).Pow(5).AsU32())
	// Fermat: a^(p-1) = 1.
	require.Equal(t, uint32(1), New(987654321).Pow(P-1).AsU32())
}

func TestExtElemSubElems(t *testing.T) {
	x := ExtElem{New(1), New(2), New(3), New(4)}
	subs := x.SubElems()
	require.Len(t, subs, ExtDegree)
	for i, s := range subs {
		require.Equal(t, uint32(i+1), s.AsU32())
	}
}
