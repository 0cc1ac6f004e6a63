// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package babybear implements arithmetic over the BabyBear prime field
// p = 15*2^27 + 1, the base field of the zkVM STARK circuits.
//
// Elements are kept in Montgomery form (R = 2^32), matching the encoding
// used inside STARK seals: a seal word is the raw Montgomery representation
// of a field element, so NewRaw/AsU32Mont move words across that boundary
// without any conversion cost.
package babybear

// P is the BabyBear prime modulus.
const P uint32 = 2013265921 // 15 * 2^27 + 1

const (
	// m = p^-1 mod 2^32, used by Montgomery reduction.
	m uint32 = 0x88000001
	// r2 = (2^32)^2 mod p, used to enter Montgomery form.
	r2 uint32 = 1172168163
)

// ExtDegree is the degree of the field extension used for STARK challenges.
const ExtDegree = 4

// Elem is a BabyBear field element in Montgomery form.
type Elem uint32

// Zero is the additive identity.
const Zero Elem = 0

// New reduces v modulo p and converts it into Montgomery form.
func New(v uint32) Elem {
	return Elem(montMul(v%P, r2))
}

// NewRaw reinterprets a raw Montgomery word as an element. The word is
// taken as-is; callers gate on IsReduced when the word crosses a trust
// boundary (e.g. seal decoding).
func NewRaw(v uint32) Elem {
	return Elem(v)
}

// IsReduced reports whether the raw Montgomery word is below the modulus.
func (e Elem) IsReduced() bool {
	return uint32(e) < P
}

// AsU32 converts the element out of Montgomery form to its canonical value.
func (e Elem) AsU32() uint32 {
	return montMul(uint32(e), 1)
}

// AsU32Mont returns the raw Montgomery word.
func (e Elem) AsU32Mont() uint32 {
	return uint32(e)
}

// Add returns e + o.
func (e Elem) Add(o Elem) Elem {
	s := uint32(e) + uint32(o)
	if s >= P {
		s -= P
	}
	return Elem(s)
}

// Sub returns e - o.
func (e Elem) Sub(o Elem) Elem {
	if uint32(e) >= uint32(o) {
		return Elem(uint32(e) - uint32(o))
	}
	return Elem(P - (uint32(o) - uint32(e)))
}

// Mul returns e * o.
func (e Elem) Mul(o Elem) Elem {
	return Elem(montMul(uint32(e), uint32(o)))
}

// Pow returns e raised to the given exponent.
func (e Elem) Pow(exp uint32) Elem {
	result := New(1)
	base := e
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		exp >>= 1
	}
	return result
}

// montMul computes a*b*R^-1 mod p for Montgomery-form operands.
func montMul(a, b uint32) uint32 {
	o := uint64(a) * uint64(b)
	low := -uint32(o)
	red := m * low
	o += uint64(red) * uint64(P)
	ret := uint32(o >> 32)
	if ret >= P {
		ret -= P
	}
	return ret
}

// ExtElem is an element of the degree-4 extension, stored as its base-field
// coefficients. The verifier only ever flattens extension elements into
// their subelements for hashing; no extension arithmetic happens here.
type ExtElem [ExtDegree]Elem

// SubElems returns the base-field coefficients of the extension element.
func (x ExtElem) SubElems() []Elem {
	return []Elem{x[0], x[1], x[2], x[3]}
}
