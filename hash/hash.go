// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package hash provides the algebraic hash suites consumed by the STARK
// verification pipeline. A suite bundles a hash function over digests and
// BabyBear field elements with the Fiat-Shamir challenge RNG the proof was
// produced with. Three suites are defined: "sha-256", "poseidon2" and
// "blake2b"; lookup is by those exact names.
package hash

import (
	"github.com/luxfi/zkvm/babybear"
	"github.com/luxfi/zkvm/digest"
)

// Suite names, as they appear in receipts.
const (
	Sha256Name    = "sha-256"
	Poseidon2Name = "poseidon2"
	Blake2bName   = "blake2b"
)

// Fn hashes digests and field-element slices.
type Fn interface {
	// HashPair combines two digests into one.
	HashPair(a, b digest.Digest) digest.Digest
	// HashElems hashes a slice of base field elements.
	HashElems(elems []babybear.Elem) digest.Digest
	// HashExtElems hashes a slice of extension field elements.
	HashExtElems(elems []babybear.ExtElem) digest.Digest
}

// Rng is the deterministic challenge stream used by the STARK engine.
type Rng interface {
	// Mix folds a commitment into the stream state.
	Mix(d digest.Digest)
	// RandomBits samples the requested number of low bits.
	RandomBits(bits uint) uint32
	// RandomElem samples a base field element.
	RandomElem() babybear.Elem
	// RandomExtElem samples an extension field element.
	RandomExtElem() babybear.ExtElem
}

// RngFactory mints fresh challenge streams.
type RngFactory interface {
	NewRng() Rng
}

// Suite is a named hash function plus its challenge RNG factory.
type Suite struct {
	Name string
	Fn   Fn
	Rng  RngFactory
}

// DefaultSuites returns the three standard suites keyed by name. The map is
// freshly allocated so a caller may replace entries (e.g. inject a native
// poseidon2) without affecting other contexts.
func DefaultSuites() map[string]*Suite {
	return map[string]*Suite{
		Blake2bName:   NewBlake2bSuite(),
		Poseidon2Name: NewPoseidon2Suite(),
		Sha256Name:    NewSha256Suite(),
	}
}
