// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hash

import (
	"github.com/luxfi/zkvm/babybear"
	"github.com/luxfi/zkvm/digest"
	"github.com/luxfi/zkvm/poseidon2"
)

// Poseidon2Mix abstracts the raw Poseidon2 permutation so an alternative
// implementation (typically a native one reached across a runtime boundary)
// can replace the built-in permutation. Implementations must be safe for
// concurrent use.
type Poseidon2Mix interface {
	Poseidon2Mix(cells *[poseidon2.Cells]babybear.Elem)
}

// Poseidon2MixFunc adapts a plain function to Poseidon2Mix.
type Poseidon2MixFunc func(cells *[poseidon2.Cells]babybear.Elem)

func (f Poseidon2MixFunc) Poseidon2Mix(cells *[poseidon2.Cells]babybear.Elem) {
	f(cells)
}

// NewPoseidon2Suite returns the "poseidon2" hash suite backed by the
// built-in permutation.
func NewPoseidon2Suite() *Suite {
	return &Suite{
		Name: Poseidon2Name,
		Fn:   NewPoseidon2Fn(Poseidon2MixFunc(poseidon2.Mix)),
		Rng:  poseidon2RngFactory{},
	}
}

// NewPoseidon2Fn wraps a permutation into the three hash operations via an
// unpadded sponge: absorb rate-sized chunks, permute between them, emit the
// first CellsOut elements as the digest (one reduced Montgomery word each).
//
// Because the sponge is unpadded it is not collision resistant across
// inputs of different lengths; every call site feeds it protocol-fixed
// lengths only.
func NewPoseidon2Fn(mix Poseidon2Mix) Fn {
	return &poseidon2Fn{mix: mix}
}

type poseidon2Fn struct {
	mix Poseidon2Mix
}

func (f *poseidon2Fn) unpaddedHash(elems []babybear.Elem) digest.Digest {
	var state [poseidon2.Cells]babybear.Elem
	unmixed := 0
	for _, e := range elems {
		state[unmixed] = e
		unmixed++
		if unmixed == poseidon2.CellsRate {
			f.mix.Poseidon2Mix(&state)
			unmixed = 0
		}
	}
	if unmixed != 0 || len(elems) == 0 {
		// Zero pad up to the absorption rate before the final permutation.
		for i := unmixed; i < poseidon2.CellsRate; i++ {
			state[i] = babybear.Zero
		}
		f.mix.Poseidon2Mix(&state)
	}

	var d digest.Digest
	for i := 0; i < poseidon2.CellsOut; i++ {
		d[i] = state[i].AsU32Mont()
	}
	return d
}

func (f *poseidon2Fn) HashPair(a, b digest.Digest) digest.Digest {
	elems := make([]babybear.Elem, 0, 2*digest.Words)
	for _, w := range a {
		elems = append(elems, babybear.NewRaw(w))
	}
	for _, w := range b {
		elems = append(elems, babybear.NewRaw(w))
	}
	return f.unpaddedHash(elems)
}

func (f *poseidon2Fn) HashElems(elems []babybear.Elem) digest.Digest {
	return f.unpaddedHash(elems)
}

func (f *poseidon2Fn) HashExtElems(elems []babybear.ExtElem) digest.Digest {
	flat := make([]babybear.Elem, 0, len(elems)*babybear.ExtDegree)
	for _, e := range elems {
		flat = append(flat, e.SubElems()...)
	}
	return f.unpaddedHash(flat)
}

// poseidon2RngFactory builds a sponge-based challenge stream over the
// built-in permutation.
type poseidon2RngFactory struct{}

func (poseidon2RngFactory) NewRng() Rng {
	return &poseidon2Rng{}
}

type poseidon2Rng struct {
	cells [poseidon2.Cells]babybear.Elem
	used  int
}

func (r *poseidon2Rng) Mix(d digest.Digest) {
	for i := 0; i < digest.Words; i++ {
		r.cells[i] = r.cells[i].Add(babybear.NewRaw(d[i] % babybear.P))
	}
	poseidon2.Mix(&r.cells)
	r.used = 0
}

func (r *poseidon2Rng) squeeze() babybear.Elem {
	if r.used == poseidon2.CellsRate {
		poseidon2.Mix(&r.cells)
		r.used = 0
	}
	e := r.cells[r.used]
	r.used++
	return e
}

func (r *poseidon2Rng) RandomBits(bits uint) uint32 {
	return r.squeeze().AsU32() & ((1 << bits) - 1)
}

func (r *poseidon2Rng) RandomElem() babybear.Elem {
	return r.squeeze()
}

func (r *poseidon2Rng) RandomExtElem() babybear.ExtElem {
	var out babybear.ExtElem
	for i := range out {
		out[i] = r.squeeze()
	}
	return out
}
