// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package poseidon2 implements the BabyBear Poseidon2 permutation used by
// the zkVM recursion circuits: width 24, sbox degree 7, with 8 external
// (full) rounds split around 21 internal (partial) rounds.
//
// The permutation is the single primitive behind the "poseidon2" hash
// suite. Execution environments with a native implementation (e.g. a host
// runtime backing a Wasm verifier) replace it wholesale through the
// hash.Poseidon2Mix injection point rather than patching this package.
package poseidon2

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/luxfi/zkvm/babybear"
)

const (
	// Cells is the permutation width in field elements.
	Cells = 24
	// CellsRate is the sponge absorption rate.
	CellsRate = 16
	// CellsOut is the number of state elements emitted as a digest.
	CellsOut = 8

	roundsFull    = 8
	roundsPartial = 21
	roundsHalf    = roundsFull / 2
)

var (
	externalConstants [roundsFull][Cells]babybear.Elem
	internalConstants [roundsPartial]babybear.Elem
	internalDiag      [Cells]babybear.Elem
)

func init() {
	stream := newConstantStream("poseidon2:babybear:24")
	for r := 0; r < roundsFull; r++ {
		for i := 0; i < Cells; i++ {
			externalConstants[r][i] = stream.next()
		}
	}
	for r := 0; r < roundsPartial; r++ {
		internalConstants[r] = stream.next()
	}
	for i := 0; i < Cells; i++ {
		internalDiag[i] = stream.next()
	}
}

// constantStream derives round constants by rejection sampling a SHA-256
// counter stream seeded with a domain tag, so the schedule is reproducible
// from the tag alone.
type constantStream struct {
	seed    [32]byte
	counter uint64
	buf     []byte
}

func newConstantStream(tag string) *constantStream {
	return &constantStream{seed: sha256.Sum256([]byte(tag))}
}

func (s *constantStream) next() babybear.Elem {
	for {
		if len(s.buf) < 4 {
			var block [40]byte
			copy(block[:], s.seed[:])
			binary.LittleEndian.PutUint64(block[32:], s.counter)
			s.counter++
			sum := sha256.Sum256(block[:])
			s.buf = append(s.buf, sum[:]...)
		}
		v := binary.LittleEndian.Uint32(s.buf)
		s.buf = s.buf[4:]
		if v < babybear.P {
			return babybear.New(v)
		}
	}
}

// Mix applies the Poseidon2 permutation to the state in place.
func Mix(cells *[Cells]babybear.Elem) {
	externalLayer(cells)
	for r := 0; r < roundsHalf; r++ {
		externalRound(cells, r)
	}
	for r := 0; r < roundsPartial; r++ {
		internalRound(cells, r)
	}
	for r := roundsHalf; r < roundsFull; r++ {
		externalRound(cells, r)
	}
}

func externalRound(cells *[Cells]babybear.Elem, round int) {
	for i := 0; i < Cells; i++ {
		cells[i] = sbox(cells[i].Add(externalConstants[round][i]))
	}
	externalLayer(cells)
}

func internalRound(cells *[Cells]babybear.Elem, round int) {
	cells[0] = sbox(cells[0].Add(internalConstants[round]))
	internalLayer(cells)
}

// sbox is x^7, the smallest power coprime with p-1.
func sbox(x babybear.Elem) babybear.Elem {
	x2 := x.Mul(x)
	x4 := x2.Mul(x2)
	x6 := x4.Mul(x2)
	return x6.Mul(x)
}

// externalLayer multiplies the state by the block-circulant external matrix:
// the M4 kernel applied to each group of four cells, then each cell summed
// with the column totals across groups.
func externalLayer(cells *[Cells]babybear.Elem) {
	for g := 0; g < Cells; g += 4 {
		mulM4(cells[g : g+4 : g+4])
	}
	var sums [4]babybear.Elem
	for g := 0; g < Cells; g += 4 {
		for i := 0; i < 4; i++ {
			sums[i] = sums[i].Add(cells[g+i])
		}
	}
	for g := 0; g < Cells; g += 4 {
		for i := 0; i < 4; i++ {
			cells[g+i] = cells[g+i].Add(sums[i])
		}
	}
}

// mulM4 applies the 4x4 kernel [[5,7,1,3],[4,6,1,1],[1,3,5,7],[1,1,4,6]].
func mulM4(c []babybear.Elem) {
	t0 := c[0].Add(c[1])
	t1 := c[2].Add(c[3])
	t2 := c[1].Add(c[1]).Add(t1)
	t3 := c[3].Add(c[3]).Add(t0)
	t4 := t1.Add(t1).Add(t1).Add(t1).Add(t3)
	t5 := t0.Add(t0).Add(t0).Add(t0).Add(t2)
	t6 := t3.Add(t5)
	t7 := t2.Add(t4)
	c[0] = t6
	c[1] = t5
	c[2] = t7
	c[3] = t4
}

// internalLayer multiplies the state by diag(d) plus the all-ones matrix.
func internalLayer(cells *[Cells]babybear.Elem) {
	var sum babybear.Elem
	for i := 0; i < Cells; i++ {
		sum = sum.Add(cells[i])
	}
	for i := 0; i < Cells; i++ {
		cells[i] = sum.Add(cells[i].Mul(internalDiag[i]))
	}
}
