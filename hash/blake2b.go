// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hash

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"

	"github.com/luxfi/zkvm/babybear"
	"github.com/luxfi/zkvm/digest"
)

// NewBlake2bSuite returns the "blake2b" hash suite, built on the 256-bit
// BLAKE2b variant.
func NewBlake2bSuite() *Suite {
	return &Suite{
		Name: Blake2bName,
		Fn:   blake2bFn{},
		Rng:  byteRngFactory{name: Blake2bName, sum: blake2bSum},
	}
}

func blake2bSum(b []byte) [32]byte {
	return blake2b.Sum256(b)
}

type blake2bFn struct{}

func (blake2bFn) HashPair(a, b digest.Digest) digest.Digest {
	ab := a.Bytes()
	bb := b.Bytes()
	buf := make([]byte, 0, 2*digest.Bytes)
	buf = append(buf, ab[:]...)
	buf = append(buf, bb[:]...)
	return digest.FromBytes(blake2b.Sum256(buf))
}

func (blake2bFn) HashElems(elems []babybear.Elem) digest.Digest {
	buf := make([]byte, 0, len(elems)*4)
	for _, e := range elems {
		buf = binary.LittleEndian.AppendUint32(buf, e.AsU32())
	}
	return digest.FromBytes(blake2b.Sum256(buf))
}

func (f blake2bFn) HashExtElems(elems []babybear.ExtElem) digest.Digest {
	flat := make([]babybear.Elem, 0, len(elems)*babybear.ExtDegree)
	for _, e := range elems {
		flat = append(flat, e.SubElems()...)
	}
	return f.HashElems(flat)
}
