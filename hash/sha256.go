// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hash

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/luxfi/zkvm/babybear"
	"github.com/luxfi/zkvm/digest"
)

// NewSha256Suite returns the "sha-256" hash suite.
func NewSha256Suite() *Suite {
	return &Suite{
		Name: Sha256Name,
		Fn:   sha256Fn{},
		Rng:  byteRngFactory{name: Sha256Name, sum: sha256Sum},
	}
}

func sha256Sum(b []byte) [32]byte {
	return sha256.Sum256(b)
}

type sha256Fn struct{}

func (sha256Fn) HashPair(a, b digest.Digest) digest.Digest {
	ab := a.Bytes()
	bb := b.Bytes()
	buf := make([]byte, 0, 2*digest.Bytes)
	buf = append(buf, ab[:]...)
	buf = append(buf, bb[:]...)
	return digest.FromBytes(sha256.Sum256(buf))
}

func (sha256Fn) HashElems(elems []babybear.Elem) digest.Digest {
	buf := make([]byte, 0, len(elems)*4)
	for _, e := range elems {
		buf = binary.LittleEndian.AppendUint32(buf, e.AsU32())
	}
	return digest.FromBytes(sha256.Sum256(buf))
}

func (f sha256Fn) HashExtElems(elems []babybear.ExtElem) digest.Digest {
	flat := make([]babybear.Elem, 0, len(elems)*babybear.ExtDegree)
	for _, e := range elems {
		flat = append(flat, e.SubElems()...)
	}
	return f.HashElems(flat)
}
