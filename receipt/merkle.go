// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package receipt

import (
	"errors"

	"github.com/luxfi/zkvm/digest"
	"github.com/luxfi/zkvm/hash"
)

// ErrMerkleProof reports an inclusion proof that does not reach the
// expected root.
var ErrMerkleProof = errors.New("merkle proof verify failed")

// MerkleProof proves that a leaf lies under a committed root. It carries
// the sibling digests from the leaf up, excluding the root itself; the
// leaf's position is recovered bit by bit from the index.
type MerkleProof struct {
	// Index of the leaf being proven.
	Index uint32 `json:"index" cbor:"index"`
	// Digests of the siblings on the path from leaf to root.
	Digests []digest.Digest `json:"digests" cbor:"digests"`
}

// Root folds the path upward from the leaf with the given hash function.
func (p *MerkleProof) Root(leaf digest.Digest, fn hash.Fn) digest.Digest {
	cur := leaf
	idx := p.Index
	for _, sibling := range p.Digests {
		if idx&1 == 0 {
			cur = fn.HashPair(cur, sibling)
		} else {
			cur = fn.HashPair(sibling, cur)
		}
		idx >>= 1
	}
	return cur
}

// Verify checks the proof against the expected root.
func (p *MerkleProof) Verify(leaf, root digest.Digest, fn hash.Fn) error {
	if p.Root(leaf, fn) != root {
		return ErrMerkleProof
	}
	return nil
}
