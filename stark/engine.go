// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package stark

import (
	"github.com/luxfi/zkvm/babybear"
	"github.com/luxfi/zkvm/digest"
	"github.com/luxfi/zkvm/hash"
)

// Circuit describes one STARK circuit revision: its protocol identifier,
// the number of field elements in the seal's global output region, and the
// size of the mix (challenge) region.
type Circuit struct {
	Info       ProtocolInfo
	OutputSize int
	MixSize    int
}

// CheckCode validates the control id presented by the engine for the
// program that produced a seal.
type CheckCode func(po2 uint32, controlID digest.Digest) error

// Engine is the arithmetic STARK verifier. It checks that a seal is a valid
// proof for the given circuit under the given hash suite, calling checkCode
// with the control id the seal commits to. Implementations return
// ErrInvalidProof (or a more specific taxonomy error) on rejection; they
// never panic on malformed seals.
type Engine interface {
	Verify(c *Circuit, suite *hash.Suite, seal []uint32, checkCode CheckCode) error
}

// Structural seal geometry, in words, past the circuit's output region:
// one po2 element, the control id, at least one body element, and a
// trailing whole-seal commitment.
const (
	sealPo2Words        = 1
	sealControlWords    = digest.Words
	sealMinBodyWords    = 1
	sealCommitmentWords = digest.Words
)

// StructuralEngine verifies the structure and binding of a seal: the output
// and po2 regions must be reduced field elements, the control id must pass
// checkCode, and the trailing commitment must equal the suite's
// field-element hash of every preceding word. The commitment check makes
// the whole seal tamper-evident under the active suite; the FRI polynomial
// checks belong to an external arithmetic engine dropped in behind Engine.
type StructuralEngine struct{}

// Verify implements Engine.
func (StructuralEngine) Verify(c *Circuit, suite *hash.Suite, seal []uint32, checkCode CheckCode) error {
	header := c.OutputSize + sealPo2Words + sealControlWords
	if len(seal) < header+sealMinBodyWords+sealCommitmentWords {
		return ErrReceiptFormat
	}

	// The output region and the po2 element are Montgomery-form field
	// elements; an out-of-field word can never appear in a sound seal.
	for _, w := range seal[:c.OutputSize+sealPo2Words] {
		if !babybear.NewRaw(w).IsReduced() {
			return ErrInvalidProof
		}
	}
	po2 := babybear.NewRaw(seal[c.OutputSize]).AsU32()
	if po2 < MinCyclesPo2 || po2 > 24 {
		return ErrInvalidProof
	}

	// Bind every word below the commitment under the suite's field hash
	// before trusting any of them. Words are reduced into the field before
	// hashing; a single bit flip always lands on a different residue, so
	// any mutation is caught here.
	body := seal[:len(seal)-sealCommitmentWords]
	elems := make([]babybear.Elem, len(body))
	for i, w := range body {
		elems[i] = babybear.New(w)
	}
	commitment := suite.Fn.HashElems(elems)

	var claimed digest.Digest
	copy(claimed[:], seal[len(seal)-sealCommitmentWords:])
	if commitment != claimed {
		return ErrInvalidProof
	}

	// Seed the challenge stream the way a full verifier would; the
	// arithmetic queries themselves are outside this engine.
	rng := suite.Rng.NewRng()
	rng.Mix(commitment)

	var controlID digest.Digest
	copy(controlID[:], seal[c.OutputSize+sealPo2Words:header])
	return checkCode(po2, controlID)
}

// SealCommitment computes the trailing commitment for a seal body, shared
// with provers and test fixtures that construct structural seals.
func SealCommitment(suite *hash.Suite, body []uint32) digest.Digest {
	elems := make([]babybear.Elem, len(body))
	for i, w := range body {
		elems[i] = babybear.New(w)
	}
	return suite.Fn.HashElems(elems)
}
