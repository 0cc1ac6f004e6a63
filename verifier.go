// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package zkvm

import (
	"github.com/luxfi/zkvm/babybear"
	"github.com/luxfi/zkvm/hash"
	"github.com/luxfi/zkvm/receipt"
	"github.com/luxfi/zkvm/stark"
)

// Verifier is the version-agnostic face of a context: everything a caller
// needs without knowing which prover minor version the context targets.
type Verifier interface {
	// Verify checks that proof attests to a complete execution of the
	// program committed by vk producing exactly journal.
	Verify(vk Vk, proof receipt.Proof, journal receipt.Journal) error

	// SealOffset is the word offset of the STARK payload in segment seals.
	SealOffset() int

	// SegmentCircuitOutputSize is the element count of the segment seal's
	// output region.
	SegmentCircuitOutputSize() int

	// SetPoseidon2MixImpl replaces the "poseidon2" suite's hash function
	// with one built over the supplied permutation; the suite's challenge
	// RNG keeps the built-in permutation.
	SetPoseidon2MixImpl(mix hash.Poseidon2Mix)

	// MutSuccinctVerifierParameters exposes the succinct allow-set for
	// mutation; nil when the context has none.
	MutSuccinctVerifierParameters() *receipt.SuccinctVerifierParameters

	// ExtractCompositeSegmentsInfo reports the hash suite and segment size
	// of every segment in a composite receipt.
	ExtractCompositeSegmentsInfo(c *receipt.CompositeReceipt) ([]SegmentInfo, error)
}

var _ Verifier = (*Context)(nil)
var _ receipt.VerifierContext = (*Context)(nil)

// SegmentInfo describes one segment of a composite receipt.
type SegmentInfo struct {
	// Hash names the hash suite the segment seal was produced with.
	Hash string
	// Po2 is the log2 of the segment's cycle count.
	Po2 uint32
}

// Verify implements Verifier.
func (c *Context) Verify(vk Vk, proof receipt.Proof, journal receipt.Journal) error {
	c.log.Debug("verifying proof", "version", c.version.name, "image_id", vk.Digest())
	err := proof.Verify(c, vk.Digest(), journal.Digest())
	if err != nil {
		c.log.Debug("proof rejected", "version", c.version.name, "err", err)
	}
	return err
}

// SealOffset implements Verifier.
func (c *Context) SealOffset() int {
	return c.version.sealOffset
}

// SegmentCircuitOutputSize implements Verifier.
func (c *Context) SegmentCircuitOutputSize() int {
	return c.params.SegmentCircuit.OutputSize
}

// ExtractCompositeSegmentsInfo implements Verifier: for each segment, the
// po2 is read from the single field element directly past the seal's
// output region.
func (c *Context) ExtractCompositeSegmentsInfo(comp *receipt.CompositeReceipt) ([]SegmentInfo, error) {
	infos := make([]SegmentInfo, 0, len(comp.Segments))
	for i := range comp.Segments {
		seg := &comp.Segments[i]
		if len(seg.Seal) < c.SealOffset() {
			return nil, stark.ErrReceiptFormat
		}
		po2, err := extractSegmentPo2(seg.Seal[c.SealOffset():], c.SegmentCircuitOutputSize())
		if err != nil {
			return nil, err
		}
		infos = append(infos, SegmentInfo{Hash: seg.HashFn, Po2: po2})
	}
	return infos, nil
}

func extractSegmentPo2(seal []uint32, outputSize int) (uint32, error) {
	if len(seal) < outputSize+1 {
		return 0, stark.ErrReceiptFormat
	}
	e := babybear.NewRaw(seal[outputSize])
	if !e.IsReduced() {
		return 0, stark.ErrReceiptFormat
	}
	return e.AsU32(), nil
}
