// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package receipt

import (
	"encoding/binary"

	"github.com/luxfi/zkvm/claim"
	"github.com/luxfi/zkvm/digest"
	"github.com/luxfi/zkvm/stark"
)

// SegmentReceipt is one STARK proof of one continuation segment.
type SegmentReceipt struct {
	// Seal is the raw STARK proof as 32-bit words.
	Seal []uint32 `json:"seal" cbor:"seal"`
	// Index is the segment's position within the execution.
	Index uint32 `json:"index" cbor:"index"`
	// HashFn names the hash suite the seal was produced with.
	HashFn string `json:"hashfn" cbor:"hashfn"`
	// VerifierParameters fingerprints the parameters the receipt expects
	// to verify under.
	VerifierParameters digest.Digest `json:"verifier_parameters" cbor:"verifier_parameters"`
	// Claim is the statement this segment proves.
	Claim claim.ReceiptClaim `json:"claim" cbor:"claim"`
}

// VerifyIntegrity checks that the seal attests to the claim under the
// given context: version pinning, the STARK engine, and the cross-check of
// the seal-committed claim against the claim field.
func (r *SegmentReceipt) VerifyIntegrity(ctx VerifierContext) error {
	params := ctx.SegmentVerifierParameters()
	if params == nil {
		return stark.ErrVerifierParametersMissing
	}

	// Info strings are version identifiers; a context implements exactly
	// one proof system and circuit revision.
	if params.ProofSystemInfo != stark.ProofSystemInfo {
		return &stark.ProofSystemInfoMismatchError{
			Expected: stark.ProofSystemInfo,
			Received: params.ProofSystemInfo,
		}
	}
	if params.CircuitInfo != ctx.SegmentCircuitInfo() {
		return &stark.CircuitInfoMismatchError{
			Expected: ctx.SegmentCircuitInfo(),
			Received: params.CircuitInfo,
		}
	}

	if err := ctx.VerifySegment(r.HashFn, r.Seal, params); err != nil {
		return err
	}

	// The seal is sound, so the claim it commits to is reliable; it must
	// agree with the claim carried on the receipt.
	decoded, err := ctx.DecodeFromSeal(r.Seal)
	if err != nil {
		return err
	}
	if decoded.Digest() != r.Claim.Digest() {
		return &stark.ClaimDigestMismatchError{
			Expected: r.Claim.Digest(),
			Received: decoded.Digest(),
		}
	}
	return nil
}

// SealBytes returns the seal as little-endian bytes.
func (r *SegmentReceipt) SealBytes() []byte {
	out := make([]byte, 0, len(r.Seal)*4)
	for _, w := range r.Seal {
		out = binary.LittleEndian.AppendUint32(out, w)
	}
	return out
}

// SealSize is the byte size of the seal.
func (r *SegmentReceipt) SealSize() int {
	return len(r.Seal) * 4
}
