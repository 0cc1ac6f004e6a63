// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package receipt

import (
	"encoding/binary"

	"github.com/luxfi/zkvm/babybear"
	"github.com/luxfi/zkvm/binfmt"
	"github.com/luxfi/zkvm/claim"
	"github.com/luxfi/zkvm/digest"
	"github.com/luxfi/zkvm/stark"
)

// SuccinctReceipt is a single recursive STARK condensing an arbitrarily
// long execution. The claim type parameter is ReceiptClaim for execution
// receipts and Unknown where only the claim digest is meaningful (e.g.
// assumption receipts for foreign circuits).
type SuccinctReceipt[C binfmt.Digestible] struct {
	// Seal is the STARK proving a run of the recursion circuit.
	Seal []uint32 `json:"seal" cbor:"seal"`
	// ControlID identifies the recursion program that was run.
	ControlID digest.Digest `json:"control_id" cbor:"control_id"`
	// Claim is the statement this receipt proves, possibly pruned.
	Claim claim.MaybePruned[C] `json:"claim" cbor:"claim"`
	// HashFn names the hash suite the seal was produced with.
	HashFn string `json:"hashfn" cbor:"hashfn"`
	// VerifierParameters fingerprints the parameters the receipt expects
	// to verify under.
	VerifierParameters digest.Digest `json:"verifier_parameters" cbor:"verifier_parameters"`
	// ControlInclusionProof places ControlID under the allowed control
	// root.
	ControlInclusionProof MerkleProof `json:"control_inclusion_proof" cbor:"control_inclusion_proof"`
}

// VerifyIntegrity checks that the seal attests to the claim under the
// given context.
func (r *SuccinctReceipt[C]) VerifyIntegrity(ctx VerifierContext) error {
	params := ctx.SuccinctVerifierParameters()
	if params == nil {
		return stark.ErrVerifierParametersMissing
	}

	if params.ProofSystemInfo != stark.ProofSystemInfo {
		return &stark.ProofSystemInfoMismatchError{
			Expected: stark.ProofSystemInfo,
			Received: params.ProofSystemInfo,
		}
	}
	if params.CircuitInfo != ctx.SuccinctCircuitInfo() {
		return &stark.CircuitInfoMismatchError{
			Expected: ctx.SuccinctCircuitInfo(),
			Received: params.CircuitInfo,
		}
	}

	// Verify the seal first; only then are the encoded globals reliable.
	if err := ctx.VerifySuccinct(r.HashFn, r.Seal, &r.ControlInclusionProof, params); err != nil {
		return err
	}

	outputSize := ctx.SuccinctOutputSize()
	if len(r.Seal) < outputSize {
		return stark.ErrReceiptFormat
	}
	out := make([]uint32, 0, outputSize)
	for _, w := range r.Seal[:outputSize] {
		e := babybear.NewRaw(w)
		if !e.IsReduced() {
			return stark.ErrReceiptFormat
		}
		out = append(out, e.AsU32())
	}
	if len(out) < 2*digest.Words {
		return stark.ErrReceiptFormat
	}

	// The first output slot carries the inner control root: a poseidon2
	// digest occupies the even elements, interleaved with padding.
	var controlRoot digest.Digest
	for i := 0; i < digest.Words; i++ {
		controlRoot[i] = out[2*i]
	}
	if controlRoot != params.EffectiveInnerControlRoot() {
		return &stark.ControlVerificationError{ControlID: controlRoot}
	}

	// The second slot carries the claim digest as SHA halfs.
	outputHash, err := binfmt.ReadShaHalfs(binfmt.NewReader(out[2*digest.Words:]))
	if err != nil {
		return stark.ErrReceiptFormat
	}
	if outputHash != r.Claim.Digest() {
		return stark.ErrJournalDigestMismatch
	}
	return nil
}

// ClaimDigest is the digest of the proven claim.
func (r *SuccinctReceipt[C]) ClaimDigest() digest.Digest {
	return r.Claim.Digest()
}

// SealBytes returns the seal as little-endian bytes.
func (r *SuccinctReceipt[C]) SealBytes() []byte {
	out := make([]byte, 0, len(r.Seal)*4)
	for _, w := range r.Seal {
		out = binary.LittleEndian.AppendUint32(out, w)
	}
	return out
}

// SealSize is the byte size of the seal.
func (r *SuccinctReceipt[C]) SealSize() int {
	return len(r.Seal) * 4
}

// IntoUnknown prunes the claim to its digest, erasing the claim type so
// receipts over heterogeneous claims can share a collection type.
func (r *SuccinctReceipt[C]) IntoUnknown() *SuccinctReceipt[claim.Unknown] {
	return &SuccinctReceipt[claim.Unknown]{
		Seal:                  r.Seal,
		ControlID:             r.ControlID,
		Claim:                 claim.NewPruned[claim.Unknown](r.Claim.Digest()),
		HashFn:                r.HashFn,
		VerifierParameters:    r.VerifierParameters,
		ControlInclusionProof: r.ControlInclusionProof,
	}
}
