// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package receipt

import (
	"github.com/luxfi/zkvm/binfmt"
	"github.com/luxfi/zkvm/claim"
	"github.com/luxfi/zkvm/digest"
	"github.com/luxfi/zkvm/stark"
)

// CompositeReceipt proves a single execution with continuations: one
// segment receipt per segment, in order, plus one receipt per assumption
// made along the way.
type CompositeReceipt struct {
	// Segments are the continuation proofs, in execution order.
	Segments []SegmentReceipt `json:"segments" cbor:"segments"`
	// AssumptionReceipts resolve, in order, the assumptions listed on the
	// final segment's output.
	AssumptionReceipts []InnerAssumptionReceipt `json:"assumption_receipts" cbor:"assumption_receipts"`
	// VerifierParameters fingerprints the parameters the receipt expects
	// to verify under.
	VerifierParameters digest.Digest `json:"verifier_parameters" cbor:"verifier_parameters"`
}

// VerifyIntegrity checks every segment, the continuation chaining between
// them, and that every assumption is resolved by an attached receipt.
func (r *CompositeReceipt) VerifyIntegrity(ctx VerifierContext) error {
	if len(r.Segments) == 0 {
		return stark.ErrReceiptFormat
	}
	final := &r.Segments[len(r.Segments)-1]
	rest := r.Segments[:len(r.Segments)-1]

	var expectedPre *digest.Digest
	for i := range rest {
		seg := &rest[i]
		if err := seg.VerifyIntegrity(ctx); err != nil {
			return err
		}
		if expectedPre != nil && *expectedPre != seg.Claim.Pre.Digest() {
			return stark.ErrImageVerification
		}
		if seg.Claim.ExitCode.Kind != binfmt.SystemSplit {
			return stark.ErrUnexpectedExitCode
		}
		if !claim.OutputIsNone(seg.Claim.Output) {
			return stark.ErrReceiptFormat
		}
		post, err := seg.Claim.Post.Value()
		if err != nil {
			return stark.ErrReceiptFormat
		}
		d := post.Digest()
		expectedPre = &d
	}

	if err := final.VerifyIntegrity(ctx); err != nil {
		return err
	}
	if expectedPre != nil && *expectedPre != final.Claim.Pre.Digest() {
		return stark.ErrImageVerification
	}

	// Every assumption needs exactly one resolving receipt; zip semantics
	// would silently drop the excess on either side.
	assumptions, err := r.assumptions()
	if err != nil {
		return err
	}
	if len(assumptions) != len(r.AssumptionReceipts) {
		return stark.ErrReceiptFormat
	}
	for i, assumption := range assumptions {
		receipt := &r.AssumptionReceipts[i]
		if err := receipt.VerifyIntegrity(ctx.AssumptionContext(assumption)); err != nil {
			return err
		}
		got, err := receipt.ClaimDigest()
		if err != nil {
			return err
		}
		if got != assumption.Claim {
			return &stark.ClaimDigestMismatchError{
				Expected: assumption.Claim,
				Received: got,
			}
		}
	}

	return nil
}

// Claim aggregates the segment claims: the first segment's entry state and
// input, the last segment's exit state and output. Assumptions are
// stripped, since integrity verification leaves none unresolved.
func (r *CompositeReceipt) Claim() (claim.ReceiptClaim, error) {
	if len(r.Segments) == 0 {
		return claim.ReceiptClaim{}, stark.ErrReceiptFormat
	}
	first := &r.Segments[0].Claim
	last := &r.Segments[len(r.Segments)-1].Claim

	lastOutput, err := last.Output.Value()
	if err != nil {
		return claim.ReceiptClaim{}, stark.ErrReceiptFormat
	}
	var output claim.MaybePruned[*claim.Output]
	if lastOutput == nil {
		output = claim.NewValue[*claim.Output](nil)
	} else {
		output = claim.NewValue(&claim.Output{
			Journal:     lastOutput.Journal,
			Assumptions: claim.NewValue(claim.Assumptions{}),
		})
	}

	return claim.ReceiptClaim{
		Pre:      first.Pre,
		Post:     last.Post,
		ExitCode: last.ExitCode,
		Input:    first.Input,
		Output:   output,
	}, nil
}

// assumptions reads the full assumption list from the final segment's
// output; pruned entries anywhere make the receipt unverifiable.
func (r *CompositeReceipt) assumptions() ([]claim.Assumption, error) {
	last := &r.Segments[len(r.Segments)-1].Claim
	output, err := last.Output.Value()
	if err != nil {
		return nil, stark.ErrReceiptFormat
	}
	if output == nil || claim.AssumptionsEmpty(output.Assumptions) {
		return nil, nil
	}
	list, err := output.Assumptions.Value()
	if err != nil {
		return nil, stark.ErrReceiptFormat
	}
	out := make([]claim.Assumption, len(list))
	for i, entry := range list {
		a, err := entry.Value()
		if err != nil {
			return nil, stark.ErrReceiptFormat
		}
		out[i] = a
	}
	return out, nil
}

// SealSize is the total byte size of the segment seals.
func (r *CompositeReceipt) SealSize() int {
	total := 0
	for i := range r.Segments {
		total += r.Segments[i].SealSize()
	}
	return total
}
