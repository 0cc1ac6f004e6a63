// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package receipt implements the receipt model: the recursive proof
// containers (composite and succinct), the journal, the Merkle inclusion
// proof for control ids, and the verifier-parameter structs the integrity
// checks pin against.
package receipt

import (
	"github.com/luxfi/zkvm/binfmt"
	"github.com/luxfi/zkvm/claim"
	"github.com/luxfi/zkvm/digest"
	"github.com/luxfi/zkvm/stark"
)

// Journal is the byte stream the guest committed as its public output. Its
// digest is SHA-256 by contract, independent of the proof's hash suite.
type Journal struct {
	Bytes []byte `json:"bytes" cbor:"bytes"`
}

// NewJournal wraps journal bytes.
func NewJournal(bytes []byte) Journal {
	return Journal{Bytes: bytes}
}

// Digest returns the SHA-256 commitment to the journal bytes.
func (j Journal) Digest() digest.Digest {
	return binfmt.HashBytes(j.Bytes)
}

// Proof wraps the polymorphic inner receipt; journal and metadata carried
// alongside it in prover output are ignored on decode.
type Proof struct {
	Inner InnerReceipt `json:"inner" cbor:"inner"`
}

// NewProof builds a proof from an inner receipt.
func NewProof(inner InnerReceipt) Proof {
	return Proof{Inner: inner}
}

// Verify checks that this proof attests to a complete, successful
// execution of the program committed by imageID producing the journal with
// the given digest: the receipt shape is acceptable to the context, the
// inner receipt is internally sound, and the proven claim is exactly the
// canonical Halted(0) claim for (imageID, journalDigest).
func (p *Proof) Verify(ctx VerifierContext, imageID, journalDigest digest.Digest) error {
	if !ctx.IsValidReceipt(p) {
		return stark.ErrReceiptFormat
	}

	if err := p.Inner.VerifyIntegrity(ctx); err != nil {
		return err
	}

	// Every claim field is constrained, so the expected digest can be
	// built directly; no need to open the receipt's claim.
	expected := claim.Ok(imageID, claim.NewPruned[claim.Bytes](journalDigest))
	got, err := p.Inner.Claim()
	if err != nil {
		return err
	}
	if expected.Digest() != got.Digest() {
		return &stark.ClaimDigestMismatchError{
			Expected: expected.Digest(),
			Received: got.Digest(),
		}
	}
	return nil
}

// Claim extracts the (possibly pruned) claim from the inner receipt.
func (p *Proof) Claim() (claim.MaybePruned[claim.ReceiptClaim], error) {
	return p.Inner.Claim()
}

// InnerReceipt is the tagged union of receipt shapes proving RISC-V
// execution: a composite chain of segment proofs, or one succinct
// recursive proof.
type InnerReceipt struct {
	composite *CompositeReceipt
	succinct  *SuccinctReceipt[claim.ReceiptClaim]
}

// NewCompositeInner wraps a composite receipt.
func NewCompositeInner(c *CompositeReceipt) InnerReceipt {
	return InnerReceipt{composite: c}
}

// NewSuccinctInner wraps a succinct receipt.
func NewSuccinctInner(s *SuccinctReceipt[claim.ReceiptClaim]) InnerReceipt {
	return InnerReceipt{succinct: s}
}

// VerifyIntegrity dispatches to the wrapped receipt.
func (r *InnerReceipt) VerifyIntegrity(ctx VerifierContext) error {
	switch {
	case r.composite != nil:
		return r.composite.VerifyIntegrity(ctx)
	case r.succinct != nil:
		return r.succinct.VerifyIntegrity(ctx)
	default:
		return stark.ErrReceiptFormat
	}
}

// Composite returns the composite arm, or ErrReceiptFormat.
func (r *InnerReceipt) Composite() (*CompositeReceipt, error) {
	if r.composite == nil {
		return nil, stark.ErrReceiptFormat
	}
	return r.composite, nil
}

// Succinct returns the succinct arm, or ErrReceiptFormat.
func (r *InnerReceipt) Succinct() (*SuccinctReceipt[claim.ReceiptClaim], error) {
	if r.succinct == nil {
		return nil, stark.ErrReceiptFormat
	}
	return r.succinct, nil
}

// Claim extracts the (possibly pruned) claim.
func (r *InnerReceipt) Claim() (claim.MaybePruned[claim.ReceiptClaim], error) {
	switch {
	case r.composite != nil:
		c, err := r.composite.Claim()
		if err != nil {
			return claim.MaybePruned[claim.ReceiptClaim]{}, err
		}
		return claim.NewValue(c), nil
	case r.succinct != nil:
		return r.succinct.Claim, nil
	default:
		return claim.MaybePruned[claim.ReceiptClaim]{}, stark.ErrReceiptFormat
	}
}

// VerifierParameters returns the fingerprint carried by the wrapped
// receipt.
func (r *InnerReceipt) VerifierParameters() digest.Digest {
	switch {
	case r.composite != nil:
		return r.composite.VerifierParameters
	case r.succinct != nil:
		return r.succinct.VerifierParameters
	default:
		return digest.Zero
	}
}

// IntoAssumption erases the claim type, producing the shape used for
// assumption receipts.
func (r InnerReceipt) IntoAssumption() InnerAssumptionReceipt {
	switch {
	case r.composite != nil:
		return InnerAssumptionReceipt{composite: r.composite}
	case r.succinct != nil:
		return InnerAssumptionReceipt{succinct: r.succinct.IntoUnknown()}
	default:
		return InnerAssumptionReceipt{}
	}
}

// InnerAssumptionReceipt mirrors InnerReceipt for assumption resolution,
// where the claim may belong to a foreign circuit and only its digest is
// known.
type InnerAssumptionReceipt struct {
	composite *CompositeReceipt
	succinct  *SuccinctReceipt[claim.Unknown]
}

// NewCompositeAssumption wraps a composite receipt.
func NewCompositeAssumption(c *CompositeReceipt) InnerAssumptionReceipt {
	return InnerAssumptionReceipt{composite: c}
}

// NewSuccinctAssumption wraps a type-erased succinct receipt.
func NewSuccinctAssumption(s *SuccinctReceipt[claim.Unknown]) InnerAssumptionReceipt {
	return InnerAssumptionReceipt{succinct: s}
}

// VerifyIntegrity dispatches to the wrapped receipt.
func (r *InnerAssumptionReceipt) VerifyIntegrity(ctx VerifierContext) error {
	switch {
	case r.composite != nil:
		return r.composite.VerifyIntegrity(ctx)
	case r.succinct != nil:
		return r.succinct.VerifyIntegrity(ctx)
	default:
		return stark.ErrReceiptFormat
	}
}

// Composite returns the composite arm, or ErrReceiptFormat.
func (r *InnerAssumptionReceipt) Composite() (*CompositeReceipt, error) {
	if r.composite == nil {
		return nil, stark.ErrReceiptFormat
	}
	return r.composite, nil
}

// Succinct returns the succinct arm, or ErrReceiptFormat.
func (r *InnerAssumptionReceipt) Succinct() (*SuccinctReceipt[claim.Unknown], error) {
	if r.succinct == nil {
		return nil, stark.ErrReceiptFormat
	}
	return r.succinct, nil
}

// ClaimDigest is the digest of the proven claim; only the digest is
// available since the claim type may be unknown.
func (r *InnerAssumptionReceipt) ClaimDigest() (digest.Digest, error) {
	switch {
	case r.composite != nil:
		c, err := r.composite.Claim()
		if err != nil {
			return digest.Zero, err
		}
		return c.Digest(), nil
	case r.succinct != nil:
		return r.succinct.Claim.Digest(), nil
	default:
		return digest.Zero, stark.ErrReceiptFormat
	}
}

// VerifierParameters returns the fingerprint carried by the wrapped
// receipt.
func (r *InnerAssumptionReceipt) VerifierParameters() digest.Digest {
	switch {
	case r.composite != nil:
		return r.composite.VerifierParameters
	case r.succinct != nil:
		return r.succinct.VerifierParameters
	default:
		return digest.Zero
	}
}
