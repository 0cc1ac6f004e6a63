// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package claim

import (
	"errors"

	"github.com/luxfi/zkvm/binfmt"
	"github.com/luxfi/zkvm/digest"
)

// ReceiptClaim is the public statement of a zkVM execution: the system
// state before and after, the exit code, and commitments to the input and
// output. It is the motivating Merkle-ized struct: any field can be pruned
// to its digest and the claim digest is unchanged.
type ReceiptClaim struct {
	// Pre is the system state just before execution begins. Its digest is
	// the image id of the guest program.
	Pre MaybePruned[binfmt.SystemState] `json:"pre" cbor:"pre"`

	// Post is the system state just after execution completes.
	Post MaybePruned[binfmt.SystemState] `json:"post" cbor:"post"`

	// ExitCode is how the execution ended.
	ExitCode binfmt.ExitCode `json:"exit_code" cbor:"exit_code"`

	// Input commits to the public input of the guest.
	Input MaybePruned[*Input] `json:"input" cbor:"input"`

	// Output commits to the journal and the assumptions made while proving.
	Output MaybePruned[*Output] `json:"output" cbor:"output"`
}

// Ok is the claim of an execution that ran to completion with exit code
// Halted(0) for the given image id and journal.
func Ok(imageID digest.Digest, journal MaybePruned[Bytes]) ReceiptClaim {
	return ReceiptClaim{
		Pre: NewPruned[binfmt.SystemState](imageID),
		Post: NewValue(binfmt.SystemState{
			PC:         0,
			MerkleRoot: digest.Zero,
		}),
		ExitCode: binfmt.ExitHalted(0),
		Input:    NewValue[*Input](nil),
		Output: NewValue(&Output{
			Journal:     journal,
			Assumptions: NewPruned[Assumptions](digest.Zero),
		}),
	}
}

// Paused is Ok with exit code Paused(0).
func Paused(imageID digest.Digest, journal MaybePruned[Bytes]) ReceiptClaim {
	c := Ok(imageID, journal)
	c.ExitCode = binfmt.ExitPaused(0)
	return c
}

// Digest returns the tagged commitment to the claim.
func (c ReceiptClaim) Digest() digest.Digest {
	sys, user := c.ExitCode.Pair()
	return binfmt.TaggedStruct(
		"risc0.ReceiptClaim",
		[]digest.Digest{
			c.Input.Digest(),
			c.Pre.Digest(),
			c.Post.Digest(),
			c.Output.Digest(),
		},
		[]uint32{sys, user},
	)
}

// Unknown marks a claim type where only the digest is meaningful. The type
// is deliberately uninhabited: the decoders only ever produce the pruned
// arm, and a populated value is unreachable through the public API.
type Unknown struct {
	_ unreachable
}

type unreachable struct{}

// Digest is required by the Digestible constraint; no Unknown value can be
// reached to call it on.
func (Unknown) Digest() digest.Digest {
	panic("claim: Unknown is uninhabited")
}

// MarshalJSON always fails; Unknown carries no representable value.
func (Unknown) MarshalJSON() ([]byte, error) {
	return nil, errors.New("claim: Unknown is uninhabited")
}

// UnmarshalJSON always fails; only the pruned arm of an unknown claim can
// appear on the wire.
func (*Unknown) UnmarshalJSON([]byte) error {
	return errors.New("claim: Unknown is uninhabited")
}

// MarshalCBOR always fails, as MarshalJSON.
func (Unknown) MarshalCBOR() ([]byte, error) {
	return nil, errors.New("claim: Unknown is uninhabited")
}

// UnmarshalCBOR always fails, as UnmarshalJSON.
func (*Unknown) UnmarshalCBOR([]byte) error {
	return errors.New("claim: Unknown is uninhabited")
}

// Input commits to a public value accessible to the guest. The type cannot
// currently be populated; only its digest circulates, leaving room to
// inhabit it later without breaking the claim format.
type Input struct {
	x Unknown
}

// Digest of an absent input is the zero digest.
func (in *Input) Digest() digest.Digest {
	if in == nil {
		return digest.Zero
	}
	return in.x.Digest()
}

// Bytes is an opaque byte string committed to by SHA-256, independent of
// the active hash suite; journals live at the system boundary.
type Bytes []byte

// Digest returns the SHA-256 commitment to the bytes.
func (b Bytes) Digest() digest.Digest {
	return binfmt.HashBytes(b)
}
