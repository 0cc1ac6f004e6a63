// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package stark

import (
	"errors"
	"fmt"

	"github.com/luxfi/zkvm/digest"
)

// Sentinel verification errors. Structured variants below carry their
// diagnostic payload and match the corresponding sentinel via errors.Is.
var (
	// ErrReceiptFormat means the proof or claim could not be parsed
	// against the expected schema.
	ErrReceiptFormat = errors.New("invalid receipt format")
	// ErrImageVerification means a continuation pre-state did not chain to
	// the prior post-state.
	ErrImageVerification = errors.New("image verification failed")
	// ErrInvalidProof means the cryptographic seal did not verify.
	ErrInvalidProof = errors.New("invalid proof")
	// ErrJournalDigestMismatch means the committed output digest did not
	// match the claim.
	ErrJournalDigestMismatch = errors.New("journal digest mismatch")
	// ErrUnexpectedExitCode means a non-final segment did not end in a
	// system split.
	ErrUnexpectedExitCode = errors.New("unexpected exit code")
	// ErrInvalidHashSuite means the receipt names an unknown hash suite.
	ErrInvalidHashSuite = errors.New("invalid hash suite")
	// ErrVerifierParametersMissing means the context is not configured for
	// the receipt kind being verified.
	ErrVerifierParametersMissing = errors.New("verifier parameters missing")

	// Kind sentinels for the structured variants.
	ErrControlVerification        = errors.New("control verification failed")
	ErrMerkleQueryOutOfRange      = errors.New("merkle query out of range")
	ErrClaimDigestMismatch        = errors.New("claim digest mismatch")
	ErrVerifierParametersMismatch = errors.New("verifier parameters mismatch")
	ErrProofSystemInfoMismatch    = errors.New("proof system info mismatch")
	ErrCircuitInfoMismatch        = errors.New("circuit info mismatch")
	ErrUnresolvedAssumption       = errors.New("unresolved assumption")
)

// ControlVerificationError reports a control id outside the allowed set or
// not included under the allowed control root.
type ControlVerificationError struct {
	ControlID digest.Digest
}

func (e *ControlVerificationError) Error() string {
	return fmt.Sprintf("control verification failed: control id %s", e.ControlID)
}

func (e *ControlVerificationError) Is(target error) bool {
	return target == ErrControlVerification
}

// MerkleQueryOutOfRangeError reports an engine Merkle query beyond the
// committed row count.
type MerkleQueryOutOfRangeError struct {
	Idx  uint32
	Rows uint32
}

func (e *MerkleQueryOutOfRangeError) Error() string {
	return fmt.Sprintf("merkle query out of range: idx %d, rows %d", e.Idx, e.Rows)
}

func (e *MerkleQueryOutOfRangeError) Is(target error) bool {
	return target == ErrMerkleQueryOutOfRange
}

// ClaimDigestMismatchError reports a verified claim digest that does not
// match the expected statement.
type ClaimDigestMismatchError struct {
	Expected digest.Digest
	Received digest.Digest
}

func (e *ClaimDigestMismatchError) Error() string {
	return fmt.Sprintf("claim digest mismatch: expected %s, received %s", e.Expected, e.Received)
}

func (e *ClaimDigestMismatchError) Is(target error) bool {
	return target == ErrClaimDigestMismatch
}

// VerifierParametersMismatchError reports a receipt generated under
// different verifier parameters than the context holds.
type VerifierParametersMismatchError struct {
	Expected digest.Digest
	Received digest.Digest
}

func (e *VerifierParametersMismatchError) Error() string {
	return fmt.Sprintf("verifier parameters mismatch: expected %s, received %s", e.Expected, e.Received)
}

func (e *VerifierParametersMismatchError) Is(target error) bool {
	return target == ErrVerifierParametersMismatch
}

// ProofSystemInfoMismatchError reports a proof system revision the context
// does not implement.
type ProofSystemInfoMismatchError struct {
	Expected ProtocolInfo
	Received ProtocolInfo
}

func (e *ProofSystemInfoMismatchError) Error() string {
	return fmt.Sprintf("proof system info mismatch: expected %s, received %s", e.Expected, e.Received)
}

func (e *ProofSystemInfoMismatchError) Is(target error) bool {
	return target == ErrProofSystemInfoMismatch
}

// CircuitInfoMismatchError reports a circuit revision the context does not
// implement.
type CircuitInfoMismatchError struct {
	Expected ProtocolInfo
	Received ProtocolInfo
}

func (e *CircuitInfoMismatchError) Error() string {
	return fmt.Sprintf("circuit info mismatch: expected %s, received %s", e.Expected, e.Received)
}

func (e *CircuitInfoMismatchError) Is(target error) bool {
	return target == ErrCircuitInfoMismatch
}

// UnresolvedAssumptionError reports an assumption with no resolving receipt.
type UnresolvedAssumptionError struct {
	Digest digest.Digest
}

func (e *UnresolvedAssumptionError) Error() string {
	return fmt.Sprintf("unresolved assumption: %s", e.Digest)
}

func (e *UnresolvedAssumptionError) Is(target error) bool {
	return target == ErrUnresolvedAssumption
}
