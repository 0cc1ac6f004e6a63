// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package zkvm verifies zero-knowledge proofs of RISC-V zkVM execution.
//
// Given a verification key (the image id committing to a guest program), a
// proof and the journal the program committed as public output, a verifier
// context attests that the committed program ran to completion and produced
// exactly that journal, or returns a typed error from the stark package.
//
// Prover releases are compatible only within a minor version; construct the
// context matching the prover that produced the proof (V1_0 through V3_0).
package zkvm

import (
	log "github.com/luxfi/log"

	"github.com/luxfi/zkvm/circuit"
	"github.com/luxfi/zkvm/claim"
	"github.com/luxfi/zkvm/digest"
	"github.com/luxfi/zkvm/hash"
	"github.com/luxfi/zkvm/receipt"
	"github.com/luxfi/zkvm/stark"
)

// VerifierParameters bind everything a context needs per prover version:
// the hash suite registry, the circuit descriptors, and the allow-sets for
// segment and succinct receipts. A nil allow-set disables that receipt
// kind.
type VerifierParameters struct {
	// Suites maps hash function names to their suites.
	Suites map[string]*hash.Suite
	// Segment is the allow-set for segment receipts, or nil.
	Segment *receipt.SegmentVerifierParameters
	// Succinct is the allow-set for succinct receipts, or nil.
	Succinct *receipt.SuccinctVerifierParameters
	// SegmentCircuit describes the segment circuit revision.
	SegmentCircuit *stark.Circuit
	// SuccinctCircuit describes the recursion circuit revision.
	SuccinctCircuit *stark.Circuit
}

// versionSpec is the per-minor-version strategy: how seals are decoded and
// prefixed, and which receipt shapes are admissible.
type versionSpec struct {
	name       string
	sealOffset int
	decode     func(seal []uint32) (claim.ReceiptClaim, error)
	// rejectSha256Composite rejects composite receipts carrying segments
	// labeled "sha-256"; on the affected prover lines such seals were
	// actually produced with poseidon2 and the label is unsound.
	rejectSha256Composite bool
}

// Context is a verifier for one prover minor version. It is read-only
// during Verify and may be shared across goroutines as long as
// SetPoseidon2MixImpl is not called concurrently.
type Context struct {
	params  VerifierParameters
	version versionSpec
	engine  stark.Engine
	log     log.Logger
}

func newContext(version versionSpec, segmentCircuit, succinctCircuit *stark.Circuit) *Context {
	return &Context{
		params: VerifierParameters{
			SegmentCircuit:  segmentCircuit,
			SuccinctCircuit: succinctCircuit,
		},
		version: version,
		engine:  stark.StructuralEngine{},
		log:     log.NewTestLogger(log.InfoLevel),
	}
}

// Params exposes the bound verifier parameters.
func (c *Context) Params() *VerifierParameters {
	return &c.params
}

// WithSuites sets the hash suite registry and returns the context.
func (c *Context) WithSuites(suites map[string]*hash.Suite) *Context {
	c.params.Suites = suites
	return c
}

// WithSegmentVerifierParameters sets the segment allow-set and returns the
// context.
func (c *Context) WithSegmentVerifierParameters(p *receipt.SegmentVerifierParameters) *Context {
	c.params.Segment = p
	return c
}

// WithSuccinctVerifierParameters sets the succinct allow-set and returns
// the context.
func (c *Context) WithSuccinctVerifierParameters(p *receipt.SuccinctVerifierParameters) *Context {
	c.params.Succinct = p
	return c
}

// WithEngine replaces the STARK engine and returns the context.
func (c *Context) WithEngine(e stark.Engine) *Context {
	c.engine = e
	return c
}

// Clone returns an independent copy of the context; the suite map is
// copied so replacements stay local.
func (c *Context) Clone() *Context {
	dup := *c
	dup.params.Suites = make(map[string]*hash.Suite, len(c.params.Suites))
	for k, v := range c.params.Suites {
		dup.params.Suites[k] = v
	}
	return &dup
}

// SegmentVerifierParameters implements receipt.VerifierContext.
func (c *Context) SegmentVerifierParameters() *receipt.SegmentVerifierParameters {
	return c.params.Segment
}

// SuccinctVerifierParameters implements receipt.VerifierContext.
func (c *Context) SuccinctVerifierParameters() *receipt.SuccinctVerifierParameters {
	return c.params.Succinct
}

// MutSuccinctVerifierParameters exposes the succinct allow-set for
// mutation, e.g. to re-root a context against a foreign control root.
func (c *Context) MutSuccinctVerifierParameters() *receipt.SuccinctVerifierParameters {
	return c.params.Succinct
}

// SegmentCircuitInfo implements receipt.VerifierContext.
func (c *Context) SegmentCircuitInfo() stark.ProtocolInfo {
	return c.params.SegmentCircuit.Info
}

// SuccinctCircuitInfo implements receipt.VerifierContext.
func (c *Context) SuccinctCircuitInfo() stark.ProtocolInfo {
	return c.params.SuccinctCircuit.Info
}

// SuccinctOutputSize implements receipt.VerifierContext.
func (c *Context) SuccinctOutputSize() int {
	return c.params.SuccinctCircuit.OutputSize
}

// SegmentSealOffset implements receipt.VerifierContext.
func (c *Context) SegmentSealOffset() int {
	return c.version.sealOffset
}

// DecodeFromSeal implements receipt.VerifierContext.
func (c *Context) DecodeFromSeal(seal []uint32) (claim.ReceiptClaim, error) {
	return c.version.decode(seal)
}

// suite resolves a hash suite by name.
func (c *Context) suite(hashfn string) (*hash.Suite, error) {
	s, ok := c.params.Suites[hashfn]
	if !ok {
		return nil, stark.ErrInvalidHashSuite
	}
	return s, nil
}

// VerifySegment implements receipt.VerifierContext. v1 seals go to the
// STARK engine with the control-id allow-set check; v2/v3 seals have their
// version word checked and stripped, and the engine runs with a control
// check that accepts any id.
func (c *Context) VerifySegment(hashfn string, seal []uint32, params *receipt.SegmentVerifierParameters) error {
	suite, err := c.suite(hashfn)
	if err != nil {
		return err
	}

	if c.version.sealOffset > 0 {
		if len(seal) == 0 || seal[0] != circuit.RV32IMSealVersion {
			return stark.ErrReceiptFormat
		}
		seal = seal[c.version.sealOffset:]
		// The newer segment circuits carry no code commitment buffer, so
		// there is no control id to check.
		return c.engine.Verify(c.params.SegmentCircuit, suite, seal, func(uint32, digest.Digest) error {
			return nil
		})
	}

	checkCode := func(_ uint32, controlID digest.Digest) error {
		if !params.HasControlID(controlID) {
			c.log.Debug("segment control id not in allow-set", "control_id", controlID)
			return &stark.ControlVerificationError{ControlID: controlID}
		}
		return nil
	}
	return c.engine.Verify(c.params.SegmentCircuit, suite, seal, checkCode)
}

// VerifySuccinct implements receipt.VerifierContext: the engine's control
// check walks the inclusion proof from the presented control id up to the
// allowed control root.
func (c *Context) VerifySuccinct(hashfn string, seal []uint32, proof *receipt.MerkleProof, params *receipt.SuccinctVerifierParameters) error {
	suite, err := c.suite(hashfn)
	if err != nil {
		return err
	}

	checkCode := func(_ uint32, controlID digest.Digest) error {
		if err := proof.Verify(controlID, params.ControlRoot, suite.Fn); err != nil {
			c.log.Debug("control inclusion proof failed",
				"control_id", controlID, "root", params.ControlRoot, "suite", suite.Name)
			return &stark.ControlVerificationError{ControlID: controlID}
		}
		return nil
	}
	return c.engine.Verify(c.params.SuccinctCircuit, suite, seal, checkCode)
}

// AssumptionContext implements receipt.VerifierContext. A zero control
// root means the assumption verifies under this same context; any other
// root gets a succinct-only context pinned to it.
func (c *Context) AssumptionContext(a claim.Assumption) receipt.VerifierContext {
	if a.ControlRoot.IsZero() {
		return c
	}
	return c.SuccinctVerifierWithControlRoot(a.ControlRoot)
}

// SuccinctVerifierWithControlRoot derives a context that accepts only
// succinct receipts rooted at the given control root, sharing this
// context's suites and engine.
func (c *Context) SuccinctVerifierWithControlRoot(controlRoot digest.Digest) *Context {
	derived := newContext(c.version, c.params.SegmentCircuit, c.params.SuccinctCircuit)
	derived.engine = c.engine
	derived.log = c.log
	return derived.
		WithSuites(c.params.Suites).
		WithSuccinctVerifierParameters(&receipt.SuccinctVerifierParameters{
			ControlRoot:     controlRoot,
			ProofSystemInfo: stark.ProofSystemInfo,
			CircuitInfo:     c.SuccinctCircuitInfo(),
		})
}

// IsValidReceipt implements receipt.VerifierContext.
func (c *Context) IsValidReceipt(p *receipt.Proof) bool {
	if !c.version.rejectSha256Composite {
		return true
	}
	composite, err := p.Inner.Composite()
	if err != nil {
		return true
	}
	for i := range composite.Segments {
		if composite.Segments[i].HashFn == hash.Sha256Name {
			return false
		}
	}
	return true
}

// SetPoseidon2MixImpl swaps the poseidon2 suite's hash function for one
// built over the supplied permutation. The rest of the context is
// untouched; callers must not race this with Verify.
func (c *Context) SetPoseidon2MixImpl(mix hash.Poseidon2Mix) {
	s, ok := c.params.Suites[hash.Poseidon2Name]
	if !ok {
		return
	}
	c.params.Suites[hash.Poseidon2Name] = &hash.Suite{
		Name: s.Name,
		Fn:   hash.NewPoseidon2Fn(mix),
		Rng:  s.Rng,
	}
}
