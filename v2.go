// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package zkvm

import (
	"github.com/luxfi/zkvm/binfmt"
	"github.com/luxfi/zkvm/circuit"
	"github.com/luxfi/zkvm/claim"
	"github.com/luxfi/zkvm/digest"
	"github.com/luxfi/zkvm/hash"
	"github.com/luxfi/zkvm/receipt"
	"github.com/luxfi/zkvm/stark"
)

var (
	v2Spec = versionSpec{
		name:                  "v2",
		sealOffset:            1,
		decode:                decodeReceiptClaimFromSealV2,
		rejectSha256Composite: true,
	}
	v3Spec = versionSpec{
		name:                  "v3",
		sealOffset:            1,
		decode:                decodeReceiptClaimFromSealV3,
		rejectSha256Composite: true,
	}
)

func newV2Context(controlRoot digest.Digest) *Context {
	return newContext(v2Spec, circuit.SegmentV2, circuit.RecursiveV2).
		WithSuites(hash.DefaultSuites()).
		WithSegmentVerifierParameters(receipt.NewSegmentVerifierParameters(
			nil, stark.ProofSystemInfo, circuit.SegmentV2.Info)).
		WithSuccinctVerifierParameters(&receipt.SuccinctVerifierParameters{
			ControlRoot:     controlRoot,
			ProofSystemInfo: stark.ProofSystemInfo,
			CircuitInfo:     circuit.RecursiveV2.Info,
		})
}

// V2_0 returns the verifier context for proofs from any 2.0.x prover.
func V2_0() *Context {
	return newV2Context(circuit.AllowedControlRootV2_0)
}

// V2_1 returns the verifier context for proofs from any 2.1.x prover.
func V2_1() *Context {
	return newV2Context(circuit.AllowedControlRootV2_1)
}

// V2_2 returns the verifier context for proofs from any 2.2.x prover.
func V2_2() *Context {
	return newV2Context(circuit.AllowedControlRootV2_2)
}

// V3_0 returns the verifier context for proofs from any 3.0.x prover.
func V3_0() *Context {
	return newContext(v3Spec, circuit.SegmentV3, circuit.RecursiveV3).
		WithSuites(hash.DefaultSuites()).
		WithSegmentVerifierParameters(receipt.NewSegmentVerifierParameters(
			nil, stark.ProofSystemInfo, circuit.SegmentV3.Info)).
		WithSuccinctVerifierParameters(&receipt.SuccinctVerifierParameters{
			ControlRoot:     circuit.AllowedControlRootV3_0,
			ProofSystemInfo: stark.ProofSystemInfo,
			CircuitInfo:     circuit.RecursiveV3.Info,
		})
}

// Halt types committed by the v2/v3 terminate state.
const (
	haltTerminate = 0
	haltPause     = 1
)

// rv32imV2Claim is the claim structure the v2/v3 segment circuits commit:
// state digests plus an optional terminate state. All digests are encoded
// as SHA half words in the seal's output region.
type rv32imV2Claim struct {
	preState  digest.Digest
	postState digest.Digest
	input     digest.Digest
	output    digest.Digest
	// terminate state, present when the segment ended the execution
	hasTerminate bool
	haltType     uint32
	userExit     uint32
}

// v2 seal output-region layout, in field elements past the version word.
const (
	v2PreOff      = 0
	v2PostOff     = 16
	v2InputOff    = 32
	v2OutputOff   = 48
	v2TermFlagOff = 64
	v2HaltOff     = 65
	v2UserExitOff = 66
)

func decodeRv32imV2Claim(seal []uint32) (rv32imV2Claim, error) {
	if len(seal) < 1+circuit.SegmentV2.OutputSize {
		return rv32imV2Claim{}, stark.ErrReceiptFormat
	}
	if seal[0] != circuit.RV32IMSealVersion {
		return rv32imV2Claim{}, stark.ErrReceiptFormat
	}
	io := seal[1 : 1+circuit.SegmentV2.OutputSize]
	vals := make([]uint32, len(io))
	for i, w := range io {
		v, err := decodeElemU32(w)
		if err != nil {
			return rv32imV2Claim{}, err
		}
		vals[i] = v
	}

	readDigest := func(off int) (digest.Digest, error) {
		return binfmt.ReadShaHalfs(binfmt.NewReader(vals[off : off+2*digest.Words]))
	}
	var (
		out rv32imV2Claim
		err error
	)
	if out.preState, err = readDigest(v2PreOff); err != nil {
		return rv32imV2Claim{}, stark.ErrReceiptFormat
	}
	if out.postState, err = readDigest(v2PostOff); err != nil {
		return rv32imV2Claim{}, stark.ErrReceiptFormat
	}
	if out.input, err = readDigest(v2InputOff); err != nil {
		return rv32imV2Claim{}, stark.ErrReceiptFormat
	}
	if out.output, err = readDigest(v2OutputOff); err != nil {
		return rv32imV2Claim{}, stark.ErrReceiptFormat
	}

	switch vals[v2TermFlagOff] {
	case 0:
		out.hasTerminate = false
	case 1:
		out.hasTerminate = true
		out.haltType = vals[v2HaltOff]
		out.userExit = vals[v2UserExitOff]
	default:
		return rv32imV2Claim{}, stark.ErrReceiptFormat
	}
	return out, nil
}

// translateRv32imV2Claim lifts the circuit-native claim into the common
// shape: a missing terminate state is a system split, and a halted
// execution pins the post state to zero.
func translateRv32imV2Claim(c rv32imV2Claim) (claim.ReceiptClaim, error) {
	var exitCode binfmt.ExitCode
	if c.hasTerminate {
		switch c.haltType {
		case haltTerminate:
			exitCode = binfmt.ExitHalted(c.userExit)
		case haltPause:
			exitCode = binfmt.ExitPaused(c.userExit)
		default:
			return claim.ReceiptClaim{}, stark.ErrReceiptFormat
		}
	} else {
		exitCode = binfmt.ExitSystemSplit()
	}

	postState := c.postState
	if exitCode.Kind == binfmt.Halted {
		postState = digest.Zero
	}

	return claim.ReceiptClaim{
		Pre:      claim.NewValue(binfmt.SystemState{PC: 0, MerkleRoot: c.preState}),
		Post:     claim.NewValue(binfmt.SystemState{PC: 0, MerkleRoot: postState}),
		ExitCode: exitCode,
		Input:    claim.NewPruned[*claim.Input](c.input),
		Output:   claim.NewPruned[*claim.Output](c.output),
	}, nil
}

func decodeReceiptClaimFromSealV2(seal []uint32) (claim.ReceiptClaim, error) {
	c, err := decodeRv32imV2Claim(seal)
	if err != nil {
		return claim.ReceiptClaim{}, err
	}
	return translateRv32imV2Claim(c)
}

// The v3 circuit commits the same claim structure as v2.
func decodeReceiptClaimFromSealV3(seal []uint32) (claim.ReceiptClaim, error) {
	return decodeReceiptClaimFromSealV2(seal)
}
