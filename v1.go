// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package zkvm

import (
	"github.com/luxfi/zkvm/babybear"
	"github.com/luxfi/zkvm/binfmt"
	"github.com/luxfi/zkvm/circuit"
	"github.com/luxfi/zkvm/claim"
	"github.com/luxfi/zkvm/digest"
	"github.com/luxfi/zkvm/hash"
	"github.com/luxfi/zkvm/receipt"
	"github.com/luxfi/zkvm/stark"
)

var v1Spec = versionSpec{
	name:       "v1",
	sealOffset: 0,
	decode:     decodeReceiptClaimFromSealV1,
}

func newV1Context() *Context {
	return newContext(v1Spec, circuit.SegmentV1, circuit.RecursiveV1).
		WithSuites(hash.DefaultSuites())
}

// EmptyV1 returns an unconfigured v1 context; allow-sets are installed
// through the builder methods.
func EmptyV1() *Context {
	return newContext(v1Spec, circuit.SegmentV1, circuit.RecursiveV1)
}

// V1_0 returns the verifier context for proofs from any 1.0.x prover.
func V1_0() *Context {
	return newV1Context().
		WithSegmentVerifierParameters(receipt.NewSegmentVerifierParameters(
			circuit.AllControlIDsV1_0(), stark.ProofSystemInfo, circuit.SegmentV1.Info)).
		WithSuccinctVerifierParameters(&receipt.SuccinctVerifierParameters{
			ControlRoot:     circuit.AllowedControlRootV1_0,
			ProofSystemInfo: stark.ProofSystemInfo,
			CircuitInfo:     circuit.RecursiveV1.Info,
		})
}

// V1_1 returns the verifier context for proofs from any 1.1.x prover.
func V1_1() *Context {
	return newV1Context().
		WithSegmentVerifierParameters(receipt.NewSegmentVerifierParameters(
			circuit.ControlIDs(circuit.ControlIDV1_1, stark.DefaultMaxPo2),
			stark.ProofSystemInfo, circuit.SegmentV1.Info)).
		WithSuccinctVerifierParameters(&receipt.SuccinctVerifierParameters{
			ControlRoot:     circuit.AllowedControlRootV1_1,
			ProofSystemInfo: stark.ProofSystemInfo,
			CircuitInfo:     circuit.RecursiveV1.Info,
		})
}

// V1_2 returns the verifier context for proofs from any 1.2.x prover.
func V1_2() *Context {
	return newV1Context().
		WithSegmentVerifierParameters(receipt.NewSegmentVerifierParameters(
			circuit.ControlIDs(circuit.ControlIDV1_2, stark.DefaultMaxPo2),
			stark.ProofSystemInfo, circuit.SegmentV1.Info)).
		WithSuccinctVerifierParameters(&receipt.SuccinctVerifierParameters{
			ControlRoot:     circuit.AllowedControlRootV1_2,
			ProofSystemInfo: stark.ProofSystemInfo,
			CircuitInfo:     circuit.RecursiveV1.Info,
		})
}

// v1 seal output-region layout, in field elements. Byte regions hold one
// byte per element; u32 regions hold one byte per element little-endian.
const (
	v1PreImageOff  = 0
	v1PrePCOff     = 32
	v1PostImageOff = 36
	v1PostPCOff    = 68
	v1InputOff     = 72
	v1OutputOff    = 104
	v1SysExitOff   = 136
	v1UserExitOff  = 137
)

// decodeReceiptClaimFromSealV1 parses the claim a v1 segment seal commits
// to. Input and output come back pruned; the seal carries only their
// digests.
func decodeReceiptClaimFromSealV1(seal []uint32) (claim.ReceiptClaim, error) {
	if len(seal) < circuit.SegmentV1.OutputSize {
		return claim.ReceiptClaim{}, stark.ErrReceiptFormat
	}
	io := seal[:circuit.SegmentV1.OutputSize]

	pre, err := decodeSystemStateFromIO(io, v1PreImageOff, v1PrePCOff)
	if err != nil {
		return claim.ReceiptClaim{}, err
	}
	post, err := decodeSystemStateFromIO(io, v1PostImageOff, v1PostPCOff)
	if err != nil {
		return claim.ReceiptClaim{}, err
	}

	input, err := decodeDigestBytes(io[v1InputOff : v1InputOff+digest.Bytes])
	if err != nil {
		return claim.ReceiptClaim{}, err
	}
	output, err := decodeDigestBytes(io[v1OutputOff : v1OutputOff+digest.Bytes])
	if err != nil {
		return claim.ReceiptClaim{}, err
	}

	sysExit, err := decodeElemU32(io[v1SysExitOff])
	if err != nil {
		return claim.ReceiptClaim{}, err
	}
	userExit, err := decodeElemU32(io[v1UserExitOff])
	if err != nil {
		return claim.ReceiptClaim{}, err
	}
	exitCode, err := binfmt.ExitCodeFromPair(sysExit, userExit)
	if err != nil {
		return claim.ReceiptClaim{}, stark.ErrReceiptFormat
	}

	return claim.ReceiptClaim{
		Pre:      claim.NewValue(pre),
		Post:     claim.NewValue(post),
		ExitCode: exitCode,
		Input:    claim.NewPruned[*claim.Input](input),
		Output:   claim.NewPruned[*claim.Output](output),
	}, nil
}

func decodeSystemStateFromIO(io []uint32, imageOff, pcOff int) (binfmt.SystemState, error) {
	root, err := decodeDigestBytes(io[imageOff : imageOff+digest.Bytes])
	if err != nil {
		return binfmt.SystemState{}, err
	}
	var pc uint32
	for i := 0; i < 4; i++ {
		b, err := decodeElemByte(io[pcOff+i])
		if err != nil {
			return binfmt.SystemState{}, err
		}
		pc |= uint32(b) << (8 * i)
	}
	return binfmt.SystemState{PC: pc, MerkleRoot: root}, nil
}

func decodeDigestBytes(io []uint32) (digest.Digest, error) {
	var bytes [digest.Bytes]byte
	for i, w := range io {
		b, err := decodeElemByte(w)
		if err != nil {
			return digest.Zero, err
		}
		bytes[i] = b
	}
	return digest.FromBytes(bytes), nil
}

func decodeElemByte(w uint32) (byte, error) {
	v, err := decodeElemU32(w)
	if err != nil {
		return 0, err
	}
	if v > 0xff {
		return 0, stark.ErrReceiptFormat
	}
	return byte(v), nil
}

func decodeElemU32(w uint32) (uint32, error) {
	e := babybear.NewRaw(w)
	if !e.IsReduced() {
		return 0, stark.ErrReceiptFormat
	}
	return e.AsU32(), nil
}
