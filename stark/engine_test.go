// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package stark

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/zkvm/babybear"
	"github.com/luxfi/zkvm/digest"
	"github.com/luxfi/zkvm/hash"
)

var testCircuit = &Circuit{
	Info:       NewProtocolInfo("TESTCIRC:rev1v1_"),
	OutputSize: 4,
	MixSize:    4,
}

func buildSeal(suite *hash.Suite, po2 uint32, controlID digest.Digest) []uint32 {
	seal := make([]uint32, 0, 32)
	for i := 0; i < testCircuit.OutputSize; i++ {
		seal = append(seal, babybear.New(uint32(i+1)).AsU32Mont())
	}
	seal = append(seal, babybear.New(po2).AsU32Mont())
	seal = append(seal, controlID[:]...)
	seal = append(seal, 0xdeadbeef, 0x0badf00d, 0xcafe)
	commitment := SealCommitment(suite, seal)
	return append(seal, commitment[:]...)
}

func acceptAll(uint32, digest.Digest) error { return nil }

func TestStructuralEngineAccepts(t *testing.T) {
	suite := hash.NewPoseidon2Suite()
	controlID := digest.FromBytes([32]byte{9})
	seal := buildSeal(suite, 14, controlID)

	var gotPo2 uint32
	var gotID digest.Digest
	err := StructuralEngine{}.Verify(testCircuit, suite, seal, func(po2 uint32, id digest.Digest) error {
		gotPo2, gotID = po2, id
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, uint32(14), gotPo2)
	require.Equal(t, controlID, gotID)
}

func TestStructuralEngineRejectsShortSeal(t *testing.T) {
	suite := hash.NewSha256Suite()
	err := StructuralEngine{}.Verify(testCircuit, suite, make([]uint32, 5), acceptAll)
	require.ErrorIs(t, err, ErrReceiptFormat)
}

func TestStructuralEngineRejectsAnyBitFlip(t *testing.T) {
	suite := hash.NewPoseidon2Suite()
	seal := buildSeal(suite, 14, digest.FromBytes([32]byte{9}))

	for word := 0; word < len(seal); word++ {
		for _, bit := range []uint{0, 7, 31} {
			mutated := make([]uint32, len(seal))
			copy(mutated, seal)
			mutated[word] ^= 1 << bit
			err := StructuralEngine{}.Verify(testCircuit, suite, mutated, acceptAll)
			require.ErrorIs(t, err, ErrInvalidProof, "word %d bit %d", word, bit)
		}
	}
}

func TestStructuralEngineRejectsPo2OutOfRange(t *testing.T) {
	suite := hash.NewPoseidon2Suite()
	for _, po2 := range []uint32{MinCyclesPo2 - 1, 25} {
		seal := buildSeal(suite, po2, digest.Zero)
		err := StructuralEngine{}.Verify(testCircuit, suite, seal, acceptAll)
		require.ErrorIs(t, err, ErrInvalidProof)
	}
}

func TestStructuralEngineControlCheckSeesCommittedID(t *testing.T) {
	suite := hash.NewBlake2bSuite()
	controlID := digest.FromBytes([32]byte{1, 2, 3})
	seal := buildSeal(suite, 21, controlID)

	wantErr := &ControlVerificationError{ControlID: controlID}
	err := StructuralEngine{}.Verify(testCircuit, suite, seal, func(_ uint32, id digest.Digest) error {
		return &ControlVerificationError{ControlID: id}
	})
	require.ErrorIs(t, err, ErrControlVerification)
	require.Equal(t, wantErr.Error(), err.Error())
}

func TestStructuralEngineSuiteBindsCommitment(t *testing.T) {
	poseidon := hash.NewPoseidon2Suite()
	seal := buildSeal(poseidon, 14, digest.Zero)
	err := StructuralEngine{}.Verify(testCircuit, hash.NewSha256Suite(), seal, acceptAll)
	require.ErrorIs(t, err, ErrInvalidProof)
}

func TestErrorTaxonomyMatching(t *testing.T) {
	cases := []struct {
		err  error
		kind error
	}{
		{&ControlVerificationError{}, ErrControlVerification},
		{&MerkleQueryOutOfRangeError{Idx: 1, Rows: 2}, ErrMerkleQueryOutOfRange},
		{&ClaimDigestMismatchError{}, ErrClaimDigestMismatch},
		{&VerifierParametersMismatchError{}, ErrVerifierParametersMismatch},
		{&ProofSystemInfoMismatchError{}, ErrProofSystemInfoMismatch},
		{&CircuitInfoMismatchError{}, ErrCircuitInfoMismatch},
		{&UnresolvedAssumptionError{}, ErrUnresolvedAssumption},
	}
	for _, tc := range cases {
		require.ErrorIs(t, tc.err, tc.kind)
		require.NotErrorIs(t, tc.err, ErrInvalidProof)
		require.NotEmpty(t, tc.err.Error())
	}
}

func TestProtocolInfoString(t *testing.T) {
	require.Equal(t, "RISC0_STARK:v1__", ProofSystemInfo.String())
	require.Panics(t, func() { NewProtocolInfo("short") })
}
