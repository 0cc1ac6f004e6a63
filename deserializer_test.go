// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package zkvm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/zkvm/hash"
)

func TestDenseRoundTripComposite(t *testing.T) {
	fx := compositeFixtureV1(t, hash.Poseidon2Name, 21, 2)

	raw, err := SerializeProof(fx.proof, fx.journal)
	require.NoError(t, err)

	proof, journal, err := DeserializeProof(raw)
	require.NoError(t, err)
	require.Equal(t, fx.journal, journal)

	want, err := fx.proof.Claim()
	require.NoError(t, err)
	got, err := proof.Claim()
	require.NoError(t, err)
	require.Equal(t, want.Digest(), got.Digest())

	require.NoError(t, V1_2().Verify(fx.vk, proof, journal))
}

func TestDenseRoundTripSuccinct(t *testing.T) {
	fx, ctx := succinctFixtureV1(t)

	raw, err := SerializeProof(fx.proof, fx.journal)
	require.NoError(t, err)

	proof, journal, err := DeserializeProof(raw)
	require.NoError(t, err)
	require.NoError(t, ctx.Verify(fx.vk, proof, journal))
}

func TestDenseRoundTripAssumptions(t *testing.T) {
	fx := assumptionFixtureV1(t, false)

	raw, err := SerializeProof(fx.proof, fx.journal)
	require.NoError(t, err)

	proof, journal, err := DeserializeProof(raw)
	require.NoError(t, err)
	require.NoError(t, V1_2().Verify(fx.vk, proof, journal))
}

func TestDeserializeRejectsGarbage(t *testing.T) {
	var desErr *DeserializeError

	_, _, err := DeserializeProof(nil)
	require.ErrorAs(t, err, &desErr)

	_, _, err = DeserializeProof([]byte{0xff, 0xee, 0xdd})
	require.ErrorAs(t, err, &desErr)
	require.NotNil(t, desErr.First)
	require.Equal(t, byte(0xff), *desErr.First)
	require.Equal(t, byte(0xdd), *desErr.Last)
}

func TestDeserializeRejectsCorrupted(t *testing.T) {
	fx := compositeFixtureV1(t, hash.Poseidon2Name, 21, 1)
	raw, err := SerializeProof(fx.proof, fx.journal)
	require.NoError(t, err)

	// Corrupting the leading length explodes the frame.
	raw[0] ^= 0xff
	_, _, err = DeserializeProof(raw)
	var desErr *DeserializeError
	require.ErrorAs(t, err, &desErr)

	// Truncation is rejected too.
	raw[0] ^= 0xff
	_, _, err = DeserializeProof(raw[:len(raw)-3])
	require.ErrorAs(t, err, &desErr)
}

func TestVerifyRaw(t *testing.T) {
	fx := compositeFixtureV1(t, hash.Poseidon2Name, 21, 1)
	raw, err := SerializeProof(fx.proof, fx.journal)
	require.NoError(t, err)

	require.NoError(t, VerifyRaw(V1_2(), raw, fx.vk))

	var desErr *DeserializeError
	require.ErrorAs(t, VerifyRaw(V1_2(), raw[:10], fx.vk), &desErr)
}

func TestDenseTrailingBytesRejected(t *testing.T) {
	fx := compositeFixtureV1(t, hash.Poseidon2Name, 21, 1)
	raw, err := SerializeProof(fx.proof, fx.journal)
	require.NoError(t, err)

	var desErr *DeserializeError
	_, _, err = DeserializeProof(append(raw, 0x00))
	require.ErrorAs(t, err, &desErr)
}
