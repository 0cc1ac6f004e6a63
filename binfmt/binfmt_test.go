// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package binfmt

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/zkvm/digest"
)

func TestTaggedListEmptyIsZero(t *testing.T) {
	require.Equal(t, digest.Zero, TaggedList("risc0.Assumptions", nil))
}

func TestTaggedListFoldsConsCells(t *testing.T) {
	a := HashBytes([]byte("a"))
	b := HashBytes([]byte("b"))

	manual := TaggedListCons("risc0.Assumptions", a,
		TaggedListCons("risc0.Assumptions", b, digest.Zero))
	require.Equal(t, manual, TaggedList("risc0.Assumptions", []digest.Digest{a, b}))
}

func TestTaggedStructDomainSeparation(t *testing.T) {
	children := []digest.Digest{HashBytes([]byte("x"))}
	require.NotEqual(t,
		TaggedStruct("risc0.Output", children, nil),
		TaggedStruct("risc0.Assumption", children, nil))
	require.NotEqual(t,
		TaggedStruct("risc0.Output", children, nil),
		TaggedStruct("risc0.Output", children, []uint32{0}))
	require.Equal(t,
		TaggedIter("risc0.ControlIdSet", children),
		TaggedStruct("risc0.ControlIdSet", children, nil))
}

func TestShaHalfsRoundTrip(t *testing.T) {
	d := HashBytes([]byte("round trip"))
	flat := WriteShaHalfs(nil, d)
	require.Len(t, flat, 16)

	back, err := ReadShaHalfs(NewReader(flat))
	require.NoError(t, err)
	require.Equal(t, d, back)
}

func TestShaHalfsErrors(t *testing.T) {
	_, err := ReadShaHalfs(NewReader([]uint32{1, 2, 3}))
	require.ErrorIs(t, err, ErrEndOfStream)

	bad := make([]uint32, 16)
	bad[0] = 0x10000
	_, err = ReadShaHalfs(NewReader(bad))
	require.ErrorIs(t, err, ErrInvalidHalfWord)
}

func TestSystemStateRoundTrip(t *testing.T) {
	state := SystemState{PC: 0x4000, MerkleRoot: HashBytes([]byte("memory"))}
	flat := state.Encode(nil)
	require.Len(t, flat, 17)

	back, err := DecodeSystemState(NewReader(flat))
	require.NoError(t, err)
	require.Equal(t, state, back)
	require.Equal(t, state.Digest(), back.Digest())
}

func TestSystemStateDigestBindsFields(t *testing.T) {
	base := SystemState{PC: 0, MerkleRoot: digest.Zero}
	require.NotEqual(t, base.Digest(), SystemState{PC: 1, MerkleRoot: digest.Zero}.Digest())
	require.NotEqual(t, base.Digest(), SystemState{PC: 0, MerkleRoot: HashBytes([]byte("x"))}.Digest())
}

func TestExitCodePairMapping(t *testing.T) {
	cases := []struct {
		code      ExitCode
		sys, user uint32
	}{
		{ExitHalted(0), 0, 0},
		{ExitHalted(7), 0, 7},
		{ExitPaused(0), 1, 0},
		{ExitPaused(3), 1, 3},
		{ExitSystemSplit(), 2, 0},
		{ExitSessionLimit(), 2, 2},
	}
	for _, tc := range cases {
		sys, user := tc.code.Pair()
		require.Equal(t, tc.sys, sys, tc.code.String())
		require.Equal(t, tc.user, user, tc.code.String())

		back, err := ExitCodeFromPair(sys, user)
		require.NoError(t, err)
		require.Equal(t, tc.code, back)
	}
}

func TestExitCodeFromPairRejectsUnknown(t *testing.T) {
	for _, pair := range [][2]uint32{{2, 1}, {2, 3}, {3, 0}, {99, 0}} {
		_, err := ExitCodeFromPair(pair[0], pair[1])
		require.ErrorIs(t, err, ErrInvalidExitCode)
	}
}

func TestExitCodeJSON(t *testing.T) {
	for _, code := range []ExitCode{ExitHalted(5), ExitPaused(1), ExitSystemSplit(), ExitSessionLimit()} {
		raw, err := json.Marshal(code)
		require.NoError(t, err)
		var back ExitCode
		require.NoError(t, json.Unmarshal(raw, &back))
		require.Equal(t, code, back)
	}

	var bad ExitCode
	require.Error(t, json.Unmarshal([]byte(`"Exploded"`), &bad))
}
