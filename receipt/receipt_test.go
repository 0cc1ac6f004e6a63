// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package receipt

import (
	"encoding/json"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/zkvm/binfmt"
	"github.com/luxfi/zkvm/claim"
	"github.com/luxfi/zkvm/digest"
	"github.com/luxfi/zkvm/hash"
	"github.com/luxfi/zkvm/stark"
)

func TestJournalDigestIsSha256(t *testing.T) {
	j := NewJournal([]byte("public output"))
	require.Equal(t, binfmt.HashBytes([]byte("public output")), j.Digest())
	require.Equal(t, binfmt.HashBytes(nil), NewJournal(nil).Digest())
}

func TestMerkleProofWalk(t *testing.T) {
	fn := hash.NewPoseidon2Suite().Fn
	leaves := []digest.Digest{
		fn.HashPair(digest.Zero, digest.FromWords([8]uint32{1})),
		fn.HashPair(digest.Zero, digest.FromWords([8]uint32{2})),
		fn.HashPair(digest.Zero, digest.FromWords([8]uint32{3})),
		fn.HashPair(digest.Zero, digest.FromWords([8]uint32{4})),
	}
	n01 := fn.HashPair(leaves[0], leaves[1])
	n23 := fn.HashPair(leaves[2], leaves[3])
	root := fn.HashPair(n01, n23)

	proofs := []MerkleProof{
		{Index: 0, Digests: []digest.Digest{leaves[1], n23}},
		{Index: 1, Digests: []digest.Digest{leaves[0], n23}},
		{Index: 2, Digests: []digest.Digest{leaves[3], n01}},
		{Index: 3, Digests: []digest.Digest{leaves[2], n01}},
	}
	for i, p := range proofs {
		require.NoError(t, p.Verify(leaves[i], root, fn), "leaf %d", i)
		require.ErrorIs(t, p.Verify(leaves[(i+1)%4], root, fn), ErrMerkleProof)
	}
}

func TestSegmentParamsControlIDSet(t *testing.T) {
	a := binfmt.HashBytes([]byte("a"))
	b := binfmt.HashBytes([]byte("b"))
	params := NewSegmentVerifierParameters(
		[]digest.Digest{b, a, b},
		stark.ProofSystemInfo,
		stark.NewProtocolInfo("TESTCIRC:rev1v1_"),
	)
	require.Len(t, params.ControlIDs, 2)
	require.True(t, params.HasControlID(a))
	require.True(t, params.HasControlID(b))
	require.False(t, params.HasControlID(binfmt.HashBytes([]byte("c"))))
}

func TestSegmentParamsDigestStable(t *testing.T) {
	build := func(ids ...digest.Digest) digest.Digest {
		return NewSegmentVerifierParameters(ids, stark.ProofSystemInfo,
			stark.NewProtocolInfo("TESTCIRC:rev1v1_")).Digest()
	}
	a := binfmt.HashBytes([]byte("a"))
	b := binfmt.HashBytes([]byte("b"))

	// Insertion order does not matter; membership does.
	require.Equal(t, build(a, b), build(b, a))
	require.NotEqual(t, build(a), build(a, b))
}

func TestSuccinctParamsDigest(t *testing.T) {
	root := binfmt.HashBytes([]byte("root"))
	inner := binfmt.HashBytes([]byte("inner"))
	base := &SuccinctVerifierParameters{
		ControlRoot:     root,
		ProofSystemInfo: stark.ProofSystemInfo,
		CircuitInfo:     stark.NewProtocolInfo("RECURSION:rev1v1"),
	}
	require.Equal(t, root, base.EffectiveInnerControlRoot())

	rerooted := *base
	rerooted.InnerControlRoot = &inner
	require.Equal(t, inner, rerooted.EffectiveInnerControlRoot())
	require.NotEqual(t, base.Digest(), rerooted.Digest())

	// Explicitly setting the inner root to the outer root is the same as
	// leaving it unset.
	same := *base
	same.InnerControlRoot = &root
	require.Equal(t, base.Digest(), same.Digest())
}

func TestInnerReceiptArms(t *testing.T) {
	comp := &CompositeReceipt{VerifierParameters: binfmt.HashBytes([]byte("p"))}
	inner := NewCompositeInner(comp)

	got, err := inner.Composite()
	require.NoError(t, err)
	require.Equal(t, comp, got)
	_, err = inner.Succinct()
	require.ErrorIs(t, err, stark.ErrReceiptFormat)
	require.Equal(t, comp.VerifierParameters, inner.VerifierParameters())

	var empty InnerReceipt
	require.ErrorIs(t, empty.VerifyIntegrity(nil), stark.ErrReceiptFormat)
	_, err = empty.Claim()
	require.ErrorIs(t, err, stark.ErrReceiptFormat)
}

func TestIntoUnknownPrunesClaim(t *testing.T) {
	cl := claim.Ok(binfmt.HashBytes([]byte("img")), claim.NewPruned[claim.Bytes](binfmt.HashBytes([]byte("j"))))
	s := &SuccinctReceipt[claim.ReceiptClaim]{
		Seal:               []uint32{1, 2, 3},
		ControlID:          binfmt.HashBytes([]byte("cid")),
		Claim:              claim.NewValue(cl),
		HashFn:             hash.Poseidon2Name,
		VerifierParameters: SuccinctParamsDigestV1_2,
	}
	erased := s.IntoUnknown()
	require.True(t, erased.Claim.IsPruned())
	require.Equal(t, cl.Digest(), erased.Claim.Digest())
	require.Equal(t, s.Seal, erased.Seal)
	require.Equal(t, s.HashFn, erased.HashFn)

	asm := NewSuccinctAssumption(erased)
	d, err := asm.ClaimDigest()
	require.NoError(t, err)
	require.Equal(t, cl.Digest(), d)
}

func TestSealByteViews(t *testing.T) {
	seg := &SegmentReceipt{Seal: []uint32{0x04030201, 0x08070605}}
	require.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, seg.SealBytes())
	require.Equal(t, 8, seg.SealSize())

	comp := &CompositeReceipt{Segments: []SegmentReceipt{*seg, *seg}}
	require.Equal(t, 16, comp.SealSize())
}

func TestInnerReceiptSerdeRoundTrip(t *testing.T) {
	cl := claim.Ok(binfmt.HashBytes([]byte("img")), claim.NewPruned[claim.Bytes](binfmt.HashBytes([]byte("j"))))
	inner := NewSuccinctInner(&SuccinctReceipt[claim.ReceiptClaim]{
		Seal:               []uint32{7, 8, 9},
		ControlID:          binfmt.HashBytes([]byte("cid")),
		Claim:              claim.NewValue(cl),
		HashFn:             hash.Poseidon2Name,
		VerifierParameters: SuccinctParamsDigestV1_0,
		ControlInclusionProof: MerkleProof{
			Index:   3,
			Digests: []digest.Digest{binfmt.HashBytes([]byte("sib"))},
		},
	})
	proof := NewProof(inner)

	rawJSON, err := json.Marshal(proof)
	require.NoError(t, err)
	var backJSON Proof
	require.NoError(t, json.Unmarshal(rawJSON, &backJSON))
	s, err := backJSON.Inner.Succinct()
	require.NoError(t, err)
	require.Equal(t, []uint32{7, 8, 9}, s.Seal)
	require.Equal(t, cl.Digest(), s.Claim.Digest())
	require.Equal(t, uint32(3), s.ControlInclusionProof.Index)

	rawCBOR, err := cbor.Marshal(proof)
	require.NoError(t, err)
	var backCBOR Proof
	require.NoError(t, cbor.Unmarshal(rawCBOR, &backCBOR))
	s2, err := backCBOR.Inner.Succinct()
	require.NoError(t, err)
	require.Equal(t, cl.Digest(), s2.Claim.Digest())
}

func TestCompositeClaimAggregation(t *testing.T) {
	pre := binfmt.SystemState{PC: 0x4000, MerkleRoot: binfmt.HashBytes([]byte("pre"))}
	mid := binfmt.SystemState{PC: 0x5000, MerkleRoot: binfmt.HashBytes([]byte("mid"))}

	segments := []SegmentReceipt{
		{
			Claim: claim.ReceiptClaim{
				Pre:      claim.NewValue(pre),
				Post:     claim.NewValue(mid),
				ExitCode: binfmt.ExitSystemSplit(),
				Input:    claim.NewPruned[*claim.Input](digest.Zero),
				Output:   claim.NewValue[*claim.Output](nil),
			},
		},
		{
			Claim: claim.ReceiptClaim{
				Pre:      claim.NewValue(mid),
				Post:     claim.NewValue(binfmt.SystemState{PC: 0, MerkleRoot: digest.Zero}),
				ExitCode: binfmt.ExitHalted(0),
				Input:    claim.NewPruned[*claim.Input](digest.Zero),
				Output: claim.NewValue(&claim.Output{
					Journal: claim.NewValue(claim.Bytes("out")),
					Assumptions: claim.NewValue(claim.Assumptions{
						claim.NewValue(claim.Assumption{Claim: binfmt.HashBytes([]byte("asm"))}),
					}),
				}),
			},
		},
	}
	comp := &CompositeReceipt{Segments: segments}

	aggregate, err := comp.Claim()
	require.NoError(t, err)
	require.Equal(t, pre.Digest(), aggregate.Pre.Digest())
	require.Equal(t, binfmt.ExitHalted(0), aggregate.ExitCode)

	out, err := aggregate.Output.Value()
	require.NoError(t, err)
	// Assumptions are stripped from the aggregate claim.
	require.True(t, claim.AssumptionsEmpty(out.Assumptions))
	require.Equal(t, claim.Bytes("out").Digest(), out.Journal.Digest())

	empty := &CompositeReceipt{}
	_, err = empty.Claim()
	require.ErrorIs(t, err, stark.ErrReceiptFormat)
}
