// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package zkvm

// Test fixture construction: seals in the structural layout the built-in
// engine accepts, wrapped into receipts exactly as a prover would emit
// them.

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/zkvm/babybear"
	"github.com/luxfi/zkvm/binfmt"
	"github.com/luxfi/zkvm/circuit"
	"github.com/luxfi/zkvm/claim"
	"github.com/luxfi/zkvm/digest"
	"github.com/luxfi/zkvm/hash"
	"github.com/luxfi/zkvm/receipt"
	"github.com/luxfi/zkvm/stark"
)

func elemMont(v uint32) uint32 {
	return babybear.New(v).AsU32Mont()
}

func writeDigestBytes(io []uint32, off int, d digest.Digest) {
	b := d.Bytes()
	for i, bb := range b {
		io[off+i] = elemMont(uint32(bb))
	}
}

func writeDigestHalfs(io []uint32, off int, d digest.Digest) {
	for i := 0; i < digest.Words; i++ {
		io[off+2*i] = elemMont(d[i] & 0xffff)
		io[off+2*i+1] = elemMont(d[i] >> 16)
	}
}

// finishSeal appends the po2 element, the control id, filler body words and
// the binding commitment; prefix prepends the v2 seal version word.
func finishSeal(suite *hash.Suite, io []uint32, po2 uint32, controlID digest.Digest, prefix bool) []uint32 {
	seal := append([]uint32{}, io...)
	seal = append(seal, elemMont(po2))
	seal = append(seal, controlID[:]...)
	seal = append(seal, 0x17051999, 0x0badf00d)
	commitment := stark.SealCommitment(suite, seal)
	seal = append(seal, commitment[:]...)
	if prefix {
		return append([]uint32{circuit.RV32IMSealVersion}, seal...)
	}
	return seal
}

// buildSealV1 lays out a v1 segment seal committing to the given claim.
// Pre and post must be present as values.
func buildSealV1(t *testing.T, suite *hash.Suite, cl claim.ReceiptClaim, po2 uint32, controlID digest.Digest) []uint32 {
	t.Helper()
	io := make([]uint32, circuit.SegmentV1.OutputSize)

	pre, err := cl.Pre.Value()
	require.NoError(t, err)
	post, err := cl.Post.Value()
	require.NoError(t, err)

	writeState := func(imageOff, pcOff int, s binfmt.SystemState) {
		writeDigestBytes(io, imageOff, s.MerkleRoot)
		for i := 0; i < 4; i++ {
			io[pcOff+i] = elemMont((s.PC >> (8 * i)) & 0xff)
		}
	}
	writeState(v1PreImageOff, v1PrePCOff, pre)
	writeState(v1PostImageOff, v1PostPCOff, post)

	writeDigestBytes(io, v1InputOff, cl.Input.Digest())
	writeDigestBytes(io, v1OutputOff, cl.Output.Digest())

	sys, user := cl.ExitCode.Pair()
	io[v1SysExitOff] = elemMont(sys)
	io[v1UserExitOff] = elemMont(user)

	return finishSeal(suite, io, po2, controlID, false)
}

// buildSealV2 lays out a v2/v3 segment seal committing to the given claim.
func buildSealV2(t *testing.T, suite *hash.Suite, cl claim.ReceiptClaim, po2 uint32) []uint32 {
	t.Helper()
	io := make([]uint32, circuit.SegmentV2.OutputSize)

	pre, err := cl.Pre.Value()
	require.NoError(t, err)
	post, err := cl.Post.Value()
	require.NoError(t, err)

	writeDigestHalfs(io, v2PreOff, pre.MerkleRoot)
	writeDigestHalfs(io, v2PostOff, post.MerkleRoot)
	writeDigestHalfs(io, v2InputOff, cl.Input.Digest())
	writeDigestHalfs(io, v2OutputOff, cl.Output.Digest())

	switch cl.ExitCode.Kind {
	case binfmt.SystemSplit:
		io[v2TermFlagOff] = 0
	case binfmt.Halted:
		io[v2TermFlagOff] = elemMont(1)
		io[v2HaltOff] = elemMont(haltTerminate)
		io[v2UserExitOff] = elemMont(cl.ExitCode.User)
	case binfmt.Paused:
		io[v2TermFlagOff] = elemMont(1)
		io[v2HaltOff] = elemMont(haltPause)
		io[v2UserExitOff] = elemMont(cl.ExitCode.User)
	default:
		t.Fatalf("unsupported exit code %v", cl.ExitCode)
	}

	return finishSeal(suite, io, po2, digest.Zero, true)
}

// buildSuccinctSeal lays out a recursion seal: the inner control root in
// the even elements of the first output slot, the claim digest as SHA
// halfs in the second.
func buildSuccinctSeal(suite *hash.Suite, claimDigest, innerControlRoot digest.Digest, po2 uint32, controlID digest.Digest) []uint32 {
	io := make([]uint32, circuit.RecursiveV1.OutputSize)
	for i := 0; i < digest.Words; i++ {
		io[2*i] = elemMont(innerControlRoot[i])
	}
	for i := 0; i < digest.Words; i++ {
		io[2*digest.Words+2*i] = elemMont(claimDigest[i] & 0xffff)
		io[2*digest.Words+2*i+1] = elemMont(claimDigest[i] >> 16)
	}
	return finishSeal(suite, io, po2, controlID, false)
}

// haltClaim is the final segment claim of a successful execution.
func haltClaim(pre binfmt.SystemState, journal []byte, assumptions claim.Assumptions) claim.ReceiptClaim {
	return claim.ReceiptClaim{
		Pre:      claim.NewValue(pre),
		Post:     claim.NewValue(binfmt.SystemState{PC: 0, MerkleRoot: digest.Zero}),
		ExitCode: binfmt.ExitHalted(0),
		Input:    claim.NewPruned[*claim.Input](digest.Zero),
		Output: claim.NewValue(&claim.Output{
			Journal:     claim.NewValue(claim.Bytes(journal)),
			Assumptions: claim.NewValue(assumptions),
		}),
	}
}

// splitClaim is a non-final segment claim ending in a system split.
func splitClaim(pre, post binfmt.SystemState) claim.ReceiptClaim {
	return claim.ReceiptClaim{
		Pre:      claim.NewValue(pre),
		Post:     claim.NewValue(post),
		ExitCode: binfmt.ExitSystemSplit(),
		Input:    claim.NewPruned[*claim.Input](digest.Zero),
		Output:   claim.NewValue[*claim.Output](nil),
	}
}

type fixture struct {
	vk      Vk
	journal receipt.Journal
	proof   receipt.Proof
}

// compositeFixtureV1 builds a valid composite proof for a v1 context with
// the given number of chained segments.
func compositeFixtureV1(t *testing.T, hashfn string, po2 uint32, segments int) fixture {
	t.Helper()
	suite := hash.DefaultSuites()[hashfn]
	require.NotNil(t, suite)
	controlID, ok := circuit.ControlIDV1_2(hashfn, 14)
	require.True(t, ok)

	states := make([]binfmt.SystemState, segments)
	for i := range states {
		states[i] = binfmt.SystemState{
			PC:         uint32(0x4000 + i*0x100),
			MerkleRoot: binfmt.HashBytes([]byte{byte(i), 'm'}),
		}
	}
	journal := []byte("the guest said hello")

	var segs []receipt.SegmentReceipt
	for i := 0; i < segments-1; i++ {
		cl := splitClaim(states[i], states[i+1])
		segs = append(segs, receipt.SegmentReceipt{
			Seal:               buildSealV1(t, suite, cl, po2, controlID),
			Index:              uint32(i),
			HashFn:             hashfn,
			VerifierParameters: receipt.SegmentParamsDigestV1_2,
			Claim:              cl,
		})
	}
	final := haltClaim(states[segments-1], journal, claim.Assumptions{})
	segs = append(segs, receipt.SegmentReceipt{
		Seal:               buildSealV1(t, suite, final, po2, controlID),
		Index:              uint32(segments - 1),
		HashFn:             hashfn,
		VerifierParameters: receipt.SegmentParamsDigestV1_2,
		Claim:              final,
	})

	comp := &receipt.CompositeReceipt{
		Segments:           segs,
		VerifierParameters: receipt.SegmentParamsDigestV1_2,
	}
	return fixture{
		vk:      Vk(states[0].Digest()),
		journal: receipt.NewJournal(journal),
		proof:   receipt.NewProof(receipt.NewCompositeInner(comp)),
	}
}

// controlTree commits two recursion control ids and returns the root plus
// the inclusion proof for the first.
func controlTree(suite *hash.Suite) (digest.Digest, digest.Digest, receipt.MerkleProof) {
	controlID := suite.Fn.HashElems([]babybear.Elem{babybear.New(101)})
	sibling := suite.Fn.HashElems([]babybear.Elem{babybear.New(202)})
	root := suite.Fn.HashPair(controlID, sibling)
	return root, controlID, receipt.MerkleProof{Index: 0, Digests: []digest.Digest{sibling}}
}

// succinctFixtureV1 builds a valid succinct proof plus the context that
// accepts it (a v1.2 context re-rooted at the fixture's control tree).
func succinctFixtureV1(t *testing.T) (fixture, *Context) {
	t.Helper()
	suite := hash.DefaultSuites()[hash.Poseidon2Name]
	root, controlID, inclusion := controlTree(suite)

	pre := binfmt.SystemState{PC: 0x4000, MerkleRoot: binfmt.HashBytes([]byte("succinct pre"))}
	journal := []byte("recursive hello")
	cl := haltClaim(pre, journal, claim.Assumptions{})

	s := &receipt.SuccinctReceipt[claim.ReceiptClaim]{
		Seal:                  buildSuccinctSeal(suite, cl.Digest(), root, 14, controlID),
		ControlID:             controlID,
		Claim:                 claim.NewValue(cl),
		HashFn:                hash.Poseidon2Name,
		VerifierParameters:    receipt.SuccinctParamsDigestV1_2,
		ControlInclusionProof: inclusion,
	}

	ctx := V1_2().WithSuccinctVerifierParameters(&receipt.SuccinctVerifierParameters{
		ControlRoot:     root,
		ProofSystemInfo: stark.ProofSystemInfo,
		CircuitInfo:     circuit.RecursiveV1.Info,
	})
	return fixture{
		vk:      Vk(pre.Digest()),
		journal: receipt.NewJournal(journal),
		proof:   receipt.NewProof(receipt.NewSuccinctInner(s)),
	}, ctx
}

// assumptionFixtureV1 builds a composite proof whose final segment carries
// one assumption, resolved by an attached succinct receipt rooted at its
// own control tree.
func assumptionFixtureV1(t *testing.T, tamperClaim bool) fixture {
	t.Helper()
	suite := hash.DefaultSuites()[hash.Poseidon2Name]
	root, controlID, inclusion := controlTree(suite)

	assumedClaim := suite.Fn.HashElems([]babybear.Elem{babybear.New(77)})
	assumption := claim.Assumption{Claim: assumedClaim, ControlRoot: root}

	resolver := &receipt.SuccinctReceipt[claim.Unknown]{
		Seal:                  buildSuccinctSeal(suite, assumedClaim, root, 14, controlID),
		ControlID:             controlID,
		Claim:                 claim.NewPruned[claim.Unknown](assumedClaim),
		HashFn:                hash.Poseidon2Name,
		VerifierParameters:    receipt.SuccinctParamsDigestV1_2,
		ControlInclusionProof: inclusion,
	}
	if tamperClaim {
		resolver.Claim = claim.NewPruned[claim.Unknown](suite.Fn.HashElems([]babybear.Elem{babybear.New(78)}))
		// Re-seal so the receipt stays internally consistent and only the
		// assumption binding breaks.
		resolver.Seal = buildSuccinctSeal(suite, resolver.Claim.Digest(), root, 14, controlID)
	}

	segmentControlID, ok := circuit.ControlIDV1_2(hash.Poseidon2Name, 14)
	require.True(t, ok)
	pre := binfmt.SystemState{PC: 0x4000, MerkleRoot: binfmt.HashBytes([]byte("asm pre"))}
	journal := []byte("conditional hello")
	final := haltClaim(pre, journal, claim.Assumptions{claim.NewValue(assumption)})

	comp := &receipt.CompositeReceipt{
		Segments: []receipt.SegmentReceipt{{
			Seal:               buildSealV1(t, suite, final, 15, segmentControlID),
			HashFn:             hash.Poseidon2Name,
			VerifierParameters: receipt.SegmentParamsDigestV1_2,
			Claim:              final,
		}},
		AssumptionReceipts: []receipt.InnerAssumptionReceipt{
			receipt.NewSuccinctAssumption(resolver),
		},
		VerifierParameters: receipt.SegmentParamsDigestV1_2,
	}
	return fixture{
		vk:      Vk(pre.Digest()),
		journal: receipt.NewJournal(journal),
		proof:   receipt.NewProof(receipt.NewCompositeInner(comp)),
	}
}

// compositeFixtureV2 builds a valid single-segment composite proof for a
// v2/v3 context.
func compositeFixtureV2(t *testing.T, hashfn string) fixture {
	t.Helper()
	suite := hash.DefaultSuites()[hashfn]
	require.NotNil(t, suite)

	pre := binfmt.SystemState{PC: 0, MerkleRoot: binfmt.HashBytes([]byte("v2 image"))}
	journal := []byte("v2 hello")
	cl := haltClaim(pre, journal, claim.Assumptions{})
	// The v2 circuit commits pc-less states.
	cl.Pre = claim.NewValue(pre)

	comp := &receipt.CompositeReceipt{
		Segments: []receipt.SegmentReceipt{{
			Seal:   buildSealV2(t, suite, cl, 16),
			HashFn: hashfn,
			Claim:  cl,
		}},
	}
	return fixture{
		vk:      Vk(pre.Digest()),
		journal: receipt.NewJournal(journal),
		proof:   receipt.NewProof(receipt.NewCompositeInner(comp)),
	}
}
