// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package receipt

import (
	"sort"

	"github.com/luxfi/zkvm/binfmt"
	"github.com/luxfi/zkvm/claim"
	"github.com/luxfi/zkvm/digest"
	"github.com/luxfi/zkvm/stark"
)

// VerifierContext is the per-prover-version state the integrity routines
// dispatch through: circuit identities, allowed control ids and roots, seal
// decoding, and the STARK engine invocation for both circuit kinds. One
// context targets exactly one prover minor version.
type VerifierContext interface {
	// SegmentVerifierParameters returns the segment parameters, or nil if
	// the context is not configured for segment receipts.
	SegmentVerifierParameters() *SegmentVerifierParameters

	// SuccinctVerifierParameters returns the succinct parameters, or nil
	// if the context is not configured for succinct receipts.
	SuccinctVerifierParameters() *SuccinctVerifierParameters

	// SegmentCircuitInfo identifies the segment circuit revision.
	SegmentCircuitInfo() stark.ProtocolInfo

	// SuccinctCircuitInfo identifies the recursion circuit revision.
	SuccinctCircuitInfo() stark.ProtocolInfo

	// SuccinctOutputSize is the element count of the recursion circuit's
	// seal output region.
	SuccinctOutputSize() int

	// SegmentSealOffset is the word offset of the STARK payload within a
	// segment seal (the size of any version prefix).
	SegmentSealOffset() int

	// DecodeFromSeal extracts the claim a segment seal commits to.
	DecodeFromSeal(seal []uint32) (claim.ReceiptClaim, error)

	// VerifySegment runs the STARK engine over a segment seal.
	VerifySegment(hashfn string, seal []uint32, params *SegmentVerifierParameters) error

	// VerifySuccinct runs the STARK engine over a succinct seal, checking
	// presented control ids against the control root through the given
	// inclusion proof.
	VerifySuccinct(hashfn string, seal []uint32, proof *MerkleProof, params *SuccinctVerifierParameters) error

	// AssumptionContext derives the context an assumption receipt must
	// verify under: the same context for a zero control root, otherwise a
	// succinct-only context pinned to the assumption's control root.
	AssumptionContext(a claim.Assumption) VerifierContext

	// IsValidReceipt applies version-specific shape checks before any
	// cryptographic work.
	IsValidReceipt(p *Proof) bool
}

// SegmentVerifierParameters is the allow-set a segment receipt verifies
// against.
type SegmentVerifierParameters struct {
	// ControlIDs is the set of segment prover programs the verifier
	// accepts, held sorted by digest bytes.
	ControlIDs []digest.Digest
	// ProofSystemInfo pins the proof system revision.
	ProofSystemInfo stark.ProtocolInfo
	// CircuitInfo pins the segment circuit revision.
	CircuitInfo stark.ProtocolInfo
}

// NewSegmentVerifierParameters sorts and deduplicates the control id set.
func NewSegmentVerifierParameters(controlIDs []digest.Digest, proofSystem, circuitInfo stark.ProtocolInfo) *SegmentVerifierParameters {
	ids := make([]digest.Digest, len(controlIDs))
	copy(ids, controlIDs)
	sort.Slice(ids, func(i, j int) bool { return lessDigest(ids[i], ids[j]) })
	dedup := ids[:0]
	for i, id := range ids {
		if i == 0 || id != ids[i-1] {
			dedup = append(dedup, id)
		}
	}
	return &SegmentVerifierParameters{
		ControlIDs:      dedup,
		ProofSystemInfo: proofSystem,
		CircuitInfo:     circuitInfo,
	}
}

func lessDigest(a, b digest.Digest) bool {
	ab, bb := a.Bytes(), b.Bytes()
	for i := range ab {
		if ab[i] != bb[i] {
			return ab[i] < bb[i]
		}
	}
	return false
}

// HasControlID reports membership in the allow-set.
func (p *SegmentVerifierParameters) HasControlID(id digest.Digest) bool {
	n := sort.Search(len(p.ControlIDs), func(i int) bool {
		return !lessDigest(p.ControlIDs[i], id)
	})
	return n < len(p.ControlIDs) && p.ControlIDs[n] == id
}

// Digest returns the tagged commitment to the parameters. The value is
// stable per revision and acts as the compatibility fingerprint carried in
// receipts.
func (p *SegmentVerifierParameters) Digest() digest.Digest {
	return binfmt.TaggedStruct(
		"risc0.SegmentReceiptVerifierParameters",
		[]digest.Digest{
			binfmt.TaggedIter("risc0.ControlIdSet", p.ControlIDs),
			binfmt.HashBytes(p.ProofSystemInfo[:]),
			binfmt.HashBytes(p.CircuitInfo[:]),
		},
		nil,
	)
}

// SuccinctVerifierParameters is the allow-set a succinct receipt verifies
// against.
type SuccinctVerifierParameters struct {
	// ControlRoot commits to the recursion programs allowed to produce the
	// receipt.
	ControlRoot digest.Digest
	// InnerControlRoot, when set, is the root the receipt's own output
	// must commit to; nil means it equals ControlRoot. It differs only
	// when a receipt recursively verifies one produced under another hash
	// suite.
	InnerControlRoot *digest.Digest
	// ProofSystemInfo pins the proof system revision.
	ProofSystemInfo stark.ProtocolInfo
	// CircuitInfo pins the recursion circuit revision.
	CircuitInfo stark.ProtocolInfo
}

// EffectiveInnerControlRoot is InnerControlRoot, defaulted to ControlRoot.
func (p *SuccinctVerifierParameters) EffectiveInnerControlRoot() digest.Digest {
	if p.InnerControlRoot != nil {
		return *p.InnerControlRoot
	}
	return p.ControlRoot
}

// Digest returns the tagged commitment to the parameters.
func (p *SuccinctVerifierParameters) Digest() digest.Digest {
	return binfmt.TaggedStruct(
		"risc0.SuccinctReceiptVerifierParameters",
		[]digest.Digest{
			p.ControlRoot,
			p.EffectiveInnerControlRoot(),
			binfmt.HashBytes(p.ProofSystemInfo[:]),
			binfmt.HashBytes(p.CircuitInfo[:]),
		},
		nil,
	)
}

// Published verifier-parameter digests. These fingerprints are part of the
// compatibility contract with existing receipts and stay fixed across
// releases.
var (
	SegmentParamsDigestV1_0 = digest.MustParse("62d97bc46d0a877acb857043cbb90a6beafa21c97f01472952fd28be15b47508")
	SegmentParamsDigestV1_1 = digest.MustParse("52a27aff2de5a8206e3e88cb8dcb087c1193ede8efaf4889117bc68e704cf29a")
	SegmentParamsDigestV1_2 = SegmentParamsDigestV1_1

	SuccinctParamsDigestV1_0 = digest.MustParse("f171d19df8f27878677080c5e4c38ed2655f5f54302468ce805594a4b3e38104")
	SuccinctParamsDigestV1_1 = digest.MustParse("71023badfee05b76de871c5cc5a95cbedf50395e3634ffb9f3192950b16a77ae")
	SuccinctParamsDigestV1_2 = digest.MustParse("21a829e931cda9f34723dc77d947efe264771fea83bc495b3903014d0fe50d57")
)
