// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package zkvm

import (
	"encoding/binary"
	"fmt"

	"github.com/luxfi/zkvm/binfmt"
	"github.com/luxfi/zkvm/claim"
	"github.com/luxfi/zkvm/digest"
	"github.com/luxfi/zkvm/receipt"
)

// DeserializeError reports a dense payload that does not parse. The first
// and last bytes are kept for diagnostics; the payload itself may be
// adversarial and is not echoed.
type DeserializeError struct {
	First *byte
	Last  *byte
}

func (e *DeserializeError) Error() string {
	return fmt.Sprintf("invalid data for deserialization: [%v...%v]", deref(e.First), deref(e.Last))
}

func deref(b *byte) any {
	if b == nil {
		return nil
	}
	return *b
}

func newDeserializeError(data []byte) *DeserializeError {
	e := &DeserializeError{}
	if len(data) > 0 {
		first, last := data[0], data[len(data)-1]
		e.First, e.Last = &first, &last
	}
	return e
}

// Union tags of the dense encoding.
const (
	denseTagComposite = 0
	denseTagSuccinct  = 1
	denseTagValue     = 0
	denseTagPruned    = 1
	denseFlagNone     = 0
	denseFlagSome     = 1
)

// DeserializeProof parses the dense length-framed payload used by the
// older transport API: the journal bytes followed by the inner receipt.
func DeserializeProof(data []byte) (receipt.Proof, receipt.Journal, error) {
	r := &denseReader{buf: data}
	journal := receipt.NewJournal(r.bytes())
	inner := r.innerReceipt()
	if r.err != nil || r.len() != 0 {
		return receipt.Proof{}, receipt.Journal{}, newDeserializeError(data)
	}
	return receipt.NewProof(inner), journal, nil
}

// SerializeProof produces the dense payload for a proof and journal.
func SerializeProof(p receipt.Proof, journal receipt.Journal) ([]byte, error) {
	w := &denseWriter{}
	w.bytes(journal.Bytes)
	if err := w.innerReceipt(p.Inner); err != nil {
		return nil, err
	}
	return w.buf, nil
}

// VerifyRaw deserializes a dense payload and verifies it under the given
// verifier.
func VerifyRaw(v Verifier, proofData []byte, vk Vk) error {
	proof, journal, err := DeserializeProof(proofData)
	if err != nil {
		return err
	}
	return v.Verify(vk, proof, journal)
}

type denseReader struct {
	buf []byte
	err error
}

func (r *denseReader) len() int { return len(r.buf) }

func (r *denseReader) fail() {
	if r.err == nil {
		r.err = &DeserializeError{}
	}
}

func (r *denseReader) u32() uint32 {
	if r.err != nil || len(r.buf) < 4 {
		r.fail()
		return 0
	}
	v := binary.LittleEndian.Uint32(r.buf)
	r.buf = r.buf[4:]
	return v
}

func (r *denseReader) u64() uint64 {
	if r.err != nil || len(r.buf) < 8 {
		r.fail()
		return 0
	}
	v := binary.LittleEndian.Uint64(r.buf)
	r.buf = r.buf[8:]
	return v
}

func (r *denseReader) count() int {
	n := r.u64()
	if r.err != nil || n > uint64(len(r.buf)) {
		r.fail()
		return 0
	}
	return int(n)
}

func (r *denseReader) bytes() []byte {
	n := r.count()
	if r.err != nil || len(r.buf) < n {
		r.fail()
		return nil
	}
	out := make([]byte, n)
	copy(out, r.buf[:n])
	r.buf = r.buf[n:]
	return out
}

func (r *denseReader) words() []uint32 {
	n := r.count()
	if r.err != nil || len(r.buf) < 4*n {
		r.fail()
		return nil
	}
	out := make([]uint32, n)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(r.buf[4*i:])
	}
	r.buf = r.buf[4*n:]
	return out
}

func (r *denseReader) digest() digest.Digest {
	var d digest.Digest
	for i := range d {
		d[i] = r.u32()
	}
	return d
}

func (r *denseReader) maybeState() claim.MaybePruned[binfmt.SystemState] {
	switch r.u32() {
	case denseTagValue:
		pc := r.u32()
		return claim.NewValue(binfmt.SystemState{PC: pc, MerkleRoot: r.digest()})
	case denseTagPruned:
		return claim.NewPruned[binfmt.SystemState](r.digest())
	default:
		r.fail()
		return claim.MaybePruned[binfmt.SystemState]{}
	}
}

func (r *denseReader) receiptClaim() claim.ReceiptClaim {
	var c claim.ReceiptClaim
	c.Pre = r.maybeState()
	c.Post = r.maybeState()
	sys, user := r.u32(), r.u32()
	exitCode, err := binfmt.ExitCodeFromPair(sys, user)
	if err != nil {
		r.fail()
		return claim.ReceiptClaim{}
	}
	c.ExitCode = exitCode

	switch r.u32() {
	case denseTagValue:
		if r.u32() != denseFlagNone {
			// The input type is uninhabited; a populated arm cannot occur.
			r.fail()
			return claim.ReceiptClaim{}
		}
		c.Input = claim.NewValue[*claim.Input](nil)
	case denseTagPruned:
		c.Input = claim.NewPruned[*claim.Input](r.digest())
	default:
		r.fail()
		return claim.ReceiptClaim{}
	}

	switch r.u32() {
	case denseTagValue:
		switch r.u32() {
		case denseFlagNone:
			c.Output = claim.NewValue[*claim.Output](nil)
		case denseFlagSome:
			c.Output = claim.NewValue(r.output())
		default:
			r.fail()
			return claim.ReceiptClaim{}
		}
	case denseTagPruned:
		c.Output = claim.NewPruned[*claim.Output](r.digest())
	default:
		r.fail()
		return claim.ReceiptClaim{}
	}
	return c
}

func (r *denseReader) output() *claim.Output {
	var out claim.Output
	switch r.u32() {
	case denseTagValue:
		out.Journal = claim.NewValue(claim.Bytes(r.bytes()))
	case denseTagPruned:
		out.Journal = claim.NewPruned[claim.Bytes](r.digest())
	default:
		r.fail()
		return nil
	}
	switch r.u32() {
	case denseTagValue:
		n := r.count()
		list := make(claim.Assumptions, 0, n)
		for i := 0; i < n && r.err == nil; i++ {
			switch r.u32() {
			case denseTagValue:
				a := claim.Assumption{Claim: r.digest(), ControlRoot: r.digest()}
				list = append(list, claim.NewValue(a))
			case denseTagPruned:
				list = append(list, claim.NewPruned[claim.Assumption](r.digest()))
			default:
				r.fail()
			}
		}
		out.Assumptions = claim.NewValue(list)
	case denseTagPruned:
		out.Assumptions = claim.NewPruned[claim.Assumptions](r.digest())
	default:
		r.fail()
		return nil
	}
	return &out
}

func (r *denseReader) segment() receipt.SegmentReceipt {
	return receipt.SegmentReceipt{
		Seal:               r.words(),
		Index:              r.u32(),
		HashFn:             string(r.bytes()),
		VerifierParameters: r.digest(),
		Claim:              r.receiptClaim(),
	}
}

func (r *denseReader) merkleProof() receipt.MerkleProof {
	p := receipt.MerkleProof{Index: r.u32()}
	n := r.count()
	p.Digests = make([]digest.Digest, 0, n)
	for i := 0; i < n && r.err == nil; i++ {
		p.Digests = append(p.Digests, r.digest())
	}
	return p
}

func (r *denseReader) composite() *receipt.CompositeReceipt {
	var c receipt.CompositeReceipt
	nSegments := r.count()
	for i := 0; i < nSegments && r.err == nil; i++ {
		c.Segments = append(c.Segments, r.segment())
	}
	nAssumptions := r.count()
	for i := 0; i < nAssumptions && r.err == nil; i++ {
		c.AssumptionReceipts = append(c.AssumptionReceipts, r.assumptionReceipt())
	}
	c.VerifierParameters = r.digest()
	return &c
}

func (r *denseReader) innerReceipt() receipt.InnerReceipt {
	switch r.u32() {
	case denseTagComposite:
		return receipt.NewCompositeInner(r.composite())
	case denseTagSuccinct:
		s := receipt.SuccinctReceipt[claim.ReceiptClaim]{
			Seal:      r.words(),
			ControlID: r.digest(),
		}
		switch r.u32() {
		case denseTagValue:
			s.Claim = claim.NewValue(r.receiptClaim())
		case denseTagPruned:
			s.Claim = claim.NewPruned[claim.ReceiptClaim](r.digest())
		default:
			r.fail()
		}
		s.HashFn = string(r.bytes())
		s.VerifierParameters = r.digest()
		s.ControlInclusionProof = r.merkleProof()
		return receipt.NewSuccinctInner(&s)
	default:
		r.fail()
		return receipt.InnerReceipt{}
	}
}

func (r *denseReader) assumptionReceipt() receipt.InnerAssumptionReceipt {
	switch r.u32() {
	case denseTagComposite:
		return receipt.NewCompositeAssumption(r.composite())
	case denseTagSuccinct:
		s := receipt.SuccinctReceipt[claim.Unknown]{
			Seal:      r.words(),
			ControlID: r.digest(),
		}
		// Unknown claims only circulate pruned.
		if r.u32() != denseTagPruned {
			r.fail()
			return receipt.InnerAssumptionReceipt{}
		}
		s.Claim = claim.NewPruned[claim.Unknown](r.digest())
		s.HashFn = string(r.bytes())
		s.VerifierParameters = r.digest()
		s.ControlInclusionProof = r.merkleProof()
		return receipt.NewSuccinctAssumption(&s)
	default:
		r.fail()
		return receipt.InnerAssumptionReceipt{}
	}
}

type denseWriter struct {
	buf []byte
}

func (w *denseWriter) u32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

func (w *denseWriter) u64(v uint64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v)
}

func (w *denseWriter) bytes(b []byte) {
	w.u64(uint64(len(b)))
	w.buf = append(w.buf, b...)
}

func (w *denseWriter) words(v []uint32) {
	w.u64(uint64(len(v)))
	for _, x := range v {
		w.u32(x)
	}
}

func (w *denseWriter) digest(d digest.Digest) {
	for _, x := range d {
		w.u32(x)
	}
}

func (w *denseWriter) maybeState(m claim.MaybePruned[binfmt.SystemState]) {
	if m.IsPruned() {
		w.u32(denseTagPruned)
		w.digest(m.Digest())
		return
	}
	s, _ := m.Value()
	w.u32(denseTagValue)
	w.u32(s.PC)
	w.digest(s.MerkleRoot)
}

func (w *denseWriter) receiptClaim(c claim.ReceiptClaim) {
	w.maybeState(c.Pre)
	w.maybeState(c.Post)
	sys, user := c.ExitCode.Pair()
	w.u32(sys)
	w.u32(user)

	if c.Input.IsPruned() {
		w.u32(denseTagPruned)
		w.digest(c.Input.Digest())
	} else {
		w.u32(denseTagValue)
		w.u32(denseFlagNone)
	}

	if c.Output.IsPruned() {
		w.u32(denseTagPruned)
		w.digest(c.Output.Digest())
		return
	}
	w.u32(denseTagValue)
	out, _ := c.Output.Value()
	if out == nil {
		w.u32(denseFlagNone)
		return
	}
	w.u32(denseFlagSome)
	w.output(out)
}

func (w *denseWriter) output(out *claim.Output) {
	if out.Journal.IsPruned() {
		w.u32(denseTagPruned)
		w.digest(out.Journal.Digest())
	} else {
		b, _ := out.Journal.Value()
		w.u32(denseTagValue)
		w.bytes(b)
	}
	if out.Assumptions.IsPruned() {
		w.u32(denseTagPruned)
		w.digest(out.Assumptions.Digest())
		return
	}
	list, _ := out.Assumptions.Value()
	w.u32(denseTagValue)
	w.u64(uint64(len(list)))
	for _, entry := range list {
		if entry.IsPruned() {
			w.u32(denseTagPruned)
			w.digest(entry.Digest())
			continue
		}
		a, _ := entry.Value()
		w.u32(denseTagValue)
		w.digest(a.Claim)
		w.digest(a.ControlRoot)
	}
}

func (w *denseWriter) segment(s *receipt.SegmentReceipt) {
	w.words(s.Seal)
	w.u32(s.Index)
	w.bytes([]byte(s.HashFn))
	w.digest(s.VerifierParameters)
	w.receiptClaim(s.Claim)
}

func (w *denseWriter) merkleProof(p *receipt.MerkleProof) {
	w.u32(p.Index)
	w.u64(uint64(len(p.Digests)))
	for _, d := range p.Digests {
		w.digest(d)
	}
}

func (w *denseWriter) composite(c *receipt.CompositeReceipt) error {
	w.u64(uint64(len(c.Segments)))
	for i := range c.Segments {
		w.segment(&c.Segments[i])
	}
	w.u64(uint64(len(c.AssumptionReceipts)))
	for i := range c.AssumptionReceipts {
		if err := w.assumptionReceipt(&c.AssumptionReceipts[i]); err != nil {
			return err
		}
	}
	w.digest(c.VerifierParameters)
	return nil
}

func (w *denseWriter) innerReceipt(r receipt.InnerReceipt) error {
	if c, err := r.Composite(); err == nil {
		w.u32(denseTagComposite)
		return w.composite(c)
	}
	s, err := r.Succinct()
	if err != nil {
		return err
	}
	w.u32(denseTagSuccinct)
	w.words(s.Seal)
	w.digest(s.ControlID)
	if s.Claim.IsPruned() {
		w.u32(denseTagPruned)
		w.digest(s.Claim.Digest())
	} else {
		c, _ := s.Claim.Value()
		w.u32(denseTagValue)
		w.receiptClaim(c)
	}
	w.bytes([]byte(s.HashFn))
	w.digest(s.VerifierParameters)
	w.merkleProof(&s.ControlInclusionProof)
	return nil
}

func (w *denseWriter) assumptionReceipt(r *receipt.InnerAssumptionReceipt) error {
	if c, err := r.Composite(); err == nil {
		w.u32(denseTagComposite)
		return w.composite(c)
	}
	s, err := r.Succinct()
	if err != nil {
		return err
	}
	w.u32(denseTagSuccinct)
	w.words(s.Seal)
	w.digest(s.ControlID)
	w.u32(denseTagPruned)
	w.digest(s.Claim.Digest())
	w.bytes([]byte(s.HashFn))
	w.digest(s.VerifierParameters)
	w.merkleProof(&s.ControlInclusionProof)
	return nil
}
