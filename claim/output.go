// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package claim

import (
	"errors"
	"fmt"

	"github.com/luxfi/zkvm/binfmt"
	"github.com/luxfi/zkvm/digest"
)

// Output is the committed result of an execution: the journal the guest
// wrote and the assumptions it made through recursive verification calls.
// A claim whose assumption list is non-empty is only conditionally valid.
type Output struct {
	Journal     MaybePruned[Bytes]       `json:"journal" cbor:"journal"`
	Assumptions MaybePruned[Assumptions] `json:"assumptions" cbor:"assumptions"`
}

// Digest returns the tagged commitment to the output. A nil output (an
// execution that produced none) commits to the zero digest.
func (o *Output) Digest() digest.Digest {
	if o == nil {
		return digest.Zero
	}
	return binfmt.TaggedStruct(
		"risc0.Output",
		[]digest.Digest{o.Journal.Digest(), o.Assumptions.Digest()},
		nil,
	)
}

// Assumption is a statement relied on while proving: the digest of the
// assumed claim and the control root committing to the recursion programs
// allowed to resolve it. A zero control root means "resolve under the same
// parameters as the surrounding receipt" (self-composition).
type Assumption struct {
	Claim       digest.Digest `json:"claim" cbor:"claim"`
	ControlRoot digest.Digest `json:"control_root" cbor:"control_root"`
}

// Digest returns the tagged commitment to the assumption.
func (a Assumption) Digest() digest.Digest {
	return binfmt.TaggedStruct(
		"risc0.Assumption",
		[]digest.Digest{a.Claim, a.ControlRoot},
		nil,
	)
}

// Assumptions is the ordered list of assumptions attached to an output.
type Assumptions []MaybePruned[Assumption]

// Digest folds the list into its tagged commitment; the empty list hashes
// to the zero digest.
func (as Assumptions) Digest() digest.Digest {
	elems := make([]digest.Digest, len(as))
	for i, a := range as {
		elems[i] = a.Digest()
	}
	return binfmt.TaggedList("risc0.Assumptions", elems)
}

// Add prepends an assumption to the list.
func (as *Assumptions) Add(a MaybePruned[Assumption]) {
	*as = append(Assumptions{a}, *as...)
}

// Resolve drops the head of the list after checking it matches the
// resolved digest.
func (as *Assumptions) Resolve(resolved digest.Digest) error {
	if len(*as) == 0 {
		return errors.New("cannot resolve assumption from empty list")
	}
	head := (*as)[0]
	if head.Digest() != resolved {
		return fmt.Errorf("resolved assumption is not the head of the list: %s != %s",
			resolved, head.Digest())
	}
	*as = (*as)[1:]
	return nil
}

// OutputIsNone reports whether a possibly pruned optional output is absent:
// either an explicit nil or a subtree pruned to the zero digest.
func OutputIsNone(m MaybePruned[*Output]) bool {
	if m.IsPruned() {
		return m.Digest().IsZero()
	}
	v, _ := m.Value()
	return v == nil
}

// AssumptionsEmpty reports whether a possibly pruned assumption list is
// empty; a list pruned to the zero digest counts as empty.
func AssumptionsEmpty(m MaybePruned[Assumptions]) bool {
	if m.IsPruned() {
		return m.Digest().IsZero()
	}
	v, _ := m.Value()
	return len(v) == 0
}

// AddAssumption prepends an assumption, preserving prunedness: adding to a
// pruned list advances the pruned digest by one cons cell.
func AddAssumption(m *MaybePruned[Assumptions], a MaybePruned[Assumption]) {
	if m.IsPruned() {
		*m = NewPruned[Assumptions](
			binfmt.TaggedListCons("risc0.Assumptions", a.Digest(), m.Digest()))
		return
	}
	list, _ := m.Value()
	list.Add(a)
	*m = NewValue(list)
}

// ResolveAssumption removes the head of a possibly pruned assumption list.
// For a pruned list, tail must be the digest of the list without its head;
// the head digest and tail are recombined and checked against the current
// commitment before the list is advanced.
func ResolveAssumption(m *MaybePruned[Assumptions], resolved, tail digest.Digest) error {
	if m.IsPruned() {
		reconstructed := binfmt.TaggedListCons("risc0.Assumptions", resolved, tail)
		if reconstructed != m.Digest() {
			return fmt.Errorf("reconstructed list digest does not match; expected %s, reconstructed %s",
				m.Digest(), reconstructed)
		}
		*m = NewPruned[Assumptions](tail)
		return nil
	}
	list, _ := m.Value()
	if err := list.Resolve(resolved); err != nil {
		return err
	}
	*m = NewValue(list)
	return nil
}
