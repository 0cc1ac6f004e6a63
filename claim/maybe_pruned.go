// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package claim implements the Merkle-ized record of a zkVM execution: the
// ReceiptClaim and its constituent parts, each field wrapped in MaybePruned
// so any subtree can be replaced by its digest without changing the
// commitment to the whole structure.
package claim

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/luxfi/zkvm/binfmt"
	"github.com/luxfi/zkvm/digest"
)

// PrunedValueError reports access to a subtree that is only present as its
// digest.
type PrunedValueError struct {
	Digest digest.Digest
}

func (e *PrunedValueError) Error() string {
	return fmt.Sprintf("value is pruned: %s", e.Digest)
}

// MaybePruned holds either a value or the digest committing to it. The two
// forms are interchangeable under Digest:
//
//	NewValue(x).Digest() == NewPruned(x.Digest()).Digest()
type MaybePruned[T binfmt.Digestible] struct {
	value  T
	pruned digest.Digest
	isVal  bool
}

// NewValue wraps an unpruned value.
func NewValue[T binfmt.Digestible](v T) MaybePruned[T] {
	return MaybePruned[T]{value: v, isVal: true}
}

// NewPruned wraps the digest of an absent subtree.
func NewPruned[T binfmt.Digestible](d digest.Digest) MaybePruned[T] {
	return MaybePruned[T]{pruned: d}
}

// Digest returns the commitment to the wrapped subtree.
func (m MaybePruned[T]) Digest() digest.Digest {
	if m.isVal {
		return m.value.Digest()
	}
	return m.pruned
}

// Value returns the wrapped value, or PrunedValueError if only the digest
// is present.
func (m MaybePruned[T]) Value() (T, error) {
	if m.isVal {
		return m.value, nil
	}
	var zero T
	return zero, &PrunedValueError{Digest: m.pruned}
}

// IsPruned reports whether only the digest is present.
func (m MaybePruned[T]) IsPruned() bool {
	return !m.isVal
}

// String formats the node with its digest so divergent trees can be
// compared even when pruned.
func (m MaybePruned[T]) String() string {
	if m.isVal {
		return fmt.Sprintf("MaybePruned{value: %v, digest: %s}", m.value, m.Digest())
	}
	return fmt.Sprintf("MaybePruned{digest: %s}", m.pruned)
}

// MarshalJSON writes the externally tagged form:
// {"Value": ...} or {"Pruned": <digest>}.
func (m MaybePruned[T]) MarshalJSON() ([]byte, error) {
	if m.isVal {
		return json.Marshal(map[string]any{"Value": m.value})
	}
	return json.Marshal(map[string]digest.Digest{"Pruned": m.pruned})
}

// UnmarshalJSON reads the externally tagged form.
func (m *MaybePruned[T]) UnmarshalJSON(data []byte) error {
	var tagged map[string]json.RawMessage
	if err := json.Unmarshal(data, &tagged); err != nil {
		return err
	}
	if raw, ok := tagged["Value"]; ok && len(tagged) == 1 {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		*m = NewValue(v)
		return nil
	}
	if raw, ok := tagged["Pruned"]; ok && len(tagged) == 1 {
		var d digest.Digest
		if err := json.Unmarshal(raw, &d); err != nil {
			return err
		}
		*m = NewPruned[T](d)
		return nil
	}
	return fmt.Errorf("maybe pruned: expected a Value or Pruned arm")
}

// MarshalCBOR writes the same externally tagged form in CBOR.
func (m MaybePruned[T]) MarshalCBOR() ([]byte, error) {
	if m.isVal {
		return cbor.Marshal(map[string]any{"Value": m.value})
	}
	return cbor.Marshal(map[string]digest.Digest{"Pruned": m.pruned})
}

// UnmarshalCBOR reads the externally tagged CBOR form.
func (m *MaybePruned[T]) UnmarshalCBOR(data []byte) error {
	var tagged map[string]cbor.RawMessage
	if err := cbor.Unmarshal(data, &tagged); err != nil {
		return err
	}
	if raw, ok := tagged["Value"]; ok && len(tagged) == 1 {
		var v T
		if err := cbor.Unmarshal(raw, &v); err != nil {
			return err
		}
		*m = NewValue(v)
		return nil
	}
	if raw, ok := tagged["Pruned"]; ok && len(tagged) == 1 {
		var d digest.Digest
		if err := cbor.Unmarshal(raw, &d); err != nil {
			return err
		}
		*m = NewPruned[T](d)
		return nil
	}
	return fmt.Errorf("maybe pruned: expected a Value or Pruned arm")
}
