// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package receipt

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/luxfi/zkvm/claim"
)

// The inner receipt unions serialize externally tagged, matching the
// on-disk receipt schema: {"Composite": {...}} or {"Succinct": {...}}.

// MarshalJSON writes the externally tagged form.
func (r InnerReceipt) MarshalJSON() ([]byte, error) {
	switch {
	case r.composite != nil:
		return json.Marshal(map[string]*CompositeReceipt{"Composite": r.composite})
	case r.succinct != nil:
		return json.Marshal(map[string]*SuccinctReceipt[claim.ReceiptClaim]{"Succinct": r.succinct})
	default:
		return nil, fmt.Errorf("inner receipt: empty union")
	}
}

// UnmarshalJSON reads the externally tagged form.
func (r *InnerReceipt) UnmarshalJSON(data []byte) error {
	var tagged map[string]json.RawMessage
	if err := json.Unmarshal(data, &tagged); err != nil {
		return err
	}
	if raw, ok := tagged["Composite"]; ok && len(tagged) == 1 {
		var c CompositeReceipt
		if err := json.Unmarshal(raw, &c); err != nil {
			return err
		}
		*r = NewCompositeInner(&c)
		return nil
	}
	if raw, ok := tagged["Succinct"]; ok && len(tagged) == 1 {
		var s SuccinctReceipt[claim.ReceiptClaim]
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		*r = NewSuccinctInner(&s)
		return nil
	}
	return fmt.Errorf("inner receipt: expected a Composite or Succinct arm")
}

// MarshalCBOR writes the externally tagged CBOR form.
func (r InnerReceipt) MarshalCBOR() ([]byte, error) {
	switch {
	case r.composite != nil:
		return cbor.Marshal(map[string]*CompositeReceipt{"Composite": r.composite})
	case r.succinct != nil:
		return cbor.Marshal(map[string]*SuccinctReceipt[claim.ReceiptClaim]{"Succinct": r.succinct})
	default:
		return nil, fmt.Errorf("inner receipt: empty union")
	}
}

// UnmarshalCBOR reads the externally tagged CBOR form.
func (r *InnerReceipt) UnmarshalCBOR(data []byte) error {
	var tagged map[string]cbor.RawMessage
	if err := cbor.Unmarshal(data, &tagged); err != nil {
		return err
	}
	if raw, ok := tagged["Composite"]; ok && len(tagged) == 1 {
		var c CompositeReceipt
		if err := cbor.Unmarshal(raw, &c); err != nil {
			return err
		}
		*r = NewCompositeInner(&c)
		return nil
	}
	if raw, ok := tagged["Succinct"]; ok && len(tagged) == 1 {
		var s SuccinctReceipt[claim.ReceiptClaim]
		if err := cbor.Unmarshal(raw, &s); err != nil {
			return err
		}
		*r = NewSuccinctInner(&s)
		return nil
	}
	return fmt.Errorf("inner receipt: expected a Composite or Succinct arm")
}

// MarshalJSON writes the externally tagged form.
func (r InnerAssumptionReceipt) MarshalJSON() ([]byte, error) {
	switch {
	case r.composite != nil:
		return json.Marshal(map[string]*CompositeReceipt{"Composite": r.composite})
	case r.succinct != nil:
		return json.Marshal(map[string]*SuccinctReceipt[claim.Unknown]{"Succinct": r.succinct})
	default:
		return nil, fmt.Errorf("assumption receipt: empty union")
	}
}

// UnmarshalJSON reads the externally tagged form.
func (r *InnerAssumptionReceipt) UnmarshalJSON(data []byte) error {
	var tagged map[string]json.RawMessage
	if err := json.Unmarshal(data, &tagged); err != nil {
		return err
	}
	if raw, ok := tagged["Composite"]; ok && len(tagged) == 1 {
		var c CompositeReceipt
		if err := json.Unmarshal(raw, &c); err != nil {
			return err
		}
		*r = NewCompositeAssumption(&c)
		return nil
	}
	if raw, ok := tagged["Succinct"]; ok && len(tagged) == 1 {
		var s SuccinctReceipt[claim.Unknown]
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		*r = NewSuccinctAssumption(&s)
		return nil
	}
	return fmt.Errorf("assumption receipt: expected a Composite or Succinct arm")
}

// MarshalCBOR writes the externally tagged CBOR form.
func (r InnerAssumptionReceipt) MarshalCBOR() ([]byte, error) {
	switch {
	case r.composite != nil:
		return cbor.Marshal(map[string]*CompositeReceipt{"Composite": r.composite})
	case r.succinct != nil:
		return cbor.Marshal(map[string]*SuccinctReceipt[claim.Unknown]{"Succinct": r.succinct})
	default:
		return nil, fmt.Errorf("assumption receipt: empty union")
	}
}

// UnmarshalCBOR reads the externally tagged CBOR form.
func (r *InnerAssumptionReceipt) UnmarshalCBOR(data []byte) error {
	var tagged map[string]cbor.RawMessage
	if err := cbor.Unmarshal(data, &tagged); err != nil {
		return err
	}
	if raw, ok := tagged["Composite"]; ok && len(tagged) == 1 {
		var c CompositeReceipt
		if err := cbor.Unmarshal(raw, &c); err != nil {
			return err
		}
		*r = NewCompositeAssumption(&c)
		return nil
	}
	if raw, ok := tagged["Succinct"]; ok && len(tagged) == 1 {
		var s SuccinctReceipt[claim.Unknown]
		if err := cbor.Unmarshal(raw, &s); err != nil {
			return err
		}
		*r = NewSuccinctAssumption(&s)
		return nil
	}
	return fmt.Errorf("assumption receipt: expected a Composite or Succinct arm")
}
