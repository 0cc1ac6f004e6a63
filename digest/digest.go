// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package digest implements the 256-bit digest type shared by every layer of
// the proof verifier. A digest is viewable either as eight little-endian
// 32-bit words (the form the STARK circuits operate on) or as 32 bytes (the
// form hash functions emit); both views commit to the same value.
package digest

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
)

const (
	// Words is the number of 32-bit words in a digest.
	Words = 8
	// Bytes is the byte length of a digest.
	Bytes = 32
)

var ErrInvalidDigestLength = errors.New("invalid digest length")

// Digest is a 256-bit hash value stored as eight little-endian u32 words.
//
// The all-zero digest doubles as a sentinel throughout the receipt model:
// an empty assumption list, an absent pruned subtree, and the
// "self-referential" control root are all represented by Zero.
type Digest [Words]uint32

// Zero is the all-zero digest sentinel.
var Zero = Digest{}

// FromWords builds a digest from eight u32 words.
func FromWords(w [Words]uint32) Digest {
	return Digest(w)
}

// FromBytes builds a digest from 32 bytes, interpreting each group of four
// bytes as a little-endian u32.
func FromBytes(b [Bytes]byte) Digest {
	var d Digest
	for i := 0; i < Words; i++ {
		d[i] = binary.LittleEndian.Uint32(b[4*i:])
	}
	return d
}

// FromSlice builds a digest from a 32-byte slice.
func FromSlice(b []byte) (Digest, error) {
	if len(b) != Bytes {
		return Zero, ErrInvalidDigestLength
	}
	var arr [Bytes]byte
	copy(arr[:], b)
	return FromBytes(arr), nil
}

// Parse decodes a 64-character hex string into a digest.
func Parse(s string) (Digest, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return Zero, fmt.Errorf("parse digest: %w", err)
	}
	return FromSlice(raw)
}

// MustParse is Parse for static table entries; it panics on malformed input.
func MustParse(s string) Digest {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Bytes returns the 32-byte little-endian view of the digest.
func (d Digest) Bytes() [Bytes]byte {
	var b [Bytes]byte
	for i := 0; i < Words; i++ {
		binary.LittleEndian.PutUint32(b[4*i:], d[i])
	}
	return b
}

// WordSlice returns the words of the digest as a fresh slice.
func (d Digest) WordSlice() []uint32 {
	out := make([]uint32, Words)
	copy(out, d[:])
	return out
}

// IsZero reports whether the digest is the all-zero sentinel.
func (d Digest) IsZero() bool {
	return d == Zero
}

// String renders the digest as lowercase hex.
func (d Digest) String() string {
	b := d.Bytes()
	return hex.EncodeToString(b[:])
}

// MarshalJSON encodes the digest as an array of 32 byte values.
func (d Digest) MarshalJSON() ([]byte, error) {
	b := d.Bytes()
	out := make([]uint16, Bytes)
	for i, v := range b {
		out[i] = uint16(v)
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes either the 32-byte array form or a hex string.
func (d *Digest) UnmarshalJSON(data []byte) error {
	var nums []uint16
	if err := json.Unmarshal(data, &nums); err == nil {
		raw := make([]byte, 0, len(nums))
		for _, v := range nums {
			if v > 0xff {
				return ErrInvalidDigestLength
			}
			raw = append(raw, byte(v))
		}
		got, err := FromSlice(raw)
		if err != nil {
			return err
		}
		*d = got
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("digest: unsupported encoding")
	}
	got, err := Parse(s)
	if err != nil {
		return err
	}
	*d = got
	return nil
}

// MarshalBinary returns the 32-byte form.
func (d Digest) MarshalBinary() ([]byte, error) {
	b := d.Bytes()
	return b[:], nil
}

// UnmarshalBinary reads the 32-byte form.
func (d *Digest) UnmarshalBinary(data []byte) error {
	got, err := FromSlice(data)
	if err != nil {
		return err
	}
	*d = got
	return nil
}
