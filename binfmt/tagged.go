// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package binfmt implements the binary claim format shared between the
// prover and the verifier: the domain-separated tagged hashing scheme that
// turns structured claims into digests, the 16-bit "SHA half" word codec
// used by the flat claim encoding, and the system-state and exit-code types
// embedded in every claim.
//
// Tagged hashing is SHA-256 based regardless of the hash suite a proof was
// produced with; the tag strings are part of the wire contract and must be
// identical bit-for-bit across implementations.
package binfmt

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"

	"github.com/luxfi/zkvm/digest"
)

var (
	// ErrEndOfStream reports that a flat decode ran out of words.
	ErrEndOfStream = errors.New("unexpected end of stream")
	// ErrInvalidHalfWord reports a SHA half word above 16 bits.
	ErrInvalidHalfWord = errors.New("invalid sha half word")
)

// Digestible is anything with a canonical tagged-hash digest.
type Digestible interface {
	Digest() digest.Digest
}

// TaggedStruct computes the domain-separated hash of a struct node: the
// SHA-256 of the tag, followed by each child digest, each u32 scalar in
// little-endian, and a trailing u16 count of the child digests.
func TaggedStruct(tag string, down []digest.Digest, data []uint32) digest.Digest {
	tagDigest := sha256.Sum256([]byte(tag))

	buf := make([]byte, 0, len(tagDigest)+len(down)*digest.Bytes+len(data)*4+2)
	buf = append(buf, tagDigest[:]...)
	for _, d := range down {
		b := d.Bytes()
		buf = append(buf, b[:]...)
	}
	for _, v := range data {
		buf = binary.LittleEndian.AppendUint32(buf, v)
	}
	buf = binary.LittleEndian.AppendUint16(buf, uint16(len(down)))

	return digest.FromBytes(sha256.Sum256(buf))
}

// TaggedListCons hashes one cons cell of a tagged list.
func TaggedListCons(tag string, head, tail digest.Digest) digest.Digest {
	return TaggedStruct(tag, []digest.Digest{head, tail}, nil)
}

// TaggedList hashes an ordered list of digests by folding cons cells from
// the right. The empty list hashes to the zero digest.
func TaggedList(tag string, elems []digest.Digest) digest.Digest {
	cur := digest.Zero
	for i := len(elems) - 1; i >= 0; i-- {
		cur = TaggedListCons(tag, elems[i], cur)
	}
	return cur
}

// TaggedIter hashes an ordered collection of digests as a single node.
func TaggedIter(tag string, elems []digest.Digest) digest.Digest {
	return TaggedStruct(tag, elems, nil)
}

// HashBytes is the SHA-256 digest of raw bytes, used wherever the claim
// format commits to an opaque byte string (e.g. journals, protocol info).
func HashBytes(b []byte) digest.Digest {
	return digest.FromBytes(sha256.Sum256(b))
}

// Reader consumes a flat sequence of u32 words front to back.
type Reader struct {
	words []uint32
}

// NewReader wraps a word slice. The reader does not copy the slice.
func NewReader(words []uint32) *Reader {
	return &Reader{words: words}
}

// Len returns the number of unread words.
func (r *Reader) Len() int {
	return len(r.words)
}

// PopFront removes and returns the next word.
func (r *Reader) PopFront() (uint32, error) {
	if len(r.words) == 0 {
		return 0, ErrEndOfStream
	}
	w := r.words[0]
	r.words = r.words[1:]
	return w, nil
}

// ReadShaHalfs reassembles a digest from sixteen 16-bit half words: each
// pair (lo, hi) forms one u32 word as lo | hi<<16.
func ReadShaHalfs(r *Reader) (digest.Digest, error) {
	var d digest.Digest
	for i := 0; i < digest.Words; i++ {
		lo, err := r.PopFront()
		if err != nil {
			return digest.Zero, err
		}
		hi, err := r.PopFront()
		if err != nil {
			return digest.Zero, err
		}
		if lo > 0xffff || hi > 0xffff {
			return digest.Zero, ErrInvalidHalfWord
		}
		d[i] = lo | hi<<16
	}
	return d, nil
}

// WriteShaHalfs appends a digest as sixteen 16-bit half words.
func WriteShaHalfs(flat []uint32, d digest.Digest) []uint32 {
	for i := 0; i < digest.Words; i++ {
		flat = append(flat, d[i]&0xffff, d[i]>>16)
	}
	return flat
}
