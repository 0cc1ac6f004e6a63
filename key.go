// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package zkvm

import (
	"encoding/json"

	"github.com/luxfi/zkvm/digest"
)

// Vk is the verification key of a guest program: the image id, a digest
// committing to the program's initial memory image. It is constructible
// from either the eight-word or the 32-byte view; both yield the same key.
type Vk digest.Digest

// VkFromWords builds a key from eight little-endian u32 words.
func VkFromWords(w [digest.Words]uint32) Vk {
	return Vk(digest.FromWords(w))
}

// VkFromBytes builds a key from 32 bytes.
func VkFromBytes(b [digest.Bytes]byte) Vk {
	return Vk(digest.FromBytes(b))
}

// VkFromSlice builds a key from a 32-byte slice.
func VkFromSlice(b []byte) (Vk, error) {
	d, err := digest.FromSlice(b)
	return Vk(d), err
}

// Digest returns the key as a digest.
func (vk Vk) Digest() digest.Digest {
	return digest.Digest(vk)
}

// Words returns the eight-word view.
func (vk Vk) Words() []uint32 {
	return digest.Digest(vk).WordSlice()
}

// Bytes returns the 32-byte view.
func (vk Vk) Bytes() [digest.Bytes]byte {
	return digest.Digest(vk).Bytes()
}

// String renders the key as hex.
func (vk Vk) String() string {
	return digest.Digest(vk).String()
}

// MarshalJSON uses the digest encoding.
func (vk Vk) MarshalJSON() ([]byte, error) {
	return json.Marshal(digest.Digest(vk))
}

// UnmarshalJSON uses the digest encoding.
func (vk *Vk) UnmarshalJSON(data []byte) error {
	var d digest.Digest
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	*vk = Vk(d)
	return nil
}
