// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package claim

import (
	"errors"
	"fmt"

	"github.com/luxfi/zkvm/binfmt"
)

// ErrDecode wraps any failure while decoding a claim from its flat form.
var ErrDecode = errors.New("failed to decode receipt claim")

// Decode reads a claim from the flat u32 form:
//
//	[ input digest halfs | pre state | post state | sys | user | output digest halfs ]
//
// Input and output come back pruned; the flat form carries only their
// digests.
func Decode(r *binfmt.Reader) (ReceiptClaim, error) {
	input, err := binfmt.ReadShaHalfs(r)
	if err != nil {
		return ReceiptClaim{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	pre, err := binfmt.DecodeSystemState(r)
	if err != nil {
		return ReceiptClaim{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	post, err := binfmt.DecodeSystemState(r)
	if err != nil {
		return ReceiptClaim{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	sys, err := r.PopFront()
	if err != nil {
		return ReceiptClaim{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	user, err := r.PopFront()
	if err != nil {
		return ReceiptClaim{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	exitCode, err := binfmt.ExitCodeFromPair(sys, user)
	if err != nil {
		return ReceiptClaim{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	output, err := binfmt.ReadShaHalfs(r)
	if err != nil {
		return ReceiptClaim{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return ReceiptClaim{
		Input:    NewPruned[*Input](input),
		Pre:      NewValue(pre),
		Post:     NewValue(post),
		ExitCode: exitCode,
		Output:   NewPruned[*Output](output),
	}, nil
}

// Encode appends the flat u32 form of the claim. Pre and post states must
// be present as values.
func (c ReceiptClaim) Encode(flat []uint32) ([]uint32, error) {
	flat = binfmt.WriteShaHalfs(flat, c.Input.Digest())
	pre, err := c.Pre.Value()
	if err != nil {
		return nil, err
	}
	flat = pre.Encode(flat)
	post, err := c.Post.Value()
	if err != nil {
		return nil, err
	}
	flat = post.Encode(flat)
	sys, user := c.ExitCode.Pair()
	flat = append(flat, sys, user)
	flat = binfmt.WriteShaHalfs(flat, c.Output.Digest())
	return flat, nil
}

// DecodeWords is Decode over a raw word slice.
func DecodeWords(words []uint32) (ReceiptClaim, error) {
	return Decode(binfmt.NewReader(words))
}
