// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package stark defines the boundary to the STARK proof system: the
// protocol identification strings, the verification error taxonomy shared
// by every receipt kind, and the engine interface behind which the
// arithmetic verifier lives.
package stark

// ProtocolInfo is a fixed 16-byte version identifier for a proof system or
// circuit. The strings are part of the wire contract; a verifier supports
// exactly one proof system and circuit revision per context.
type ProtocolInfo [16]byte

// NewProtocolInfo builds a ProtocolInfo from an exactly 16-character
// ASCII string.
func NewProtocolInfo(s string) ProtocolInfo {
	if len(s) != 16 {
		panic("protocol info must be exactly 16 bytes")
	}
	var p ProtocolInfo
	copy(p[:], s)
	return p
}

// String renders the identifier, trimming nothing: padding underscores are
// significant.
func (p ProtocolInfo) String() string {
	return string(p[:])
}

// ProofSystemInfo identifies the STARK proof system revision every context
// in this module verifies against.
var ProofSystemInfo = NewProtocolInfo("RISC0_STARK:v1__")

// MinCyclesPo2 is the log2 of the smallest provable segment.
const MinCyclesPo2 = 13

// DefaultMaxPo2 is the largest segment size, as a power of two, accepted by
// the default verifier parameters. 21 targets roughly 97 bits of security;
// each additional po2 above it costs about one bit.
const DefaultMaxPo2 = 21
