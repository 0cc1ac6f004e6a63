// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package circuit carries the static description of every supported zkVM
// circuit revision: protocol identifiers, seal output-region sizes, the
// allow-listed segment control ids per hash suite and segment size, and the
// allowed control roots of the recursion programs.
//
// Provers are compatible only within a minor version. Each verifier context
// constructor uses one revision here, and one revision can serve several
// minor versions of its prover line (SegmentV2 backs V2_0, V2_1 and V2_2).
package circuit

import (
	"github.com/luxfi/zkvm/digest"
	"github.com/luxfi/zkvm/stark"
)

// Circuit descriptors per revision. Segment circuits prove one execution
// segment; recursive circuits prove the recursion programs (lift, join,
// resolve) used by succinct receipts.
var (
	SegmentV1   = &stark.Circuit{Info: stark.NewProtocolInfo("RV32IM:rev1v1___"), OutputSize: 138, MixSize: 40}
	RecursiveV1 = &stark.Circuit{Info: stark.NewProtocolInfo("RECURSION:rev1v1"), OutputSize: 32, MixSize: 20}

	SegmentV2   = &stark.Circuit{Info: stark.NewProtocolInfo("RV32IM:v2_______"), OutputSize: 68, MixSize: 40}
	RecursiveV2 = &stark.Circuit{Info: stark.NewProtocolInfo("RECURSION:rev1v1"), OutputSize: 32, MixSize: 20}

	SegmentV3   = &stark.Circuit{Info: stark.NewProtocolInfo("RV32IM:v3_______"), OutputSize: 68, MixSize: 40}
	RecursiveV3 = &stark.Circuit{Info: stark.NewProtocolInfo("RECURSION:rev1v1"), OutputSize: 32, MixSize: 20}
)

// RV32IMSealVersion is the version word prefixed to every v2/v3 segment
// seal. v1 seals carry no prefix.
const RV32IMSealVersion uint32 = 2

// ControlIDResolver maps a hash suite name and segment po2 to the control
// id of the corresponding segment prover program. The second return is
// false past the end of the published table for that suite.
type ControlIDResolver func(hashName string, po2 int) (digest.Digest, bool)

// minTablePo2 is the po2 of the first entry in every control-id table.
const minTablePo2 = stark.MinCyclesPo2

func tableResolver(tables map[string][]digest.Digest) ControlIDResolver {
	return func(hashName string, po2 int) (digest.Digest, bool) {
		table, ok := tables[hashName]
		if !ok {
			return digest.Zero, false
		}
		idx := po2 - minTablePo2
		if idx < 0 || idx >= len(table) {
			return digest.Zero, false
		}
		return table[idx], true
	}
}

// ControlIDs collects the allow-set for the given resolver: for each suite
// name, every id from the minimum po2 up to maxPo2, stopping at the first
// gap in the table.
func ControlIDs(resolver ControlIDResolver, maxPo2 int) []digest.Digest {
	var ids []digest.Digest
	for _, hashName := range []string{"poseidon2", "sha-256", "blake2b"} {
		for po2 := minTablePo2; po2 <= maxPo2; po2++ {
			id, ok := resolver(hashName, po2)
			if !ok {
				break
			}
			ids = append(ids, id)
		}
	}
	return ids
}
