// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package circuit

import "github.com/luxfi/zkvm/digest"

// The v2 prover line publishes no segment control-id tables: its segment
// circuit carries no code commitment buffer, so the allow-set is empty and
// the engine-level control check is a no-op.

// ControlIDV2 resolves v2 segment control ids; every lookup misses.
var ControlIDV2 ControlIDResolver = func(string, int) (digest.Digest, bool) {
	return digest.Zero, false
}

// Allowed control roots of the v2.x recursion program sets.
var (
	AllowedControlRootV2_0 = digest.MustParse("83270612daa278af850e8a118f38b9833ab3eb3046da62db0aad5eb83e1c6b19")
	AllowedControlRootV2_1 = digest.MustParse("3aee5f129961d0cd0f7dd8001131356a5115788b8dac8c9c866f7a8bc653d57f")
	AllowedControlRootV2_2 = digest.MustParse("89a1d8e6e62cdc0b650f180c1ed7183e1f057deec51668df19d6d84c5e517746")
)
