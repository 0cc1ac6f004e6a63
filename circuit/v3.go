// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package circuit

import "github.com/luxfi/zkvm/digest"

// ControlIDV3 resolves v3 segment control ids; like v2, the allow-set is
// empty.
var ControlIDV3 ControlIDResolver = ControlIDV2

// AllowedControlRootV3_0 is the Merkle root over the v3.0 recursion
// program allow-set.
var AllowedControlRootV3_0 = digest.MustParse("95d068ccb6060d257dae189f91221f88b6bde12d54f988a04732fe39f1109e14")
