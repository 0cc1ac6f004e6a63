// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package circuit

import "github.com/luxfi/zkvm/digest"

// Control ids of the v1.0 segment prover programs, indexed from po2 13.
var (
	poseidon2ControlIDsV1_0 = []digest.Digest{
		digest.MustParse("e5fbeaf2865bcae192764358190e8af25a4087ea3477b241af69933965ee2334"),
		digest.MustParse("fa1b121fc89d9d8d79ec32e3a82b170ba3e33692994e05e99f03aa3d99c9ac51"),
		digest.MustParse("fde1c98f49b1d772aef31fd0816e8bae7ee1c1964d66f24e044cd7d0f20ab54e"),
		digest.MustParse("576e9ca8373b97466260c024fa332d0bb0946cbb9465b4a9afd9a5a829a792eb"),
		digest.MustParse("3671c840efe893c033c4f806322a34a15549b8b4dd83f5f7b97dfd9afda1fd1f"),
		digest.MustParse("293ef4f94d6b3e61fc276d83e9b2214d73b780585b0b415e4512b5728c297cfe"),
		digest.MustParse("707f9d8b9153ca88087a600745fc6d4eab8dba44e75f034edc49dc06d21689e7"),
		digest.MustParse("2c5558105db7939ce8edde3785caa779fa906cc003eeeac7da151468f2a19837"),
		digest.MustParse("0e6ee6b803ffab58ef7936fe5ac012546b05eb0f68744dcac451825d1d45a182"),
		digest.MustParse("bbe726b52265bc8f3113af28715be8df222e3fda43b5c87e616cdbcfc72dafae"),
		digest.MustParse("946939cdf19d4b4cbb3fb7da21e7b51f9d79a0d833aacdebe38fe50e8d658a68"),
		digest.MustParse("c977aaa920fa3f8c6d4f208fd4a89ddc83c909308a7bcc2f05cbc09fea6a64e4"),
	}
	sha256ControlIDsV1_0 = []digest.Digest{
		digest.MustParse("0aa49b9a128f96134a77cf961822d6055bfd39b69030f9182e96c55e6bfaefb7"),
		digest.MustParse("66975aa256fc13a21036e5a1dd2305132e1f94e7b41bc0bebaa95083d9a1e8f7"),
		digest.MustParse("d519eb6756a619b7b6e20a63fa4c69cba68088e0bd829bd93ece38cb9f005481"),
		digest.MustParse("8a4b33926135eef034f5a04917b6416e45e867dad1b9ca095845e24c805502f4"),
		digest.MustParse("be87f9e73e19dd8a9b55294c4121455f0e0ef61573bb1b7dba0669d8b8840072"),
		digest.MustParse("ab9f1ff68abc742a316f2990c4d37a01a090006b6c29e042b339a3696a588c4b"),
		digest.MustParse("dbded3a96807e93687ee52ad385dad7841fd3c5b1c2facc6354281c10ce39f9a"),
		digest.MustParse("c329cb33e81995bb277a2030cf4cde586e704a31aacd064ab4112bd0f7bf2223"),
		digest.MustParse("5de9d61a6d50d10f0b2733689e1261a2715624c1d55b08e8913514dba475a399"),
		digest.MustParse("5084b1aba487598acf762cd35ce96c73d1f714e8edc2b185619e972cacb9caaa"),
		digest.MustParse("77bd7d6645cb01cfc38b526bac7bbd2c742b047e7b3f2cc5e738c68ed4b71182"),
		digest.MustParse("20571b08f4fcef7fc0590bd9bacff5dd1c62a7f03960fa3d091009275e3fe2eb"),
	}
	blake2bControlIDsV1_0 = []digest.Digest{
		digest.MustParse("301f2f9e8ee7f968b2ff14b97a67773065dc02a1553e6e23b1d932efd3c10eea"),
		digest.MustParse("b4e3476e461db4d922e693fc1c562b844375c0cb912628efbdbd9e33d0e89eea"),
		digest.MustParse("5c684023ebc24279237f090d69907f90c7a4f109ade31f2ea0d0a7fcfb080aef"),
		digest.MustParse("be580b88d793bb55b5d6bc4b9e0e0d96d2dc5e04d08dd1f9416f559fe5c644af"),
		digest.MustParse("3236be61d08179b3936373a08770825f394c41dcc1cebc218cc8d668bf65eb31"),
		digest.MustParse("b8b41617dcbf4f98d733726e35435d735f795bcd55b392027ffd86351e8c7375"),
		digest.MustParse("34b62ffa5873a45c88ed3bc0ffbf9fb686781cbcce3b6a7c06973f56a968c53b"),
		digest.MustParse("e1a84124374217b7467a5f1925fe8d3d8027164fec8fd3f4ff72d7dd756a2ead"),
		digest.MustParse("99a78a67f57e7e5e71503794558c3fddb70d8e3fb2aac779b75930a497f96749"),
		digest.MustParse("bd4ebe69f59798449828c5acf8b6c1fe4e699a7784ea538fc14981ecb1a7c9d6"),
		digest.MustParse("47d09493aad3f597e915afe2bb172e1c7332521ad5d5c48d0ffa1265035dc3f8"),
		digest.MustParse("ccfdb97e8cb3898dbbdb563100d73f99e5f451d0e993982303a8767792ca4841"),
	}
)

// ControlIDV1_0 resolves v1.0 segment control ids.
var ControlIDV1_0 = tableResolver(map[string][]digest.Digest{
	"poseidon2": poseidon2ControlIDsV1_0,
	"sha-256":   sha256ControlIDsV1_0,
	"blake2b":   blake2bControlIDsV1_0,
})

// AllControlIDsV1_0 returns the complete v1.0 allow-set: every published
// table entry, without the po2 cap the later revisions apply.
func AllControlIDsV1_0() []digest.Digest {
	var ids []digest.Digest
	ids = append(ids, poseidon2ControlIDsV1_0...)
	ids = append(ids, sha256ControlIDsV1_0...)
	ids = append(ids, blake2bControlIDsV1_0...)
	return ids
}

// AllowedControlRootV1_0 is the Merkle root over the v1.0 recursion
// program allow-set.
var AllowedControlRootV1_0 = digest.MustParse("8b3078cc77b226a6e5566906f3c5fba391358f34e6b5c217f6ac1f6d73271d7a")
