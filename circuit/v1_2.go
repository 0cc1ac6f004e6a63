// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package circuit

import "github.com/luxfi/zkvm/digest"

var (
	poseidon2ControlIDsV1_2 = []digest.Digest{
		digest.MustParse("8ab0bf6ccb1fea6661209c088f58a16b352709443392a47af30f7eb3286d9a46"),
		digest.MustParse("1e264aad6da0bbad855cd09ba5ea16c1d18b5d8bc9654bc3194251fa3436690d"),
		digest.MustParse("b630c7f4cd9b266b9ec4ba45065eff3cde97deb09a82af77a41618e591a9a492"),
		digest.MustParse("3e8abd0d621d30f52ef89b064f46ccf94b9c48af9638609e5a4573ca16de0130"),
		digest.MustParse("232e6c90875ec70d7df5809c251890748683faf76f77b8da552669a38d5ce938"),
		digest.MustParse("9a8c9103fcbdfc8d693b80524fd0449a14af8820efb54965cc85fa3999a0bed8"),
		digest.MustParse("91e965b41b5213f9546df7525aa73efb795cc589d40cbc9da3fe920416e35d98"),
		digest.MustParse("a10653e9ccc49b615466d9015c1ca384fbec2f06a1df7633bf7d6475fb2ffb49"),
		digest.MustParse("3b40591280053877c0bef19580c72312826b86ec42a1eb72efa35a82a56270eb"),
		digest.MustParse("6ca7f3ba54aa5e8f53dd094376b8750f25ab4469fd46e534c79d2efa96b383ea"),
		digest.MustParse("d083f407a20d163e5db2d6f066d5160b241b3dc09a14190c51c3cebd2d9b9749"),
		digest.MustParse("76f04112be7c5d4fb6bff889cf7123099a749db1bca0a33bbfa2ce44eabaf271"),
	}
	sha256ControlIDsV1_2 = []digest.Digest{
		digest.MustParse("085182a16ace4b2f0ab83c7ea25a03475be5984a802516c59a4ccc87ea0476f2"),
		digest.MustParse("facef9bb79faded96167562df040da3d6f098e4230d821dda4c14bd82c6617b4"),
		digest.MustParse("c5fae55987febb0acfe68f389cd5cd4e2d7d5e7bcb0e926a88f10745b80b1498"),
		digest.MustParse("c0ec4ffe2c335058d81960e5b27f883144afba9977321dc949f5a39f6edd0afb"),
		digest.MustParse("e9e778bef8e223b0ad99ab24a8dbd3dbd2342daa9707f457f053360448464031"),
		digest.MustParse("d7ec49142140386308e3472f2577132506e68fb519c90b8497468dc65439552e"),
		digest.MustParse("a133eb7aa4bab2e66999c87818b5880ff5aa626f324b98af9d165f9d0a40be28"),
		digest.MustParse("1c4041771f7cca0b96e133f1cf2d9a7e601f79423a8401d7bf8164fd9bc883a2"),
		digest.MustParse("560f060ec0bc2b41b27b979a9226d3febc3af4a6db106912b0c8081d3c0c20e3"),
		digest.MustParse("11ea3a1ee1455eb0a76ba807452714b98a31da6eaa15b88019c81071d9123104"),
		digest.MustParse("4e2f2900fb382fd6126ba9c80754cb98c80b6ef6fe65e7511b0dbe93578c81a4"),
		digest.MustParse("e91948142f12a92e6d7f076311a2fe85ba88fff3e307ae71a81e24d074bbf21b"),
	}
	blake2bControlIDsV1_2 = []digest.Digest{
		digest.MustParse("aeee92bfc34feb2f72de363e697557280b09511b6c96cd71814518fa1d57b8d7"),
		digest.MustParse("821aaf59c7d7d61f86501f273689102c006a8eee6d0ee7fc379a2e5473be8f0d"),
		digest.MustParse("485da98b6cbf287a4da94705c01942944edffd133d3eb61bd81d07d658870b8c"),
		digest.MustParse("4ec7bfffca2c8f64cdba5dbfb892f9b929e44d9a9f10c04cbc361bc7d215c3ad"),
		digest.MustParse("be73497d92422c2ae690ff369dddcbc38e5028395433f540ce514500d34eca4b"),
		digest.MustParse("d82a293a6e19ea7c69d77e9260a66d0426e61472c52a3e9dea2f3bf8f54755db"),
		digest.MustParse("6b11c89ac88bf4441147876b368b55dd9721f2d430dd53e264337dcb2a560019"),
		digest.MustParse("460a61953c659527be81304710b90bb1b3d14cfeab49c5fc3a94eccb638cc833"),
		digest.MustParse("5b1dc1c7d95e22d6a642a10661a5c4a5e1b7ad4e787aac08ce5b1cf4a599987d"),
		digest.MustParse("0e697657a1919f7b44a6b9762f1099a57ca350efb04ab72d3c78341950fec75d"),
		digest.MustParse("499e72b8f5161c95b9bb9dd248873b58395b54499410085589e9744d06e33893"),
		digest.MustParse("a9594800e3950efc22cadb2511a5f3d76ac601a0a9515443b9c224d8092e4c90"),
	}
)

// ControlIDV1_2 resolves v1.2 segment control ids.
var ControlIDV1_2 = tableResolver(map[string][]digest.Digest{
	"poseidon2": poseidon2ControlIDsV1_2,
	"sha-256":   sha256ControlIDsV1_2,
	"blake2b":   blake2bControlIDsV1_2,
})

// AllowedControlRootV1_2 is the Merkle root over the v1.2 recursion
// program allow-set.
var AllowedControlRootV1_2 = digest.MustParse("83fb66444c15dd13169aa7aedaf876ed428ca5f3d44dfe1006c7d89284607025")
