// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package circuit

import "github.com/luxfi/zkvm/digest"

var (
	poseidon2ControlIDsV1_1 = []digest.Digest{
		digest.MustParse("bf53477d7e7331ca4d2c4031132d5403cf6a96eb83c0db6dee56bad6e9ed3969"),
		digest.MustParse("16c58cf87c505a33100366d3295d00ff52084d13e5d62d545cdd9b8c8fea847a"),
		digest.MustParse("317692718e1a53cc528ca8cfdc1cbfda0dd923630ec807012044dee0f85d578e"),
		digest.MustParse("aabe084662385cfdbde71d3a5f677f6b3536e33598c688e6044cd969c312a9c5"),
		digest.MustParse("ca5c9bdc126c83677972511ddc1075ca408b7caef1a6426f58f220f9ad4c9910"),
		digest.MustParse("255888bbb8fd3cec30ba7617e8d49f5326d2bb173e0ddb8bca01fca248915be7"),
		digest.MustParse("922eed9d4e6455ce94dc2cec23961a5600bda460aec95a0d4ebc68f20c7e5cd7"),
		digest.MustParse("a28aa9e42d8539eb9611f718ba6806ff35cc7891908667ad4ab97b6792870100"),
		digest.MustParse("57d3355328b0d5435ff30614e2d4d315134523f6a649ddd4077937ac33fe7ecc"),
		digest.MustParse("af367c4de2f4bdfe78b0e531e5da978228eae7ce31ce3cf11895e2ddb91ca093"),
		digest.MustParse("b6cbd8dca320cdeee8558aa265fa0b5cf553cef8359cbe2bd2f3ed928eb2bb7c"),
		digest.MustParse("b6e82e6bf178c78595f96243bfd7c39f10497117a5de56496acc4fa8e3250a08"),
	}
	sha256ControlIDsV1_1 = []digest.Digest{
		digest.MustParse("122b1a37bd27221724cbb517166b82f002cedb5461a0420a7121e3db2e5db86d"),
		digest.MustParse("d0942bc115b18476215c242782bce74d6b0876185705a24e21bdb7edda5af6ed"),
		digest.MustParse("3933cc28935560bd8f006e5962b7e98bc551b5ae3171bc6f1d971d9bd5e82e45"),
		digest.MustParse("857bee0d369fd7027cc0d7f146c12b8a3711764414e94800d9feb75f8b88f4af"),
		digest.MustParse("607558f8b6bd724e02aa3b33a9788a941d3e19c9a9edc26451825038495fc763"),
		digest.MustParse("66560743d6e5d02892d2e0f34348714847e328ce11bd600d8a104b76c1a41fe1"),
		digest.MustParse("f8cb3e4c13e17d06e29c965eaeac1ffcc47e40145725b1e7e197344a18abc506"),
		digest.MustParse("ee10625b3535db0642b5bf48f935b7da7da086d0d81dba2ec65e938660b5e3b6"),
		digest.MustParse("268c709e84a474318bd169dd7a3a0f93278a77791bbca02f6993d67119bdb05f"),
		digest.MustParse("8aef0efdc8d0ad6c9e1972ad9a863d78bcd31b4bba072a5860e3938a3ab70248"),
		digest.MustParse("ef5abfa12abc74a7cd72aa12c3d07cb6827abd5b4edaf2a855fadcb7cf8a934a"),
		digest.MustParse("db35f6af30e51e7a33c43912e999fc03b6b6598a7116fcc1aac7cfa94edf54c8"),
	}
	blake2bControlIDsV1_1 = []digest.Digest{
		digest.MustParse("782a106b0a5abb4f82cb80779b5e2b30c708ab75f72bf2b59dae76d20911b173"),
		digest.MustParse("7f9a254ae730f41f7e8dcf7e27cc96d6fc0383e6105ae161c1ee6c926800f609"),
		digest.MustParse("e043125e5381a117b528316fa056c7cd41edfb0a054d505b5d8bea81af2a454e"),
		digest.MustParse("fef6481a3c9517e71cacecb9a10555efc62f94e0d2c0af97b64a4faba56076dc"),
		digest.MustParse("85533a3b6c987f6f71b4f6c4eae74429e7daaf676599b06c9c4e072dcbc527ad"),
		digest.MustParse("a154c42d68aada23f4af2158cba666dd9b40929510dd5075ba4c489d9aefad68"),
		digest.MustParse("abd6e5a342386d5476106ff997d651ca15db7b4dec20444f3c6a2644f8016f85"),
		digest.MustParse("94c0c370d23410a8bcb63c03216a9c348fdb0b395addbc40458dd8acf985f009"),
		digest.MustParse("86f0904116bdbbc253a6469c26686df5c44940d465c7d7c2b20355c10534e9f4"),
		digest.MustParse("6b25c57fde3c772260b6974106ef2ec2f52902a8e97a37f3306620ffb3a228b7"),
		digest.MustParse("8284294d958b3333094e97c5185f48c36b6fe01cacd90efcafc5fd245896d37d"),
		digest.MustParse("124cdf05e99df2286e67731d9a5aea77595e5a55466a968079b01ebaf4e2b543"),
	}
)

// ControlIDV1_1 resolves v1.1 segment control ids.
var ControlIDV1_1 = tableResolver(map[string][]digest.Digest{
	"poseidon2": poseidon2ControlIDsV1_1,
	"sha-256":   sha256ControlIDsV1_1,
	"blake2b":   blake2bControlIDsV1_1,
})

// AllowedControlRootV1_1 is the Merkle root over the v1.1 recursion
// program allow-set.
var AllowedControlRootV1_1 = digest.MustParse("262fa1c50f9c02140d6a6dbd39f3dc5ce59887def3fb80237b531b28873167e7")
