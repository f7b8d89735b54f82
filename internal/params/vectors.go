package params

import "cryptodemo/internal/domain/types"

// testKey is a known key pair for a curve: private scalar d and public Qx||Qy.
type testKey struct {
	priv []byte
	pub  []byte
}

var testKeys = map[types.CurveID]testKey{
	types.CurveSECP256R1: {
		priv: []byte{
			0x1e, 0xe7, 0x70, 0x07, 0xd3, 0x30, 0x94, 0x39,
			0x28, 0x90, 0xdf, 0x23, 0x88, 0x2c, 0x4a, 0x34,
			0x15, 0xdb, 0x4c, 0x43, 0xcd, 0xfa, 0xe5, 0x1f,
			0x3d, 0x4c, 0x37, 0xfe, 0x59, 0x3b, 0x96, 0xd8,
		},
		pub: []byte{
			// Qx
			0x96, 0x93, 0x1c, 0x53, 0x0b, 0x43, 0x6c, 0x42,
			0x0c, 0x52, 0x90, 0xe4, 0xa7, 0xec, 0x98, 0xb1,
			0xaf, 0xd4, 0x14, 0x49, 0xd8, 0xc1, 0x42, 0x82,
			0x04, 0x78, 0xd1, 0x90, 0xae, 0xa0, 0x6c, 0x07,
			// Qy
			0xf2, 0x3a, 0xb5, 0x10, 0x32, 0x8d, 0xce, 0x9e,
			0x76, 0xa0, 0xd2, 0x8c, 0xf3, 0xfc, 0xa9, 0x94,
			0x43, 0x24, 0xe6, 0x82, 0x00, 0x40, 0xc6, 0xdb,
			0x1c, 0x2f, 0xcd, 0x38, 0x4b, 0x60, 0xdd, 0x61,
		},
	},
	types.CurveSECP224R1: {
		priv: []byte{
			0x6c, 0x4d, 0xbc, 0xc4, 0x20, 0xf9, 0xc1, 0xf6,
			0xdc, 0xc1, 0xf3, 0x08, 0xd1, 0xe2, 0x3d, 0xa7,
			0xd3, 0xa0, 0x0e, 0xe1, 0xcb, 0x04, 0x90, 0x7c,
			0x08, 0xf9, 0x41, 0x6d,
		},
		pub: []byte{
			// Qx
			0x90, 0x14, 0xe4, 0xbb, 0xe1, 0x26, 0x34, 0xec,
			0x3c, 0xd8, 0x6c, 0x98, 0x2f, 0x30, 0x69, 0x3e,
			0xf5, 0x6f, 0x8f, 0xa2, 0x70, 0x93, 0xf3, 0x9b,
			0xa9, 0x5b, 0xef, 0xd9,
			// Qy
			0x34, 0x71, 0x86, 0x8f, 0x77, 0x4f, 0x42, 0x2d,
			0x65, 0x5c, 0x18, 0x41, 0x5e, 0x9f, 0x9b, 0xe5,
			0x45, 0xa5, 0x5c, 0x62, 0x9b, 0xfb, 0x1d, 0x0a,
			0x23, 0x66, 0xc2, 0xdf,
		},
	},
}

// Nonce is the fixed 12-byte nonce used by the encryption stage.
var Nonce = []byte{
	0x07, 0x00, 0x00, 0x00, 0x40, 0x41, 0x42, 0x43,
	0x44, 0x45, 0x46, 0x47,
}

// AAD is the fixed associated data authenticated by the encryption stage.
var AAD = []byte{
	0x40, 0xfc, 0xdc, 0xd7, 0x4a, 0xd7, 0x8b, 0xf1,
	0x3e, 0x7c, 0x60, 0x55, 0x50, 0x51, 0xdd, 0x54,
}
