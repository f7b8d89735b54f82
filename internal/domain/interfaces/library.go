package interfaces

import (
	"hash"
	"io"
	"math/big"

	domaintypes "cryptodemo/internal/domain/types"
)

// RNG is a random generator context. GenerateBlock fills b completely or
// fails with RNG_FAILURE_E.
type RNG interface {
	io.Reader
	GenerateBlock(b []byte) error
	Free()
}

// Hash is a fixed-output-width hash context.
type Hash interface {
	hash.Hash
	Free()
}

// Key is an elliptic-curve key object. It may hold a public point, a private
// scalar, or both, as reported by Kind.
type Key interface {
	Kind() domaintypes.KeyKind
	Curve() domaintypes.CurveID
	// PublicXY returns the unsigned big-endian coordinates, each padded to
	// the curve's coordinate width. Private-only keys derive the point.
	PublicXY() (x, y []byte, err error)
	Free()
}

// AEAD is an authenticated cipher context keyed at construction. The tag is
// detached from the ciphertext.
type AEAD interface {
	NonceSize() int
	TagSize() int
	Encrypt(ciphertext, tag, plaintext, nonce, aad []byte) error
	Decrypt(plaintext, ciphertext, tag, nonce, aad []byte) error
	Free()
}

// Library is the capability set the orchestration consumes from the
// cryptography provider. Every constructor returns a handle that the caller
// owns and must Free.
type Library interface {
	Init() error
	Cleanup() error

	NewRNG() (RNG, error)
	NewHash(h domaintypes.HashType) (Hash, error)

	// ImportPublicKey builds a public-only key from unsigned big-endian X and Y.
	ImportPublicKey(x, y []byte, curve domaintypes.CurveID) (Key, error)
	// ImportPrivateKey builds a key from the private scalar alone.
	ImportPrivateKey(d []byte, curve domaintypes.CurveID) (Key, error)
	// MakeKey generates a fresh key pair of keySize bytes on curve.
	MakeKey(rng io.Reader, keySize int, curve domaintypes.CurveID) (Key, error)
	// SharedSecret writes the ECDH secret of priv and pub into out and
	// returns its length.
	SharedSecret(priv, pub Key, out []byte) (int, error)

	SignHash(digest []byte, rng io.Reader, key Key) (r, s *big.Int, err error)
	// VerifyHash reports whether (r, s) is valid. A false result with a nil
	// error means the signature is well formed but wrong.
	VerifyHash(r, s *big.Int, digest []byte, key Key) (bool, error)

	KDF(kdf domaintypes.KDFType, h domaintypes.HashType, secret, info, out []byte) error
	NewAEAD(suite domaintypes.CipherSuite, key []byte) (AEAD, error)

	ErrorString(code domaintypes.ErrorCode) string
}
