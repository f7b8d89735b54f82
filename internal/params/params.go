package params

import (
	"fmt"

	"cryptodemo/internal/domain/types"
)

const (
	// DefaultDataSize is the plaintext size of one pipeline run.
	DefaultDataSize = 64
	// MaxDataSize bounds the configurable plaintext size.
	MaxDataSize = 4096

	// TagSize is the authentication tag width of both cipher suites.
	TagSize = 16
	// NonceSize is the nonce width of both cipher suites.
	NonceSize = 12
)

// curveSizes maps each supported curve to its coordinate width in bytes.
var curveSizes = map[types.CurveID]int{
	types.CurveSECP256R1: 32,
	types.CurveSECP224R1: 28,
}

// CoordSizes lists the coordinate widths of every supported curve.
func CoordSizes() []int {
	return []int{curveSizes[types.CurveSECP224R1], curveSizes[types.CurveSECP256R1]}
}

// Curves lists the supported curves.
func Curves() []types.CurveID {
	return []types.CurveID{types.CurveSECP256R1, types.CurveSECP224R1}
}

// CoordSize returns the coordinate width of curve, or 0 if it is unsupported.
func CoordSize(curve types.CurveID) int { return curveSizes[curve] }

// DigestSize returns the output width of h, or 0 if it is unsupported.
func DigestSize(h types.HashType) int {
	switch h {
	case types.HashSHA224:
		return 28
	case types.HashSHA256:
		return 32
	case types.HashSHA384:
		return 48
	case types.HashSHA512:
		return 64
	}
	return 0
}

// KeySize returns the symmetric key width of suite, or 0 if it is unsupported.
func KeySize(suite types.CipherSuite) int {
	switch suite {
	case types.CipherAES128GCM:
		return 16
	case types.CipherChaCha20Poly1305:
		return 32
	}
	return 0
}

// Params is one complete, validated parameter set.
type Params struct {
	Curve     types.CurveID
	CoordSize int
	Hash      types.HashType
	KDF       types.KDFType
	Cipher    types.CipherSuite
	DataSize  int

	// PrivateKey is the known scalar d and PublicKey the matching Qx||Qy.
	PrivateKey []byte
	PublicKey  []byte

	Nonce []byte
	AAD   []byte
}

// Options selects a parameter set. Zero fields take the defaults.
type Options struct {
	Curve    types.CurveID
	KDF      types.KDFType
	Cipher   types.CipherSuite
	DataSize int
}

// New builds and validates a parameter set.
func New(opts Options) (Params, error) {
	if opts.Curve == types.CurveInvalid {
		opts.Curve = types.CurveSECP256R1
	}
	if opts.KDF == "" {
		opts.KDF = types.KDFX963
	}
	if opts.Cipher == "" {
		opts.Cipher = types.CipherAES128GCM
	}
	if opts.DataSize == 0 {
		opts.DataSize = DefaultDataSize
	}
	key, ok := testKeys[opts.Curve]
	if !ok {
		return Params{}, types.NewError(types.ErrECCCurveOID, "unsupported curve %v", opts.Curve)
	}
	p := Params{
		Curve:      opts.Curve,
		CoordSize:  curveSizes[opts.Curve],
		Hash:       types.HashSHA256,
		KDF:        opts.KDF,
		Cipher:     opts.Cipher,
		DataSize:   opts.DataSize,
		PrivateKey: key.priv,
		PublicKey:  key.pub,
		Nonce:      Nonce,
		AAD:        AAD,
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// MustNew is like New but panics on error. It is meant for tests and
// package-level defaults.
func MustNew(opts Options) Params {
	p, err := New(opts)
	if err != nil {
		panic(err)
	}
	return p
}

// Validate checks that every size in p is consistent.
func (p Params) Validate() error {
	if CoordSize(p.Curve) == 0 || p.CoordSize != CoordSize(p.Curve) {
		return types.NewError(types.ErrECCCurveOID, "coordinate size %d does not match curve %v", p.CoordSize, p.Curve)
	}
	if DigestSize(p.Hash) == 0 {
		return types.NewError(types.ErrHashType, "unsupported hash %v", p.Hash)
	}
	switch p.KDF {
	case types.KDFX963, types.KDFHKDF:
	default:
		return types.NewError(types.ErrNotCompiledIn, "unsupported kdf %q", p.KDF)
	}
	if KeySize(p.Cipher) == 0 {
		return types.NewError(types.ErrNotCompiledIn, "unsupported cipher %q", p.Cipher)
	}
	if p.DataSize <= 0 || p.DataSize > MaxDataSize {
		return types.NewError(types.ErrBadFuncArg, "data size %d out of range 1..%d", p.DataSize, MaxDataSize)
	}
	if len(p.PrivateKey) != p.CoordSize {
		return types.NewError(types.ErrBadFuncArg, "private key is %d bytes, want %d", len(p.PrivateKey), p.CoordSize)
	}
	if len(p.PublicKey) != 2*p.CoordSize {
		return types.NewError(types.ErrBadFuncArg, "public key is %d bytes, want %d", len(p.PublicKey), 2*p.CoordSize)
	}
	if len(p.Nonce) != NonceSize {
		return types.NewError(types.ErrBadFuncArg, "nonce is %d bytes, want %d", len(p.Nonce), NonceSize)
	}
	return nil
}

// DigestSize returns the hash output width of p.
func (p Params) DigestSize() int { return DigestSize(p.Hash) }

// SignatureSize returns the r||s width of p.
func (p Params) SignatureSize() int { return 2 * p.CoordSize }

// KeySize returns the derived symmetric key width of p.
func (p Params) KeySize() int { return KeySize(p.Cipher) }

// TagSize returns the authentication tag width of p.
func (p Params) TagSize() int { return TagSize }

// String summarises p for logs and banners.
func (p Params) String() string {
	return fmt.Sprintf("%v/%v/%v-%v/%dB", p.Curve, p.Cipher, p.KDF, p.Hash, p.DataSize)
}
