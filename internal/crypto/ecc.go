package crypto

import (
	"crypto/elliptic"
	"io"
	"math/big"

	"github.com/aead/ecdh"

	"cryptodemo/internal/domain"
	"cryptodemo/internal/domain/types"
	"cryptodemo/internal/params"
	"cryptodemo/internal/util/memzero"
)

// eccKey holds a private scalar, a public point, or both.
type eccKey struct {
	lib   *Library
	curve types.CurveID
	ec    elliptic.Curve
	size  int

	d    []byte // fixed-width scalar, nil for public keys
	x, y *big.Int

	freed bool
}

func ellipticCurve(curve types.CurveID) (elliptic.Curve, error) {
	switch curve {
	case types.CurveSECP256R1:
		return elliptic.P256(), nil
	case types.CurveSECP224R1:
		return elliptic.P224(), nil
	}
	return nil, types.NewError(types.ErrECCCurveOID, "curve %v not supported", curve)
}

func (l *Library) newKey(curve types.CurveID) (*eccKey, error) {
	if err := l.ready(); err != nil {
		return nil, err
	}
	ec, err := ellipticCurve(curve)
	if err != nil {
		return nil, err
	}
	l.acquire()
	return &eccKey{lib: l, curve: curve, ec: ec, size: params.CoordSize(curve)}, nil
}

// ImportPublicKey builds a public-only key from unsigned big-endian
// coordinates. The point must lie on the curve.
func (l *Library) ImportPublicKey(x, y []byte, curve types.CurveID) (domain.Key, error) {
	k, err := l.newKey(curve)
	if err != nil {
		return nil, err
	}
	if len(x) == 0 || len(y) == 0 || len(x) > k.size || len(y) > k.size {
		k.Free()
		return nil, types.NewError(types.ErrBadFuncArg, "public coordinates must be 1..%d bytes", k.size)
	}
	k.x = new(big.Int).SetBytes(x)
	k.y = new(big.Int).SetBytes(y)
	if !k.ec.IsOnCurve(k.x, k.y) {
		k.Free()
		return nil, types.NewError(types.ErrECCBadArg, "public point is not on %v", curve)
	}
	return k, nil
}

// ImportPrivateKey builds a key from the scalar alone. The public point is
// derived when it is first needed.
func (l *Library) ImportPrivateKey(d []byte, curve types.CurveID) (domain.Key, error) {
	k, err := l.newKey(curve)
	if err != nil {
		return nil, err
	}
	if len(d) == 0 || len(d) > k.size {
		k.Free()
		return nil, types.NewError(types.ErrBadFuncArg, "private scalar must be 1..%d bytes", k.size)
	}
	scalar := new(big.Int).SetBytes(d)
	if scalar.Sign() == 0 || scalar.Cmp(k.ec.Params().N) >= 0 {
		k.Free()
		return nil, types.NewError(types.ErrECCOutOfRange, "private scalar out of range")
	}
	k.d = scalar.FillBytes(make([]byte, k.size))
	return k, nil
}

// MakeKey generates a fresh key pair. keySize must equal the curve's
// coordinate width.
func (l *Library) MakeKey(rng io.Reader, keySize int, curve types.CurveID) (domain.Key, error) {
	if rng == nil {
		return nil, types.NewError(types.ErrBadFuncArg, "nil rng")
	}
	k, err := l.newKey(curve)
	if err != nil {
		return nil, err
	}
	if keySize != k.size {
		k.Free()
		return nil, types.NewError(types.ErrBadFuncArg, "key size %d does not match %v", keySize, curve)
	}
	priv, pub, err := ecdh.Generic(k.ec).GenerateKey(rng)
	if err != nil {
		k.Free()
		return nil, types.NewError(types.ErrRNGFailure, "generate %v key: %v", curve, err)
	}
	d, ok := priv.([]byte)
	if !ok {
		k.Free()
		return nil, types.NewError(types.ErrECCBadArg, "unexpected private key type %T", priv)
	}
	x, y, err := pointOf(pub)
	if err != nil {
		k.Free()
		return nil, err
	}
	k.d = new(big.Int).SetBytes(d).FillBytes(make([]byte, k.size))
	k.x, k.y = x, y
	memzero.Zero(d)
	return k, nil
}

// SharedSecret computes the x-coordinate of priv·pub, left-padded to the
// coordinate width.
func (l *Library) SharedSecret(priv, pub domain.Key, out []byte) (int, error) {
	if err := l.ready(); err != nil {
		return 0, err
	}
	pk, err := asKey(priv)
	if err != nil {
		return 0, err
	}
	qk, err := asKey(pub)
	if err != nil {
		return 0, err
	}
	if pk.curve != qk.curve {
		return 0, types.NewError(types.ErrECCBadArg, "curve mismatch %v/%v", pk.curve, qk.curve)
	}
	if pk.d == nil {
		return 0, types.NewError(types.ErrECCBadArg, "shared secret needs a private key")
	}
	if len(out) < pk.size {
		return 0, types.NewError(types.ErrBuffer, "secret buffer is %d bytes, want %d", len(out), pk.size)
	}
	x, y, err := qk.point()
	if err != nil {
		return 0, err
	}
	kex := ecdh.Generic(pk.ec)
	peer := ecdh.Point{X: x, Y: y}
	if err := kex.Check(peer); err != nil {
		return 0, types.NewError(types.ErrECCBadArg, "peer public key: %v", err)
	}
	secret := kex.ComputeSecret(pk.d, peer)
	defer memzero.Zero(secret)
	if len(secret) > pk.size {
		return 0, types.NewError(types.ErrMPTo, "secret is %d bytes, want at most %d", len(secret), pk.size)
	}
	n := copy(out[pk.size-len(secret):pk.size], secret)
	memzero.Zero(out[:pk.size-n])
	return pk.size, nil
}

func (k *eccKey) Kind() types.KeyKind {
	switch {
	case k.freed:
		return types.KeyNone
	case k.d != nil && k.x != nil:
		return types.KeyPrivate
	case k.d != nil:
		return types.KeyPrivateOnly
	case k.x != nil:
		return types.KeyPublic
	}
	return types.KeyNone
}

func (k *eccKey) Curve() types.CurveID { return k.curve }

// PublicXY returns the fixed-width coordinates, deriving them from the
// scalar for private-only keys.
func (k *eccKey) PublicXY() (x, y []byte, err error) {
	px, py, err := k.point()
	if err != nil {
		return nil, nil, err
	}
	return px.FillBytes(make([]byte, k.size)), py.FillBytes(make([]byte, k.size)), nil
}

func (k *eccKey) point() (*big.Int, *big.Int, error) {
	if k.freed {
		return nil, nil, types.NewError(types.ErrBadState, "key used after free")
	}
	if k.x == nil {
		if k.d == nil {
			return nil, nil, types.NewError(types.ErrECCBadArg, "empty key")
		}
		k.x, k.y = k.ec.ScalarBaseMult(k.d)
	}
	return k.x, k.y, nil
}

func (k *eccKey) Free() {
	if k.freed {
		return
	}
	k.freed = true
	memzero.Zero(k.d)
	k.d, k.x, k.y = nil, nil, nil
	k.lib.release()
}

func asKey(k domain.Key) (*eccKey, error) {
	ek, ok := k.(*eccKey)
	if !ok || ek == nil {
		return nil, types.NewError(types.ErrECCBadArg, "foreign key object %T", k)
	}
	if ek.freed {
		return nil, types.NewError(types.ErrBadState, "key used after free")
	}
	return ek, nil
}

func pointOf(pub any) (*big.Int, *big.Int, error) {
	switch p := pub.(type) {
	case ecdh.Point:
		return p.X, p.Y, nil
	case *ecdh.Point:
		return p.X, p.Y, nil
	}
	return nil, nil, types.NewError(types.ErrECCBadArg, "unexpected public key type %T", pub)
}
