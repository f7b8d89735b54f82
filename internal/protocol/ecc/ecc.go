package ecc

import (
	"bytes"
	"io"
	"math/big"

	"cryptodemo/internal/domain"
	"cryptodemo/internal/domain/types"
	"cryptodemo/internal/util/memzero"
)

// Verify checks the raw signature sig = r||s over digest using the public
// key Qx||Qy. Each of r, s, Qx and Qy is coordSize bytes, unsigned
// big-endian. A well-formed but wrong signature yields SIG_VERIFY_E.
func Verify(lib domain.Library, key, digest, sig []byte, coordSize int, curve types.CurveID) error {
	if lib == nil || key == nil || digest == nil || sig == nil || len(digest) == 0 || coordSize <= 0 {
		return types.NewError(types.ErrBadFuncArg, "verify: missing argument")
	}
	if len(key) < 2*coordSize || len(sig) < 2*coordSize {
		return types.NewError(types.ErrBadFuncArg, "verify: key is %d and signature %d bytes, want %d", len(key), len(sig), 2*coordSize)
	}

	pub, err := lib.ImportPublicKey(key[:coordSize], key[coordSize:2*coordSize], curve)
	if err != nil {
		return err
	}
	defer pub.Free()
	if pub.Kind() != types.KeyPublic {
		return types.NewError(types.ErrECCBadArg, "verify: imported key is %v, want public", pub.Kind())
	}

	r := new(big.Int).SetBytes(sig[:coordSize])
	s := new(big.Int).SetBytes(sig[coordSize : 2*coordSize])
	ok, err := lib.VerifyHash(r, s, digest, pub)
	if err != nil {
		return err
	}
	if !ok {
		return types.NewError(types.ErrSigVerify, "signature does not verify")
	}
	return nil
}

// Sign writes the raw signature r||s over digest into sig and returns
// 2*coordSize. key is the private scalar of coordSize bytes.
func Sign(lib domain.Library, key, digest, sig []byte, coordSize int, curve types.CurveID, rng io.Reader) (int, error) {
	if lib == nil || key == nil || digest == nil || sig == nil || rng == nil || len(digest) == 0 || coordSize <= 0 {
		return 0, types.NewError(types.ErrBadFuncArg, "sign: missing argument")
	}
	if len(key) < coordSize || len(sig) < 2*coordSize {
		return 0, types.NewError(types.ErrBadFuncArg, "sign: key is %d and signature %d bytes, want %d and %d", len(key), len(sig), coordSize, 2*coordSize)
	}
	out := sig[:2*coordSize]
	memzero.Zero(out)

	priv, err := lib.ImportPrivateKey(key[:coordSize], curve)
	if err != nil {
		return 0, err
	}
	defer priv.Free()

	r, s, err := lib.SignHash(digest, rng, priv)
	if err != nil {
		return 0, err
	}
	if r.Sign() < 0 || s.Sign() < 0 || r.BitLen() > 8*coordSize || s.BitLen() > 8*coordSize {
		return 0, types.NewError(types.ErrMPTo, "sign: r or s does not fit %d bytes", coordSize)
	}
	r.FillBytes(out[:coordSize])
	s.FillBytes(out[coordSize:])
	return 2 * coordSize, nil
}

// ECDHE runs an ephemeral key agreement between two freshly generated key
// pairs and writes the agreed secret into secret. It returns the number of
// bytes written, which is min(keySize, len(secret)).
func ECDHE(lib domain.Library, rng io.Reader, keySize int, curve types.CurveID, secret []byte) (int, error) {
	if lib == nil || rng == nil || secret == nil || keySize <= 0 {
		return 0, types.NewError(types.ErrBadFuncArg, "ecdhe: missing argument")
	}

	keyA, err := lib.MakeKey(rng, keySize, curve)
	if err != nil {
		return 0, err
	}
	defer keyA.Free()
	keyB, err := lib.MakeKey(rng, keySize, curve)
	if err != nil {
		return 0, err
	}
	defer keyB.Free()

	secA := make([]byte, keySize)
	secB := make([]byte, keySize)
	defer memzero.ZeroAll(secA, secB)

	nA, err := lib.SharedSecret(keyA, keyB, secA)
	if err != nil {
		return 0, err
	}
	nB, err := lib.SharedSecret(keyB, keyA, secB)
	if err != nil {
		return 0, err
	}
	if nA != nB || !bytes.Equal(secA[:nA], secB[:nB]) {
		return 0, types.NewError(types.ErrBadCond, "ecdhe: shared secrets disagree")
	}
	return copy(secret, secA[:nA]), nil
}
