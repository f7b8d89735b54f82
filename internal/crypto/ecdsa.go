package crypto

import (
	"crypto/ecdsa"
	"io"
	"math/big"

	"cryptodemo/internal/domain"
	"cryptodemo/internal/domain/types"
)

// SignHash signs digest with key and returns the raw (r, s) pair. The result
// differs on every call because rng supplies a fresh per-signature nonce.
func (l *Library) SignHash(digest []byte, rng io.Reader, key domain.Key) (*big.Int, *big.Int, error) {
	if err := l.ready(); err != nil {
		return nil, nil, err
	}
	if len(digest) == 0 || rng == nil {
		return nil, nil, types.NewError(types.ErrBadFuncArg, "sign needs a digest and an rng")
	}
	k, err := asKey(key)
	if err != nil {
		return nil, nil, err
	}
	if k.d == nil {
		return nil, nil, types.NewError(types.ErrECCBadArg, "sign needs a private key")
	}
	x, y, err := k.point()
	if err != nil {
		return nil, nil, err
	}
	priv := &ecdsa.PrivateKey{
		PublicKey: ecdsa.PublicKey{Curve: k.ec, X: x, Y: y},
		D:         new(big.Int).SetBytes(k.d),
	}
	r, s, err := ecdsa.Sign(rng, priv, digest)
	if err != nil {
		return nil, nil, types.NewError(types.ErrRNGFailure, "ecdsa sign: %v", err)
	}
	return r, s, nil
}

// VerifyHash checks (r, s) over digest. An out-of-range r or s is reported
// as a failed verification, not as an error.
func (l *Library) VerifyHash(r, s *big.Int, digest []byte, key domain.Key) (bool, error) {
	if err := l.ready(); err != nil {
		return false, err
	}
	if r == nil || s == nil || len(digest) == 0 {
		return false, types.NewError(types.ErrBadFuncArg, "verify needs r, s and a digest")
	}
	k, err := asKey(key)
	if err != nil {
		return false, err
	}
	x, y, err := k.point()
	if err != nil {
		return false, err
	}
	pub := &ecdsa.PublicKey{Curve: k.ec, X: x, Y: y}
	return ecdsa.Verify(pub, digest, r, s), nil
}
