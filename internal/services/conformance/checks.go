package conformance

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"

	"golang.org/x/crypto/hkdf"

	tinkaead "github.com/tink-crypto/tink-go/v2/aead/subtle"
	tinksig "github.com/tink-crypto/tink-go/v2/signature/subtle"
	tinksubtle "github.com/tink-crypto/tink-go/v2/subtle"

	"cryptodemo/internal/domain"
	"cryptodemo/internal/domain/types"
	"cryptodemo/internal/params"
	"cryptodemo/internal/protocol/ecc"
	"cryptodemo/internal/services/pipeline"
)

func unhex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// Known answers: FIPS 180-2 "abc", McGrew-Viega GCM test cases 1 and 2,
// RFC 5869 test cases 1 and 3.
var (
	sha256ABC = unhex("ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad")

	gcmTag1 = unhex("58e2fccefa7e3061367f1d57a4e7455a")
	gcmCT2  = unhex("0388dace60b6a392f328c2b971b2fe78")
	gcmTag2 = unhex("ab6e47d42cec13bdf53a67b21257bddf")

	hkdfIKM   = bytes.Repeat([]byte{0x0b}, 22)
	hkdfSalt1 = unhex("000102030405060708090a0b0c")
	hkdfInfo1 = unhex("f0f1f2f3f4f5f6f7f8f9")
	hkdfOKM1  = unhex("3cb25f25faacd57a90434f64d0362f2a2d2d0a90cf1a5a4c5db02d56ecc4c5bf34007208d5b887185865")
	hkdfOKM3  = unhex("8da4e775a563c18f715f802a063c5a31b8a11f5c5ee1879ec3454e5f3c738d2d9d201395faa4b61a96c8")
)

func (s *Service) digest(msg []byte) ([]byte, error) {
	h, err := s.lib.NewHash(types.HashSHA256)
	if err != nil {
		return nil, err
	}
	defer h.Free()
	h.Write(msg)
	return h.Sum(nil), nil
}

// withRNG runs fn with a fresh RNG context.
func (s *Service) withRNG(fn func(rng domain.RNG) error) error {
	rng, err := s.lib.NewRNG()
	if err != nil {
		return err
	}
	defer rng.Free()
	return fn(rng)
}

func (s *Service) checkSHA256(context.Context) error {
	sum, err := s.digest([]byte("abc"))
	if err != nil {
		return err
	}
	if !bytes.Equal(sum, sha256ABC) {
		return mismatch("sha256(abc)", sum, sha256ABC)
	}
	return nil
}

func (s *Service) checkAESGCM(context.Context) error {
	a, err := s.lib.NewAEAD(types.CipherAES128GCM, make([]byte, 16))
	if err != nil {
		return err
	}
	defer a.Free()
	nonce := make([]byte, params.NonceSize)

	tag := make([]byte, params.TagSize)
	if err := a.Encrypt(nil, tag, nil, nonce, nil); err != nil {
		return err
	}
	if !bytes.Equal(tag, gcmTag1) {
		return mismatch("gcm case 1 tag", tag, gcmTag1)
	}

	ct := make([]byte, 16)
	if err := a.Encrypt(ct, tag, make([]byte, 16), nonce, nil); err != nil {
		return err
	}
	if !bytes.Equal(ct, gcmCT2) {
		return mismatch("gcm case 2 ciphertext", ct, gcmCT2)
	}
	if !bytes.Equal(tag, gcmTag2) {
		return mismatch("gcm case 2 tag", tag, gcmTag2)
	}
	return nil
}

func (s *Service) checkHKDF(context.Context) error {
	okm := make([]byte, len(hkdfOKM1))
	if _, err := io.ReadFull(hkdf.New(sha256.New, hkdfIKM, hkdfSalt1, hkdfInfo1), okm); err != nil {
		return types.NewError(types.ErrBadCond, "hkdf case 1: %v", err)
	}
	if !bytes.Equal(okm, hkdfOKM1) {
		return mismatch("hkdf case 1", okm, hkdfOKM1)
	}
	tinkOKM, err := tinksubtle.ComputeHKDF("SHA256", hkdfIKM, hkdfSalt1, hkdfInfo1, uint32(len(hkdfOKM1)))
	if err != nil {
		return types.NewError(types.ErrBadCond, "tink hkdf: %v", err)
	}
	if !bytes.Equal(tinkOKM, hkdfOKM1) {
		return mismatch("tink hkdf case 1", tinkOKM, hkdfOKM1)
	}

	out := make([]byte, len(hkdfOKM3))
	if err := s.lib.KDF(types.KDFHKDF, types.HashSHA256, hkdfIKM, nil, out); err != nil {
		return err
	}
	if !bytes.Equal(out, hkdfOKM3) {
		return mismatch("hkdf case 3", out, hkdfOKM3)
	}
	return nil
}

func (s *Service) checkX963(context.Context) error {
	secret := bytes.Repeat([]byte{0x5c}, s.params.CoordSize)
	short := make([]byte, 16)
	long := make([]byte, 3*sha256.Size+5)
	again := make([]byte, 16)
	for _, out := range [][]byte{short, long, again} {
		if err := s.lib.KDF(types.KDFX963, s.params.Hash, secret, nil, out); err != nil {
			return err
		}
	}
	if !bytes.Equal(short, long[:len(short)]) {
		return types.NewError(types.ErrBadCond, "x963 output is not prefix-stable")
	}
	if !bytes.Equal(short, again) {
		return types.NewError(types.ErrBadCond, "x963 output is not deterministic")
	}

	// First block by definition: Hash(Z || 00000001).
	want := sha256.Sum256(append(append([]byte(nil), secret...), 0, 0, 0, 1))
	if !bytes.Equal(long[:sha256.Size], want[:]) {
		return mismatch("x963 first block", long[:sha256.Size], want[:])
	}
	return nil
}

func (s *Service) checkKeyPair(context.Context) error {
	p := s.params
	key, err := s.lib.ImportPrivateKey(p.PrivateKey, p.Curve)
	if err != nil {
		return err
	}
	defer key.Free()
	x, y, err := key.PublicXY()
	if err != nil {
		return err
	}
	if got := append(x, y...); !bytes.Equal(got, p.PublicKey) {
		return mismatch("derived public key", got, p.PublicKey)
	}
	return nil
}

func (s *Service) checkECDSA(context.Context) error {
	p := s.params
	return s.withRNG(func(rng domain.RNG) error {
		digest, err := s.digest([]byte("conformance"))
		if err != nil {
			return err
		}
		sig := make([]byte, p.SignatureSize())
		if _, err := ecc.Sign(s.lib, p.PrivateKey, digest, sig, p.CoordSize, p.Curve, rng); err != nil {
			return err
		}
		if err := ecc.Verify(s.lib, p.PublicKey, digest, sig, p.CoordSize, p.Curve); err != nil {
			return err
		}

		wrong := append([]byte(nil), digest...)
		wrong[0] ^= 0x01
		if err := expectCode(ecc.Verify(s.lib, p.PublicKey, wrong, sig, p.CoordSize, p.Curve), types.ErrSigVerify, "wrong digest"); err != nil {
			return err
		}

		other, err := s.lib.MakeKey(rng, p.CoordSize, p.Curve)
		if err != nil {
			return err
		}
		defer other.Free()
		x, y, err := other.PublicXY()
		if err != nil {
			return err
		}
		return expectCode(ecc.Verify(s.lib, append(x, y...), digest, sig, p.CoordSize, p.Curve), types.ErrSigVerify, "wrong key")
	})
}

func (s *Service) checkECDSATink(context.Context) error {
	p := s.params
	if p.Curve != types.CurveSECP256R1 {
		return errSkipped
	}
	verifier, err := tinksig.NewECDSAVerifier("SHA256", "NIST_P256", "IEEE_P1363", p.PublicKey[:p.CoordSize], p.PublicKey[p.CoordSize:])
	if err != nil {
		return types.NewError(types.ErrBadCond, "tink verifier: %v", err)
	}
	return s.withRNG(func(rng domain.RNG) error {
		msg := make([]byte, 48)
		if err := rng.GenerateBlock(msg); err != nil {
			return err
		}
		digest, err := s.digest(msg)
		if err != nil {
			return err
		}
		sig := make([]byte, p.SignatureSize())
		if _, err := ecc.Sign(s.lib, p.PrivateKey, digest, sig, p.CoordSize, p.Curve, rng); err != nil {
			return err
		}
		if err := verifier.Verify(sig, msg); err != nil {
			return types.NewError(types.ErrSigVerify, "tink rejected signature: %v", err)
		}
		return nil
	})
}

func (s *Service) checkECDHE(context.Context) error {
	p := s.params
	return s.withRNG(func(rng domain.RNG) error {
		secret := make([]byte, p.CoordSize)
		n, err := ecc.ECDHE(s.lib, rng, p.CoordSize, p.Curve, secret)
		if err != nil {
			return err
		}
		if n != p.CoordSize {
			return types.NewError(types.ErrBadCond, "secret is %d bytes, want %d", n, p.CoordSize)
		}
		if bytes.Equal(secret, make([]byte, n)) {
			return types.NewError(types.ErrBadCond, "secret is all zero")
		}
		return nil
	})
}

func (s *Service) checkAEAD(context.Context) error {
	p := s.params
	return s.withRNG(func(rng domain.RNG) error {
		key := make([]byte, p.KeySize())
		plain := make([]byte, p.DataSize)
		if err := rng.GenerateBlock(key); err != nil {
			return err
		}
		if err := rng.GenerateBlock(plain); err != nil {
			return err
		}
		a, err := s.lib.NewAEAD(p.Cipher, key)
		if err != nil {
			return err
		}
		defer a.Free()

		ct := make([]byte, len(plain))
		tag := make([]byte, a.TagSize())
		if err := a.Encrypt(ct, tag, plain, p.Nonce, p.AAD); err != nil {
			return err
		}
		got := make([]byte, len(ct))
		if err := a.Decrypt(got, ct, tag, p.Nonce, p.AAD); err != nil {
			return err
		}
		if !bytes.Equal(got, plain) {
			return types.NewError(types.ErrBadCond, "decrypted text differs")
		}

		if p.Cipher == types.CipherAES128GCM {
			if err := tinkDecrypt(key, p.Nonce, ct, tag, p.AAD, plain); err != nil {
				return err
			}
		}

		tag[len(tag)-1] ^= 0x80
		return expectCode(a.Decrypt(got, ct, tag, p.Nonce, p.AAD), types.ErrAESGCMAuth, "tampered tag")
	})
}

// tinkDecrypt opens nonce||ct||tag with Tink's AES-GCM and compares the
// result with want.
func tinkDecrypt(key, nonce, ct, tag, aad, want []byte) error {
	t, err := tinkaead.NewAESGCM(key)
	if err != nil {
		return types.NewError(types.ErrBadCond, "tink aes-gcm: %v", err)
	}
	in := make([]byte, 0, len(nonce)+len(ct)+len(tag))
	in = append(append(append(in, nonce...), ct...), tag...)
	got, err := t.Decrypt(in, aad)
	if err != nil {
		return types.NewError(types.ErrAESGCMAuth, "tink could not open ciphertext: %v", err)
	}
	if !bytes.Equal(got, want) {
		return types.NewError(types.ErrBadCond, "tink plaintext differs")
	}
	return nil
}

func (s *Service) checkArguments(context.Context) error {
	return s.withRNG(func(rng domain.RNG) error {
		digest := make([]byte, sha256.Size)
		for _, size := range params.CoordSizes() {
			curve := types.CurveSECP256R1
			if size == params.CoordSize(types.CurveSECP224R1) {
				curve = types.CurveSECP224R1
			}
			key := make([]byte, 2*size)
			sig := make([]byte, 2*size)
			cases := []struct {
				what string
				err  error
			}{
				{"verify short key", ecc.Verify(s.lib, key[:2*size-1], digest, sig, size, curve)},
				{"verify short signature", ecc.Verify(s.lib, key, digest, sig[:2*size-1], size, curve)},
				{"sign short key", signErr(ecc.Sign(s.lib, key[:size-1], digest, sig, size, curve, rng))},
				{"sign short signature", signErr(ecc.Sign(s.lib, key[:size], digest, sig[:2*size-1], size, curve, rng))},
				{"verify zero width", ecc.Verify(s.lib, key, digest, sig, 0, curve)},
			}
			for _, c := range cases {
				if err := expectCode(c.err, types.ErrBadFuncArg, c.what); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func signErr(_ int, err error) error { return err }

func (s *Service) checkPipeline(ctx context.Context) error {
	res, err := pipeline.New(s.lib, s.params, io.Discard, s.log, nil).Execute(ctx)
	res.Wipe()
	return err
}
