package crypto_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"cryptodemo/internal/domain/types"
	"cryptodemo/internal/params"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("hex %q: %v", s, err)
	}
	return b
}

func TestImportPrivateKey_DerivesKnownPublic(t *testing.T) {
	lib := newLibrary(t)
	for _, curve := range params.Curves() {
		p := params.MustNew(params.Options{Curve: curve})
		key, err := lib.ImportPrivateKey(p.PrivateKey, curve)
		if err != nil {
			t.Fatalf("%v: ImportPrivateKey: %v", curve, err)
		}
		if key.Kind() != types.KeyPrivateOnly {
			t.Fatalf("%v: want private-only key, got %v", curve, key.Kind())
		}
		x, y, err := key.PublicXY()
		key.Free()
		if err != nil {
			t.Fatalf("%v: PublicXY: %v", curve, err)
		}
		if !bytes.Equal(append(x, y...), p.PublicKey) {
			t.Fatalf("%v: derived public key does not match the compiled-in one", curve)
		}
	}
}

func TestImportPublicKey_RejectsOffCurve(t *testing.T) {
	lib := newLibrary(t)
	p := params.MustNew(params.Options{})
	y := append([]byte(nil), p.PublicKey[p.CoordSize:]...)
	y[len(y)-1] ^= 0x01
	_, err := lib.ImportPublicKey(p.PublicKey[:p.CoordSize], y, p.Curve)
	if !errors.Is(err, types.ErrECCBadArg) {
		t.Fatalf("want ECC_BAD_ARG_E, got %v", err)
	}
}

func TestImportPrivateKey_OutOfRange(t *testing.T) {
	lib := newLibrary(t)
	zero := make([]byte, 32)
	if _, err := lib.ImportPrivateKey(zero, types.CurveSECP256R1); !errors.Is(err, types.ErrECCOutOfRange) {
		t.Fatalf("want ECC_OUT_OF_RANGE_E for d=0, got %v", err)
	}
	if _, err := lib.ImportPrivateKey(bytes.Repeat([]byte{0xff}, 32), types.CurveSECP256R1); !errors.Is(err, types.ErrECCOutOfRange) {
		t.Fatalf("want ECC_OUT_OF_RANGE_E for d>=n, got %v", err)
	}
	if _, err := lib.ImportPrivateKey([]byte{1}, types.CurveInvalid); !errors.Is(err, types.ErrECCCurveOID) {
		t.Fatalf("want ECC_CURVE_OID_E, got %v", err)
	}
}

func TestSignVerify_RawPair(t *testing.T) {
	lib := newLibrary(t)
	rng, err := lib.NewRNG()
	if err != nil {
		t.Fatalf("NewRNG: %v", err)
	}
	defer rng.Free()

	p := params.MustNew(params.Options{})
	priv, err := lib.ImportPrivateKey(p.PrivateKey, p.Curve)
	if err != nil {
		t.Fatalf("ImportPrivateKey: %v", err)
	}
	defer priv.Free()
	pub, err := lib.ImportPublicKey(p.PublicKey[:p.CoordSize], p.PublicKey[p.CoordSize:], p.Curve)
	if err != nil {
		t.Fatalf("ImportPublicKey: %v", err)
	}
	defer pub.Free()
	if pub.Kind() != types.KeyPublic {
		t.Fatalf("want public key, got %v", pub.Kind())
	}

	digest := bytes.Repeat([]byte{0x5a}, 32)
	r, s, err := lib.SignHash(digest, rng, priv)
	if err != nil {
		t.Fatalf("SignHash: %v", err)
	}
	ok, err := lib.VerifyHash(r, s, digest, pub)
	if err != nil || !ok {
		t.Fatalf("VerifyHash = %v, %v", ok, err)
	}
	digest[0] ^= 0xff
	ok, err = lib.VerifyHash(r, s, digest, pub)
	if err != nil || ok {
		t.Fatalf("VerifyHash on a changed digest = %v, %v", ok, err)
	}
}

func TestSharedSecret_BothDirectionsAgree(t *testing.T) {
	lib := newLibrary(t)
	rng, err := lib.NewRNG()
	if err != nil {
		t.Fatalf("NewRNG: %v", err)
	}
	defer rng.Free()

	for _, curve := range params.Curves() {
		size := params.CoordSize(curve)
		a, err := lib.MakeKey(rng, size, curve)
		if err != nil {
			t.Fatalf("%v: MakeKey A: %v", curve, err)
		}
		b, err := lib.MakeKey(rng, size, curve)
		if err != nil {
			a.Free()
			t.Fatalf("%v: MakeKey B: %v", curve, err)
		}
		secA := make([]byte, size)
		secB := make([]byte, size)
		nA, errA := lib.SharedSecret(a, b, secA)
		nB, errB := lib.SharedSecret(b, a, secB)
		a.Free()
		b.Free()
		if errA != nil || errB != nil {
			t.Fatalf("%v: SharedSecret: %v / %v", curve, errA, errB)
		}
		if nA != size || nB != size || !bytes.Equal(secA, secB) {
			t.Fatalf("%v: secrets differ (%d/%d bytes)", curve, nA, nB)
		}
	}
}

func TestSharedSecret_SmallBuffer(t *testing.T) {
	lib := newLibrary(t)
	rng, err := lib.NewRNG()
	if err != nil {
		t.Fatalf("NewRNG: %v", err)
	}
	defer rng.Free()
	a, err := lib.MakeKey(rng, 32, types.CurveSECP256R1)
	if err != nil {
		t.Fatalf("MakeKey: %v", err)
	}
	defer a.Free()
	if _, err := lib.SharedSecret(a, a, make([]byte, 16)); !errors.Is(err, types.ErrBuffer) {
		t.Fatalf("want BUFFER_E, got %v", err)
	}
	if _, err := lib.MakeKey(rng, 28, types.CurveSECP256R1); !errors.Is(err, types.ErrBadFuncArg) {
		t.Fatalf("want BAD_FUNC_ARG for mismatched key size, got %v", err)
	}
}
