package params_test

import (
	"errors"
	"testing"

	"cryptodemo/internal/domain/types"
	"cryptodemo/internal/params"
)

func TestNew_Defaults(t *testing.T) {
	p, err := params.New(params.Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if p.Curve != types.CurveSECP256R1 || p.CoordSize != 32 {
		t.Fatalf("unexpected curve %v/%d", p.Curve, p.CoordSize)
	}
	if p.KeySize() != 16 || p.TagSize() != 16 || p.SignatureSize() != 64 {
		t.Fatalf("unexpected sizes key=%d tag=%d sig=%d", p.KeySize(), p.TagSize(), p.SignatureSize())
	}
	if p.DataSize != params.DefaultDataSize {
		t.Fatalf("want data size %d, got %d", params.DefaultDataSize, p.DataSize)
	}
}

func TestNew_P224(t *testing.T) {
	p, err := params.New(params.Options{Curve: types.CurveSECP224R1, Cipher: types.CipherChaCha20Poly1305})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if p.CoordSize != 28 || len(p.PrivateKey) != 28 || len(p.PublicKey) != 56 {
		t.Fatalf("unexpected P-224 sizes %d/%d/%d", p.CoordSize, len(p.PrivateKey), len(p.PublicKey))
	}
	if p.KeySize() != 32 {
		t.Fatalf("want 32-byte chacha key, got %d", p.KeySize())
	}
}

func TestNew_Rejects(t *testing.T) {
	tests := []struct {
		name string
		opts params.Options
		want types.ErrorCode
	}{
		{"bad curve", params.Options{Curve: types.CurveID(99)}, types.ErrECCCurveOID},
		{"bad kdf", params.Options{KDF: "pbkdf2"}, types.ErrNotCompiledIn},
		{"bad cipher", params.Options{Cipher: "des"}, types.ErrNotCompiledIn},
		{"negative size", params.Options{DataSize: -1}, types.ErrBadFuncArg},
		{"huge size", params.Options{DataSize: params.MaxDataSize + 1}, types.ErrBadFuncArg},
	}
	for _, test := range tests {
		_, err := params.New(test.opts)
		if !errors.Is(err, test.want) {
			t.Errorf("%s: got %v, want %v", test.name, err, test.want)
		}
	}
}
