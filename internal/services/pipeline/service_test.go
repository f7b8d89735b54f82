package pipeline_test

import (
	"bytes"
	"context"
	"errors"
	mrand "math/rand/v2"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptodemo/internal/crypto"
	"cryptodemo/internal/domain"
	"cryptodemo/internal/domain/types"
	"cryptodemo/internal/logging"
	"cryptodemo/internal/params"
	"cryptodemo/internal/protocol/ecc"
	"cryptodemo/internal/services/pipeline"
)

func newLibrary(t *testing.T, opts ...crypto.Option) *crypto.Library {
	t.Helper()
	if len(opts) == 0 {
		opts = []crypto.Option{crypto.WithEntropy(mrand.NewChaCha8([32]byte{4, 2}))}
	}
	lib := crypto.New(opts...)
	require.NoError(t, lib.Init())
	t.Cleanup(func() {
		assert.Zero(t, lib.OpenHandles(), "leaked handles")
		assert.NoError(t, lib.Cleanup())
	})
	return lib
}

// failingKDF makes the key derivation stage fail with code.
type failingKDF struct {
	domain.Library
	code types.ErrorCode
}

func (f failingKDF) KDF(types.KDFType, types.HashType, []byte, []byte, []byte) error {
	return types.NewError(f.code, "injected")
}

type memStore struct{ reports []types.Report }

func (m *memStore) SaveReport(r types.Report) error {
	m.reports = append(m.reports, r)
	return nil
}

func (m *memStore) ListReports(types.ReportKind) ([]types.Report, error) { return m.reports, nil }

func TestExecute_Success(t *testing.T) {
	lib := newLibrary(t)
	p := params.MustNew(params.Options{})
	var out bytes.Buffer
	svc := pipeline.New(lib, p, &out, logging.Discard(), nil)

	res, err := svc.Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, res.Stages, 6)
	for _, st := range res.Stages {
		assert.Equal(t, types.CodeOK, st.Code, st.Name)
	}
	assert.Len(t, res.Plaintext, params.DefaultDataSize)
	assert.Len(t, res.Ciphertext, len(res.Plaintext))
	assert.Len(t, res.Tag, 16)
	assert.Len(t, res.Signature, 64)
	assert.Len(t, res.Secret, 32)
	assert.Len(t, res.KEK, 16)
	assert.NotEqual(t, res.Plaintext, res.Ciphertext)

	for _, line := range []string{
		"RNG Generate Block Sz 64: Ret 0\n",
		"SHA256 Hash Plain: Ret 0\n",
		"ECDSA (SECP256R1): Ret 0\n",
		"ECDHE (SECP256R1): Ret 0\n",
		"X963 KDF (SHA256): Ret 0\n",
		"AES-GCM Encrypt: Ret 0\n",
	} {
		assert.Contains(t, out.String(), line)
	}

	require.NoError(t, ecc.Verify(lib, p.PublicKey, res.Digest, res.Signature, p.CoordSize, p.Curve))

	a, err := lib.NewAEAD(p.Cipher, res.KEK)
	require.NoError(t, err)
	defer a.Free()
	plain := make([]byte, len(res.Ciphertext))
	require.NoError(t, a.Decrypt(plain, res.Ciphertext, res.Tag, p.Nonce, p.AAD))
	assert.Equal(t, res.Plaintext, plain)
}

func TestExecute_RepeatedRunsDiffer(t *testing.T) {
	lib := newLibrary(t)
	svc := pipeline.New(lib, params.MustNew(params.Options{}), &bytes.Buffer{}, logging.Discard(), nil)

	first, err := svc.Execute(context.Background())
	require.NoError(t, err)
	second, err := svc.Execute(context.Background())
	require.NoError(t, err)

	assert.NotEqual(t, first.Signature, second.Signature)
	assert.NotEqual(t, first.Secret, second.Secret)
}

func TestExecute_Variants(t *testing.T) {
	cases := []struct {
		name  string
		opts  params.Options
		lines []string
	}{
		{
			name:  "p224",
			opts:  params.Options{Curve: types.CurveSECP224R1},
			lines: []string{"ECDSA (SECP224R1): Ret 0", "ECDHE (SECP224R1): Ret 0"},
		},
		{
			name:  "chacha-hkdf",
			opts:  params.Options{KDF: types.KDFHKDF, Cipher: types.CipherChaCha20Poly1305, DataSize: 1000},
			lines: []string{"HKDF (SHA256): Ret 0", "ChaCha20-Poly1305 Encrypt: Ret 0", "Sz 1000"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lib := newLibrary(t)
			p := params.MustNew(tc.opts)
			var out bytes.Buffer
			res, err := pipeline.New(lib, p, &out, logging.Discard(), nil).Execute(context.Background())
			require.NoError(t, err)
			assert.Len(t, res.Secret, p.CoordSize)
			assert.Len(t, res.KEK, p.KeySize())
			assert.Len(t, res.Ciphertext, p.DataSize)
			for _, line := range tc.lines {
				assert.Contains(t, out.String(), line)
			}
		})
	}
}

func TestExecute_AbortsOnFirstFailure(t *testing.T) {
	lib := newLibrary(t)
	var out bytes.Buffer
	svc := pipeline.New(failingKDF{Library: lib, code: types.ErrHashType}, params.MustNew(params.Options{}), &out, logging.Discard(), nil)

	res, err := svc.Execute(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrHashType))
	require.Len(t, res.Stages, 5)
	assert.Equal(t, "KDF", res.Stages[4].Name)
	assert.Equal(t, types.ErrHashType, res.Stages[4].Code)
	assert.Contains(t, out.String(), "X963 KDF (SHA256): Ret -232\n")
	assert.Contains(t, out.String(), "Example Error -232: Hash type not enabled/available\n")
	assert.NotContains(t, out.String(), "AES-GCM Encrypt")
}

func TestExecute_RNGFailure(t *testing.T) {
	lib := newLibrary(t, crypto.WithEntropy(iotest.ErrReader(errors.New("no entropy"))))
	var out bytes.Buffer
	res, err := pipeline.New(lib, params.MustNew(params.Options{}), &out, logging.Discard(), nil).Execute(context.Background())

	assert.True(t, errors.Is(err, types.ErrRNGFailure))
	require.Len(t, res.Stages, 1)
	assert.Contains(t, out.String(), "RNG Generate Block Sz 64: Ret -199\n")
}

func TestExecute_Cancelled(t *testing.T) {
	lib := newLibrary(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := pipeline.New(lib, params.MustNew(params.Options{}), &bytes.Buffer{}, logging.Discard(), nil).Execute(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, res.Stages)
}

func TestRun_SavesReport(t *testing.T) {
	lib := newLibrary(t)
	store := &memStore{}
	svc := pipeline.New(lib, params.MustNew(params.Options{}), &bytes.Buffer{}, logging.Discard(), store)
	require.NoError(t, svc.Run(context.Background()))

	failing := pipeline.New(failingKDF{Library: lib, code: types.ErrBadFuncArg}, params.MustNew(params.Options{}), &bytes.Buffer{}, logging.Discard(), store)
	require.ErrorIs(t, failing.Run(context.Background()), types.ErrBadFuncArg)

	require.Len(t, store.reports, 2)
	assert.Equal(t, types.ReportPipeline, store.reports[0].Kind)
	assert.Equal(t, types.CodeOK, store.reports[0].Code)
	assert.Equal(t, "secp256r1", store.reports[0].Curve)
	assert.Equal(t, types.ErrBadFuncArg, store.reports[1].Code)
	assert.Len(t, store.reports[1].Failed(), 1)
}
