package conformance_test

import (
	"bytes"
	"context"
	"math/big"
	mrand "math/rand/v2"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptodemo/internal/crypto"
	"cryptodemo/internal/domain"
	"cryptodemo/internal/domain/types"
	"cryptodemo/internal/logging"
	"cryptodemo/internal/params"
	"cryptodemo/internal/services/conformance"
)

func init() { color.NoColor = true }

func newLibrary(t *testing.T) *crypto.Library {
	t.Helper()
	lib := crypto.New(crypto.WithEntropy(mrand.NewChaCha8([32]byte{7})))
	require.NoError(t, lib.Init())
	t.Cleanup(func() {
		assert.Zero(t, lib.OpenHandles(), "leaked handles")
		assert.NoError(t, lib.Cleanup())
	})
	return lib
}

// lenientVerifier accepts every signature.
type lenientVerifier struct{ domain.Library }

func (lenientVerifier) VerifyHash(*big.Int, *big.Int, []byte, domain.Key) (bool, error) {
	return true, nil
}

type memStore struct{ reports []types.Report }

func (m *memStore) SaveReport(r types.Report) error {
	m.reports = append(m.reports, r)
	return nil
}

func (m *memStore) ListReports(types.ReportKind) ([]types.Report, error) { return m.reports, nil }

func TestExecute_AllPass(t *testing.T) {
	cases := []params.Options{
		{},
		{Curve: types.CurveSECP224R1},
		{KDF: types.KDFHKDF, Cipher: types.CipherChaCha20Poly1305, DataSize: 300},
	}
	for _, opts := range cases {
		p := params.MustNew(opts)
		t.Run(p.String(), func(t *testing.T) {
			lib := newLibrary(t)
			var out bytes.Buffer
			results, err := conformance.New(lib, p, &out, logging.Discard(), nil).Execute(context.Background())
			require.NoError(t, err, out.String())
			require.Len(t, results, 11)
			for _, r := range results {
				assert.Equal(t, types.CodeOK, r.Code, r.Name)
			}
			assert.NotContains(t, out.String(), "FAIL")
		})
	}
}

func TestExecute_SkipsTinkOffP256(t *testing.T) {
	lib := newLibrary(t)
	var out bytes.Buffer
	results, err := conformance.New(lib, params.MustNew(params.Options{Curve: types.CurveSECP224R1}), &out, logging.Discard(), nil).Execute(context.Background())
	require.NoError(t, err)

	var skipped []string
	for _, r := range results {
		if r.Skipped {
			skipped = append(skipped, r.Name)
		}
	}
	assert.Equal(t, []string{"ECDSA Tink cross-verify"}, skipped)
	assert.Contains(t, out.String(), "10 passed, 0 failed, 1 skipped")
}

func TestExecute_RunsEveryCheckAfterFailure(t *testing.T) {
	lib := newLibrary(t)
	var out bytes.Buffer
	results, err := conformance.New(lenientVerifier{lib}, params.MustNew(params.Options{}), &out, logging.Discard(), nil).Execute(context.Background())

	require.ErrorIs(t, err, types.ErrBadCond)
	assert.Len(t, results, 11)
	var failed []string
	for _, r := range results {
		if r.Code != types.CodeOK {
			failed = append(failed, r.Name)
		}
	}
	assert.Equal(t, []string{"ECDSA sign/verify"}, failed)
	assert.Equal(t, 1, strings.Count(out.String(), "FAIL"))
}

func TestRun_SavesReport(t *testing.T) {
	lib := newLibrary(t)
	store := &memStore{}
	require.NoError(t, conformance.New(lib, params.MustNew(params.Options{}), &bytes.Buffer{}, logging.Discard(), store).Run(context.Background()))
	require.Len(t, store.reports, 1)
	assert.Equal(t, types.ReportConformance, store.reports[0].Kind)
	assert.Len(t, store.reports[0].Stages, 11)
}
