package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/inconshreveable/log15"

	"cryptodemo/internal/domain"
	"cryptodemo/internal/domain/types"
	"cryptodemo/internal/params"
	"cryptodemo/internal/protocol/ecc"
	"cryptodemo/internal/util/memzero"
)

// Result holds every buffer produced by one run together with the status of
// each stage that ran.
type Result struct {
	Plaintext  []byte
	Digest     []byte
	Signature  []byte
	Secret     []byte
	KEK        []byte
	Ciphertext []byte
	Tag        []byte

	Stages []types.StageResult
}

// Wipe zeroes the secret material of r.
func (r *Result) Wipe() {
	memzero.ZeroAll(r.Plaintext, r.Secret, r.KEK)
}

// Service runs the demo pipeline against a library with one parameter set.
type Service struct {
	lib    domain.Library
	params params.Params
	out    io.Writer
	log    log15.Logger
	store  domain.ReportStore
}

// New constructs a pipeline Service. store may be nil, in which case Run
// keeps no reports.
func New(lib domain.Library, p params.Params, out io.Writer, log log15.Logger, store domain.ReportStore) *Service {
	return &Service{lib: lib, params: p, out: out, log: log, store: store}
}

type stage struct {
	name  string // short name recorded in reports
	label string // console label
	run   func() error
}

// Execute runs the stages in order and stops at the first failure.
func (s *Service) Execute(ctx context.Context) (Result, error) {
	p := s.params
	res := Result{
		Plaintext:  make([]byte, p.DataSize),
		Digest:     make([]byte, p.DigestSize()),
		Signature:  make([]byte, p.SignatureSize()),
		Secret:     make([]byte, p.CoordSize),
		KEK:        make([]byte, p.KeySize()),
		Ciphertext: make([]byte, p.DataSize),
		Tag:        make([]byte, p.TagSize()),
	}

	var rng domain.RNG
	defer func() {
		if rng != nil {
			rng.Free()
		}
	}()

	stages := []stage{
		{"RNG", fmt.Sprintf("RNG Generate Block Sz %d", p.DataSize), func() error {
			var err error
			if rng, err = s.lib.NewRNG(); err != nil {
				return err
			}
			return rng.GenerateBlock(res.Plaintext)
		}},
		{"SHA256", "SHA256 Hash Plain", func() error {
			h, err := s.lib.NewHash(p.Hash)
			if err != nil {
				return err
			}
			defer h.Free()
			h.Write(res.Plaintext)
			copy(res.Digest, h.Sum(nil))
			return nil
		}},
		{"ECDSA", fmt.Sprintf("ECDSA (SECP%dR1)", p.CoordSize*8), func() error {
			n, err := ecc.Sign(s.lib, p.PrivateKey, res.Digest, res.Signature, p.CoordSize, p.Curve, rng)
			if err != nil {
				return err
			}
			return ecc.Verify(s.lib, p.PublicKey, res.Digest, res.Signature[:n], p.CoordSize, p.Curve)
		}},
		{"ECDHE", fmt.Sprintf("ECDHE (SECP%dR1)", p.CoordSize*8), func() error {
			n, err := ecc.ECDHE(s.lib, rng, p.CoordSize, p.Curve, res.Secret)
			res.Secret = res.Secret[:n]
			return err
		}},
		{"KDF", kdfLabel(p), func() error {
			return s.lib.KDF(p.KDF, p.Hash, res.Secret, nil, res.KEK)
		}},
		{"AEAD", cipherLabel(p), func() error {
			a, err := s.lib.NewAEAD(p.Cipher, res.KEK)
			if err != nil {
				return err
			}
			defer a.Free()
			return a.Encrypt(res.Ciphertext, res.Tag, res.Plaintext, p.Nonce, p.AAD)
		}},
	}

	for _, st := range stages {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("pipeline cancelled before %s: %w", st.name, err)
		}
		start := time.Now()
		err := st.run()
		code := types.CodeOf(err)
		res.Stages = append(res.Stages, types.StageResult{
			Name:     st.name,
			Code:     code,
			Duration: time.Since(start),
		})
		fmt.Fprintf(s.out, "%s: Ret %d\n", st.label, code)
		if err != nil {
			s.log.Error("Stage failed", "stage", st.name, "code", code, "err", err)
			fmt.Fprintf(s.out, "Example Error %d: %s\n", code, s.lib.ErrorString(code))
			return res, err
		}
		s.log.Debug("Stage done", "stage", st.name, "elapsed", time.Since(start))
	}
	s.log.Info("Pipeline complete", "params", p.String())
	return res, nil
}

// Run executes the pipeline once, records a report and wipes the buffers.
func (s *Service) Run(ctx context.Context) error {
	started := time.Now()
	res, err := s.Execute(ctx)
	res.Wipe()
	s.save(types.NewReport(types.ReportPipeline, s.params.Curve, started, res.Stages, err))
	return err
}

func (s *Service) save(r types.Report) {
	if s.store == nil {
		return
	}
	if err := s.store.SaveReport(r); err != nil {
		s.log.Warn("Could not save report", "err", err)
	}
}

func kdfLabel(p params.Params) string {
	if p.KDF == types.KDFHKDF {
		return fmt.Sprintf("HKDF (%v)", p.Hash)
	}
	return fmt.Sprintf("X963 KDF (%v)", p.Hash)
}

func cipherLabel(p params.Params) string {
	if p.Cipher == types.CipherChaCha20Poly1305 {
		return "ChaCha20-Poly1305 Encrypt"
	}
	return "AES-GCM Encrypt"
}

// Compile-time assertion that Service implements domain.Suite.
var _ domain.Suite = (*Service)(nil)
