package conformance

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/inconshreveable/log15"

	"cryptodemo/internal/domain"
	"cryptodemo/internal/domain/types"
	"cryptodemo/internal/params"
)

// errSkipped marks a check that does not apply to the parameter set.
var errSkipped = errors.New("skipped")

var (
	passText = color.New(color.FgGreen, color.Bold).SprintFunc()
	failText = color.New(color.FgRed, color.Bold).SprintFunc()
	skipText = color.New(color.FgYellow).SprintFunc()
)

type check struct {
	name string
	run  func(ctx context.Context) error
}

// Service runs the conformance checks for one parameter set.
type Service struct {
	lib    domain.Library
	params params.Params
	out    io.Writer
	log    log15.Logger
	store  domain.ReportStore
}

// New constructs a conformance Service. store may be nil.
func New(lib domain.Library, p params.Params, out io.Writer, log log15.Logger, store domain.ReportStore) *Service {
	return &Service{lib: lib, params: p, out: out, log: log, store: store}
}

func (s *Service) checks() []check {
	return []check{
		{"SHA-256 known answer", s.checkSHA256},
		{"AES-128-GCM known answer", s.checkAESGCM},
		{"HKDF-SHA256 RFC 5869", s.checkHKDF},
		{"X9.63 KDF properties", s.checkX963},
		{"Key pair derivation", s.checkKeyPair},
		{"ECDSA sign/verify", s.checkECDSA},
		{"ECDSA Tink cross-verify", s.checkECDSATink},
		{"ECDHE agreement", s.checkECDHE},
		{"AEAD round trip", s.checkAEAD},
		{"Argument validation", s.checkArguments},
		{"Pipeline end to end", s.checkPipeline},
	}
}

// Execute runs every check and returns their results. The error is that of
// the first failing check.
func (s *Service) Execute(ctx context.Context) ([]types.StageResult, error) {
	var (
		results  []types.StageResult
		firstErr error
		failed   int
		skipped  int
	)
	for _, c := range s.checks() {
		if err := ctx.Err(); err != nil {
			return results, fmt.Errorf("conformance cancelled before %q: %w", c.name, err)
		}
		start := time.Now()
		err := c.run(ctx)
		r := types.StageResult{Name: c.name, Duration: time.Since(start)}

		switch {
		case errors.Is(err, errSkipped):
			r.Skipped = true
			skipped++
			fmt.Fprintf(s.out, "  %-28s %s\n", c.name, skipText("SKIP"))
		case err != nil:
			r.Code = types.CodeOf(err)
			r.Detail = err.Error()
			failed++
			if firstErr == nil {
				firstErr = err
			}
			s.log.Error("Check failed", "check", c.name, "code", r.Code, "err", err)
			fmt.Fprintf(s.out, "  %-28s %s (%d: %v)\n", c.name, failText("FAIL"), r.Code, err)
		default:
			s.log.Debug("Check passed", "check", c.name, "elapsed", r.Duration)
			fmt.Fprintf(s.out, "  %-28s %s\n", c.name, passText("PASS"))
		}
		results = append(results, r)
	}
	passed := len(results) - failed - skipped
	fmt.Fprintf(s.out, "Conformance: %d passed, %d failed, %d skipped\n", passed, failed, skipped)
	s.log.Info("Conformance complete", "params", s.params.String(), "passed", passed, "failed", failed, "skipped", skipped)
	return results, firstErr
}

// Run executes the suite and records a report.
func (s *Service) Run(ctx context.Context) error {
	started := time.Now()
	results, err := s.Execute(ctx)
	if s.store != nil {
		if serr := s.store.SaveReport(types.NewReport(types.ReportConformance, s.params.Curve, started, results, err)); serr != nil {
			s.log.Warn("Could not save report", "err", serr)
		}
	}
	return err
}

// expectCode turns an observed status into a check result: nil when err
// carries want, otherwise an error describing the mismatch.
func expectCode(err error, want types.ErrorCode, what string) error {
	got := types.CodeOf(err)
	if got == want {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: want code %d: %w", what, want, err)
	}
	return types.NewError(types.ErrBadCond, "%s: want code %d, got success", what, want)
}

// mismatch reports a known-answer failure.
func mismatch(what string, got, want []byte) error {
	return types.NewError(types.ErrBadCond, "%s: got %x, want %x", what, got, want)
}

// Compile-time assertion that Service implements domain.Suite.
var _ domain.Suite = (*Service)(nil)
