package benchmark

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/inconshreveable/log15"

	"cryptodemo/internal/domain"
	"cryptodemo/internal/domain/types"
	"cryptodemo/internal/params"
)

// DefaultDuration is how long each primitive is timed when none is set.
const DefaultDuration = time.Second

// blockSize is the buffer size of the bulk primitives.
const blockSize = 1024

// Service times the library primitives for one parameter set.
type Service struct {
	lib      domain.Library
	params   params.Params
	duration time.Duration
	out      io.Writer
	log      log15.Logger
	store    domain.ReportStore
}

// New constructs a benchmark Service. A zero duration means DefaultDuration;
// store may be nil.
func New(lib domain.Library, p params.Params, duration time.Duration, out io.Writer, log log15.Logger, store domain.ReportStore) *Service {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Service{lib: lib, params: p, duration: duration, out: out, log: log, store: store}
}

// bench is one timed primitive. bytes is the payload of one op, zero for
// non-bulk primitives.
type bench struct {
	name  string
	bytes int
	op    func() error
}

// Execute times every primitive in turn and aborts on the first error.
func (s *Service) Execute(ctx context.Context) ([]types.StageResult, error) {
	rng, err := s.lib.NewRNG()
	if err != nil {
		return nil, err
	}
	defer rng.Free()

	fx, err := s.newFixture(rng)
	if err != nil {
		return nil, err
	}
	defer fx.free()

	var results []types.StageResult
	for _, b := range s.benches(rng, fx) {
		r, err := s.time(ctx, b)
		results = append(results, r)
		if err != nil {
			s.log.Error("Benchmark failed", "bench", b.name, "code", r.Code, "err", err)
			fmt.Fprintf(s.out, "%-24s failed: %d %s\n", b.name, r.Code, s.lib.ErrorString(r.Code))
			return results, err
		}
		s.print(r)
	}
	s.log.Info("Benchmark complete", "params", s.params.String(), "duration", s.duration)
	return results, nil
}

// Run executes the suite and records a report.
func (s *Service) Run(ctx context.Context) error {
	started := time.Now()
	results, err := s.Execute(ctx)
	if s.store != nil {
		if serr := s.store.SaveReport(types.NewReport(types.ReportBenchmark, s.params.Curve, started, results, err)); serr != nil {
			s.log.Warn("Could not save report", "err", serr)
		}
	}
	return err
}

// time runs b at least once and until the configured duration has passed.
func (s *Service) time(ctx context.Context, b bench) (types.StageResult, error) {
	r := types.StageResult{Name: b.name}
	start := time.Now()
	for {
		if err := ctx.Err(); err != nil {
			r.Duration = time.Since(start)
			return r, fmt.Errorf("benchmark %s cancelled: %w", b.name, err)
		}
		if err := b.op(); err != nil {
			r.Code = types.CodeOf(err)
			r.Detail = err.Error()
			r.Duration = time.Since(start)
			return r, err
		}
		r.Ops++
		r.Bytes += int64(b.bytes)
		if r.Duration = time.Since(start); r.Duration >= s.duration {
			return r, nil
		}
	}
}

func (s *Service) print(r types.StageResult) {
	secs := r.Duration.Seconds()
	if secs <= 0 {
		secs = 1e-9
	}
	line := fmt.Sprintf("%-24s %8d ops took %.3f sec, %12.1f ops/sec", r.Name, r.Ops, secs, float64(r.Ops)/secs)
	if r.Bytes > 0 {
		line += fmt.Sprintf(", %9.2f MB/s", float64(r.Bytes)/secs/(1<<20))
	}
	fmt.Fprintln(s.out, line)
}

// Compile-time assertion that Service implements domain.Suite.
var _ domain.Suite = (*Service)(nil)
