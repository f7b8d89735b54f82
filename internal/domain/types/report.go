package types

import "time"

// ReportKind names the suite that produced a report.
type ReportKind string

const (
	ReportPipeline    ReportKind = "pipeline"
	ReportConformance ReportKind = "conformance"
	ReportBenchmark   ReportKind = "benchmark"
)

// StageResult is the outcome of one pipeline stage, conformance check or
// benchmark entry.
type StageResult struct {
	Name     string        `json:"name"`
	Code     ErrorCode     `json:"code"`
	Detail   string        `json:"detail,omitempty"`
	Duration time.Duration `json:"duration"`
	Ops      int           `json:"ops,omitempty"`
	Bytes    int64         `json:"bytes,omitempty"`
	Skipped  bool          `json:"skipped,omitempty"`
}

// Report is the persisted summary of one suite run.
type Report struct {
	Kind        ReportKind    `json:"kind"`
	Curve       string        `json:"curve"`
	Started     time.Time     `json:"started"`
	Code        ErrorCode     `json:"code"`
	Description string        `json:"description,omitempty"`
	Stages      []StageResult `json:"stages"`
}

// NewReport summarises a finished run. The report code is the status of err.
func NewReport(kind ReportKind, curve CurveID, started time.Time, stages []StageResult, err error) Report {
	code := CodeOf(err)
	r := Report{
		Kind:    kind,
		Curve:   curve.String(),
		Started: started.UTC(),
		Code:    code,
		Stages:  stages,
	}
	if err != nil {
		r.Description = err.Error()
	}
	return r
}

// Failed returns the stages that ended with a non-zero code.
func (r Report) Failed() []StageResult {
	var out []StageResult
	for _, s := range r.Stages {
		if s.Code != CodeOK {
			out = append(out, s)
		}
	}
	return out
}
