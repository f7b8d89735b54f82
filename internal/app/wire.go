package app

import (
	"io"

	"cryptodemo/internal/domain"
	"cryptodemo/internal/services/benchmark"
	"cryptodemo/internal/services/conformance"
	"cryptodemo/internal/services/menu"
	"cryptodemo/internal/services/pipeline"
)

// Wire bundles the suites built for one output stream.
type Wire struct {
	Pipeline    *pipeline.Service
	Conformance *conformance.Service
	Benchmark   *benchmark.Service

	app *App
}

// NewWire constructs the suites of a, all printing to out.
func NewWire(a *App, out io.Writer) *Wire {
	return &Wire{
		Pipeline:    pipeline.New(a.Library, a.Params, out, a.Log.New("suite", "pipeline"), a.Reports),
		Conformance: conformance.New(a.Library, a.Params, out, a.Log.New("suite", "conformance"), a.Reports),
		Benchmark:   benchmark.New(a.Library, a.Params, a.Duration, out, a.Log.New("suite", "benchmark"), a.Reports),
		app:         a,
	}
}

// Menu builds the interactive loop on term. Suites disabled in the config
// are left out so the loop reports them as not compiled in.
func (w *Wire) Menu(term domain.Terminal) *menu.Loop {
	cfg := w.app.Config
	var demo, conf, bench domain.Suite
	if cfg.Enabled(SuiteDemo) {
		demo = w.Pipeline
	}
	if cfg.Enabled(SuiteConformance) {
		conf = w.Conformance
	}
	if cfg.Enabled(SuiteBenchmark) {
		bench = w.Benchmark
	}
	return menu.New(term, menu.DefaultEntries(demo, conf, bench), w.app.Library.ErrorString, w.app.Log.New("component", "menu"))
}
