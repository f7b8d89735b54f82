package app

import (
	"sync"
	"time"

	"cryptodemo/internal/crypto"
	"cryptodemo/internal/domain"
	"cryptodemo/internal/logging"
	"cryptodemo/internal/params"
	"cryptodemo/internal/store"
)

// App owns the process-wide library context and the shared services.
type App struct {
	Config   Config
	Params   params.Params
	Duration time.Duration
	Library  *crypto.Library
	Log      *logging.Logger
	Reports  domain.ReportStore // nil when reports are disabled

	closeOnce sync.Once
	closeErr  error
}

// New validates cfg and initialises the library. The caller must Close the
// App to release it.
func New(cfg Config, opts ...crypto.Option) (*App, error) {
	p, err := cfg.Params()
	if err != nil {
		return nil, err
	}
	d, err := cfg.Duration()
	if err != nil {
		return nil, err
	}

	log, err := logging.New("cryptodemo", logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		return nil, err
	}

	lib := crypto.New(opts...)
	if err := lib.Init(); err != nil {
		return nil, err
	}

	a := &App{
		Config:   cfg,
		Params:   p,
		Duration: d,
		Library:  lib,
		Log:      log,
	}
	if cfg.ReportDir != "" {
		a.Reports = store.NewReportFileStore(cfg.ReportDir)
	}
	a.Log.Debug("App ready", "params", p.String(), "reports", cfg.ReportDir)
	return a, nil
}

// Close releases the library. Calling it more than once is safe.
func (a *App) Close() error {
	a.closeOnce.Do(func() {
		if n := a.Library.OpenHandles(); n != 0 {
			a.Log.Warn("Library handles still open at shutdown", "count", n)
		}
		a.closeErr = a.Library.Cleanup()
	})
	return a.closeErr
}
