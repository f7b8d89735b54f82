package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"cryptodemo/internal/domain/types"
	"cryptodemo/internal/params"
	"cryptodemo/internal/services/benchmark"
)

// Suite names accepted in Config.Disable.
const (
	SuiteDemo        = "demo"
	SuiteConformance = "conformance"
	SuiteBenchmark   = "benchmark"
)

// Config holds runtime options for building the app.
type Config struct {
	Curve    string `json:"curve"`     // secp256r1 or secp224r1
	KDF      string `json:"kdf"`       // x963 or hkdf
	Cipher   string `json:"cipher"`    // aes-128-gcm or chacha20-poly1305
	DataSize int    `json:"data_size"` // plaintext bytes per pipeline run

	Device        string `json:"device"`         // console device; empty means stdin/stdout
	BenchDuration string `json:"bench_duration"` // per-primitive time, e.g. "500ms"

	LogLevel  string `json:"log_level"`
	LogFile   string `json:"log_file"`
	ReportDir string `json:"report_dir"` // empty disables reports

	Disable []string `json:"disable"` // suites shown as NOT_COMPILED_IN
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Curve:         types.CurveSECP256R1.String(),
		KDF:           string(types.KDFX963),
		Cipher:        string(types.CipherAES128GCM),
		DataSize:      params.DefaultDataSize,
		BenchDuration: benchmark.DefaultDuration.String(),
		LogLevel:      "info",
	}
}

// LoadConfig reads path over the defaults. An empty path yields the
// defaults; a named file that does not exist is an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Params validates the algorithm selection into a parameter set.
func (c Config) Params() (params.Params, error) {
	curve, ok := types.ParseCurve(c.Curve)
	if !ok {
		return params.Params{}, types.NewError(types.ErrECCCurveOID, "unknown curve %q", c.Curve)
	}
	return params.New(params.Options{
		Curve:    curve,
		KDF:      types.KDFType(c.KDF),
		Cipher:   types.CipherSuite(c.Cipher),
		DataSize: c.DataSize,
	})
}

// Duration parses BenchDuration. Empty means the benchmark default.
func (c Config) Duration() (time.Duration, error) {
	if c.BenchDuration == "" {
		return benchmark.DefaultDuration, nil
	}
	d, err := time.ParseDuration(c.BenchDuration)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid bench_duration %q", c.BenchDuration)
	}
	return d, nil
}

// Enabled reports whether the named suite may run.
func (c Config) Enabled(suite string) bool {
	for _, d := range c.Disable {
		if d == suite {
			return false
		}
	}
	return true
}
