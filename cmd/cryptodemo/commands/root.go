package commands

import (
	"os"

	"github.com/spf13/cobra"

	"cryptodemo/internal/app"
)

// configEnv names the environment variable consulted when --config is unset.
const configEnv = "CRYPTODEMO_CONFIG"

var (
	configPath string
	overrides  app.Config
	appCtx     *app.App
)

// Execute runs the CLI. The app is closed even when a subcommand fails.
func Execute() (err error) {
	defer func() {
		if cerr := closeApp(); err == nil {
			err = cerr
		}
	}()
	return newRoot().Execute()
}

func newRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "cryptodemo",
		Short:         "Menu-driven ECC, KDF and AEAD demonstration harness",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if path == "" {
				path = os.Getenv(configEnv)
			}
			cfg, err := app.LoadConfig(path)
			if err != nil {
				return err
			}
			applyOverrides(cmd, &cfg)

			a, err := app.New(cfg)
			if err != nil {
				return err
			}
			appCtx = a
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "config file (default $"+configEnv+")")
	pf.StringVar(&overrides.Curve, "curve", "", "curve: secp256r1 or secp224r1")
	pf.StringVar(&overrides.KDF, "kdf", "", "key derivation: x963 or hkdf")
	pf.StringVar(&overrides.Cipher, "cipher", "", "cipher: aes-128-gcm or chacha20-poly1305")
	pf.IntVar(&overrides.DataSize, "data-size", 0, "plaintext bytes per pipeline run")
	pf.StringVar(&overrides.Device, "device", "", "console device (default stdin/stdout)")
	pf.StringVar(&overrides.LogLevel, "log-level", "", "log level: debug, info, warn, error, crit")
	pf.StringVar(&overrides.LogFile, "log-file", "", "rotating log file")
	pf.StringVar(&overrides.ReportDir, "report-dir", "", "directory for JSON run reports")

	root.AddCommand(menuCmd(), runCmd(), testCmd(), benchCmd(), keysCmd(), historyCmd())
	return root
}

// applyOverrides copies every flag the user set over cfg.
func applyOverrides(cmd *cobra.Command, cfg *app.Config) {
	set := func(name string, fn func()) {
		if cmd.Flags().Changed(name) {
			fn()
		}
	}
	set("curve", func() { cfg.Curve = overrides.Curve })
	set("kdf", func() { cfg.KDF = overrides.KDF })
	set("cipher", func() { cfg.Cipher = overrides.Cipher })
	set("data-size", func() { cfg.DataSize = overrides.DataSize })
	set("device", func() { cfg.Device = overrides.Device })
	set("log-level", func() { cfg.LogLevel = overrides.LogLevel })
	set("log-file", func() { cfg.LogFile = overrides.LogFile })
	set("report-dir", func() { cfg.ReportDir = overrides.ReportDir })
	set("duration", func() { cfg.BenchDuration = benchDuration.String() })
}

func closeApp() error {
	if appCtx == nil {
		return nil
	}
	err := appCtx.Close()
	appCtx = nil
	return err
}
