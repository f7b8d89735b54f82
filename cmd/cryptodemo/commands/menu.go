package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"cryptodemo/internal/app"
	"cryptodemo/internal/serial"
)

func menuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Show the interactive menu (c: algorithm example, t: conformance, b: benchmark)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd)
		},
	}
}

func runMenu(cmd *cobra.Command) error {
	log := appCtx.Log.New("component", "console")
	console, err := serial.Open(appCtx.Config.Device, func(err error) {
		log.Warn("Console communication error", "err", err)
	})
	if err != nil {
		return err
	}
	defer console.Close()
	if console.Raw() {
		appCtx.Log.SetCRLF(true)
		defer appCtx.Log.SetCRLF(false)
	}

	ctx, stop := commandContext(cmd)
	defer stop()

	loop := app.NewWire(appCtx, console).Menu(console)
	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		// A blocked read cannot be interrupted; leave it to process exit.
		log.Info("Interrupted", "state", loop.State())
		return nil
	}
}

// commandContext returns a context cancelled on SIGINT or SIGTERM.
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
}
