package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"cryptodemo/internal/app"
	"cryptodemo/internal/domain/types"
)

var benchDuration time.Duration

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the algorithm pipeline once",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := commandContext(cmd)
			defer stop()
			return report("Algorithm Example", app.NewWire(appCtx, os.Stdout).Pipeline.Run(ctx))
		},
	}
}

func testCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Run the conformance suite",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := commandContext(cmd)
			defer stop()
			return report("Conformance Test", app.NewWire(appCtx, os.Stdout).Conformance.Run(ctx))
		},
	}
}

func benchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run the benchmark suite",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := commandContext(cmd)
			defer stop()
			return report("Benchmark Test", app.NewWire(appCtx, os.Stdout).Benchmark.Run(ctx))
		},
	}
	cmd.Flags().DurationVar(&benchDuration, "duration", 0, "time per primitive (default from config)")
	return cmd
}

// report prints the return code line the menu would print and passes err on.
func report(title string, err error) error {
	code := types.CodeOf(err)
	text := ""
	if code != types.CodeOK {
		text = appCtx.Library.ErrorString(code)
	}
	fmt.Printf("%s: Return code %s (%d)\n", title, text, code)
	return err
}
