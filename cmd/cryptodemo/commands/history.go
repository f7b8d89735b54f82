package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"cryptodemo/internal/domain/types"
)

func historyCmd() *cobra.Command {
	var (
		kind  string
		limit int
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved reports, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if appCtx.Reports == nil {
				return fmt.Errorf("reports are disabled; set report_dir or --report-dir")
			}
			reports, err := appCtx.Reports.ListReports(types.ReportKind(kind))
			if err != nil {
				return err
			}
			if len(reports) == 0 {
				fmt.Println("No reports.")
				return nil
			}
			for i, r := range reports {
				if limit > 0 && i == limit {
					break
				}
				fmt.Printf("%s  %-11s %-9s code %4d  %d stages",
					r.Started.Local().Format("2006-01-02 15:04:05"), r.Kind, r.Curve, r.Code.Int(), len(r.Stages))
				if failed := r.Failed(); len(failed) > 0 {
					fmt.Printf("  first failure: %s", failed[0].Name)
				}
				fmt.Println()
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "only list pipeline, conformance or benchmark reports")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show at most n reports")
	return cmd
}
