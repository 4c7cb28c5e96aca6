package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akoreman/Monte-Carlo-Ising-Model/internal/pipeline"
	"github.com/akoreman/Monte-Carlo-Ising-Model/internal/report"
)

func newReportCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write the summary report PDF",
		Long: `Chart all observables and write a PDF with a table of peak positions and
error statistics per lattice size, followed by the chart of each observable.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := *a.cfg
			cfg.LatticeSize = 0
			if cfg.ReportFile == "" {
				cfg.ReportFile = report.DefaultReportName
			}
			res, err := pipeline.Run(&cfg, a.renderer(nil), nil)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "PDF report successfully generated: %s\n", res.Report)
			return nil
		},
	}
	cmd.Flags().String("report-file", "", "Report file name inside the output directory")
	return cmd
}
