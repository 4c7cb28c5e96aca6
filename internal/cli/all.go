package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akoreman/Monte-Carlo-Ising-Model/internal/pipeline"
)

func newAllCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Render every chart and the summary report",
		Long: `Chart all observables, render the lattice snapshot when --size is set and
write the summary report. Stops at the first failing artifact.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			_, err := pipeline.Run(a.cfg, a.renderer(nil), func(msg string) {
				_, _ = fmt.Fprintln(out, msg)
			})
			return err
		},
	}
	cmd.Flags().Int("size", 0, "Also render this lattice size")
	cmd.Flags().Int("row", 0, "Snapshot row in the lattice file")
	cmd.Flags().String("report-file", "", "Summary report file name inside the output directory")
	return cmd
}
