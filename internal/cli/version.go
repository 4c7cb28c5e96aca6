package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "isingplot v%s (%s)\n", Version, GitCommit)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Monte Carlo Ising model plotting built with Go and gonum/plot")
		},
	}
}
