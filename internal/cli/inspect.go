package cli

import (
	"io"
	"math"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/akoreman/Monte-Carlo-Ising-Model/internal/analysis"
)

func newInspectCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [observable...]",
		Short: "Summarise observables without plotting",
		Long: `Print, per observable and lattice size, the temperature at which the
expectation value peaks together with mean and maximum errors.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			observables, err := observableArgs(args)
			if err != nil {
				return err
			}
			comps, err := analysis.LoadComparisons(a.cfg.Layout(), observables, a.cfg.Sizes)
			if err != nil {
				return err
			}
			renderSummaries(cmd.OutOrStdout(), comps)
			return nil
		},
	}
}

func formatStat(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return strconv.FormatFloat(v, 'g', 5, 64)
}

// renderSummaries prints one table row per observable and lattice size.
func renderSummaries(w io.Writer, comps []*analysis.Comparison) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault // keep unit-style labels as written
	t.AppendHeader(table.Row{"Observable", "Lattice", "Points", "Peak T", "Peak value", "Mean value", "Mean error", "Max error"})

	for _, c := range comps {
		for _, s := range analysis.Summarize(c) {
			t.AppendRow(table.Row{
				s.Observable,
				s.Label,
				s.Points,
				formatStat(s.PeakT),
				formatStat(s.PeakValue),
				formatStat(s.MeanValue),
				formatStat(s.MeanError),
				formatStat(s.MaxError),
			})
		}
		t.AppendSeparator()
	}
	t.Render()
}
