package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/akoreman/Monte-Carlo-Ising-Model/internal/analysis"
	"github.com/akoreman/Monte-Carlo-Ising-Model/internal/errs"
)

// observableArgs resolves observable names, defaulting to all of them.
func observableArgs(args []string) ([]analysis.Observable, error) {
	if len(args) == 0 {
		return analysis.Observables, nil
	}
	out := make([]analysis.Observable, 0, len(args))
	for _, name := range args {
		obs, ok := analysis.LookupObservable(name)
		if !ok {
			known := make([]string, 0, len(analysis.Observables))
			for _, o := range analysis.Observables {
				known = append(known, o.Name)
			}
			return nil, errs.Config("compare", fmt.Sprintf("unknown observable %q, expected one of %s", name, strings.Join(known, ", ")))
		}
		out = append(out, obs)
	}
	return out, nil
}

func newCompareCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare [observable...]",
		Short: "Chart observables across lattice sizes",
		Long: `Chart each observable against temperature with one error-bar series per
lattice size. Observables are SpecificHeat, Magnetisation and Susceptibility;
all three are charted when none is given.`,
		Example: `  isingplot compare
  isingplot compare SpecificHeat --sizes 8,16,128`,
		RunE: func(cmd *cobra.Command, args []string) error {
			observables, err := observableArgs(args)
			if err != nil {
				return err
			}
			r := a.renderer(nil)
			for _, obs := range observables {
				c, err := analysis.LoadComparison(a.cfg.Layout(), obs, a.cfg.Sizes)
				if err != nil {
					return err
				}
				if err := r.PlotObservable(c); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", r.OutputPath(obs.DisplayName))
			}
			return nil
		},
	}
}
