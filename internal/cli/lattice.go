package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akoreman/Monte-Carlo-Ising-Model/internal/analysis"
	"github.com/akoreman/Monte-Carlo-Ising-Model/internal/pipeline"
)

func newLatticeCommand(a *app) *cobra.Command {
	var (
		save bool
		name string
	)
	cmd := &cobra.Command{
		Use:   "lattice",
		Short: "Render one lattice snapshot in grayscale",
		Long: `Render row --row of Lattices<size>.csv as a size x size grayscale image.
Row 0 of the lattice is drawn at the top. Spin values map from black (lowest)
to white (highest).`,
		Example: `  isingplot lattice --size 128 --row 40
  isingplot lattice --size 8 --save=false --preview-dir previews`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg
			if err := cfg.RequireLattice(); err != nil {
				return err
			}
			values, err := analysis.LoadSnapshot(cfg.Layout(), cfg.LatticeSize, cfg.LatticeRow)
			if err != nil {
				return err
			}
			if name == "" {
				name = pipeline.LatticeName(cfg.LatticeSize, cfg.LatticeRow)
			}

			r := a.renderer(nil)
			if err := r.RenderLattice(values, cfg.LatticeSize, save, name); err != nil {
				return err
			}
			if save {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", r.OutputPath(name))
			}
			return nil
		},
	}
	cmd.Flags().Int("size", 0, "Lattice side length")
	cmd.Flags().Int("row", 0, "Snapshot row in the lattice file")
	cmd.Flags().BoolVar(&save, "save", true, "Write the rendering as a PDF")
	cmd.Flags().StringVar(&name, "name", "", "Output name without extension (default Lattice<size>_<row>)")
	return cmd
}
