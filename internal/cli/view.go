package cli

import (
	"github.com/spf13/cobra"

	"github.com/akoreman/Monte-Carlo-Ising-Model/internal/viewer"
)

func newViewCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Open the desktop viewer",
		Long: `Open a window that renders every chart in the background and shows the
previews as they are produced. Needs a binary built with the wails toolchain.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return viewer.Run(a.cfg, a.logger)
		},
	}
}
