// Package cli provides the isingplot command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/akoreman/Monte-Carlo-Ising-Model/internal/config"
	"github.com/akoreman/Monte-Carlo-Ising-Model/internal/report"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

// app carries what PersistentPreRunE resolved to the subcommands.
type app struct {
	cfgFile string
	cfg     *config.Config
	logger  *zap.Logger
}

func (a *app) renderer(surface report.Surface) *report.Renderer {
	return a.cfg.NewRenderer(a.logger, surface)
}

// skipsConfig reports whether cmd runs without loading configuration.
func skipsConfig(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "help", "completion", "__complete", "version":
		return true
	}
	return false
}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "isingplot",
		Short: "Plot Monte Carlo Ising model results",
		Long: `isingplot turns the CSV output of the Monte Carlo Ising simulation into
charts: grayscale renderings of lattice snapshots and error-bar comparisons
of specific heat, magnetisation and susceptibility across lattice sizes.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if skipsConfig(cmd) {
				return nil
			}

			cfg, err := config.Load(a.cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			a.cfg = cfg

			zc := zap.NewProductionConfig()
			if cfg.Verbose {
				zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := zc.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			if cfg.File != "" {
				a.logger.Debug("using config file", zap.String("path", cfg.File))
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = a.logger.Sync()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: ./isingplot.yaml)")
	flags.String("data-dir", config.DefaultDataDir, "Directory holding the simulation CSV output")
	flags.String("output-dir", config.DefaultOutputDir, "Directory charts are written to")
	flags.String("preview-dir", "", "Also write a PNG preview of every chart here")
	flags.IntSlice("sizes", config.DefaultSizes, "Lattice sizes to compare")
	flags.BoolP("verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(newVersionCommand())
	rootCmd.AddCommand(newLatticeCommand(a))
	rootCmd.AddCommand(newCompareCommand(a))
	rootCmd.AddCommand(newAllCommand(a))
	rootCmd.AddCommand(newInspectCommand(a))
	rootCmd.AddCommand(newReportCommand(a))
	rootCmd.AddCommand(newViewCommand(a))

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
