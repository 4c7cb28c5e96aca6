// Package pipeline runs the full batch: every observable chart, the optional
// lattice rendering and the summary report.
package pipeline

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/akoreman/Monte-Carlo-Ising-Model/internal/analysis"
	"github.com/akoreman/Monte-Carlo-Ising-Model/internal/config"
	"github.com/akoreman/Monte-Carlo-Ising-Model/internal/report"
)

// StatusFunc receives human readable progress messages.
type StatusFunc func(message string)

// Result lists what a run produced.
type Result struct {
	Comparisons []*analysis.Comparison
	Charts      []string // written chart paths, in observable order
	Lattice     string   // written lattice path, empty when not rendered
	Report      string   // written report path, empty when disabled
}

// Run renders every observable in analysis.Observables, then the configured
// lattice snapshot when lattice_size is set, then the summary report when
// report_file is set. It stops at the first failure; artifacts written
// before it stay on disk.
func Run(cfg *config.Config, r *report.Renderer, status StatusFunc) (*Result, error) {
	if status == nil {
		status = func(string) {}
	}
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// The report embeds the charts, so keep a PNG of each one.
	charts := report.NewMemorySurface()
	rr := *r
	rr.Surface = report.Surfaces(r.Surface, charts)

	layout := cfg.Layout()
	res := &Result{}
	for _, obs := range analysis.Observables {
		status(fmt.Sprintf("Loading %s for sizes %v", obs.Name, cfg.Sizes))
		c, err := analysis.LoadComparison(layout, obs, cfg.Sizes)
		if err != nil {
			return res, err
		}
		res.Comparisons = append(res.Comparisons, c)

		status(fmt.Sprintf("Plot: %s", obs.DisplayName))
		if err := rr.PlotObservable(c); err != nil {
			return res, err
		}
		res.Charts = append(res.Charts, rr.OutputPath(obs.DisplayName))
		logger.Debug("observable done", zap.String("observable", obs.Name), zap.Int("series", len(c.Series)))
	}

	if cfg.LatticeSize > 0 {
		status(fmt.Sprintf("Rendering lattice %s, row %d", analysis.LatticeLabel(cfg.LatticeSize), cfg.LatticeRow))
		values, err := analysis.LoadSnapshot(layout, cfg.LatticeSize, cfg.LatticeRow)
		if err != nil {
			return res, err
		}
		name := LatticeName(cfg.LatticeSize, cfg.LatticeRow)
		if err := rr.RenderLattice(values, cfg.LatticeSize, true, name); err != nil {
			return res, err
		}
		res.Lattice = rr.OutputPath(name)
	}

	if cfg.ReportFile != "" {
		path := filepath.Join(cfg.OutputDir, cfg.ReportFile)
		status(fmt.Sprintf("Generating PDF: %s", path))
		if err := report.BuildSummaryReport(path, res.Comparisons, charts.Images()); err != nil {
			return res, err
		}
		res.Report = path
		logger.Info("saved report", zap.String("path", path))
	}
	return res, nil
}

// LatticeName is the artifact name of snapshot row of a size×size run.
func LatticeName(size, row int) string {
	return fmt.Sprintf("Lattice%d_%d", size, row)
}
