// Package config resolves isingplot settings from defaults, an optional YAML
// file, ISINGPLOT_ environment variables and command-line flags.
package config

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"

	"github.com/akoreman/Monte-Carlo-Ising-Model/internal/analysis"
	"github.com/akoreman/Monte-Carlo-Ising-Model/internal/errs"
	"github.com/akoreman/Monte-Carlo-Ising-Model/internal/report"
)

// Default values.
const (
	DefaultDataDir       = "."
	DefaultOutputDir     = "."
	DefaultChartWidthCm  = 16.0
	DefaultChartHeightCm = 12.0
	DefaultMarkerRadius  = float64(report.DefaultMarkerRadius)
)

// DefaultSizes are the lattice sizes the simulation runs by default.
var DefaultSizes = []int{8, 16, 128}

// Config holds every setting the commands need.
type Config struct {
	DataDir           string  `koanf:"data_dir"`
	OutputDir         string  `koanf:"output_dir"`
	PreviewDir        string  `koanf:"preview_dir"`
	TemperatureFile   string  `koanf:"temperature_file"`
	ObservablePattern string  `koanf:"observable_pattern"`
	LatticePattern    string  `koanf:"lattice_pattern"`
	Sizes             []int   `koanf:"sizes"`
	LatticeSize       int     `koanf:"lattice_size"`
	LatticeRow        int     `koanf:"lattice_row"`
	ChartWidthCm      float64 `koanf:"chart_width_cm"`
	ChartHeightCm     float64 `koanf:"chart_height_cm"`
	MarkerRadius      float64 `koanf:"marker_radius"` // points, radius not diameter
	ReportFile        string  `koanf:"report_file"`
	Verbose           bool    `koanf:"verbose"`

	// File is the config file that was read, if any.
	File string `koanf:"-"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"data_dir":           DefaultDataDir,
		"output_dir":         DefaultOutputDir,
		"preview_dir":        "",
		"temperature_file":   analysis.DefaultTemperatureFile,
		"observable_pattern": analysis.DefaultObservablePattern,
		"lattice_pattern":    analysis.DefaultLatticePattern,
		"sizes":              append([]int(nil), DefaultSizes...),
		"lattice_size":       0,
		"lattice_row":        0,
		"chart_width_cm":     DefaultChartWidthCm,
		"chart_height_cm":    DefaultChartHeightCm,
		"marker_radius":      DefaultMarkerRadius,
		"report_file":        report.DefaultReportName,
		"verbose":            false,
	}
}

// Validate checks the settings shared by every command.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return errs.Config("config", "data_dir is required")
	}
	if len(c.Sizes) == 0 {
		return errs.Config("config", "sizes must list at least one lattice size")
	}
	for _, s := range c.Sizes {
		if s <= 0 {
			return errs.Config("config", fmt.Sprintf("lattice size %d must be positive", s))
		}
	}
	if c.LatticeSize < 0 {
		return errs.Config("config", fmt.Sprintf("lattice_size %d must not be negative", c.LatticeSize))
	}
	if c.LatticeRow < 0 {
		return errs.Config("config", fmt.Sprintf("lattice_row %d must not be negative", c.LatticeRow))
	}
	if c.ChartWidthCm <= 0 || c.ChartHeightCm <= 0 {
		return errs.Config("config", fmt.Sprintf("chart size %gx%g cm must be positive", c.ChartWidthCm, c.ChartHeightCm))
	}
	if c.MarkerRadius <= 0 {
		return errs.Config("config", fmt.Sprintf("marker_radius %g must be positive", c.MarkerRadius))
	}
	if !strings.Contains(c.ObservablePattern, "{observable}") || !strings.Contains(c.ObservablePattern, "{size}") {
		return errs.Config("config", fmt.Sprintf("observable_pattern %q needs {observable} and {size}", c.ObservablePattern))
	}
	if !strings.Contains(c.LatticePattern, "{size}") {
		return errs.Config("config", fmt.Sprintf("lattice_pattern %q needs {size}", c.LatticePattern))
	}
	if c.TemperatureFile == "" {
		return errs.Config("config", "temperature_file is required")
	}
	return nil
}

// RequireLattice checks the settings of a lattice rendering.
func (c *Config) RequireLattice() error {
	if c.LatticeSize <= 0 {
		return errs.Config("config", "lattice_size must be set to a positive side length")
	}
	return nil
}

// Layout locates the simulation output files.
func (c *Config) Layout() analysis.Layout {
	return analysis.Layout{
		Dir:               c.DataDir,
		TemperatureFile:   c.TemperatureFile,
		ObservablePattern: c.ObservablePattern,
		LatticePattern:    c.LatticePattern,
	}
}

// NewRenderer returns a renderer writing into OutputDir with the configured
// chart dimensions. A configured preview directory is added to surface.
func (c *Config) NewRenderer(logger *zap.Logger, surface report.Surface) *report.Renderer {
	r := report.NewRenderer(c.OutputDir)
	r.Logger = logger
	r.ChartWidth = vg.Length(c.ChartWidthCm) * vg.Centimeter
	r.ChartHeight = vg.Length(c.ChartHeightCm) * vg.Centimeter
	r.MarkerRadius = vg.Length(c.MarkerRadius)

	var preview report.Surface
	if c.PreviewDir != "" {
		preview = report.PNGSurface{Dir: c.PreviewDir}
	}
	r.Surface = report.Surfaces(surface, preview)
	return r
}
