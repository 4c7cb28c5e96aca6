package analysis

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/akoreman/Monte-Carlo-Ising-Model/internal/parser"
)

// Default file naming used by the simulation output.
const (
	DefaultTemperatureFile   = "temperatureLabels.csv"
	DefaultObservablePattern = "{observable}{size}.csv"
	DefaultLatticePattern    = "Lattices{size}.csv"
)

// Layout locates the simulation's CSV files on disk. Patterns may use the
// placeholders {observable} and {size}.
type Layout struct {
	Dir               string
	TemperatureFile   string
	ObservablePattern string
	LatticePattern    string
}

// DefaultLayout returns the simulation's conventional file names rooted at dir.
func DefaultLayout(dir string) Layout {
	return Layout{
		Dir:               dir,
		TemperatureFile:   DefaultTemperatureFile,
		ObservablePattern: DefaultObservablePattern,
		LatticePattern:    DefaultLatticePattern,
	}
}

// TemperaturePath is the path of the shared temperature-label file.
func (l Layout) TemperaturePath() string {
	return filepath.Join(l.Dir, l.TemperatureFile)
}

// ObservablePath is the path of the file holding obs at lattice size.
func (l Layout) ObservablePath(obs Observable, size int) string {
	return filepath.Join(l.Dir, expand(l.ObservablePattern, obs.Name, size))
}

// LatticePath is the path of the snapshot file for lattice size.
func (l Layout) LatticePath(size int) string {
	return filepath.Join(l.Dir, expand(l.LatticePattern, "", size))
}

func expand(pattern, observable string, size int) string {
	return strings.NewReplacer(
		"{observable}", observable,
		"{size}", strconv.Itoa(size),
	).Replace(pattern)
}

// LoadTemperatures loads the shared temperature grid.
func LoadTemperatures(l Layout) ([]float64, error) {
	table, err := parser.LoadTable(l.TemperaturePath())
	if err != nil {
		return nil, err
	}
	return TemperaturesFromTable(table)
}

// LoadComparison loads the temperature grid and one (expectation, error) file
// per lattice size for obs. Series keep the order of sizes.
func LoadComparison(l Layout, obs Observable, sizes []int) (*Comparison, error) {
	temps, err := LoadTemperatures(l)
	if err != nil {
		return nil, err
	}
	return loadComparison(l, obs, sizes, temps)
}

// LoadComparisons loads every observable against one shared temperature grid.
func LoadComparisons(l Layout, observables []Observable, sizes []int) ([]*Comparison, error) {
	temps, err := LoadTemperatures(l)
	if err != nil {
		return nil, err
	}
	comps := make([]*Comparison, 0, len(observables))
	for _, obs := range observables {
		c, err := loadComparison(l, obs, sizes, temps)
		if err != nil {
			return nil, err
		}
		comps = append(comps, c)
	}
	return comps, nil
}

func loadComparison(l Layout, obs Observable, sizes []int, temps []float64) (*Comparison, error) {
	c := &Comparison{
		Observable:   obs,
		Temperatures: temps,
		Series:       make([]Series, 0, len(sizes)),
	}
	for _, size := range sizes {
		table, err := parser.LoadTable(l.ObservablePath(obs, size))
		if err != nil {
			return nil, err
		}
		s, err := SeriesFromTable(table, LatticeLabel(size), size)
		if err != nil {
			return nil, err
		}
		c.Series = append(c.Series, s)
	}
	if err := CheckSeries(c.Temperatures, c.Series); err != nil {
		return nil, fmt.Errorf("%s: %w", obs.Name, err)
	}
	return c, nil
}

// LoadSnapshot loads row `row` of the lattice snapshot file for size.
func LoadSnapshot(l Layout, size, row int) ([]float64, error) {
	table, err := parser.LoadTable(l.LatticePath(size))
	if err != nil {
		return nil, err
	}
	return SnapshotFromTable(table, row, size)
}
