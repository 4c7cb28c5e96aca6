package analysis

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akoreman/Monte-Carlo-Ising-Model/internal/errs"
	"github.com/akoreman/Monte-Carlo-Ising-Model/internal/parser"
)

// setupDataDir writes a miniature simulation output directory.
func setupDataDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

const observableRows = "0.5,0.01\n0.6,0.02\n0.7,0.01\n"

func TestLayoutPaths(t *testing.T) {
	l := DefaultLayout("data")

	assert.Equal(t, filepath.Join("data", "temperatureLabels.csv"), l.TemperaturePath())
	assert.Equal(t, filepath.Join("data", "SpecificHeat8.csv"), l.ObservablePath(SpecificHeat, 8))
	assert.Equal(t, filepath.Join("data", "Susceptibility128.csv"), l.ObservablePath(Susceptibility, 128))
	assert.Equal(t, filepath.Join("data", "Lattices32.csv"), l.LatticePath(32))

	l.ObservablePattern = "{observable}PerSpin{size}.csv"
	assert.Equal(t, filepath.Join("data", "MagnetisationPerSpin16.csv"), l.ObservablePath(Magnetisation, 16))
}

func TestLoadComparison(t *testing.T) {
	dir := setupDataDir(t, map[string]string{
		"temperatureLabels.csv": "1.0\n2.0\n3.0\n",
		"SpecificHeat8.csv":     observableRows,
		"SpecificHeat16.csv":    observableRows,
	})

	c, err := LoadComparison(DefaultLayout(dir), SpecificHeat, []int{8, 16})
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2, 3}, c.Temperatures)
	require.Len(t, c.Series, 2)
	assert.Equal(t, []string{"8x8", "16x16"}, c.Labels())
	assert.Equal(t, 16, c.Series[1].Size)
	assert.Equal(t, []float64{0.5, 0.6, 0.7}, c.Series[0].Expectation)
	assert.Equal(t, []float64{0.01, 0.02, 0.01}, c.Series[0].Error)
}

func TestLoadComparisonErrors(t *testing.T) {
	tests := []struct {
		name     string
		files    map[string]string
		wantKind error
		wantMsg  string
	}{
		{
			name:     "missing temperatures",
			files:    map[string]string{"SpecificHeat8.csv": observableRows},
			wantKind: errs.ErrNotFound,
			wantMsg:  "temperatureLabels.csv",
		},
		{
			name:     "missing observable",
			files:    map[string]string{"temperatureLabels.csv": "1\n2\n3\n"},
			wantKind: errs.ErrNotFound,
			wantMsg:  "SpecificHeat8.csv",
		},
		{
			name: "temperature file with two columns",
			files: map[string]string{
				"temperatureLabels.csv": "1,2\n",
				"SpecificHeat8.csv":     observableRows,
			},
			wantKind: errs.ErrShape,
			wantMsg:  "expected 1 column",
		},
		{
			name: "observable with one column",
			files: map[string]string{
				"temperatureLabels.csv": "1\n2\n3\n",
				"SpecificHeat8.csv":     "0.5\n0.6\n0.7\n",
			},
			wantKind: errs.ErrShape,
			wantMsg:  "expected 2 columns",
		},
		{
			name: "series shorter than temperatures",
			files: map[string]string{
				"temperatureLabels.csv": "1\n2\n3\n4\n",
				"SpecificHeat8.csv":     observableRows,
			},
			wantKind: errs.ErrShape,
			wantMsg:  "expected 4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := setupDataDir(t, tt.files)

			_, err := LoadComparison(DefaultLayout(dir), SpecificHeat, []int{8})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantKind)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoadComparisonsSharesTemperatures(t *testing.T) {
	files := map[string]string{"temperatureLabels.csv": "1\n2\n3\n"}
	for _, obs := range Observables {
		files[obs.Name+"8.csv"] = observableRows
	}
	dir := setupDataDir(t, files)

	comps, err := LoadComparisons(DefaultLayout(dir), Observables, []int{8})
	require.NoError(t, err)
	require.Len(t, comps, 3)
	for i, c := range comps {
		assert.Equal(t, Observables[i], c.Observable)
		assert.Equal(t, comps[0].Temperatures, c.Temperatures)
	}
}

func TestLoadSnapshot(t *testing.T) {
	dir := setupDataDir(t, map[string]string{
		"Lattices2.csv": "1,1,1,1\n-1,1,1,-1\n",
	})

	got, err := LoadSnapshot(DefaultLayout(dir), 2, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, 1, 1, -1}, got)
}

func TestSeriesFromTable(t *testing.T) {
	table, err := parser.ReadTable(strings.NewReader(observableRows), "SpecificHeat8.csv")
	require.NoError(t, err)

	s, err := SeriesFromTable(table, "8x8", 8)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, "8x8", s.Label)
}

func TestCheckSeriesReportsFirstMismatch(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	ok := Series{Label: "a", Expectation: make([]float64, 5), Error: make([]float64, 5)}
	short := Series{Label: "c", Expectation: make([]float64, 4), Error: make([]float64, 4)}
	badErr := Series{Label: "d", Expectation: make([]float64, 5), Error: make([]float64, 3)}

	assert.NoError(t, CheckSeries(x, []Series{ok, ok}))
	assert.NoError(t, CheckSeries(x, nil))

	err := CheckSeries(x, []Series{ok, ok, short})
	require.ErrorIs(t, err, errs.ErrShape)
	assert.Contains(t, err.Error(), "series 2 (c)")

	err = CheckSeries(x, []Series{badErr})
	require.ErrorIs(t, err, errs.ErrShape)
	assert.Contains(t, err.Error(), "3 error values")
}

func TestSummarize(t *testing.T) {
	c := &Comparison{
		Observable:   SpecificHeat,
		Temperatures: []float64{1.0, 2.0, 2.5, 3.0},
		Series: []Series{
			{Label: "8x8", Expectation: []float64{0.2, 0.9, 0.4, 0.1}, Error: []float64{0.01, 0.03, 0.02, 0.02}},
			{Label: "16x16", Expectation: []float64{0.1, 0.5, 1.2, 0.3}, Error: []float64{0.01, 0.01, 0.05, 0.01}},
			{Label: "empty"},
		},
	}

	got := Summarize(c)
	require.Len(t, got, 3)

	assert.Equal(t, "SpecificHeatPerSpin", got[0].Observable)
	assert.Equal(t, 4, got[0].Points)
	assert.Equal(t, 2.0, got[0].PeakT)
	assert.Equal(t, 0.9, got[0].PeakValue)
	assert.InDelta(t, 0.4, got[0].MeanValue, 1e-12)
	assert.InDelta(t, 0.02, got[0].MeanError, 1e-12)
	assert.Equal(t, 0.03, got[0].MaxError)

	assert.Equal(t, 2.5, got[1].PeakT)
	assert.Equal(t, 1.2, got[1].PeakValue)

	assert.Equal(t, 0, got[2].Points)
	assert.True(t, math.IsNaN(got[2].PeakT))
	assert.True(t, math.IsNaN(got[2].MeanError))
}

func TestLookupObservable(t *testing.T) {
	o, ok := LookupObservable("Magnetisation")
	assert.True(t, ok)
	assert.Equal(t, "MagnetisationPerSpin", o.DisplayName)

	o, ok = LookupObservable("SusceptibilityPerSpin")
	assert.True(t, ok)
	assert.Equal(t, Susceptibility, o)

	_, ok = LookupObservable("Energy")
	assert.False(t, ok)
}
