package report

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akoreman/Monte-Carlo-Ising-Model/internal/analysis"
)

func testComparison() *analysis.Comparison {
	return &analysis.Comparison{
		Observable:   analysis.SpecificHeat,
		Temperatures: []float64{1, 2, 3},
		Series: []analysis.Series{
			{Label: "8x8", Size: 8, Expectation: []float64{0.5, 0.9, 0.7}, Error: []float64{0.01, 0.02, 0.01}},
			{Label: "16x16", Size: 16, Expectation: []float64{0.4, 1.1, 0.6}, Error: []float64{0.01, 0.03, 0.01}},
		},
	}
}

func TestBuildSummaryReport(t *testing.T) {
	r, surface := newTestRenderer(t)
	c := testComparison()
	require.NoError(t, r.PlotObservable(c))

	path := filepath.Join(t.TempDir(), "reports", DefaultReportName)
	require.NoError(t, BuildSummaryReport(path, []*analysis.Comparison{c}, surface.Images()))
	readPDF(t, path)
}

func TestBuildSummaryReportWithoutCharts(t *testing.T) {
	dir := t.TempDir()
	empty := &analysis.Comparison{Observable: analysis.Susceptibility, Temperatures: []float64{1}}

	path := filepath.Join(dir, "summary.pdf")
	require.NoError(t, BuildSummaryReport(path, []*analysis.Comparison{testComparison(), empty}, nil))
	readPDF(t, path)

	none := filepath.Join(dir, "none.pdf")
	require.NoError(t, BuildSummaryReport(none, nil, nil))
	readPDF(t, none)
}

func TestBuildSummaryReportDeterministic(t *testing.T) {
	dir := t.TempDir()
	comps := []*analysis.Comparison{testComparison()}

	a := filepath.Join(dir, "a.pdf")
	b := filepath.Join(dir, "b.pdf")
	require.NoError(t, BuildSummaryReport(a, comps, nil))
	require.NoError(t, BuildSummaryReport(b, comps, nil))
	assert.Equal(t, readPDF(t, a), readPDF(t, b))
}

func TestSummaryRows(t *testing.T) {
	rows := summaryRows(analysis.Summarize(testComparison()))
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"8x8", "3", "2", "0.9", "0.7", "0.013333", "0.02"}, rows[0])
	assert.Equal(t, "-", formatValue(math.NaN()))
}
