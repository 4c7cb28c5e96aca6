package analysis

import (
	"fmt"

	"github.com/akoreman/Monte-Carlo-Ising-Model/internal/errs"
	"github.com/akoreman/Monte-Carlo-Ising-Model/internal/parser"
)

// TemperaturesFromTable extracts the temperature grid from a one-column table.
func TemperaturesFromTable(t *parser.Table) ([]float64, error) {
	if _, cols := t.Dims(); cols != 1 {
		return nil, errs.New(errs.ErrShape, "temperatures", t.Path,
			fmt.Sprintf("expected 1 column, got %d", cols), nil)
	}
	return t.Col(0), nil
}

// SeriesFromTable splits an (expectation, error) table into a Series.
func SeriesFromTable(t *parser.Table, label string, size int) (Series, error) {
	if _, cols := t.Dims(); cols != 2 {
		return Series{}, errs.New(errs.ErrShape, "series", t.Path,
			fmt.Sprintf("expected 2 columns (expectation, error), got %d", cols), nil)
	}
	return Series{
		Label:       label,
		Size:        size,
		Expectation: t.Col(0),
		Error:       t.Col(1),
	}, nil
}

// CheckSeries verifies that every series has an expectation and an error
// column as long as x. It reports the first offending series by index.
func CheckSeries(x []float64, series []Series) error {
	for i, s := range series {
		if len(s.Expectation) != len(x) || len(s.Error) != len(x) {
			return errs.Shape("series", fmt.Sprintf(
				"series %d (%s) has %d expectation and %d error values, expected %d",
				i, s.Label, len(s.Expectation), len(s.Error), len(x)))
		}
	}
	return nil
}
