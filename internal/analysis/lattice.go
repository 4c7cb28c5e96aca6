package analysis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/akoreman/Monte-Carlo-Ising-Model/internal/errs"
	"github.com/akoreman/Monte-Carlo-Ising-Model/internal/parser"
)

// latticeCells returns size*size, rejecting sizes that are not positive or
// whose cell count does not fit in an int.
func latticeCells(op, path string, size int) (int, error) {
	if size <= 0 {
		return 0, errs.New(errs.ErrShape, op, path, fmt.Sprintf("lattice size must be positive, got %d", size), nil)
	}
	if size > math.MaxInt/size {
		return 0, errs.New(errs.ErrShape, op, path, fmt.Sprintf("lattice size %d is too large", size), nil)
	}
	return size * size, nil
}

// Reshape lays a flat snapshot out as a row-major size×size matrix.
// values[i*size+j] lands at (i, j). The input is copied.
func Reshape(values []float64, size int) (*mat.Dense, error) {
	n, err := latticeCells("reshape", "", size)
	if err != nil {
		return nil, err
	}
	if len(values) != n {
		return nil, errs.Shape("reshape", fmt.Sprintf(
			"got %d values, expected %d for a %dx%d lattice", len(values), n, size, size))
	}
	data := make([]float64, len(values))
	copy(data, values)
	return mat.NewDense(size, size, data), nil
}

// SnapshotFromTable returns row `row` of a lattices table, which holds one
// flattened lattice per temperature.
func SnapshotFromTable(t *parser.Table, row, size int) ([]float64, error) {
	n, err := latticeCells("snapshot", t.Path, size)
	if err != nil {
		return nil, err
	}
	rows, cols := t.Dims()
	if row < 0 || row >= rows {
		return nil, errs.New(errs.ErrShape, "snapshot", t.Path,
			fmt.Sprintf("row %d out of range, table has %d rows", row, rows), nil)
	}
	if cols != n {
		return nil, errs.New(errs.ErrShape, "snapshot", t.Path,
			fmt.Sprintf("rows have %d values, expected %d for a %dx%d lattice", cols, n, size, size), nil)
	}
	return t.Row(row), nil
}
