package parser

import (
	"gonum.org/v1/gonum/mat"
)

// Delimiter separates fields in every measurement file the simulation writes.
const Delimiter = ','

// Table is a loaded measurement file: a non-empty, rectangular matrix of finite
// float64 values with row and column order exactly as in the file.
// A Table is read-only; every accessor returns a fresh copy.
type Table struct {
	Path string // source file, empty for tables read from a stream
	m    *mat.Dense
}

// newTable builds a Table from already validated rows.
func newTable(path string, rows [][]float64) *Table {
	nr, nc := len(rows), len(rows[0])
	data := make([]float64, 0, nr*nc)
	for _, row := range rows {
		data = append(data, row...)
	}
	return &Table{Path: path, m: mat.NewDense(nr, nc, data)}
}

// Dims returns the number of rows and columns.
func (t *Table) Dims() (rows, cols int) {
	return t.m.Dims()
}

// At returns the value at row i, column j.
func (t *Table) At(i, j int) float64 {
	return t.m.At(i, j)
}

// Row returns a copy of row i.
func (t *Table) Row(i int) []float64 {
	return mat.Row(nil, i, t.m)
}

// Col returns a copy of column j.
func (t *Table) Col(j int) []float64 {
	return mat.Col(nil, j, t.m)
}

// Rows returns a copy of the whole table as nested slices.
func (t *Table) Rows() [][]float64 {
	nr, _ := t.m.Dims()
	out := make([][]float64, nr)
	for i := range out {
		out[i] = t.Row(i)
	}
	return out
}

// Matrix returns a copy of the backing matrix.
func (t *Table) Matrix() *mat.Dense {
	return mat.DenseCopyOf(t.m)
}
