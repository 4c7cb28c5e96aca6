package analysis

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/akoreman/Monte-Carlo-Ising-Model/internal/errs"
	"github.com/akoreman/Monte-Carlo-Ising-Model/internal/parser"
)

func TestReshapeRowMajor(t *testing.T) {
	m, err := Reshape([]float64{0, 1, 2, 3}, 2)
	require.NoError(t, err)

	want := mat.NewDense(2, 2, []float64{0, 1, 2, 3})
	assert.True(t, mat.Equal(want, m))
	assert.Equal(t, 1.0, m.At(0, 1))
	assert.Equal(t, 2.0, m.At(1, 0))
}

func TestReshapeCopiesInput(t *testing.T) {
	values := []float64{1, -1, -1, 1}
	m, err := Reshape(values, 2)
	require.NoError(t, err)

	values[0] = 7
	assert.Equal(t, 1.0, m.At(0, 0))
}

func TestReshapeLengthBoundaries(t *testing.T) {
	for _, size := range []int{1, 2, 3, 8, 16} {
		n := size * size
		for _, length := range []int{n - 1, n, n + 1} {
			_, err := Reshape(make([]float64, length), size)
			if length == n {
				assert.NoError(t, err, "size %d length %d", size, length)
				continue
			}
			assert.ErrorIs(t, err, errs.ErrShape, "size %d length %d", size, length)
		}
	}
}

func TestReshapeRejectsNonPositiveSize(t *testing.T) {
	for _, size := range []int{0, -2} {
		_, err := Reshape(nil, size)
		assert.ErrorIs(t, err, errs.ErrShape)
	}
}

func TestReshapeRejectsOverflowingSize(t *testing.T) {
	maxSide := int(math.Sqrt(float64(math.MaxInt)))
	for _, size := range []int{maxSide + 1, math.MaxInt / 2, math.MaxInt} {
		var err error
		require.NotPanics(t, func() { _, err = Reshape(nil, size) }, "size %d", size)
		assert.ErrorIs(t, err, errs.ErrShape, "size %d", size)
		assert.Contains(t, err.Error(), "too large")
	}

	// the largest side that still fits is only rejected on length
	_, err := Reshape(nil, maxSide)
	assert.ErrorIs(t, err, errs.ErrShape)
	assert.Contains(t, err.Error(), "expected "+strconv.Itoa(maxSide*maxSide))
}

func TestSnapshotFromTable(t *testing.T) {
	table, err := parser.ReadTable(strings.NewReader("1,1,1,1\n1,-1,-1,1\n"), "Lattices2.csv")
	require.NoError(t, err)

	got, err := SnapshotFromTable(table, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, -1, -1, 1}, got)

	_, err = SnapshotFromTable(table, 2, 2)
	assert.ErrorIs(t, err, errs.ErrShape)
	assert.Contains(t, err.Error(), "out of range")

	_, err = SnapshotFromTable(table, -1, 2)
	assert.ErrorIs(t, err, errs.ErrShape)

	_, err = SnapshotFromTable(table, 0, 3)
	assert.ErrorIs(t, err, errs.ErrShape)
	assert.Contains(t, err.Error(), "expected 9")

	_, err = SnapshotFromTable(table, 0, math.MaxInt/2)
	assert.ErrorIs(t, err, errs.ErrShape)
	assert.Contains(t, err.Error(), "too large")

	_, err = SnapshotFromTable(table, 0, 0)
	assert.ErrorIs(t, err, errs.ErrShape)
}
