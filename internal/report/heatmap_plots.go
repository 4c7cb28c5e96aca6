package report

import (
	"image"
	"image/color"
	"strconv"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/akoreman/Monte-Carlo-Ising-Model/internal/analysis"
)

// latticeGrid adapts a square matrix to plotter.GridXYZ.
//
// Plot coordinates grow upwards while matrix rows grow downwards, so grid row
// r holds matrix row size-1-r: matrix row 0 is drawn at the top, the way an
// image raster is read.
type latticeGrid struct {
	m    *mat.Dense
	size int
}

func (g latticeGrid) Dims() (c, r int)   { return g.size, g.size }
func (g latticeGrid) Z(c, r int) float64 { return g.m.At(g.size-1-r, c) }
func (g latticeGrid) X(c int) float64    { return float64(c) }
func (g latticeGrid) Y(r int) float64    { return float64(r) }

// latticeTicks labels the axes with matrix indices. When flip is set the
// labels count down from the top, matching latticeGrid's row order.
func latticeTicks(size int, flip bool) plot.Ticker {
	step := 1
	for size/step > 8 {
		step *= 2
	}
	return plot.TickerFunc(func(min, max float64) []plot.Tick {
		var ticks []plot.Tick
		for i := 0; i < size; i += step {
			v := float64(i)
			if flip {
				v = float64(size - 1 - i)
			}
			ticks = append(ticks, plot.Tick{Value: v, Label: strconv.Itoa(i)})
		}
		return ticks
	})
}

func matrixRange(m *mat.Dense) (float64, float64) {
	return valueRange(mat.Min(m), mat.Max(m))
}

// newLatticePlot builds the heat map of a reshaped lattice.
func newLatticePlot(m *mat.Dense) *plot.Plot {
	size, _ := m.Dims()
	min, max := matrixRange(m)

	hm := plotter.NewHeatMap(latticeGrid{m: m, size: size}, Grayscale(GrayLevels))
	hm.Min = min
	hm.Max = max
	hm.NaN = color.RGBA{R: 255, A: 255} // never expected: tables hold finite values only

	p := plot.New()
	p.X.Tick.Marker = latticeTicks(size, false)
	p.Y.Tick.Marker = latticeTicks(size, true)
	p.Add(hm)
	return p
}

// LatticeImage rasterizes m pixel for pixel: cell (i, j) becomes a scale×scale
// block whose top-left pixel is (j*scale, i*scale). Row 0 is the top of the
// image. Intensities use the same black-to-white mapping as the saved chart.
func LatticeImage(m *mat.Dense, scale int) *image.Gray {
	if scale < 1 {
		scale = 1
	}
	rows, cols := m.Dims()
	min, max := matrixRange(m)

	img := image.NewGray(image.Rect(0, 0, cols*scale, rows*scale))
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			level := color.Gray{Y: grayLevel(paletteIndex(m.At(i, j), min, max, GrayLevels), GrayLevels)}
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.SetGray(j*scale+dx, i*scale+dy, level)
				}
			}
		}
	}
	return img
}

// RenderLattice reshapes a flat snapshot into a size×size lattice and renders
// it in grayscale. The raster is shown on the renderer's surface; when save
// is set the chart is also written to <OutputDir>/<outputName>.pdf.
//
// len(values) must be exactly size*size; anything else is an ErrShape.
func (r *Renderer) RenderLattice(values []float64, size int, save bool, outputName string) error {
	m, err := analysis.Reshape(values, size)
	if err != nil {
		return err
	}
	name := outputName
	if name == "" {
		name = "lattice" + strconv.Itoa(size)
	}
	r.logger().Debug("rendering lattice", zap.Int("size", size), zap.Bool("save", save), zap.String("name", name))

	if save {
		if _, err := r.savePlot(newLatticePlot(m), r.LatticeSide, r.LatticeSide, name); err != nil {
			return err
		}
	}
	return r.display(name, LatticeImage(m, r.PixelScale))
}
