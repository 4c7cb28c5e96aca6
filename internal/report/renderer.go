package report

import (
	"image"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"codeberg.org/go-pdf/fpdf"
	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/akoreman/Monte-Carlo-Ising-Model/internal/errs"
)

// Default artifact dimensions. DefaultMarkerRadius is a radius, so markers
// are 1.5pt across.
const (
	DefaultChartWidth   = 16 * vg.Centimeter
	DefaultChartHeight  = 12 * vg.Centimeter
	DefaultLatticeSide  = 12 * vg.Centimeter
	DefaultMarkerRadius = vg.Length(0.75)
	DefaultPixelScale   = 8
)

// pdfEpoch is stamped into every PDF so identical input gives identical bytes.
var pdfEpoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

var pinPDFOnce sync.Once

// pinPDFMetadata fixes the dates and catalog order gonum's PDF backend would
// otherwise take from the clock and from map iteration.
func pinPDFMetadata() {
	pinPDFOnce.Do(func() {
		fpdf.SetDefaultCreationDate(pdfEpoch)
		fpdf.SetDefaultModificationDate(pdfEpoch)
		fpdf.SetDefaultCatalogSort(true)
	})
}

// Renderer draws lattice snapshots and comparison charts. Each call builds its
// own plot and canvas and finishes writing before it returns, so consecutive
// charts never share marks.
type Renderer struct {
	OutputDir string
	Surface   Surface
	Logger    *zap.Logger

	ChartWidth   vg.Length
	ChartHeight  vg.Length
	LatticeSide  vg.Length
	MarkerRadius vg.Length
	PixelScale   int // block size of one lattice cell in the display raster
}

// NewRenderer returns a Renderer writing into outputDir with default sizes,
// no display surface and a no-op logger.
func NewRenderer(outputDir string) *Renderer {
	return &Renderer{
		OutputDir:    outputDir,
		Surface:      NopSurface{},
		Logger:       zap.NewNop(),
		ChartWidth:   DefaultChartWidth,
		ChartHeight:  DefaultChartHeight,
		LatticeSide:  DefaultLatticeSide,
		MarkerRadius: DefaultMarkerRadius,
		PixelScale:   DefaultPixelScale,
	}
}

func (r *Renderer) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

// OutputPath is where an artifact called name is persisted.
func (r *Renderer) OutputPath(name string) string {
	return filepath.Join(r.OutputDir, name+".pdf")
}

// savePlot writes p as <OutputDir>/<name>.pdf.
func (r *Renderer) savePlot(p *plot.Plot, w, h vg.Length, name string) (string, error) {
	pinPDFMetadata()
	path := r.OutputPath(name)

	wt, err := p.WriterTo(w, h, "pdf")
	if err != nil {
		return path, errs.IO("save", path, err)
	}
	if r.OutputDir != "" {
		if err := os.MkdirAll(r.OutputDir, 0o755); err != nil {
			return path, errs.IO("save", path, err)
		}
	}
	if err := writeFile(path, wt); err != nil {
		return path, errs.IO("save", path, err)
	}
	r.logger().Info("saved artifact", zap.String("path", path))
	return path, nil
}

// writeFile streams wt into path and reports close errors.
func writeFile(path string, wt io.WriterTo) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	_, err = wt.WriteTo(file)
	return err
}

// rasterize draws p onto an in-memory image for display.
func rasterize(p *plot.Plot, w, h vg.Length) *vgimg.Canvas {
	c := vgimg.New(w, h)
	p.Draw(draw.New(c))
	return c
}

// display hands img to the surface, if any.
func (r *Renderer) display(name string, img image.Image) error {
	if r.Surface == nil {
		return nil
	}
	if err := r.Surface.Show(name, img); err != nil {
		return errs.New(errs.ErrIO, "display", name, "", err)
	}
	return nil
}
