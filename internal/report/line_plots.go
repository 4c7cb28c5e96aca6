package report

import (
	"fmt"
	"image/color"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/akoreman/Monte-Carlo-Ising-Model/internal/analysis"
	"github.com/akoreman/Monte-Carlo-Ising-Model/internal/errs"
)

// SeriesColors and SeriesGlyphs style comparison series by position: series i
// always gets SeriesColors[i%len] and SeriesGlyphs[i%len].
var (
	SeriesColors = []color.Color{
		color.RGBA{B: 255, A: 255},              // blue
		color.RGBA{G: 128, A: 255},              // green
		color.RGBA{R: 255, A: 255},              // red
		color.RGBA{G: 191, B: 191, A: 255},      // cyan
		color.RGBA{R: 191, B: 191, A: 255},      // magenta
		color.RGBA{R: 191, G: 191, A: 255},      // olive
		color.RGBA{R: 64, G: 64, B: 64, A: 255}, // dark gray
	}
	SeriesGlyphs = []draw.GlyphDrawer{
		draw.CircleGlyph{},
		draw.SquareGlyph{},
		draw.TriangleGlyph{},
		draw.RingGlyph{},
		draw.BoxGlyph{},
		draw.PyramidGlyph{},
		draw.CrossGlyph{},
	}
)

// errorPoints pairs points with symmetric vertical errors for plotter.NewYErrorBars.
type errorPoints struct {
	plotter.XYs
	plotter.YErrors
}

// seriesLayer is one drawn series of a comparison chart.
type seriesLayer struct {
	label  string
	points *plotter.Scatter
	bars   *plotter.YErrorBars
}

// comparisonChart is a built but not yet written comparison plot.
type comparisonChart struct {
	plot   *plot.Plot
	layers []seriesLayer
}

// buildComparison validates its input and lays out one point-with-error-bar
// layer per series, in order, with a legend entry per layer in the same order.
func (r *Renderer) buildComparison(x []float64, series []analysis.Series, labels []string, xLabel, yLabel string) (*comparisonChart, error) {
	if len(labels) != len(series) {
		return nil, errs.Config("plot", fmt.Sprintf("%d labels for %d series", len(labels), len(series)))
	}
	if err := analysis.CheckSeries(x, series); err != nil {
		return nil, err
	}

	p := plot.New()
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Legend.Top = true
	p.Legend.Left = false
	if len(x) > 0 {
		p.X.Min = floats.Min(x)
		p.X.Max = floats.Max(x)
	}

	radius := r.MarkerRadius
	if radius <= 0 {
		radius = DefaultMarkerRadius
	}

	chart := &comparisonChart{plot: p, layers: make([]seriesLayer, 0, len(series))}
	for i, s := range series {
		data := errorPoints{
			XYs:     make(plotter.XYs, len(x)),
			YErrors: make(plotter.YErrors, len(x)),
		}
		for k := range x {
			data.XYs[k].X = x[k]
			data.XYs[k].Y = s.Expectation[k]
			data.YErrors[k].Low = s.Error[k]
			data.YErrors[k].High = s.Error[k]
		}

		col := SeriesColors[i%len(SeriesColors)]

		bars, err := plotter.NewYErrorBars(data)
		if err != nil {
			return nil, errs.New(errs.ErrParse, "plot", "", fmt.Sprintf("series %d (%s)", i, labels[i]), err)
		}
		bars.LineStyle.Color = col
		bars.LineStyle.Width = vg.Points(0.5)
		bars.CapWidth = 2 * radius

		points, err := plotter.NewScatter(data)
		if err != nil {
			return nil, errs.New(errs.ErrParse, "plot", "", fmt.Sprintf("series %d (%s)", i, labels[i]), err)
		}
		points.GlyphStyle.Color = col
		points.GlyphStyle.Shape = SeriesGlyphs[i%len(SeriesGlyphs)]
		points.GlyphStyle.Radius = radius

		p.Add(bars, points)
		p.Legend.Add(labels[i], points)
		chart.layers = append(chart.layers, seriesLayer{label: labels[i], points: points, bars: bars})
	}
	return chart, nil
}

// PlotComparison draws one error-bar series per entry of series against the
// shared x values, labels the axes, adds a legend in series order and writes
// the chart to <OutputDir>/<outputName>.pdf. An empty series list yields a
// chart with axes and labels only.
func (r *Renderer) PlotComparison(x []float64, series []analysis.Series, labels []string, xLabel, yLabel, outputName string) error {
	chart, err := r.buildComparison(x, series, labels, xLabel, yLabel)
	if err != nil {
		return fmt.Errorf("%s: %w", outputName, err)
	}
	r.logger().Debug("plotting comparison",
		zap.String("name", outputName),
		zap.Int("series", len(chart.layers)),
		zap.Int("points", len(x)))

	if _, err := r.savePlot(chart.plot, r.ChartWidth, r.ChartHeight, outputName); err != nil {
		return err
	}
	return r.display(outputName, rasterize(chart.plot, r.ChartWidth, r.ChartHeight).Image())
}

// PlotObservable charts c across its lattice sizes under the observable's
// conventional name, e.g. SpecificHeatPerSpin.pdf.
func (r *Renderer) PlotObservable(c *analysis.Comparison) error {
	return r.PlotComparison(c.Temperatures, c.Series, c.Labels(),
		analysis.TemperatureLabel, c.Observable.YLabel, c.Observable.DisplayName)
}
