package report

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/akoreman/Monte-Carlo-Ising-Model/internal/analysis"
	"github.com/akoreman/Monte-Carlo-Ising-Model/internal/errs"
)

// DefaultReportName is the file name of the summary report.
const DefaultReportName = "IsingSummary.pdf"

const (
	inchToMm               = 25.4
	pdfPageWidthLandscape  = 11 * inchToMm // Letter landscape
	pdfPageHeightLandscape = 8.5 * inchToMm
	pdfMargin              = 0.5 * inchToMm
	pdfContentWidth        = pdfPageWidthLandscape - (2 * pdfMargin)
)

// pdfStyler holds reusable styling and flow state for the report.
type pdfStyler struct {
	pdf         *gofpdf.Fpdf
	styles      map[string]func()
	lineHeight  float64
	currentY    float64
	pageBottom  float64
	contentTopY float64
}

func newPDFStyler(pdf *gofpdf.Fpdf) *pdfStyler {
	s := &pdfStyler{
		pdf:         pdf,
		styles:      make(map[string]func()),
		lineHeight:  6,
		pageBottom:  pdfPageHeightLandscape - pdfMargin,
		contentTopY: pdfMargin,
	}
	s.currentY = s.contentTopY
	s.defineStyles()
	return s
}

func (s *pdfStyler) defineStyles() {
	s.styles["h1"] = func() {
		s.pdf.SetFont("Arial", "B", 16)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["h2"] = func() {
		s.pdf.SetFont("Arial", "B", 14)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["normal"] = func() {
		s.pdf.SetFont("Arial", "", 10)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["caption"] = func() {
		s.pdf.SetFont("Arial", "I", 9)
		s.pdf.SetTextColor(80, 80, 80)
	}
	s.styles["tableHeader"] = func() {
		s.pdf.SetFont("Arial", "B", 9)
		s.pdf.SetFillColor(200, 200, 200)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["tableCell"] = func() {
		s.pdf.SetFont("Arial", "", 9)
		s.pdf.SetTextColor(50, 50, 50)
	}
}

func (s *pdfStyler) applyStyle(name string) {
	if fn, ok := s.styles[name]; ok {
		fn()
		return
	}
	s.styles["normal"]()
}

func (s *pdfStyler) newPage() {
	s.pdf.AddPage()
	s.currentY = s.contentTopY
}

func (s *pdfStyler) checkAddPage(neededHeight float64) {
	if s.currentY+neededHeight > s.pageBottom {
		s.newPage()
	}
}

func (s *pdfStyler) writeParagraph(text, style, align string) {
	s.applyStyle(style)
	lines := len(s.pdf.SplitLines([]byte(text), pdfContentWidth))
	if lines == 0 {
		lines = 1
	}
	s.checkAddPage(float64(lines) * s.lineHeight)

	s.pdf.SetXY(pdfMargin, s.currentY)
	s.pdf.MultiCell(pdfContentWidth, s.lineHeight, text, "", align, false)
	s.currentY = s.pdf.GetY() + 1
}

func (s *pdfStyler) addSpacer(height float64) {
	s.currentY += height
	if s.currentY > s.pageBottom {
		s.newPage()
	}
}

// addTable draws a bordered table whose column widths are fractions of the
// content width. The header is repeated after a page break.
func (s *pdfStyler) addTable(headers []string, widthsRel []float64, rows [][]string) {
	widths := make([]float64, len(widthsRel))
	for i, rel := range widthsRel {
		widths[i] = rel * pdfContentWidth
	}
	header := func() {
		s.applyStyle("tableHeader")
		x := pdfMargin
		for i, h := range headers {
			s.pdf.SetXY(x, s.currentY)
			s.pdf.CellFormat(widths[i], s.lineHeight, h, "1", 0, "C", true, 0, "")
			x += widths[i]
		}
		s.currentY += s.lineHeight
	}

	s.checkAddPage(2 * s.lineHeight)
	header()
	for _, row := range rows {
		if s.currentY+s.lineHeight > s.pageBottom {
			s.newPage()
			header()
		}
		s.applyStyle("tableCell")
		x := pdfMargin
		for i, cell := range row {
			s.pdf.SetXY(x, s.currentY)
			s.pdf.CellFormat(widths[i], s.lineHeight, cell, "1", 0, "C", false, 0, "")
			x += widths[i]
		}
		s.currentY += s.lineHeight
	}
}

// addImage embeds a PNG scaled to width, keeping its aspect ratio.
func (s *pdfStyler) addImage(imageBytes []byte, imageName string, width float64, caption string) {
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	info := s.pdf.RegisterImageOptionsReader(imageName, opts, bytes.NewReader(imageBytes))
	if info == nil || !s.pdf.Ok() {
		return
	}
	height := width * info.Height() / info.Width()

	captionHeight := 0.0
	if caption != "" {
		captionHeight = s.lineHeight + 1
	}
	s.checkAddPage(height + captionHeight)

	s.pdf.ImageOptions(imageName, pdfMargin+(pdfContentWidth-width)/2, s.currentY, width, height, false, opts, 0, "")
	s.currentY += height

	if caption != "" {
		s.addSpacer(1)
		s.writeParagraph(caption, "caption", "C")
	}
	s.addSpacer(2)
}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return strconv.FormatFloat(v, 'g', 5, 64)
}

// summaryRows formats one table row per series.
func summaryRows(summaries []analysis.Summary) [][]string {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Label,
			strconv.Itoa(s.Points),
			formatValue(s.PeakT),
			formatValue(s.PeakValue),
			formatValue(s.MeanValue),
			formatValue(s.MeanError),
			formatValue(s.MaxError),
		})
	}
	return rows
}

// BuildSummaryReport writes a PDF summarising every comparison: a table of
// descriptive statistics per lattice size followed by the chart, when charts
// holds a PNG under the observable's display name. The document carries fixed
// dates so identical input produces identical bytes.
func BuildSummaryReport(path string, comps []*analysis.Comparison, charts map[string][]byte) error {
	pdf := gofpdf.New("L", "mm", "Letter", "")
	pdf.SetCreationDate(pdfEpoch)
	pdf.SetModificationDate(pdfEpoch)
	pdf.SetCatalogSort(true)
	pdf.SetTitle("Monte Carlo Ising Model Summary", false)
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, pdfMargin)
	pdf.AddPage()

	styler := newPDFStyler(pdf)
	styler.writeParagraph("Monte Carlo Ising Model Summary", "h1", "C")
	styler.addSpacer(5)

	if len(comps) == 0 {
		styler.writeParagraph("No observables to display.", "normal", "L")
		return outputReport(pdf, path)
	}

	names := make([]string, 0, len(comps))
	for _, c := range comps {
		names = append(names, c.Observable.Name)
	}
	styler.writeParagraph(fmt.Sprintf("Observables: %s", strings.Join(names, ", ")), "normal", "L")
	styler.writeParagraph(fmt.Sprintf("Temperature points: %d", len(comps[0].Temperatures)), "normal", "L")

	headers := []string{"Lattice", "Points", "Peak T", "Peak value", "Mean value", "Mean error", "Max error"}
	widths := []float64{0.16, 0.1, 0.14, 0.15, 0.15, 0.15, 0.15}
	chartWidth := pdfContentWidth * 0.6

	for i, c := range comps {
		if i > 0 {
			styler.newPage()
		}
		styler.writeParagraph(c.Observable.DisplayName, "h2", "L")
		if len(c.Series) == 0 {
			styler.writeParagraph("No series.", "normal", "L")
		} else {
			styler.addTable(headers, widths, summaryRows(analysis.Summarize(c)))
		}
		styler.addSpacer(5)

		if img, ok := charts[c.Observable.DisplayName]; ok && len(img) > 0 {
			styler.addImage(img, c.Observable.DisplayName, chartWidth,
				fmt.Sprintf("%s against %s", c.Observable.YLabel, analysis.TemperatureLabel))
		} else {
			styler.writeParagraph(fmt.Sprintf("Chart for %s not available.", c.Observable.DisplayName), "normal", "L")
		}
	}
	return outputReport(pdf, path)
}

func outputReport(pdf *gofpdf.Fpdf, path string) error {
	if err := pdf.Error(); err != nil {
		return errs.IO("report", path, err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errs.IO("report", path, err)
		}
	}
	if err := pdf.OutputFileAndClose(path); err != nil {
		return errs.IO("report", path, err)
	}
	return nil
}
