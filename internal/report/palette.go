package report

import (
	"image/color"
	"math"
)

// GrayLevels is the number of intensity steps used for lattice renderings.
const GrayLevels = 256

// Grayscale is a monochrome palette with n levels running from black (lowest
// value) to white (highest value).
type Grayscale int

// Colors implements palette.Palette.
func (g Grayscale) Colors() []color.Color {
	n := int(g)
	if n < 2 {
		n = 2
	}
	out := make([]color.Color, n)
	for i := range out {
		out[i] = color.Gray{Y: grayLevel(i, n)}
	}
	return out
}

func grayLevel(i, n int) uint8 {
	return uint8(math.Round(float64(i) * 255 / float64(n-1)))
}

// valueRange returns the dynamic range used to map values onto the palette.
// A constant lattice gets a unit range centred on its value so it renders as
// mid gray instead of falling off the palette.
func valueRange(min, max float64) (float64, float64) {
	if min == max {
		return min - 0.5, max + 0.5
	}
	return min, max
}

// paletteIndex mirrors the scaling gonum's HeatMap applies, so the raster
// preview and the saved vector chart agree cell for cell.
func paletteIndex(v, min, max float64, n int) int {
	ps := float64(n-1) / (max - min)
	idx := int((v-min)*ps + 0.5)
	if idx < 0 {
		return 0
	}
	if idx > n-1 {
		return n - 1
	}
	return idx
}
