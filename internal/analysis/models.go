package analysis

import "fmt"

// Observable is a statistical quantity the simulation reports per temperature
// and lattice size.
type Observable struct {
	Name        string // file stem, e.g. "SpecificHeat" in SpecificHeat8.csv
	DisplayName string // chart name, also the output file stem
	YLabel      string
}

// TemperatureLabel is the x-axis label shared by every comparison chart.
const TemperatureLabel = "T [dimensionless units]"

// The observables the simulation writes, in the order the charts are produced.
var (
	SpecificHeat = Observable{
		Name:        "SpecificHeat",
		DisplayName: "SpecificHeatPerSpin",
		YLabel:      "c [dimensionless units]",
	}
	Magnetisation = Observable{
		Name:        "Magnetisation",
		DisplayName: "MagnetisationPerSpin",
		YLabel:      "<m> [dimensionless units]",
	}
	Susceptibility = Observable{
		Name:        "Susceptibility",
		DisplayName: "SusceptibilityPerSpin",
		YLabel:      "chi [dimensionless units]",
	}

	Observables = []Observable{SpecificHeat, Magnetisation, Susceptibility}
)

// LookupObservable finds an observable by Name or DisplayName.
func LookupObservable(name string) (Observable, bool) {
	for _, o := range Observables {
		if o.Name == name || o.DisplayName == name {
			return o, true
		}
	}
	return Observable{}, false
}

// Series is one lattice size's expectation values and their errors,
// indexed 1:1 against the temperature column of its Comparison.
type Series struct {
	Label       string
	Size        int
	Expectation []float64
	Error       []float64
}

// Len returns the number of points in the series.
func (s Series) Len() int {
	return len(s.Expectation)
}

// Comparison holds one observable measured at several lattice sizes over a
// shared temperature grid.
type Comparison struct {
	Observable   Observable
	Temperatures []float64
	Series       []Series
}

// Labels returns the legend labels in series order.
func (c *Comparison) Labels() []string {
	labels := make([]string, len(c.Series))
	for i, s := range c.Series {
		labels[i] = s.Label
	}
	return labels
}

// LatticeLabel is the legend label for a lattice of the given linear size.
func LatticeLabel(size int) string {
	return fmt.Sprintf("%dx%d", size, size)
}

// Summary describes one series of a Comparison.
type Summary struct {
	Observable string
	Label      string
	Points     int
	PeakT      float64 // temperature at the largest expectation value
	PeakValue  float64
	MeanValue  float64
	MeanError  float64
	MaxError   float64
}
