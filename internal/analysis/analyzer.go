package analysis

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summarize describes each series of c: where its expectation peaks and how
// large its errors are. The peak of the specific heat or susceptibility is the
// finite-size estimate of the critical temperature.
func Summarize(c *Comparison) []Summary {
	out := make([]Summary, 0, len(c.Series))
	for _, s := range c.Series {
		sum := Summary{
			Observable: c.Observable.DisplayName,
			Label:      s.Label,
			Points:     s.Len(),
			PeakT:      math.NaN(),
			PeakValue:  math.NaN(),
			MeanValue:  math.NaN(),
			MeanError:  math.NaN(),
			MaxError:   math.NaN(),
		}
		if s.Len() > 0 {
			peak := floats.MaxIdx(s.Expectation)
			sum.PeakValue = s.Expectation[peak]
			if peak < len(c.Temperatures) {
				sum.PeakT = c.Temperatures[peak]
			}
			sum.MeanValue = stat.Mean(s.Expectation, nil)
		}
		if len(s.Error) > 0 {
			sum.MeanError = stat.Mean(s.Error, nil)
			sum.MaxError = floats.Max(s.Error)
		}
		out = append(out, sum)
	}
	return out
}
