package analysis

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WhiskerFactor is the multiple of the interquartile range that bounds the whiskers.
const WhiskerFactor = 1.5

// BoxStats summarizes a distribution the way a box plot draws it.
type BoxStats struct {
	N           int       `json:"n"`
	Mean        float64   `json:"mean"`
	Q1          float64   `json:"q1"`
	Median      float64   `json:"median"`
	Q3          float64   `json:"q3"`
	LowWhisker  float64   `json:"low_whisker"`
	HighWhisker float64   `json:"high_whisker"`
	Min         float64   `json:"min"`
	Max         float64   `json:"max"`
	Outliers    []float64 `json:"outliers,omitempty"`
}

// IQR is the interquartile range Q3-Q1.
func (b BoxStats) IQR() float64 { return b.Q3 - b.Q1 }

// Box computes quartiles by linear interpolation and whiskers by the 1.5xIQR rule:
// each whisker reaches the most extreme datum still inside its fence, and every
// datum beyond a whisker is an outlier. An empty input yields N == 0 and NaN stats.
func Box(vals []float64) BoxStats {
	if len(vals) == 0 {
		nan := math.NaN()
		return BoxStats{Mean: nan, Q1: nan, Median: nan, Q3: nan, LowWhisker: nan, HighWhisker: nan, Min: nan, Max: nan}
	}
	sorted := sortedCopy(vals)
	b := BoxStats{
		N:      len(sorted),
		Mean:   stat.Mean(sorted, nil),
		Q1:     Quantile(sorted, 0.25),
		Median: Quantile(sorted, 0.5),
		Q3:     Quantile(sorted, 0.75),
		Min:    floats.Min(sorted),
		Max:    floats.Max(sorted),
	}
	lowFence := b.Q1 - WhiskerFactor*b.IQR()
	highFence := b.Q3 + WhiskerFactor*b.IQR()
	b.LowWhisker = b.Q1
	b.HighWhisker = b.Q3
	for _, v := range sorted {
		if v >= lowFence {
			b.LowWhisker = math.Min(v, b.Q1)
			break
		}
	}
	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i] <= highFence {
			b.HighWhisker = math.Max(sorted[i], b.Q3)
			break
		}
	}
	for _, v := range sorted {
		if v < b.LowWhisker || v > b.HighWhisker {
			b.Outliers = append(b.Outliers, v)
		}
	}
	return b
}
