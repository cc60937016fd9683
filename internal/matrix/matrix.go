// Package matrix computes descriptive statistics over a 3x3 grid along each
// axis and across all nine values.
package matrix

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Size is the edge length of the grid.
const Size = 3

// ErrInvalidInput is returned when the input does not hold exactly nine numbers.
var ErrInvalidInput = errors.New("list must contain nine numbers")

// Axes holds one metric reduced along columns (axis 0), rows (axis 1) and the
// whole grid.
type Axes struct {
	Columns []float64
	Rows    []float64
	All     float64
}

// MarshalJSON encodes Axes as [columns, rows, all].
func (a Axes) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{a.Columns, a.Rows, a.All})
}

// Stats holds every metric for a grid. Variance and StandardDeviation use
// population semantics (divisor N).
type Stats struct {
	Mean              Axes
	Variance          Axes
	StandardDeviation Axes
	Max               Axes
	Min               Axes
	Sum               Axes
}

// MarshalJSON emits {"mean": [...], "variance": [...], "standard deviation": [...], ...}.
func (s *Stats) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]Axes{
		"mean":               s.Mean,
		"variance":           s.Variance,
		"standard deviation": s.StandardDeviation,
		"max":                s.Max,
		"min":                s.Min,
		"sum":                s.Sum,
	})
}

// Metrics lists metric names in report order with their accessors.
func (s *Stats) Metrics() []NamedAxes {
	return []NamedAxes{
		{"mean", s.Mean},
		{"variance", s.Variance},
		{"standard deviation", s.StandardDeviation},
		{"max", s.Max},
		{"min", s.Min},
		{"sum", s.Sum},
	}
}

// NamedAxes pairs a metric name with its values.
type NamedAxes struct {
	Name string
	Axes Axes
}

type reducer func([]float64) float64

var (
	mean     reducer = func(x []float64) float64 { return stat.Mean(x, nil) }
	variance reducer = func(x []float64) float64 { return stat.PopVariance(x, nil) }
	stddev   reducer = func(x []float64) float64 { return math.Sqrt(stat.PopVariance(x, nil)) }
	maximum  reducer = floats.Max
	minimum  reducer = floats.Min
	sum      reducer = floats.Sum
)

// Calculate reshapes values row-major into a 3x3 grid and reduces it.
func Calculate(values []float64) (*Stats, error) {
	if len(values) != Size*Size {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidInput, len(values))
	}
	data := make([]float64, len(values))
	copy(data, values)
	m := mat.NewDense(Size, Size, data)

	return &Stats{
		Mean:              reduce(m, mean),
		Variance:          reduce(m, variance),
		StandardDeviation: reduce(m, stddev),
		Max:               reduce(m, maximum),
		Min:               reduce(m, minimum),
		Sum:               reduce(m, sum),
	}, nil
}

func reduce(m *mat.Dense, f reducer) Axes {
	r, c := m.Dims()
	a := Axes{Columns: make([]float64, c), Rows: make([]float64, r)}
	for j := 0; j < c; j++ {
		a.Columns[j] = f(mat.Col(nil, j, m))
	}
	for i := 0; i < r; i++ {
		a.Rows[i] = f(mat.Row(nil, i, m))
	}
	a.All = f(m.RawMatrix().Data)
	return a
}

// ParseValues converts arguments into numbers. Each argument may itself hold
// several comma separated values.
func ParseValues(args []string) ([]float64, error) {
	var out []float64
	for _, arg := range args {
		for _, field := range strings.FieldsFunc(arg, func(r rune) bool { return r == ',' || r == ' ' }) {
			f, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, field)
			}
			out = append(out, f)
		}
	}
	return out, nil
}
