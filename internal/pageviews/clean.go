package pageviews

import (
	"fmt"
	"math"

	"github.com/KaramelBytes/dataviz-cli/internal/analysis"
)

// Default quantile band kept by Clean.
const (
	DefaultLowerQuantile = 0.025
	DefaultUpperQuantile = 0.975
)

// Bounds records the band used by Clean.
type Bounds struct {
	LowerQuantile float64 `json:"lower_quantile"`
	UpperQuantile float64 `json:"upper_quantile"`
	Lower         float64 `json:"lower"`
	Upper         float64 `json:"upper"`
	Kept          int     `json:"kept"`
	Dropped       int     `json:"dropped"`
}

// Clean keeps the points whose value lies in [q(lower), q(upper)], both
// quantiles computed by linear interpolation over the full input series.
// The input is not modified.
func Clean(s *Series, lower, upper float64) (*Series, Bounds, error) {
	if s.Len() == 0 {
		return nil, Bounds{}, ErrEmptySeries
	}
	if lower < 0 || upper > 1 || lower >= upper {
		return nil, Bounds{}, fmt.Errorf("%w: [%v, %v]", ErrInvalidBand, lower, upper)
	}
	for i, v := range s.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, Bounds{}, fmt.Errorf("%w at %s", ErrNonFinite, s.Dates[i].Format("2006-01-02"))
		}
	}
	b := Bounds{
		LowerQuantile: lower,
		UpperQuantile: upper,
		Lower:         analysis.QuantileOf(s.Values, lower),
		Upper:         analysis.QuantileOf(s.Values, upper),
	}
	out := &Series{Name: s.Name}
	for i, v := range s.Values {
		if v >= b.Lower && v <= b.Upper {
			out.Dates = append(out.Dates, s.Dates[i])
			out.Values = append(out.Values, v)
		}
	}
	b.Kept = out.Len()
	b.Dropped = s.Len() - out.Len()
	return out, b, nil
}
