package pageviews

import (
	"sort"
	"strconv"
	"time"

	"github.com/KaramelBytes/dataviz-cli/internal/analysis"
)

// YearMonthly holds the mean value per calendar month of one year. A month
// without points has Counts[m] == 0 and Means[m] == 0.
type YearMonthly struct {
	Year   int         `json:"year"`
	Means  [12]float64 `json:"means"`
	Counts [12]int     `json:"counts"`
}

// Mean returns the average for month, and whether that month has points.
func (y YearMonthly) Mean(month time.Month) (float64, bool) {
	i := int(month) - 1
	return y.Means[i], y.Counts[i] > 0
}

// MonthlyAverages groups by (year, calendar month) and averages each group.
// Years are returned ascending.
func MonthlyAverages(s *Series) []YearMonthly {
	sums := map[int]*[12]float64{}
	counts := map[int]*[12]int{}
	for i, d := range s.Dates {
		y, m := d.Year(), int(d.Month())-1
		if sums[y] == nil {
			sums[y] = new([12]float64)
			counts[y] = new([12]int)
		}
		sums[y][m] += s.Values[i]
		counts[y][m]++
	}
	out := make([]YearMonthly, 0, len(sums))
	for _, y := range sortedYears(sums) {
		ym := YearMonthly{Year: y, Counts: *counts[y]}
		for m := 0; m < 12; m++ {
			if ym.Counts[m] > 0 {
				ym.Means[m] = sums[y][m] / float64(ym.Counts[m])
			}
		}
		out = append(out, ym)
	}
	return out
}

// BoxGroup is one box of a box plot.
type BoxGroup struct {
	Label  string            `json:"label"`
	Box    analysis.BoxStats `json:"box"`
	Values []float64         `json:"-"`
}

// YearBoxes returns one group per calendar year present, ascending.
func YearBoxes(s *Series) []BoxGroup {
	byYear := map[int][]float64{}
	for i, d := range s.Dates {
		byYear[d.Year()] = append(byYear[d.Year()], s.Values[i])
	}
	out := make([]BoxGroup, 0, len(byYear))
	for _, y := range sortedYears(byYear) {
		out = append(out, BoxGroup{Label: strconv.Itoa(y), Values: byYear[y], Box: analysis.Box(byYear[y])})
	}
	return out
}

// MonthBoxes returns twelve groups, Jan through Dec, pooling all years.
// Months without points have Box.N == 0.
func MonthBoxes(s *Series) []BoxGroup {
	var byMonth [12][]float64
	for i, d := range s.Dates {
		m := int(d.Month()) - 1
		byMonth[m] = append(byMonth[m], s.Values[i])
	}
	out := make([]BoxGroup, 12)
	for m := range out {
		out[m] = BoxGroup{Label: MonthAbbrev(time.Month(m + 1)), Values: byMonth[m], Box: analysis.Box(byMonth[m])}
	}
	return out
}

// MonthAbbrev returns the three-letter English month name.
func MonthAbbrev(m time.Month) string { return m.String()[:3] }

func sortedYears[V any](m map[int]V) []int {
	years := make([]int, 0, len(m))
	for y := range m {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}
