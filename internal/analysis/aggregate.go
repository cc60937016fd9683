package analysis

import (
	"math"
	"sort"
	"strconv"
)

// CategoryCount pairs a categorical value with its number of occurrences.
type CategoryCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// ValueCounts tallies values and returns them by descending count.
// Equal counts are ordered by value so the result is deterministic.
func ValueCounts(values []string) []CategoryCount {
	counts := make(map[string]int)
	for _, v := range values {
		counts[v]++
	}
	out := make([]CategoryCount, 0, len(counts))
	for k, v := range counts {
		out = append(out, CategoryCount{Value: k, Count: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Value < out[j].Value
		}
		return out[i].Count > out[j].Count
	})
	return out
}

// Mode returns the most frequent value. Ties resolve to the lexicographically
// smallest value. ok is false when values is empty.
func Mode(values []string) (mode string, ok bool) {
	counts := ValueCounts(values)
	if len(counts) == 0 {
		return "", false
	}
	return counts[0].Value, true
}

// ArgMax returns the key with the largest value, skipping NaN entries.
// Ties resolve to the lexicographically smallest key.
func ArgMax(m map[string]float64) (key string, val float64, ok bool) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	val = math.NaN()
	for _, k := range keys {
		v := m[k]
		if math.IsNaN(v) {
			continue
		}
		if !ok || v > val {
			key, val, ok = k, v, true
		}
	}
	return key, val, ok
}

// Percent returns n/d*100, or NaN when d is zero.
func Percent(n, d int) float64 {
	if d == 0 {
		return math.NaN()
	}
	return float64(n) * 100.0 / float64(d)
}

// Round1 rounds the exact binary value to one decimal place, ties to even.
func Round1(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	v, _ := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 1, 64), 64)
	return v
}

// Quantile returns the q-th quantile of sorted values using linear
// interpolation between the closest ranks, position q*(n-1).
func Quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}

// QuantileOf is Quantile over an unsorted slice. vals is not modified.
func QuantileOf(vals []float64, q float64) float64 {
	return Quantile(sortedCopy(vals), q)
}

func sortedCopy(vals []float64) []float64 {
	cp := make([]float64, len(vals))
	copy(cp, vals)
	sort.Float64s(cp)
	return cp
}
