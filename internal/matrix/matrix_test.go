package matrix

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func equal(t *testing.T, name string, got, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: len %d want %d", name, len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("%s: got %v want %v", name, got, want)
		}
	}
}

func TestCalculateOneToNine(t *testing.T) {
	s, err := Calculate([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	equal(t, "mean columns", s.Mean.Columns, []float64{4, 5, 6})
	equal(t, "mean rows", s.Mean.Rows, []float64{2, 5, 8})
	if s.Mean.All != 5 || s.Sum.All != 45 || s.Max.All != 9 || s.Min.All != 1 {
		t.Fatalf("overall mean=%v sum=%v max=%v min=%v", s.Mean.All, s.Sum.All, s.Max.All, s.Min.All)
	}
	equal(t, "sum columns", s.Sum.Columns, []float64{12, 15, 18})
	equal(t, "sum rows", s.Sum.Rows, []float64{6, 15, 24})
	equal(t, "max columns", s.Max.Columns, []float64{7, 8, 9})
	equal(t, "min rows", s.Min.Rows, []float64{1, 4, 7})
	// population variance: columns are {1,4,7} etc, deviations +-3 -> 6
	equal(t, "variance columns", s.Variance.Columns, []float64{6, 6, 6})
	equal(t, "variance rows", s.Variance.Rows, []float64{2.0 / 3, 2.0 / 3, 2.0 / 3})
	if math.Abs(s.Variance.All-20.0/3) > 1e-12 {
		t.Fatalf("variance all=%v", s.Variance.All)
	}
	sq := math.Sqrt(6)
	equal(t, "std columns", s.StandardDeviation.Columns, []float64{sq, sq, sq})
	if math.Abs(s.StandardDeviation.All-math.Sqrt(20.0/3)) > 1e-12 {
		t.Fatalf("std all=%v", s.StandardDeviation.All)
	}
}

func TestCalculateDoesNotAliasInput(t *testing.T) {
	in := []float64{9, 8, 7, 6, 5, 4, 3, 2, 1}
	if _, err := Calculate(in); err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if in[0] != 9 || in[8] != 1 {
		t.Fatalf("input modified: %v", in)
	}
}

func TestCalculateRejectsWrongLength(t *testing.T) {
	for _, n := range []int{0, 1, 8, 10} {
		_, err := Calculate(make([]float64, n))
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("len %d: expected ErrInvalidInput, got %v", n, err)
		}
	}
}

func TestStatsJSONShape(t *testing.T) {
	s, err := Calculate([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	b, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string][]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, k := range []string{"mean", "variance", "standard deviation", "max", "min", "sum"} {
		v, ok := m[k]
		if !ok || len(v) != 3 {
			t.Fatalf("metric %q has shape %v", k, v)
		}
	}
	if m["sum"][2].(float64) != 36 {
		t.Fatalf("sum all=%v", m["sum"][2])
	}
	if len(s.Metrics()) != 6 {
		t.Fatalf("metrics=%d", len(s.Metrics()))
	}
}

func TestParseValues(t *testing.T) {
	got, err := ParseValues([]string{"1,2,3", "4", "5 6", "7,8,9.5"})
	if err != nil {
		t.Fatalf("ParseValues: %v", err)
	}
	equal(t, "parsed", got, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9.5})
	if _, err := ParseValues([]string{"1,x"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
