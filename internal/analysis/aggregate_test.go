package analysis

import (
	"math"
	"testing"
)

func TestValueCountsOrdersByCountThenValue(t *testing.T) {
	got := ValueCounts([]string{"b", "a", "c", "b", "c", "d"})
	want := []CategoryCount{{"b", 2}, {"c", 2}, {"a", 1}, {"d", 1}}
	if len(got) != len(want) {
		t.Fatalf("len=%d want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("at %d got %v want %v", i, got[i], want[i])
		}
	}
}

func TestModeTieBreaksLexicographically(t *testing.T) {
	m, ok := Mode([]string{"Prof-specialty", "Exec-managerial", "Exec-managerial", "Prof-specialty"})
	if !ok || m != "Exec-managerial" {
		t.Fatalf("mode=%q ok=%v", m, ok)
	}
	if _, ok := Mode(nil); ok {
		t.Fatalf("expected no mode for empty input")
	}
}

func TestArgMaxSkipsNaNAndBreaksTies(t *testing.T) {
	k, v, ok := ArgMax(map[string]float64{"Iran": 40, "Taiwan": 40, "China": math.NaN(), "Cuba": 10})
	if !ok || k != "Iran" || v != 40 {
		t.Fatalf("got %q %v %v", k, v, ok)
	}
	if _, _, ok := ArgMax(map[string]float64{"x": math.NaN()}); ok {
		t.Fatalf("expected no argmax when all NaN")
	}
}

func TestPercentAndRound(t *testing.T) {
	if p := Percent(1, 3); math.Abs(p-33.3333333) > 1e-6 {
		t.Fatalf("percent=%v", p)
	}
	if !math.IsNaN(Percent(1, 0)) {
		t.Fatalf("expected NaN for zero denominator")
	}
	if r := Round1(41.46); r != 41.5 {
		t.Fatalf("round=%v", r)
	}
	if r := Round1(-0.26); r != -0.3 {
		t.Fatalf("round=%v", r)
	}
	for in, want := range map[float64]float64{39.25: 39.2, 0.15: 0.1, 0.75: 0.8, 12.25: 12.2} {
		if r := Round1(in); r != want {
			t.Fatalf("Round1(%v)=%v want %v", in, r, want)
		}
	}
	if !math.IsNaN(Round1(math.NaN())) {
		t.Fatalf("round should keep NaN")
	}
}

func TestQuantileLinearInterpolation(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}
	cases := map[float64]float64{0: 1, 0.25: 1.75, 0.5: 2.5, 0.975: 3.925, 1: 4}
	for q, want := range cases {
		if got := Quantile(sorted, q); math.Abs(got-want) > 1e-12 {
			t.Fatalf("q=%v got %v want %v", q, got, want)
		}
	}
	if !math.IsNaN(Quantile(nil, 0.5)) {
		t.Fatalf("expected NaN for empty input")
	}
	vals := []float64{4, 1, 3, 2}
	if got := QuantileOf(vals, 0.5); got != 2.5 {
		t.Fatalf("QuantileOf=%v", got)
	}
	if vals[0] != 4 {
		t.Fatalf("QuantileOf modified its input: %v", vals)
	}
}
