package export

import (
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/KaramelBytes/dataviz-cli/internal/analysis"
	"github.com/KaramelBytes/dataviz-cli/internal/demographic"
	"github.com/KaramelBytes/dataviz-cli/internal/matrix"
	"github.com/KaramelBytes/dataviz-cli/internal/pageviews"
	"github.com/xuri/excelize/v2"
)

func readSheet(t *testing.T, path, sheet string) [][]string {
	t.Helper()
	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows(sheet)
	if err != nil {
		t.Fatalf("rows %s: %v", sheet, err)
	}
	return rows
}

func TestWriteDemographic(t *testing.T) {
	r := &demographic.Report{
		Rows:                  3,
		RaceCount:             []analysis.CategoryCount{{Value: "White", Count: 2}, {Value: "Black", Count: 1}},
		AverageAgeMen:         40.5,
		PercentageBachelors:   math.NaN(),
		HighestEarningCountry: "India",
		Warnings:              []string{"no rows with education Bachelors"},
	}
	path := filepath.Join(t.TempDir(), "out", "demo.xlsx")
	if err := WriteDemographic(path, r); err != nil {
		t.Fatalf("write: %v", err)
	}
	summary := readSheet(t, path, "Summary")
	if summary[0][0] != "metric" || summary[2][0] != "average_age_men" || summary[2][1] != "40.5" {
		t.Fatalf("unexpected summary rows: %v", summary[:3])
	}
	// NaN cells are left blank
	if len(summary[3]) > 1 && summary[3][1] != "" {
		t.Fatalf("expected blank NaN cell, got %q", summary[3][1])
	}
	last := summary[len(summary)-1]
	if last[0] != "warning" {
		t.Fatalf("expected trailing warning row, got %v", last)
	}
	race := readSheet(t, path, "Race")
	if len(race) != 3 || race[1][0] != "White" || race[1][1] != "2" {
		t.Fatalf("unexpected race rows: %v", race)
	}
}

func TestWriteMatrix(t *testing.T) {
	s, err := matrix.Calculate([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8})
	if err != nil {
		t.Fatalf("calc: %v", err)
	}
	path := filepath.Join(t.TempDir(), "matrix.xlsx")
	if err := WriteMatrix(path, s); err != nil {
		t.Fatalf("write: %v", err)
	}
	rows := readSheet(t, path, "Statistics")
	if len(rows) != 1+6*3 {
		t.Fatalf("expected 19 rows, got %d", len(rows))
	}
	if rows[1][0] != "mean" || rows[1][1] != "columns" || rows[1][2] != "3" {
		t.Fatalf("unexpected first metric row: %v", rows[1])
	}
	if rows[3][1] != "all" || rows[3][2] != "4" {
		t.Fatalf("unexpected mean/all row: %v", rows[3])
	}
}

func TestWritePageviews(t *testing.T) {
	s := &pageviews.Series{}
	for i := 0; i < 40; i++ {
		s.Dates = append(s.Dates, time.Date(2016, time.May, 9, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i))
		s.Values = append(s.Values, float64(i+1))
	}
	b := pageviews.Bounds{LowerQuantile: 0.025, UpperQuantile: 0.975, Kept: 40}
	path := filepath.Join(t.TempDir(), "pv.xlsx")
	if err := WritePageviews(path, b, pageviews.MonthlyAverages(s), pageviews.YearBoxes(s), pageviews.MonthBoxes(s)); err != nil {
		t.Fatalf("write: %v", err)
	}
	monthly := readSheet(t, path, "Monthly")
	if len(monthly) != 2 || monthly[0][1] != "Jan" || monthly[1][0] != "2016" {
		t.Fatalf("unexpected monthly rows: %v", monthly)
	}
	boxes := readSheet(t, path, "Boxes")
	// header + one year + twelve months
	if len(boxes) != 14 {
		t.Fatalf("expected 14 box rows, got %d", len(boxes))
	}
	if boxes[1][0] != "year" || boxes[1][1] != "2016" || boxes[1][2] != "40" {
		t.Fatalf("unexpected year row: %v", boxes[1])
	}
	if got := readSheet(t, path, "Bounds"); got[1][4] != "40" {
		t.Fatalf("unexpected bounds row: %v", got)
	}
}
