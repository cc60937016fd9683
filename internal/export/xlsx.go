// Package export writes analysis results to XLSX workbooks.
package export

import (
	"fmt"
	"math"
	"path/filepath"
	"time"

	"github.com/KaramelBytes/dataviz-cli/internal/demographic"
	"github.com/KaramelBytes/dataviz-cli/internal/matrix"
	"github.com/KaramelBytes/dataviz-cli/internal/pageviews"
	"github.com/KaramelBytes/dataviz-cli/internal/utils"
	"github.com/xuri/excelize/v2"
)

// workbook wraps an excelize file with a bold header style.
type workbook struct {
	f      *excelize.File
	header int
	sheets int
}

func newWorkbook() (*workbook, error) {
	f := excelize.NewFile()
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("header style: %w", err)
	}
	return &workbook{f: f, header: style}, nil
}

// sheet creates a sheet (renaming the default one first) and writes rows from
// A1, styling the first row as a header.
func (w *workbook) sheet(name string, rows [][]any) error {
	if w.sheets == 0 {
		if err := w.f.SetSheetName("Sheet1", name); err != nil {
			return fmt.Errorf("rename sheet: %w", err)
		}
	} else if _, err := w.f.NewSheet(name); err != nil {
		return fmt.Errorf("new sheet %s: %w", name, err)
	}
	w.sheets++
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		vals := make([]any, len(row))
		for j, v := range row {
			vals[j] = cellValue(v)
		}
		if err := w.f.SetSheetRow(name, cell, &vals); err != nil {
			return fmt.Errorf("write %s row %d: %w", name, i+1, err)
		}
	}
	if len(rows) > 0 && len(rows[0]) > 0 {
		last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
		if err != nil {
			return err
		}
		if err := w.f.SetCellStyle(name, "A1", last, w.header); err != nil {
			return fmt.Errorf("style %s header: %w", name, err)
		}
	}
	return nil
}

func (w *workbook) save(path string) error {
	defer w.f.Close()
	if err := utils.EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("ensure dir: %w", err)
	}
	if err := w.f.SaveAs(path); err != nil {
		return fmt.Errorf("save xlsx: %w", err)
	}
	return nil
}

// cellValue leaves NaN cells blank.
func cellValue(v any) any {
	if f, ok := v.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
		return ""
	}
	return v
}

// WriteDemographic writes the summary metrics and the race counts.
func WriteDemographic(path string, r *demographic.Report) error {
	w, err := newWorkbook()
	if err != nil {
		return err
	}
	summary := [][]any{
		{"metric", "value"},
		{"rows", r.Rows},
		{"average_age_men", r.AverageAgeMen},
		{"percentage_bachelors", r.PercentageBachelors},
		{"higher_education_rich", r.HigherEducationRich},
		{"lower_education_rich", r.LowerEducationRich},
		{"min_work_hours", r.MinWorkHours},
		{"rich_percentage", r.RichPercentage},
		{"highest_earning_country", r.HighestEarningCountry},
		{"highest_earning_country_percentage", r.HighestEarningCountryPercentage},
		{"top_IN_occupation", r.TopINOccupation},
	}
	for _, warning := range r.Warnings {
		summary = append(summary, []any{"warning", warning})
	}
	if err := w.sheet("Summary", summary); err != nil {
		_ = w.f.Close()
		return err
	}
	races := [][]any{{"race", "count"}}
	for _, c := range r.RaceCount {
		races = append(races, []any{c.Value, c.Count})
	}
	if err := w.sheet("Race", races); err != nil {
		_ = w.f.Close()
		return err
	}
	return w.save(path)
}

// WriteMatrix writes one row per metric and axis.
func WriteMatrix(path string, s *matrix.Stats) error {
	w, err := newWorkbook()
	if err != nil {
		return err
	}
	rows := [][]any{{"metric", "axis", "0", "1", "2"}}
	for _, m := range s.Metrics() {
		rows = append(rows,
			[]any{m.Name, "columns", m.Axes.Columns[0], m.Axes.Columns[1], m.Axes.Columns[2]},
			[]any{m.Name, "rows", m.Axes.Rows[0], m.Axes.Rows[1], m.Axes.Rows[2]},
			[]any{m.Name, "all", m.Axes.All},
		)
	}
	if err := w.sheet("Statistics", rows); err != nil {
		_ = w.f.Close()
		return err
	}
	return w.save(path)
}

// WritePageviews writes the cleaning bounds, the (year, month) means and the
// box statistics of both box plot panels.
func WritePageviews(path string, b pageviews.Bounds, monthly []pageviews.YearMonthly, years, months []pageviews.BoxGroup) error {
	w, err := newWorkbook()
	if err != nil {
		return err
	}
	bounds := [][]any{
		{"lower_quantile", "upper_quantile", "lower", "upper", "kept", "dropped"},
		{b.LowerQuantile, b.UpperQuantile, b.Lower, b.Upper, b.Kept, b.Dropped},
	}
	if err := w.sheet("Bounds", bounds); err != nil {
		_ = w.f.Close()
		return err
	}
	head := []any{"year"}
	for m := 1; m <= 12; m++ {
		head = append(head, pageviews.MonthAbbrev(time.Month(m)))
	}
	table := [][]any{head}
	for _, ym := range monthly {
		row := []any{ym.Year}
		for m := 0; m < 12; m++ {
			if ym.Counts[m] == 0 {
				row = append(row, "")
				continue
			}
			row = append(row, ym.Means[m])
		}
		table = append(table, row)
	}
	if err := w.sheet("Monthly", table); err != nil {
		_ = w.f.Close()
		return err
	}
	if err := w.sheet("Boxes", boxRows(years, months)); err != nil {
		_ = w.f.Close()
		return err
	}
	return w.save(path)
}

func boxRows(years, months []pageviews.BoxGroup) [][]any {
	rows := [][]any{{"panel", "group", "n", "q1", "median", "q3", "low_whisker", "high_whisker", "outliers"}}
	add := func(panel string, groups []pageviews.BoxGroup) {
		for _, g := range groups {
			if g.Box.N == 0 {
				rows = append(rows, []any{panel, g.Label, 0})
				continue
			}
			rows = append(rows, []any{panel, g.Label, g.Box.N, g.Box.Q1, g.Box.Median, g.Box.Q3,
				g.Box.LowWhisker, g.Box.HighWhisker, len(g.Box.Outliers)})
		}
	}
	add("year", years)
	add("month", months)
	return rows
}
