// Package pageviews cleans a date-indexed page-view series and renders it as
// a line chart, a grouped monthly bar chart and year/month box plots.
//
// Nothing is loaded at package level: callers load a Series explicitly and
// pass it to each function.
package pageviews

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/KaramelBytes/dataviz-cli/internal/dataset"
)

var (
	// ErrEmptySeries is returned when a series has no points to work with.
	ErrEmptySeries = errors.New("empty series")
	// ErrInvalidBand is returned for a quantile band outside 0 <= lower < upper <= 1.
	ErrInvalidBand = errors.New("invalid quantile band")
	// ErrNonFinite is returned when a series holds a NaN or infinite value.
	ErrNonFinite = errors.New("non-finite value")
)

// Series is a sequence of (date, value) points sorted by date.
type Series struct {
	Name   string
	Dates  []time.Time
	Values []float64
}

// Len returns the number of points.
func (s *Series) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Values)
}

// Sort orders points by date, keeping the input order of equal dates.
func (s *Series) Sort() {
	idx := make([]int, len(s.Dates))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return s.Dates[idx[a]].Before(s.Dates[idx[b]]) })
	dates := make([]time.Time, len(idx))
	vals := make([]float64, len(idx))
	for i, j := range idx {
		dates[i] = s.Dates[j]
		vals[i] = s.Values[j]
	}
	s.Dates, s.Values = dates, vals
}

// LoadOptions selects the columns and date format of a series file.
type LoadOptions struct {
	dataset.Options
	DateColumn  string
	ValueColumn string
	// DateLayout is tried first; common layouts are tried after it.
	DateLayout string
}

// DefaultLoadOptions reads "date" and "value" columns with ISO dates.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{DateColumn: "date", ValueColumn: "value", DateLayout: "2006-01-02"}
}

// Load reads a CSV/TSV/XLSX file into a sorted Series named after the file.
func Load(path string, opt LoadOptions) (*Series, error) {
	recs, err := dataset.ReadRecords(path, opt.Options)
	if err != nil {
		return nil, err
	}
	s, err := FromRecords(recs, opt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return s, nil
}

// FromRecords builds a sorted Series from header-first records. Rows with an
// unparseable date or value are rejected with their row number.
func FromRecords(recs [][]string, opt LoadOptions) (*Series, error) {
	if len(recs) == 0 {
		return nil, ErrEmptySeries
	}
	if opt.DateColumn == "" {
		opt.DateColumn = "date"
	}
	if opt.ValueColumn == "" {
		opt.ValueColumn = "value"
	}
	dateIdx, valueIdx := -1, -1
	for i, h := range recs[0] {
		switch {
		case strings.EqualFold(h, opt.DateColumn):
			dateIdx = i
		case strings.EqualFold(h, opt.ValueColumn):
			valueIdx = i
		}
	}
	if dateIdx < 0 || valueIdx < 0 {
		return nil, fmt.Errorf("%w: need %q and %q, have %s", dataset.ErrMissingColumn,
			opt.DateColumn, opt.ValueColumn, strings.Join(recs[0], ", "))
	}
	s := &Series{}
	for n, rec := range recs[1:] {
		row := n + 2
		if len(rec) <= max(dateIdx, valueIdx) {
			return nil, fmt.Errorf("row %d: expected %d fields, got %d", row, len(recs[0]), len(rec))
		}
		d, ok := parseDate(rec[dateIdx], opt.DateLayout)
		if !ok {
			return nil, fmt.Errorf("row %d: unparseable date %q", row, rec[dateIdx])
		}
		v, err := strconv.ParseFloat(rec[valueIdx], 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("row %d: unparseable value %q", row, rec[valueIdx])
		}
		s.Dates = append(s.Dates, d)
		s.Values = append(s.Values, v)
	}
	s.Sort()
	return s, nil
}

func parseDate(v, layout string) (time.Time, bool) {
	layouts := []string{
		time.RFC3339, "2006-01-02", "2006/01/02", "2006-01-02 15:04:05", "2006-01-02 15:04", "01/02/2006",
	}
	if layout != "" {
		layouts = append([]string{layout}, layouts...)
	}
	for _, l := range layouts {
		if t, err := time.Parse(l, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
