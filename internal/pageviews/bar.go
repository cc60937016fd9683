package pageviews

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// DrawBarPlot draws one bar group per year with one bar per month, January
// through December, each bar the mean of that (year, month).
func DrawBarPlot(s *Series, path string, opt Options) (*Figure, error) {
	if s.Len() == 0 {
		return nil, ErrEmptySeries
	}
	opt = opt.withDefaults()
	groups := MonthlyAverages(s)

	p := plot.New()
	p.Title.Text = "Average Daily Page Views per Month"
	p.X.Label.Text = "Years"
	p.Y.Label.Text = "Average Page Views"
	p.Legend.Top = true
	p.Legend.Left = true

	// 12 bars plus a gap of two bar widths per year slot.
	barWidth := opt.BarWidth / vg.Length(14*len(groups)+14)
	for m := 0; m < 12; m++ {
		vals := make(plotter.Values, len(groups))
		for i, g := range groups {
			vals[i] = g.Means[m]
		}
		bars, err := plotter.NewBarChart(vals, barWidth)
		if err != nil {
			return nil, fmt.Errorf("bar chart %s: %w", time.Month(m+1), err)
		}
		bars.LineStyle.Width = 0
		bars.Color = paletteColor(m)
		bars.Offset = barWidth * vg.Length(float64(m)-5.5)
		p.Add(bars)
		p.Legend.Add(time.Month(m+1).String(), bars)
	}
	years := make([]string, len(groups))
	for i, g := range groups {
		years[i] = strconv.Itoa(g.Year)
	}
	p.NominalX(years...)

	wt, err := p.WriterTo(opt.BarWidth, opt.BarHeight, "png")
	if err != nil {
		return nil, fmt.Errorf("render bar plot: %w", err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encode bar plot: %w", err)
	}
	return save(&Figure{Name: "bar", Path: path, Image: buf.Bytes(), Plots: []*plot.Plot{p}})
}
