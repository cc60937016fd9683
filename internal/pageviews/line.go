package pageviews

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// DrawLinePlot draws value against date for the whole series and writes the
// PNG to path. An empty path renders without writing.
func DrawLinePlot(s *Series, path string, opt Options) (*Figure, error) {
	if s.Len() < 2 {
		return nil, fmt.Errorf("%w: line plot needs at least two points", ErrEmptySeries)
	}
	opt = opt.withDefaults()
	first, last := s.Dates[0], s.Dates[len(s.Dates)-1]
	ch := &chart.Chart{
		Title:  fmt.Sprintf("Daily %s Page Views %d/%d-%d/%d", opt.Subject, int(first.Month()), first.Year(), int(last.Month()), last.Year()),
		Width:  opt.LineWidth,
		Height: opt.LineHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:           "Date",
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01"),
		},
		YAxis: chart.YAxis{Name: "Page Views"},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    s.Name,
				XValues: s.Dates,
				YValues: s.Values,
				Style: chart.Style{
					StrokeColor: drawing.ColorRed,
					StrokeWidth: 1,
				},
			},
		},
	}
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render line plot: %w", err)
	}
	return save(&Figure{Name: "line", Path: path, Image: buf.Bytes(), Chart: ch})
}
