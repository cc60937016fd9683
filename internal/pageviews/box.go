package pageviews

import (
	"bytes"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// DrawBoxPlot draws two adjacent panels: values by year (trend) and values by
// calendar month across years (seasonality).
func DrawBoxPlot(s *Series, path string, opt Options) (*Figure, error) {
	if s.Len() == 0 {
		return nil, ErrEmptySeries
	}
	opt = opt.withDefaults()
	panelWidth := opt.BoxWidth / 2

	left, err := boxPanel("Year-wise Box Plot (Trend)", "Year", YearBoxes(s), panelWidth)
	if err != nil {
		return nil, err
	}
	right, err := boxPanel("Month-wise Box Plot (Seasonality)", "Month", MonthBoxes(s), panelWidth)
	if err != nil {
		return nil, err
	}

	img := vgimg.New(opt.BoxWidth, opt.BoxHeight)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows:      1,
		Cols:      2,
		PadX:      vg.Millimeter * 8,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}
	canvases := plot.Align([][]*plot.Plot{{left, right}}, tiles, dc)
	left.Draw(canvases[0][0])
	right.Draw(canvases[0][1])

	var buf bytes.Buffer
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encode box plot: %w", err)
	}
	return save(&Figure{Name: "box", Path: path, Image: buf.Bytes(), Plots: []*plot.Plot{left, right}})
}

// boxPanel places one box per group at x = group index. The quartiles,
// whiskers and outliers drawn are those of BoxGroup.Box.
func boxPanel(title, xLabel string, groups []BoxGroup, width vg.Length) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "Page Views"

	boxWidth := width / vg.Length(2*len(groups)+2)
	labels := make([]string, len(groups))
	for i, g := range groups {
		labels[i] = g.Label
		if g.Box.N == 0 {
			continue
		}
		b, err := plotter.NewBoxPlot(boxWidth, float64(i), plotter.Values(g.Values))
		if err != nil {
			return nil, fmt.Errorf("box %s: %w", g.Label, err)
		}
		b.Median = g.Box.Median
		b.Quartile1 = g.Box.Q1
		b.Quartile3 = g.Box.Q3
		b.AdjLow = g.Box.LowWhisker
		b.AdjHigh = g.Box.HighWhisker
		b.Outside = b.Outside[:0]
		for j, v := range b.Values {
			if v < b.AdjLow || v > b.AdjHigh {
				b.Outside = append(b.Outside, j)
			}
		}
		b.FillColor = paletteColor(i)
		p.Add(b)
	}
	p.NominalX(labels...)
	return p, nil
}
