package pageviews

import (
	"fmt"
	"image/color"

	"github.com/KaramelBytes/dataviz-cli/internal/utils"
	"github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// Default artifact names written by the renderers.
const (
	LinePlotFile = "line_plot.png"
	BarPlotFile  = "bar_plot.png"
	BoxPlotFile  = "box_plot.png"
)

// Figure is the in-memory handle of a rendered chart.
type Figure struct {
	Name string
	Path string
	// Image is the encoded PNG written to Path.
	Image []byte
	// Chart is set for the line plot.
	Chart *chart.Chart
	// Plots holds the panels of the bar and box plots, left to right.
	Plots []*plot.Plot
}

// Options controls chart text and sizes.
type Options struct {
	// Subject names what was viewed, used in the line plot title.
	Subject string
	// Line plot size in pixels.
	LineWidth, LineHeight int
	BarWidth, BarHeight   vg.Length
	BoxWidth, BoxHeight   vg.Length
}

// DefaultOptions returns the standard chart sizes.
func DefaultOptions() Options {
	return Options{
		Subject:    "freeCodeCamp Forum",
		LineWidth:  1500,
		LineHeight: 500,
		BarWidth:   10 * vg.Inch,
		BarHeight:  6 * vg.Inch,
		BoxWidth:   20 * vg.Inch,
		BoxHeight:  6 * vg.Inch,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Subject == "" {
		o.Subject = d.Subject
	}
	if o.LineWidth <= 0 {
		o.LineWidth = d.LineWidth
	}
	if o.LineHeight <= 0 {
		o.LineHeight = d.LineHeight
	}
	if o.BarWidth <= 0 {
		o.BarWidth = d.BarWidth
	}
	if o.BarHeight <= 0 {
		o.BarHeight = d.BarHeight
	}
	if o.BoxWidth <= 0 {
		o.BoxWidth = d.BoxWidth
	}
	if o.BoxHeight <= 0 {
		o.BoxHeight = d.BoxHeight
	}
	return o
}

// palette has one color per calendar month.
var palette = []color.Color{
	color.RGBA{R: 31, G: 119, B: 180, A: 255},
	color.RGBA{R: 255, G: 127, B: 14, A: 255},
	color.RGBA{R: 44, G: 160, B: 44, A: 255},
	color.RGBA{R: 214, G: 39, B: 40, A: 255},
	color.RGBA{R: 148, G: 103, B: 189, A: 255},
	color.RGBA{R: 140, G: 86, B: 75, A: 255},
	color.RGBA{R: 227, G: 119, B: 194, A: 255},
	color.RGBA{R: 127, G: 127, B: 127, A: 255},
	color.RGBA{R: 188, G: 189, B: 34, A: 255},
	color.RGBA{R: 23, G: 190, B: 207, A: 255},
	color.RGBA{R: 174, G: 199, B: 232, A: 255},
	color.RGBA{R: 255, G: 187, B: 120, A: 255},
}

func paletteColor(i int) color.Color { return palette[i%len(palette)] }

func save(f *Figure) (*Figure, error) {
	if f.Path == "" {
		return f, nil
	}
	if err := utils.SafeWriteFile(f.Path, f.Image); err != nil {
		return nil, fmt.Errorf("write %s: %w", f.Name, err)
	}
	return f, nil
}
