package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/KaramelBytes/dataviz-cli/internal/dataset"
	"github.com/KaramelBytes/dataviz-cli/internal/export"
	"github.com/KaramelBytes/dataviz-cli/internal/manifest"
	"github.com/KaramelBytes/dataviz-cli/internal/pageviews"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"
)

var (
	pvOutDir      string
	pvCharts      []string
	pvLower       float64
	pvUpper       float64
	pvXLSXPath    string
	pvDateColumn  string
	pvValueColumn string
	pvDateLayout  string
	pvSheetName   string
	pvDelimiter   string
	pvSubject     string
)

type chartFunc func(*pageviews.Series, string, pageviews.Options) (*pageviews.Figure, error)

var chartKinds = map[string]struct {
	file string
	draw chartFunc
}{
	"line": {pageviews.LinePlotFile, pageviews.DrawLinePlot},
	"bar":  {pageviews.BarPlotFile, pageviews.DrawBarPlot},
	"box":  {pageviews.BoxPlotFile, pageviews.DrawBoxPlot},
}

var pageviewsCmd = &cobra.Command{
	Use:   "pageviews <file>",
	Short: "Clean a daily page-view series and draw line, bar and box plots",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := currentConfig()
		f := cmd.Flags()
		lower, upper := c.LowerQuantile, c.UpperQuantile
		if f.Changed("lower") {
			lower = pvLower
		}
		if f.Changed("upper") {
			upper = pvUpper
		}
		outDir := c.OutputDir
		if pvOutDir != "" {
			outDir = pvOutDir
		}
		charts, err := selectCharts(pvCharts)
		if err != nil {
			return err
		}

		delim, err := parseDelimiter(pvDelimiter)
		if err != nil {
			return err
		}
		lo := pageviews.LoadOptions{
			Options:     dataset.Options{Delimiter: delim, SheetName: pvSheetName},
			DateColumn:  firstNonEmpty(pvDateColumn, c.DateColumn),
			ValueColumn: firstNonEmpty(pvValueColumn, c.ValueColumn),
			DateLayout:  firstNonEmpty(pvDateLayout, c.DateLayout),
		}
		src := args[0]
		s, err := pageviews.Load(src, lo)
		if err != nil {
			return err
		}
		debugf("loaded %d points from %s", s.Len(), filepath.Base(src))

		clean, b, err := pageviews.Clean(s, lower, upper)
		if err != nil {
			return err
		}
		debugf("band [%g, %g] -> [%g, %g], kept %d, dropped %d", b.LowerQuantile, b.UpperQuantile, b.Lower, b.Upper, b.Kept, b.Dropped)

		opt := pageviews.Options{
			Subject:    pvSubject,
			LineWidth:  c.LineWidth,
			LineHeight: c.LineHeight,
			BarWidth:   vg.Length(c.BarWidthIn) * vg.Inch,
			BarHeight:  vg.Length(c.BarHeightIn) * vg.Inch,
			BoxWidth:   vg.Length(c.BoxWidthIn) * vg.Inch,
			BoxHeight:  vg.Length(c.BoxHeightIn) * vg.Inch,
		}
		m, err := manifest.Open(outDir, s.Name)
		if err != nil {
			return err
		}
		m.Source = src
		out := cmd.OutOrStdout()
		for _, kind := range charts {
			ck := chartKinds[kind]
			path := filepath.Join(outDir, ck.file)
			fig, err := ck.draw(clean, path, opt)
			if err != nil {
				return fmt.Errorf("%s plot: %w", kind, err)
			}
			if _, err := m.AddArtifact(manifest.KindChart, fig.Path); err != nil {
				return err
			}
			fmt.Fprintf(out, "✓ Wrote %s (%d bytes)\n", fig.Path, len(fig.Image))
		}
		if pvXLSXPath != "" {
			err := export.WritePageviews(pvXLSXPath, b, pageviews.MonthlyAverages(clean),
				pageviews.YearBoxes(clean), pageviews.MonthBoxes(clean))
			if err != nil {
				return err
			}
			if _, err := m.AddArtifact(manifest.KindXLSX, pvXLSXPath); err != nil {
				return err
			}
			fmt.Fprintf(out, "✓ Wrote workbook to %s\n", pvXLSXPath)
		}
		if err := m.Save(); err != nil {
			return fmt.Errorf("save manifest: %w", err)
		}
		debugf("manifest %s has %d artifacts", m.RootDir(), len(m.Artifacts))
		return nil
	},
}

// selectCharts validates --charts and returns kinds in line, bar, box order.
func selectCharts(names []string) ([]string, error) {
	want := map[string]bool{}
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if _, ok := chartKinds[n]; !ok {
			return nil, fmt.Errorf("unknown chart %q (use line, bar, box)", n)
		}
		want[n] = true
	}
	var out []string
	for _, k := range []string{"line", "bar", "box"} {
		if want[k] {
			out = append(out, k)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no charts selected")
	}
	return out, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func init() {
	rootCmd.AddCommand(pageviewsCmd)
	pageviewsCmd.Flags().StringVarP(&pvOutDir, "out-dir", "o", "", "directory for charts and manifest.json (default from config)")
	pageviewsCmd.Flags().StringSliceVar(&pvCharts, "charts", []string{"line", "bar", "box"}, "charts to draw: line,bar,box")
	pageviewsCmd.Flags().Float64Var(&pvLower, "lower", pageviews.DefaultLowerQuantile, "lower quantile of the kept band (overrides config)")
	pageviewsCmd.Flags().Float64Var(&pvUpper, "upper", pageviews.DefaultUpperQuantile, "upper quantile of the kept band (overrides config)")
	pageviewsCmd.Flags().StringVar(&pvXLSXPath, "xlsx", "", "write bounds, monthly means and box statistics to this XLSX path")
	pageviewsCmd.Flags().StringVar(&pvDateColumn, "date-column", "", "name of the date column (default from config)")
	pageviewsCmd.Flags().StringVar(&pvValueColumn, "value-column", "", "name of the value column (default from config)")
	pageviewsCmd.Flags().StringVar(&pvDateLayout, "date-layout", "", "Go time layout of the date column (default from config)")
	pageviewsCmd.Flags().StringVar(&pvSheetName, "sheet", "", "XLSX: sheet name to read")
	pageviewsCmd.Flags().StringVar(&pvDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab'")
	pageviewsCmd.Flags().StringVar(&pvSubject, "subject", "", "what was viewed, used in the line plot title")
}
