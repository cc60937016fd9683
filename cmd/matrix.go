package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KaramelBytes/dataviz-cli/internal/export"
	"github.com/KaramelBytes/dataviz-cli/internal/manifest"
	"github.com/KaramelBytes/dataviz-cli/internal/matrix"
	"github.com/KaramelBytes/dataviz-cli/internal/utils"
	"github.com/spf13/cobra"
)

var (
	matJSON     bool
	matXLSXPath string
)

var matrixCmd = &cobra.Command{
	Use:   "matrix <n1> ... <n9>",
	Short: "Mean, variance, std, max, min and sum of a 3x3 grid per axis",
	Long: `Reads nine numbers in row-major order (space or comma separated) and reduces
them along columns, rows and the whole grid. Use -- before a negative first value.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		vals, err := matrix.ParseValues(args)
		if err != nil {
			return err
		}
		stats, err := matrix.Calculate(vals)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if matJSON {
			b, err := utils.PrettyJSON(stats)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(b))
		} else {
			for _, m := range stats.Metrics() {
				fmt.Fprintf(out, "%-19s columns=%s rows=%s all=%s\n", m.Name+":",
					formatList(m.Axes.Columns), formatList(m.Axes.Rows), formatNum(m.Axes.All))
			}
		}
		if matXLSXPath != "" {
			if err := export.WriteMatrix(matXLSXPath, stats); err != nil {
				return err
			}
			if err := recordArtifact("matrix", "", manifest.KindXLSX, matXLSXPath); err != nil {
				warnf("manifest not updated: %v", err)
			}
			fmt.Fprintf(out, "✓ Wrote workbook to %s\n", matXLSXPath)
		}
		return nil
	},
}

func formatNum(f float64) string { return strconv.FormatFloat(f, 'g', 6, 64) }

func formatList(vals []float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = formatNum(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func init() {
	rootCmd.AddCommand(matrixCmd)
	matrixCmd.Flags().BoolVar(&matJSON, "json", false, "print the statistics as JSON")
	matrixCmd.Flags().StringVar(&matXLSXPath, "xlsx", "", "write the statistics as an XLSX workbook to this path")
}
