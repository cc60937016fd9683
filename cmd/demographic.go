package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/KaramelBytes/dataviz-cli/internal/dataset"
	"github.com/KaramelBytes/dataviz-cli/internal/demographic"
	"github.com/KaramelBytes/dataviz-cli/internal/export"
	"github.com/KaramelBytes/dataviz-cli/internal/manifest"
	"github.com/KaramelBytes/dataviz-cli/internal/utils"
	"github.com/spf13/cobra"
)

var (
	demoSheetName  string
	demoSheetIndex int
	demoDelimiter  string
	demoJSONPath   string
	demoXLSXPath   string
	demoQuiet      bool
)

var demographicCmd = &cobra.Command{
	Use:   "demographic <file>",
	Short: "Summarize a census CSV/XLSX (race counts, education, earnings)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		delim, err := parseDelimiter(demoDelimiter)
		if err != nil {
			return err
		}
		opt := dataset.Options{Delimiter: delim, SheetName: demoSheetName, SheetIndex: demoSheetIndex}
		df, err := dataset.LoadFrame(path, opt, demographic.ColumnTypes)
		if err != nil {
			return err
		}
		debugf("loaded %s: %d rows, %d columns", filepath.Base(path), df.Nrow(), df.Ncol())
		rep, err := demographic.Calculate(df)
		if err != nil {
			return err
		}
		for _, w := range rep.Warnings {
			debugf("report: %s", w)
		}
		if !demoQuiet {
			if err := rep.Print(cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("print report: %w", err)
			}
		}
		name := "demographic"
		if demoJSONPath != "" {
			if err := utils.WriteJSON(demoJSONPath, rep); err != nil {
				return fmt.Errorf("write json: %w", err)
			}
			if err := recordArtifact(name, path, manifest.KindJSON, demoJSONPath); err != nil {
				warnf("manifest not updated: %v", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote report to %s\n", demoJSONPath)
		}
		if demoXLSXPath != "" {
			if err := export.WriteDemographic(demoXLSXPath, rep); err != nil {
				return err
			}
			if err := recordArtifact(name, path, manifest.KindXLSX, demoXLSXPath); err != nil {
				warnf("manifest not updated: %v", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote workbook to %s\n", demoXLSXPath)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(demographicCmd)
	demographicCmd.Flags().StringVar(&demoSheetName, "sheet", "", "XLSX: sheet name to read")
	demographicCmd.Flags().IntVar(&demoSheetIndex, "sheet-index", 1, "XLSX: 1-based sheet index (used if --sheet not provided)")
	demographicCmd.Flags().StringVar(&demoDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab'")
	demographicCmd.Flags().StringVar(&demoJSONPath, "json", "", "write the report as JSON to this path")
	demographicCmd.Flags().StringVar(&demoXLSXPath, "xlsx", "", "write the report as an XLSX workbook to this path")
	demographicCmd.Flags().BoolVarP(&demoQuiet, "quiet", "q", false, "do not print the report")
}
