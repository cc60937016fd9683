package cmd

import (
	"fmt"
	"strconv"

	cfgpkg "github.com/KaramelBytes/dataviz-cli/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set dataviz configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := currentConfig()
		if cfg == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "# no config loaded, showing defaults")
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "output_dir: %s\n", c.OutputDir)
		fmt.Fprintf(out, "lower_quantile: %g\n", c.LowerQuantile)
		fmt.Fprintf(out, "upper_quantile: %g\n", c.UpperQuantile)
		fmt.Fprintf(out, "date_column: %s\n", c.DateColumn)
		fmt.Fprintf(out, "value_column: %s\n", c.ValueColumn)
		fmt.Fprintf(out, "date_layout: %s\n", c.DateLayout)
		fmt.Fprintf(out, "line_width: %d\n", c.LineWidth)
		fmt.Fprintf(out, "line_height: %d\n", c.LineHeight)
		fmt.Fprintf(out, "bar_width_in: %g\n", c.BarWidthIn)
		fmt.Fprintf(out, "bar_height_in: %g\n", c.BarHeightIn)
		fmt.Fprintf(out, "box_width_in: %g\n", c.BoxWidthIn)
		fmt.Fprintf(out, "box_height_in: %g\n", c.BoxHeightIn)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		next := *cfg
		switch key {
		case "output_dir":
			next.OutputDir = val
		case "date_column":
			next.DateColumn = val
		case "value_column":
			next.ValueColumn = val
		case "date_layout":
			next.DateLayout = val
		case "lower_quantile", "upper_quantile", "bar_width_in", "bar_height_in", "box_width_in", "box_height_in":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return fmt.Errorf("invalid float for %s: %w", key, err)
			}
			*floatField(&next, key) = f
		case "line_width", "line_height":
			i, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("invalid int for %s: %w", key, err)
			}
			if key == "line_width" {
				next.LineWidth = i
			} else {
				next.LineHeight = i
			}
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := next.Validate(); err != nil {
			return err
		}
		if err := cfgpkg.Save(&next, cfgFile); err != nil {
			return err
		}
		cfg = &next
		fmt.Fprintln(cmd.OutOrStdout(), "Saved config")
		return nil
	},
}

func floatField(c *cfgpkg.Global, key string) *float64 {
	switch key {
	case "lower_quantile":
		return &c.LowerQuantile
	case "upper_quantile":
		return &c.UpperQuantile
	case "bar_width_in":
		return &c.BarWidthIn
	case "bar_height_in":
		return &c.BarHeightIn
	case "box_width_in":
		return &c.BoxWidthIn
	default:
		return &c.BoxHeightIn
	}
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
