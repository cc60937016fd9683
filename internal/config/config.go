package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`

	// Page-view cleaning band
	LowerQuantile float64 `mapstructure:"lower_quantile" yaml:"lower_quantile"`
	UpperQuantile float64 `mapstructure:"upper_quantile" yaml:"upper_quantile"`

	// Time-series input columns
	DateColumn  string `mapstructure:"date_column" yaml:"date_column"`
	ValueColumn string `mapstructure:"value_column" yaml:"value_column"`
	DateLayout  string `mapstructure:"date_layout" yaml:"date_layout"`

	// Figure sizes: line chart in pixels, bar and box plots in inches
	LineWidth   int     `mapstructure:"line_width" yaml:"line_width"`
	LineHeight  int     `mapstructure:"line_height" yaml:"line_height"`
	BarWidthIn  float64 `mapstructure:"bar_width_in" yaml:"bar_width_in"`
	BarHeightIn float64 `mapstructure:"bar_height_in" yaml:"bar_height_in"`
	BoxWidthIn  float64 `mapstructure:"box_width_in" yaml:"box_width_in"`
	BoxHeightIn float64 `mapstructure:"box_height_in" yaml:"box_height_in"`
}

// ErrInvalidBand is returned by Validate for a quantile band outside 0 <= lower < upper <= 1.
var ErrInvalidBand = errors.New("invalid quantile band")

// Defaults returns the built-in configuration used below env and file values.
func Defaults() *Global {
	return &Global{
		OutputDir:     ".",
		LowerQuantile: 0.025,
		UpperQuantile: 0.975,
		DateColumn:    "date",
		ValueColumn:   "value",
		DateLayout:    "2006-01-02",
		LineWidth:     1500,
		LineHeight:    500,
		BarWidthIn:    10,
		BarHeightIn:   6,
		BoxWidthIn:    20,
		BoxHeightIn:   6,
	}
}

// Dir returns ~/.dataviz.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".dataviz"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.dataviz/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		dir, err := Dir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("DATAVIZ")
	v.AutomaticEnv()

	d := Defaults()
	v.SetDefault("output_dir", d.OutputDir)
	v.SetDefault("lower_quantile", d.LowerQuantile)
	v.SetDefault("upper_quantile", d.UpperQuantile)
	v.SetDefault("date_column", d.DateColumn)
	v.SetDefault("value_column", d.ValueColumn)
	v.SetDefault("date_layout", d.DateLayout)
	v.SetDefault("line_width", d.LineWidth)
	v.SetDefault("line_height", d.LineHeight)
	v.SetDefault("bar_width_in", d.BarWidthIn)
	v.SetDefault("bar_height_in", d.BarHeightIn)
	v.SetDefault("box_width_in", d.BoxWidthIn)
	v.SetDefault("box_height_in", d.BoxHeightIn)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	return &c, nil
}

// Validate checks the quantile band and figure sizes.
func (c *Global) Validate() error {
	if c.LowerQuantile < 0 || c.UpperQuantile > 1 || c.LowerQuantile >= c.UpperQuantile {
		return fmt.Errorf("%w: [%g, %g]", ErrInvalidBand, c.LowerQuantile, c.UpperQuantile)
	}
	if c.LineWidth <= 0 || c.LineHeight <= 0 {
		return fmt.Errorf("line chart size must be positive: %dx%d", c.LineWidth, c.LineHeight)
	}
	if c.BarWidthIn <= 0 || c.BarHeightIn <= 0 || c.BoxWidthIn <= 0 || c.BoxHeightIn <= 0 {
		return errors.New("bar and box plot sizes must be positive")
	}
	return nil
}
