package dataset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// ErrMissingColumn is returned when a required column is absent.
var ErrMissingColumn = errors.New("missing column")

// LoadFrame reads path into a dataframe. Columns listed in types are forced to
// that type; the rest are detected from their values.
func LoadFrame(path string, opt Options, types map[string]series.Type) (dataframe.DataFrame, error) {
	recs, err := ReadRecords(path, opt)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	return FrameFromRecords(recs, types)
}

// FrameFromRecords builds a dataframe from header-first records.
func FrameFromRecords(recs [][]string, types map[string]series.Type) (dataframe.DataFrame, error) {
	if len(recs) == 0 {
		return dataframe.DataFrame{}, ErrEmpty
	}
	present := make(map[string]bool, len(recs[0]))
	for _, h := range recs[0] {
		present[h] = true
	}
	hints := make(map[string]series.Type, len(types))
	for name, t := range types {
		if present[name] {
			hints[name] = t
		}
	}
	df := dataframe.LoadRecords(recs,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.WithTypes(hints),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("load dataframe: %w", df.Err)
	}
	return df, nil
}

// RequireColumns reports every name missing from df.
func RequireColumns(df dataframe.DataFrame, names ...string) error {
	have := make(map[string]bool)
	for _, n := range df.Names() {
		have[n] = true
	}
	var missing []string
	for _, n := range names {
		if !have[n] {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return nil
}
