package demographic

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/KaramelBytes/dataviz-cli/internal/analysis"
	"github.com/KaramelBytes/dataviz-cli/internal/dataset"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/stat"
)

// Column names of the census schema.
const (
	ColRace       = "race"
	ColSex        = "sex"
	ColAge        = "age"
	ColEducation  = "education"
	ColSalary     = "salary"
	ColHours      = "hours-per-week"
	ColCountry    = "native-country"
	ColOccupation = "occupation"
)

const (
	// RichSalary is the salary bracket counted as earning well.
	RichSalary = ">50K"
	male       = "Male"
	bachelors  = "Bachelors"
	india      = "India"
)

// HigherEducation lists the education values treated as advanced.
var HigherEducation = []string{"Bachelors", "Masters", "Doctorate"}

// Columns lists every column Calculate reads.
var Columns = []string{ColRace, ColSex, ColAge, ColEducation, ColSalary, ColHours, ColCountry, ColOccupation}

// ColumnTypes are the load hints that keep numeric columns numeric.
var ColumnTypes = map[string]series.Type{
	ColAge:        series.Float,
	ColHours:      series.Float,
	ColRace:       series.String,
	ColSex:        series.String,
	ColEducation:  series.String,
	ColSalary:     series.String,
	ColCountry:    series.String,
	ColOccupation: series.String,
}

var (
	// ErrMissingColumn is returned when the record set lacks a census column.
	ErrMissingColumn = dataset.ErrMissingColumn
	// ErrNoRows is returned for a record set without data rows.
	ErrNoRows = errors.New("record set has no rows")
)

// Report holds the census summary. Percentages are rounded to one decimal.
// A metric whose subgroup is empty is NaN (or "" for labels) and has a
// matching entry in Warnings.
type Report struct {
	Rows                            int
	RaceCount                       []analysis.CategoryCount
	AverageAgeMen                   float64
	PercentageBachelors             float64
	HigherEducationRich             float64
	LowerEducationRich              float64
	MinWorkHours                    float64
	RichPercentage                  float64
	HighestEarningCountry           string
	HighestEarningCountryPercentage float64
	TopINOccupation                 string

	// Group sizes behind the education split, for recombining the rates.
	HigherEducationCount int
	LowerEducationCount  int
	OverallRich          float64

	Warnings []string
}

// Calculate computes the census summary over df.
func Calculate(df dataframe.DataFrame) (*Report, error) {
	if df.Err != nil {
		return nil, fmt.Errorf("dataframe: %w", df.Err)
	}
	if err := dataset.RequireColumns(df, Columns...); err != nil {
		return nil, err
	}
	total := df.Nrow()
	if total == 0 {
		return nil, ErrNoRows
	}
	r := &Report{Rows: total}

	r.RaceCount = analysis.ValueCounts(df.Col(ColRace).Records())

	men, err := subset(df, eq(ColSex, male))
	if err != nil {
		return nil, err
	}
	if men.Nrow() == 0 {
		r.AverageAgeMen = math.NaN()
		r.warn("average age of men: no rows with sex == %q", male)
	} else {
		r.AverageAgeMen = r.meanSkippingMissing(men, ColAge)
	}

	bach, err := subset(df, eq(ColEducation, bachelors))
	if err != nil {
		return nil, err
	}
	r.PercentageBachelors = analysis.Round1(analysis.Percent(bach.Nrow(), total))

	rich, err := subset(df, eq(ColSalary, RichSalary))
	if err != nil {
		return nil, err
	}
	r.OverallRich = analysis.Percent(rich.Nrow(), total)

	higher, err := subset(df, dataframe.F{Colname: ColEducation, Comparator: series.In, Comparando: HigherEducation})
	if err != nil {
		return nil, err
	}
	higherRich, err := subset(higher, eq(ColSalary, RichSalary))
	if err != nil {
		return nil, err
	}
	r.HigherEducationCount = higher.Nrow()
	r.LowerEducationCount = total - higher.Nrow()
	r.HigherEducationRich = analysis.Round1(analysis.Percent(higherRich.Nrow(), r.HigherEducationCount))
	r.LowerEducationRich = analysis.Round1(analysis.Percent(rich.Nrow()-higherRich.Nrow(), r.LowerEducationCount))
	if r.HigherEducationCount == 0 {
		r.warn("higher education rich: no rows with advanced education")
	}
	if r.LowerEducationCount == 0 {
		r.warn("lower education rich: no rows without advanced education")
	}

	r.MinWorkHours = df.Col(ColHours).Min()
	minWorkers, err := subset(df, dataframe.F{Colname: ColHours, Comparator: series.Eq, Comparando: r.MinWorkHours})
	if err != nil {
		return nil, err
	}
	minRich, err := subset(minWorkers, eq(ColSalary, RichSalary))
	if err != nil {
		return nil, err
	}
	r.RichPercentage = analysis.Round1(analysis.Percent(minRich.Nrow(), minWorkers.Nrow()))
	if minWorkers.Nrow() == 0 {
		r.warn("rich percentage: no rows at the minimum of %s", ColHours)
	}

	r.HighestEarningCountry, r.HighestEarningCountryPercentage = highestEarning(df, rich)
	if r.HighestEarningCountry == "" {
		r.warn("highest earning country: no rows with salary %s", RichSalary)
	}

	indiaRich, err := subset(rich, eq(ColCountry, india))
	if err != nil {
		return nil, err
	}
	if occ, ok := analysis.Mode(indiaRich.Col(ColOccupation).Records()); ok {
		r.TopINOccupation = occ
	} else {
		r.warn("top occupation in %s: no rows with salary %s", india, RichSalary)
	}
	return r, nil
}

// highestEarning picks the country with the largest share of rich rows.
// Countries without any rich row have an undefined share and are skipped.
func highestEarning(all, rich dataframe.DataFrame) (string, float64) {
	totals := make(map[string]int)
	for _, c := range analysis.ValueCounts(all.Col(ColCountry).Records()) {
		totals[c.Value] = c.Count
	}
	shares := make(map[string]float64)
	if rich.Nrow() > 0 {
		for _, c := range analysis.ValueCounts(rich.Col(ColCountry).Records()) {
			shares[c.Value] = analysis.Percent(c.Count, totals[c.Value])
		}
	}
	country, pct, ok := analysis.ArgMax(shares)
	if !ok {
		return "", math.NaN()
	}
	return country, analysis.Round1(pct)
}

func eq(col string, v interface{}) dataframe.F {
	return dataframe.F{Colname: col, Comparator: series.Eq, Comparando: v}
}

// subset applies filters in sequence (logical AND). Filtering stops as soon as
// no rows remain.
func subset(df dataframe.DataFrame, filters ...dataframe.F) (dataframe.DataFrame, error) {
	for _, f := range filters {
		if df.Nrow() == 0 {
			return df, nil
		}
		df = df.Filter(f)
		if df.Err != nil {
			return df, fmt.Errorf("filter %s %s: %w", f.Colname, f.Comparator, df.Err)
		}
	}
	return df, nil
}

// meanSkippingMissing averages col over df ignoring empty or non-numeric
// cells. Skipped cells and an all-missing column are reported in Warnings.
func (r *Report) meanSkippingMissing(df dataframe.DataFrame, col string) float64 {
	vals := df.Col(col).Float()
	kept := vals[:0:0]
	for _, v := range vals {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			kept = append(kept, v)
		}
	}
	if skipped := len(vals) - len(kept); skipped > 0 {
		r.warn("%s: skipped %d rows with a missing value", col, skipped)
	}
	if len(kept) == 0 {
		return math.NaN()
	}
	return analysis.Round1(stat.Mean(kept, nil))
}

func (r *Report) warn(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// MarshalJSON emits the summary under its snake_case metric names. NaN
// metrics are encoded as null.
func (r *Report) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"rows":                               r.Rows,
		"race_count":                         r.RaceCount,
		"average_age_men":                    nullable(r.AverageAgeMen),
		"percentage_bachelors":               nullable(r.PercentageBachelors),
		"higher_education_rich":              nullable(r.HigherEducationRich),
		"lower_education_rich":               nullable(r.LowerEducationRich),
		"min_work_hours":                     nullable(r.MinWorkHours),
		"rich_percentage":                    nullable(r.RichPercentage),
		"highest_earning_country":            r.HighestEarningCountry,
		"highest_earning_country_percentage": nullable(r.HighestEarningCountryPercentage),
		"top_IN_occupation":                  r.TopINOccupation,
		"warnings":                           r.Warnings,
	})
}

func nullable(f float64) any {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return f
}
