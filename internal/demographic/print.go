package demographic

import (
	"fmt"
	"io"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Print writes the report as labelled console lines. Counts use English digit
// grouping; undefined metrics print as "n/a".
func (r *Report) Print(w io.Writer) error {
	p := message.NewPrinter(language.English)
	var err error
	printf := func(format string, args ...any) {
		if err == nil {
			_, err = p.Fprintf(w, format, args...)
		}
	}
	width := 0
	for _, c := range r.RaceCount {
		width = max(width, len(c.Value))
	}
	printf("Number of each race:\n")
	for _, c := range r.RaceCount {
		printf(" %s %d\n", fmt.Sprintf("%-*s", width, c.Value), c.Count)
	}
	printf("Average age of men: %s\n", num(p, r.AverageAgeMen))
	printf("Percentage with Bachelors degrees: %s\n", pct(p, r.PercentageBachelors))
	printf("Percentage with higher education that earn >50K: %s\n", pct(p, r.HigherEducationRich))
	printf("Percentage without higher education that earn >50K: %s\n", pct(p, r.LowerEducationRich))
	printf("Min work time: %s hours/week\n", num(p, r.MinWorkHours))
	printf("Percentage of rich among those who work fewest hours: %s\n", pct(p, r.RichPercentage))
	printf("Country with highest percentage of rich: %s\n", label(r.HighestEarningCountry))
	printf("Highest percentage of rich people in country: %s\n", pct(p, r.HighestEarningCountryPercentage))
	printf("Top occupations in India: %s\n", label(r.TopINOccupation))
	for _, warning := range r.Warnings {
		printf("Note: %s\n", warning)
	}
	return err
}

func num(p *message.Printer, f float64) string {
	if math.IsNaN(f) {
		return "n/a"
	}
	return p.Sprintf("%v", f)
}

func pct(p *message.Printer, f float64) string {
	if math.IsNaN(f) {
		return "n/a"
	}
	return num(p, f) + "%"
}

func label(s string) string {
	if s == "" {
		return "n/a"
	}
	return s
}
