package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gota/gota/series"
	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestReadRecordsCSVTrimsAndPads(t *testing.T) {
	p := writeFile(t, "people.csv", "age, sex ,salary\n39, Male, <=50K\n50,Female\n\n")
	recs, err := ReadRecords(p, Options{})
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected header + 2 rows, got %d: %v", len(recs), recs)
	}
	if recs[0][1] != "sex" || recs[1][1] != "Male" || recs[1][2] != "<=50K" {
		t.Fatalf("cells not trimmed: %v", recs)
	}
	if len(recs[2]) != 3 || recs[2][2] != "" {
		t.Fatalf("short row not padded: %v", recs[2])
	}
}

func TestReadRecordsTSV(t *testing.T) {
	p := writeFile(t, "views.tsv", "date\tvalue\n2016-05-09\t1201\n")
	recs, err := ReadRecords(p, Options{})
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}
	if recs[1][1] != "1201" {
		t.Fatalf("tab delimiter not detected: %v", recs)
	}
}

func TestReadRecordsUnsupported(t *testing.T) {
	p := writeFile(t, "notes.md", "# hi")
	if _, err := ReadRecords(p, Options{}); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestReadRecordsEmpty(t *testing.T) {
	p := writeFile(t, "empty.csv", "")
	if _, err := ReadRecords(p, Options{}); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestReadRecordsXLSXSheetSelection(t *testing.T) {
	p := filepath.Join(t.TempDir(), "book.xlsx")
	f := excelize.NewFile()
	if err := f.SetSheetRow("Sheet1", "A1", &[]interface{}{"ignored"}); err != nil {
		t.Fatalf("set row: %v", err)
	}
	if _, err := f.NewSheet("Data"); err != nil {
		t.Fatalf("new sheet: %v", err)
	}
	if err := f.SetSheetRow("Data", "A1", &[]interface{}{"date", "value"}); err != nil {
		t.Fatalf("set header: %v", err)
	}
	if err := f.SetSheetRow("Data", "A2", &[]interface{}{"2016-05-09", 1201}); err != nil {
		t.Fatalf("set row: %v", err)
	}
	if err := f.SaveAs(p); err != nil {
		t.Fatalf("save: %v", err)
	}
	_ = f.Close()

	recs, err := ReadRecords(p, Options{SheetName: "data"})
	if err != nil {
		t.Fatalf("ReadRecords by name: %v", err)
	}
	if len(recs) != 2 || recs[0][0] != "date" || recs[1][1] != "1201" {
		t.Fatalf("unexpected records: %v", recs)
	}
	recs, err = ReadRecords(p, Options{SheetIndex: 2})
	if err != nil {
		t.Fatalf("ReadRecords by index: %v", err)
	}
	if recs[0][1] != "value" {
		t.Fatalf("unexpected records by index: %v", recs)
	}
	if _, err := ReadRecords(p, Options{SheetName: "Missing"}); err == nil {
		t.Fatalf("expected error for missing sheet")
	}
}

func TestLoadFrameTypesAndRequireColumns(t *testing.T) {
	p := writeFile(t, "people.csv", "age,sex,hours-per-week\n39,Male,40\n50,Female,13\n")
	df, err := LoadFrame(p, Options{}, map[string]series.Type{
		"age":            series.Float,
		"hours-per-week": series.Float,
		"not-present":    series.Int,
	})
	if err != nil {
		t.Fatalf("LoadFrame: %v", err)
	}
	if df.Nrow() != 2 {
		t.Fatalf("nrow=%d", df.Nrow())
	}
	if got := df.Col("age").Type(); got != series.Float {
		t.Fatalf("age type %v", got)
	}
	if got := df.Col("sex").Type(); got != series.String {
		t.Fatalf("sex type %v", got)
	}
	if err := RequireColumns(df, "age", "sex"); err != nil {
		t.Fatalf("RequireColumns: %v", err)
	}
	err = RequireColumns(df, "age", "race", "salary")
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn, got %v", err)
	}
}
