package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KaramelBytes/dataviz-cli/internal/manifest"
)

func TestSaveLoadAndReplace(t *testing.T) {
	dir := t.TempDir()
	png := filepath.Join(dir, "line_plot.png")
	if err := os.WriteFile(png, []byte("first"), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := manifest.Open(dir, "views")
	if err != nil {
		t.Fatalf("open new: %v", err)
	}
	a, err := m.AddArtifact(manifest.KindChart, png)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if a.Path != "line_plot.png" || a.Size != 5 || a.ID == "" {
		t.Fatalf("unexpected artifact: %+v", a)
	}
	if err := m.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	// rewriting the same file keeps one entry and its id
	if err := os.WriteFile(png, []byte("second run"), 0o644); err != nil {
		t.Fatal(err)
	}
	m2, err := manifest.Open(dir, "ignored")
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if m2.Name != "views" {
		t.Fatalf("expected persisted name, got %q", m2.Name)
	}
	b, err := m2.AddArtifact(manifest.KindChart, png)
	if err != nil {
		t.Fatalf("re-add: %v", err)
	}
	if b.ID != a.ID || b.Size != 10 {
		t.Fatalf("expected replaced artifact with same id, got %+v", b)
	}
	if got := len(m2.List()); got != 1 {
		t.Fatalf("expected 1 artifact, got %d", got)
	}
}

func TestListOrderedByPath(t *testing.T) {
	dir := t.TempDir()
	m := manifest.NewManifest("x", dir)
	for _, name := range []string{"box_plot.png", "bar_plot.png", "summary.xlsx"} {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := m.AddArtifact(manifest.KindChart, p); err != nil {
			t.Fatalf("add %s: %v", name, err)
		}
	}
	list := m.List()
	if list[0].Path != "bar_plot.png" || list[2].Path != "summary.xlsx" {
		t.Fatalf("unexpected order: %s, %s, %s", list[0].Path, list[1].Path, list[2].Path)
	}
}

func TestLoadMissingAndMissingFile(t *testing.T) {
	if _, err := manifest.LoadManifest(t.TempDir()); err == nil {
		t.Fatalf("expected error for missing manifest")
	}
	m := manifest.NewManifest("x", t.TempDir())
	if _, err := m.AddArtifact(manifest.KindJSON, filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatalf("expected stat error")
	}
}
