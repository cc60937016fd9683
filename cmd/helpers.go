package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/KaramelBytes/dataviz-cli/internal/manifest"
)

// parseDelimiter maps the --delimiter flag to a rune; 0 means detect.
func parseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return 0, nil
	case ",":
		return ',', nil
	case "\t", "tab":
		return '\t', nil
	case ";":
		return ';', nil
	default:
		return 0, fmt.Errorf("unsupported --delimiter: %s", s)
	}
}

// recordArtifact adds path to the manifest of its directory and saves it.
func recordArtifact(name, source, kind, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	m, err := manifest.Open(filepath.Dir(abs), name)
	if err != nil {
		return err
	}
	if source != "" {
		m.Source = source
	}
	a, err := m.AddArtifact(kind, abs)
	if err != nil {
		return err
	}
	if err := m.Save(); err != nil {
		return fmt.Errorf("save manifest: %w", err)
	}
	debugf("recorded %s (%s, %d bytes) in %s", a.Path, a.Kind, a.Size, m.RootDir())
	return nil
}
