// Package manifest records the files a run wrote into an output directory.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/KaramelBytes/dataviz-cli/internal/utils"
	"github.com/google/uuid"
)

// Artifact kinds.
const (
	KindChart = "chart"
	KindXLSX  = "xlsx"
	KindJSON  = "json"
)

// Manifest lists the artifacts persisted in one output directory.
type Manifest struct {
	Name      string               `json:"name"`
	Source    string               `json:"source,omitempty"`
	Artifacts map[string]*Artifact `json:"artifacts"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`

	// Not serialized: directory holding manifest.json
	rootDir string `json:"-"`
}

// Artifact is a single written file. Path is relative to the manifest directory.
type Artifact struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// NewManifest constructs an in-memory manifest. Call Save() to persist.
func NewManifest(name, rootDir string) *Manifest {
	now := time.Now()
	return &Manifest{
		Name:      name,
		Artifacts: make(map[string]*Artifact),
		CreatedAt: now,
		UpdatedAt: now,
		rootDir:   rootDir,
	}
}

// LoadManifest loads manifest.json from the provided directory.
func LoadManifest(dir string) (*Manifest, error) {
	path := filepath.Join(dir, utils.ManifestFileName)
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("manifest not found at %s: %w", path, err)
		}
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if m.Artifacts == nil {
		m.Artifacts = make(map[string]*Artifact)
	}
	m.rootDir = dir
	return &m, nil
}

// Open loads the manifest in dir, or creates a new one when none exists yet.
func Open(dir, name string) (*Manifest, error) {
	m, err := LoadManifest(dir)
	if err == nil {
		return m, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return NewManifest(name, dir), nil
	}
	return nil, err
}

// RootDir returns the manifest directory.
func (m *Manifest) RootDir() string { return m.rootDir }

// Save writes manifest.json using atomic write.
func (m *Manifest) Save() error {
	if m.rootDir == "" {
		return errors.New("manifest root directory not set")
	}
	if err := utils.EnsureDir(m.rootDir); err != nil {
		return fmt.Errorf("ensure dir: %w", err)
	}
	m.UpdatedAt = time.Now()
	data, err := utils.PrettyJSON(m)
	if err != nil {
		return err
	}
	return utils.SafeWriteFile(filepath.Join(m.rootDir, utils.ManifestFileName), data)
}

// AddArtifact records a written file. A file already recorded under the same
// relative path is replaced, keeping its ID.
func (m *Manifest) AddArtifact(kind, path string) (*Artifact, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat artifact: %w", err)
	}
	rel := path
	if m.rootDir != "" {
		if r, err := filepath.Rel(m.rootDir, path); err == nil {
			rel = r
		}
	}
	rel = filepath.ToSlash(rel)
	if m.Artifacts == nil {
		m.Artifacts = make(map[string]*Artifact)
	}
	a := &Artifact{
		Kind:      kind,
		Name:      filepath.Base(path),
		Path:      rel,
		Size:      info.Size(),
		CreatedAt: info.ModTime(),
	}
	for id, prev := range m.Artifacts {
		if prev.Path == rel {
			a.ID = id
			break
		}
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	m.Artifacts[a.ID] = a
	m.UpdatedAt = time.Now()
	return a, nil
}

// List returns the artifacts ordered by path.
func (m *Manifest) List() []*Artifact {
	out := make([]*Artifact, 0, len(m.Artifacts))
	for _, a := range m.Artifacts {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}
