package config

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path"

	"github.com/younwookim/cutscene/internal/domain/cutscene"
	"gopkg.in/yaml.v3"
)

// Loader loads engine configuration and cutscene files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// FS returns the filesystem the loader reads from
func (l *Loader) FS() fs.FS {
	return l.fsys
}

// LoadEngine loads engine.yaml. Missing fields fall back to DefaultEngineConfig.
func (l *Loader) LoadEngine() (*EngineConfig, error) {
	data, err := fs.ReadFile(l.fsys, "engine.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read engine.yaml: %w", err)
	}

	var cfg EngineConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse engine.yaml: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

// LoadCutscene loads a cutscene file from cutscenes/. The ".txt" extension is
// optional. Malformed lines are logged and skipped; a file without scenes is
// an error.
func (l *Loader) LoadCutscene(name string, msgs Messages, fps int) (*cutscene.Script, error) {
	p := name
	if path.Ext(p) == "" {
		p += ".txt"
	}
	p = path.Join("cutscenes", p)

	f, err := l.fsys.Open(p)
	if err != nil {
		return nil, fmt.Errorf("failed to open cutscene %s: %w", name, err)
	}
	defer func() { _ = f.Close() }()

	log.Printf("[Cutscene] Loading cutscene '%s'", p)

	script, diags, err := ParseScript(p, f, msgs, fps)
	if len(diags) > 0 {
		log.Printf("[Cutscene] %s: %d problem(s) reported", p, len(diags))
	}
	if err != nil {
		return nil, err
	}

	return script, nil
}
