package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// Candidate file names tried by LoadAll, in order
var gameFiles = []string{"game.json", "game.yaml", "game.yml"}

// Loader loads game configuration from JSON or YAML files using fs.FS interface
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

// LoadGame loads one config file, choosing the decoder by extension.
// Fields missing from the file keep their defaults.
func (l *Loader) LoadGame(name string) (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	cfg := Default()
	switch ext := path.Ext(name); ext {
	case ".json":
		err = json.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("unsupported config format %q for %s", ext, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}

	return cfg, nil
}

// LoadAll loads the first game config found in the base path
func (l *Loader) LoadAll() (*GameConfig, error) {
	for _, name := range gameFiles {
		cfg, err := l.LoadGame(name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return cfg, err
	}
	return nil, fmt.Errorf("no game config in %s (tried %v): %w", l.basePath, gameFiles, fs.ErrNotExist)
}
