package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// projectManifest is an optional tempus.toml discovered by walking up from
// the working directory. It supplies defaults for the format commands so a
// project can pin its description in one place.
type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
}

type projectConfig struct {
	Format formatConfig `toml:"format"`
}

type formatConfig struct {
	Description string `toml:"description"`
	Version     int    `toml:"version"`
	Strftime    bool   `toml:"strftime"`
}

func findTempusToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "tempus.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadProjectManifest(startDir string) (*projectManifest, bool, error) {
	manifestPath, ok, err := findTempusToml(startDir)
	if err != nil || !ok {
		return nil, false, err
	}

	var cfg projectConfig
	if _, err := toml.DecodeFile(manifestPath, &cfg); err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", manifestPath, err)
	}
	if cfg.Format.Version == 0 {
		cfg.Format.Version = 2
	}

	return &projectManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

// resolveDescription combines flags with the manifest defaults. Flags win.
func resolveDescription(desc string, version int, strftime bool) (string, int, bool, error) {
	if desc != "" {
		return desc, version, strftime, nil
	}
	manifest, ok, err := loadProjectManifest("")
	if err != nil {
		return "", 0, false, err
	}
	if !ok || manifest.Config.Format.Description == "" {
		return "", 0, false, errors.New("no format description given; pass --desc or add a [format] table to tempus.toml")
	}
	f := manifest.Config.Format
	return f.Description, f.Version, f.Strftime, nil
}
