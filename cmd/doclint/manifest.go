package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
}

type projectConfig struct {
	Check  checkConfig  `toml:"check"`
	Output outputConfig `toml:"output"`
}

type checkConfig struct {
	LineLimit  int      `toml:"line-limit"`
	Extensions []string `toml:"extensions"`
}

type outputConfig struct {
	Format string `toml:"format"`
}

// findDoclintToml walks from startDir toward the filesystem root and
// returns the first doclint.toml it finds.
func findDoclintToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "doclint.toml")
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
	manifestPath, ok, err := findDoclintToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := loadProjectConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &projectManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

func loadProjectConfig(path string) (projectConfig, error) {
	var cfg projectConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return projectConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if meta.IsDefined("check", "line-limit") && cfg.Check.LineLimit <= 0 {
		return projectConfig{}, fmt.Errorf("%s: [check].line-limit must be positive, got %d", path, cfg.Check.LineLimit)
	}
	for _, ext := range cfg.Check.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return projectConfig{}, fmt.Errorf("%s: [check].extensions entries must start with a dot, got %q", path, ext)
		}
	}
	if meta.IsDefined("output", "format") && !knownFormat(cfg.Output.Format) {
		return projectConfig{}, fmt.Errorf("%s: [output].format must be one of pretty, json, sarif, short; got %q", path, cfg.Output.Format)
	}
	return cfg, nil
}
