// Package config provides the project file loader for svgmake.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/svgmake/internal/core/domain"
	"go.trai.ch/svgmake/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using an optional YAML project file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load discovers svgmake.yaml in cwd or any parent directory and merges it over the defaults.
// Path values are resolved against the project file's directory and returned relative to cwd.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	configPath, found := findProjectfile(cwd)
	if !found {
		return cfg, nil
	}

	var pf Projectfile
	if err := readAndUnmarshalYAML(configPath, &pf); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	merge(cfg, &pf)

	root := filepath.Dir(configPath)
	if root != filepath.Clean(cwd) {
		l.Logger.Info("Using project file " + configPath)
	}

	cfg.SourceDir = relocate(cwd, root, cfg.SourceDir)
	cfg.BuildDir = relocate(cwd, root, cfg.BuildDir)
	cfg.Preview.Output = relocate(cwd, root, cfg.Preview.Output)
	if cfg.Output != domain.StdoutOutput {
		cfg.Output = relocate(cwd, root, cfg.Output)
	}
	if cfg.RasterizerPath != "" {
		cfg.RasterizerPath = relocate(cwd, root, cfg.RasterizerPath)
	}

	if err := cfg.Validate(); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	return cfg, nil
}

func findProjectfile(cwd string) (string, bool) {
	currentDir := filepath.Clean(cwd)
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}

func merge(cfg *domain.Config, pf *Projectfile) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	set(&cfg.SourceDir, pf.SourceDir)
	set(&cfg.BuildDir, pf.BuildDir)
	set(&cfg.Output, pf.Output)
	set(&cfg.Rasterizer, pf.Rasterizer)
	set(&cfg.RasterizerPath, pf.RasterizerPath)
	set(&cfg.PrivatePrefix, pf.PrivatePrefix)
	set(&cfg.Metadata.File, pf.Metadata.File)
	set(&cfg.Metadata.Section, pf.Metadata.Section)
	set(&cfg.Metadata.Key, pf.Metadata.Key)
	set(&cfg.Preview.Source, pf.Preview.Source)
	set(&cfg.Preview.Output, pf.Preview.Output)
	set(&cfg.Archive.Extension, pf.Archive.Extension)
}

// relocate resolves p against root and expresses it relative to cwd when possible.
func relocate(cwd, root, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	abs := filepath.Join(root, p)
	rel, err := filepath.Rel(filepath.Clean(cwd), abs)
	if err != nil {
		return abs
	}
	return rel
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath comes from project file discovery
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	dec := yaml.NewDecoder(bytes.NewReader(configFile))
	dec.KnownFields(true)
	if parseErr := dec.Decode(target); parseErr != nil && !errors.Is(parseErr, io.EOF) {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
