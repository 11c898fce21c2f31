package domain

import (
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Rasterizer selection names that are not tied to an external executable.
const (
	// RasterizerAuto searches the backends in priority order.
	RasterizerAuto = "auto"
	// RasterizerBuiltin renders through this program's own rasterize command.
	RasterizerBuiltin = "builtin"

	RasterizerImageMagick = "imagemagick"
	RasterizerRsvg        = "rsvg"
	RasterizerInkscape    = "inkscape"
)

// RasterizerNames lists every accepted rasterizer selection.
var RasterizerNames = []string{
	RasterizerAuto,
	RasterizerImageMagick,
	RasterizerRsvg,
	RasterizerInkscape,
	RasterizerBuiltin,
}

// Config is the resolved generator configuration.
type Config struct {
	SourceDir      string
	BuildDir       string
	Output         string
	Rasterizer     string
	RasterizerPath string
	PrivatePrefix  string
	Metadata       MetadataConfig
	Preview        PreviewConfig
	Archive        ArchiveConfig
}

// MetadataConfig locates the version string inside the metadata file.
type MetadataConfig struct {
	// File is relative to the source directory.
	File    string
	Section string
	Key     string
}

// PreviewConfig describes the single-scale preview image.
type PreviewConfig struct {
	// Source is relative to the source directory.
	Source string
	Output string
}

// ArchiveConfig describes the package archive.
type ArchiveConfig struct {
	Extension string
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		SourceDir:     DefaultSourceDir,
		BuildDir:      DefaultBuildDir,
		Output:        DefaultOutput,
		Rasterizer:    RasterizerAuto,
		PrivatePrefix: DefaultPrivatePrefix,
		Metadata: MetadataConfig{
			File:    DefaultMetadataFile,
			Section: DefaultMetadataSection,
			Key:     DefaultMetadataKey,
		},
		Preview: PreviewConfig{
			Source: DefaultPreviewSource,
			Output: DefaultPreviewOutput,
		},
		Archive: ArchiveConfig{
			Extension: DefaultArchiveExtension,
		},
	}
}

// Validate checks that every value needed for generation is usable.
func (c *Config) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"sourceDir", c.SourceDir},
		{"buildDir", c.BuildDir},
		{"output", c.Output},
		{"rasterizer", c.Rasterizer},
		{"privatePrefix", c.PrivatePrefix},
		{"metadata.file", c.Metadata.File},
		{"metadata.section", c.Metadata.Section},
		{"metadata.key", c.Metadata.Key},
		{"preview.source", c.Preview.Source},
		{"preview.output", c.Preview.Output},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return zerr.With(ErrInvalidConfig, "empty_field", r.field)
		}
	}

	if !slices.Contains(RasterizerNames, c.Rasterizer) {
		return zerr.With(ErrInvalidConfig, "rasterizer", c.Rasterizer)
	}

	if !strings.HasPrefix(c.Archive.Extension, ".") {
		return zerr.With(ErrInvalidConfig, "archive_extension", c.Archive.Extension)
	}

	return nil
}
