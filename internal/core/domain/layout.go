package domain

import (
	"path/filepath"
	"strings"
)

const (
	// ConfigFileName is the name of the optional project configuration file.
	ConfigFileName = "svgmake.yaml"

	// StdoutOutput is the output name that selects standard output instead of a file.
	StdoutOutput = "-"

	// DefaultOutput is the default name of the generated build script.
	DefaultOutput = "Makefile"

	// DefaultSourceDir is the default directory holding the vector sources.
	DefaultSourceDir = "source"

	// DefaultBuildDir is the default directory receiving rasterized images.
	DefaultBuildDir = "build"

	// DefaultPrivatePrefix marks files and directories excluded from the tree walk.
	DefaultPrivatePrefix = "_"

	// DefaultMetadataFile is the metadata file copied into the build and read for the version.
	DefaultMetadataFile = "skin.ini"

	// DefaultMetadataSection is the metadata section holding the version key.
	DefaultMetadataSection = "General"

	// DefaultMetadataKey is the metadata key whose value is "<name> <version>".
	DefaultMetadataKey = "Name"

	// DefaultPreviewSource is the preview source, relative to the source directory.
	DefaultPreviewSource = "_preview.svg"

	// DefaultPreviewOutput is the fixed preview image name.
	DefaultPreviewOutput = "preview.png"

	// DefaultArchiveExtension is the extension of the package archive.
	DefaultArchiveExtension = ".osk"

	// VectorExtension is the extension of vector source files.
	VectorExtension = ".svg"

	// RasterExtension is the extension of rasterized outputs.
	RasterExtension = ".png"

	// DoubleScaleSuffix is inserted before the extension of double-scale outputs.
	DoubleScaleSuffix = "@2x"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// IsVectorSource reports whether path names a vector source file.
func IsVectorSource(path string) bool {
	return strings.EqualFold(filepath.Ext(path), VectorExtension)
}

// DefaultOutputPath returns the primary raster output for input inside buildDir.
func DefaultOutputPath(buildDir, input string) string {
	base := filepath.Base(input)
	root := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(buildDir, root+RasterExtension)
}

// DoubleScalePath returns the double-scale sibling of output, e.g. a.png -> a@2x.png.
func DoubleScalePath(output string) string {
	ext := filepath.Ext(output)
	return strings.TrimSuffix(output, ext) + DoubleScaleSuffix + ext
}
