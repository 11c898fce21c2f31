package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigReadFailed is returned when the project file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the project file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when a resolved configuration value is not usable.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrMetadataReadFailed is returned when the metadata file cannot be read or parsed.
	ErrMetadataReadFailed = zerr.New("failed to read metadata file")

	// ErrMetadataKeyMissing is returned when the metadata file lacks the version section or key.
	ErrMetadataKeyMissing = zerr.New("metadata key not found")

	// ErrInvalidVersion is returned when the metadata value is not of the form "<name> <major.minor.patch>".
	ErrInvalidVersion = zerr.New("invalid version string, expected format: <name> <major.minor.patch>")

	// ErrUnknownRasterizer is returned when a rasterizer name does not match any backend.
	ErrUnknownRasterizer = zerr.New("unknown rasterizer")

	// ErrRasterizerNotFound is returned when a specific rasterizer backend cannot be located.
	ErrRasterizerNotFound = zerr.New("rasterizer executable not found")

	// ErrNoRasterizer is returned when no usable rasterizer backend could be located.
	ErrNoRasterizer = zerr.New("no rasterizer found")

	// ErrDocumentReadFailed is returned when a vector source file cannot be opened.
	ErrDocumentReadFailed = zerr.New("failed to read vector source")

	// ErrMalformedDocument is returned when a vector source file is not well-formed markup.
	ErrMalformedDocument = zerr.New("malformed vector source")

	// ErrReferenceCycle is returned when vector sources embed each other in a cycle.
	ErrReferenceCycle = zerr.New("embedded image reference cycle detected")

	// ErrSourceWalkFailed is returned when the source tree cannot be walked.
	ErrSourceWalkFailed = zerr.New("failed to walk source directory")

	// ErrRuleWriteFailed is returned when a rule cannot be written to the script buffer.
	ErrRuleWriteFailed = zerr.New("failed to write rule")

	// ErrOutputReadFailed is returned when the existing script cannot be read for comparison.
	ErrOutputReadFailed = zerr.New("failed to read existing output")

	// ErrOutputWriteFailed is returned when the generated script cannot be written.
	ErrOutputWriteFailed = zerr.New("failed to write output")

	// ErrDuplicateArchiveEntry is returned when two packaged files share a base name.
	ErrDuplicateArchiveEntry = zerr.New("duplicate archive entry")

	// ErrArchiveFailed is returned when the package archive cannot be created.
	ErrArchiveFailed = zerr.New("failed to create archive")

	// ErrRenderFailed is returned when the built-in rasterizer cannot render a source.
	ErrRenderFailed = zerr.New("failed to render vector source")

	// ErrInvalidScale is returned when a rasterization scale is not a positive integer.
	ErrInvalidScale = zerr.New("scale must be a positive integer")

	// ErrWatchFailed is returned when the source tree cannot be watched.
	ErrWatchFailed = zerr.New("failed to watch source directory")
)
