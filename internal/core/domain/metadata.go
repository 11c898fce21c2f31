package domain

import (
	"regexp"
	"strings"

	"go.trai.ch/zerr"
)

var versionRegex = regexp.MustCompile(`^[0-9]+\.[0-9]+\.[0-9]+([-+][0-9A-Za-z.+-]+)?$`)

// Metadata is the project identity read from the metadata file.
type Metadata struct {
	Name    string
	Version string
}

// ParseMetadata splits a "<name> <major.minor.patch>" value.
// The version is the second whitespace-separated token.
func ParseMetadata(value string) (Metadata, error) {
	fields := strings.Fields(value)
	if len(fields) < 2 {
		return Metadata{}, zerr.With(ErrInvalidVersion, "value", value)
	}
	if !versionRegex.MatchString(fields[1]) {
		return Metadata{}, zerr.With(ErrInvalidVersion, "value", value)
	}
	return Metadata{Name: fields[0], Version: fields[1]}, nil
}

// ArchiveName returns the versioned package archive name, e.g. Example-1.2.3.osk.
func (m Metadata) ArchiveName(extension string) string {
	return m.Name + "-" + m.Version + extension
}
