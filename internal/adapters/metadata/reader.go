// Package metadata reads the project name and version from an INI metadata file.
package metadata

import (
	"github.com/go-ini/ini"
	"go.trai.ch/svgmake/internal/core/domain"
	"go.trai.ch/zerr"
)

// Reader implements ports.MetadataReader using go-ini.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read loads the INI file at path and parses the value of key in section.
// Key names match case-insensitively; section names do not.
func (r *Reader) Read(path, section, key string) (domain.Metadata, error) {
	file, err := ini.LoadSources(ini.LoadOptions{SkipUnrecognizableLines: true, InsensitiveKeys: true}, path)
	if err != nil {
		return domain.Metadata{}, zerr.With(zerr.Wrap(err, domain.ErrMetadataReadFailed.Error()), "path", path)
	}

	sec, err := file.GetSection(section)
	if err != nil {
		return domain.Metadata{}, zerr.With(zerr.With(domain.ErrMetadataKeyMissing, "section", section), "path", path)
	}

	k, err := sec.GetKey(key)
	if err != nil {
		return domain.Metadata{}, zerr.With(zerr.With(domain.ErrMetadataKeyMissing, "key", section+"."+key), "path", path)
	}

	meta, err := domain.ParseMetadata(k.String())
	if err != nil {
		return domain.Metadata{}, zerr.With(err, "path", path)
	}
	return meta, nil
}
