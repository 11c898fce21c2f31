package ports

import "go.trai.ch/svgmake/internal/core/domain"

// MetadataReader reads the project name and version from the metadata file.
//
//go:generate go run go.uber.org/mock/mockgen -source=metadata.go -destination=mocks/mock_metadata.go -package=mocks
type MetadataReader interface {
	// Read returns the metadata parsed from the value of key in section of the file at path.
	Read(path, section, key string) (domain.Metadata, error)
}
