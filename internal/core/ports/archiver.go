package ports

// Archiver packages build outputs into a distributable archive.
//
//go:generate go run go.uber.org/mock/mockgen -source=archiver.go -destination=mocks/mock_archiver.go -package=mocks
type Archiver interface {
	// Pack writes files into the archive at path, each stored under its base name.
	Pack(path string, files []string) error
}
