package ports

// Rasterizer produces the shell command that converts a vector source to a raster image.
//
//go:generate go run go.uber.org/mock/mockgen -source=rasterizer.go -destination=mocks/mock_rasterizer.go -package=mocks
type Rasterizer interface {
	// Name returns the backend name, e.g. "imagemagick".
	Name() string
	// Path returns the executable the commands invoke.
	Path() string
	// Command returns the command line rendering input to output at the given scale.
	Command(input, output string, scale int) string
}

// RasterizerLocator finds rasterizer backends on the host.
type RasterizerLocator interface {
	// Names returns every backend name in descending search priority.
	Names() []string
	// Find searches the host for the named backend.
	Find(name string) (Rasterizer, error)
	// Open returns the named backend bound to an explicit executable path without searching.
	Open(name, path string) (Rasterizer, error)
}
