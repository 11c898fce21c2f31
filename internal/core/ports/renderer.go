package ports

// ImageRenderer rasterizes a vector source in-process.
//
//go:generate go run go.uber.org/mock/mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type ImageRenderer interface {
	// Render draws input at the given integer scale and writes a PNG to output.
	Render(input, output string, scale int) error
}
