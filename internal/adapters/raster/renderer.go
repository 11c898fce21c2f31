// Package raster renders SVG files to PNG in-process.
package raster

import (
	"bytes"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"go.trai.ch/svgmake/internal/core/domain"
	"go.trai.ch/zerr"
)

// Renderer implements ports.ImageRenderer using oksvg and rasterx.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render draws input at scale times its view box size and writes a PNG to output.
func (r *Renderer) Render(input, output string, scale int) error {
	if scale < 1 {
		return zerr.With(domain.ErrInvalidScale, "scale", scale)
	}

	// #nosec G304 -- input is a build rule prerequisite
	f, err := os.Open(input)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDocumentReadFailed.Error()), "path", input)
	}
	defer func() {
		_ = f.Close()
	}()

	icon, err := oksvg.ReadIconStream(f, oksvg.IgnoreErrorMode)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "path", input)
	}

	w := int(math.Ceil(icon.ViewBox.W * float64(scale)))
	h := int(math.Ceil(icon.ViewBox.H * float64(scale)))
	if w <= 0 || h <= 0 {
		return zerr.With(zerr.With(domain.ErrRenderFailed, "reason", "empty view box"), "path", input)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	dasher := rasterx.NewDasher(w, h, scanner)
	icon.Draw(dasher, 1)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "path", input)
	}

	if err := os.MkdirAll(filepath.Dir(output), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", output)
	}
	if err := os.WriteFile(output, buf.Bytes(), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", output)
	}
	return nil
}
