// Package svg extracts embedded-image references from SVG documents.
package svg

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"os"

	"go.trai.ch/svgmake/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/net/html/charset"
)

const (
	svgNamespace   = "http://www.w3.org/2000/svg"
	xlinkNamespace = "http://www.w3.org/1999/xlink"
)

// Parser implements ports.ReferenceParser with a streaming XML decoder.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseReferences returns the link of every SVG <image> element in document order.
// xlink:href wins over a plain href on the same element.
func (p *Parser) ParseReferences(path string) ([]string, error) {
	// #nosec G304 -- path comes from the source tree walk or a resolved reference
	f, err := os.Open(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDocumentReadFailed.Error()), "path", path)
	}
	defer func() {
		_ = f.Close()
	}()

	refs, err := parse(f)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return refs, nil
}

func parse(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	refs := []string{}
	sawRoot := false
	depth := 0

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrMalformedDocument.Error())
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 && sawRoot {
				return nil, zerr.With(domain.ErrMalformedDocument, "reason", "junk after document element")
			}
			sawRoot = true
			depth++
			if t.Name.Space != svgNamespace || t.Name.Local != "image" {
				continue
			}
			if ref, found := imageLink(t.Attr); found {
				refs = append(refs, ref)
			}
		case xml.EndElement:
			depth--
		case xml.CharData:
			// Only whitespace may surround the document element.
			if depth == 0 && len(bytes.TrimSpace(t)) > 0 {
				return nil, zerr.With(domain.ErrMalformedDocument, "reason", "text outside document element")
			}
		}
	}

	if !sawRoot {
		return nil, zerr.With(domain.ErrMalformedDocument, "reason", "no root element")
	}
	return refs, nil
}

func imageLink(attrs []xml.Attr) (string, bool) {
	var plain string
	var hasPlain bool
	for _, attr := range attrs {
		if attr.Name.Local != "href" {
			continue
		}
		switch attr.Name.Space {
		case xlinkNamespace:
			return attr.Value, true
		case "":
			plain, hasPlain = attr.Value, true
		}
	}
	return plain, hasPlain
}
