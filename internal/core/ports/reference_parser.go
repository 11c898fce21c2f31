package ports

// ReferenceParser extracts embedded-image references from a vector source.
//
//go:generate go run go.uber.org/mock/mockgen -source=reference_parser.go -destination=mocks/mock_reference_parser.go -package=mocks
type ReferenceParser interface {
	// ParseReferences parses the document at path and returns the raw link
	// attribute of every embedded image element, in document order.
	ParseReferences(path string) ([]string, error)
}
