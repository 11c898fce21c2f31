package ports

// ScriptSink persists the generated build script.
//
//go:generate go run go.uber.org/mock/mockgen -source=sink.go -destination=mocks/mock_sink.go -package=mocks
type ScriptSink interface {
	// Write stores content at path and reports whether the file changed.
	Write(path string, content []byte) (bool, error)
}
