package ports

import "iter"

// SourceWalker enumerates the files of a source tree.
type SourceWalker interface {
	// WalkFiles yields every file below root in lexicographic order, skipping
	// files and directories whose name starts with skipPrefix.
	WalkFiles(root, skipPrefix string) iter.Seq2[string, error]
}
