// Package fs provides file system adapters for walking the source tree.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"

	"go.trai.ch/svgmake/internal/core/domain"
	"go.trai.ch/zerr"
)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every file below root in lexical order. Paths include root.
// Entries whose name starts with skipPrefix are skipped, directories with all
// their descendants. The walk stops after the first error is yielded.
func (w *Walker) WalkFiles(root, skipPrefix string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if path != root && w.shouldSkip(d, skipPrefix) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			// Skip directories, yield files
			if d.IsDir() {
				return nil
			}

			if !yield(path, nil) {
				return filepath.SkipAll
			}

			return nil
		})
		if err != nil {
			yield("", zerr.With(zerr.Wrap(err, domain.ErrSourceWalkFailed.Error()), "root", root))
		}
	}
}

func (w *Walker) shouldSkip(d fs.DirEntry, skipPrefix string) bool {
	return skipPrefix != "" && strings.HasPrefix(d.Name(), skipPrefix)
}
