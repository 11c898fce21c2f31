// Package sink persists the generated script, touching the file only when its content changes.
package sink

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/svgmake/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.ScriptSink with write-if-changed semantics.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Write stores content at path unless the file already holds the same bytes.
// It reports whether the file was written.
func (s *Store) Write(path string, content []byte) (bool, error) {
	path = filepath.Clean(path)

	same, err := matches(path, content)
	if err != nil {
		return false, zerr.With(err, "path", path)
	}
	if same {
		return false, nil
	}

	if err := writeAtomic(path, content); err != nil {
		return false, zerr.With(err, "path", path)
	}
	return true, nil
}

// matches compares the size and xxhash of the file at path with content.
func matches(path string, content []byte) (bool, error) {
	//nolint:gosec // Path is cleaned and provided by trusted caller
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.Wrap(err, domain.ErrOutputReadFailed.Error())
	}
	defer func() {
		_ = f.Close()
	}()

	info, err := f.Stat()
	if err != nil {
		return false, zerr.Wrap(err, domain.ErrOutputReadFailed.Error())
	}
	if !info.Mode().IsRegular() || info.Size() != int64(len(content)) {
		return false, nil
	}

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return false, zerr.Wrap(err, domain.ErrOutputReadFailed.Error())
	}

	return hasher.Sum64() == xxhash.Sum64(content), nil
}

func writeAtomic(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrOutputWriteFailed.Error())
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return zerr.Wrap(err, domain.ErrOutputWriteFailed.Error())
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, domain.ErrOutputWriteFailed.Error())
	}
	if err := tmp.Chmod(domain.FilePerm); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, domain.ErrOutputWriteFailed.Error())
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, domain.ErrOutputWriteFailed.Error())
	}

	if err := os.Rename(tmpName, path); err != nil {
		return zerr.Wrap(err, domain.ErrOutputWriteFailed.Error())
	}
	return nil
}
