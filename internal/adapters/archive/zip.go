// Package archive builds the distributable package archive.
package archive

import (
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zip"
	"go.trai.ch/svgmake/internal/core/domain"
	"go.trai.ch/zerr"
)

// Zip implements ports.Archiver writing deflate-compressed zip archives.
type Zip struct{}

// NewZip creates a new Zip archiver.
func NewZip() *Zip {
	return &Zip{}
}

// Pack writes files into a zip archive at path. Entries are stored under their
// base names in the given order. The archive replaces path atomically.
func (z *Zip) Pack(path string, files []string) error {
	seen := make(map[string]string, len(files))
	for _, file := range files {
		name := filepath.Base(file)
		if prev, ok := seen[name]; ok {
			err := zerr.With(domain.ErrDuplicateArchiveEntry, "entry", name)
			return zerr.With(zerr.With(err, "first", prev), "second", file)
		}
		seen[name] = file
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArchiveFailed.Error()), "path", path)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArchiveFailed.Error()), "path", path)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if err := writeArchive(tmp, files); err != nil {
		_ = tmp.Close()
		return zerr.With(err, "path", path)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArchiveFailed.Error()), "path", path)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArchiveFailed.Error()), "path", path)
	}
	return nil
}

func writeArchive(w io.Writer, files []string) error {
	zw := zip.NewWriter(w)
	for _, file := range files {
		if err := addFile(zw, file); err != nil {
			_ = zw.Close()
			return zerr.With(err, "file", file)
		}
	}
	if err := zw.Close(); err != nil {
		return zerr.Wrap(err, domain.ErrArchiveFailed.Error())
	}
	return nil
}

func addFile(zw *zip.Writer, file string) error {
	// #nosec G304 -- files are build outputs named in the generated script
	f, err := os.Open(file)
	if err != nil {
		return zerr.Wrap(err, domain.ErrArchiveFailed.Error())
	}
	defer func() {
		_ = f.Close()
	}()

	info, err := f.Stat()
	if err != nil {
		return zerr.Wrap(err, domain.ErrArchiveFailed.Error())
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return zerr.Wrap(err, domain.ErrArchiveFailed.Error())
	}
	header.Name = filepath.Base(file)
	header.Method = zip.Deflate

	entry, err := zw.CreateHeader(header)
	if err != nil {
		return zerr.Wrap(err, domain.ErrArchiveFailed.Error())
	}
	if _, err := io.Copy(entry, f); err != nil {
		return zerr.Wrap(err, domain.ErrArchiveFailed.Error())
	}
	return nil
}
