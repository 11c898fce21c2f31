package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/svgmake/internal/adapters/fs"
	"go.trai.ch/svgmake/internal/core/domain"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, nil, domain.FilePerm))
}

func collect(t *testing.T, w *fs.Walker, root, prefix string) []string {
	t.Helper()
	var got []string
	for path, err := range w.WalkFiles(root, prefix) {
		require.NoError(t, err)
		got = append(got, path)
	}
	return got
}

func TestWalker_WalkFiles(t *testing.T) {
	// root/
	//   _preview.svg
	//   _private/
	//     hidden.svg
	//   b.svg
	//   a.svg
	//   nested/
	//     c.svg
	//     _draft.svg
	root := t.TempDir()
	touch(t, filepath.Join(root, "_preview.svg"))
	touch(t, filepath.Join(root, "_private", "hidden.svg"))
	touch(t, filepath.Join(root, "b.svg"))
	touch(t, filepath.Join(root, "a.svg"))
	touch(t, filepath.Join(root, "nested", "c.svg"))
	touch(t, filepath.Join(root, "nested", "_draft.svg"))

	got := collect(t, fs.NewWalker(), root, "_")

	assert.Equal(t, []string{
		filepath.Join(root, "a.svg"),
		filepath.Join(root, "b.svg"),
		filepath.Join(root, "nested", "c.svg"),
	}, got)
}

func TestWalker_WalkFiles_RootWithPrefixIsWalked(t *testing.T) {
	root := filepath.Join(t.TempDir(), "_assets")
	touch(t, filepath.Join(root, "a.svg"))

	got := collect(t, fs.NewWalker(), root, "_")
	assert.Equal(t, []string{filepath.Join(root, "a.svg")}, got)
}

func TestWalker_WalkFiles_EarlyStop(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "a.svg"))
	touch(t, filepath.Join(root, "b.svg"))

	var got []string
	for path, err := range fs.NewWalker().WalkFiles(root, "_") {
		require.NoError(t, err)
		got = append(got, path)
		break
	}
	assert.Len(t, got, 1)
}

func TestWalker_WalkFiles_MissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "absent")

	var errs []error
	for _, err := range fs.NewWalker().WalkFiles(root, "_") {
		errs = append(errs, err)
	}
	require.Len(t, errs, 1)
	require.Error(t, errs[0])
	assert.Contains(t, errs[0].Error(), domain.ErrSourceWalkFailed.Error())
}
