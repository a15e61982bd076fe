package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSymlinkTo checks that rel below root is a symlink whose target is
// target and that it resolves to an existing file
func AssertSymlinkTo(t *testing.T, root, rel, target string) {
	t.Helper()

	full := filepath.Join(root, filepath.FromSlash(rel))
	info, err := os.Lstat(full)
	require.NoError(t, err)
	require.NotZero(t, info.Mode()&os.ModeSymlink, "%s should be a symlink", rel)

	got, err := os.Readlink(full)
	require.NoError(t, err)
	assert.Equal(t, target, got, "symlink target of %s", rel)

	_, err = os.Stat(full)
	assert.NoError(t, err, "symlink %s should resolve", rel)
}

// AssertRegularFile checks that rel below root is a regular file
func AssertRegularFile(t *testing.T, root, rel string) {
	t.Helper()

	info, err := os.Lstat(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular(), "%s should be a regular file, mode %v", rel, info.Mode())
}

// Snapshot records mode and content of every entry below root, for
// detecting any mutation of a tree
func Snapshot(t *testing.T, root string) map[string]string {
	t.Helper()

	snap := make(map[string]string)
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(root, path)
		switch {
		case info.Mode()&os.ModeSymlink != 0:
			target, err := os.Readlink(path)
			if err != nil {
				return err
			}
			snap[rel] = "link:" + target
		case info.Mode().IsRegular():
			content, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			snap[rel] = "file:" + string(content)
		default:
			snap[rel] = info.Mode().String()
		}
		return nil
	})
	require.NoError(t, err)
	return snap
}
