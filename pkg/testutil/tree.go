// pkg/testutil/tree.go
// DEPENDENCIES: filesystem
// PURPOSE: Build isolated on-disk file trees for tests

package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/lnopt/pkg/filesystem"
	"github.com/arthur-debert/lnopt/pkg/types"
	"github.com/stretchr/testify/require"
)

// Tree describes files to create, keyed by slash-separated relative path.
// A value starting with "->" creates a symlink to the rest of the value.
type Tree map[string]string

// WriteTree creates tree below a fresh temp dir and returns its root
func WriteTree(t *testing.T, tree Tree) string {
	t.Helper()

	root := t.TempDir()
	for rel, content := range tree {
		full := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))

		if target, ok := strings.CutPrefix(content, "->"); ok {
			require.NoError(t, os.Symlink(target, full))
			continue
		}
		require.NoError(t, os.WriteFile(full, []byte(content), 0644))
	}
	return root
}

// NewTreeFS writes tree and returns an OS filesystem rooted at it
func NewTreeFS(t *testing.T, tree Tree) types.FS {
	t.Helper()

	fsys, err := filesystem.NewOS(WriteTree(t, tree))
	require.NoError(t, err)
	return fsys
}

// Bytes returns a string of n copies of b, handy for sized fixtures
func Bytes(n int, b byte) string {
	return strings.Repeat(string(b), n)
}
