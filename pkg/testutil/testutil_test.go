package testutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTree(t *testing.T) {
	root := WriteTree(t, Tree{
		"a.txt":     "hello",
		"sub/b.txt": "world",
		"sub/link":  "->b.txt",
	})

	content, err := os.ReadFile(filepath.Join(root, "sub", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "world", string(content))

	AssertRegularFile(t, root, "a.txt")
	AssertSymlinkTo(t, root, "sub/link", "b.txt")

	snap := Snapshot(t, root)
	assert.Equal(t, "file:hello", snap["a.txt"])
	assert.Equal(t, "link:b.txt", snap[filepath.Join("sub", "link")])
}

func TestFaultyFS(t *testing.T) {
	boom := errors.New("boom")
	fsys := NewFaultyFS(NewTreeFS(t, Tree{"a.txt": "x", "b.txt": "y"})).
		Fail("open", "a.txt", boom).
		Fail("remove", "b.txt", boom)

	_, err := fsys.Open("a.txt")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, fsys.Calls("open", "a.txt"))

	f, err := fsys.Open("b.txt")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	assert.ErrorIs(t, fsys.Remove("b.txt"), boom)
	assert.NoError(t, fsys.Remove("a.txt"))
}

func TestBytes(t *testing.T) {
	assert.Equal(t, "aaaa", Bytes(4, 'a'))
	assert.Len(t, Bytes(2048, 'z'), 2048)
}
