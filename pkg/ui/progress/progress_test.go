package progress

import (
	"bytes"
	"errors"
	"io"
	"os"
	"testing"

	"atomicgo.dev/cursor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureStdout swaps os.Stdout for a temp file during fn and returns what
// was written to it
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	f, err := os.CreateTemp(t.TempDir(), "stdout")
	require.NoError(t, err)
	orig := os.Stdout
	os.Stdout = f
	defer func() {
		os.Stdout = orig
		cursor.SetTarget(orig)
	}()

	// the cursor package captured the real stdout at init
	cursor.SetTarget(f)
	fn()

	require.NoError(t, f.Sync())
	_, err = f.Seek(0, io.SeekStart)
	require.NoError(t, err)
	out, err := io.ReadAll(f)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return string(out)
}

func TestBar(t *testing.T) {
	var buf bytes.Buffer
	stdout := captureStdout(t, func() {
		bar, err := Start(&buf, "Fingerprinting", 3)
		require.NoError(t, err)

		bar.FileDone("a", nil)
		bar.FileDone("b", errors.New("unreadable"))
		bar.FileDone("c", nil)
		assert.Equal(t, 3, bar.bar.Current)

		bar.Stop()
	})

	assert.Empty(t, stdout, "progress output must stay off stdout")
	assert.Contains(t, buf.String(), "\x1b[?25l", "cursor hide goes to the bar's writer")
}

func TestCursorTarget(t *testing.T) {
	assert.Equal(t, os.Stderr, cursorTarget(os.Stderr))

	var buf bytes.Buffer
	target := cursorTarget(&buf)
	_, err := target.Write([]byte("x"))
	require.NoError(t, err)
	assert.Equal(t, "x", buf.String())
}
