// Package scanner enumerates the regular files below a root directory.
package scanner

import (
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/lnopt/pkg/errors"
	"github.com/arthur-debert/lnopt/pkg/logging"
	"github.com/arthur-debert/lnopt/pkg/types"
)

// Result is the outcome of a scan
type Result struct {
	// Entries holds the files at or above the threshold, sorted by path
	Entries []types.FileEntry

	// Scanned counts every regular file found, below the threshold or not
	Scanned int

	// Vanished counts entries dropped because they disappeared or could
	// not be queried between enumeration and Lstat
	Vanished int
}

// Scan walks fsys from its root and records every regular file whose size
// is at least minSize. Symlinks are never followed nor recorded. Entries
// that vanish or become unreadable mid-scan are skipped; only a failure to
// read the root itself is returned.
func Scan(fsys types.FS, minSize int64) (*Result, error) {
	logger := logging.GetLogger("scanner")
	result := &Result{}

	queue := []string{"."}
	for len(queue) > 0 {
		dir := queue[0]
		queue = queue[1:]

		entries, err := fsys.ReadDir(dir)
		if err != nil {
			if dir == "." {
				return nil, errors.Wrapf(err, errors.ErrSetup, "cannot read directory %s", fsys.Root())
			}
			logger.Debug().Err(err).Str("dir", dir).Msg("Skipping unreadable directory")
			result.Vanished++
			continue
		}

		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())

			info, err := fsys.Lstat(path)
			if err != nil {
				logger.Debug().Err(err).Str("path", path).Msg("Skipping vanished entry")
				result.Vanished++
				continue
			}

			switch mode := info.Mode(); {
			case mode&fs.ModeSymlink != 0:
				logger.Trace().Str("path", path).Msg("Skipping symlink")
			case mode.IsDir():
				queue = append(queue, path)
			case mode.IsRegular():
				result.Scanned++
				if info.Size() < minSize {
					continue
				}
				result.Entries = append(result.Entries, types.FileEntry{
					Path: path,
					Size: info.Size(),
				})
			default:
				logger.Trace().Str("path", path).Str("mode", mode.String()).Msg("Skipping special file")
			}
		}
	}

	sort.Slice(result.Entries, func(i, j int) bool {
		return result.Entries[i].Path < result.Entries[j].Path
	})

	logger.Debug().
		Int("scanned", result.Scanned).
		Int("candidates", len(result.Entries)).
		Int("vanished", result.Vanished).
		Msg("Scan completed")

	return result, nil
}
