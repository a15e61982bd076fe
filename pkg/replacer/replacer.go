// Package replacer turns duplicate files into symlinks to their canonical copy.
//
// Replacement is strictly sequential: it may prompt the user and it mutates
// the filesystem. Each non-canonical file ends in exactly one terminal
// outcome (skipped, dry-run, linked or failed) and a failure never stops the
// run.
package replacer

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/lnopt/pkg/errors"
	"github.com/arthur-debert/lnopt/pkg/logging"
	"github.com/arthur-debert/lnopt/pkg/types"
	"github.com/rs/zerolog"
)

// Reporter receives every terminal outcome as soon as it is known
type Reporter interface {
	LinkResult(result types.LinkResult)
}

// Options configures a Replacer
type Options struct {
	// DryRun reports intended links without touching the filesystem
	DryRun bool

	// Confirmer is asked before each replacement. A nil Confirmer declines
	// everything.
	Confirmer types.Confirmer

	// Reporter is optional
	Reporter Reporter
}

// Replacer replaces non-canonical class members with symlinks
type Replacer struct {
	fsys   types.FS
	opts   Options
	logger zerolog.Logger
}

// New creates a Replacer operating on fsys
func New(fsys types.FS, opts Options) *Replacer {
	return &Replacer{
		fsys:   fsys,
		opts:   opts,
		logger: logging.GetLogger("replacer"),
	}
}

// Replace processes every class with two or more members. sizes provides the
// original size of each path for the reclaimed-bytes accounting.
func (r *Replacer) Replace(classes []types.EquivalenceClass, sizes map[string]int64) []types.LinkResult {
	var results []types.LinkResult
	for _, class := range classes {
		canonical := class.Canonical()
		for _, path := range class.Duplicates() {
			result := r.replaceOne(path, canonical, sizes[path])
			if r.opts.Reporter != nil {
				r.opts.Reporter.LinkResult(result)
			}
			results = append(results, result)
		}
	}
	return results
}

func (r *Replacer) replaceOne(path, canonical string, size int64) types.LinkResult {
	result := types.LinkResult{
		Path:      path,
		Canonical: canonical,
		Target:    LinkTarget(path, canonical),
		Size:      size,
		Outcome:   types.OutcomePending,
	}
	logger := r.logger.With().Str("path", path).Str("canonical", canonical).Logger()

	if r.opts.DryRun {
		result.Outcome = types.OutcomeDryRun
		logger.Debug().Msg("Dry run, not linking")
		return result
	}

	if r.opts.Confirmer == nil || !r.opts.Confirmer.Confirm(path, canonical) {
		result.Outcome = types.OutcomeSkipped
		logger.Debug().Msg("Replacement declined")
		return result
	}

	if err := r.fsys.Remove(path); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		result.Outcome = types.OutcomeFailed
		result.Err = errors.Wrapf(err, errors.ErrRemove, "cannot remove %s", path).
			WithDetail("path", path)
		logger.Warn().Err(err).Msg("Failed to remove duplicate")
		return result
	}

	if err := r.fsys.Symlink(result.Target, path); err != nil {
		result.Outcome = types.OutcomeFailed
		result.Err = errors.Wrapf(err, errors.ErrSymlinkCreate, "cannot link %s to %s", path, result.Target).
			WithDetail("path", path).
			WithDetail("target", result.Target)
		logger.Warn().Err(err).Msg("Failed to create symlink")
		return result
	}

	result.Outcome = types.OutcomeLinked
	logger.Info().Int64("size", size).Msg("Replaced duplicate with symlink")
	return result
}

// LinkTarget returns the symlink content that makes path resolve to
// canonical. Both are relative to the same root; the result is relative to
// path's directory.
func LinkTarget(path, canonical string) string {
	target, err := filepath.Rel(filepath.Dir(path), canonical)
	if err != nil {
		// Both paths share a root, so Rel only fails on mixed abs/rel input
		return canonical
	}
	return target
}
