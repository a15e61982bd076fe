// Package pool computes fingerprints for many files with bounded parallelism.
//
// The pool only owns the concurrency: it runs a fingerprint.Strategy for
// every entry on at most Jobs goroutines and collects path-keyed results.
// Progress display is an Observer supplied by the caller.
package pool

import (
	"context"
	"sort"
	"sync"

	"github.com/arthur-debert/lnopt/pkg/errors"
	"github.com/arthur-debert/lnopt/pkg/fingerprint"
	"github.com/arthur-debert/lnopt/pkg/logging"
	"github.com/arthur-debert/lnopt/pkg/types"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

// Observer is notified once per processed file, from the worker goroutine
// that processed it. Implementations must be safe for concurrent use when
// Jobs > 1.
type Observer interface {
	FileDone(path string, err error)
}

// Options configures a pool run
type Options struct {
	Jobs     int
	Observer Observer
}

// Result associates every submitted path with either a fingerprint or an error
type Result struct {
	Fingerprints map[string]types.Fingerprint
	Errors       map[string]error
}

// Err folds all per-file errors into one error, in path order.
// It returns nil when every file was fingerprinted.
func (r *Result) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	paths := make([]string, 0, len(r.Errors))
	for p := range r.Errors {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var merr *multierror.Error
	for _, p := range paths {
		merr = multierror.Append(merr, r.Errors[p])
	}
	return merr.ErrorOrNil()
}

// Run fingerprints every entry and waits for all of them. A failing file is
// recorded in Result.Errors and never stops the others.
func Run(ctx context.Context, fsys types.FS, strategy fingerprint.Strategy, entries []types.FileEntry, opts Options) (*Result, error) {
	if opts.Jobs < 1 {
		return nil, errors.Newf(errors.ErrInvalidInput, "jobs must be at least 1, got %d", opts.Jobs)
	}

	logger := logging.GetLogger("pool")
	done := logging.LogOperationStart(logger, "fingerprint")
	defer done()

	result := &Result{
		Fingerprints: make(map[string]types.Fingerprint, len(entries)),
		Errors:       make(map[string]error),
	}

	var mu sync.Mutex
	record := func(path string, fp types.Fingerprint, err error) {
		mu.Lock()
		if err != nil {
			result.Errors[path] = err
		} else {
			result.Fingerprints[path] = fp
		}
		mu.Unlock()

		if opts.Observer != nil {
			opts.Observer.FileDone(path, err)
		}
	}

	var group errgroup.Group
	group.SetLimit(opts.Jobs)
	for _, entry := range entries {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				record(entry.Path, types.Fingerprint{}, err)
				return nil
			}
			fp, err := strategy.Fingerprint(fsys, entry)
			if err != nil {
				logger.Debug().Err(err).Str("path", entry.Path).Msg("Fingerprint failed")
			}
			record(entry.Path, fp, err)
			return nil
		})
	}
	// Workers never return errors; failures live in result.Errors
	_ = group.Wait()

	logger.Debug().
		Int("files", len(entries)).
		Int("failed", len(result.Errors)).
		Int("jobs", opts.Jobs).
		Str("method", string(strategy.Method())).
		Msg("Fingerprinting completed")

	return result, nil
}
