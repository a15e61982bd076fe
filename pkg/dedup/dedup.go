package dedup

import (
	"context"
	"io"

	"github.com/arthur-debert/lnopt/pkg/errors"
	"github.com/arthur-debert/lnopt/pkg/filesystem"
	"github.com/arthur-debert/lnopt/pkg/fingerprint"
	"github.com/arthur-debert/lnopt/pkg/grouper"
	"github.com/arthur-debert/lnopt/pkg/logging"
	"github.com/arthur-debert/lnopt/pkg/pool"
	"github.com/arthur-debert/lnopt/pkg/replacer"
	"github.com/arthur-debert/lnopt/pkg/report"
	"github.com/arthur-debert/lnopt/pkg/scanner"
	"github.com/arthur-debert/lnopt/pkg/types"
	"github.com/arthur-debert/lnopt/pkg/ui"
)

// ProgressFunc starts a progress display for total files. stop is called
// once fingerprinting has finished.
type ProgressFunc func(total int) (observer pool.Observer, stop func())

// Options contains everything a run needs
type Options struct {
	Root    string
	Method  types.Method
	MinSize int64
	Jobs    int
	DryRun  bool

	// Confirmer approves each replacement; nil declines every one
	Confirmer types.Confirmer

	// Reporter receives human-readable diagnostics; nil discards them
	Reporter *report.Reporter

	// Progress is optional
	Progress ProgressFunc

	// FileSystem overrides the OS filesystem rooted at Root
	FileSystem types.FS
}

// Result is everything a run produced
type Result struct {
	Root       string
	Statistics types.RunStatistics
	Classes    grouper.Classes
	Links      []types.LinkResult

	// FingerprintErrors folds every per-file fingerprint failure, or is nil
	FingerprintErrors error
}

// Validate checks options that do not need the filesystem
func (o Options) Validate() error {
	if o.Root == "" && o.FileSystem == nil {
		return errors.New(errors.ErrInvalidInput, "no directory given")
	}
	if _, err := types.ParseMethod(string(o.Method)); err != nil {
		return errors.Wrap(err, errors.ErrInvalidInput, "invalid method")
	}
	if o.MinSize < 0 {
		return errors.Newf(errors.ErrInvalidInput, "minimum size must not be negative, got %d", o.MinSize)
	}
	if o.Jobs < 1 {
		return errors.Newf(errors.ErrInvalidInput, "jobs must be at least 1, got %d", o.Jobs)
	}
	return nil
}

// Run scans Root, groups its files by fingerprint and replaces every
// duplicate with a symlink to its canonical file. The returned error is
// non-nil only for setup failures or cancellation.
func Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.GetLogger("dedup")
	logger.Info().
		Str("root", opts.Root).
		Str("method", string(opts.Method)).
		Int64("minSize", opts.MinSize).
		Int("jobs", opts.Jobs).
		Bool("dryRun", opts.DryRun).
		Msg("Starting deduplication")

	if err := opts.Validate(); err != nil {
		return nil, err
	}
	method, _ := types.ParseMethod(string(opts.Method))

	rep := opts.Reporter
	if rep == nil {
		rep = report.New(io.Discard, ui.FormatText)
	}

	fsys := opts.FileSystem
	if fsys == nil {
		var err error
		fsys, err = filesystem.NewOS(opts.Root)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrSetup, "cannot use %s", opts.Root).
				WithDetail("root", opts.Root)
		}
	}

	strategy, err := fingerprint.New(method)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Root: fsys.Root(),
		Statistics: types.RunStatistics{
			Method:  method,
			DryRun:  opts.DryRun,
			MinSize: opts.MinSize,
		},
	}
	stats := &result.Statistics

	rep.Warning(method.MemoryCaveat())
	rep.Root(result.Root)

	// Step 1: enumerate candidate files
	scan, err := scanner.Scan(fsys, opts.MinSize)
	if err != nil {
		return nil, err
	}
	stats.ScannedFiles = scan.Scanned
	stats.CandidateFiles = len(scan.Entries)
	stats.CandidateBytes = types.TotalSize(scan.Entries)
	rep.Scanned(stats.ScannedFiles, stats.CandidateFiles, stats.CandidateBytes, opts.MinSize)

	// Step 2: fingerprint on the worker pool
	rep.Fingerprinting(method, opts.Jobs)
	poolOpts := pool.Options{Jobs: opts.Jobs}
	if opts.Progress != nil && len(scan.Entries) > 0 {
		observer, stop := opts.Progress(len(scan.Entries))
		poolOpts.Observer = observer
		if stop != nil {
			defer stop()
		}
	}
	fingerprints, err := pool.Run(ctx, fsys, strategy, scan.Entries, poolOpts)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return result, errors.Wrap(err, errors.ErrInternal, "deduplication cancelled")
	}
	for _, entry := range scan.Entries {
		if ferr, failed := fingerprints.Errors[entry.Path]; failed {
			rep.FingerprintFailed(entry.Path, ferr)
		}
	}
	stats.FingerprintFailures = len(fingerprints.Errors)
	result.FingerprintErrors = fingerprints.Err()

	// Step 3: group; files that failed to fingerprint are in no class
	result.Classes = grouper.Group(fingerprints.Fingerprints)
	sizes := types.SizeIndex(scan.Entries)
	stats.UniqueClasses = len(result.Classes)
	stats.DuplicateClasses = len(result.Classes.Duplicates())
	stats.ReclaimableBytes = result.Classes.Reclaimable(sizes)
	rep.Classes(result.Classes, result.Classes.Members())

	// Step 4: replace duplicates
	if opts.DryRun {
		rep.DryRun()
	}
	r := replacer.New(fsys, replacer.Options{
		DryRun:    opts.DryRun,
		Confirmer: opts.Confirmer,
		Reporter:  rep,
	})
	result.Links = r.Replace(result.Classes.Duplicates(), sizes)
	for _, link := range result.Links {
		stats.Record(link)
	}

	rep.Summary(stats)

	logger.Info().
		Int("linked", stats.Linked).
		Int("skipped", stats.Skipped).
		Int("planned", stats.Planned).
		Int("failed", stats.Failed).
		Int64("reclaimedBytes", stats.ReclaimedBytes).
		Msg("Deduplication finished")

	return result, nil
}
