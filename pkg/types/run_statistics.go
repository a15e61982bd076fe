package types

// RunStatistics summarises one deduplication run
type RunStatistics struct {
	Method Method `yaml:"method"`
	DryRun bool   `yaml:"dry_run"`

	// ScannedFiles counts every regular file found
	ScannedFiles int `yaml:"scanned_files"`
	// CandidateFiles counts files at or above the size threshold
	CandidateFiles int   `yaml:"candidate_files"`
	CandidateBytes int64 `yaml:"candidate_bytes"`
	MinSize        int64 `yaml:"min_size"`

	FingerprintFailures int `yaml:"fingerprint_failures"`

	// UniqueClasses counts equivalence classes, singletons included
	UniqueClasses    int `yaml:"unique_classes"`
	DuplicateClasses int `yaml:"duplicate_classes"`

	Linked  int `yaml:"linked"`
	Skipped int `yaml:"skipped"`
	Planned int `yaml:"planned"`
	Failed  int `yaml:"failed"`

	// ReclaimableBytes sums the sizes of every non-canonical member
	ReclaimableBytes int64 `yaml:"reclaimable_bytes"`
	// ReclaimedBytes sums the sizes of files actually replaced
	ReclaimedBytes int64 `yaml:"reclaimed_bytes"`
}

// Record folds one replacement result into the statistics
func (s *RunStatistics) Record(r LinkResult) {
	switch r.Outcome {
	case OutcomeLinked:
		s.Linked++
		s.ReclaimedBytes += r.Size
	case OutcomeSkipped:
		s.Skipped++
	case OutcomeDryRun:
		s.Planned++
	case OutcomeFailed:
		s.Failed++
	}
}
