package types

// Outcome is the terminal state of one replacement candidate
type Outcome string

const (
	// OutcomePending is the initial state, never returned by the replacer
	OutcomePending Outcome = "pending"

	// OutcomeSkipped means confirmation was declined
	OutcomeSkipped Outcome = "skipped"

	// OutcomeDryRun means the replacement was only reported
	OutcomeDryRun Outcome = "dry-run"

	// OutcomeLinked means the file now is a symlink to its canonical file
	OutcomeLinked Outcome = "linked"

	// OutcomeFailed means removal or link creation failed
	OutcomeFailed Outcome = "failed"
)

// IsTerminal reports whether no further transition can happen
func (o Outcome) IsTerminal() bool {
	return o != OutcomePending && o != ""
}

// LinkResult records what happened to one non-canonical file
type LinkResult struct {
	Path      string
	Canonical string
	// Target is the symlink content written (or that would be written)
	Target  string
	Size    int64
	Outcome Outcome
	Err     error
}
