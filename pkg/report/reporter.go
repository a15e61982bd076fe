package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/lnopt/pkg/types"
	"github.com/arthur-debert/lnopt/pkg/ui"
	"github.com/charmbracelet/lipgloss"
	"github.com/docker/go-units"
	"github.com/muesli/termenv"
)

const separator = "----------------------------------------"

type styles struct {
	header  lipgloss.Style
	hash    lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
}

// Reporter writes human-readable diagnostics
type Reporter struct {
	w      io.Writer
	styles styles
}

// New creates a Reporter on w. FormatAuto styles only colour terminals.
func New(w io.Writer, format ui.Format) *Reporter {
	renderer := lipgloss.NewRenderer(w)
	if format.Resolve(w) != ui.FormatTerminal {
		renderer.SetColorProfile(termenv.Ascii)
	}

	return &Reporter{
		w: w,
		styles: styles{
			header:  renderer.NewStyle().Bold(true),
			hash:    renderer.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}),
			success: renderer.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"}),
			failure: renderer.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FE5F86", Dark: "#FE5F86"}).Bold(true),
			muted:   renderer.NewStyle().Faint(true),
		},
	}
}

func (r *Reporter) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(r.w, format, args...)
}

// Warning prints a caveat the user should know about before the run
func (r *Reporter) Warning(msg string) {
	if msg == "" {
		return
	}
	r.printf("%s\n", r.styles.failure.Render(msg))
}

// Root announces the directory being processed
func (r *Reporter) Root(root string) {
	r.printf("Working in folder %s\n", root)
}

// Scanned prints the file counts after the scan
func (r *Reporter) Scanned(scanned, candidates int, candidateBytes, minSize int64) {
	r.printf("Found %d files\n", scanned)
	r.printf("Found %d files with total size %d bytes whose size is at least %d bytes\n",
		candidates, candidateBytes, minSize)
}

// Fingerprinting announces the fingerprint phase
func (r *Reporter) Fingerprinting(method types.Method, jobs int) {
	r.printf("Getting hashes using method %s with %d parallel jobs\n", method, jobs)
}

// FingerprintFailed names a file excluded from grouping
func (r *Reporter) FingerprintFailed(path string, err error) {
	r.printf("%s %s: %v\n", r.styles.failure.Render("Error fingerprinting"), path, err)
}

// Classes prints the unique count and every class sharing a fingerprint
func (r *Reporter) Classes(classes []types.EquivalenceClass, files int) {
	r.printf("Found %d unique files from %d files\n", len(classes), files)
	if len(classes) >= files {
		return
	}

	r.printf("%s\n", r.styles.header.Render("Same files:"))
	for _, class := range classes {
		if !class.IsDuplicate() {
			continue
		}
		if label := classLabel(class.Fingerprint); label != "" {
			r.printf("%s\n", r.styles.hash.Render(label))
		}
		r.printf("%s\n\n", strings.Join(class.Paths, "\n"))
	}
	r.printf("%s\n", separator)
}

func classLabel(fp types.Fingerprint) string {
	switch {
	case fp.Method.IsDigest():
		return fmt.Sprintf("Same files with hash %s:", fp)
	case fp.Method == types.MethodSize:
		return fmt.Sprintf("Same files with size %s:", fp)
	default:
		// raw content is not a useful label
		return ""
	}
}

// DryRun announces that no links will be created
func (r *Reporter) DryRun() {
	r.printf("%s\n", r.styles.header.Render("Dry run, not creating links"))
}

// LinkResult prints the terminal outcome of one replacement.
// It implements replacer.Reporter.
func (r *Reporter) LinkResult(res types.LinkResult) {
	switch res.Outcome {
	case types.OutcomeDryRun:
		r.printf("Linking %s => %s %s\n", res.Path, res.Canonical, r.styles.muted.Render("(Dry run)"))
	case types.OutcomeLinked:
		r.printf("Linking %s => %s ... %s\n", res.Path, res.Canonical, r.styles.success.Render("success"))
	case types.OutcomeFailed:
		r.printf("Linking %s => %s ... %s %v\n", res.Path, res.Canonical, r.styles.failure.Render("Error:"), res.Err)
	case types.OutcomeSkipped:
		r.printf("Skipped %s\n", res.Path)
	}
}

// Summary prints the final statistics
func (r *Reporter) Summary(stats *types.RunStatistics) {
	if stats.DryRun {
		r.printf("%d links planned, %s reclaimable (%d bytes)\n",
			stats.Planned, HumanSize(stats.ReclaimableBytes), stats.ReclaimableBytes)
	} else {
		r.printf("Linked %d files, skipped %d, failed %d; reclaimed %s (%d bytes)\n",
			stats.Linked, stats.Skipped, stats.Failed, HumanSize(stats.ReclaimedBytes), stats.ReclaimedBytes)
	}
	if stats.FingerprintFailures > 0 {
		r.printf("%d files could not be fingerprinted and were ignored\n", stats.FingerprintFailures)
	}
	r.printf("Done\n")
}

// HumanSize formats n bytes with binary units
func HumanSize(n int64) string {
	return units.BytesSize(float64(n))
}
