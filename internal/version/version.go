package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/arthur-debert/lnopt/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/lnopt/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/lnopt/internal/version.Date={{.Date}}
)

// String renders the full build information
func String() string {
	return Version + " (commit " + Commit + ", built " + Date + ")"
}
