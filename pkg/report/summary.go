package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/lnopt/pkg/types"
	"gopkg.in/yaml.v3"
)

// SummaryFormat selects the machine-readable summary written after a run
type SummaryFormat string

const (
	SummaryNone SummaryFormat = "none"
	SummaryYAML SummaryFormat = "yaml"
)

// ParseSummaryFormat parses a --summary value
func ParseSummaryFormat(s string) (SummaryFormat, error) {
	switch f := SummaryFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "", SummaryNone:
		return SummaryNone, nil
	case SummaryYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown summary format %q (expected none or yaml)", s)
	}
}

// Summary is the machine-readable record of one run
type Summary struct {
	Root       string              `yaml:"root"`
	Statistics types.RunStatistics `yaml:"statistics"`
	Links      []LinkSummary       `yaml:"links,omitempty"`
}

// LinkSummary is one replacement outcome
type LinkSummary struct {
	Path      string `yaml:"path"`
	Canonical string `yaml:"canonical"`
	Target    string `yaml:"target"`
	Size      int64  `yaml:"size"`
	Outcome   string `yaml:"outcome"`
	Error     string `yaml:"error,omitempty"`
}

// NewSummary builds a Summary from the run results
func NewSummary(root string, stats *types.RunStatistics, results []types.LinkResult) Summary {
	s := Summary{Root: root, Statistics: *stats}
	for _, res := range results {
		ls := LinkSummary{
			Path:      res.Path,
			Canonical: res.Canonical,
			Target:    res.Target,
			Size:      res.Size,
			Outcome:   string(res.Outcome),
		}
		if res.Err != nil {
			ls.Error = res.Err.Error()
		}
		s.Links = append(s.Links, ls)
	}
	return s
}

// Write encodes s to w in format; SummaryNone writes nothing
func (s Summary) Write(w io.Writer, format SummaryFormat) error {
	switch format {
	case SummaryNone, "":
		return nil
	case SummaryYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("failed to encode summary: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown summary format %q", format)
	}
}
