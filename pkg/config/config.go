package config

import (
	"fmt"

	"github.com/arthur-debert/lnopt/pkg/errors"
	"github.com/arthur-debert/lnopt/pkg/report"
	"github.com/arthur-debert/lnopt/pkg/types"
	"github.com/arthur-debert/lnopt/pkg/ui"
	gotoml "github.com/pelletier/go-toml/v2"
)

// Config holds every setting of a run
type Config struct {
	Method    types.Method `koanf:"method" toml:"method"`
	SkipSmall int64        `koanf:"skip_small" toml:"skip_small"`
	Jobs      int          `koanf:"jobs" toml:"jobs"`
	DryRun    bool         `koanf:"dry_run" toml:"dry_run"`
	AssumeYes bool         `koanf:"assume_yes" toml:"assume_yes"`
	Summary   string       `koanf:"summary" toml:"summary"`
	Color     string       `koanf:"color" toml:"color"`
}

// Validate normalises enumerated values and rejects impossible settings
func (c *Config) Validate() error {
	if c.Method == "" {
		c.Method = types.DefaultMethod
	}
	method, err := types.ParseMethod(string(c.Method))
	if err != nil {
		return errors.Wrap(err, errors.ErrInvalidInput, "invalid method").
			WithDetail("method", string(c.Method))
	}
	c.Method = method

	if c.SkipSmall < 0 {
		return errors.Newf(errors.ErrInvalidInput, "skip_small must not be negative, got %d", c.SkipSmall)
	}
	if c.Jobs < 1 {
		return errors.Newf(errors.ErrInvalidInput, "jobs must be at least 1, got %d", c.Jobs)
	}

	summary, err := report.ParseSummaryFormat(c.Summary)
	if err != nil {
		return errors.Wrap(err, errors.ErrInvalidInput, "invalid summary format")
	}
	c.Summary = string(summary)

	color, err := ui.ParseFormat(c.Color)
	if err != nil {
		return errors.Wrap(err, errors.ErrInvalidInput, "invalid color mode")
	}
	c.Color = color.String()

	return nil
}

// SummaryFormat returns the validated summary format
func (c *Config) SummaryFormat() report.SummaryFormat {
	f, _ := report.ParseSummaryFormat(c.Summary)
	return f
}

// Format returns the validated colour mode
func (c *Config) Format() ui.Format {
	f, _ := ui.ParseFormat(c.Color)
	return f
}

// ToTOML renders the effective configuration
func (c *Config) ToTOML() (string, error) {
	data, err := gotoml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal configuration: %w", err)
	}
	return string(data), nil
}
