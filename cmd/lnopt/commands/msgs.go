package commands

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort = "Replace duplicate files with symlinks"
	MsgRootUse   = "lnopt [flags] <directory>"

	MsgProgressTitle = "Fingerprinting"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagMethod      = "Fingerprint method: SHA1, MD5, SHA256, SIZE or CONTENT"
	MsgFlagSkipSmall   = "Ignore files smaller than this many bytes"
	MsgFlagJobs        = "Number of parallel fingerprint workers"
	MsgFlagDryRun      = "Only report the links that would be created"
	MsgFlagYes         = "Replace without asking for confirmation"
	MsgFlagConfig      = "Config file (default $XDG_CONFIG_HOME/lnopt/config.toml)"
	MsgFlagPrintConfig = "Print the effective configuration as TOML and exit"
	MsgFlagSummary     = "Write a machine-readable summary to stdout: none or yaml"
	MsgFlagColor       = "Colour diagnostics: auto, term or text"

	// Error messages
	MsgErrLoadConfig  = "failed to load configuration: %w"
	MsgErrPrintConfig = "failed to print configuration: %w"
	MsgErrSummary     = "failed to write summary: %w"
	MsgErrArgs        = "expected exactly one directory, got %d arguments"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")
)
