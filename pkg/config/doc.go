// Package config loads lnopt settings from layered sources.
//
// Precedence, lowest first:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user config file, $XDG_CONFIG_HOME/lnopt/config.toml or
//     config.yaml, or the file given with --config
//  3. LNOPT_* environment variables (LNOPT_SKIP_SMALL=0)
//  4. command line flags that were explicitly set
//
// The merged tree is unmarshalled into Config and validated.
package config
