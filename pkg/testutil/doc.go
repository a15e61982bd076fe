// Package testutil provides utilities for testing lnopt components.
//
// Key components:
//   - Tree: writes a file tree into a t.TempDir() and returns a rooted types.FS
//   - FaultyFS: wraps a types.FS and injects errors for selected paths
//   - Assertions for symlinks and regular files
//
// All test data should be defined inline, not in external files. Tests use a
// real temporary filesystem because symlink and Lstat semantics matter.
package testutil
