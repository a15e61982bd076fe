// Package filesystem provides filesystem implementations for lnopt.
//
// This package contains the types.FS implementation backed by the OS,
// rooted at the directory being deduplicated. Every name handed to it is
// resolved relative to that root, so no component has to change the
// process working directory.
package filesystem
