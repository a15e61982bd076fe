// Package types defines the core types and interfaces used throughout lnopt.
// This includes the FS abstraction the scanner, fingerprint pool and link
// replacer operate on, as well as data structures like FileEntry,
// Fingerprint, EquivalenceClass and RunStatistics.
package types
