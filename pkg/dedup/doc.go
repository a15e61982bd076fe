// Package dedup runs a complete deduplication pass over one directory.
//
// A run is a fixed sequence of phases:
//
//	scan → fingerprint → group → replace
//
// Scanning and replacement are sequential; fingerprinting runs on a bounded
// worker pool. Every phase reports through a report.Reporter and the run
// ends with a types.RunStatistics summary. Only setup problems abort a run:
// per-file failures in the later phases are recorded and the run goes on.
package dedup
