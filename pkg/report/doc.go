// Package report writes lnopt's diagnostic output.
//
// Everything a run has to say goes through a Reporter bound to the
// diagnostic stream (stderr in the CLI): file counts, the equivalence
// classes that share a fingerprint, the outcome of every replacement and a
// final summary. Styling is applied only when the stream is a colour
// terminal. A machine-readable summary can additionally be written as YAML.
package report
