package types

import (
	"encoding/hex"
)

// Fingerprint is a comparable value derived from a file's content.
// Two files are equivalent iff their fingerprints are == under one method.
type Fingerprint struct {
	Method Method

	// Value holds the raw digest bytes, the raw content or the decimal size
	Value string
}

// String renders the fingerprint for reports.
// Digests render as hex, sizes as their decimal value, content as nothing.
func (f Fingerprint) String() string {
	switch {
	case f.Method.IsDigest():
		return hex.EncodeToString([]byte(f.Value))
	case f.Method == MethodSize:
		return f.Value
	default:
		return ""
	}
}
