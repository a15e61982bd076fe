package types

import (
	"fmt"
	"strings"
)

// Method selects how file content equivalence is decided
type Method string

const (
	// MethodSHA1 compares SHA-1 digests of the file content
	MethodSHA1 Method = "SHA1"

	// MethodMD5 compares MD5 digests of the file content
	MethodMD5 Method = "MD5"

	// MethodSHA256 compares SHA-256 digests of the file content
	MethodSHA256 Method = "SHA256"

	// MethodSize compares sizes only. Files of equal size are treated as
	// equal whatever their content; this is a fast approximation.
	MethodSize Method = "SIZE"

	// MethodContent compares the full raw content held in memory
	MethodContent Method = "CONTENT"
)

// DefaultMethod is used when no method is configured
const DefaultMethod = MethodSHA256

// Methods lists every supported method in display order
var Methods = []Method{MethodSHA1, MethodMD5, MethodSHA256, MethodSize, MethodContent}

// ParseMethod parses a method name case-insensitively
func ParseMethod(s string) (Method, error) {
	candidate := Method(strings.ToUpper(strings.TrimSpace(s)))
	for _, m := range Methods {
		if m == candidate {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown method %q (expected one of %s)", s, methodNames())
}

// IsDigest reports whether the fingerprint is a cryptographic digest
func (m Method) IsDigest() bool {
	switch m {
	case MethodSHA1, MethodMD5, MethodSHA256:
		return true
	default:
		return false
	}
}

// MemoryCaveat returns a warning for methods that hold whole files in memory
func (m Method) MemoryCaveat() string {
	if m == MethodContent {
		return "Using CONTENT method requires reading all files, which may cause out of memory error on large folders"
	}
	return ""
}

// String implements fmt.Stringer and pflag.Value
func (m Method) String() string {
	return string(m)
}

// Set implements pflag.Value
func (m *Method) Set(s string) error {
	parsed, err := ParseMethod(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Type implements pflag.Value
func (m Method) Type() string {
	return "method"
}

func methodNames() string {
	names := make([]string, len(Methods))
	for i, m := range Methods {
		names[i] = string(m)
	}
	return strings.Join(names, "|")
}
