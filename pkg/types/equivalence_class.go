package types

// EquivalenceClass is the set of files sharing one fingerprint.
// Paths are sorted ascending; the first one is the canonical member.
type EquivalenceClass struct {
	Fingerprint Fingerprint
	Paths       []string
}

// Canonical returns the member that is retained
func (c EquivalenceClass) Canonical() string {
	if len(c.Paths) == 0 {
		return ""
	}
	return c.Paths[0]
}

// Duplicates returns the members that are candidates for replacement
func (c EquivalenceClass) Duplicates() []string {
	if len(c.Paths) < 2 {
		return nil
	}
	return c.Paths[1:]
}

// IsDuplicate reports whether the class has more than one member
func (c EquivalenceClass) IsDuplicate() bool {
	return len(c.Paths) > 1
}
