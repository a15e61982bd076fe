// Package grouper partitions fingerprinted files into equivalence classes.
package grouper

import (
	"sort"

	"github.com/arthur-debert/lnopt/pkg/types"
)

// Classes is a deterministic list of equivalence classes, ordered by
// canonical path
type Classes []types.EquivalenceClass

// Group builds one class per distinct fingerprint. Paths within a class are
// sorted ascending, so the canonical member is the smallest path whatever
// order the fingerprints were computed in.
func Group(fingerprints map[string]types.Fingerprint) Classes {
	byFingerprint := make(map[types.Fingerprint][]string)
	for path, fp := range fingerprints {
		byFingerprint[fp] = append(byFingerprint[fp], path)
	}

	classes := make(Classes, 0, len(byFingerprint))
	for fp, paths := range byFingerprint {
		sort.Strings(paths)
		classes = append(classes, types.EquivalenceClass{
			Fingerprint: fp,
			Paths:       paths,
		})
	}

	sort.Slice(classes, func(i, j int) bool {
		return classes[i].Canonical() < classes[j].Canonical()
	})
	return classes
}

// Duplicates returns the classes with more than one member
func (c Classes) Duplicates() Classes {
	var dups Classes
	for _, class := range c {
		if class.IsDuplicate() {
			dups = append(dups, class)
		}
	}
	return dups
}

// Members counts the files across all classes
func (c Classes) Members() int {
	n := 0
	for _, class := range c {
		n += len(class.Paths)
	}
	return n
}

// Reclaimable sums the sizes of every non-canonical member
func (c Classes) Reclaimable(sizes map[string]int64) int64 {
	var total int64
	for _, class := range c {
		for _, p := range class.Duplicates() {
			total += sizes[p]
		}
	}
	return total
}
