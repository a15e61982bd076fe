package types

// FileEntry is a regular file discovered under the scan root
type FileEntry struct {
	// Path is relative to the scan root
	Path string

	// Size is the byte size recorded at discovery time
	Size int64
}

// SizeIndex maps entry paths to their sizes
func SizeIndex(entries []FileEntry) map[string]int64 {
	sizes := make(map[string]int64, len(entries))
	for _, e := range entries {
		sizes[e.Path] = e.Size
	}
	return sizes
}

// TotalSize sums the sizes of all entries
func TotalSize(entries []FileEntry) int64 {
	var total int64
	for _, e := range entries {
		total += e.Size
	}
	return total
}
