package types

import (
	"io/fs"
)

// FS defines the filesystem operations lnopt needs.
// All names are relative to the root the implementation was created for.
type FS interface {
	// File operations
	Lstat(name string) (fs.FileInfo, error)
	Open(name string) (fs.File, error)
	ReadFile(name string) ([]byte, error)

	// Directory operations
	ReadDir(name string) ([]fs.DirEntry, error)

	// Symlink operations
	Symlink(oldname, newname string) error

	// Other operations
	Remove(name string) error

	// Root returns the absolute directory all names are resolved against
	Root() string
}

// Confirmer decides whether a duplicate may be replaced by a link to its
// canonical file.
type Confirmer interface {
	Confirm(path, canonical string) bool
}

// ConfirmFunc adapts a plain function to the Confirmer interface
type ConfirmFunc func(path, canonical string) bool

// Confirm calls f(path, canonical)
func (f ConfirmFunc) Confirm(path, canonical string) bool {
	return f(path, canonical)
}
