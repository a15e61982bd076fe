package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/lnopt/pkg/types"
)

// osFS implements types.FS using the OS filesystem below root
type osFS struct {
	root string
}

// NewOS creates a new OS filesystem implementation rooted at root.
// root must exist and be a directory.
func NewOS(root string) (types.FS, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &fs.PathError{Op: "open", Path: abs, Err: fmt.Errorf("not a directory")}
	}
	return &osFS{root: abs}, nil
}

func (o *osFS) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(o.root, name)
}

func (o *osFS) Root() string {
	return o.root
}

func (o *osFS) Lstat(name string) (fs.FileInfo, error) {
	return os.Lstat(o.path(name))
}

func (o *osFS) Open(name string) (fs.File, error) {
	return os.Open(o.path(name))
}

func (o *osFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(o.path(name))
}

func (o *osFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(o.path(name))
}

// Symlink creates newname pointing at oldname. oldname is written verbatim,
// so a relative target is resolved by the OS against newname's directory.
func (o *osFS) Symlink(oldname, newname string) error {
	return os.Symlink(oldname, o.path(newname))
}

func (o *osFS) Remove(name string) error {
	return os.Remove(o.path(name))
}
