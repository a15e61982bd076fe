package testutil

import (
	"io/fs"
	"sync"

	"github.com/arthur-debert/lnopt/pkg/types"
)

// FaultyFS wraps a types.FS and fails selected operations on selected paths
type FaultyFS struct {
	types.FS

	mu     sync.Mutex
	faults map[string]map[string]error
	calls  map[string]int
}

// NewFaultyFS wraps inner with no faults configured
func NewFaultyFS(inner types.FS) *FaultyFS {
	return &FaultyFS{
		FS:     inner,
		faults: make(map[string]map[string]error),
		calls:  make(map[string]int),
	}
}

// Fail makes op ("open", "readfile", "readdir", "remove", "symlink", "lstat")
// on name return err
func (f *FaultyFS) Fail(op, name string, err error) *FaultyFS {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.faults[op] == nil {
		f.faults[op] = make(map[string]error)
	}
	f.faults[op][name] = err
	return f
}

// Calls returns how often op was invoked on name
func (f *FaultyFS) Calls(op, name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op+":"+name]
}

func (f *FaultyFS) check(op, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[op+":"+name]++
	return f.faults[op][name]
}

func (f *FaultyFS) Open(name string) (fs.File, error) {
	if err := f.check("open", name); err != nil {
		return nil, err
	}
	return f.FS.Open(name)
}

func (f *FaultyFS) ReadFile(name string) ([]byte, error) {
	if err := f.check("readfile", name); err != nil {
		return nil, err
	}
	return f.FS.ReadFile(name)
}

func (f *FaultyFS) Lstat(name string) (fs.FileInfo, error) {
	if err := f.check("lstat", name); err != nil {
		return nil, err
	}
	return f.FS.Lstat(name)
}

func (f *FaultyFS) Remove(name string) error {
	if err := f.check("remove", name); err != nil {
		return err
	}
	return f.FS.Remove(name)
}

func (f *FaultyFS) Symlink(oldname, newname string) error {
	if err := f.check("symlink", newname); err != nil {
		return err
	}
	return f.FS.Symlink(oldname, newname)
}

func (f *FaultyFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if err := f.check("readdir", name); err != nil {
		return nil, err
	}
	return f.FS.ReadDir(name)
}
