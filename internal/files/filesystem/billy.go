package filesystem

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

const defaultFileMode = 0o644

// BillyFS adapts a go-billy filesystem to the Provider interface.
type BillyFS struct {
	fs billy.Filesystem
}

// Compile-time interface check
var _ Provider = (*BillyFS)(nil)

// NewOS creates a Provider backed by the real filesystem. Callers are
// expected to hand it absolute paths; the CLI resolves user input with
// filepath.Abs before any filesystem access.
func NewOS() *BillyFS {
	return &BillyFS{fs: osfs.New("/")}
}

// NewMemory creates a Provider backed by an in-memory filesystem.
func NewMemory() *BillyFS {
	return &BillyFS{fs: memfs.New()}
}

// NewBilly wraps an arbitrary go-billy filesystem.
func NewBilly(fsys billy.Filesystem) *BillyFS {
	if fsys == nil {
		panic("filesystem: billy filesystem cannot be nil")
	}
	return &BillyFS{fs: fsys}
}

// ReadFile reads the file at the given path.
func (b *BillyFS) ReadFile(path string) ([]byte, error) {
	data, err := util.ReadFile(b.fs, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// WriteFile replaces the file at the given path with data, creating it if
// necessary.
func (b *BillyFS) WriteFile(path string, data []byte) error {
	if err := util.WriteFile(b.fs, path, data, defaultFileMode); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ReadDir returns the entries of the directory at the given path.
func (b *BillyFS) ReadDir(path string) ([]FileInfo, error) {
	infos, err := b.fs.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", path, err)
	}
	return infos, nil
}

// Stat returns file information for the given path.
func (b *BillyFS) Stat(path string) (FileInfo, error) {
	info, err := b.fs.Stat(path)
	if err != nil {
		return nil, err
	}
	return info, nil
}

// Exists reports whether the path exists.
func (b *BillyFS) Exists(path string) (bool, error) {
	_, err := b.fs.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case os.IsNotExist(err):
		return false, nil
	default:
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
}

// Walk traverses the tree rooted at root in lexical order.
func (b *BillyFS) Walk(root string, fn filepath.WalkFunc) error {
	return util.Walk(b.fs, root, fn)
}
