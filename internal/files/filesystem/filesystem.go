package filesystem

import (
	"io/fs"
	"path/filepath"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This keeps callers compatible with the fs.FS ecosystem while giving the
// abstraction layer a stable local name.
type FileInfo = fs.FileInfo

// Provider abstracts filesystem access for document reads, discovery, and
// change-only writes.
type Provider interface {
	// ReadFile reads the file at the given path.
	ReadFile(path string) ([]byte, error)

	// WriteFile replaces the file at the given path with data.
	WriteFile(path string, data []byte) error

	// ReadDir returns the entries of the directory at the given path.
	ReadDir(path string) ([]FileInfo, error)

	// Stat returns file information for the given path.
	Stat(path string) (FileInfo, error)

	// Exists reports whether the path exists.
	Exists(path string) (bool, error)

	// Walk traverses the tree rooted at root, calling fn for every file
	// and directory. Walk order is deterministic (lexical).
	Walk(root string, fn filepath.WalkFunc) error
}
