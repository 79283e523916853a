package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// Provider abstracts the filesystem operations safpack needs: listing a
// bitstream directory, copying bitstreams into packages, and re-reading a
// package tree for validation. Implementations exist for the OS filesystem
// and for in-memory testing.
type Provider interface {
	// ReadDir reads the directory entries at the given path.
	ReadDir(path string) ([]FileInfo, error)

	// ReadFile reads a specific file at the given path.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to the given path, creating or truncating it.
	WriteFile(path string, data []byte, perm fs.FileMode) error

	// MkdirAll creates a directory along with any missing parents.
	MkdirAll(path string, perm fs.FileMode) error

	// Stat returns file information for the given path.
	Stat(path string) (FileInfo, error)

	// Rename moves a file from oldPath to newPath.
	Rename(oldPath, newPath string) error
}
