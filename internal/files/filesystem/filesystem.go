package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// FileSystemProvider abstracts the file operations the pipeline needs:
// reading an input archive, writing the rendered document, and probing
// for an optional config file. The OS implementation is the default;
// the in-memory implementation backs tests.
type FileSystemProvider interface {
	// ReadFile reads the file at the given path in full.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to the given path, creating or truncating it.
	WriteFile(path string, data []byte) error

	// Stat returns file information for the given path.
	Stat(path string) (FileInfo, error)
}
