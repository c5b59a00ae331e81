package filesystem

import (
	"io/fs"
	"path"
	"path/filepath"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files.
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return false }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// MemoryFileSystem implements FileSystemProvider backed by a map.
// Paths are normalized to forward slashes so tests behave identically
// across platforms. Not safe for concurrent mutation.
type MemoryFileSystem struct {
	files map[string][]byte
}

// NewMemoryFileSystem creates an empty in-memory filesystem.
func NewMemoryFileSystem() *MemoryFileSystem {
	return &MemoryFileSystem{
		files: make(map[string][]byte),
	}
}

// AddFile stores content at the given path, replacing any existing file.
func (m *MemoryFileSystem) AddFile(p string, content []byte) {
	m.files[normalize(p)] = content
}

func (m *MemoryFileSystem) ReadFile(p string) ([]byte, error) {
	content, ok := m.files[normalize(p)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: p, Err: fs.ErrNotExist}
	}
	return content, nil
}

func (m *MemoryFileSystem) WriteFile(p string, data []byte) error {
	m.files[normalize(p)] = data
	return nil
}

func (m *MemoryFileSystem) Stat(p string) (FileInfo, error) {
	content, ok := m.files[normalize(p)]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: p, Err: fs.ErrNotExist}
	}
	return &memoryFileInfo{
		name:    path.Base(normalize(p)),
		size:    int64(len(content)),
		mode:    0o644,
		modTime: time.Time{},
	}, nil
}

func normalize(p string) string {
	return path.Clean(filepath.ToSlash(p))
}
