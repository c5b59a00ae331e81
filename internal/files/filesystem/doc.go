// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// The FileSystemProvider interface covers the small set of file operations
// the documentation pipeline performs. Two implementations are provided:
//
//   - OSFileSystem: the real filesystem (production default)
//   - MemoryFileSystem: a map-backed filesystem for tests
//
// Keeping the surface this small lets every pipeline test run without
// touching the disk except where temp-file behavior is itself under test.
package filesystem
