package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vinifborgess/auto-doc-pbi/internal/files/filesystem"
	"github.com/vinifborgess/auto-doc-pbi/pkg/pbidoc"
)

// Accessor opens template archives and extracts the model schema payload.
// The zero value is not usable; construct with NewAccessor.
type Accessor struct {
	fsProvider filesystem.FileSystemProvider
	logger     pbidoc.Logger
}

// NewAccessor creates an Accessor reading through the given filesystem
// provider. Panics if fsProvider or logger is nil.
func NewAccessor(fsProvider filesystem.FileSystemProvider, logger pbidoc.Logger) *Accessor {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Accessor{
		fsProvider: fsProvider,
		logger:     logger,
	}
}

// ExtractSchemaPayload opens the archive at path, locates the
// DataModelSchema member, and returns its raw bytes.
//
// The member is materialized to a scoped temporary directory while being
// read; the directory is removed on every exit path, including read
// failures.
//
// Error cases (all matchable with errors.Is):
//   - pbidoc.ErrNotAnArchive: the file is unreadable or not a zip container
//   - pbidoc.ErrSchemaMemberNotFound: the container has no schema member
//   - pbidoc.ErrArchiveRead: I/O failure while extracting the member
func (a *Accessor) ExtractSchemaPayload(path string) ([]byte, error) {
	data, err := a.fsProvider.ReadFile(path)
	if err != nil {
		return nil, &Error{Kind: pbidoc.ErrNotAnArchive, Path: path, Err: err}
	}

	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &Error{Kind: pbidoc.ErrNotAnArchive, Path: path, Err: err}
	}

	member := locateSchemaMember(reader)
	if member == nil {
		return nil, &Error{Kind: pbidoc.ErrSchemaMemberNotFound, Path: path}
	}
	a.logger.Verbose("Found schema member %q (%d bytes compressed)", member.Name, member.CompressedSize64)

	payload, err := a.materializeAndRead(member)
	if err != nil {
		return nil, &Error{Kind: pbidoc.ErrArchiveRead, Path: path, Err: err}
	}

	a.logger.Verbose("Extracted schema payload: %d bytes", len(payload))
	return payload, nil
}

// locateSchemaMember finds the DataModelSchema entry at the archive root.
// Power BI writes the member without a directory prefix; tolerate a
// leading "./" from repacked archives.
func locateSchemaMember(r *zip.Reader) *zip.File {
	for _, f := range r.File {
		name := filepath.ToSlash(f.Name)
		if name == pbidoc.SchemaMemberName || name == "./"+pbidoc.SchemaMemberName {
			return f
		}
	}
	return nil
}

// materializeAndRead extracts the member to a temporary file, reads it
// back in full, and removes the temporary directory before returning.
func (a *Accessor) materializeAndRead(member *zip.File) ([]byte, error) {
	tempDir, err := os.MkdirTemp("", "pbidoc-extract-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer func() {
		if rmErr := os.RemoveAll(tempDir); rmErr != nil {
			a.logger.Error("Failed to remove temp directory %s: %v", tempDir, rmErr)
		}
	}()

	tempPath := filepath.Join(tempDir, pbidoc.SchemaMemberName)
	if err := extractMember(member, tempPath); err != nil {
		return nil, err
	}

	payload, err := os.ReadFile(tempPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read extracted member: %w", err)
	}
	return payload, nil
}

func extractMember(member *zip.File, dest string) error {
	src, err := member.Open()
	if err != nil {
		return fmt.Errorf("failed to open archive member: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer out.Close()

	// LimitReader guards against decompression bombs: a member whose
	// inflated size exceeds the cap is treated as a read failure.
	n, err := io.Copy(out, io.LimitReader(src, pbidoc.MaxSchemaPayloadSize+1))
	if err != nil {
		return fmt.Errorf("failed to extract archive member: %w", err)
	}
	if n > pbidoc.MaxSchemaPayloadSize {
		return fmt.Errorf("schema member exceeds maximum size of %d bytes", pbidoc.MaxSchemaPayloadSize)
	}
	return nil
}
