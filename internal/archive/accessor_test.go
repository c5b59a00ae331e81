package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vinifborgess/auto-doc-pbi/internal/files/filesystem"
	"github.com/vinifborgess/auto-doc-pbi/internal/logging"
	"github.com/vinifborgess/auto-doc-pbi/pkg/pbidoc"
)

// buildArchive assembles an in-memory zip with the given members.
func buildArchive(t *testing.T, members map[string][]byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range members {
		f, err := w.Create(name)
		if err != nil {
			t.Fatalf("Failed to create archive member %s: %v", name, err)
		}
		if _, err := f.Write(content); err != nil {
			t.Fatalf("Failed to write archive member %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to finalize archive: %v", err)
	}
	return buf.Bytes()
}

func newTestAccessor(path string, archiveBytes []byte) *Accessor {
	mfs := filesystem.NewMemoryFileSystem()
	mfs.AddFile(path, archiveBytes)
	return NewAccessor(mfs, logging.NewNullLogger())
}

// leftoverTempDirs counts pbidoc extraction temp dirs currently present.
func leftoverTempDirs(t *testing.T) int {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(os.TempDir(), "pbidoc-extract-*"))
	if err != nil {
		t.Fatalf("Glob failed: %v", err)
	}
	return len(matches)
}

func TestExtractSchemaPayload_Success(t *testing.T) {
	schema := []byte(`{"model":{"tables":[]}}`)
	archiveBytes := buildArchive(t, map[string][]byte{
		"DataModelSchema":     schema,
		"Report/Layout":       []byte("{}"),
		"[Content_Types].xml": []byte("<Types/>"),
	})

	accessor := newTestAccessor("/in/report.pbit", archiveBytes)
	payload, err := accessor.ExtractSchemaPayload("/in/report.pbit")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !bytes.Equal(payload, schema) {
		t.Errorf("Payload mismatch: got %q", payload)
	}
}

func TestExtractSchemaPayload_DotSlashPrefixedMember(t *testing.T) {
	schema := []byte(`{"model":{}}`)
	archiveBytes := buildArchive(t, map[string][]byte{
		"./DataModelSchema": schema,
	})

	accessor := newTestAccessor("/in/repacked.pbit", archiveBytes)
	payload, err := accessor.ExtractSchemaPayload("/in/repacked.pbit")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !bytes.Equal(payload, schema) {
		t.Errorf("Payload mismatch: got %q", payload)
	}
}

func TestExtractSchemaPayload_SchemaMemberNotFound(t *testing.T) {
	archiveBytes := buildArchive(t, map[string][]byte{
		"Report/Layout": []byte("{}"),
	})

	accessor := newTestAccessor("/in/no-schema.pbit", archiveBytes)
	_, err := accessor.ExtractSchemaPayload("/in/no-schema.pbit")
	if !errors.Is(err, pbidoc.ErrSchemaMemberNotFound) {
		t.Errorf("Expected ErrSchemaMemberNotFound, got: %v", err)
	}
}

func TestExtractSchemaPayload_NotAnArchive(t *testing.T) {
	accessor := newTestAccessor("/in/garbage.pbit", []byte("this is not a zip file"))

	_, err := accessor.ExtractSchemaPayload("/in/garbage.pbit")
	if !errors.Is(err, pbidoc.ErrNotAnArchive) {
		t.Errorf("Expected ErrNotAnArchive, got: %v", err)
	}
}

func TestExtractSchemaPayload_MissingInputFile(t *testing.T) {
	accessor := NewAccessor(filesystem.NewMemoryFileSystem(), logging.NewNullLogger())

	_, err := accessor.ExtractSchemaPayload("/in/absent.pbit")
	if !errors.Is(err, pbidoc.ErrNotAnArchive) {
		t.Errorf("Expected ErrNotAnArchive for unreadable input, got: %v", err)
	}
}

func TestExtractSchemaPayload_NoTempLeakOnSuccess(t *testing.T) {
	before := leftoverTempDirs(t)

	archiveBytes := buildArchive(t, map[string][]byte{
		"DataModelSchema": []byte(`{"model":{}}`),
	})
	accessor := newTestAccessor("/in/report.pbit", archiveBytes)
	if _, err := accessor.ExtractSchemaPayload("/in/report.pbit"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if after := leftoverTempDirs(t); after != before {
		t.Errorf("Temp directories leaked: before=%d after=%d", before, after)
	}
}

func TestExtractSchemaPayload_NoTempLeakOnCorruptMember(t *testing.T) {
	before := leftoverTempDirs(t)

	// Build a valid archive, then corrupt the compressed stream so the
	// member fails mid-extraction.
	archiveBytes := buildArchive(t, map[string][]byte{
		"DataModelSchema": bytes.Repeat([]byte(`{"model":{"tables":[]}} `), 256),
	})
	r, err := zip.NewReader(bytes.NewReader(archiveBytes), int64(len(archiveBytes)))
	if err != nil {
		t.Fatalf("Fixture archive is invalid: %v", err)
	}
	offset, err := r.File[0].DataOffset()
	if err != nil {
		t.Fatalf("Failed to locate member data: %v", err)
	}
	corrupted := append([]byte(nil), archiveBytes...)
	for i := offset + 4; i < offset+20 && i < int64(len(corrupted)); i++ {
		corrupted[i] ^= 0xFF
	}

	accessor := newTestAccessor("/in/corrupt.pbit", corrupted)
	if _, err := accessor.ExtractSchemaPayload("/in/corrupt.pbit"); err == nil {
		t.Error("Expected extraction of corrupted member to fail")
	}

	if after := leftoverTempDirs(t); after != before {
		t.Errorf("Temp directories leaked on failure: before=%d after=%d", before, after)
	}
}
