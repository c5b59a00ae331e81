package filesystem

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFileSystem_ReadFile(t *testing.T) {
	mfs := NewMemoryFileSystem()
	mfs.AddFile("/data/report.pbit", []byte("content"))

	content, err := mfs.ReadFile("/data/report.pbit")
	require.NoError(t, err)
	assert.Equal(t, []byte("content"), content)
}

func TestMemoryFileSystem_ReadFile_NotFound(t *testing.T) {
	mfs := NewMemoryFileSystem()

	_, err := mfs.ReadFile("/missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestMemoryFileSystem_ReadFile_NormalizesSlashes(t *testing.T) {
	mfs := NewMemoryFileSystem()
	mfs.AddFile(`/data/report.pbit`, []byte("x"))

	content, err := mfs.ReadFile(`/data//report.pbit`)
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), content)
}

func TestMemoryFileSystem_WriteThenRead(t *testing.T) {
	mfs := NewMemoryFileSystem()

	require.NoError(t, mfs.WriteFile("/out/doc.md", []byte("# Title")))

	content, err := mfs.ReadFile("/out/doc.md")
	require.NoError(t, err)
	assert.Equal(t, []byte("# Title"), content)
}

func TestMemoryFileSystem_Stat(t *testing.T) {
	mfs := NewMemoryFileSystem()
	mfs.AddFile("/data/report.pbit", []byte("12345"))

	info, err := mfs.Stat("/data/report.pbit")
	require.NoError(t, err)
	assert.Equal(t, "report.pbit", info.Name())
	assert.Equal(t, int64(5), info.Size())
	assert.False(t, info.IsDir())
}

func TestMemoryFileSystem_Stat_NotFound(t *testing.T) {
	mfs := NewMemoryFileSystem()

	_, err := mfs.Stat("/missing")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}
