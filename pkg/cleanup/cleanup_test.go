package cleanup

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDatasetFilePath(t *testing.T) {
	assert.False(t, IsDatasetFilePath(""))
	assert.False(t, IsDatasetFilePath("   "))
	assert.False(t, IsDatasetFilePath("default"))
	assert.False(t, IsDatasetFilePath(`{"id":"1","prompt":"hi"}`))
	assert.False(t, IsDatasetFilePath("{\"id\":\"1\"}\n{\"id\":\"2\"}"))
	assert.True(t, IsDatasetFilePath("/data/uploads/task-1/prompts.jsonl"))
}

func TestCleaner_RemovesReferencedFiles(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "prompts.jsonl")
	cert := filepath.Join(dir, "client.pem")
	for _, p := range []string{data, cert} {
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))
	}

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	NewCleaner(logger).Clean("t1", TaskFiles{TestData: data, CertFile: cert})

	assert.NoFileExists(t, data)
	assert.NoFileExists(t, cert)
}

func TestCleaner_MissingFileIsSuccess(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	c := NewCleaner(logger)
	// Nothing to assert beyond not panicking; removal is idempotent.
	c.Clean("t1", TaskFiles{CertFile: filepath.Join(t.TempDir(), "gone.pem")})
}

func TestCleaner_SkipsInlineDataset(t *testing.T) {
	dir := t.TempDir()
	keep := filepath.Join(dir, "keep.jsonl")
	require.NoError(t, os.WriteFile(keep, []byte("x"), 0o644))

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	NewCleaner(logger).Clean("t1", TaskFiles{TestData: `{"prompt":"inline"}`})

	assert.FileExists(t, keep)
}
