package dataset

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmptyMode(t *testing.T) {
	src, err := Load("")
	require.NoError(t, err)

	_, ok := src.Next()
	assert.False(t, ok)
	assert.Equal(t, 0, src.Len())
}

func TestLoad_Default(t *testing.T) {
	src, err := Load(ModeDefault)
	require.NoError(t, err)
	assert.Greater(t, src.Len(), 0)

	rec, ok := src.Next()
	assert.True(t, ok)
	assert.NotEmpty(t, rec.Prompt)
}

func TestLoad_InlineJSONL(t *testing.T) {
	src, err := Load(`{"id":"1","prompt":"first"}` + "\n" + `{"id":"2","prompt":"second"}`)
	require.NoError(t, err)
	assert.Equal(t, 2, src.Len())
}

func TestLoad_SingleInlineRecord(t *testing.T) {
	src, err := Load(`{"id":"1","prompt":"only"}`)
	require.NoError(t, err)
	assert.Equal(t, 1, src.Len())
}

func TestLoad_SkipsBadLines(t *testing.T) {
	src, err := Load(`{"id":"1","prompt":"good"}` + "\n" + `not json at all` + "\n" + `{"id":"2"}`)
	require.NoError(t, err)
	assert.Equal(t, 1, src.Len())
}

func TestLoad_AllBadLinesFails(t *testing.T) {
	_, err := Load("garbage\n{broken")
	assert.ErrorIs(t, err, ErrInvalidDataset)
}

func TestLoad_MissingFileFails(t *testing.T) {
	_, err := Load("/nonexistent/path/data.jsonl")
	assert.ErrorIs(t, err, ErrInvalidDataset)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.jsonl")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"id":"a","prompt":"from file"}`+"\n"), 0o644))

	src, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, src.Len())
}

func TestNext_Cycles(t *testing.T) {
	src, err := Load(`{"id":"1","prompt":"a"}` + "\n" + `{"id":"2","prompt":"b"}`)
	require.NoError(t, err)

	r1, _ := src.Next()
	r2, _ := src.Next()
	r3, _ := src.Next()
	assert.Equal(t, "a", r1.Prompt)
	assert.Equal(t, "b", r2.Prompt)
	assert.Equal(t, "a", r3.Prompt)
}

func TestLoad_ImagePathEncodedAtLoadTime(t *testing.T) {
	imgPath := filepath.Join(t.TempDir(), "pixel.png")
	raw := []byte{0x89, 0x50, 0x4E, 0x47}
	require.NoError(t, os.WriteFile(imgPath, raw, 0o644))

	src, err := Load(`{"id":"1","prompt":"look","image":"` + imgPath + `"}`)
	require.NoError(t, err)

	rec, ok := src.Next()
	require.True(t, ok)
	assert.True(t, rec.HasImage())
	assert.Equal(t, base64.StdEncoding.EncodeToString(raw), rec.ImageBase64)
	assert.Empty(t, rec.Image)
}

func TestLoad_ImageURLPassedThrough(t *testing.T) {
	src, err := Load(`{"id":"1","prompt":"look","image":"https://example.com/cat.png"}`)
	require.NoError(t, err)

	rec, _ := src.Next()
	assert.Equal(t, "https://example.com/cat.png", rec.ImageURL)
	assert.Empty(t, rec.ImageBase64)
}
