package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPom = `<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0">
	<modelVersion>4.0.0</modelVersion>
</project>
`

func TestStdoutWriter_Write(t *testing.T) {
	var buf bytes.Buffer
	w := NewStdoutWriter(&buf)

	data := []byte(testPom)
	require.NoError(t, w.Write(data))
	assert.Equal(t, string(data), buf.String())
}

func TestStdoutWriter_NilDefault(t *testing.T) {
	// nil falls back to os.Stdout.
	w := NewStdoutWriter(nil)
	assert.NotNil(t, w)
}

func TestFileWriter_Write(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "output", "pom.xml")

	w := NewFileWriter(path)
	data := []byte(testPom)
	require.NoError(t, w.Write(data))

	// Verify file exists with correct content.
	got, err := os.ReadFile(path) //nolint:gosec // test
	require.NoError(t, err)
	assert.Equal(t, string(data), string(got))

	// Verify file permissions.
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestFileWriter_CreatesParentDirs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deep", "nested", "pom.xml")

	w := NewFileWriter(path)
	require.NoError(t, w.Write([]byte("test")))

	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestFileWriter_CustomPermissions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.xml")

	w := NewFileWriter(path, WithPermissions(0o600))
	require.NoError(t, w.Write([]byte("secret")))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileWriter_OverwriteExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "existing.xml")

	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644)) //nolint:gosec // test

	w := NewFileWriter(path)
	require.NoError(t, w.Write([]byte("new")))

	got, err := os.ReadFile(path) //nolint:gosec // test
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
}

func TestFileWriter_SkipUnchanged(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pom.xml")

	w := NewFileWriter(path, WithSkipUnchanged())
	require.NoError(t, w.Write([]byte(testPom)))
	assert.True(t, w.Changed())

	past := time.Now().Add(-time.Hour).Truncate(time.Second)
	require.NoError(t, os.Chtimes(path, past, past))

	require.NoError(t, w.Write([]byte(testPom)))
	assert.False(t, w.Changed())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, past, info.ModTime())

	require.NoError(t, w.Write([]byte(testPom+"\n")))
	assert.True(t, w.Changed())
}

func TestFileWriter_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()

	w := NewFileWriter(filepath.Join(dir, "pom.xml"))
	require.NoError(t, w.Write([]byte(testPom)))
	require.NoError(t, w.Write([]byte("<project/>")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "pom.xml", entries[0].Name())
}

func TestFileWriter_Path(t *testing.T) {
	w := NewFileWriter("/tmp/pom.xml")
	assert.Equal(t, "/tmp/pom.xml", w.Path())
}

func TestFileWriter_InvalidPath(t *testing.T) {
	w := NewFileWriter("/dev/null/impossible/path.xml")
	err := w.Write([]byte("data"))
	assert.Error(t, err)
}
