package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/dsnet/compress/bzip2"
	"github.com/m-mizutani/gt"
)

// CompressBzip2 returns data as a single bzip2 stream. The standard library only decodes bzip2.
func CompressBzip2(t *testing.T, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := gt.R1(bzip2.NewWriter(&buf, &bzip2.WriterConfig{Level: bzip2.BestSpeed})).NoError(t)
	gt.R1(w.Write(data)).NoError(t)
	gt.NoError(t, w.Close())

	return buf.Bytes()
}

// WriteBzip2 writes data compressed to path, creating parent directories.
func WriteBzip2(t *testing.T, path string, data []byte) {
	t.Helper()
	WriteFile(t, path, CompressBzip2(t, data))
}

// WriteFile writes raw content to path, creating parent directories.
func WriteFile(t *testing.T, path string, data []byte) {
	t.Helper()
	gt.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	gt.NoError(t, os.WriteFile(path, data, 0644))
}

// ReadFile returns the content of path or fails the test.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	return string(gt.R1(os.ReadFile(path)).NoError(t))
}

// Exists reports whether anything exists at path, without following symlinks.
func Exists(t *testing.T, path string) bool {
	t.Helper()
	_, err := os.Lstat(path)
	if os.IsNotExist(err) {
		return false
	}
	gt.NoError(t, err)
	return true
}
