// Package testsupport provides fixtures shared by mediasort tests.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"mediasort/internal/config"
)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.SourceDir = filepath.Join(base, "dump")
	cfg.Paths.DestinationDir = filepath.Join(base, "archive")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	for _, dir := range []string{cfg.Paths.SourceDir, cfg.Paths.DestinationDir, cfg.Paths.LogDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	return &cfg
}

// WriteFileWithMTime creates path (and parents) with the given content and
// pins its modification time.
func WriteFileWithMTime(t testing.TB, path, content string, mtime time.Time) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatalf("chtimes %s: %v", path, err)
	}
}
