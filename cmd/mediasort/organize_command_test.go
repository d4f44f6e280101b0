package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"mediasort/internal/testsupport"
)

func TestOrganizeCommandEndToEnd(t *testing.T) {
	env := setupCLITestEnv(t)

	july := time.Date(2022, time.July, 10, 9, 0, 0, 0, time.UTC)
	testsupport.WriteFileWithMTime(t, filepath.Join(env.cfg.Paths.SourceDir, "photo.heic"), "photo", july)
	testsupport.WriteFileWithMTime(t, filepath.Join(env.cfg.Paths.SourceDir, "clip.mov"), "clip", july.Add(24*time.Hour))
	testsupport.WriteFileWithMTime(t, filepath.Join(env.cfg.Paths.SourceDir, "notes.txt"), "notes", july)

	out, _, err := runCLI(t, []string{"organize", "--person", "bob"}, env.configPath)
	if err != nil {
		t.Fatalf("organize: %v", err)
	}
	requireContains(t, out, "photo.heic")
	requireContains(t, out, "clip.mov")

	wantPhoto := filepath.Join(env.cfg.Paths.DestinationDir, "pictures", "bob", "2022", "july", "photo.heic")
	wantClip := filepath.Join(env.cfg.Paths.DestinationDir, "videos", "bob", "2022", "july", "clip.mov")
	for _, path := range []string{wantPhoto, wantClip} {
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("expected %s: %v", path, err)
		}
	}
	if _, err := os.Stat(filepath.Join(env.cfg.Paths.SourceDir, "notes.txt")); err != nil {
		t.Fatalf("notes.txt should stay in source: %v", err)
	}
	if _, err := os.Stat(filepath.Join(env.cfg.Paths.SourceDir, "photo.heic")); !os.IsNotExist(err) {
		t.Fatalf("photo.heic should be gone from source (err=%v)", err)
	}
}

func TestOrganizeCommandDryRun(t *testing.T) {
	env := setupCLITestEnv(t)

	testsupport.WriteFileWithMTime(t, filepath.Join(env.cfg.Paths.SourceDir, "photo.jpg"), "photo",
		time.Date(2023, time.March, 2, 0, 0, 0, 0, time.UTC))

	out, _, err := runCLI(t, []string{"organize", "--person", "alice", "--dry-run"}, env.configPath)
	if err != nil {
		t.Fatalf("organize --dry-run: %v", err)
	}
	requireContains(t, out, "would move")

	// Nothing moved.
	if _, err := os.Stat(filepath.Join(env.cfg.Paths.SourceDir, "photo.jpg")); err != nil {
		t.Fatalf("dry run mutated source: %v", err)
	}
	entries, err := os.ReadDir(env.cfg.Paths.DestinationDir)
	if err != nil {
		t.Fatalf("read destination: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("dry run mutated destination: %v", entries)
	}
}

func TestOrganizeCommandRequiresPerson(t *testing.T) {
	env := setupCLITestEnv(t)
	_, _, err := runCLI(t, []string{"organize"}, env.configPath)
	if err == nil {
		t.Fatal("expected error without --person")
	}
	requireContains(t, err.Error(), "--person")
}

func TestOrganizeCommandFailsForMissingSource(t *testing.T) {
	env := setupCLITestEnv(t)
	if err := os.RemoveAll(env.cfg.Paths.SourceDir); err != nil {
		t.Fatal(err)
	}
	_, _, err := runCLI(t, []string{"organize", "--person", "bob"}, env.configPath)
	if err == nil {
		t.Fatal("expected error for missing source root")
	}
}
