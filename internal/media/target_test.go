package media

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewTarget(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.heic")
	writeFileWithMTime(t, path, time.Date(2022, time.July, 10, 8, 0, 0, 0, time.UTC))

	target, err := NewTarget(path)
	if err != nil {
		t.Fatalf("NewTarget: %v", err)
	}
	if target.Category != CategoryImage {
		t.Fatalf("category = %v, want image", target.Category)
	}
	if target.Name != "photo.heic" {
		t.Fatalf("name = %q", target.Name)
	}
	if target.Bucket.Year != "2022" || target.Bucket.Month != "july" {
		t.Fatalf("bucket = %+v", target.Bucket)
	}
	if !filepath.IsAbs(target.AbsPath) {
		t.Fatalf("abs path = %q, want absolute", target.AbsPath)
	}
}

func TestNewTargetCanonicalizesRelativeSegments(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clip.mp4")
	writeFileWithMTime(t, path, time.Now())
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	sep := string(filepath.Separator)
	dotted := dir + sep + "sub" + sep + ".." + sep + "clip.mp4"
	target, err := NewTarget(dotted)
	if err != nil {
		t.Fatalf("NewTarget: %v", err)
	}
	want, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("EvalSymlinks: %v", err)
	}
	if target.AbsPath != want {
		t.Fatalf("abs path = %q, want %q", target.AbsPath, want)
	}
}

func TestNewTargetResolvesSymlinks(t *testing.T) {
	dir := t.TempDir()
	real := filepath.Join(dir, "real.jpg")
	writeFileWithMTime(t, real, time.Now())

	link := filepath.Join(dir, "link.jpg")
	if err := os.Symlink(real, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	target, err := NewTarget(link)
	if err != nil {
		t.Fatalf("NewTarget: %v", err)
	}
	if filepath.Base(target.AbsPath) != "real.jpg" {
		t.Fatalf("abs path = %q, want resolved symlink target", target.AbsPath)
	}
}

func TestNewTargetRejectsDirectories(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "album.jpg")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	_, err := NewTarget(sub)
	var ie *IneligibleError
	if !errors.As(err, &ie) || ie.Reason != ReasonIsDirectory {
		t.Fatalf("NewTarget(dir) = %v, want directory rejection", err)
	}
}

func TestNewTargetMissingFile(t *testing.T) {
	_, err := NewTarget(filepath.Join(t.TempDir(), "missing.jpg"))
	if err == nil {
		t.Fatal("NewTarget succeeded for a missing file")
	}
	if Ineligible(err) {
		t.Fatalf("IO failure misreported as ineligible: %v", err)
	}
}
