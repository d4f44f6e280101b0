package media

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// Target is the fully resolved record for one eligible entry: where it lives
// now, what it is, and which bucket it lands in. Immutable once built.
type Target struct {
	AbsPath  string
	Category Category
	Bucket   Bucket
	Name     string
}

// NewTarget inspects a discovered path and builds its relocation target.
// The source path is canonicalized (symlinks resolved, relative segments
// removed) before classification so the eventual move operates on a stable
// location. Failures are either an *IneligibleError, a *DateTimeError, or an
// IO error from metadata access.
func NewTarget(path string) (*Target, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("inspect %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, &IneligibleError{Path: path, Reason: ReasonIsDirectory}
	}

	abs, err := canonicalize(path)
	if err != nil {
		return nil, fmt.Errorf("canonicalize %s: %w", path, err)
	}

	category, err := Classify(abs, false)
	if err != nil {
		return nil, err
	}

	name := filepath.Base(abs)
	if name == "" || name == string(filepath.Separator) || !utf8.ValidString(name) {
		return nil, &IneligibleError{Path: path, Reason: ReasonUnresolvableName}
	}

	bucket, err := BucketFor(abs)
	if err != nil {
		return nil, err
	}

	return &Target{AbsPath: abs, Category: category, Bucket: bucket, Name: name}, nil
}

func canonicalize(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", err
	}
	return filepath.Abs(resolved)
}
