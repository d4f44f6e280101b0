package media

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Bucket is the (year, month) archive segment derived from a file's
// last-modification time. Both fields are always populated together.
type Bucket struct {
	Year  string // four decimal digits, no sign
	Month string // lowercase full English month name
}

// DateTimeError marks a modification time that cannot be represented as a
// calendar instant the archive layout supports.
type DateTimeError struct {
	Path string
	When time.Time
}

func (e *DateTimeError) Error() string {
	return fmt.Sprintf("datetime error: %s: modification time %v is outside the supported range", e.Path, e.When)
}

// BucketFor reads path's last-modification time and derives its archive
// bucket. The instant is interpreted in UTC so the same file buckets
// identically on every machine.
func BucketFor(path string) (Bucket, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Bucket{}, fmt.Errorf("read metadata for %s: %w", path, err)
	}
	return bucketAt(path, info.ModTime())
}

func bucketAt(path string, mtime time.Time) (Bucket, error) {
	utc := mtime.UTC()
	year := utc.Year()
	if year < 1 || year > 9999 {
		return Bucket{}, &DateTimeError{Path: path, When: mtime}
	}
	return Bucket{
		Year:  fmt.Sprintf("%04d", year),
		Month: strings.ToLower(utc.Month().String()),
	}, nil
}
