// Package archive computes final destination paths inside the organized
// library tree. Pure path composition; it never touches the filesystem.
package archive

import (
	"path/filepath"

	"mediasort/internal/media"
)

const (
	picturesDir = "pictures"
	videosDir   = "videos"
)

// CategoryDir returns the fixed top-level directory for a media category.
func CategoryDir(category media.Category) string {
	if category == media.CategoryVideo {
		return videosDir
	}
	return picturesDir
}

// Resolve composes the absolute destination path for a target:
// root/<category>/<owner>/<year>/<month>/<name>.
func Resolve(root, owner string, target *media.Target) string {
	return filepath.Join(
		root,
		CategoryDir(target.Category),
		owner,
		target.Bucket.Year,
		target.Bucket.Month,
		target.Name,
	)
}
