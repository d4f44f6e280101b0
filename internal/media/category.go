package media

import (
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Category is the coarse classification of an archivable file.
type Category int

const (
	CategoryImage Category = iota + 1
	CategoryVideo
)

// String returns the category name used in logs and reports.
func (c Category) String() string {
	switch c {
	case CategoryImage:
		return "image"
	case CategoryVideo:
		return "video"
	default:
		return "unknown"
	}
}

// Reason identifies why an entry is not a relocation candidate.
type Reason int

const (
	ReasonIsDirectory Reason = iota + 1
	ReasonNoExtension
	ReasonUnresolvableName
	ReasonUnknownType
	ReasonUnsupportedType
)

func (r Reason) String() string {
	switch r {
	case ReasonIsDirectory:
		return "is a directory"
	case ReasonNoExtension:
		return "no file extension"
	case ReasonUnresolvableName:
		return "name is not valid text"
	case ReasonUnknownType:
		return "unknown media type"
	case ReasonUnsupportedType:
		return "unsupported media type"
	default:
		return "ineligible"
	}
}

// IneligibleError marks an entry that classification rejected. It is never a
// run-level failure; callers skip the entry and move on.
type IneligibleError struct {
	Path   string
	Reason Reason
}

func (e *IneligibleError) Error() string {
	return fmt.Sprintf("skipping %s: %s", e.Path, e.Reason)
}

// Ineligible reports whether err is a classification rejection.
func Ineligible(err error) bool {
	var ie *IneligibleError
	return errors.As(err, &ie)
}

// rawOverrides maps extensions the general media-type table misses (or gets
// wrong) straight to the image category.
var rawOverrides = map[string]struct{}{
	"arw":  {},
	"heic": {},
}

// mediaTypes supplements the platform table with the formats camera dumps
// actually contain; mime.TypeByExtension only ships a small builtin set.
var mediaTypes = map[string]string{
	".3gp":  "video/3gpp",
	".avi":  "video/x-msvideo",
	".bmp":  "image/bmp",
	".heif": "image/heif",
	".m4v":  "video/x-m4v",
	".mkv":  "video/x-matroska",
	".mov":  "video/quicktime",
	".mp4":  "video/mp4",
	".mpeg": "video/mpeg",
	".mpg":  "video/mpeg",
	".mts":  "video/mp2t",
	".tif":  "image/tiff",
	".tiff": "image/tiff",
	".wmv":  "video/x-ms-wmv",
}

func init() {
	for ext, typ := range mediaTypes {
		_ = mime.AddExtensionType(ext, typ)
	}
}

// Classify maps a path's extension to a media category. isDir short-circuits
// the lookup: directories are never relocated. The function inspects only the
// path string and the provided flag; it touches no filesystem state.
func Classify(path string, isDir bool) (Category, error) {
	if isDir {
		return 0, &IneligibleError{Path: path, Reason: ReasonIsDirectory}
	}

	name := filepath.Base(path)
	if !utf8.ValidString(name) {
		return 0, &IneligibleError{Path: path, Reason: ReasonUnresolvableName}
	}

	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		return 0, &IneligibleError{Path: path, Reason: ReasonNoExtension}
	}
	ext = strings.ToLower(ext)

	if _, ok := rawOverrides[ext]; ok {
		return CategoryImage, nil
	}

	mediaType := mime.TypeByExtension("." + ext)
	if mediaType == "" {
		return 0, &IneligibleError{Path: path, Reason: ReasonUnknownType}
	}

	switch {
	case strings.HasPrefix(mediaType, "image"):
		return CategoryImage, nil
	case strings.HasPrefix(mediaType, "video"):
		return CategoryVideo, nil
	default:
		return 0, &IneligibleError{Path: path, Reason: ReasonUnsupportedType}
	}
}
