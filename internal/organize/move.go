package organize

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"mediasort/internal/fileutil"
)

// move relocates src to dst without ever clobbering an existing file.
// Same-volume moves are a single atomic rename; cross-volume moves fall back
// to a verified copy followed by source removal.
func move(src, dst string) error {
	if _, err := os.Lstat(dst); err == nil {
		return wrap(ErrCollision, dst, nil)
	} else if !errors.Is(err, os.ErrNotExist) {
		return wrap(ErrIO, "inspect destination", err)
	}

	renameErr := os.Rename(src, dst)
	if renameErr == nil {
		return nil
	}

	var linkErr *os.LinkError
	if errors.As(renameErr, &linkErr) && errors.Is(linkErr.Err, syscall.EXDEV) {
		if copyErr := fileutil.CopyFileVerified(src, dst); copyErr != nil {
			return wrap(ErrIO, "copy across volumes", copyErr)
		}
		if removeErr := os.Remove(src); removeErr != nil {
			return wrap(ErrIO, fmt.Sprintf("copied to %s but could not remove source", dst), removeErr)
		}
		return nil
	}

	if errors.Is(renameErr, os.ErrExist) {
		return wrap(ErrCollision, dst, nil)
	}
	return wrap(ErrIO, "rename", renameErr)
}
