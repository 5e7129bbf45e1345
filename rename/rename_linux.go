//go:build linux

package rename

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// renameNoReplace fails with EEXIST when newpath shows up after the existence check.
// File systems without RENAME_NOREPLACE support get a plain rename.
func renameNoReplace(oldpath, newpath string) error {
	err := unix.Renameat2(unix.AT_FDCWD, oldpath, unix.AT_FDCWD, newpath, unix.RENAME_NOREPLACE)
	if errors.Is(err, unix.EINVAL) || errors.Is(err, unix.ENOSYS) || errors.Is(err, unix.ENOTSUP) {
		return os.Rename(oldpath, newpath)
	} else if err != nil {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: err}
	}

	return nil
}
