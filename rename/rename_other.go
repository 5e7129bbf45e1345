//go:build !linux

package rename

import (
	"os"
)

func renameNoReplace(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}
