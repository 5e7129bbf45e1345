package rename

import (
	"errors"
)

var (
	ErrTargetExists = errors.New("target exists")
	ErrRenameFailed = errors.New("rename failed")
)
