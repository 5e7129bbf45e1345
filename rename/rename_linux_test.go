//go:build linux

package rename

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenameNoReplace(t *testing.T) {
	root := t.TempDir()

	layOut(t, root, map[string]string{"vite.config2.txt": "new", "vite.config.ts": "old"})

	err := renameNoReplace(filepath.Join(root, "vite.config2.txt"), filepath.Join(root, "vite.config.ts"))
	require.Error(t, err, "rename onto an existing file should fail")
	assert.ErrorIs(t, err, fs.ErrExist)

	contents, err := os.ReadFile(filepath.Join(root, "vite.config.ts"))
	require.NoError(t, err)
	assert.Equal(t, "old", string(contents))

	err = renameNoReplace(filepath.Join(root, "vite.config2.txt"), filepath.Join(root, "vite.config.js"))
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(root, "vite.config.js"))
}
