package fileops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFile(t *testing.T) {
	m, _ := newTestManager(t)

	require.NoError(t, m.CreateFile("new.txt"))
	assert.True(t, m.IsFile("new.txt"))
	assert.True(t, m.IsFileEmpty("new.txt"))
}

func TestCreateFileAlreadyExists(t *testing.T) {
	m, root := newTestManager(t)
	mustWrite(t, filepath.Join(root, "taken.txt"), "original")

	err := m.CreateFile("taken.txt")
	require.Error(t, err)
	assert.True(t, IsPrecondition(err))

	// Contents untouched by the failed attempt.
	data, readErr := os.ReadFile(filepath.Join(root, "taken.txt"))
	require.NoError(t, readErr)
	assert.Equal(t, "original", string(data))
}

func TestCreateDirectory(t *testing.T) {
	m, _ := newTestManager(t)

	require.NoError(t, m.CreateDirectory("d", false))
	assert.True(t, m.IsDirectory("d"))
}

func TestCreateDirectoryAlreadyExists(t *testing.T) {
	m, _ := newTestManager(t)
	require.NoError(t, m.CreateDirectory("d", false))

	err := m.CreateDirectory("d", false)
	require.Error(t, err)
	assert.True(t, IsPrecondition(err))
}

func TestCreateDirectoryMissingParent(t *testing.T) {
	m, _ := newTestManager(t)

	err := m.CreateDirectory("a/b/c", false)
	require.Error(t, err)
	assert.False(t, IsPrecondition(err), "OS-level failure, not a precondition")

	require.NoError(t, m.CreateDirectory("a/b/c", true))
	assert.True(t, m.IsDirectory("a/b/c"))
}

func TestCreateSymlink(t *testing.T) {
	m, root := newTestManager(t)
	mustWrite(t, filepath.Join(root, "src.txt"), "data")

	require.NoError(t, m.CreateSymlink("src.txt", "src.link"))
	assert.True(t, m.IsSymlink("src.link"))

	target, err := os.Readlink(filepath.Join(root, "src.link"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "src.txt"), target)
}

func TestCreateSymlinkToDirectory(t *testing.T) {
	m, root := newTestManager(t)
	require.NoError(t, m.CreateDirectory("d", false))

	require.NoError(t, m.CreateSymlink("d", "d.link"))
	assert.True(t, m.IsSymlink("d.link"))

	target, err := os.Readlink(filepath.Join(root, "d.link"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "d"), target)
}

func TestCreateSymlinkMissingSource(t *testing.T) {
	m, _ := newTestManager(t)

	err := m.CreateSymlink("absent", "link")
	require.Error(t, err)
	assert.True(t, IsPrecondition(err))
	assert.False(t, m.Exists("link"))
}

func TestCreateSymlinkTargetExists(t *testing.T) {
	m, root := newTestManager(t)
	mustWrite(t, filepath.Join(root, "src"), "")
	mustWrite(t, filepath.Join(root, "dst"), "")

	err := m.CreateSymlink("src", "dst")
	require.Error(t, err)
	assert.True(t, IsPrecondition(err))
}
