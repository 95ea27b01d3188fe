package fileops

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyFile(t *testing.T) {
	m, _ := newTestManager(t)
	require.NoError(t, m.WriteFile("a.txt", "payload bytes"))

	require.NoError(t, m.CopyFile("a.txt", "b.txt"))

	a, err := m.ReadFile("a.txt")
	require.NoError(t, err)
	b, err := m.ReadFile("b.txt")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, "payload bytes", a, "source unchanged")
}

func TestCopyFileDestinationExists(t *testing.T) {
	m, _ := newTestManager(t)
	require.NoError(t, m.WriteFile("a.txt", "a"))
	require.NoError(t, m.WriteFile("b.txt", "b"))

	err := m.CopyFile("a.txt", "b.txt")
	require.Error(t, err)
	assert.True(t, IsPrecondition(err))

	b, readErr := m.ReadFile("b.txt")
	require.NoError(t, readErr)
	assert.Equal(t, "b", b)
}

func TestCopyFileMissingSource(t *testing.T) {
	m, _ := newTestManager(t)

	err := m.CopyFile("absent", "b.txt")
	require.Error(t, err)
	assert.True(t, IsPrecondition(err))
	assert.False(t, m.Exists("b.txt"))
}

func TestCopyDirectoryRecursive(t *testing.T) {
	m, root := newTestManager(t)
	require.NoError(t, m.CreateDirectory("src/nested", true))
	require.NoError(t, m.WriteFile("src/top.txt", "top"))
	require.NoError(t, m.WriteFile("src/nested/deep.txt", "deep"))
	require.NoError(t, os.Symlink(
		filepath.Join(root, "src", "top.txt"),
		filepath.Join(root, "src", "top.link"),
	))

	require.NoError(t, m.CopyDirectory(context.Background(), "src", "dst"))

	top, err := m.ReadFile("dst/top.txt")
	require.NoError(t, err)
	assert.Equal(t, "top", top)

	deep, err := m.ReadFile("dst/nested/deep.txt")
	require.NoError(t, err)
	assert.Equal(t, "deep", deep)

	assert.True(t, m.IsSymlink("dst/top.link"))
}

func TestCopyDirectoryDestinationExists(t *testing.T) {
	m, _ := newTestManager(t)
	require.NoError(t, m.CreateDirectory("src", false))
	require.NoError(t, m.CreateDirectory("dst", false))

	err := m.CopyDirectory(context.Background(), "src", "dst")
	require.Error(t, err)
	assert.True(t, IsPrecondition(err))
}

func TestCopyDirectoryCancelled(t *testing.T) {
	m, _ := newTestManager(t)
	require.NoError(t, m.CreateDirectory("src", false))
	require.NoError(t, m.WriteFile("src/f.txt", "x"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.CopyDirectory(ctx, "src", "dst")
	require.Error(t, err)
	assert.False(t, IsPrecondition(err))
}

func TestMoveFile(t *testing.T) {
	m, _ := newTestManager(t)
	require.NoError(t, m.WriteFile("a.txt", "moving"))

	require.NoError(t, m.MoveFile("a.txt", "b.txt"))
	assert.False(t, m.Exists("a.txt"))

	b, err := m.ReadFile("b.txt")
	require.NoError(t, err)
	assert.Equal(t, "moving", b)
}

func TestMoveFileDestinationExists(t *testing.T) {
	m, _ := newTestManager(t)
	require.NoError(t, m.WriteFile("a.txt", "a"))
	require.NoError(t, m.WriteFile("b.txt", "b"))

	err := m.MoveFile("a.txt", "b.txt")
	require.Error(t, err)
	assert.True(t, IsPrecondition(err))
	assert.True(t, m.Exists("a.txt"))
}

func TestMoveDirectory(t *testing.T) {
	m, _ := newTestManager(t)
	require.NoError(t, m.CreateDirectory("src", false))
	require.NoError(t, m.WriteFile("src/f.txt", "x"))

	require.NoError(t, m.MoveDirectory("src", "dst"))
	assert.False(t, m.Exists("src"))
	assert.True(t, m.IsFile("dst/f.txt"))
}

func TestRenameFile(t *testing.T) {
	m, _ := newTestManager(t)
	require.NoError(t, m.CreateDirectory("d", false))
	require.NoError(t, m.WriteFile("d/old.txt", "x"))

	require.NoError(t, m.RenameFile("d/old.txt", "new.txt"))
	assert.False(t, m.Exists("d/old.txt"))
	assert.True(t, m.IsFile("d/new.txt"), "rename stays within the parent")
}

func TestRenameFileSiblingCollision(t *testing.T) {
	m, _ := newTestManager(t)
	require.NoError(t, m.WriteFile("old.txt", "old"))
	require.NoError(t, m.WriteFile("new.txt", "new"))

	err := m.RenameFile("old.txt", "new.txt")
	require.Error(t, err)
	assert.True(t, IsPrecondition(err))

	// Both entries intact.
	old, readErr := m.ReadFile("old.txt")
	require.NoError(t, readErr)
	assert.Equal(t, "old", old)
	sibling, readErr := m.ReadFile("new.txt")
	require.NoError(t, readErr)
	assert.Equal(t, "new", sibling)
}

func TestRenameDirectory(t *testing.T) {
	m, _ := newTestManager(t)
	require.NoError(t, m.CreateDirectory("old", false))

	require.NoError(t, m.RenameDirectory("old", "new"))
	assert.False(t, m.Exists("old"))
	assert.True(t, m.IsDirectory("new"))
}

func TestRenameSymlink(t *testing.T) {
	m, root := newTestManager(t)
	require.NoError(t, m.WriteFile("f", "x"))
	require.NoError(t, os.Symlink(filepath.Join(root, "f"), filepath.Join(root, "l")))

	require.NoError(t, m.RenameSymlink("l", "l2"))
	assert.True(t, m.IsSymlink("l2"))

	target, err := os.Readlink(filepath.Join(root, "l2"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "f"), target)
}

func TestRenameWrongKind(t *testing.T) {
	m, _ := newTestManager(t)
	require.NoError(t, m.WriteFile("f", "x"))

	err := m.RenameDirectory("f", "g")
	require.Error(t, err)
	assert.True(t, IsPrecondition(err))
}
