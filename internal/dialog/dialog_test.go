package dialog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/FileOps/backend/internal/fileops"
	"github.com/GriffinCanCode/FileOps/backend/internal/infrastructure/logging"
)

// stubPicker records the options it was invoked with and returns canned paths.
type stubPicker struct {
	invoked bool
	single  string
	multi   []string
}

func (s *stubPicker) OpenFile(ctx context.Context, opts Options) (string, error) {
	s.invoked = true
	return s.single, nil
}

func (s *stubPicker) OpenFiles(ctx context.Context, opts Options) ([]string, error) {
	s.invoked = true
	return s.multi, nil
}

func (s *stubPicker) SaveFile(ctx context.Context, opts Options) (string, error) {
	s.invoked = true
	return s.single, nil
}

func (s *stubPicker) OpenDirectory(ctx context.Context, opts Options) (string, error) {
	s.invoked = true
	return s.single, nil
}

func newTestDialog(t *testing.T, stub *stubPicker) (*Dialog, string) {
	t.Helper()
	root := t.TempDir()
	fs, err := fileops.New(root, logging.NewNop())
	require.NoError(t, err)
	return New(stub, fs, logging.NewNop()), root
}

func TestAskOpenFileInvokesPicker(t *testing.T) {
	stub := &stubPicker{single: "/tmp/picked.txt"}
	d, _ := newTestDialog(t, stub)

	path, err := d.AskOpenFile(context.Background(), Options{Title: "Open"})
	require.NoError(t, err)
	assert.True(t, stub.invoked)
	assert.Equal(t, "/tmp/picked.txt", path)
}

func TestAskOpenFileMissingInitialDir(t *testing.T) {
	stub := &stubPicker{single: "/tmp/picked.txt"}
	d, root := newTestDialog(t, stub)

	path, err := d.AskOpenFile(context.Background(), Options{
		InitialDir: filepath.Join(root, "nope"),
	})
	require.NoError(t, err)
	assert.False(t, stub.invoked, "picker must not open for a missing initial dir")
	assert.Empty(t, path)
}

func TestAskOpenFileMissingInitialFile(t *testing.T) {
	stub := &stubPicker{single: "/tmp/picked.txt"}
	d, root := newTestDialog(t, stub)

	path, err := d.AskOpenFile(context.Background(), Options{
		InitialFile: filepath.Join(root, "nope.txt"),
	})
	require.NoError(t, err)
	assert.False(t, stub.invoked)
	assert.Empty(t, path)
}

func TestAskOpenFilesFiltersByType(t *testing.T) {
	stub := &stubPicker{multi: []string{"/a/one.txt", "/a/two.log", "/a/three.txt"}}
	d, _ := newTestDialog(t, stub)

	paths, err := d.AskOpenFiles(context.Background(), Options{
		FileTypes: []FileType{{Label: "Text files", Pattern: "*.txt"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/a/one.txt", "/a/three.txt"}, paths)
}

func TestAskOpenFilesLeavesPickerSliceIntact(t *testing.T) {
	picked := []string{"/a/one.txt", "/a/two.log", "/a/three.txt"}
	stub := &stubPicker{multi: picked}
	d, _ := newTestDialog(t, stub)

	_, err := d.AskOpenFiles(context.Background(), Options{
		FileTypes: []FileType{{Label: "Text files", Pattern: "*.txt"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/a/one.txt", "/a/two.log", "/a/three.txt"}, picked)
}

func TestAskOpenFilesNoFilterKeepsAll(t *testing.T) {
	stub := &stubPicker{multi: []string{"/a/one.txt", "/a/two.log"}}
	d, _ := newTestDialog(t, stub)

	paths, err := d.AskOpenFiles(context.Background(), Options{})
	require.NoError(t, err)
	assert.Len(t, paths, 2)
}

func TestAskOpenDirectoryValidInitialDir(t *testing.T) {
	stub := &stubPicker{single: "/tmp/dir"}
	d, root := newTestDialog(t, stub)

	path, err := d.AskOpenDirectory(context.Background(), Options{InitialDir: root})
	require.NoError(t, err)
	assert.True(t, stub.invoked)
	assert.Equal(t, "/tmp/dir", path)
}

func TestAskSaveFileCancelled(t *testing.T) {
	stub := &stubPicker{single: ""}
	d, _ := newTestDialog(t, stub)

	path, err := d.AskSaveFile(context.Background(), Options{})
	require.NoError(t, err)
	assert.Empty(t, path)
}
