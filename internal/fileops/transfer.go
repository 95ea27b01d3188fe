package fileops

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charlievieth/fastwalk"
)

// CopyDirectory recursively copies the tree rooted at source to destination.
// It fails if source is not an existing directory or destination already
// exists in any form.
func (m *Manager) CopyDirectory(ctx context.Context, source, destination string) error {
	const op = "copy_directory"
	fullSource := m.resolve(source)
	fullDest := m.resolve(destination)

	if m.Classify(source) != KindDirectory {
		return m.precondition(op, fullSource, "source directory does not exist")
	}
	if m.Classify(destination) != KindMissing {
		return m.precondition(op, fullDest, "destination already exists")
	}

	if err := os.MkdirAll(fullDest, 0o755); err != nil {
		return m.failure(op, fullDest, err)
	}

	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, fullSource, func(path string, d os.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil || path == fullSource {
			return err
		}

		relPath, err := filepath.Rel(fullSource, path)
		if err != nil {
			return err
		}
		destPath := filepath.Join(fullDest, relPath)

		switch {
		case d.IsDir():
			return os.MkdirAll(destPath, 0o755)
		case d.Type()&os.ModeSymlink != 0:
			linkTarget, err := os.Readlink(path)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
				return err
			}
			return os.Symlink(linkTarget, destPath)
		default:
			if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
				return err
			}
			return copyContents(path, destPath)
		}
	})
	if err != nil {
		return m.failure(op, fullSource, err)
	}
	return nil
}

// CopyFile byte-copies source to destination. It fails if source is missing
// or destination already exists.
func (m *Manager) CopyFile(source, destination string) error {
	const op = "copy_file"
	fullSource := m.resolve(source)
	fullDest := m.resolve(destination)

	if m.Classify(source) != KindFile {
		return m.precondition(op, fullSource, "source file does not exist")
	}
	if m.Classify(destination) != KindMissing {
		return m.precondition(op, fullDest, "destination already exists")
	}

	if err := copyContents(fullSource, fullDest); err != nil {
		return m.failure(op, fullDest, err)
	}
	return nil
}

// MoveDirectory relocates the directory at path to destination via rename.
func (m *Manager) MoveDirectory(path, destination string) error {
	const op = "move_directory"
	full := m.resolve(path)
	fullDest := m.resolve(destination)

	if m.Classify(path) != KindDirectory {
		return m.precondition(op, full, "directory does not exist")
	}
	if m.Classify(destination) != KindMissing {
		return m.precondition(op, fullDest, "destination already exists")
	}

	if err := os.Rename(full, fullDest); err != nil {
		return m.failure(op, full, err)
	}
	return nil
}

// MoveFile relocates the file at path to destination via rename.
func (m *Manager) MoveFile(path, destination string) error {
	const op = "move_file"
	full := m.resolve(path)
	fullDest := m.resolve(destination)

	if m.Classify(path) != KindFile {
		return m.precondition(op, full, "file does not exist")
	}
	if m.Classify(destination) != KindMissing {
		return m.precondition(op, fullDest, "destination already exists")
	}

	if err := os.Rename(full, fullDest); err != nil {
		return m.failure(op, full, err)
	}
	return nil
}

// RenameDirectory renames the directory at path to newName within the same
// parent directory.
func (m *Manager) RenameDirectory(path, newName string) error {
	return m.rename("rename_directory", path, newName, KindDirectory)
}

// RenameFile renames the file at path to newName within the same parent
// directory.
func (m *Manager) RenameFile(path, newName string) error {
	return m.rename("rename_file", path, newName, KindFile)
}

// RenameSymlink renames the symlink at path to newName within the same
// parent directory. The link target is untouched.
func (m *Manager) RenameSymlink(path, newName string) error {
	return m.rename("rename_symlink", path, newName, KindSymlink)
}

// rename implements the shared same-parent rename contract: source must
// exist as the stated kind and no sibling may already bear newName.
func (m *Manager) rename(op, path, newName string, kind Kind) error {
	full := m.resolve(path)

	if m.Classify(path) != kind {
		return m.precondition(op, full, kind.String()+" does not exist")
	}

	newPath := filepath.Join(filepath.Dir(full), newName)
	if m.Classify(newPath) != KindMissing {
		return m.precondition(op, newPath, "an entry with the new name already exists")
	}

	if err := os.Rename(full, newPath); err != nil {
		return m.failure(op, full, err)
	}
	return nil
}

// copyContents streams src into a freshly created dst.
func copyContents(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
