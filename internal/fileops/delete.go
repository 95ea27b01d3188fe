package fileops

import "os"

// DeleteDirectory removes the directory at path. Only truly empty
// directories are removed; the non-empty guard is deliberate protection
// against accidental data loss, so there is no recursive variant.
func (m *Manager) DeleteDirectory(path string) error {
	const op = "delete_directory"
	full := m.resolve(path)

	if m.Classify(path) != KindDirectory {
		return m.precondition(op, full, "directory does not exist")
	}
	if !m.IsDirectoryEmpty(path) {
		return m.precondition(op, full, "directory is not empty")
	}

	if err := os.Remove(full); err != nil {
		return m.failure(op, full, err)
	}
	return nil
}

// DeleteFile removes the file at path.
func (m *Manager) DeleteFile(path string) error {
	const op = "delete_file"
	full := m.resolve(path)

	if m.Classify(path) != KindFile {
		return m.precondition(op, full, "file does not exist")
	}

	if err := os.Remove(full); err != nil {
		return m.failure(op, full, err)
	}
	return nil
}

// DeleteSymlink removes the symbolic link at path without following it.
func (m *Manager) DeleteSymlink(path string) error {
	const op = "delete_symlink"
	full := m.resolve(path)

	if m.Classify(path) != KindSymlink {
		return m.precondition(op, full, "symlink does not exist")
	}

	if err := os.Remove(full); err != nil {
		return m.failure(op, full, err)
	}
	return nil
}
