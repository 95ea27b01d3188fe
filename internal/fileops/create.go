package fileops

import "os"

// CreateDirectory creates a directory at path. It fails if a directory
// already exists there. With parents set, missing ancestors are created.
func (m *Manager) CreateDirectory(path string, parents bool) error {
	const op = "create_directory"
	full := m.resolve(path)

	if m.Classify(path) == KindDirectory {
		return m.precondition(op, full, "directory already exists")
	}

	var err error
	if parents {
		err = os.MkdirAll(full, 0o755)
	} else {
		err = os.Mkdir(full, 0o755)
	}
	if err != nil {
		return m.failure(op, full, err)
	}
	return nil
}

// CreateFile creates an empty file at path. It fails if a file already
// exists there.
func (m *Manager) CreateFile(path string) error {
	const op = "create_file"
	full := m.resolve(path)

	if m.Classify(path) == KindFile {
		return m.precondition(op, full, "file already exists")
	}

	f, err := os.OpenFile(full, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return m.failure(op, full, err)
	}
	return f.Close()
}

// CreateSymlink creates a symbolic link at target pointing to source. It
// fails if source does not exist or target already exists. On Windows
// os.Symlink selects the directory-link variant itself when source names a
// directory, so no per-platform handling is needed.
func (m *Manager) CreateSymlink(source, target string) error {
	const op = "create_symlink"
	fullSource := m.resolve(source)
	fullTarget := m.resolve(target)

	if m.Classify(source) == KindMissing {
		return m.precondition(op, fullSource, "source does not exist")
	}
	if m.Classify(target) != KindMissing {
		return m.precondition(op, fullTarget, "target already exists")
	}

	if err := os.Symlink(fullSource, fullTarget); err != nil {
		return m.failure(op, fullTarget, err)
	}
	return nil
}
