package fileops

import "os"

// ReadFile returns the full UTF-8 contents of the file at path. The call
// blocks until the whole file is read; callers never observe partial reads.
func (m *Manager) ReadFile(path string) (string, error) {
	const op = "read_file"
	full := m.resolve(path)

	if m.Classify(path) != KindFile {
		return "", m.precondition(op, full, "file does not exist")
	}

	data, err := os.ReadFile(full)
	if err != nil {
		return "", m.failure(op, full, err)
	}
	return string(data), nil
}

// WriteFile creates the file at path and writes content to it. It fails if
// the file already exists; there is no overwrite.
func (m *Manager) WriteFile(path, content string) error {
	const op = "write_file"
	full := m.resolve(path)

	if m.Classify(path) == KindFile {
		return m.precondition(op, full, "file already exists")
	}

	f, err := os.OpenFile(full, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return m.failure(op, full, err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return m.failure(op, full, err)
	}
	if err := f.Close(); err != nil {
		return m.failure(op, full, err)
	}
	return nil
}
