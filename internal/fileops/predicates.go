package fileops

import (
	"os"

	"go.uber.org/zap"
)

// Classify resolves the entity kind of path with a single lstat. Filesystem
// access errors are treated as "does not exist".
func (m *Manager) Classify(path string) Kind {
	info, err := os.Lstat(m.resolve(path))
	if err != nil {
		return KindMissing
	}
	switch {
	case info.Mode()&os.ModeSymlink != 0:
		return KindSymlink
	case info.IsDir():
		return KindDirectory
	default:
		return KindFile
	}
}

// Exists reports whether anything exists at path.
func (m *Manager) Exists(path string) bool {
	return m.Classify(path) != KindMissing
}

// IsDirectory reports whether path names an existing directory. Absent or
// wrong-kind paths produce a WARN diagnostic, matching IsFile.
func (m *Manager) IsDirectory(path string) bool {
	if m.Classify(path) != KindDirectory {
		m.log.Warn("path does not exist or is not a directory",
			zap.String("path", m.resolve(path)),
		)
		return false
	}
	return true
}

// IsFile reports whether path names an existing regular file. Absent or
// wrong-kind paths produce a WARN diagnostic.
func (m *Manager) IsFile(path string) bool {
	if m.Classify(path) != KindFile {
		m.log.Warn("path does not exist or is not a file",
			zap.String("path", m.resolve(path)),
		)
		return false
	}
	return true
}

// IsSymlink reports whether path names an existing symbolic link.
func (m *Manager) IsSymlink(path string) bool {
	return m.Classify(path) == KindSymlink
}

// IsDirectoryEmpty reports whether the directory at path has no entries.
// A missing or unreadable directory counts as not empty, so delete guards
// stay conservative.
func (m *Manager) IsDirectoryEmpty(path string) bool {
	entries, err := os.ReadDir(m.resolve(path))
	if err != nil {
		return false
	}
	return len(entries) == 0
}

// IsFileEmpty reports whether the file at path has zero size.
func (m *Manager) IsFileEmpty(path string) bool {
	if !m.IsFile(path) {
		return false
	}
	info, err := os.Lstat(m.resolve(path))
	if err != nil {
		return false
	}
	return info.Size() == 0
}
