package fileops

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/FileOps/backend/internal/infrastructure/logging"
)

// Manager is the path operation facade. Relative paths are resolved against
// the base directory, which is captured once at construction and immutable
// afterwards.
type Manager struct {
	base string
	log  *logging.Logger
}

// New creates a manager rooted at base. An empty base captures the current
// working directory.
func New(base string, log *logging.Logger) (*Manager, error) {
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to capture working directory: %w", err)
		}
		base = wd
	}
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("invalid base directory %q: %w", base, err)
	}
	if log == nil {
		log = logging.NewNop()
	}
	return &Manager{base: abs, log: log.Component("fileops")}, nil
}

// Base returns the directory relative paths are resolved against.
func (m *Manager) Base() string {
	return m.base
}

// resolve converts path to its canonical absolute form.
func (m *Manager) resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(m.base, path)
}

// precondition logs a WARN diagnostic and returns the matching typed error.
// No mutation has happened when it is called.
func (m *Manager) precondition(op, path, reason string) *PrecondError {
	m.log.Warn(reason,
		zap.String("op", op),
		zap.String("path", path),
	)
	return &PrecondError{Op: op, Path: path, Reason: reason}
}

// failure logs an ERROR diagnostic for an OS-level fault and wraps it.
func (m *Manager) failure(op, path string, err error) *OpError {
	m.log.Error("operation failed",
		zap.String("op", op),
		zap.String("path", path),
		zap.Error(err),
	)
	return &OpError{Op: op, Path: path, Err: err}
}
