// Package dialog provides interactive file and directory picker facades.
//
// The platform widget lives behind the Picker interface; the Dialog facade
// validates any supplied initial directory or file against the live
// filesystem before the widget ever opens, and filters multi-select
// results against the requested file-type patterns.
package dialog

import (
	"context"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/FileOps/backend/internal/fileops"
	"github.com/GriffinCanCode/FileOps/backend/internal/infrastructure/logging"
)

// FileType pairs a human-readable label with a glob pattern,
// e.g. {Label: "Text files", Pattern: "*.txt"}.
type FileType struct {
	Label   string
	Pattern string
}

// Options configures a single picker invocation. InitialDir and InitialFile
// are optional; when present they must exist or the invocation is refused.
type Options struct {
	Title       string
	FileTypes   []FileType
	InitialDir  string
	InitialFile string
}

// Picker abstracts the platform file dialog widget. An empty return with a
// nil error means the user cancelled.
type Picker interface {
	OpenFile(ctx context.Context, opts Options) (string, error)
	OpenFiles(ctx context.Context, opts Options) ([]string, error)
	SaveFile(ctx context.Context, opts Options) (string, error)
	OpenDirectory(ctx context.Context, opts Options) (string, error)
}

// Dialog validates picker preconditions before delegating to the widget.
type Dialog struct {
	picker Picker
	fs     *fileops.Manager
	log    *logging.Logger
}

// New creates a dialog facade over the given picker.
func New(picker Picker, fs *fileops.Manager, log *logging.Logger) *Dialog {
	if log == nil {
		log = logging.NewNop()
	}
	return &Dialog{picker: picker, fs: fs, log: log.Component("dialog")}
}

// AskOpenFile asks the user to pick a single existing file. It returns an
// empty string when the user cancels or a supplied initial path is invalid.
func (d *Dialog) AskOpenFile(ctx context.Context, opts Options) (string, error) {
	if !d.validate(opts) {
		return "", nil
	}
	return d.picker.OpenFile(ctx, opts)
}

// AskOpenFiles asks the user to pick one or more existing files. Selected
// paths not matching any requested file-type pattern are dropped.
func (d *Dialog) AskOpenFiles(ctx context.Context, opts Options) ([]string, error) {
	if !d.validate(opts) {
		return nil, nil
	}
	paths, err := d.picker.OpenFiles(ctx, opts)
	if err != nil {
		return nil, err
	}
	return filterByType(paths, opts.FileTypes), nil
}

// AskSaveFile asks the user for a destination path to save to.
func (d *Dialog) AskSaveFile(ctx context.Context, opts Options) (string, error) {
	if !d.validate(opts) {
		return "", nil
	}
	return d.picker.SaveFile(ctx, opts)
}

// AskOpenDirectory asks the user to pick an existing directory.
func (d *Dialog) AskOpenDirectory(ctx context.Context, opts Options) (string, error) {
	if opts.InitialDir != "" && !d.fs.IsDirectory(opts.InitialDir) {
		d.log.Warn("initial directory does not exist",
			zap.String("dir", opts.InitialDir),
		)
		return "", nil
	}
	return d.picker.OpenDirectory(ctx, opts)
}

// validate checks the optional initial directory and file against the live
// filesystem, logging a WARN and refusing the invocation when absent.
func (d *Dialog) validate(opts Options) bool {
	if opts.InitialDir != "" && !d.fs.IsDirectory(opts.InitialDir) {
		d.log.Warn("initial directory does not exist",
			zap.String("dir", opts.InitialDir),
		)
		return false
	}
	if opts.InitialFile != "" && !d.fs.IsFile(opts.InitialFile) {
		d.log.Warn("initial file does not exist",
			zap.String("file", opts.InitialFile),
		)
		return false
	}
	return true
}

// filterByType keeps paths whose base name matches at least one file-type
// pattern. An empty type list keeps everything.
func filterByType(paths []string, fileTypes []FileType) []string {
	if len(fileTypes) == 0 {
		return paths
	}
	kept := make([]string, 0, len(paths))
	for _, p := range paths {
		base := filepath.Base(p)
		for _, ft := range fileTypes {
			if ok, err := doublestar.Match(ft.Pattern, base); err == nil && ok {
				kept = append(kept, p)
				break
			}
		}
	}
	return kept
}
