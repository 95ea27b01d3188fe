package fileops

import (
	"context"
	"fmt"
)

// Open is the unified entry point: it resolves the entity kind of
// req.Source once, then dispatches on task kind and entity kind. Callers
// can say "copy this path" without knowing whether it names a file, a
// directory or a symlink.
//
// When Source does not exist yet (creating something new, deleting or
// renaming a path that was never there), the probe yields KindMissing;
// req.Kind then states the caller's intent, and with no stated intent the
// path is treated as a file.
func (m *Manager) Open(ctx context.Context, req Request) (*Result, error) {
	kind := m.Classify(req.Source)
	if kind == KindMissing {
		if req.Kind != KindMissing {
			kind = req.Kind
		} else {
			kind = KindFile
		}
	}

	switch req.Task {
	case TaskCopy:
		if kind == KindDirectory {
			return boolResult(m.CopyDirectory(ctx, req.Source, req.Target))
		}
		return boolResult(m.CopyFile(req.Source, req.Target))

	case TaskCreate:
		switch kind {
		case KindDirectory:
			return boolResult(m.CreateDirectory(req.Source, false))
		case KindSymlink:
			return boolResult(m.CreateSymlink(req.Source, req.Target))
		default:
			return boolResult(m.CreateFile(req.Source))
		}

	case TaskDelete:
		switch kind {
		case KindDirectory:
			return boolResult(m.DeleteDirectory(req.Source))
		case KindSymlink:
			return boolResult(m.DeleteSymlink(req.Source))
		default:
			return boolResult(m.DeleteFile(req.Source))
		}

	case TaskEmpty:
		if kind == KindDirectory {
			return &Result{OK: m.IsDirectoryEmpty(req.Source)}, nil
		}
		return &Result{OK: m.IsFileEmpty(req.Source)}, nil

	case TaskExists:
		return &Result{OK: m.Exists(req.Source)}, nil

	case TaskLink:
		return boolResult(m.CreateSymlink(req.Source, req.Target))

	case TaskMove:
		if kind == KindDirectory {
			return boolResult(m.MoveDirectory(req.Source, req.Target))
		}
		return boolResult(m.MoveFile(req.Source, req.Target))

	case TaskRead:
		content, err := m.ReadFile(req.Source)
		if err != nil {
			return &Result{}, err
		}
		return &Result{OK: true, Content: content}, nil

	case TaskRename:
		switch kind {
		case KindDirectory:
			return boolResult(m.RenameDirectory(req.Source, req.NewName))
		case KindSymlink:
			return boolResult(m.RenameSymlink(req.Source, req.NewName))
		default:
			return boolResult(m.RenameFile(req.Source, req.NewName))
		}

	case TaskUnpack:
		return boolResult(m.UnpackArchive(ctx, req.Source, req.Target))

	case TaskWrite:
		return boolResult(m.WriteFile(req.Source, req.Content))

	default:
		return &Result{}, fmt.Errorf("unknown task: %s", req.Task)
	}
}

// boolResult maps an operation error to the boolean result contract.
func boolResult(err error) (*Result, error) {
	if err != nil {
		return &Result{}, err
	}
	return &Result{OK: true}, nil
}
