// Package provider exposes the fileops facade as a dispatchable service.
//
// Every facade operation is published as a tool with typed parameters; a
// single Execute entry point branches on tool ID. The boolean/absent result
// contract of the facade is carried in types.Result: precondition failures
// and runtime failures both surface as Success=false with the diagnostic in
// Error, never as a Go error from Execute itself.
package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/GriffinCanCode/FileOps/backend/internal/fileops"
	"github.com/GriffinCanCode/FileOps/backend/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/FileOps/backend/internal/shared/types"
)

// Provider dispatches tool executions to the filesystem facade.
type Provider struct {
	fs      *fileops.Manager
	metrics *monitoring.Metrics
}

// New creates a file operation provider
func New(fs *fileops.Manager) *Provider {
	return &Provider{fs: fs}
}

// WithMetrics attaches an operation metrics collector
func (p *Provider) WithMetrics(m *monitoring.Metrics) *Provider {
	p.metrics = m
	return p
}

// Base returns the facade's base directory
func (p *Provider) Base() string {
	return p.fs.Base()
}

// Success helper
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure helper
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

// Execute runs a filesystem operation
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}) (*types.Result, error) {
	timer := monitoring.NewTimer(p.metrics, toolID)

	result, err := p.execute(ctx, toolID, params)

	outcome := "success"
	if err != nil || (result != nil && !result.Success) {
		outcome = "failure"
	}
	timer.Stop(outcome)

	if p.metrics != nil && result != nil && !result.Success && result.Error != nil {
		p.metrics.RecordOperationError(toolID, errorCategory(*result.Error))
	}
	return result, err
}

// errorCategory buckets a failure message for the error counter.
func errorCategory(msg string) string {
	switch {
	case strings.HasPrefix(msg, "precondition failed"):
		return "precondition"
	case strings.HasPrefix(msg, "operation failed"):
		return "runtime"
	default:
		return "invalid_request"
	}
}

func (p *Provider) execute(ctx context.Context, toolID string, params map[string]interface{}) (*types.Result, error) {
	switch toolID {
	case "fileops.create_file":
		return p.createFile(params)
	case "fileops.create_dir":
		return p.createDirectory(params)
	case "fileops.create_symlink":
		return p.createSymlink(params)
	case "fileops.delete_file":
		return p.deleteFile(params)
	case "fileops.delete_dir":
		return p.deleteDirectory(params)
	case "fileops.delete_symlink":
		return p.deleteSymlink(params)
	case "fileops.copy":
		return p.copy(ctx, params)
	case "fileops.move":
		return p.move(ctx, params)
	case "fileops.rename":
		return p.rename(ctx, params)
	case "fileops.read":
		return p.read(params)
	case "fileops.write":
		return p.write(params)
	case "fileops.exists":
		return p.exists(params)
	case "fileops.empty":
		return p.empty(ctx, params)
	case "fileops.unpack":
		return p.unpack(ctx, params)
	case "fileops.open":
		return p.open(ctx, params)
	default:
		return Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

// stringParam extracts a required non-empty string parameter.
func stringParam(params map[string]interface{}, name string) (string, bool) {
	v, ok := params[name].(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// failureFrom maps a facade error onto the result contract. Callers cannot
// distinguish the categories from Success alone, so the category travels in
// the message.
func failureFrom(err error) (*types.Result, error) {
	if fileops.IsPrecondition(err) {
		return Failure(fmt.Sprintf("precondition failed: %v", err))
	}
	return Failure(fmt.Sprintf("operation failed: %v", err))
}

func (p *Provider) createFile(params map[string]interface{}) (*types.Result, error) {
	path, ok := stringParam(params, "path")
	if !ok {
		return Failure("path parameter required")
	}

	if err := p.fs.CreateFile(path); err != nil {
		return failureFrom(err)
	}
	return Success(map[string]interface{}{"created": true, "path": path})
}

func (p *Provider) createDirectory(params map[string]interface{}) (*types.Result, error) {
	path, ok := stringParam(params, "path")
	if !ok {
		return Failure("path parameter required")
	}
	parents, _ := params["parents"].(bool)

	if err := p.fs.CreateDirectory(path, parents); err != nil {
		return failureFrom(err)
	}
	return Success(map[string]interface{}{"created": true, "path": path})
}

func (p *Provider) createSymlink(params map[string]interface{}) (*types.Result, error) {
	source, ok := stringParam(params, "source")
	if !ok {
		return Failure("source parameter required")
	}
	target, ok := stringParam(params, "target")
	if !ok {
		return Failure("target parameter required")
	}

	if err := p.fs.CreateSymlink(source, target); err != nil {
		return failureFrom(err)
	}
	return Success(map[string]interface{}{"created": true, "source": source, "target": target})
}

func (p *Provider) deleteFile(params map[string]interface{}) (*types.Result, error) {
	path, ok := stringParam(params, "path")
	if !ok {
		return Failure("path parameter required")
	}

	if err := p.fs.DeleteFile(path); err != nil {
		return failureFrom(err)
	}
	return Success(map[string]interface{}{"deleted": true, "path": path})
}

func (p *Provider) deleteDirectory(params map[string]interface{}) (*types.Result, error) {
	path, ok := stringParam(params, "path")
	if !ok {
		return Failure("path parameter required")
	}

	if err := p.fs.DeleteDirectory(path); err != nil {
		return failureFrom(err)
	}
	return Success(map[string]interface{}{"deleted": true, "path": path})
}

func (p *Provider) deleteSymlink(params map[string]interface{}) (*types.Result, error) {
	path, ok := stringParam(params, "path")
	if !ok {
		return Failure("path parameter required")
	}

	if err := p.fs.DeleteSymlink(path); err != nil {
		return failureFrom(err)
	}
	return Success(map[string]interface{}{"deleted": true, "path": path})
}

func (p *Provider) copy(ctx context.Context, params map[string]interface{}) (*types.Result, error) {
	source, ok := stringParam(params, "source")
	if !ok {
		return Failure("source parameter required")
	}
	destination, ok := stringParam(params, "destination")
	if !ok {
		return Failure("destination parameter required")
	}

	result, err := p.fs.Open(ctx, fileops.Request{
		Source: source,
		Task:   fileops.TaskCopy,
		Target: destination,
	})
	if err != nil {
		return failureFrom(err)
	}
	return Success(map[string]interface{}{"copied": result.OK, "source": source, "destination": destination})
}

func (p *Provider) move(ctx context.Context, params map[string]interface{}) (*types.Result, error) {
	source, ok := stringParam(params, "source")
	if !ok {
		return Failure("source parameter required")
	}
	destination, ok := stringParam(params, "destination")
	if !ok {
		return Failure("destination parameter required")
	}

	result, err := p.fs.Open(ctx, fileops.Request{
		Source: source,
		Task:   fileops.TaskMove,
		Target: destination,
	})
	if err != nil {
		return failureFrom(err)
	}
	return Success(map[string]interface{}{"moved": result.OK, "source": source, "destination": destination})
}

func (p *Provider) rename(ctx context.Context, params map[string]interface{}) (*types.Result, error) {
	path, ok := stringParam(params, "path")
	if !ok {
		return Failure("path parameter required")
	}
	newName, ok := stringParam(params, "new_name")
	if !ok {
		return Failure("new_name parameter required")
	}

	result, err := p.fs.Open(ctx, fileops.Request{
		Source:  path,
		Task:    fileops.TaskRename,
		NewName: newName,
	})
	if err != nil {
		return failureFrom(err)
	}
	return Success(map[string]interface{}{"renamed": result.OK, "path": path, "new_name": newName})
}

func (p *Provider) read(params map[string]interface{}) (*types.Result, error) {
	path, ok := stringParam(params, "path")
	if !ok {
		return Failure("path parameter required")
	}

	content, err := p.fs.ReadFile(path)
	if err != nil {
		return failureFrom(err)
	}
	if p.metrics != nil {
		p.metrics.BytesRead.Add(float64(len(content)))
	}
	return Success(map[string]interface{}{
		"path":    path,
		"content": content,
		"size":    len(content),
	})
}

func (p *Provider) write(params map[string]interface{}) (*types.Result, error) {
	path, ok := stringParam(params, "path")
	if !ok {
		return Failure("path parameter required")
	}
	content, ok := params["content"].(string)
	if !ok {
		return Failure("content parameter required")
	}

	if err := p.fs.WriteFile(path, content); err != nil {
		return failureFrom(err)
	}
	if p.metrics != nil {
		p.metrics.BytesWrote.Add(float64(len(content)))
	}
	return Success(map[string]interface{}{
		"written": true,
		"path":    path,
		"size":    len(content),
	})
}

func (p *Provider) exists(params map[string]interface{}) (*types.Result, error) {
	path, ok := stringParam(params, "path")
	if !ok {
		return Failure("path parameter required")
	}

	kind := p.fs.Classify(path)
	return Success(map[string]interface{}{
		"exists": kind != fileops.KindMissing,
		"kind":   kind.String(),
		"path":   path,
	})
}

func (p *Provider) empty(ctx context.Context, params map[string]interface{}) (*types.Result, error) {
	path, ok := stringParam(params, "path")
	if !ok {
		return Failure("path parameter required")
	}

	result, err := p.fs.Open(ctx, fileops.Request{Source: path, Task: fileops.TaskEmpty})
	if err != nil {
		return failureFrom(err)
	}
	return Success(map[string]interface{}{"empty": result.OK, "path": path})
}

func (p *Provider) unpack(ctx context.Context, params map[string]interface{}) (*types.Result, error) {
	archive, ok := stringParam(params, "archive")
	if !ok {
		return Failure("archive parameter required")
	}
	destination, ok := stringParam(params, "destination")
	if !ok {
		return Failure("destination parameter required")
	}

	if err := p.fs.UnpackArchive(ctx, archive, destination); err != nil {
		return failureFrom(err)
	}
	return Success(map[string]interface{}{"extracted": true, "archive": archive, "destination": destination})
}

// open exposes the unified dispatch directly: callers name a task and the
// facade probes the entity kind itself.
func (p *Provider) open(ctx context.Context, params map[string]interface{}) (*types.Result, error) {
	source, ok := stringParam(params, "source")
	if !ok {
		return Failure("source parameter required")
	}
	task, ok := stringParam(params, "task")
	if !ok {
		return Failure("task parameter required")
	}
	target, _ := params["target"].(string)
	newName, _ := params["new_name"].(string)
	content, _ := params["content"].(string)

	// Optional entity-kind hint, consulted only for not-yet-existing paths.
	var kind fileops.Kind
	switch params["kind"] {
	case "file":
		kind = fileops.KindFile
	case "directory":
		kind = fileops.KindDirectory
	case "symlink":
		kind = fileops.KindSymlink
	}

	result, err := p.fs.Open(ctx, fileops.Request{
		Source:  source,
		Task:    fileops.Task(task),
		Target:  target,
		NewName: newName,
		Content: content,
		Kind:    kind,
	})
	if err != nil {
		return failureFrom(err)
	}

	data := map[string]interface{}{"ok": result.OK, "source": source, "task": task}
	if result.Content != "" {
		data["content"] = result.Content
	}
	return Success(data)
}
