package dialog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// CommandPicker shells out to the platform dialog tool: zenity on Linux,
// osascript on macOS. Cancellation by the user maps to an empty result.
type CommandPicker struct {
	goos string
}

// NewCommandPicker builds a picker for the current platform.
func NewCommandPicker() (*CommandPicker, error) {
	switch runtime.GOOS {
	case "linux", "darwin":
		return &CommandPicker{goos: runtime.GOOS}, nil
	default:
		return nil, fmt.Errorf("no dialog tool available on %s", runtime.GOOS)
	}
}

func (p *CommandPicker) OpenFile(ctx context.Context, opts Options) (string, error) {
	out, err := p.run(ctx, opts, modeOpenFile)
	if err != nil {
		return "", err
	}
	return firstLine(out), nil
}

func (p *CommandPicker) OpenFiles(ctx context.Context, opts Options) ([]string, error) {
	out, err := p.run(ctx, opts, modeOpenFiles)
	if err != nil {
		return nil, err
	}
	return splitPaths(out), nil
}

func (p *CommandPicker) SaveFile(ctx context.Context, opts Options) (string, error) {
	out, err := p.run(ctx, opts, modeSaveFile)
	if err != nil {
		return "", err
	}
	return firstLine(out), nil
}

func (p *CommandPicker) OpenDirectory(ctx context.Context, opts Options) (string, error) {
	out, err := p.run(ctx, opts, modeOpenDir)
	if err != nil {
		return "", err
	}
	return firstLine(out), nil
}

type pickMode int

const (
	modeOpenFile pickMode = iota
	modeOpenFiles
	modeSaveFile
	modeOpenDir
)

func (p *CommandPicker) run(ctx context.Context, opts Options, mode pickMode) (string, error) {
	var cmd *exec.Cmd
	switch p.goos {
	case "darwin":
		cmd = exec.CommandContext(ctx, "osascript", "-e", osascriptFor(opts, mode))
	default:
		cmd = exec.CommandContext(ctx, "zenity", zenityArgs(opts, mode)...)
	}

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		// Exit code 1 means the user dismissed the dialog.
		var exit *exec.ExitError
		if errors.As(err, &exit) && exit.ExitCode() == 1 {
			return "", nil
		}
		return "", fmt.Errorf("dialog tool: %w", err)
	}
	return stdout.String(), nil
}

func zenityArgs(opts Options, mode pickMode) []string {
	args := []string{"--file-selection"}
	switch mode {
	case modeOpenFiles:
		args = append(args, "--multiple", "--separator=\n")
	case modeSaveFile:
		args = append(args, "--save")
	case modeOpenDir:
		args = append(args, "--directory")
	}
	if opts.Title != "" {
		args = append(args, "--title="+opts.Title)
	}
	switch {
	case opts.InitialFile != "":
		args = append(args, "--filename="+opts.InitialFile)
	case opts.InitialDir != "":
		args = append(args, "--filename="+opts.InitialDir+"/")
	}
	for _, ft := range opts.FileTypes {
		args = append(args, fmt.Sprintf("--file-filter=%s | %s", ft.Label, ft.Pattern))
	}
	return args
}

func osascriptFor(opts Options, mode pickMode) string {
	var b strings.Builder
	b.WriteString("POSIX path of (")
	switch mode {
	case modeOpenFiles:
		b.Reset()
		b.WriteString("set ps to (choose file with multiple selections allowed")
	case modeSaveFile:
		b.WriteString("choose file name")
	case modeOpenDir:
		b.WriteString("choose folder")
	default:
		b.WriteString("choose file")
	}
	if opts.Title != "" {
		fmt.Fprintf(&b, " with prompt %q", opts.Title)
	}
	if opts.InitialDir != "" {
		fmt.Fprintf(&b, " default location POSIX file %q", opts.InitialDir)
	}
	if mode == modeOpenFiles {
		b.WriteString(")\nset out to \"\"\nrepeat with p in ps\nset out to out & POSIX path of p & \"\\n\"\nend repeat\nout")
		return b.String()
	}
	b.WriteString(")")
	return b.String()
}

func firstLine(out string) string {
	out = strings.TrimRight(out, "\n")
	if i := strings.IndexByte(out, '\n'); i >= 0 {
		return out[:i]
	}
	return out
}

func splitPaths(out string) []string {
	out = strings.TrimRight(out, "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}
