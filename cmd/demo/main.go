// Command demo exercises the filesystem facade end to end: it creates a
// scratch directory and file, writes and reads contents through the unified
// dispatch, then removes everything it created.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/GriffinCanCode/FileOps/backend/internal/fileops"
	"github.com/GriffinCanCode/FileOps/backend/internal/infrastructure/logging"
)

func main() {
	root := flag.String("root", "", "Base directory for the demo (defaults to a temp dir)")
	flag.Parse()

	base := *root
	if base == "" {
		dir, err := os.MkdirTemp("", "fileops-demo-")
		if err != nil {
			fmt.Fprintf(os.Stderr, "demo: %v\n", err)
			os.Exit(1)
		}
		base = dir
	}

	logger := logging.NewDevelopment()
	fs, err := fileops.New(base, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "demo: %v\n", err)
		os.Exit(1)
	}
	ctx := context.Background()

	dir := "demo"
	file := filepath.Join(dir, "hello.txt")

	steps := []struct {
		name string
		req  fileops.Request
	}{
		{"create directory", fileops.Request{Source: dir, Task: fileops.TaskCreate, Kind: fileops.KindDirectory}},
		{"write file", fileops.Request{Source: file, Task: fileops.TaskWrite, Content: "hello from the facade\n"}},
		{"read file", fileops.Request{Source: file, Task: fileops.TaskRead}},
		{"check exists", fileops.Request{Source: file, Task: fileops.TaskExists}},
		{"delete file", fileops.Request{Source: file, Task: fileops.TaskDelete}},
		{"delete directory", fileops.Request{Source: dir, Task: fileops.TaskDelete, Kind: fileops.KindDirectory}},
	}

	for _, step := range steps {
		res, err := fs.Open(ctx, step.req)
		switch {
		case err != nil:
			fmt.Printf("%-18s FAILED: %v\n", step.name, err)
			os.Exit(1)
		case res.Content != "":
			fmt.Printf("%-18s ok: %q\n", step.name, res.Content)
		default:
			fmt.Printf("%-18s ok: %v\n", step.name, res.OK)
		}
	}

	fmt.Printf("demo complete under %s\n", base)
}
