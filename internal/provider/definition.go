package provider

import "github.com/GriffinCanCode/FileOps/backend/internal/shared/types"

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          "fileops",
		Name:        "File Operation Service",
		Description: "File, directory and symlink operations with uniform precondition checks",
		Category:    types.CategoryFilesystem,
		Capabilities: []string{
			"create",
			"delete",
			"copy",
			"move",
			"rename",
			"read",
			"write",
			"link",
			"unpack",
			"exists",
		},
		Tools: []types.Tool{
			{
				ID:          "fileops.create_file",
				Name:        "Create File",
				Description: "Create a new empty file",
				Parameters: []types.Parameter{
					{Name: "path", Type: "string", Description: "File path", Required: true},
				},
				Returns: "boolean",
			},
			{
				ID:          "fileops.create_dir",
				Name:        "Create Directory",
				Description: "Create a new directory, optionally with parents",
				Parameters: []types.Parameter{
					{Name: "path", Type: "string", Description: "Directory path", Required: true},
					{Name: "parents", Type: "boolean", Description: "Create missing ancestors", Required: false},
				},
				Returns: "boolean",
			},
			{
				ID:          "fileops.create_symlink",
				Name:        "Create Symlink",
				Description: "Create a symbolic link to an existing path",
				Parameters: []types.Parameter{
					{Name: "source", Type: "string", Description: "Existing path to link to", Required: true},
					{Name: "target", Type: "string", Description: "Symlink path", Required: true},
				},
				Returns: "boolean",
			},
			{
				ID:          "fileops.delete_file",
				Name:        "Delete File",
				Description: "Delete an existing file",
				Parameters: []types.Parameter{
					{Name: "path", Type: "string", Description: "File path", Required: true},
				},
				Returns: "boolean",
			},
			{
				ID:          "fileops.delete_dir",
				Name:        "Delete Directory",
				Description: "Delete an empty directory (non-empty directories are refused)",
				Parameters: []types.Parameter{
					{Name: "path", Type: "string", Description: "Directory path", Required: true},
				},
				Returns: "boolean",
			},
			{
				ID:          "fileops.delete_symlink",
				Name:        "Delete Symlink",
				Description: "Delete a symbolic link without following it",
				Parameters: []types.Parameter{
					{Name: "path", Type: "string", Description: "Symlink path", Required: true},
				},
				Returns: "boolean",
			},
			{
				ID:          "fileops.copy",
				Name:        "Copy",
				Description: "Copy a file or directory (never overwrites)",
				Parameters: []types.Parameter{
					{Name: "source", Type: "string", Description: "Source path", Required: true},
					{Name: "destination", Type: "string", Description: "Destination path", Required: true},
				},
				Returns: "boolean",
			},
			{
				ID:          "fileops.move",
				Name:        "Move",
				Description: "Move a file or directory (never overwrites)",
				Parameters: []types.Parameter{
					{Name: "source", Type: "string", Description: "Source path", Required: true},
					{Name: "destination", Type: "string", Description: "Destination path", Required: true},
				},
				Returns: "boolean",
			},
			{
				ID:          "fileops.rename",
				Name:        "Rename",
				Description: "Rename a file, directory or symlink in place",
				Parameters: []types.Parameter{
					{Name: "path", Type: "string", Description: "Path to rename", Required: true},
					{Name: "new_name", Type: "string", Description: "New name within the same parent", Required: true},
				},
				Returns: "boolean",
			},
			{
				ID:          "fileops.read",
				Name:        "Read File",
				Description: "Read full file contents as UTF-8 text",
				Parameters: []types.Parameter{
					{Name: "path", Type: "string", Description: "File path", Required: true},
				},
				Returns: "string",
			},
			{
				ID:          "fileops.write",
				Name:        "Write File",
				Description: "Write UTF-8 text to a new file (existing files are refused)",
				Parameters: []types.Parameter{
					{Name: "path", Type: "string", Description: "File path", Required: true},
					{Name: "content", Type: "string", Description: "Content to write", Required: true},
				},
				Returns: "boolean",
			},
			{
				ID:          "fileops.exists",
				Name:        "Check Existence",
				Description: "Check whether a path exists and classify its kind",
				Parameters: []types.Parameter{
					{Name: "path", Type: "string", Description: "Path to check", Required: true},
				},
				Returns: "object",
			},
			{
				ID:          "fileops.empty",
				Name:        "Check Emptiness",
				Description: "Check whether a directory has no entries or a file has zero size",
				Parameters: []types.Parameter{
					{Name: "path", Type: "string", Description: "Path to check", Required: true},
				},
				Returns: "boolean",
			},
			{
				ID:          "fileops.unpack",
				Name:        "Unpack Archive",
				Description: "Extract an archive (zip/tar/tar.gz/tar.zst auto-detected)",
				Parameters: []types.Parameter{
					{Name: "archive", Type: "string", Description: "Archive path", Required: true},
					{Name: "destination", Type: "string", Description: "Destination directory", Required: true},
				},
				Returns: "boolean",
			},
			{
				ID:          "fileops.open",
				Name:        "Unified Dispatch",
				Description: "Run any task against a path, probing the entity kind automatically",
				Parameters: []types.Parameter{
					{Name: "source", Type: "string", Description: "Source path", Required: true},
					{Name: "task", Type: "string", Description: "Task kind (copy/create/delete/empty/exists/link/move/read/rename/unpack/write)", Required: true},
					{Name: "target", Type: "string", Description: "Target path", Required: false},
					{Name: "new_name", Type: "string", Description: "New name for rename", Required: false},
					{Name: "content", Type: "string", Description: "Content for write", Required: false},
					{Name: "kind", Type: "string", Description: "Entity kind hint (file/directory/symlink) for paths that do not exist yet", Required: false},
				},
				Returns: "object",
			},
		},
	}
}
