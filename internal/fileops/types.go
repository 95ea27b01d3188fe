package fileops

// Task identifies a file operation for unified dispatch.
type Task string

const (
	TaskCopy   Task = "copy"
	TaskCreate Task = "create"
	TaskDelete Task = "delete"
	TaskEmpty  Task = "empty"
	TaskExists Task = "exists"
	TaskLink   Task = "link"
	TaskMove   Task = "move"
	TaskRead   Task = "read"
	TaskRename Task = "rename"
	TaskUnpack Task = "unpack"
	TaskWrite  Task = "write"
)

// Kind classifies what a path names on disk. Symlinks are classified as
// KindSymlink without following them.
type Kind uint8

const (
	KindMissing Kind = iota
	KindFile
	KindDirectory
	KindSymlink
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	case KindSymlink:
		return "symlink"
	default:
		return "missing"
	}
}

// Request describes a single dispatched operation. Target, NewName and
// Content are consulted only by the tasks that need them.
type Request struct {
	Source  string
	Task    Task
	Target  string
	NewName string
	Content string

	// Kind optionally states the intended entity kind when Source does not
	// exist yet (create, rename and delete of not-yet-existing paths).
	// A missing path with no stated kind is treated as a file.
	Kind Kind
}

// Result is the outcome of a dispatched operation. Content is populated
// only by read tasks.
type Result struct {
	OK      bool
	Content string
}
