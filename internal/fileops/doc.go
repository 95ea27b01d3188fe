// Package fileops provides a single facade over file and directory
// operations with a uniform precondition-checking protocol.
//
// This package is organized into specialized modules:
//   - predicates: existence and classification checks
//   - create: directory, file and symlink creation
//   - delete: guarded removal (empty directories only)
//   - transfer: copy, move and rename across entity kinds
//   - io: whole-file UTF-8 read and write
//   - archive: unpacking with content-based format detection
//   - open: unified dispatch over task kind and entity kind
//
// All mutating operations:
//   - Re-validate existence of source and target immediately before acting
//   - Never overwrite an existing target
//   - Report precondition violations as *PrecondError (logged at WARN)
//   - Report OS-level failures as *OpError (logged at ERROR)
//
// The facade holds no cross-call state beyond its base directory, which is
// captured once at construction and immutable afterwards. Two callers racing
// on the same path may both pass a precondition check; the later mutation
// fails at the OS level and surfaces as an *OpError.
package fileops
