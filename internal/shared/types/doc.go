// Package types provides shared data structures for the FileOps backend.
//
// Core Types:
//   - Service: Service provider definition
//   - Tool: Service tool specification
//   - Result: Standard operation result
//
// Request Types:
//   - ExecuteRequest: Service tool execution
package types
