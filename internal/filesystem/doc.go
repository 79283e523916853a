// Package filesystem provides the filesystem abstraction used throughout
// safpack.
//
// The Provider interface covers the operations the packaging pipeline and
// validator need: directory listing, reading, writing, directory creation,
// and renaming. Two implementations exist:
//   - OSFileSystem: production use against the real filesystem
//   - MemoryFileSystem: in-memory filesystem for unit tests
package filesystem
