// Package logging provides concrete implementations of the safpack.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes formatted messages to stderr with thread-safe output
//   - FileLogger: Appends timestamped lines to a process log file
//   - MultiLogger: Fans messages out to several loggers (console + file)
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
