package logging

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// FileLogger appends timestamped log lines to a process log file.
// Safe for concurrent use by multiple goroutines.
type FileLogger struct {
	f       *os.File
	verbose bool
	mu      sync.Mutex
}

// NewFileLogger opens (or creates) the log file at path for appending.
// The caller owns the returned logger and must Close it when done.
func NewFileLogger(path string, verbose bool) (*FileLogger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return &FileLogger{f: f, verbose: verbose}, nil
}

// Close flushes and closes the underlying log file.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.f.Close()
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *FileLogger) Verbose(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.write("VERBOSE", format, args...)
}

// Info logs informational messages about normal operations.
func (l *FileLogger) Info(format string, args ...interface{}) {
	l.write("INFO", format, args...)
}

// Warn logs recoverable problems.
func (l *FileLogger) Warn(format string, args ...interface{}) {
	l.write("WARNING", format, args...)
}

// Error logs error messages.
func (l *FileLogger) Error(format string, args ...interface{}) {
	l.write("ERROR", format, args...)
}

func (l *FileLogger) write(level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	fmt.Fprintf(l.f, "%s [%s] %s\n", time.Now().Format("2006-01-02 15:04:05"), level, msg)
}
