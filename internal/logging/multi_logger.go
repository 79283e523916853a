package logging

import "github.com/aferrand/safpack/pkg/safpack"

// MultiLogger fans each message out to every wrapped logger. Used to mirror
// console output into the process log file.
type MultiLogger struct {
	loggers []safpack.Logger
}

// NewMultiLogger creates a logger that forwards to all given loggers.
// Nil entries are skipped.
func NewMultiLogger(loggers ...safpack.Logger) *MultiLogger {
	kept := make([]safpack.Logger, 0, len(loggers))
	for _, l := range loggers {
		if l != nil {
			kept = append(kept, l)
		}
	}
	return &MultiLogger{loggers: kept}
}

// Verbose forwards to all wrapped loggers.
func (m *MultiLogger) Verbose(format string, args ...interface{}) {
	for _, l := range m.loggers {
		l.Verbose(format, args...)
	}
}

// Info forwards to all wrapped loggers.
func (m *MultiLogger) Info(format string, args ...interface{}) {
	for _, l := range m.loggers {
		l.Info(format, args...)
	}
}

// Warn forwards to all wrapped loggers.
func (m *MultiLogger) Warn(format string, args ...interface{}) {
	for _, l := range m.loggers {
		l.Warn(format, args...)
	}
}

// Error forwards to all wrapped loggers.
func (m *MultiLogger) Error(format string, args ...interface{}) {
	for _, l := range m.loggers {
		l.Error(format, args...)
	}
}
