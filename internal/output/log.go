// Package output provides logging and terminal output utilities.
package output

import (
	"os"

	"github.com/charmbracelet/log"
)

// logger is the package-level logger instance.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	ReportCaller:    false,
})

// SetupLogging configures the logger from the global CLI flags.
// Debug enables debug-level output with timestamps and caller info;
// quiet raises the level so only errors are reported.
func SetupLogging(debug, quiet bool) {
	level := log.InfoLevel
	switch {
	case debug:
		level = log.DebugLevel
	case quiet:
		level = log.ErrorLevel
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: debug,
		ReportCaller:    debug,
	})
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...interface{}) {
	logger.Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg string, keyvals ...interface{}) {
	logger.Info(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...interface{}) {
	logger.Warn(msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...interface{}) {
	logger.Error(msg, keyvals...)
}
