package log

import (
	"io"
	"os"

	"github.com/scamfield/delete-default-vpc/types"
)

var defaultLogger *Logger

// Make sure default logger instantiated by default.
func init() {
	defaultLogger = New(os.Stdout)
}

// InitDefault creates default logger for package-level logging access.
func InitDefault(output io.Writer, config *types.Config) {
	defaultLogger = New(output)
	defaultLogger.SetTimestamps(true)
	defaultLogger.SetError(true)

	if config == nil {
		return
	}

	if config.RunConfig.ShowDebug {
		defaultLogger.SetDebug(true)
		defaultLogger.SetWarn(true)
		defaultLogger.SetError(true)
		defaultLogger.SetInfo(true)
	}

	if config.RunConfig.ShowWarnings {
		defaultLogger.SetWarn(true)
	}

	if config.RunConfig.ShowErrors {
		defaultLogger.SetError(true)
	}
}

// Default returns the default logger.
func Default() *Logger {
	return defaultLogger
}

// Logf logs a message using default logger.
func Logf(format string, a ...interface{}) {
	defaultLogger.Logf(format, a...)
}

// Info logs info-level message using default logger.
func Info(a ...interface{}) {
	defaultLogger.Info(a...)
}

// Warn logs warning-level message using default logger.
func Warn(a ...interface{}) {
	defaultLogger.Warn(a...)
}

// Warnf logs warning-level formatted string message using default logger.
func Warnf(format string, a ...interface{}) {
	defaultLogger.Warnf(format, a...)
}

// Errorf logs error-level formatted string message using default logger.
func Errorf(format string, a ...interface{}) {
	defaultLogger.Errorf(format, a...)
}

// Error logs error-level message using default logger.
func Error(err error) {
	defaultLogger.Error(err)
}

// Debug logs debug-level message using default logger.
func Debug(a ...interface{}) {
	defaultLogger.Debug(a...)
}
