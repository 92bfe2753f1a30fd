package log

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ttacon/chalk"
)

// Logger filters and prints messages to a destination
type Logger struct {
	output     io.Writer
	info       bool
	warn       bool
	err        bool
	debug      bool
	timestamps bool
}

// New returns an instance of Logger
func New(output io.Writer) *Logger {
	return &Logger{output: output}
}

// SetInfo activates/deactivates info level
func (l *Logger) SetInfo(value bool) {
	l.info = value
}

// SetWarn activates/deactivates warn level
func (l *Logger) SetWarn(value bool) {
	l.warn = value
}

// SetError activates/deactivates error level
func (l *Logger) SetError(value bool) {
	l.err = value
}

// SetDebug activates/deactivates debug level
func (l *Logger) SetDebug(value bool) {
	l.debug = value
}

// SetTimestamps activates/deactivates a timestamp prefix on every line
func (l *Logger) SetTimestamps(value bool) {
	l.timestamps = value
}

// Logf writes a formatted message to the specified output
func (l *Logger) Logf(format string, a ...interface{}) {
	if !strings.HasSuffix(format, "\n") {
		format = format + "\n"
	}
	if l.timestamps {
		format = time.Now().Format("2006-01-02 15:04:05") + " " + format
	}
	fmt.Fprintf(l.output, format, a...)
}

// Log writes message to the specified output
func (l *Logger) Log(a ...interface{}) {
	msg := strings.TrimSuffix(fmt.Sprintln(a...), "\n")
	l.Logf("%s", msg)
}

// Calls Log with foreground color set
func (l *Logger) logWithColor(color chalk.Color, a ...interface{}) {
	msg := strings.TrimSuffix(fmt.Sprintln(a...), "\n")
	l.Log(color.Color(msg))
}

// Info checks info level is activated to write the message
func (l *Logger) Info(a ...interface{}) {
	if l.info {
		l.logWithColor(chalk.Blue, a...)
	}
}

// Infof checks info level is activated to write the formatted message
func (l *Logger) Infof(format string, a ...interface{}) {
	if l.info {
		l.Logf(chalk.Blue.Color(format), a...)
	}
}

// Warn checks warn level is activated to write the message
func (l *Logger) Warn(a ...interface{}) {
	if l.warn {
		l.logWithColor(chalk.Yellow, a...)
	}
}

// Warnf checks warn level is activated to write the formatted message
func (l *Logger) Warnf(format string, a ...interface{}) {
	if l.warn {
		l.Logf(chalk.Yellow.Color(format), a...)
	}
}

// Error writes the error object regardless of level
func (l *Logger) Error(err error) {
	l.logWithColor(chalk.Red, err.Error())
}

// Errorf writes the formatted message regardless of level
func (l *Logger) Errorf(format string, a ...interface{}) {
	l.Logf(chalk.Red.Color(format), a...)
}

// Debug checks debug level is activated to write the message
func (l *Logger) Debug(a ...interface{}) {
	if l.debug {
		l.logWithColor(chalk.Cyan, a...)
	}
}

// Debugf checks debug level is activated to write the message
func (l *Logger) Debugf(format string, a ...interface{}) {
	if l.debug {
		l.Logf(chalk.Cyan.Color(format), a...)
	}
}
