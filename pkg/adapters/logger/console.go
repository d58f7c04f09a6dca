// Package logger provides logging implementations.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/ideamans/go-l10n"
	"github.com/mattn/go-isatty"

	"github.com/user/roundlogo/pkg/ports"
)

// palette holds the colors used for component prefixes and levels.
type palette struct {
	component *color.Color
	debug     *color.Color
	warn      *color.Color
	err       *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		component: color.New(color.FgCyan),
		debug:     color.New(color.FgHiBlack),
		warn:      color.New(color.FgYellow),
		err:       color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{p.component, p.debug, p.warn, p.err} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// ConsoleLogger logs messages to the console with color support.
// Debug and info go to stdout, warn and error to stderr.
type ConsoleLogger struct {
	level     ports.LogLevel
	component string
	colors    palette
	stdout    io.Writer
	stderr    io.Writer
}

// NewConsole creates a new console logger with the specified level.
// Color output is automatically enabled when stdout is a terminal.
func NewConsole(level ports.LogLevel) *ConsoleLogger {
	tty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	return NewConsoleWriter(level, os.Stdout, os.Stderr, tty)
}

// NewConsoleWriter creates a console logger writing to the given streams.
func NewConsoleWriter(level ports.LogLevel, stdout, stderr io.Writer, colored bool) *ConsoleLogger {
	return &ConsoleLogger{
		level:  level,
		colors: newPalette(colored),
		stdout: stdout,
		stderr: stderr,
	}
}

// Debug logs a debug message.
func (l *ConsoleLogger) Debug(msg string, args ...interface{}) {
	if l.level > ports.LevelDebug {
		return
	}
	l.log(ports.LevelDebug, msg, args...)
}

// Info logs an informational message.
func (l *ConsoleLogger) Info(msg string, args ...interface{}) {
	if l.level > ports.LevelInfo {
		return
	}
	l.log(ports.LevelInfo, msg, args...)
}

// Warn logs a warning message.
func (l *ConsoleLogger) Warn(msg string, args ...interface{}) {
	if l.level > ports.LevelWarn {
		return
	}
	l.log(ports.LevelWarn, msg, args...)
}

// Error logs an error message.
func (l *ConsoleLogger) Error(msg string, args ...interface{}) {
	if l.level > ports.LevelError {
		return
	}
	l.log(ports.LevelError, msg, args...)
}

// WithComponent returns a new logger with the specified component name.
func (l *ConsoleLogger) WithComponent(component string) ports.Logger {
	return &ConsoleLogger{
		level:     l.level,
		component: component,
		colors:    l.colors,
		stdout:    l.stdout,
		stderr:    l.stderr,
	}
}

// log outputs a log message with appropriate formatting.
func (l *ConsoleLogger) log(level ports.LogLevel, msg string, args ...interface{}) {
	output := l10n.F(msg, args...)

	if l.component != "" {
		output = l.colors.component.Sprintf("[%s]", l.component) + " " + output
	}

	switch level {
	case ports.LevelDebug:
		output = l.colors.debug.Sprint(output)
	case ports.LevelWarn:
		output = l.colors.warn.Sprint(output)
	case ports.LevelError:
		output = l.colors.err.Sprint(output)
	}

	if level >= ports.LevelWarn {
		fmt.Fprintln(l.stderr, output)
	} else {
		fmt.Fprintln(l.stdout, output)
	}
}
