package util

import (
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
)

// Logger prints launcher progress. Stage headers and details go to out,
// warnings and errors to err.
type Logger struct {
	Verbose bool

	info    *pterm.PrefixPrinter
	detail  *pterm.PrefixPrinter
	warning *pterm.PrefixPrinter
	failure *pterm.PrefixPrinter
	debug   *pterm.PrefixPrinter
}

func NewLogger(out, err io.Writer) *Logger {
	debug := pterm.Debug.WithWriter(out)
	debug.Debugger = false
	return &Logger{
		info:    pterm.Info.WithWriter(out),
		detail:  pterm.Success.WithWriter(out),
		warning: pterm.Warning.WithWriter(err),
		failure: pterm.Error.WithWriter(err),
		debug:   debug,
	}
}

func NewConsoleLogger() *Logger {
	return NewLogger(os.Stdout, os.Stderr)
}

// Discard returns a Logger that prints nothing.
func Discard() *Logger {
	return NewLogger(io.Discard, io.Discard)
}

func (l *Logger) Info(format string, a ...interface{}) {
	l.info.Printfln(format, a...)
}

func (l *Logger) Detail(format string, a ...interface{}) {
	l.detail.Printfln(format, a...)
}

func (l *Logger) Warn(format string, a ...interface{}) {
	l.warning.Printfln(format, a...)
}

func (l *Logger) Debug(format string, a ...interface{}) {
	if l.Verbose {
		l.debug.Printfln(format, a...)
	}
}

// Error prints each non-blank line of err as its own diagnostic.
func (l *Logger) Error(err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		if strings.TrimSpace(line) != "" {
			l.failure.Println(strings.TrimRight(line, " \t"))
		}
	}
}
