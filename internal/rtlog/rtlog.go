// Package rtlog is the interpreter's runtime diagnostic logger: session
// lifecycle events, resource-tracker denials, and internal-error reports
// get a single human-readable line each, colorized the way the teacher's
// diagfmt.Pretty colors its diagnostic severities (errorColor/warningColor/
// infoColor via github.com/fatih/color), but rendered as one-line log
// records rather than source-span previews since the interpreter core has
// no source text of its own to show.
package rtlog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Level orders log severities, matching the set the teacher's CLI reports
// through for build/diagnose output (debug below info below warn below
// error).
type Level uint8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "???"
	}
}

// Logger writes leveled, colorized session diagnostics to an io.Writer.
// Safe for concurrent use, though a session is expected to be single-
// threaded per spec §5 — multiple Loggers may still share one VM's stderr.
type Logger struct {
	mu       sync.Mutex
	w        io.Writer
	minLevel Level
	colorize bool

	debugColor *color.Color
	infoColor  *color.Color
	warnColor  *color.Color
	errorColor *color.Color
}

// New builds a Logger writing to w. colorize follows the teacher's
// opts.Color convention (callers typically wire this to "stderr is a TTY").
func New(w io.Writer, minLevel Level, colorize bool) *Logger {
	return &Logger{
		w:          w,
		minLevel:   minLevel,
		colorize:   colorize,
		debugColor: color.New(color.FgWhite),
		infoColor:  color.New(color.FgCyan, color.Bold),
		warnColor:  color.New(color.FgYellow, color.Bold),
		errorColor: color.New(color.FgRed, color.Bold),
	}
}

// Default builds a Logger writing to os.Stderr at LevelInfo, colorized iff
// stderr looks like a terminal.
func Default() *Logger {
	return New(os.Stderr, LevelInfo, isTerminal(os.Stderr))
}

func (l *Logger) colorFor(level Level) *color.Color {
	switch level {
	case LevelDebug:
		return l.debugColor
	case LevelWarn:
		return l.warnColor
	case LevelError:
		return l.errorColor
	default:
		return l.infoColor
	}
}

func (l *Logger) log(level Level, format string, args ...any) {
	if level < l.minLevel {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	prev := color.NoColor
	color.NoColor = !l.colorize
	defer func() { color.NoColor = prev }()

	ts := time.Now().UTC().Format("15:04:05.000")
	levelText := l.colorFor(level).Sprint(level.String())
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.w, "%s %-5s %s\n", ts, levelText, msg)
}

func (l *Logger) Debugf(format string, args ...any) { l.log(LevelDebug, format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.log(LevelInfo, format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.log(LevelWarn, format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.log(LevelError, format, args...) }

// ResourceDenial logs a resource-tracker denial at WARN, the standard
// place a session's log shows why it was torn down (spec §4.I).
func (l *Logger) ResourceDenial(kind, msg string) {
	l.Warnf("resource limit hit: %s: %s", kind, msg)
}

// InternalError logs an unrecoverable core invariant violation at ERROR
// before the process unwinds it (spec §7.1 "RunError::Internal ... always
// fatal").
func (l *Logger) InternalError(msg string) {
	l.Errorf("internal error: %s", msg)
}
