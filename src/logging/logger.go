// Package logging is the leveled logger shared by the scatter tools.
//
// Lines go to stderr as "<date> <time> [LEVEL] message". The threshold is
// process-wide and set from the log_level config key or the -log flag.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
	"time"
)

// Level represents severity. Messages below the current level are dropped.
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[string]Level{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

// String returns the tag printed in front of each line.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	}
	return "INFO"
}

var currentLevel int32 = int32(LevelInfo)

var baseLogger = log.New(os.Stderr, "", log.Ldate|log.Ltime|log.Lmicroseconds)

// ParseLevel maps a level name to a Level. ok is false for unknown names.
func ParseLevel(s string) (Level, bool) {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	return l, ok
}

// SetLogLevel parses and sets the global log level. Unknown names are ignored.
func SetLogLevel(s string) {
	l, ok := ParseLevel(s)
	if !ok {
		return
	}
	atomic.StoreInt32(&currentLevel, int32(l))
}

// GetLogLevel returns the current global log level.
func GetLogLevel() Level { return Level(atomic.LoadInt32(&currentLevel)) }

// SetOutput redirects log output; it returns the previous writer's logger so callers can restore it.
func SetOutput(w io.Writer) *log.Logger {
	prev := baseLogger
	baseLogger = log.New(w, "", log.Ldate|log.Ltime|log.Lmicroseconds)
	return prev
}

// Restore reinstates a logger returned by SetOutput.
func Restore(l *log.Logger) {
	if l != nil {
		baseLogger = l
	}
}

func logf(l Level, format string, args ...interface{}) {
	if GetLogLevel() > l {
		return
	}
	prefix := l.String()
	// A message without args is printed verbatim so literal % in labels like "Obese (%)" survives.
	if len(args) == 0 {
		baseLogger.Printf("[%s] %s", prefix, format)
		return
	}
	baseLogger.Printf("[%s] %s", prefix, fmt.Sprintf(format, args...))
}

// Debugf logs per-phase detail: timings, file writes, scale domains.
func Debugf(format string, a ...interface{}) { logf(LevelDebug, format, a...) }

// Infof logs lifecycle events such as a dataset load or an axis switch.
func Infof(format string, a ...interface{}) { logf(LevelInfo, format, a...) }

// Warnf logs recoverable data problems, e.g. cells coerced to NaN.
func Warnf(format string, a ...interface{}) { logf(LevelWarn, format, a...) }

// Errorf logs failures the caller reports but does not abort on.
func Errorf(format string, a ...interface{}) { logf(LevelError, format, a...) }

// TimeTrack logs the duration of a phase at debug level. Use with defer.
func TimeTrack(start time.Time, label string) {
	Debugf("%s took %s", label, time.Since(start))
}
